package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"motorent/internal/database"
	"motorent/internal/media"
	"motorent/internal/middleware"
	"motorent/internal/modules/auth"
	"motorent/internal/modules/booking"
	"motorent/internal/modules/customer"
	"motorent/internal/modules/vehicle"
	jwtsvc "motorent/internal/pkg/jwt"
	"motorent/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = media.DefaultBaseDir
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	customerRepo := repository.NewCustomerRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	userRepo := repository.NewUserRepository(db)

	store := media.NewDiskStore(uploadDir, media.StaticURLBase)
	j := jwtsvc.New(secret, 24*time.Hour)

	customerHandler := customer.NewHandler(customer.NewService(customerRepo, store))
	vehicleHandler := vehicle.NewHandler(vehicle.NewService(vehicleRepo, store))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, customerRepo, vehicleRepo))
	authHandler := auth.NewHandler(auth.NewService(userRepo, j))

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	r.Static(media.StaticURLBase, uploadDir)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Motor rental API is running")
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   gin.H{"code": "NOT_FOUND", "message": "Route not found"},
		})
	})

	api := r.Group("/api")
	{
		customerHandler.RegisterRoutes(api)
		vehicleHandler.RegisterRoutes(api)
		bookingHandler.RegisterRoutes(api)
		authHandler.RegisterPublicRoutes(api)

		protected := api.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
		}
	}

	log.Printf("listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
