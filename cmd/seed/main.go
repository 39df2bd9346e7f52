package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"motorent/internal/database"
	"motorent/internal/domain"
	"motorent/internal/repository"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "motorent.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM vehicles")
	db.Exec("DELETE FROM customers")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	customerRepo := repository.NewCustomerRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	userRepo := repository.NewUserRepository(db)

	log.Println("Creating admin user...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := &domain.User{
		Name:         "Admin",
		Email:        "admin@motorent.local",
		PasswordHash: string(hash),
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatal("seed user failed:", err)
	}
	log.Println("Admin created: admin@motorent.local / admin123")

	log.Println("Creating customers...")
	customers := make([]*domain.Customer, 0, 3)
	names := []string{"Nguyen Van An", "Tran Thi Binh", "Le Minh Chau"}
	for i, name := range names {
		c := &domain.Customer{
			Name:          name,
			Phone:         fmt.Sprintf("09012345%02d", i+10),
			Cccd:          fmt.Sprintf("0790991234%02d", i+1),
			DriverLicense: fmt.Sprintf("B2-4567%02d", i+1),
			Notes:         "seeded",
		}
		if err := customerRepo.Create(ctx, c); err != nil {
			log.Fatal("seed customer failed:", err)
		}
		customers = append(customers, c)
	}

	log.Println("Creating vehicles...")
	vehicles := make([]*domain.Vehicle, 0, 4)
	specs := []struct {
		plate, vtype, brand string
		price               float64
		status              domain.VehicleStatus
	}{
		{"59X1-123.45", "scooter", "Honda", 120000, domain.VehicleAvailable},
		{"59X1-678.90", "scooter", "Yamaha", 110000, domain.VehicleAvailable},
		{"51F-246.80", "motorbike", "Suzuki", 150000, domain.VehicleRented},
		{"51F-135.79", "motorbike", "Honda", 140000, domain.VehicleMaintenance},
	}
	for _, spec := range specs {
		v := &domain.Vehicle{
			LicensePlate: spec.plate,
			Type:         spec.vtype,
			Brand:        spec.brand,
			PricePerDay:  spec.price,
			Status:       spec.status,
		}
		if err := vehicleRepo.Create(ctx, v); err != nil {
			log.Fatal("seed vehicle failed:", err)
		}
		vehicles = append(vehicles, v)
	}

	log.Println("Creating bookings...")
	now := time.Now()
	bookings := []*domain.Booking{
		{
			CustomerID: customers[0].ID,
			VehicleIDs: []int64{vehicles[0].ID},
			StartDate:  now.AddDate(0, 0, 1),
			EndDate:    now.AddDate(0, 0, 3),
			TotalPrice: 240000,
			Status:     domain.BookingPending,
		},
		{
			CustomerID: customers[1].ID,
			VehicleIDs: []int64{vehicles[1].ID, vehicles[2].ID},
			StartDate:  now.AddDate(0, 0, -2),
			EndDate:    now.AddDate(0, 0, 2),
			TotalPrice: 1040000,
			Status:     domain.BookingConfirmed,
		},
	}
	for _, b := range bookings {
		if err := bookingRepo.Create(ctx, b); err != nil {
			log.Fatal("seed booking failed:", err)
		}
	}

	log.Println("Seed complete")
}
