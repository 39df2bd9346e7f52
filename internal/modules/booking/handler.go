package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"motorent/internal/pkg/response"
	"motorent/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	{
		bookings.GET("", h.List)
		bookings.POST("", h.Create)
		bookings.GET("/:id", h.GetByID)
		bookings.PUT("/:id", h.Update)
		bookings.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /api/bookings
// @Summary Create a booking
// @Tags Bookings
// @Accept json
// @Produce json
// @Param booking body CreateBookingRequest true "Booking payload"
// @Success 201 {object} domain.Booking
// @Failure 400 {object} response.Response
// @Router /bookings [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", ErrMissingFields.Error())
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", ErrMissingFields.Error(), errs)
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, created)
}

// List handles GET /api/bookings
// @Summary List all bookings with expanded references
// @Tags Bookings
// @Produce json
// @Success 200 {array} BookingDetails
// @Router /bookings [get]
func (h *Handler) List(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, bookings)
}

// GetByID handles GET /api/bookings/:id
// @Summary Get booking by id with expanded references
// @Tags Bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} BookingDetails
// @Failure 404 {object} response.Response
// @Router /bookings/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", ErrNotFound.Error())
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

// Update handles PUT /api/bookings/:id
// @Summary Update booking (supplied fields are written as given)
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param booking body UpdateBookingRequest true "Fields to overwrite"
// @Success 200 {object} domain.Booking
// @Failure 404 {object} response.Response
// @Router /bookings/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", ErrNotFound.Error())
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /api/bookings/:id
// @Summary Delete booking
// @Tags Bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /bookings/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", ErrNotFound.Error())
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Booking removed")
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", err.Error())
	case errors.Is(err, ErrMissingFields), errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
