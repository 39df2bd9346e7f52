package vehicle

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"motorent/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	vehicles := rg.Group("/vehicles")
	{
		vehicles.GET("", h.List)
		vehicles.POST("", h.Create)
		vehicles.GET("/:id", h.GetByID)
		vehicles.PUT("/:id", h.Update)
		vehicles.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /api/vehicles
// @Summary Register a vehicle
// @Tags Vehicles
// @Accept mpfd
// @Produce json
// @Param licensePlate formData string true "License plate (unique)"
// @Param type formData string true "Vehicle type"
// @Param brand formData string true "Brand"
// @Param pricePerDay formData number true "Daily rental price"
// @Param status formData string false "available | rented | maintenance"
// @Param images formData file false "Up to 5 images"
// @Success 201 {object} domain.Vehicle
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /vehicles [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", ErrMissingFields.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), req, imageFiles(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// List handles GET /api/vehicles
// @Summary List all vehicles
// @Tags Vehicles
// @Produce json
// @Success 200 {array} domain.Vehicle
// @Router /vehicles [get]
func (h *Handler) List(c *gin.Context) {
	vehicles, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, vehicles)
}

// GetByID handles GET /api/vehicles/:id
// @Summary Get vehicle by id
// @Tags Vehicles
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 200 {object} domain.Vehicle
// @Failure 404 {object} response.Response
// @Router /vehicles/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "VEHICLE_NOT_FOUND", ErrNotFound.Error())
		return
	}

	v, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

// Update handles PUT /api/vehicles/:id
// @Summary Update vehicle (fields present in the form are written as given)
// @Tags Vehicles
// @Accept mpfd
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 200 {object} domain.Vehicle
// @Failure 404 {object} response.Response
// @Router /vehicles/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "VEHICLE_NOT_FOUND", ErrNotFound.Error())
		return
	}

	req, err := updateRequestFromForm(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req, imageFiles(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /api/vehicles/:id
// @Summary Delete vehicle
// @Tags Vehicles
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vehicles/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "VEHICLE_NOT_FOUND", ErrNotFound.Error())
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Vehicle deleted successfully")
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "VEHICLE_NOT_FOUND", err.Error())
	case errors.Is(err, ErrPlateExists):
		response.Error(c, http.StatusConflict, "PLATE_EXISTS", err.Error())
	case errors.Is(err, ErrMissingFields), errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrTooManyImages):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}

// updateRequestFromForm distinguishes "field absent" from "field empty":
// only keys present in the form end up non-nil.
func updateRequestFromForm(c *gin.Context) (UpdateVehicleRequest, error) {
	var req UpdateVehicleRequest
	if v, ok := c.GetPostForm("licensePlate"); ok {
		req.LicensePlate = &v
	}
	if v, ok := c.GetPostForm("type"); ok {
		req.Type = &v
	}
	if v, ok := c.GetPostForm("brand"); ok {
		req.Brand = &v
	}
	if v, ok := c.GetPostForm("status"); ok {
		req.Status = &v
	}
	if v, ok := c.GetPostForm("pricePerDay"); ok {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return req, errors.New("pricePerDay must be a number")
		}
		req.PricePerDay = &price
	}
	return req, nil
}

func imageFiles(c *gin.Context) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File["images"]
}
