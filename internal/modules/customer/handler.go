package customer

import (
	"errors"
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
	customers := rg.Group("/customers")
	{
		customers.GET("", h.List)
		customers.POST("", h.Create)
		customers.GET("/:id", h.GetByID)
		customers.PUT("/:id", h.Update)
		customers.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /api/customers
// @Summary Register a customer
// @Tags Customers
// @Accept mpfd
// @Produce json
// @Param name formData string true "Customer name"
// @Param phone formData string true "Phone number"
// @Param cccd formData string false "National id"
// @Param driverLicense formData string false "Driver license number"
// @Param notes formData string false "Free-text notes"
// @Param cccdImage formData file false "National id image"
// @Param driverLicenseImage formData file false "Driver license image"
// @Success 201 {object} domain.Customer
// @Failure 400 {object} response.Response
// @Router /customers [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", ErrMissingFields.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), req, formFiles(c))
	if err != nil {
		if errors.Is(err, ErrMissingFields) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// List handles GET /api/customers
// @Summary List customers (paginated)
// @Tags Customers
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Substring filter on name, phone or cccd"
// @Success 200 {object} ListCustomersResponse
// @Router /customers [get]
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	search := c.Query("search")

	result, err := h.service.List(c.Request.Context(), page, limit, search)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetByID handles GET /api/customers/:id
// @Summary Get customer by id
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} domain.Customer
// @Failure 404 {object} response.Response
// @Router /customers/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusNotFound, "CUSTOMER_NOT_FOUND", ErrNotFound.Error())
		return
	}

	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "CUSTOMER_NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, found)
}

// Update handles PUT /api/customers/:id
// @Summary Update customer (partial: empty fields are skipped)
// @Tags Customers
// @Accept mpfd
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} domain.Customer
// @Failure 404 {object} response.Response
// @Router /customers/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusNotFound, "CUSTOMER_NOT_FOUND", ErrNotFound.Error())
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid form data")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req, formFiles(c))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "CUSTOMER_NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /api/customers/:id
// @Summary Delete customer (removes remote images best-effort)
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /customers/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusNotFound, "CUSTOMER_NOT_FOUND", ErrNotFound.Error())
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "CUSTOMER_NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Message(c, http.StatusOK, "Customer removed")
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func formFiles(c *gin.Context) Files {
	var files Files
	if fh, err := c.FormFile("cccdImage"); err == nil {
		files.CccdImage = fh
	}
	if fh, err := c.FormFile("driverLicenseImage"); err == nil {
		files.DriverLicenseImage = fh
	}
	return files
}
