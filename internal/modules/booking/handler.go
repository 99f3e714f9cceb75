package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookhub/internal/middleware"
	"bookhub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	bookings.Use(middleware.RequireRoles("user", "admin"))
	{
		bookings.POST("", h.Create)
		bookings.GET("", h.List)
		bookings.GET("/:id", h.Get)
		bookings.PATCH("/:id", h.Update)
		bookings.DELETE("/:id", h.Cancel)
	}
}

func callerFrom(c *gin.Context) Caller {
	return Caller{
		ID:    c.GetString(middleware.CtxUserID),
		Role:  c.GetString(middleware.CtxRole),
		Token: c.GetString(middleware.CtxToken),
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "resource_id, start_time and end_time are required")
		return
	}

	b, err := h.service.Create(c.Request.Context(), callerFrom(c), req)
	if err != nil {
		h.writeError(c, err, "Failed to create booking")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) Get(c *gin.Context) {
	b, err := h.service.Get(c.Request.Context(), callerFrom(c), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to fetch booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Update(c.Request.Context(), callerFrom(c), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err, "Failed to update booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Cancel(c *gin.Context) {
	if err := h.service.Cancel(c.Request.Context(), callerFrom(c), c.Param("id")); err != nil {
		h.writeError(c, err, "Failed to cancel booking")
		return
	}

	response.Message(c, http.StatusOK, "Booking cancelled")
}

func (h *Handler) List(c *gin.Context) {
	q := ListBookingsQuery{
		Status:   c.Query("status"),
		Resource: c.Query("resource"),
		Page:     parseIntDefault(c.Query("page"), 1),
		Limit:    parseIntDefault(c.Query("limit"), 10),
	}

	result, err := h.service.List(c.Request.Context(), callerFrom(c), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "Failed to list bookings")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	var conflict *ConflictError
	switch {
	case errors.Is(err, ErrInvalidTimeRange):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking time range")
	case errors.Is(err, ErrResourceNotFound), errors.Is(err, ErrResourceUnavailable):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown or inactive resource")
	case errors.As(err, &conflict):
		response.ErrorWithDetails(c, http.StatusConflict, "BOOKING_CONFLICT",
			"This resource is already booked for the selected time range", conflict.Conflict)
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't have access to this booking")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func parseIntDefault(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}
