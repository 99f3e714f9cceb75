package resource

import (
	"errors"
	"net/http"

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
	rg.GET("/resources", middleware.RequireRoles("user", "admin"), h.List)
	rg.POST("/resources", middleware.AdminOnly(), h.Create)
	rg.PATCH("/resources/:id", middleware.AdminOnly(), h.Update)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrNameTaken) {
			response.Error(c, http.StatusConflict, "RESOURCE_EXISTS", "Resource already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create resource")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"resource": res})
}

func (h *Handler) List(c *gin.Context) {
	resources, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "Failed to list resources")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"resources": resources})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
		case errors.Is(err, ErrNameTaken):
			response.Error(c, http.StatusConflict, "RESOURCE_EXISTS", "Resource name already in use")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update resource")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"resource": res})
}
