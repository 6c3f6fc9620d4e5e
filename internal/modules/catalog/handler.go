package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"venuebook/internal/pkg/response"
	"venuebook/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/halls", h.ListHalls)
	rg.GET("/halls/:id", h.GetHall)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/halls", h.CreateHall)
	rg.PUT("/halls/:id", h.UpdateHall)
	rg.DELETE("/halls/:id", h.DeleteHall)
}

func (h *Handler) ListHalls(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	out, err := h.service.ListHalls(c.Request.Context(), limit, offset)
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list halls")
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) GetHall(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid hall id")
		return
	}

	hall, err := h.service.GetHall(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hall not found")
			return
		}
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load hall")
		return
	}
	response.Success(c, http.StatusOK, hall)
}

func (h *Handler) CreateHall(c *gin.Context) {
	var req CreateHallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid hall payload", fields)
		return
	}

	hall, err := h.service.CreateHall(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNameTaken):
			response.Error(c, http.StatusConflict, "NAME_TAKEN", "A hall with this name already exists")
		case errors.Is(err, errInvalidPrice):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "price_per_hour must be a positive decimal")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create hall")
		}
		return
	}
	response.Success(c, http.StatusCreated, hall)
}

func (h *Handler) UpdateHall(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid hall id")
		return
	}

	var req UpdateHallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid hall payload", fields)
		return
	}

	hall, err := h.service.UpdateHall(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hall not found")
		case errors.Is(err, ErrNameTaken):
			response.Error(c, http.StatusConflict, "NAME_TAKEN", "A hall with this name already exists")
		case errors.Is(err, errInvalidPrice):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "price_per_hour must be a positive decimal")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update hall")
		}
		return
	}
	response.Success(c, http.StatusOK, hall)
}

func (h *Handler) DeleteHall(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid hall id")
		return
	}

	if err := h.service.DeleteHall(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hall not found")
			return
		}
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete hall")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
