package dashboard

import (
	"net/http"

	"venuebook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard/summary", h.Summary)
	rg.GET("/dashboard/monthly-bookings", h.MonthlyBookings)
	rg.GET("/dashboard/hall-usage", h.HallUsage)
	rg.GET("/dashboard/spending", h.Spending)
}

func (h *Handler) Summary(c *gin.Context) {
	out, err := h.service.Summary(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load dashboard")
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) MonthlyBookings(c *gin.Context) {
	out, err := h.service.MonthlyBookings(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load chart")
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) HallUsage(c *gin.Context) {
	out, err := h.service.HallUsage(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load chart")
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) Spending(c *gin.Context) {
	out, err := h.service.Spending(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load chart")
		return
	}
	response.Success(c, http.StatusOK, out)
}
