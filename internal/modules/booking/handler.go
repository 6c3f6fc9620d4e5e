package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

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
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings/me", h.ListMyBookings)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.DELETE("/bookings/:id", h.CancelBooking)
}

// RegisterPublicRoutes exposes the availability listing, which requires no
// identity.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/halls/:id/busy", h.HallBusySlots)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	userID := c.GetInt64("user_id")
	b, err := h.service.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrHallNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hall not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid duration or guest count")
		case errors.Is(err, ErrSlotUnavailable):
			response.Error(c, http.StatusConflict, "SLOT_UNAVAILABLE", "Time slot not available")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, CreateBookingResponse{
		ID:         b.ID,
		BookingRef: b.BookingRef,
	})
}

func (h *Handler) ListMyBookings(c *gin.Context) {
	userID := c.GetInt64("user_id")

	bookings, err := h.service.ListMyBookings(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}
	userID := c.GetInt64("user_id")

	details, err := h.service.GetBooking(c.Request.Context(), id, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
			return
		}
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": details})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}
	userID := c.GetInt64("user_id")

	_, err = h.service.CancelBooking(c.Request.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrAlreadyCancelled):
			response.Error(c, http.StatusBadRequest, "ALREADY_CANCELLED", "Booking is already cancelled")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel booking")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Booking cancelled"})
}

func (h *Handler) HallBusySlots(c *gin.Context) {
	hallID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid hall ID")
		return
	}

	from, to := parseRange(c)
	slots, err := h.service.HallBusySlots(c.Request.Context(), hallID, from, to)
	if err != nil {
		if errors.Is(err, ErrHallNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hall not found")
			return
		}
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load availability")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"busy": slots})
}

// parseRange reads optional from/to query params (RFC 3339), defaulting to
// the next 30 days.
func parseRange(c *gin.Context) (time.Time, time.Time) {
	now := time.Now().UTC()
	from := now
	to := now.Add(30 * 24 * time.Hour)

	if v := c.Query("from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			from = t
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			to = t
		}
	}
	return from, to
}
