package handlers

import (
	"net/http"
	"strconv"

	"homeserve/middleware"
	"homeserve/models"
	"homeserve/services/booking"
	"homeserve/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the availability and booking endpoints.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// respondError maps service error codes onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case booking.IsNotFound(err):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case booking.IsInvalidInput(err):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
	case booking.IsConflict(err):
		utils.JSONError(c, http.StatusConflict, "conflict", err.Error())
	case booking.IsUnauthorized(err):
		utils.JSONError(c, http.StatusForbidden, "forbidden", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}

// GetAvailabilityHandler answers GET /api/bookings/availability.
func (h *BookingHandler) GetAvailabilityHandler(c *gin.Context) {
	duration, _ := strconv.Atoi(c.Query("duration"))
	lat, _ := strconv.ParseFloat(c.Query("lat"), 64)
	lng, _ := strconv.ParseFloat(c.Query("lng"), 64)

	req := models.AvailabilityRequest{
		ServiceID:       c.Query("serviceId"),
		Date:            c.Query("date"),
		DurationMinutes: duration,
		Lat:             lat,
		Lng:             lng,
	}
	if req.ServiceID == "" || req.Date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "serviceId and date are required")
		return
	}

	resp, err := h.Svc.GetAvailability(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateBookingHandler answers POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Svc.CreateBooking(c.Request.Context(), middleware.ActorID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetBookingHandler answers GET /api/bookings/:id for the owning parties.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Svc.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	actor := middleware.ActorID(c)
	if b.CustomerID != actor && b.ProviderID != actor {
		utils.JSONError(c, http.StatusForbidden, "forbidden", "not a party to this booking")
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListMyBookingsHandler answers GET /api/bookings for the customer.
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	bookings, err := h.Svc.ListCustomerBookings(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListProviderBookingsHandler answers GET /api/bookings/assigned for the provider.
func (h *BookingHandler) ListProviderBookingsHandler(c *gin.Context) {
	bookings, err := h.Svc.ListProviderBookings(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// StartBookingHandler answers POST /api/bookings/:id/start.
func (h *BookingHandler) StartBookingHandler(c *gin.Context) {
	b, err := h.Svc.StartBooking(c.Request.Context(), c.Param("id"), middleware.ActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CompleteBookingHandler answers POST /api/bookings/:id/complete.
func (h *BookingHandler) CompleteBookingHandler(c *gin.Context) {
	b, err := h.Svc.CompleteBooking(c.Request.Context(), c.Param("id"), middleware.ActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBookingHandler answers POST /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	b, err := h.Svc.CancelBooking(c.Request.Context(), c.Param("id"), middleware.ActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// FeedbackHandler answers POST /api/bookings/:id/feedback.
func (h *BookingHandler) FeedbackHandler(c *gin.Context) {
	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Svc.LeaveFeedback(c.Request.Context(), c.Param("id"), middleware.ActorID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.Logger.Info("feedback recorded",
		zap.String("bookingID", b.ID), zap.Int("rating", req.Rating))
	c.JSON(http.StatusOK, b)
}
