package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"eventdeck/internal/models"
	"eventdeck/internal/services"
)

type createBookingRequest struct {
	EventID string `json:"event_id"`
	Email   string `json:"email"`
}

func CreateBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		eventId, err := primitive.ObjectIDFromHex(strings.TrimSpace(req.EventID))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid event ID format"))
			return
		}

		booking, err := bs.CreateBooking(c.Request.Context(), eventId, req.Email)
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(booking, "Booking created successfully"))
	}
}

func ListBookingsByEvent(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid event ID format"))
			return
		}

		bookings, err := bs.ListBookingsByEvent(c.Request.Context(), eventId)
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.ListResponse(bookings, len(bookings)))
	}
}
