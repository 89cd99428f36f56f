package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"eventdeck/internal/apperrors"
	"eventdeck/internal/helpers"
	"eventdeck/internal/models"
)

// EventExistenceChecker is the narrow dependency the booking write path has
// on the events collection. The lookup is a point-in-time read, not a
// standing constraint: an event deleted between the check and the booking
// insert goes undetected.
type EventExistenceChecker interface {
	EventExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type BookingService struct {
	bookingsRepo models.BookingsRepo
	events       EventExistenceChecker
}

func NewBookingService(bookingsRepo models.BookingsRepo, events EventExistenceChecker) *BookingService {
	return &BookingService{
		bookingsRepo: bookingsRepo,
		events:       events,
	}
}

func (bs *BookingService) CreateBooking(ctx context.Context, eventId primitive.ObjectID, email string) (*models.Booking, error) {
	// Normalize before the existence check so the stored value is the one
	// that was validated.
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, apperrors.MissingField("email")
	}
	if !helpers.IsValidEmail(email) {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidEmail, email)
	}

	if eventId.IsZero() {
		return nil, apperrors.ErrDanglingReference
	}
	exists, err := bs.events.EventExistsByID(ctx, eventId)
	if err != nil {
		return nil, fmt.Errorf("failed to check event existence: %v", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrDanglingReference, eventId.Hex())
	}

	now := time.Now()
	booking := &models.Booking{
		EventID:   eventId,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return bs.bookingsRepo.CreateBooking(ctx, booking)
}

func (bs *BookingService) ListBookingsByEvent(ctx context.Context, eventId primitive.ObjectID) ([]*models.Booking, error) {
	if eventId.IsZero() {
		return nil, fmt.Errorf("invalid event ID")
	}
	return bs.bookingsRepo.ListBookingsByEvent(ctx, eventId)
}
