// File: services/user/bookings.go
package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campuscare/models"
	"campuscare/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func (s *DefaultUserService) ListBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Bookings.GetByUserID(ctx, userID)
}

func (s *DefaultUserService) CancelBooking(ctx context.Context, userID, bookingID string) error {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrBookingNotCancellable
	}
	if err != nil {
		return fmt.Errorf("failed to fetch booking: %w", err)
	}
	if booking.UserID != userID {
		return ErrBookingNotCancellable
	}
	if booking.Status != models.BookingStatusConfirmed {
		return ErrBookingNotCancellable
	}
	if !upcoming(booking, time.Now()) {
		return ErrBookingNotCancellable
	}

	if err := s.Bookings.UpdateStatus(ctx, bookingID, models.BookingStatusCancelled); err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	utils.GetLogger().Info("Booking cancelled",
		zap.String("reference", booking.Reference),
		zap.String("userID", userID))
	return nil
}

// upcoming reports whether the appointment has not started yet.
func upcoming(b *models.Booking, now time.Time) bool {
	start, err := time.ParseInLocation("2006-01-02 15:04", b.Date+" "+b.Time, time.Local)
	if err != nil {
		return false
	}
	return start.After(now)
}
