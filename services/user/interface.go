// File: services/user/interface.go
package user

import (
	"context"
	"time"

	bookingRepo "campuscare/database/repository/booking"
	userRepo "campuscare/database/repository/user"
	"campuscare/models"
)

// AuthResult is returned after a successful sign-up or sign-in.
type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// UserService manages portal accounts, authentication, and the signed-in
// student's bookings.
type UserService interface {
	// SignUp registers a student account. The email must be institutional.
	SignUp(ctx context.Context, data models.UserRegistrationData) (*AuthResult, error)

	// SignIn authenticates by email and password and issues a fresh token,
	// invalidating any previously issued one.
	SignIn(ctx context.Context, email, password string) (*AuthResult, error)

	// SignOut invalidates the account's current token.
	SignOut(ctx context.Context, userID string) error

	// GetProfile returns the account for the given ID.
	GetProfile(ctx context.Context, userID string) (*models.User, error)

	// UpdateProfile applies the mutable profile fields. Empty fields are
	// left unchanged.
	UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (*models.User, error)

	// ListBookings returns the student's bookings, newest first.
	ListBookings(ctx context.Context, userID string) ([]models.Booking, error)

	// CancelBooking cancels one of the student's own upcoming confirmed
	// bookings.
	CancelBooking(ctx context.Context, userID, bookingID string) error
}

// DefaultUserService is the production UserService implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Bookings bookingRepo.BookingRepository

	TokenTTL time.Duration
}

// NewDefaultUserService constructs the user service.
func NewDefaultUserService(repo userRepo.UserRepository, bookings bookingRepo.BookingRepository) *DefaultUserService {
	return &DefaultUserService{
		Repo:     repo,
		Bookings: bookings,
		TokenTTL: 72 * time.Hour,
	}
}
