package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"campuscare/models"
	"campuscare/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*models.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *models.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByTokenHash(_ context.Context, hash string) (*models.User, error) {
	for _, u := range r.users {
		if u.TokenHash != "" && u.TokenHash == hash {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) IsEmailAvailable(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return false, nil
		}
	}
	return true, nil
}

func (r *memUserRepo) Update(_ context.Context, u *models.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return errors.New("user missing")
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) UpdateTokenHash(_ context.Context, id, hash string) error {
	u, ok := r.users[id]
	if !ok {
		return errors.New("user missing")
	}
	u.TokenHash = hash
	return nil
}

type memBookingRepo struct {
	bookings map[string]*models.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *memBookingRepo) Create(_ context.Context, b *models.Booking) error {
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *memBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	if b, ok := r.bookings[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memBookingRepo) GetByReference(_ context.Context, ref string) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.Reference == ref {
			cp := *b
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memBookingRepo) GetByUserID(_ context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) EnsureIndexes(_ context.Context) error { return nil }

func (r *memBookingRepo) UpdateStatus(_ context.Context, id, status string) error {
	b, ok := r.bookings[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	b.Status = status
	return nil
}

func newTestUserService() (*DefaultUserService, *memUserRepo, *memBookingRepo) {
	users := newMemUserRepo()
	bookings := newMemBookingRepo()
	svc := &DefaultUserService{Repo: users, Bookings: bookings, TokenTTL: time.Hour}
	return svc, users, bookings
}

func validRegistration() models.UserRegistrationData {
	return models.UserRegistrationData{
		FirstName:  "Ana",
		LastName:   "Dela Cruz",
		Email:      "ana.delacruz@campus.edu",
		Password:   "correct-horse",
		StudentID:  "2023-00412",
		CourseYear: "BS Psychology, 3rd Year",
	}
}

func TestSignUpHappyPath(t *testing.T) {
	svc, users, _ := newTestUserService()

	res, err := svc.SignUp(context.Background(), validRegistration())
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "student", res.User.Role)
	assert.NotEqual(t, "correct-horse", res.User.PasswordHash)

	stored := users.users[res.User.ID]
	require.NotNil(t, stored)
	assert.Equal(t, utils.HashToken(res.Token), stored.TokenHash)
}

func TestSignUpRejectsPersonalEmail(t *testing.T) {
	svc, _, _ := newTestUserService()

	data := validRegistration()
	data.Email = "ana@gmail.com"
	_, err := svc.SignUp(context.Background(), data)
	assert.ErrorIs(t, err, ErrNotInstitutionalEmail)
}

func TestSignUpRejectsShortPassword(t *testing.T) {
	svc, _, _ := newTestUserService()

	data := validRegistration()
	data.Password = "short"
	_, err := svc.SignUp(context.Background(), data)
	assert.ErrorContains(t, err, "at least 8 characters")
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestUserService()
	ctx := context.Background()

	_, err := svc.SignUp(ctx, validRegistration())
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, validRegistration())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignInAndOut(t *testing.T) {
	svc, users, _ := newTestUserService()
	ctx := context.Background()

	reg, err := svc.SignUp(ctx, validRegistration())
	require.NoError(t, err)

	res, err := svc.SignIn(ctx, "Ana.DelaCruz@campus.edu", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.NotEqual(t, reg.Token, res.Token, "sign-in must rotate the token")

	_, err = svc.SignIn(ctx, "ana.delacruz@campus.edu", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.SignIn(ctx, "nobody@campus.edu", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, svc.SignOut(ctx, res.User.ID))
	assert.Empty(t, users.users[res.User.ID].TokenHash)
}

func TestUpdateProfilePartial(t *testing.T) {
	svc, _, _ := newTestUserService()
	ctx := context.Background()

	reg, err := svc.SignUp(ctx, validRegistration())
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, reg.User.ID, models.ProfileUpdate{Phone: "+63 917 555 0202"})
	require.NoError(t, err)
	assert.Equal(t, "+63 917 555 0202", updated.Phone)
	assert.Equal(t, "Ana", updated.FirstName, "unset fields stay unchanged")
}

func TestCancelBookingRules(t *testing.T) {
	svc, _, bookings := newTestUserService()
	ctx := context.Background()
	future := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	past := time.Now().AddDate(0, 0, -7).Format("2006-01-02")

	require.NoError(t, bookings.Create(ctx, &models.Booking{
		ID: "b1", UserID: "u1", Date: future, Time: "09:00",
		Status: models.BookingStatusConfirmed,
	}))
	require.NoError(t, bookings.Create(ctx, &models.Booking{
		ID: "b2", UserID: "u1", Date: past, Time: "09:00",
		Status: models.BookingStatusConfirmed,
	}))
	require.NoError(t, bookings.Create(ctx, &models.Booking{
		ID: "b3", UserID: "u2", Date: future, Time: "09:00",
		Status: models.BookingStatusConfirmed,
	}))

	// Someone else's booking.
	assert.ErrorIs(t, svc.CancelBooking(ctx, "u1", "b3"), ErrBookingNotCancellable)
	// Already in the past.
	assert.ErrorIs(t, svc.CancelBooking(ctx, "u1", "b2"), ErrBookingNotCancellable)

	require.NoError(t, svc.CancelBooking(ctx, "u1", "b1"))
	assert.Equal(t, models.BookingStatusCancelled, bookings.bookings["b1"].Status)

	// A cancelled booking cannot be cancelled again.
	assert.ErrorIs(t, svc.CancelBooking(ctx, "u1", "b1"), ErrBookingNotCancellable)
}
