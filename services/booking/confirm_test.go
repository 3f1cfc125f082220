package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"campuscare/models"
	"campuscare/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	mu        sync.Mutex
	created   []*models.Booking
	createErr error
}

func newStubRepo() *stubRepo { return &stubRepo{} }

func (r *stubRepo) Create(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, booking)
	return nil
}

func (r *stubRepo) createdCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.created)
}

func (r *stubRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, errors.New("not implemented")
}

func (r *stubRepo) GetByReference(ctx context.Context, reference string) (*models.Booking, error) {
	return nil, errors.New("not implemented")
}

func (r *stubRepo) GetByUserID(ctx context.Context, userID string) ([]models.Booking, error) {
	return nil, nil
}

func (r *stubRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return nil
}

func (r *stubRepo) EnsureIndexes(ctx context.Context) error { return nil }

// readyToConfirm walks a session through steps 1-3.
func readyToConfirm(t *testing.T, svc *DefaultWizardService) string {
	t.Helper()
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "user-42")
	require.NoError(t, err)
	id := sess.SessionID

	_, err = svc.SelectService(ctx, id, "career")
	require.NoError(t, err)
	_, err = svc.SelectCounselor(ctx, id, "james")
	require.NoError(t, err)
	_, err = svc.SelectDate(ctx, id, futureWeekday(3))
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, id, "09:00")
	require.NoError(t, err)
	return id
}

func TestConfirmHappyPath(t *testing.T) {
	svc, client := newTestWizard(t)
	repo := svc.Repo.(*stubRepo)
	ctx := context.Background()

	id := readyToConfirm(t, svc)
	form := validForm()

	conf, err := svc.Confirm(ctx, id, form.Details, form.Consents)
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusConfirmed, conf.Status)
	assert.Equal(t, "09:00", conf.Time)
	assert.Equal(t, "9:00 AM", conf.TimeDisplay)
	assert.Equal(t, "Prof. James Reyes", conf.CounselorName)
	assert.Len(t, conf.Reference, 14)
	assert.Equal(t, "CC", conf.Reference[:2])

	// Local backup is written synchronously.
	backed, err := client.LLen(ctx, utils.BookingBackupKey).Result()
	require.NoError(t, err)
	assert.EqualValues(t, 1, backed)

	// Remote persist runs in the background.
	assert.Eventually(t, func() bool { return repo.createdCount() == 1 },
		2*time.Second, 10*time.Millisecond)

	// The wizard resets for the next booking.
	sess, err := svc.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StepService, sess.CurrentStep)
	assert.Empty(t, sess.SelectedService)
	assert.Empty(t, sess.SelectedCounselor)
	assert.Empty(t, sess.SelectedDate)
	assert.Empty(t, sess.SelectedTime)
}

func TestConfirmRejectsIncompleteSelections(t *testing.T) {
	svc, _ := newTestWizard(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "")
	require.NoError(t, err)

	form := validForm()
	_, err = svc.Confirm(ctx, sess.SessionID, form.Details, form.Consents)
	var stepErr *StepValidationError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, 1, stepErr.Step)
}

func TestConfirmRejectsMissingFields(t *testing.T) {
	svc, _ := newTestWizard(t)
	ctx := context.Background()

	id := readyToConfirm(t, svc)
	form := validForm()
	form.Details.FirstName = ""
	form.Details.Phone = "  "

	_, err := svc.Confirm(ctx, id, form.Details, form.Consents)
	var stepErr *StepValidationError
	require.ErrorAs(t, err, &stepErr)
	assert.Contains(t, stepErr.Message, "first name")
	assert.Contains(t, stepErr.Message, "phone")
}

func TestConfirmRejectsNonInstitutionalEmail(t *testing.T) {
	svc, _ := newTestWizard(t)
	ctx := context.Background()

	id := readyToConfirm(t, svc)
	form := validForm()
	form.Details.Email = "ana.delacruz@gmail.com"

	_, err := svc.Confirm(ctx, id, form.Details, form.Consents)
	var stepErr *StepValidationError
	require.ErrorAs(t, err, &stepErr)
	assert.Contains(t, stepErr.Message, "institutional email")
}

func TestConfirmRejectsMissingConsents(t *testing.T) {
	svc, _ := newTestWizard(t)
	ctx := context.Background()

	id := readyToConfirm(t, svc)
	form := validForm()
	form.Consents.Cancellation = false
	form.Consents.Student = false

	_, err := svc.Confirm(ctx, id, form.Details, form.Consents)
	var stepErr *StepValidationError
	require.ErrorAs(t, err, &stepErr)
	assert.Contains(t, stepErr.Message, "Cancellation Policy agreement")
	assert.Contains(t, stepErr.Message, "Student Enrollment confirmation")
}

func TestConfirmPrivacyConsentOptional(t *testing.T) {
	svc, _ := newTestWizard(t)
	ctx := context.Background()

	id := readyToConfirm(t, svc)
	form := validForm()
	form.Consents.Privacy = false

	_, err := svc.Confirm(ctx, id, form.Details, form.Consents)
	assert.NoError(t, err)
}

func TestConfirmSurvivesPersistFailure(t *testing.T) {
	svc, client := newTestWizard(t)
	repo := svc.Repo.(*stubRepo)
	repo.createErr = errors.New("mongo unreachable")
	ctx := context.Background()

	id := readyToConfirm(t, svc)
	form := validForm()

	conf, err := svc.Confirm(ctx, id, form.Details, form.Consents)
	require.NoError(t, err, "confirmation must not depend on the remote write")
	assert.Equal(t, models.BookingStatusConfirmed, conf.Status)

	backed, err := client.LLen(ctx, utils.BookingBackupKey).Result()
	require.NoError(t, err)
	assert.EqualValues(t, 1, backed, "local backup still holds the booking")
}

func TestNewBookingReferenceFormat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		ref := NewBookingReference("CC")
		require.Len(t, ref, 14)
		assert.Equal(t, "CC", ref[:2])
		for _, ch := range ref[2:] {
			assert.Contains(t, referenceCharset, string(ch))
		}
		seen[ref] = true
	}
	assert.Greater(t, len(seen), 45, "references should rarely collide")
}
