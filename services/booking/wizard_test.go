package booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"campuscare/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWizard(t *testing.T) (*DefaultWizardService, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	svc := &DefaultWizardService{
		Repo:         newStubRepo(),
		Cache:        client,
		Catalog:      DefaultCatalog(),
		Availability: allAvailable,
		SessionTTL:   30 * time.Minute,
		RefPrefix:    "CC",
	}
	return svc, client
}

// futureWeekday returns the first non-weekend date at least daysAhead days
// from now, formatted YYYY-MM-DD.
func futureWeekday(daysAhead int) string {
	d := time.Now().AddDate(0, 0, daysAhead)
	for isWeekend(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

func futureWeekendDay(daysAhead int) string {
	d := time.Now().AddDate(0, 0, daysAhead)
	for !isWeekend(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

func validForm() *models.DetailsForm {
	return &models.DetailsForm{
		Details: models.PersonalDetails{
			FirstName:  "Ana",
			LastName:   "Dela Cruz",
			StudentID:  "2023-00412",
			CourseYear: "BS Psychology, 3rd Year",
			Email:      "ana.delacruz@campus.edu",
			Phone:      "+63 912 555 0101",
		},
		Consents: models.ConsentFlags{Privacy: true, Cancellation: true, Student: true},
	}
}

func TestStartSessionInitialState(t *testing.T) {
	svc, _ := newTestWizard(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.SessionID)
	assert.Equal(t, models.StepService, sess.CurrentStep)
	assert.Empty(t, sess.SelectedService)

	loaded, err := svc.GetSession(ctx, sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, sess.SessionID, loaded.SessionID)
	assert.Equal(t, "user-1", loaded.UserID)
}

func TestGetSessionMissing(t *testing.T) {
	svc, _ := newTestWizard(t)

	_, err := svc.GetSession(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCancelSession(t *testing.T) {
	svc, _ := newTestWizard(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "")
	require.NoError(t, err)
	require.NoError(t, svc.CancelSession(ctx, sess.SessionID))

	_, err = svc.GetSession(ctx, sess.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGoNextBlockedWithoutService(t *testing.T) {
	svc, _ := newTestWizard(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "")
	require.NoError(t, err)

	_, err = svc.GoNext(ctx, sess.SessionID, 2, nil)
	var stepErr *StepValidationError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, 1, stepErr.Step)
	assert.Equal(t, "Please select a service to continue.", stepErr.Message)

	loaded, err := svc.GetSession(ctx, sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepService, loaded.CurrentStep, "failed validation must not advance the step")
}

func TestGoNextRejectsSkippedSteps(t *testing.T) {
	svc, _ := newTestWizard(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "")
	require.NoError(t, err)
	_, err = svc.SelectService(ctx, sess.SessionID, "career")
	require.NoError(t, err)

	_, err = svc.GoNext(ctx, sess.SessionID, 3, nil)
	assert.ErrorContains(t, err, "invalid step transition")
}

func TestSelectServiceUnknownKey(t *testing.T) {
	svc, _ := newTestWizard(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "")
	require.NoError(t, err)

	_, err = svc.SelectService(ctx, sess.SessionID, "tarot")
	assert.ErrorContains(t, err, "unknown service")
}

func TestFullStepProgression(t *testing.T) {
	svc, _ := newTestWizard(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "")
	require.NoError(t, err)
	id := sess.SessionID

	_, err = svc.SelectService(ctx, id, "career")
	require.NoError(t, err)
	sess, err = svc.GoNext(ctx, id, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, models.StepCounselor, sess.CurrentStep)

	// Counselor not yet chosen: step 2 gate holds.
	_, err = svc.GoNext(ctx, id, 3, nil)
	var stepErr *StepValidationError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "Please choose a counselor to continue.", stepErr.Message)

	_, err = svc.SelectCounselor(ctx, id, "james")
	require.NoError(t, err)
	sess, err = svc.GoNext(ctx, id, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, models.StepSchedule, sess.CurrentStep)

	// Date alone is not enough for step 3.
	_, err = svc.SelectDate(ctx, id, futureWeekday(3))
	require.NoError(t, err)
	_, err = svc.GoNext(ctx, id, 4, nil)
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "Please pick a date and time to continue.", stepErr.Message)

	_, err = svc.SelectTime(ctx, id, "09:00")
	require.NoError(t, err)
	sess, err = svc.GoNext(ctx, id, 4, nil)
	require.NoError(t, err)
	assert.Equal(t, models.StepDetails, sess.CurrentStep)

	// Details form is required to reach review.
	_, err = svc.GoNext(ctx, id, 5, nil)
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, 4, stepErr.Step)

	sess, err = svc.GoNext(ctx, id, 5, validForm())
	require.NoError(t, err)
	assert.Equal(t, models.StepReview, sess.CurrentStep)
}

func TestSelectServiceReplacesPrevious(t *testing.T) {
	svc, _ := newTestWizard(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "")
	require.NoError(t, err)
	id := sess.SessionID

	_, err = svc.SelectService(ctx, id, "academic")
	require.NoError(t, err)
	sess, err = svc.SelectService(ctx, id, "crisis")
	require.NoError(t, err)
	assert.Equal(t, "crisis", sess.SelectedService, "exactly one service stays selected")
}

func TestGoPrevUnconditional(t *testing.T) {
	svc, _ := newTestWizard(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "")
	require.NoError(t, err)
	id := sess.SessionID

	_, err = svc.SelectService(ctx, id, "academic")
	require.NoError(t, err)
	_, err = svc.GoNext(ctx, id, 2, nil)
	require.NoError(t, err)

	sess, err = svc.GoPrev(ctx, id, 1)
	require.NoError(t, err)
	assert.Equal(t, models.StepService, sess.CurrentStep)

	_, err = svc.GoPrev(ctx, id, 0)
	assert.ErrorContains(t, err, "invalid step transition")
}

func TestSelectDateRules(t *testing.T) {
	svc, _ := newTestWizard(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "")
	require.NoError(t, err)
	id := sess.SessionID

	_, err = svc.SelectDate(ctx, id, "not-a-date")
	assert.ErrorContains(t, err, "invalid date")

	past := time.Now().AddDate(0, 0, -7).Format("2006-01-02")
	_, err = svc.SelectDate(ctx, id, past)
	assert.ErrorContains(t, err, "past date")

	_, err = svc.SelectDate(ctx, id, futureWeekendDay(3))
	assert.ErrorContains(t, err, "weekends")

	sess, err = svc.SelectDate(ctx, id, futureWeekday(3))
	require.NoError(t, err)
	assert.Equal(t, futureWeekday(3), sess.SelectedDate)
}

func TestSelectDateClearsTime(t *testing.T) {
	svc, _ := newTestWizard(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "")
	require.NoError(t, err)
	id := sess.SessionID

	_, err = svc.SelectDate(ctx, id, futureWeekday(3))
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, id, "10:00")
	require.NoError(t, err)

	sess, err = svc.SelectDate(ctx, id, futureWeekday(8))
	require.NoError(t, err)
	assert.Empty(t, sess.SelectedTime, "changing the date must drop the chosen slot")
}

func TestSelectTimeRules(t *testing.T) {
	svc, _ := newTestWizard(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "")
	require.NoError(t, err)
	id := sess.SessionID

	_, err = svc.SelectTime(ctx, id, "09:00")
	assert.ErrorContains(t, err, "select a date")

	_, err = svc.SelectDate(ctx, id, futureWeekday(3))
	require.NoError(t, err)

	for _, bad := range []string{"07:30", "17:00", "09:15"} {
		_, err = svc.SelectTime(ctx, id, bad)
		assert.Error(t, err, fmt.Sprintf("time %s must be rejected", bad))
	}

	sess, err = svc.SelectTime(ctx, id, "16:30")
	require.NoError(t, err)
	assert.Equal(t, "16:30", sess.SelectedTime)
}

func TestTimeSlotsRequireDate(t *testing.T) {
	svc, _ := newTestWizard(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "")
	require.NoError(t, err)

	_, err = svc.TimeSlots(ctx, sess.SessionID)
	assert.ErrorContains(t, err, "select a date")
}

func TestTimeSlotsNoneAvailable(t *testing.T) {
	svc, _ := newTestWizard(t)
	svc.Availability = noneAvailable
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "")
	require.NoError(t, err)
	_, err = svc.SelectDate(ctx, sess.SessionID, futureWeekday(3))
	require.NoError(t, err)

	_, err = svc.TimeSlots(ctx, sess.SessionID)
	assert.ErrorIs(t, err, ErrNoSlots)
}

func TestSummaryReflectsSelections(t *testing.T) {
	svc, _ := newTestWizard(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "")
	require.NoError(t, err)
	id := sess.SessionID

	_, err = svc.SelectService(ctx, id, "career")
	require.NoError(t, err)
	_, err = svc.SelectCounselor(ctx, id, "james")
	require.NoError(t, err)
	date := futureWeekday(3)
	_, err = svc.SelectDate(ctx, id, date)
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, id, "09:00")
	require.NoError(t, err)

	summary, err := svc.Summary(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Career & Future Planning", summary.ServiceName)
	assert.Equal(t, "60 min", summary.Duration)
	assert.Equal(t, "Prof. James Reyes", summary.CounselorName)
	assert.Equal(t, date, summary.Date)
	assert.Equal(t, "09:00", summary.Time)
	assert.Equal(t, "9:00 AM", summary.TimeDisplay)
}

func TestMonthGridUsesSessionSelection(t *testing.T) {
	svc, _ := newTestWizard(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "")
	require.NoError(t, err)
	date := futureWeekday(3)
	_, err = svc.SelectDate(ctx, sess.SessionID, date)
	require.NoError(t, err)

	parsed, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	grid, err := svc.MonthGrid(ctx, sess.SessionID, parsed.Year(), parsed.Month())
	require.NoError(t, err)

	found := false
	for _, c := range grid.Cells {
		if c.Selected {
			found = true
			assert.Equal(t, date, c.Date)
		}
	}
	assert.True(t, found, "selected date must be marked in its month grid")
}
