// File: services/booking/validation.go
package booking

import (
	"strings"

	"campuscare/config"
	"campuscare/models"
)

const fallbackEmailDomain = "campus.edu"

func institutionalDomain() string {
	if d := config.AppConfig.EmailDomain; d != "" {
		return d
	}
	return fallbackEmailDomain
}

// validateStep checks the requirement that gates forward progress out of the
// session's current step.
func (s *DefaultWizardService) validateStep(sess *models.WizardSession, form *models.DetailsForm) error {
	switch sess.CurrentStep {
	case models.StepService:
		if sess.SelectedService == "" {
			return newStepError(models.StepService, "Please select a service to continue.")
		}
	case models.StepCounselor:
		if sess.SelectedCounselor == "" {
			return newStepError(models.StepCounselor, "Please choose a counselor to continue.")
		}
	case models.StepSchedule:
		if sess.SelectedDate == "" || sess.SelectedTime == "" {
			return newStepError(models.StepSchedule, "Please pick a date and time to continue.")
		}
	case models.StepDetails:
		if form == nil {
			return newStepError(models.StepDetails, "Please fill in your details to continue.")
		}
		return validateDetails(models.StepDetails, form.Details, form.Consents)
	}
	return nil
}

// validateDetails enforces the details-step contract: all required fields
// present, an institutional email address, and the mandatory consents.
func validateDetails(step int, d models.PersonalDetails, c models.ConsentFlags) error {
	required := []struct {
		value string
		label string
	}{
		{d.FirstName, "first name"},
		{d.LastName, "last name"},
		{d.StudentID, "student ID"},
		{d.CourseYear, "course & year"},
		{d.Email, "email"},
		{d.Phone, "phone"},
	}
	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.label)
		}
	}
	if len(missing) > 0 {
		return newStepError(step, "Please fill in: "+strings.Join(missing, ", ")+".")
	}

	domain := institutionalDomain()
	if !strings.HasSuffix(strings.ToLower(strings.TrimSpace(d.Email)), "@"+domain) {
		return newStepError(step, "Please use your institutional email address (@"+domain+").")
	}

	var pending []string
	if !c.Cancellation {
		pending = append(pending, "Cancellation Policy agreement")
	}
	if !c.Student {
		pending = append(pending, "Student Enrollment confirmation")
	}
	if len(pending) > 0 {
		return newStepError(step, "Please agree to: "+strings.Join(pending, ", ")+".")
	}
	return nil
}
