// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"campuscare/models"
	"campuscare/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking wizard over HTTP.
type BookingHandler struct {
	Service booking.WizardService
	Logger  *zap.Logger
}

// NewBookingHandler constructs the booking handler.
func NewBookingHandler(svc booking.WizardService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// respondWizardError maps wizard errors to HTTP responses. Step validation
// failures are client-recoverable and carry the step they gate.
func respondWizardError(c *gin.Context, err error) {
	var stepErr *booking.StepValidationError
	switch {
	case errors.As(err, &stepErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": stepErr.Message,
			"step":  stepErr.Step,
		})
	case errors.Is(err, booking.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

func (h *BookingHandler) StartSession(c *gin.Context) {
	sess, err := h.Service.StartSession(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start booking session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (h *BookingHandler) GetSession(c *gin.Context) {
	sess, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Service.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

func (h *BookingHandler) SelectService(c *gin.Context) {
	var input struct {
		Service string `json:"service" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess, err := h.Service.SelectService(c.Request.Context(), c.Param("sessionID"), input.Service)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (h *BookingHandler) SelectCounselor(c *gin.Context) {
	var input struct {
		Counselor string `json:"counselor" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess, err := h.Service.SelectCounselor(c.Request.Context(), c.Param("sessionID"), input.Counselor)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (h *BookingHandler) SelectDate(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess, err := h.Service.SelectDate(c.Request.Context(), c.Param("sessionID"), input.Date)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (h *BookingHandler) SelectTime(c *gin.Context) {
	var input struct {
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess, err := h.Service.SelectTime(c.Request.Context(), c.Param("sessionID"), input.Time)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (h *BookingHandler) GoNext(c *gin.Context) {
	var input struct {
		Target int                 `json:"target" binding:"required"`
		Form   *models.DetailsForm `json:"form"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess, err := h.Service.GoNext(c.Request.Context(), c.Param("sessionID"), input.Target, input.Form)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (h *BookingHandler) GoPrev(c *gin.Context) {
	var input struct {
		Target int `json:"target"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess, err := h.Service.GoPrev(c.Request.Context(), c.Param("sessionID"), input.Target)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (h *BookingHandler) Calendar(c *gin.Context) {
	now := time.Now()
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return
	}

	grid, err := h.Service.MonthGrid(c.Request.Context(), c.Param("sessionID"), year, time.Month(month))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, grid)
}

func (h *BookingHandler) TimeSlots(c *gin.Context) {
	slots, err := h.Service.TimeSlots(c.Request.Context(), c.Param("sessionID"))
	if errors.Is(err, booking.ErrNoSlots) {
		c.JSON(http.StatusOK, gin.H{
			"slots":   []models.TimeSlot{},
			"message": "No available time slots for this date. Please pick another day.",
		})
		return
	}
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

func (h *BookingHandler) Summary(c *gin.Context) {
	summary, err := h.Service.Summary(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	var input models.DetailsForm
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	conf, err := h.Service.Confirm(c.Request.Context(), c.Param("sessionID"), input.Details, input.Consents)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	h.Logger.Info("Booking confirmed via API", zap.String("reference", conf.Reference))
	c.JSON(http.StatusOK, conf)
}
