// File: handlers/user.go
package handlers

import (
	"errors"
	"net/http"

	"campuscare/models"
	"campuscare/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account and profile endpoints.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler constructs the user handler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

func (h *UserHandler) Register(c *gin.Context) {
	var data models.UserRegistrationData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	res, err := h.Service.SignUp(c.Request.Context(), data)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, user.ErrNotInstitutionalEmail):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *UserHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	res, err := h.Service.SignIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sign-in failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.Service.SignOut(c.Request.Context(), currentUserID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sign-out failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	u, err := h.Service.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch profile", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var update models.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	u, err := h.Service.UpdateProfile(c.Request.Context(), currentUserID(c), update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile", "details": err.Error()})
		return
	}
	getLogger(c).Info("Profile updated", zap.String("userID", u.ID))
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) MyBookings(c *gin.Context) {
	bookings, err := h.Service.ListBookings(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *UserHandler) CancelBooking(c *gin.Context) {
	err := h.Service.CancelBooking(c.Request.Context(), currentUserID(c), c.Param("bookingID"))
	if err != nil {
		if errors.Is(err, user.ErrBookingNotCancellable) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
