// File: services/user/auth.go
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"campuscare/config"
	"campuscare/models"
	"campuscare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const fallbackEmailDomain = "campus.edu"

func institutionalEmail(email string) bool {
	domain := config.AppConfig.EmailDomain
	if domain == "" {
		domain = fallbackEmailDomain
	}
	return strings.HasSuffix(strings.ToLower(strings.TrimSpace(email)), "@"+domain)
}

func (s *DefaultUserService) SignUp(ctx context.Context, data models.UserRegistrationData) (*AuthResult, error) {
	data.Email = strings.ToLower(strings.TrimSpace(data.Email))
	if data.FirstName == "" || data.LastName == "" || data.Email == "" {
		return nil, fmt.Errorf("first name, last name and email are required")
	}
	if len(data.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	if !institutionalEmail(data.Email) {
		return nil, ErrNotInstitutionalEmail
	}

	available, err := s.Repo.IsEmailAvailable(ctx, data.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email availability: %w", err)
	}
	if !available {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	u := &models.User{
		ID:           uuid.New().String(),
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		PasswordHash: string(hash),
		StudentID:    data.StudentID,
		CourseYear:   data.CourseYear,
		Phone:        data.Phone,
		Role:         "student",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	token, err := utils.GenerateToken(u.ID, u.Email, s.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	u.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	utils.GetLogger().Info("Account registered",
		zap.String("userID", u.ID),
		zap.String("email", u.Email))
	return &AuthResult{User: u, Token: token}, nil
}

func (s *DefaultUserService) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// One active token per account: signing in revokes the previous one.
	token, err := utils.GenerateToken(u.ID, u.Email, s.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	u.TokenHash = utils.HashToken(token)
	if err := s.Repo.UpdateTokenHash(ctx, u.ID, u.TokenHash); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	utils.GetLogger().Info("Account signed in", zap.String("userID", u.ID))
	return &AuthResult{User: u, Token: token}, nil
}

func (s *DefaultUserService) SignOut(ctx context.Context, userID string) error {
	if err := s.Repo.UpdateTokenHash(ctx, userID, ""); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}
