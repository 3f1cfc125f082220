// File: services/user/profile.go
package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campuscare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

func (s *DefaultUserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *DefaultUserService) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (*models.User, error) {
	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.FirstName != "" {
		u.FirstName = update.FirstName
	}
	if update.LastName != "" {
		u.LastName = update.LastName
	}
	if update.CourseYear != "" {
		u.CourseYear = update.CourseYear
	}
	if update.Phone != "" {
		u.Phone = update.Phone
	}
	if update.FCMToken != "" {
		u.FCMToken = update.FCMToken
	}
	u.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return u, nil
}
