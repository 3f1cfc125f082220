// File: services/resources/service.go
package resources

import (
	"context"
	"fmt"
	"strings"
	"time"

	resourceRepo "campuscare/database/repository/resource"
	"campuscare/models"
)

// ResourceService serves the wellness resource library and tracks per-user
// activity against it.
type ResourceService interface {
	// List returns resources, optionally filtered by category and a free-text
	// query over title and description.
	List(category, query string) []models.Resource

	// Get looks up one resource by key.
	Get(key string) (models.Resource, error)

	// TrackStart records that a user opened a resource.
	TrackStart(ctx context.Context, userID, key string) error

	// Save bookmarks a resource for a user. Saving twice is a no-op.
	Save(ctx context.Context, userID, key string) error

	// ListSaved returns a user's bookmarked resources, most recent first.
	ListSaved(ctx context.Context, userID string) ([]models.Resource, error)
}

// DefaultResourceService is the production ResourceService implementation.
type DefaultResourceService struct {
	Repo    resourceRepo.ResourceActivityRepository
	catalog []models.Resource
	byKey   map[string]models.Resource
}

// NewDefaultResourceService constructs the resource service with the
// built-in library.
func NewDefaultResourceService(repo resourceRepo.ResourceActivityRepository) *DefaultResourceService {
	catalog := defaultResources()
	byKey := make(map[string]models.Resource, len(catalog))
	for _, r := range catalog {
		byKey[r.Key] = r
	}
	return &DefaultResourceService{Repo: repo, catalog: catalog, byKey: byKey}
}

func (s *DefaultResourceService) List(category, query string) []models.Resource {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []models.Resource
	for _, r := range s.catalog {
		if category != "" && r.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(r.Title), query) &&
			!strings.Contains(strings.ToLower(r.Description), query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (s *DefaultResourceService) Get(key string) (models.Resource, error) {
	r, ok := s.byKey[key]
	if !ok {
		return models.Resource{}, fmt.Errorf("unknown resource %q", key)
	}
	return r, nil
}

func (s *DefaultResourceService) TrackStart(ctx context.Context, userID, key string) error {
	if _, err := s.Get(key); err != nil {
		return err
	}
	return s.Repo.Create(ctx, &models.ResourceActivity{
		UserID:      userID,
		ResourceKey: key,
		Kind:        ActivityStarted,
		RecordedAt:  time.Now(),
	})
}

func (s *DefaultResourceService) Save(ctx context.Context, userID, key string) error {
	if _, err := s.Get(key); err != nil {
		return err
	}
	exists, err := s.Repo.Exists(ctx, userID, key, ActivitySaved)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.Repo.Create(ctx, &models.ResourceActivity{
		UserID:      userID,
		ResourceKey: key,
		Kind:        ActivitySaved,
		RecordedAt:  time.Now(),
	})
}

func (s *DefaultResourceService) ListSaved(ctx context.Context, userID string) ([]models.Resource, error) {
	activities, err := s.Repo.ListByUser(ctx, userID, ActivitySaved)
	if err != nil {
		return nil, err
	}
	var out []models.Resource
	for _, a := range activities {
		if r, ok := s.byKey[a.ResourceKey]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}
