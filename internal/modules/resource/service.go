package resource

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"bookhub/internal/domain"
	"bookhub/internal/repository"
)

type Service struct {
	resources ResourceRepository
}

func NewService(resources ResourceRepository) *Service {
	return &Service{resources: resources}
}

// Create registers a bookable resource. Names are unique with exact,
// case-sensitive matching.
func (s *Service) Create(ctx context.Context, req CreateResourceRequest) (*domain.Resource, error) {
	exists, err := s.resources.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrNameTaken
	}

	res := &domain.Resource{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}

	if err := s.resources.Create(ctx, res); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrNameTaken
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"resource_id": res.ID, "name": res.Name}).Info("resource created")
	return res, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Resource, error) {
	return s.resources.List(ctx)
}

// Update applies only the fields present in the request. Deactivating a
// resource leaves its existing bookings alone; history is preserved.
func (s *Service) Update(ctx context.Context, id string, req UpdateResourceRequest) (*domain.Resource, error) {
	res, err := s.resources.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil && *req.Name != res.Name {
		exists, err := s.resources.ExistsByName(ctx, *req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrNameTaken
		}
		res.Name = *req.Name
	}
	if req.Description != nil {
		res.Description = *req.Description
	}
	if req.IsActive != nil {
		res.IsActive = *req.IsActive
	}

	if err := s.resources.Update(ctx, res); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrNameTaken
		}
		return nil, err
	}

	logrus.WithField("resource_id", res.ID).Info("resource updated")
	return res, nil
}
