package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bookhub/internal/domain"
)

type ResourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

func (r *ResourceRepository) Create(ctx context.Context, res *domain.Resource) error {
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *ResourceRepository) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	var res domain.Resource
	err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&res).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// ExistsByName is a case-sensitive exact match, mirroring the registry's
// duplicate-name rule.
func (r *ResourceRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Resource{}).
		Where("name = ? AND deleted_at IS NULL", name).
		Count(&cnt).Error
	return cnt > 0, err
}

// List returns every resource, inactive ones included, in creation order.
func (r *ResourceRepository) List(ctx context.Context) ([]domain.Resource, error) {
	var resources []domain.Resource
	err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("created_at ASC").
		Find(&resources).Error
	return resources, err
}

func (r *ResourceRepository) Update(ctx context.Context, res *domain.Resource) error {
	return r.db.WithContext(ctx).Save(res).Error
}
