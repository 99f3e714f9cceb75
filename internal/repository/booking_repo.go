package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bookhub/internal/domain"
)

// BookingFilters narrow the ledger listing. CreatedBy is set for user-role
// callers (scoped listing); admin callers leave it empty.
type BookingFilters struct {
	CreatedBy    string
	Status       string
	ResourceName string
	Limit        int
	Offset       int
}

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) DB() *gorm.DB { return r.db }

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Omit("Resource").Create(b).Error
}

// GetByID returns a live booking; soft-deleted rows report not-found.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Resource").
		Where("id = ? AND deleted_at IS NULL", id).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetAnyByID is the audit path: it sees through soft deletion. Not routed
// over HTTP.
func (r *BookingRepository) GetAnyByID(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Resource").
		Where("id = ?", id).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// FindOverlap returns the first surviving BOOKED booking on the resource
// whose [start_time, end_time) intersects [start, end), or nil. excludeID
// skips the booking being amended.
func (r *BookingRepository) FindOverlap(ctx context.Context, resourceID string, start, end time.Time, excludeID string) (*domain.Booking, error) {
	q := r.db.WithContext(ctx).
		Where("resource_id = ?", resourceID).
		Where("status = ?", string(domain.BookingBooked)).
		Where("deleted_at IS NULL").
		Where("start_time < ? AND end_time > ?", end, start)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var b domain.Booking
	err := q.Order("start_time ASC").First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// LockResource takes a FOR UPDATE row lock on the resource, serializing the
// overlap check and insert for concurrent bookings of the same resource.
// SQLite ignores the clause; its single writer gives the same guarantee.
func (r *BookingRepository) LockResource(ctx context.Context, resourceID string) (*domain.Resource, error) {
	var res domain.Resource
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND deleted_at IS NULL", resourceID).
		First(&res).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Omit("Resource").Save(b).Error
}

// Cancel marks the booking CANCELLED and soft-deletes it in one write.
func (r *BookingRepository) Cancel(ctx context.Context, id string, at time.Time) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]any{
			"status":     string(domain.BookingCancelled),
			"deleted_at": at,
			"updated_at": at,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List applies scope and filters, counts the full result set, then pages it
// ordered by start time.
func (r *BookingRepository) List(ctx context.Context, f BookingFilters) ([]domain.Booking, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Joins("JOIN resources ON resources.id = bookings.resource_id").
		Where("bookings.deleted_at IS NULL")

	if f.CreatedBy != "" {
		q = q.Where("bookings.created_by = ?", f.CreatedBy)
	}
	if f.Status != "" {
		q = q.Where("bookings.status = ?", f.Status)
	}
	if f.ResourceName != "" {
		pattern := "%" + strings.ToLower(f.ResourceName) + "%"
		q = q.Where("LOWER(resources.name) LIKE ?", pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []domain.Booking
	err := q.
		Preload("Resource").
		Order("bookings.start_time ASC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}
