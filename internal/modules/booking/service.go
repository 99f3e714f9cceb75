package booking

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"bookhub/internal/domain"
	"bookhub/internal/repository"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// Caller is the authenticated subject acting on the ledger. Token is the raw
// bearer token, forwarded to the identity service for enrichment.
type Caller struct {
	ID    string
	Role  string
	Token string
}

// CanAccessBooking is the ownership predicate: admins reach every booking,
// everyone else only their own.
func CanAccessBooking(caller Caller, b *domain.Booking) bool {
	return caller.Role == string(domain.RoleAdmin) || caller.ID == b.CreatedBy
}

// Service owns the booking lifecycle: overlap-checked creation and
// amendment, soft-delete cancellation, and role-scoped listing.
type Service struct {
	bookings *repository.BookingRepository
	identity IdentityClient
}

func NewService(bookings *repository.BookingRepository, identity IdentityClient) *Service {
	return &Service{bookings: bookings, identity: identity}
}

// Create books a resource for [start, end). The overlap check and the insert
// run in one transaction holding a row lock on the resource, so two
// concurrent requests for the same resource serialize instead of both
// passing the check.
func (s *Service) Create(ctx context.Context, caller Caller, req CreateBookingRequest) (*domain.Booking, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}

	b := &domain.Booking{
		ResourceID: req.ResourceID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Status:     domain.BookingBooked,
		CreatedBy:  caller.ID,
	}

	err := s.bookings.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.NewBookingRepository(tx)

		res, err := txRepo.LockResource(ctx, req.ResourceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrResourceNotFound
			}
			return err
		}
		if !res.IsActive {
			return ErrResourceUnavailable
		}

		overlap, err := txRepo.FindOverlap(ctx, req.ResourceID, req.StartTime, req.EndTime, "")
		if err != nil {
			return err
		}
		if overlap != nil {
			return &ConflictError{Conflict: domain.Interval{Start: overlap.StartTime, End: overlap.EndTime}}
		}

		return txRepo.Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"booking_id":  b.ID,
		"resource_id": b.ResourceID,
		"created_by":  b.CreatedBy,
	}).Info("booking created")

	return b, nil
}

// Get fetches a live booking and applies the ownership predicate. A booking
// that exists but belongs to someone else is Forbidden, not NotFound.
func (s *Service) Get(ctx context.Context, caller Caller, id string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !CanAccessBooking(caller, b) {
		return nil, ErrForbidden
	}
	return b, nil
}

// Update amends resource or interval of a BOOKED booking. The no-overlap
// invariant is re-checked against the amended values, excluding the booking
// itself, under the same resource lock as Create.
func (s *Service) Update(ctx context.Context, caller Caller, id string, req UpdateBookingRequest) (*domain.Booking, error) {
	var updated *domain.Booking

	err := s.bookings.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.NewBookingRepository(tx)

		b, err := txRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if !CanAccessBooking(caller, b) {
			return ErrForbidden
		}

		if req.ResourceID != nil {
			b.ResourceID = *req.ResourceID
			b.Resource = nil
		}
		if req.StartTime != nil {
			b.StartTime = *req.StartTime
		}
		if req.EndTime != nil {
			b.EndTime = *req.EndTime
		}
		if !b.EndTime.After(b.StartTime) {
			return ErrInvalidTimeRange
		}

		res, err := txRepo.LockResource(ctx, b.ResourceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrResourceNotFound
			}
			return err
		}
		if !res.IsActive {
			return ErrResourceUnavailable
		}

		overlap, err := txRepo.FindOverlap(ctx, b.ResourceID, b.StartTime, b.EndTime, b.ID)
		if err != nil {
			return err
		}
		if overlap != nil {
			return &ConflictError{Conflict: domain.Interval{Start: overlap.StartTime, End: overlap.EndTime}}
		}

		if err := txRepo.Update(ctx, b); err != nil {
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"booking_id": updated.ID, "updated_by": caller.ID}).Info("booking updated")
	return updated, nil
}

// Cancel soft-deletes a booking: status goes to CANCELLED and deleted_at is
// set, hiding it from normal reads. A second cancel finds nothing and
// reports NotFound.
func (s *Service) Cancel(ctx context.Context, caller Caller, id string) error {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !CanAccessBooking(caller, b) {
		return ErrForbidden
	}

	if err := s.bookings.Cancel(ctx, id, time.Now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	logrus.WithFields(logrus.Fields{"booking_id": id, "cancelled_by": caller.ID}).Info("booking cancelled")
	return nil
}

// List returns a page of bookings visible to the caller. User-role callers
// are scoped to their own bookings before any filter applies; admins see
// everything and get creator summaries from the identity service.
func (s *Service) List(ctx context.Context, caller Caller, q ListBookingsQuery) (*BookingListResult, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > maxPageLimit {
		q.Limit = defaultPageLimit
	}

	f := repository.BookingFilters{
		Status:       q.Status,
		ResourceName: q.Resource,
		Limit:        q.Limit,
		Offset:       (q.Page - 1) * q.Limit,
	}

	isAdmin := caller.Role == string(domain.RoleAdmin)
	if !isAdmin {
		f.CreatedBy = caller.ID
	}

	bookings, total, err := s.bookings.List(ctx, f)
	if err != nil {
		return nil, err
	}

	// Enrichment is best-effort: a failed identity lookup degrades every
	// creator to null instead of failing the listing.
	var users map[string]domain.SubjectSummary
	if isAdmin && s.identity != nil {
		users, err = s.identity.FetchUsers(ctx, caller.Token)
		if err != nil {
			logrus.WithError(err).Error("could not fetch user details from auth service")
			users = nil
		}
	}

	data := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		view := BookingView{
			ID:        b.ID,
			Resource:  b.Resource,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Status:    b.Status,
			CreatedAt: b.CreatedAt,
			UpdatedAt: b.UpdatedAt,
		}
		if isAdmin {
			if u, ok := users[b.CreatedBy]; ok {
				summary := u
				view.CreatedBy = &summary
			}
		}
		data = append(data, view)
	}

	return &BookingListResult{
		Total: total,
		Page:  q.Page,
		Limit: q.Limit,
		Data:  data,
	}, nil
}

// GetAny sees through soft deletion. It backs internal auditing and has no
// HTTP route.
func (s *Service) GetAny(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookings.GetAnyByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}
