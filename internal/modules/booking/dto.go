package booking

import (
	"time"

	"bookhub/internal/domain"
)

type CreateBookingRequest struct {
	ResourceID string    `json:"resource_id" binding:"required"`
	StartTime  time.Time `json:"start_time" binding:"required"`
	EndTime    time.Time `json:"end_time" binding:"required"`
}

// UpdateBookingRequest amends a live booking; nil fields keep their value.
type UpdateBookingRequest struct {
	ResourceID *string    `json:"resource_id"`
	StartTime  *time.Time `json:"start_time"`
	EndTime    *time.Time `json:"end_time"`
}

type ListBookingsQuery struct {
	Status   string
	Resource string
	Page     int
	Limit    int
}

// BookingView is a listing row. CreatedBy is only populated for admin
// callers, and only when the identity lookup succeeded.
type BookingView struct {
	ID        string                 `json:"id"`
	Resource  *domain.Resource       `json:"resource"`
	StartTime time.Time              `json:"start_time"`
	EndTime   time.Time              `json:"end_time"`
	Status    domain.BookingStatus   `json:"status"`
	CreatedBy *domain.SubjectSummary `json:"created_by"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

type BookingListResult struct {
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Data  []BookingView `json:"data"`
}
