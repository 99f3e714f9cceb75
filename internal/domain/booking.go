package domain

import "time"

type BookingStatus string

const (
	BookingBooked    BookingStatus = "BOOKED"
	BookingCancelled BookingStatus = "CANCELLED"
)

type Booking struct {
	ID         string        `json:"id" gorm:"primaryKey;size:36"`
	ResourceID string        `json:"resource_id" gorm:"size:36;index" validate:"required"`
	StartTime  time.Time     `json:"start_time" validate:"required"`
	EndTime    time.Time     `json:"end_time" validate:"required"`
	Status     BookingStatus `json:"status" gorm:"size:16"`
	CreatedBy  string        `json:"created_by" gorm:"size:36;index"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
	DeletedAt  *time.Time    `json:"-"`

	Resource *Resource `json:"resource,omitempty" gorm:"foreignKey:ResourceID"`
}

// Interval is a half-open [start, end) time range, used when reporting
// booking conflicts.
type Interval struct {
	Start time.Time `json:"start_time"`
	End   time.Time `json:"end_time"`
}

// Overlaps reports whether [a.Start, a.End) intersects [b.Start, b.End).
func (a Interval) Overlaps(b Interval) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}
