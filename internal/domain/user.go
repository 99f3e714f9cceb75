package domain

import "time"

type UserRole string

const (
	RolePending UserRole = "pending"
	RoleUser    UserRole = "user"
	RoleAdmin   UserRole = "admin"
)

type User struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	Name         string    `json:"name" gorm:"size:100"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:150" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role" gorm:"size:32"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SubjectSummary is the reduced user view the booking service embeds when
// enriching admin listings.
type SubjectSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
