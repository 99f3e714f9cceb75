package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bookhub/internal/config"
	"bookhub/internal/database"
	"bookhub/internal/domain"
	"bookhub/internal/repository"
)

// Seeds the admin account, a couple of demo users, resources and bookings.
// Safe to re-run: existing rows are kept.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatal("DB connection failed: ", err)
	}

	logrus.Info("running migrations")
	if err := database.Migrate(db); err != nil {
		logrus.Fatal("migrations failed: ", err)
	}

	admin := seedUser(db, "Super Admin", "admin@example.com", "Admin@123", domain.RoleAdmin)
	alice := seedUser(db, "Alice", "alice@example.com", "alice123", domain.RoleUser)
	seedUser(db, "Bob", "bob@example.com", "bob123", domain.RolePending)

	roomA := seedResource(db, "Meeting Room A", "First floor, seats 8")
	seedResource(db, "Meeting Room B", "Second floor, seats 4")
	seedResource(db, "Projector", "")

	seedBooking(db, roomA, alice, time.Now().Add(24*time.Hour).Truncate(time.Hour), 2*time.Hour)

	logrus.WithField("admin", admin.Email).Info("seeding done")
}

func seedUser(db *gorm.DB, name, email, password string, role domain.UserRole) *domain.User {
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	if u, err := repo.GetByEmail(ctx, email); err == nil {
		return u
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.Fatal(err)
	}

	u := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := repo.Create(ctx, u); err != nil {
		logrus.Fatal("seed user failed: ", err)
	}
	logrus.WithFields(logrus.Fields{"email": email, "role": role}).Info("user created")
	return u
}

func seedResource(db *gorm.DB, name, description string) *domain.Resource {
	repo := repository.NewResourceRepository(db)
	ctx := context.Background()

	exists, err := repo.ExistsByName(ctx, name)
	if err != nil {
		logrus.Fatal(err)
	}
	if exists {
		resources, _ := repo.List(ctx)
		for i := range resources {
			if resources[i].Name == name {
				return &resources[i]
			}
		}
	}

	res := &domain.Resource{Name: name, Description: description, IsActive: true}
	if err := repo.Create(ctx, res); err != nil {
		logrus.Fatal("seed resource failed: ", err)
	}
	logrus.WithField("name", name).Info("resource created")
	return res
}

func seedBooking(db *gorm.DB, res *domain.Resource, user *domain.User, start time.Time, d time.Duration) {
	repo := repository.NewBookingRepository(db)
	ctx := context.Background()

	overlap, err := repo.FindOverlap(ctx, res.ID, start, start.Add(d), "")
	if err != nil {
		logrus.Fatal(err)
	}
	if overlap != nil {
		return
	}

	b := &domain.Booking{
		ResourceID: res.ID,
		StartTime:  start,
		EndTime:    start.Add(d),
		Status:     domain.BookingBooked,
		CreatedBy:  user.ID,
	}
	if err := repo.Create(ctx, b); err != nil {
		logrus.Fatal("seed booking failed: ", err)
	}
	logrus.WithField("booking_id", b.ID).Info("booking created")
}
