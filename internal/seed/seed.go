package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"doorlist/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumEvents     int
	ListsPerEvent int
	GuestsPerList int
	NumUsers      int
	ShouldClean   bool
}

// Seed populates the database with demo data: staff users, the built-in list
// types and sectors, and events with populated lists.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding: %d events, %d lists each, ~%d guests per list...",
		opts.NumEvents, opts.ListsPerEvent, opts.GuestsPerList)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	f := NewFactory(db)

	admin, err := ensureAdmin(db)
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	users, err := createStaff(f, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d staff users created", len(users))

	listTypes, err := f.EnsureListTypes()
	if err != nil {
		return fmt.Errorf("failed to seed list types: %w", err)
	}
	sectors, err := f.EnsureSectors()
	if err != nil {
		return fmt.Errorf("failed to seed sectors: %w", err)
	}
	log.Printf("%d list types and %d sectors available", len(listTypes), len(sectors))

	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	totalGuests := 0
	for i := 0; i < opts.NumEvents; i++ {
		event, err := f.CreateEvent(admin.ID, 30)
		if err != nil {
			return fmt.Errorf("failed to create event: %w", err)
		}

		for j := 0; j < opts.ListsPerEvent; j++ {
			lt := listTypes[r.Intn(len(listTypes))]
			sector := sectors[r.Intn(len(sectors))]
			capacity := opts.GuestsPerList + r.Intn(opts.GuestsPerList+1)

			list, err := f.CreateEventList(event, &lt, &sector, capacity)
			if err != nil {
				return fmt.Errorf("failed to create event list: %w", err)
			}

			count := r.Intn(opts.GuestsPerList + 1)
			guests, err := f.CreateGuests(list, count, admin.ID)
			if err != nil {
				return fmt.Errorf("failed to create guests: %w", err)
			}
			totalGuests += len(guests)
		}
	}

	log.Printf("%d events seeded with %d guests total", opts.NumEvents, totalGuests)
	log.Println("Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE guests, event_lists, activity_logs, events, sectors, list_types, site_settings, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

// ensureAdmin creates the demo admin account if it does not exist.
func ensureAdmin(db *gorm.DB) (*models.User, error) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	var admin models.User
	err := db.Where(models.User{Email: "admin@example.com"}).
		Attrs(models.User{
			Name:     "Ana Admin",
			Password: string(hashedPassword),
			Role:     models.RoleAdmin,
		}).
		FirstOrCreate(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func createStaff(f *Factory, count int) ([]models.User, error) {
	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		role := models.RoleUser
		if i%3 == 0 {
			role = models.RolePortaria
		}
		user, err := f.CreateUser(func(u *models.User) {
			u.Role = role
		})
		if err != nil {
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, *user)
	}
	return users, nil
}
