// Package seed provides helpers to create demo and test data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"doorlist/internal/models"
	"doorlist/internal/validation"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	guestFirstNames = []string{
		"Ana", "Beatriz", "Bruno", "Camila", "Carlos", "Daniela", "Diego",
		"Eduardo", "Fernanda", "Gabriel", "Helena", "Igor", "Juliana",
		"Larissa", "Lucas", "Mariana", "Matheus", "Patrícia", "Pedro",
		"Rafael", "Renata", "Rodrigo", "Sofia", "Thiago", "Vitória",
	}

	guestSurnames = []string{
		"da Silva", "dos Santos", "de Oliveira", "Souza", "Pereira",
		"Costa", "Rodrigues", "Almeida", "do Nascimento", "Lima",
		"Araújo", "Fernandes", "Carvalho", "Gomes", "Martins",
		"Ribeiro", "Barbosa", "de Moraes", "Cardoso", "Teixeira",
	}

	listTypeSeeds = []models.ListType{
		{Name: "VIP", Description: "Priority entry, no queue", Color: "#d4af37", Active: true},
		{Name: "Free", Description: "Free entry before midnight", Color: "#4caf50", Active: true},
		{Name: "Discount", Description: "Half-price entry", Color: "#2196f3", Active: true},
		{Name: "Staff", Description: "Working the event", Color: "#9e9e9e", Active: true},
	}

	sectorSeeds = []models.Sector{
		{Name: "Pista", Color: "#3f51b5", Capacity: 800},
		{Name: "Camarote", Color: "#9c27b0", Capacity: 120},
		{Name: "Backstage", Color: "#607d8b", Capacity: 40},
		{Name: "Mezanino", Color: "#ff9800", Capacity: 200},
	}
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db *gorm.DB
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db}
}

// GuestName produces a plausible Brazilian name in raw (unformatted) casing,
// so seeded data exercises the name formatter the way real submissions do.
func GuestName() string {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	name := fmt.Sprintf("%s %s",
		guestFirstNames[r.Intn(len(guestFirstNames))],
		guestSurnames[r.Intn(len(guestSurnames))])

	// Roughly a third arrive ALL CAPS, a third lowercase, the rest as-is.
	switch r.Intn(3) {
	case 0:
		return strings.ToUpper(name)
	case 1:
		return strings.ToLower(name)
	default:
		return name
	}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    gofakeit.Email(),
		Password: string(hashedPassword),
		Role:     models.RoleUser,
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateEvent constructs and persists a sample `models.Event` within the next
// maxDaysAhead days.
func (f *Factory) CreateEvent(createdBy uint, maxDaysAhead int, overrides ...func(*models.Event)) (*models.Event, error) {
	if maxDaysAhead <= 0 {
		maxDaysAhead = 30
	}
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	date := time.Now().AddDate(0, 0, r.Intn(maxDaysAhead))

	event := &models.Event{
		Name:        fmt.Sprintf("%s %s", gofakeit.HipsterWord(), gofakeit.City()),
		Description: gofakeit.Sentence(8),
		Date:        date.Format("2006-01-02"),
		Time:        fmt.Sprintf("%02d:00", 19+r.Intn(5)),
		Location:    gofakeit.Street(),
		Status:      models.EventStatusActive,
		Capacity:    200 + r.Intn(800),
		CreatedBy:   createdBy,
	}

	for _, override := range overrides {
		override(event)
	}

	if err := f.db.Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

// EnsureListTypes persists the built-in list types if they do not exist yet.
func (f *Factory) EnsureListTypes() ([]models.ListType, error) {
	out := make([]models.ListType, 0, len(listTypeSeeds))
	for _, seed := range listTypeSeeds {
		var lt models.ListType
		if err := f.db.Where(models.ListType{Name: seed.Name}).
			Attrs(seed).
			FirstOrCreate(&lt).Error; err != nil {
			return nil, err
		}
		out = append(out, lt)
	}
	return out, nil
}

// EnsureSectors persists the built-in sectors if they do not exist yet.
func (f *Factory) EnsureSectors() ([]models.Sector, error) {
	out := make([]models.Sector, 0, len(sectorSeeds))
	for _, seed := range sectorSeeds {
		var sector models.Sector
		if err := f.db.Where(models.Sector{Name: seed.Name}).
			Attrs(seed).
			FirstOrCreate(&sector).Error; err != nil {
			return nil, err
		}
		out = append(out, sector)
	}
	return out, nil
}

// CreateEventList constructs and persists an event list tying the event to a
// list type and sector.
func (f *Factory) CreateEventList(event *models.Event, listType *models.ListType, sector *models.Sector, maxCapacity int) (*models.EventList, error) {
	list := &models.EventList{
		Name:        fmt.Sprintf("%s %s", listType.Name, sector.Name),
		EventID:     event.ID,
		ListTypeID:  listType.ID,
		SectorID:    sector.ID,
		MaxCapacity: maxCapacity,
	}
	if err := f.db.Create(list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// CreateGuests persists count guests on the list, formatted the way the
// submission pipeline would format them. Roughly a third arrive checked in.
func (f *Factory) CreateGuests(list *models.EventList, count int, checkedInBy uint) ([]models.Guest, error) {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	guests := make([]models.Guest, 0, count)
	for i := 0; i < count; i++ {
		listID := list.ID
		guest := models.Guest{
			Name:        validation.FormatName(GuestName()),
			EventID:     list.EventID,
			EventListID: &listID,
			Status:      models.GuestStatusApproved,
		}
		if r.Intn(3) == 0 {
			now := time.Now().Add(-time.Duration(r.Intn(120)) * time.Minute)
			actor := checkedInBy
			guest.CheckedIn = true
			guest.CheckedInAt = &now
			guest.CheckedInBy = &actor
		}
		guests = append(guests, guest)
	}

	if len(guests) == 0 {
		return guests, nil
	}
	if err := f.db.Create(&guests).Error; err != nil {
		return nil, err
	}
	return guests, nil
}
