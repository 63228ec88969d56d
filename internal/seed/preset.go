package seed

import (
	"fmt"
	"log"
	"os"

	"doorlist/internal/models"
	"doorlist/internal/validation"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Preset describes a fully specified seed scenario loaded from YAML, for demos
// that need recognizable data rather than random noise.
type Preset struct {
	Events []PresetEvent `yaml:"events"`
}

// PresetEvent is one event with its lists.
type PresetEvent struct {
	Name     string       `yaml:"name"`
	Date     string       `yaml:"date"`
	Time     string       `yaml:"time"`
	Location string       `yaml:"location"`
	Capacity int          `yaml:"capacity"`
	Lists    []PresetList `yaml:"lists"`
}

// PresetList is one event list with its guest names, given raw exactly as a
// submitter would type them.
type PresetList struct {
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Sector      string   `yaml:"sector"`
	MaxCapacity int      `yaml:"max_capacity"`
	Guests      []string `yaml:"guests"`
}

// LoadPreset reads and parses a preset YAML file.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}

	var preset Preset
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("parse preset: %w", err)
	}
	if len(preset.Events) == 0 {
		return nil, fmt.Errorf("preset %q defines no events", path)
	}
	return &preset, nil
}

// Apply seeds the database from the preset. List types and sectors are matched
// by name against the built-in catalogs, which are created if missing.
func (p *Preset) Apply(db *gorm.DB) error {
	f := NewFactory(db)

	admin, err := ensureAdmin(db)
	if err != nil {
		return err
	}

	listTypes, err := f.EnsureListTypes()
	if err != nil {
		return err
	}
	sectors, err := f.EnsureSectors()
	if err != nil {
		return err
	}

	typeByName := make(map[string]*models.ListType, len(listTypes))
	for i := range listTypes {
		typeByName[listTypes[i].Name] = &listTypes[i]
	}
	sectorByName := make(map[string]*models.Sector, len(sectors))
	for i := range sectors {
		sectorByName[sectors[i].Name] = &sectors[i]
	}

	for _, pe := range p.Events {
		event, err := f.CreateEvent(admin.ID, 30, func(e *models.Event) {
			e.Name = pe.Name
			if pe.Date != "" {
				e.Date = pe.Date
			}
			if pe.Time != "" {
				e.Time = pe.Time
			}
			e.Location = pe.Location
			if pe.Capacity > 0 {
				e.Capacity = pe.Capacity
			}
		})
		if err != nil {
			return fmt.Errorf("create event %q: %w", pe.Name, err)
		}

		for _, pl := range pe.Lists {
			lt, ok := typeByName[pl.Type]
			if !ok {
				return fmt.Errorf("event %q list %q: unknown list type %q", pe.Name, pl.Name, pl.Type)
			}
			sector, ok := sectorByName[pl.Sector]
			if !ok {
				return fmt.Errorf("event %q list %q: unknown sector %q", pe.Name, pl.Name, pl.Sector)
			}

			list, err := f.CreateEventList(event, lt, sector, pl.MaxCapacity)
			if err != nil {
				return fmt.Errorf("create list %q: %w", pl.Name, err)
			}
			if pl.Name != "" {
				list.Name = pl.Name
				if err := db.Save(list).Error; err != nil {
					return err
				}
			}

			listID := list.ID
			for _, raw := range pl.Guests {
				guest := models.Guest{
					Name:        validation.FormatName(raw),
					EventID:     event.ID,
					EventListID: &listID,
					Status:      models.GuestStatusApproved,
				}
				if err := db.Create(&guest).Error; err != nil {
					return fmt.Errorf("create guest %q: %w", raw, err)
				}
			}
		}
		log.Printf("Seeded event %q with %d lists", pe.Name, len(pe.Lists))
	}

	return nil
}
