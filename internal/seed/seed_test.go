package seed

import (
	"os"
	"path/filepath"
	"testing"

	"doorlist/internal/database"
	"doorlist/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))
	return db
}

func TestSeed(t *testing.T) {
	db := setupDB(t)

	err := Seed(db, Options{
		NumEvents:     2,
		ListsPerEvent: 3,
		GuestsPerList: 5,
		NumUsers:      4,
		// sqlite has no TRUNCATE ... CASCADE
		ShouldClean: false,
	})
	require.NoError(t, err)

	var eventCount, listCount, typeCount, sectorCount int64
	db.Model(&models.Event{}).Count(&eventCount)
	db.Model(&models.EventList{}).Count(&listCount)
	db.Model(&models.ListType{}).Count(&typeCount)
	db.Model(&models.Sector{}).Count(&sectorCount)

	assert.EqualValues(t, 2, eventCount)
	assert.EqualValues(t, 6, listCount)
	assert.EqualValues(t, 4, typeCount)
	assert.EqualValues(t, 4, sectorCount)

	// The demo admin exists exactly once, even if Seed runs twice.
	require.NoError(t, Seed(db, Options{NumEvents: 1, ListsPerEvent: 1, GuestsPerList: 1}))
	var admins int64
	db.Model(&models.User{}).Where("email = ?", "admin@example.com").Count(&admins)
	assert.EqualValues(t, 1, admins)

	// Seeded guests went through the name formatter.
	var guests []models.Guest
	require.NoError(t, db.Find(&guests).Error)
	for _, g := range guests {
		assert.NotEqual(t, g.Name, "", "guest name must not be empty")
		assert.NotEqual(t, g.Name, "DA SILVA", "names must be formatted")
		if g.CheckedIn {
			assert.NotNil(t, g.CheckedInAt)
		} else {
			assert.Nil(t, g.CheckedInAt)
		}
	}
}

func TestPreset(t *testing.T) {
	db := setupDB(t)

	presetYAML := `
events:
  - name: "Noite Eletrônica"
    date: "2026-09-12"
    time: "22:00"
    location: "Armazém 14"
    capacity: 500
    lists:
      - name: "Lista VIP"
        type: "VIP"
        sector: "Camarote"
        max_capacity: 50
        guests:
          - "MARIA DE SOUZA"
          - "joão da silva"
      - name: "Lista Free"
        type: "Free"
        sector: "Pista"
        guests:
          - "ana clara dos santos"
`
	path := filepath.Join(t.TempDir(), "preset.yml")
	require.NoError(t, os.WriteFile(path, []byte(presetYAML), 0o600))

	preset, err := LoadPreset(path)
	require.NoError(t, err)
	require.Len(t, preset.Events, 1)

	require.NoError(t, preset.Apply(db))

	var event models.Event
	require.NoError(t, db.Where("name = ?", "Noite Eletrônica").First(&event).Error)
	assert.Equal(t, "2026-09-12", event.Date)

	var guests []models.Guest
	require.NoError(t, db.Order("id ASC").Find(&guests).Error)
	require.Len(t, guests, 3)
	assert.Equal(t, "Maria de Souza", guests[0].Name)
	assert.Equal(t, "João da Silva", guests[1].Name)
	assert.Equal(t, "Ana Clara dos Santos", guests[2].Name)
}

func TestLoadPresetErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadPreset("/does/not/exist.yml")
		assert.Error(t, err)
	})

	t.Run("empty preset", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.yml")
		require.NoError(t, os.WriteFile(path, []byte("events: []"), 0o600))
		_, err := LoadPreset(path)
		assert.Error(t, err)
	})

	t.Run("unknown list type", func(t *testing.T) {
		db := setupDB(t)
		preset := &Preset{Events: []PresetEvent{{
			Name: "Test",
			Date: "2026-01-01",
			Lists: []PresetList{
				{Name: "L", Type: "Nonexistent", Sector: "Pista"},
			},
		}}}
		err := preset.Apply(db)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown list type")
	})
}
