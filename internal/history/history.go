package history

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"accela.dev/launcher/internal/folder"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var ErrNotOpened = errors.New("history store not opened")

// Launch is one launcher invocation: the arguments forwarded to the GUI,
// whether setup was requested, and whether environment creation ran.
type Launch struct {
	ID                 uint   `gorm:"primaryKey"`
	Arguments          string `gorm:"not null"`
	SetupRequested     bool
	EnvironmentCreated bool
	InsertionDate      time.Time `gorm:"autoCreateTime;not null"`
}

// Store keeps the launch history in a local database under BasePath.
type Store struct {
	BasePath string
	database *gorm.DB
}

func (store *Store) Open() (err error) {
	databasePath := filepath.Join(store.BasePath, folder.DatabasePath)
	if err = os.MkdirAll(filepath.Dir(databasePath), 0755); err != nil {
		return
	}
	dialector := sqlite.Open(databasePath)
	if store.database, err = gorm.Open(dialector, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	}); err != nil {
		return
	}
	return
}

func (store *Store) Migrate() (err error) {
	if store.database == nil {
		return ErrNotOpened
	}
	return store.database.AutoMigrate(&Launch{})
}

func (store *Store) Close() (err error) {
	if store.database == nil {
		return
	}
	var database *sql.DB
	if database, err = store.database.DB(); err != nil {
		return
	}
	if err = database.Close(); err != nil {
		return
	}
	return
}

// Record stores one invocation right before handoff.
func (store *Store) Record(passthrough []string, setupRequested bool, environmentCreated bool) error {
	entry := Launch{
		Arguments:          strings.Join(passthrough, " "),
		SetupRequested:     setupRequested,
		EnvironmentCreated: environmentCreated,
	}
	if result := store.database.Create(&entry); result.Error != nil {
		return result.Error
	}
	return nil
}

func (store *Store) Launches() (entity []Launch, err error) {
	if result := store.database.Order("insertion_date").Find(&entity); result.Error != nil {
		err = result.Error
		return
	}
	return
}
