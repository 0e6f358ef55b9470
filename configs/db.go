package configs

import (
	"fmt"
	"sync"

	"github.com/Crafty4/web1/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	db       *gorm.DB
	dbOnce   sync.Once
	dbInitEr error
)

// Connect opens the database exactly once, no matter how many callers race
// on startup. Subsequent calls return the same handle (or the same error).
func Connect(cfg *Config) (*gorm.DB, error) {
	dbOnce.Do(func() {
		var dialector gorm.Dialector
		switch cfg.DBDriver {
		case "postgres":
			dialector = postgres.Open(cfg.DBSource)
		case "sqlite":
			dialector = sqlite.Open(cfg.DBSource)
		default:
			dbInitEr = fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
			return
		}
		db, dbInitEr = gorm.Open(dialector, &gorm.Config{})
	})
	return db, dbInitEr
}

func DB() *gorm.DB { return db }

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Notification{},
		&entity.Rating{},
		&entity.GalleryImage{},
	)
}
