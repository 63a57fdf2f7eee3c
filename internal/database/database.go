package database

import (
	"strings"

	"github.com/coachpeter/coach-peter-api/internal/config"
	"github.com/coachpeter/coach-peter-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	db, err := Open(cfg.DatabaseURL)
	if err != nil {
		return err
	}

	DB = db
	return nil
}

// Open connects to PostgreSQL if the URL starts with postgres,
// otherwise treats it as an SQLite path.
func Open(databaseURL string) (*gorm.DB, error) {
	var dialector gorm.Dialector

	if strings.HasPrefix(databaseURL, "postgres") {
		dialector = postgres.Open(databaseURL)
	} else {
		dialector = sqlite.Open(databaseURL)
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Goal{},
		&models.Plan{},
		&models.PlanGoal{},
	)
}

// ResetGoals drops and recreates the goals table, plus the plan membership
// rows that reference it. Used by the ops reset endpoint only.
func ResetGoals(db *gorm.DB) error {
	m := db.Migrator()
	for _, table := range []interface{}{&models.PlanGoal{}, &models.Goal{}} {
		if m.HasTable(table) {
			if err := m.DropTable(table); err != nil {
				return err
			}
		}
	}
	return db.AutoMigrate(&models.Goal{}, &models.PlanGoal{})
}

// ResetUsers drops and recreates the users table.
func ResetUsers(db *gorm.DB) error {
	m := db.Migrator()
	if m.HasTable(&models.User{}) {
		if err := m.DropTable(&models.User{}); err != nil {
			return err
		}
	}
	return db.AutoMigrate(&models.User{})
}
