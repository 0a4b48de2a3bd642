package db

import (
	"fmt"

	"github.com/20225587/Tasker/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the configured database. mysql is the production driver;
// sqlite serves development and the test suite. Foreign keys are enabled
// on sqlite so the task cascade behaves like the mysql schema.
func Connect(cfg config.DB) (*gorm.DB, error) {
	// TranslateError maps driver unique-violation errors onto
	// gorm.ErrDuplicatedKey, the authoritative duplicate guard.
	gcfg := &gorm.Config{TranslateError: true}
	switch cfg.Driver {
	case "sqlite":
		dsn := fmt.Sprintf("file:%s?_foreign_keys=on", cfg.Path)
		return gorm.Open(sqlite.Open(dsn), gcfg)
	case "mysql", "":
		return gorm.Open(mysql.Open(mysqlDSN(cfg)), gcfg)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}

// Deadlines are stored as UTC midnight, so the connection is pinned to
// UTC; loc=Local would shift DATETIME scans by the server offset and a
// deadline could render as the previous day.
func mysqlDSN(cfg config.DB) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		cfg.User, cfg.Pass, cfg.Host, cfg.Port, cfg.Name)
}
