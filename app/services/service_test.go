package services

import (
	"fmt"
	"testing"

	"github.com/20225587/Tasker/app/models"
	"github.com/20225587/Tasker/app/repo"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory sqlite database with foreign keys
// on, so the user→task cascade behaves like the production schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Task{}))
	return gdb
}

func newUserService(t *testing.T) (*UserService, *gorm.DB) {
	gdb := newTestDB(t)
	return NewUserService(repo.NewUserRepository(gdb)), gdb
}
