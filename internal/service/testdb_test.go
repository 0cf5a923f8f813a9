package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/courtesjuan/OakTownTechnologyServer/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a per-test in-memory SQLite database. cache=shared keeps
// every pooled connection on the same database; the test name keeps tests
// isolated from each other.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&model.Client{}, &model.Invoice{}, &model.LineItem{}))
	return db
}
