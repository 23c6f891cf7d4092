package test

import (
	"path/filepath"
	"testing"

	"github.com/duecal/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TmpFile returns the path to a unique file in a temporary directory
// that is removed when the test finishes.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), uuid.New().String())
}

// ConnectDB connects models.DB to a new, migrated database and closes
// the connection when the test finishes.
func ConnectDB(t *testing.T) {
	require.Nil(t, models.Connect(TmpFile(t)), "database connection failed")

	t.Cleanup(func() {
		if sqlDB, err := models.DB.DB(); err == nil {
			sqlDB.Close()
		}
	})
}

// CloseDB closes the connection of models.DB so that the handling of
// database errors can be tested.
func CloseDB(t *testing.T) {
	sqlDB, err := models.DB.DB()
	require.Nil(t, err)
	require.Nil(t, sqlDB.Close())
}
