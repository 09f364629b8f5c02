package db

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sgo/config"
	"sgo/models"
)

func quietLogger() *log.Entry {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return log.NewEntry(logger)
}

func TestOpen_SQLiteFileMigratesSchema(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "data", "sgo.db")
	database, err := Open(config.DatabaseConfig{Driver: config.DriverSQLite, DSN: dsn, AutoMigrate: true}, false, quietLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(database) })

	for _, m := range []interface{}{
		&models.Category{}, &models.Customer{}, &models.Order{}, &models.OrderDetail{},
		&models.Product{}, &models.Supplier{}, &models.User{},
	} {
		assert.True(t, database.Migrator().HasTable(m))
	}
	assert.NoError(t, Ping(context.Background(), database))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "oracle", DSN: "x"}, false, quietLogger())
	assert.Error(t, err)
}
