package postgres

import (
	"testing"

	"github.com/SergeyBogomolovv/marketplace-orders/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestMigrationURL(t *testing.T) {
	got := migrationURL(config.Postgres{
		Host:     "db",
		Port:     5432,
		DBName:   "marketplace",
		User:     "orders",
		Password: "p@ss:word",
		SSLMode:  "disable",
	})

	assert.Equal(t, "postgres://orders:p%40ss%3Aword@db:5432/marketplace?sslmode=disable", got)
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrations.ReadDir("migrations")
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
}
