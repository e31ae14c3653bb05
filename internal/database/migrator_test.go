package database

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emoped-plan-backend/internal/logger"
)

func TestMigrationNames_EmbeddedOrder(t *testing.T) {
	m := NewMigrator(nil, logger.Discard())

	names, err := m.migrationNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"001_create_business_plans.sql", "002_create_images.sql"}, names)
}

func TestMigrationNames_SortsAndSkipsDirs(t *testing.T) {
	m := &Migrator{
		source: fstest.MapFS{
			"migrations/010_b.sql":       {Data: []byte("SELECT 1")},
			"migrations/002_a.sql":       {Data: []byte("SELECT 1")},
			"migrations/archive/old.sql": {Data: []byte("SELECT 1")},
		},
		log: logger.Discard(),
	}

	names, err := m.migrationNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"002_a.sql", "010_b.sql"}, names)
}
