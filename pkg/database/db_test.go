package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_MemorySQLite(t *testing.T) {
	db, err := Open(Options{DataPath: ":memory:"})
	require.NoError(t, err)

	for _, table := range []any{&APIKey{}, &APIUsage{}, &MasterUser{}, &SquadronCallsign{}} {
		assert.True(t, db.Migrator().HasTable(table))
	}
}

func TestSquadronCallsign_UniquePair(t *testing.T) {
	db, err := Open(Options{DataPath: ":memory:"})
	require.NoError(t, err)

	require.NoError(t, db.Create(&SquadronCallsign{SquadronID: "vfa-11", Callsign: "Ripper"}).Error)
	require.NoError(t, db.Create(&SquadronCallsign{SquadronID: "vfa-31", Callsign: "Ripper"}).Error)
	assert.Error(t, db.Create(&SquadronCallsign{SquadronID: "vfa-11", Callsign: "Ripper"}).Error)
}
