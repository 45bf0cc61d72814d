package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pushchain/ccip-receiver/ccipreceiver/store"
)

func TestDB_OpenModes(t *testing.T) {
	t.Run("in-memory alias", func(t *testing.T) {
		db, err := OpenInMemoryDB(true)
		require.NoError(t, err)
		require.NotNil(t, db)

		runSampleInsertSelectTest(t, db)
		assert.NoError(t, db.Close())
	})

	t.Run("in-memory dir", func(t *testing.T) {
		db, err := OpenFileDB(InMemorySQLiteDSN, "ignored.db", true)
		require.NoError(t, err)

		runSampleInsertSelectTest(t, db)
		assert.NoError(t, db.Close())
	})

	t.Run("migrate later", func(t *testing.T) {
		db, err := OpenInMemoryDB(false)
		require.NoError(t, err)
		defer db.Close()

		assert.False(t, db.Client().Migrator().HasTable(&store.TokenAccount{}))
		require.NoError(t, db.Migrate())
		assert.True(t, db.Client().Migrator().HasTable(&store.TokenAccount{}))
	})

	t.Run("file-based DB", func(t *testing.T) {
		dir := t.TempDir()
		dbName := "test.db"

		db, err := OpenFileDB(dir, dbName, true)
		require.NoError(t, err)
		require.NotNil(t, db)

		assert.FileExists(t, filepath.Join(dir, dbName))

		runSampleInsertSelectTest(t, db)

		assert.NoError(t, db.Close())

		t.Run("close twice", func(t *testing.T) {
			assert.NoError(t, db.Close())
		})
	})

	t.Run("file-based DB survives reopen", func(t *testing.T) {
		dir := t.TempDir()

		db, err := OpenFileDB(dir, "receiver.db", true)
		require.NoError(t, err)
		runSampleInsertSelectTest(t, db)
		require.NoError(t, db.Close())

		db, err = OpenFileDB(dir, "receiver.db", true)
		require.NoError(t, err)
		defer db.Close()

		var result store.LatestMessage
		require.NoError(t, db.Client().First(&result, store.SingletonID).Error)
		assert.Equal(t, "16015286601757825753", result.SourceChainSelector)
	})

	t.Run("invalid path fails", func(t *testing.T) {
		db, err := OpenFileDB("///invalid\x00", "db.db", true)
		require.ErrorContains(t, err, "failed to prepare database path")
		require.Nil(t, db)
	})
}

func runSampleInsertSelectTest(t *testing.T, db *DB) {
	// Given a sample row
	entry := store.LatestMessage{
		ID:                  store.SingletonID,
		MessageID:           "0x01",
		SourceChainSelector: "16015286601757825753",
		DataLength:          100,
		TokenCount:          1,
	}

	// ACT: Insert
	err := db.Client().Create(&entry).Error
	require.NoError(t, err)

	// ACT: Select
	var result store.LatestMessage
	err = db.Client().First(&result).Error
	require.NoError(t, err)
	assert.Equal(t, uint64(100), result.DataLength)
	assert.Equal(t, uint8(1), result.TokenCount)
}
