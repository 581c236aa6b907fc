package credentials

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE credentials (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSetAndGet_InsertThenGet(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyAccessToken, []byte("tok-1")))

	v, err := r.Get(ctx, KeyAccessToken)
	require.NoError(t, err)
	require.Equal(t, []byte("tok-1"), v)
}

func TestGet_NotExists_ReturnsNilNil(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	v, err := r.Get(ctx, "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSet_UpsertOverwritesValue(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyRefreshToken, []byte("old")))
	require.NoError(t, r.Set(ctx, KeyRefreshToken, []byte("new"))) // upsert

	v, err := r.Get(ctx, KeyRefreshToken)
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestDelete_RemovesKey_AndIsIdempotent(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyUserID, []byte("u1")))
	require.NoError(t, r.Delete(ctx, KeyUserID))

	v, err := r.Get(ctx, KeyUserID)
	require.NoError(t, err)
	require.Nil(t, v)

	// deleting again is not an error
	require.NoError(t, r.Delete(ctx, KeyUserID))
}

func TestClear_RemovesAllKeys(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyAccessToken, []byte("a")))
	require.NoError(t, r.Set(ctx, KeyRefreshToken, []byte("r")))
	require.NoError(t, r.Set(ctx, KeyUserID, []byte("u")))

	require.NoError(t, r.Clear(ctx))

	for _, key := range []string{KeyAccessToken, KeyRefreshToken, KeyUserID} {
		v, err := r.Get(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, v)
	}
}

func TestGet_ClosedDB_WrapsError(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	_, err := r.Get(context.Background(), KeyAccessToken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get credentials")
}

func TestSetMany_AllOrNothing(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.SetMany(ctx, map[string][]byte{
		KeyAccessToken:  []byte("a"),
		KeyRefreshToken: []byte("r"),
	}))

	v, err := r.Get(ctx, KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), v)
	v, err = r.Get(ctx, KeyRefreshToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("r"), v)

	// existing values are upserted
	require.NoError(t, r.SetMany(ctx, map[string][]byte{
		KeyAccessToken: []byte("a2"),
	}))
	v, err = r.Get(ctx, KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("a2"), v)
}
