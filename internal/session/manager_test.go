package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewdeck/crewdeck/internal/credentials"
	"github.com/crewdeck/crewdeck/internal/logging"
	"github.com/crewdeck/crewdeck/internal/models"
)

type fakeAPI struct {
	loginRes    *models.AuthResponse
	loginErr    error
	registerRes *models.AuthResponse
	registerErr error
	meRes       *models.User
	meErr       error
	logoutErr   error

	logoutCalls int
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	return f.loginRes, f.loginErr
}

func (f *fakeAPI) Register(ctx context.Context, name, email, password string) (*models.AuthResponse, error) {
	return f.registerRes, f.registerErr
}

func (f *fakeAPI) Me(ctx context.Context) (*models.User, error) {
	return f.meRes, f.meErr
}

func (f *fakeAPI) Logout(ctx context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

type memRepo struct {
	data map[string][]byte
}

func newMemRepo() *memRepo { return &memRepo{data: map[string][]byte{}} }

func (r *memRepo) Get(_ context.Context, key string) ([]byte, error) { return r.data[key], nil }
func (r *memRepo) Set(_ context.Context, key string, value []byte) error {
	r.data[key] = value
	return nil
}
func (r *memRepo) SetMany(_ context.Context, values map[string][]byte) error {
	for k, v := range values {
		r.data[k] = v
	}
	return nil
}

func (r *memRepo) Delete(_ context.Context, key string) error {
	delete(r.data, key)
	return nil
}
func (r *memRepo) Clear(_ context.Context) error {
	r.data = map[string][]byte{}
	return nil
}

func setup(t *testing.T, api *fakeAPI, repo credentials.Repository) (*Manager, *credentials.TokenStore) {
	t.Helper()
	store, err := credentials.NewTokenStore(context.Background(), repo)
	require.NoError(t, err)
	return NewManager(api, store, logging.NewDefault()), store
}

func TestManager_StartsLoading(t *testing.T) {
	m, _ := setup(t, &fakeAPI{}, newMemRepo())
	assert.True(t, m.Loading())
	assert.Nil(t, m.User())
}

func TestInit_NoStoredToken(t *testing.T) {
	m, _ := setup(t, &fakeAPI{}, newMemRepo())
	m.Init(context.Background())

	assert.False(t, m.Loading())
	assert.Nil(t, m.User())
}

func TestInit_RestoresUser(t *testing.T) {
	repo := newMemRepo()
	require.NoError(t, repo.Set(context.Background(), credentials.KeyAccessToken, []byte("tok")))

	m, _ := setup(t, &fakeAPI{meRes: &models.User{ID: "u1", Name: "Ann"}}, repo)
	m.Init(context.Background())

	assert.False(t, m.Loading())
	require.NotNil(t, m.User())
	assert.Equal(t, "u1", m.User().ID)
}

func TestInit_ProfileFetchFailureKeepsTokens(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	require.NoError(t, repo.Set(ctx, credentials.KeyAccessToken, []byte("tok")))
	require.NoError(t, repo.Set(ctx, credentials.KeyRefreshToken, []byte("refresh")))

	m, store := setup(t, &fakeAPI{meErr: errors.New("backend down")}, repo)
	m.Init(ctx)

	assert.False(t, m.Loading())
	assert.Nil(t, m.User())

	// stored credentials survive so a later call can retry the refresh
	refresh, err := store.RefreshToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "refresh", refresh)
}

func TestLogin_PersistsCredentialsAndSetsUser(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{loginRes: &models.AuthResponse{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		User:         models.User{ID: "u1", Email: "a@b.c"},
	}}
	m, store := setup(t, api, newMemRepo())

	user, err := m.Login(ctx, "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, user, m.User())

	assert.Equal(t, "access-1", store.AccessToken())
	refresh, err := store.RefreshToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "refresh-1", refresh)
	userID, err := store.UserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestLogin_FailurePersistsNothing(t *testing.T) {
	ctx := context.Background()
	m, store := setup(t, &fakeAPI{loginErr: errors.New("bad credentials")}, newMemRepo())

	_, err := m.Login(ctx, "a@b.c", "wrong")
	require.Error(t, err)

	assert.Nil(t, m.User())
	assert.Empty(t, store.AccessToken())
	refresh, err := store.RefreshToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, refresh)
}

func TestRegister_EstablishesSession(t *testing.T) {
	api := &fakeAPI{registerRes: &models.AuthResponse{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		User:         models.User{ID: "u2", Name: "Bob"},
	}}
	m, store := setup(t, api, newMemRepo())

	user, err := m.Register(context.Background(), "Bob", "b@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "u2", user.ID)
	assert.Equal(t, "access-1", store.AccessToken())
}

func TestLogout_ClearsEvenWhenBackendFails(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{
		loginRes: &models.AuthResponse{
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			User:         models.User{ID: "u1"},
		},
		logoutErr: errors.New("backend down"),
	}
	m, store := setup(t, api, newMemRepo())

	_, err := m.Login(ctx, "a@b.c", "pw")
	require.NoError(t, err)

	require.NoError(t, m.Logout(ctx))
	assert.Equal(t, 1, api.logoutCalls)
	assert.Nil(t, m.User())
	assert.Empty(t, store.AccessToken())

	refresh, err := store.RefreshToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, refresh)
}
