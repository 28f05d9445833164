package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/handover-portal/internal/entity"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewStore(client, "wf", 30*time.Minute), mr
}

func TestGetUnknownSessionReturnsFreshLoginState(t *testing.T) {
	store, _ := newTestStore(t)

	state, err := store.Get(context.Background(), "never-seen")

	assert.NoError(t, err)
	assert.Equal(t, entity.StageLogin, state.Stage)
	assert.Nil(t, state.Client)
	assert.Empty(t, state.LoginOTP)
}

func TestPutThenGetRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	state := entity.NewWorkflowState()
	state.Stage = entity.StageOTPVerify
	state.LoginOTP = "123456"
	state.Client = &entity.Client{
		ID:          "client-1",
		Name:        "Aniketh",
		Email:       "a@x.com",
		PhoneNumber: "555",
		DuePaise:    50000,
	}

	assert.NoError(t, store.Put(ctx, "sess-1", state))

	got, err := store.Get(ctx, "sess-1")
	assert.NoError(t, err)
	assert.Equal(t, entity.StageOTPVerify, got.Stage)
	assert.Equal(t, "123456", got.LoginOTP)
	assert.Equal(t, "Aniketh", got.Client.Name)
	assert.Equal(t, int64(50000), got.Client.DuePaise)
}

func TestSessionsAreIsolatedByKey(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	a := entity.NewWorkflowState()
	a.Stage = entity.StageDashboard
	assert.NoError(t, store.Put(ctx, "sess-a", a))

	b, err := store.Get(ctx, "sess-b")
	assert.NoError(t, err)
	assert.Equal(t, entity.StageLogin, b.Stage)
}

func TestPutSetsTTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Put(ctx, "sess-1", entity.NewWorkflowState()))
	assert.Greater(t, mr.TTL("wf:sess-1"), time.Duration(0))

	// An expired session falls back to a fresh workflow.
	mr.FastForward(31 * time.Minute)
	got, err := store.Get(ctx, "sess-1")
	assert.NoError(t, err)
	assert.Equal(t, entity.StageLogin, got.Stage)
}

func TestCorruptRecordFallsBackToFreshState(t *testing.T) {
	store, mr := newTestStore(t)

	mr.Set("wf:sess-1", "{not json")

	got, err := store.Get(context.Background(), "sess-1")
	assert.NoError(t, err)
	assert.Equal(t, entity.StageLogin, got.Stage)
}

func TestDeleteDropsSession(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	state := entity.NewWorkflowState()
	state.Stage = entity.StageDone
	assert.NoError(t, store.Put(ctx, "sess-1", state))
	assert.NoError(t, store.Delete(ctx, "sess-1"))

	got, err := store.Get(ctx, "sess-1")
	assert.NoError(t, err)
	assert.Equal(t, entity.StageLogin, got.Stage)
}

func TestBackendDownSurfacesError(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Close()

	_, err := store.Get(context.Background(), "sess-1")
	assert.ErrorIs(t, err, ErrSessionBackend)

	err = store.Put(context.Background(), "sess-1", entity.NewWorkflowState())
	assert.ErrorIs(t, err, ErrSessionBackend)
}
