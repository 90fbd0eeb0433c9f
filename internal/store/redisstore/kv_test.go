package redisstore

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/bigfive/internal/progress"
	"github.com/abhisek/bigfive/internal/survey"
)

func newTestKV(t *testing.T, ttl time.Duration) (*KV, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client, "", ttl), mr
}

func TestKVRoundTrip(t *testing.T) {
	kv, mr := newTestKV(t, 0)
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "inProgress")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "inProgress", "true"))
	assert.True(t, mr.Exists("bigfive:inProgress"))

	v, ok, err := kv.Get(ctx, "inProgress")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	require.NoError(t, kv.Delete(ctx, "inProgress", "b5data"))
	assert.False(t, mr.Exists("bigfive:inProgress"))
	require.NoError(t, kv.Delete(ctx))
}

func TestKVTTL(t *testing.T) {
	kv, mr := newTestKV(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, progress.KeyData, "{}"))
	require.NoError(t, kv.Set(ctx, progress.KeyResultID, "abc123"))

	assert.Equal(t, time.Hour, mr.TTL("bigfive:b5data"))
	assert.Equal(t, time.Duration(0), mr.TTL("bigfive:resultId"), "result id never expires")

	mr.FastForward(2 * time.Hour)
	_, ok, err := kv.Get(ctx, progress.KeyData)
	require.NoError(t, err)
	assert.False(t, ok)

	id, ok, err := kv.Get(ctx, progress.KeyResultID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc123", id)
}

func TestKVBacksProgressRepository(t *testing.T) {
	kv, _ := newTestKV(t, time.Minute)
	repo := progress.NewRepository(kv, nil)
	ctx := context.Background()

	snap := survey.Snapshot{
		Answers:              []survey.Answer{{ID: "q7", Score: 2, Domain: "E", Facet: 2}},
		CurrentQuestionIndex: 7,
	}
	require.NoError(t, repo.Save(ctx, snap))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, snap, *got)

	require.NoError(t, repo.Clear(ctx))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestKVServerDown(t *testing.T) {
	kv, mr := newTestKV(t, 0)
	mr.Close()

	_, _, err := kv.Get(context.Background(), "inProgress")
	require.Error(t, err)
}

func TestDial(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()

	client, err := Dial(context.Background(), addr, "", 0)
	require.NoError(t, err)
	_ = client.Close()

	mr.Close()
	_, err = Dial(context.Background(), addr, "", 0)
	require.Error(t, err)
}
