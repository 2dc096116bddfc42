package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client), mr
}

func TestAsideCachesOnMiss(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *item) func() error {
		return func() error {
			calls++
			*dest = item{ID: 7, Name: "Negroni"}
			return nil
		}
	}

	var first item
	require.NoError(t, store.Aside(ctx, FamilyCocktail, CocktailKey(7), &first, CocktailTTL, fetch(&first)))
	assert.Equal(t, "Negroni", first.Name)
	assert.True(t, mr.Exists("cocktail:7"))
	assert.Equal(t, CocktailTTL, mr.TTL("cocktail:7"))

	var second item
	require.NoError(t, store.Aside(ctx, FamilyCocktail, CocktailKey(7), &second, CocktailTTL, fetch(&second)))
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls, "second read should be served from cache")
}

func TestAsideDoesNotCacheFetchErrors(t *testing.T) {
	store, mr := newTestStore(t)
	boom := errors.New("not found")

	var dest item
	err := store.Aside(context.Background(), FamilyDish, DishKey(1), &dest, DishTTL, func() error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists("dish:1"))
}

func TestAsideFallsBackWhenRedisIsDown(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Close()

	var dest item
	err := store.Aside(context.Background(), FamilyDish, DishKey(2), &dest, DishTTL, func() error {
		dest = item{ID: 2, Name: "Ramen"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Ramen", dest.Name)
}

func TestInvalidate(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.SetJSON(ctx, DishKey(3), item{ID: 3}, time.Minute))
	require.True(t, mr.Exists("dish:3"))

	store.Invalidate(ctx, DishKey(3))
	assert.False(t, mr.Exists("dish:3"))
}

func TestNilStoreIsNoop(t *testing.T) {
	var store *Store
	ctx := context.Background()

	assert.False(t, store.Enabled())
	found, err := store.GetJSON(ctx, "k", &item{})
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, store.SetJSON(ctx, "k", item{}, time.Minute))
	store.Invalidate(ctx, "k")
	assert.NoError(t, store.Ping(ctx))

	calls := 0
	require.NoError(t, store.Aside(ctx, FamilyDish, "k", &item{}, time.Minute, func() error { calls++; return nil }))
	assert.Equal(t, 1, calls)
}

func TestNewClient(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, NewClient(ctx, ""))
	assert.Nil(t, NewClient(ctx, "redis://%zz"))

	mr := miniredis.RunT(t)
	client := NewClient(ctx, mr.Addr())
	require.NotNil(t, client)
	defer client.Close()
	assert.NoError(t, NewStore(client).Ping(ctx))

	urlClient := NewClient(ctx, "redis://"+mr.Addr()+"/0")
	require.NotNil(t, urlClient)
	defer urlClient.Close()
}

func TestClientOptions(t *testing.T) {
	opts, err := clientOptions(" localhost:6379 ")
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", opts.Addr)

	opts, err = clientOptions("redis://cache:6380/2")
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, 2, opts.DB)

	_, err = clientOptions("redis://%zz")
	assert.Error(t, err)
}
