package services

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingDirectory struct {
	fakeDirectory
	calls int
}

func (c *countingDirectory) Countries(ctx context.Context) ([]string, error) {
	c.calls++
	return c.fakeDirectory.Countries(ctx)
}

func TestCachedDirectory_NilClientPassesThrough(t *testing.T) {
	next := &countingDirectory{fakeDirectory: fakeDirectory{countries: []string{"Canada"}, languages: []string{"French"}}}
	dir := NewCachedDirectory(next, nil, "test:", time.Minute)

	countries, err := dir.Countries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Canada"}, countries)

	_, err = dir.Countries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)

	languages, err := dir.Languages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"French"}, languages)
}

func TestCachedDirectory_UnreachableRedisIsIgnored(t *testing.T) {
	rc := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rc.Close() })

	next := &countingDirectory{fakeDirectory: fakeDirectory{countries: []string{"Canada"}}}
	dir := NewCachedDirectory(next, rc, "test:", time.Minute)

	countries, err := dir.Countries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Canada"}, countries)
	assert.Equal(t, 1, next.calls)
}

func TestCachedDirectory_PropagatesLoadErrors(t *testing.T) {
	next := &countingDirectory{fakeDirectory: fakeDirectory{countriesErr: assert.AnError}}
	dir := NewCachedDirectory(next, nil, "", time.Minute)

	_, err := dir.Countries(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
