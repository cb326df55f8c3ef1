package client

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateCacheGetMiss(t *testing.T) {
	c := newStateCache()
	_, err := c.get(1)
	require.ErrorIs(t, err, ErrEntityNotFound)
}

func TestStateCacheSetAndGet(t *testing.T) {
	c := newStateCache()
	c.set(EntityState{Domain: DomainSwitch, Key: 1, Value: "on"})

	got, err := c.get(1)
	require.NoError(t, err)
	require.Equal(t, DomainSwitch, got.Domain)
	require.Equal(t, "on", got.Value)
}

func TestStateCacheSetOverwritesSameKey(t *testing.T) {
	c := newStateCache()
	c.set(EntityState{Key: 1, Value: "on"})
	c.set(EntityState{Key: 1, Value: "off"})

	got, err := c.get(1)
	require.NoError(t, err)
	require.Equal(t, "off", got.Value)
}

func TestStateCacheAllReturnsEverySetEntity(t *testing.T) {
	c := newStateCache()
	c.set(EntityState{Key: 1, Value: "a"})
	c.set(EntityState{Key: 2, Value: "b"})

	all := c.all()
	require.Len(t, all, 2)
}

func TestStateCacheConcurrentReadsAndWrites(t *testing.T) {
	c := newStateCache()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		key := uint32(i % 5)
		go func() {
			defer wg.Done()
			c.set(EntityState{Key: key, Value: key})
		}()
		go func() {
			defer wg.Done()
			_, _ = c.get(key)
		}()
	}
	wg.Wait()
	require.LessOrEqual(t, len(c.all()), 5)
}
