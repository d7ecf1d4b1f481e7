package docreg_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsrun/internal/adapters/docreg"
)

func loader(text string, calls *int) func() (string, error) {
	return func() (string, error) {
		*calls++
		return text, nil
	}
}

func TestRegistry_SharesBucketsPerEnvironment(t *testing.T) {
	r := docreg.NewRegistry(8)

	a := r.Bucket("/repo", true)
	b := r.Bucket("/repo", true)
	c := r.Bucket("/repo", false)
	d := r.Bucket("/other", true)

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.NotSame(t, a, d)
}

func TestBucket_Acquire(t *testing.T) {
	r := docreg.NewRegistry(8)
	bucket := r.Bucket("/repo", true).(*docreg.Bucket)

	calls := 0
	doc, err := bucket.Acquire("/repo/a.ts", 1, loader("v1", &calls))
	require.NoError(t, err)
	assert.Equal(t, "v1", doc.Text)
	assert.Equal(t, 1, calls)

	doc, err = bucket.Acquire("/repo/a.ts", 1, loader("ignored", &calls))
	require.NoError(t, err)
	assert.Equal(t, "v1", doc.Text, "same version is served from the cache")
	assert.Equal(t, 1, calls)

	doc, err = bucket.Acquire("/repo/a.ts", 2, loader("v2", &calls))
	require.NoError(t, err)
	assert.Equal(t, "v2", doc.Text, "new version reloads")
	assert.Equal(t, 2, calls)

	hits, misses := bucket.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(2), misses)
}

func TestBucket_CaseInsensitiveKeys(t *testing.T) {
	r := docreg.NewRegistry(8)
	bucket := r.Bucket("/repo", false)

	calls := 0
	_, err := bucket.Acquire("/repo/Main.ts", 1, loader("text", &calls))
	require.NoError(t, err)
	_, err = bucket.Acquire("/repo/main.ts", 1, loader("text", &calls))
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
}

func TestBucket_LoadError(t *testing.T) {
	r := docreg.NewRegistry(8)
	bucket := r.Bucket("/repo", true)
	boom := errors.New("boom")

	_, err := bucket.Acquire("/repo/a.ts", 1, func() (string, error) { return "", boom })
	require.ErrorContains(t, err, boom.Error())

	calls := 0
	doc, err := bucket.Acquire("/repo/a.ts", 1, loader("ok", &calls))
	require.NoError(t, err)
	assert.Equal(t, "ok", doc.Text, "failures are not cached")
}

func TestBucket_Eviction(t *testing.T) {
	r := docreg.NewRegistry(1)
	bucket := r.Bucket("/repo", true)

	calls := 0
	_, _ = bucket.Acquire("/repo/a.ts", 1, loader("a", &calls))
	_, _ = bucket.Acquire("/repo/b.ts", 1, loader("b", &calls))
	_, _ = bucket.Acquire("/repo/a.ts", 1, loader("a", &calls))

	assert.Equal(t, 3, calls)
}

func TestRegistry_Clear(t *testing.T) {
	r := docreg.NewRegistry(8)
	before := r.Bucket("/repo", true)

	r.Clear()

	assert.NotSame(t, before, r.Bucket("/repo", true))
}
