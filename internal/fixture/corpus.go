// Package fixture provides golden-fixture corpus tooling for this module's
// test suites: a keyed, deduplicated store of (PayloadFormat, packed sample
// buffer) pairs, held in memory and compressed via package compress.
//
// Nothing under the codec's own production packages (format, endian,
// vrtfloat, internal/pack, or the root vrtcodec package) imports this
// package — it exists purely for _test.go files that want a shared bank of
// known-good packed buffers to round-trip against, instead of
// reconstructing the same byte layouts inline in every test. The root
// package's vrtcodec_fixture_test.go is one such consumer: it stores and
// replays worked-scenario buffers through a Corpus.
package fixture

import (
	"fmt"
	"sync"

	"github.com/lakeside-rf/vrtcodec/compress"
	"github.com/lakeside-rf/vrtcodec/format"
	"github.com/lakeside-rf/vrtcodec/internal/collision"
	"github.com/lakeside-rf/vrtcodec/internal/hash"
	"github.com/lakeside-rf/vrtcodec/internal/pool"
)

// Entry is one registered fixture: the descriptor it was packed under, plus
// its packed buffer in compressed form.
type Entry struct {
	Key       string
	Format    format.PayloadFormat
	Algorithm compress.Algorithm
	packed    []byte
	rawSize   int
}

// Corpus is a keyed collection of packed-buffer fixtures, compressed with a
// single algorithm shared by the whole corpus.
type Corpus struct {
	mu      sync.RWMutex
	tracker *collision.Tracker
	entries map[string]*Entry
	codec   compress.Codec
	algo    compress.Algorithm
}

// NewCorpus creates a Corpus whose entries are compressed with algo.
func NewCorpus(algo compress.Algorithm) (*Corpus, error) {
	codec, err := compress.CreateCodec(algo, "fixture corpus")
	if err != nil {
		return nil, err
	}

	return &Corpus{
		tracker: collision.NewTracker(),
		entries: make(map[string]*Entry),
		codec:   codec,
		algo:    algo,
	}, nil
}

// Put registers a packed buffer under key, tracked by the key's xxHash64
// (the buffer's content is not hashed). Returns errs.ErrInvalidFixtureKey for an empty key or
// errs.ErrFixtureAlreadyRegistered if key was already registered; a hash
// collision between two distinct keys is not an error (Corpus keys its
// entries map by the string itself, so collisions only affect HasCollision
// bookkeeping, never correctness).
func (c *Corpus) Put(key string, pf format.PayloadFormat, packed []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.tracker.TrackKey(key, hash.ID(key)); err != nil {
		return err
	}

	compressed, err := c.codec.Compress(packed)
	if err != nil {
		return fmt.Errorf("compress fixture %q: %w", key, err)
	}

	c.entries[key] = &Entry{
		Key:       key,
		Format:    pf,
		Algorithm: c.algo,
		packed:    compressed,
		rawSize:   len(packed),
	}

	return nil
}

// Get decompresses and returns the packed buffer registered under key,
// along with the PayloadFormat it was packed under.
func (c *Corpus) Get(key string) (format.PayloadFormat, []byte, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return format.PayloadFormat{}, nil, fmt.Errorf("fixture %q: not registered", key)
	}

	raw, err := c.codec.Decompress(e.packed)
	if err != nil {
		return format.PayloadFormat{}, nil, fmt.Errorf("decompress fixture %q: %w", key, err)
	}

	return e.Format, raw, nil
}

// Keys returns the registered fixture keys in registration order.
func (c *Corpus) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.tracker.Keys()
}

// Len returns the number of registered fixtures.
func (c *Corpus) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.tracker.Count()
}

// HasCollision reports whether two distinct fixture keys registered so far
// hash to the same xxHash64 value.
func (c *Corpus) HasCollision() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.tracker.HasCollision()
}

// PutContentAddressed registers packed under a key derived from its own
// content hash, for fixtures generated on the fly rather than hand-named by
// the caller. It uses Tracker.TrackID rather than TrackKey: with no caller
// key to disambiguate against, a hash collision here has no recovery path
// and is reported as an error instead of being merely flagged.
//
// Content-addressed entries are not added to Keys()/Count() — there is no
// caller-chosen name to report, only the derived one returned here.
func (c *Corpus) PutContentAddressed(pf format.PayloadFormat, packed []byte) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := hash.ID(string(packed))
	if err := c.tracker.TrackID(id); err != nil {
		return "", err
	}

	compressed, err := c.codec.Compress(packed)
	if err != nil {
		return "", fmt.Errorf("compress content-addressed fixture: %w", err)
	}

	key := fmt.Sprintf("%016x", id)
	c.entries[key] = &Entry{
		Key:       key,
		Format:    pf,
		Algorithm: c.algo,
		packed:    compressed,
		rawSize:   len(packed),
	}

	return key, nil
}

// ScratchBuffer checks out a pooled byte buffer sized for building a packed
// sample buffer before registering it with Put. The returned release func
// must be called once the caller is done with the buffer (typically via
// defer); it returns the buffer to the pool rather than freeing it.
func ScratchBuffer() (*pool.ByteBuffer, func()) {
	bb := pool.GetBlobBuffer()

	return bb, func() { pool.PutBlobBuffer(bb) }
}

// Int64Scratch checks out a pooled int64 slice of the given length, for use
// as an Unpack destination when replaying a fixture through an int64-typed
// entry point. The returned release func must be called once the caller is
// done with the slice (typically via defer).
func Int64Scratch(size int) ([]int64, func()) {
	return pool.GetInt64Slice(size)
}

// Float64Scratch checks out a pooled float64 slice of the given length, for
// use as an Unpack destination when replaying a fixture through a
// float64-typed entry point. The returned release func must be called once
// the caller is done with the slice (typically via defer).
func Float64Scratch(size int) ([]float64, func()) {
	return pool.GetFloat64Slice(size)
}
