// Package collision tracks golden-fixture keys and the hash collisions
// between them, the way a blob encoder tracks metric names in the teacher
// package this module is built from.
package collision

import (
	"github.com/lakeside-rf/vrtcodec/errs"
)

// Tracker tracks golden-fixture keys and detects hash collisions between the
// 64-bit IDs package hash derives from them. It maintains a hash-to-key map
// plus an ordered list of keys, so a fixture corpus writer can fall back to
// storing full keys alongside the hash whenever a collision is detected.
type Tracker struct {
	keys         map[uint64]string // ID hash → fixture key
	keysList     []string          // Ordered list in registration order
	hasCollision bool              // Whether a collision has been detected
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		keys:         make(map[uint64]string),
		keysList:     make([]string, 0),
		hasCollision: false,
	}
}

// TrackID tracks a fixture ID hash directly, without a key. Returns an error
// if the hash was already claimed — a collision that cannot be resolved
// without a key to disambiguate with.
func (t *Tracker) TrackID(hash uint64) error {
	if _, exists := t.keys[hash]; exists {
		return errs.ErrHashCollision
	}

	t.keys[hash] = ""

	return nil
}

// TrackKey tracks a fixture key with its ID hash. Returns an error if key is
// empty (ErrInvalidFixtureKey) or if the same key was registered twice
// (ErrFixtureAlreadyRegistered).
//
// A hash collision between two distinct keys is not itself an error: the
// collision flag is set instead, so the caller can decide to store full keys
// rather than relying on the hash alone.
func (t *Tracker) TrackKey(key string, hash uint64) error {
	if key == "" {
		return errs.ErrInvalidFixtureKey
	}

	if existingKey, exists := t.keys[hash]; exists {
		if existingKey != key {
			t.hasCollision = true
		} else {
			return errs.ErrFixtureAlreadyRegistered
		}
	}

	t.keys[hash] = key
	t.keysList = append(t.keysList, key)

	return nil
}

// HasCollision returns true if a hash collision has been detected.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Keys returns the ordered list of registered fixture keys, in registration
// order.
func (t *Tracker) Keys() []string {
	return t.keysList
}

// Count returns the number of tracked fixture keys.
func (t *Tracker) Count() int {
	return len(t.keysList)
}

// Reset clears all tracked keys and collision state, allowing the tracker to
// be reused for a new corpus load.
func (t *Tracker) Reset() {
	for k := range t.keys {
		delete(t.keys, k)
	}
	t.keysList = t.keysList[:0]
	t.hasCollision = false
}
