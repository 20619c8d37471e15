package keybinding

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

// IDSource produces the 4 lowercase hex characters appended to commands
// and placeholder comments
type IDSource interface {
	NewID() string
}

// RandomIDs draws ids from crypto-backed random UUIDs; output is not reproducible
type RandomIDs struct{}

// NewID returns the first 4 hex characters of a random UUID
func (RandomIDs) NewID() string {
	return uuid.New().String()[:4]
}

// SeededIDs is a deterministic IDSource for reproducible models
type SeededIDs struct {
	rng *rand.Rand
}

// NewSeededIDs returns an IDSource whose sequence depends only on seed
func NewSeededIDs(seed int64) *SeededIDs {
	s := uint64(seed)
	return &SeededIDs{rng: rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))}
}

// NewID returns the next id in the seeded sequence
func (s *SeededIDs) NewID() string {
	return fmt.Sprintf("%04x", s.rng.IntN(1<<16))
}
