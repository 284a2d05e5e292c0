package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const defaultRunIDBytes = 8

// Generator creates opaque ids, used to correlate the log lines of one CLI run.
type Generator interface {
	NewID() (string, error)
}

type RandomGenerator struct {
	size int
}

// NewRandomGenerator returns hex ids of size random bytes. Non-positive sizes use 8.
func NewRandomGenerator(size int) *RandomGenerator {
	if size <= 0 {
		size = defaultRunIDBytes
	}
	return &RandomGenerator{size: size}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, g.size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
