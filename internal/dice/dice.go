// SPDX-License-Identifier: Unlicense OR MIT

// Package dice holds the application state and derives six-sided die
// rolls from random bytes.
package dice

import (
	crand "crypto/rand"
	"math/rand/v2"
)

// Sides is the number of faces on the die.
const Sides = 6

// State is the mutable application state. The zero value is a state
// that has not rolled yet.
type State struct {
	// Roll is the last roll in the range [1, Sides], or 0 before the
	// first roll.
	Roll uint8
}

// Rolled reports whether a roll has been recorded.
func (s *State) Rolled() bool {
	return s.Roll != 0
}

// ByteSource supplies uniformly distributed random bytes.
type ByteSource interface {
	Byte() byte
}

// FromByte maps a random byte onto a die face. Every byte maps into
// [1, Sides].
func FromByte(b byte) uint8 {
	return b%Sides + 1
}

// Roller draws rolls from a ByteSource.
type Roller struct {
	src ByteSource
}

// NewRoller returns a Roller drawing from src. A nil src selects a
// generator seeded from the operating system.
func NewRoller(src ByteSource) *Roller {
	if src == nil {
		src = NewSource()
	}
	return &Roller{src: src}
}

// Roll draws a new roll, stores it in s and returns it.
func (r *Roller) Roll(s *State) uint8 {
	s.Roll = FromByte(r.src.Byte())
	return s.Roll
}

type chachaSource struct {
	rng *rand.ChaCha8
}

// NewSource returns a ByteSource backed by a ChaCha8 generator seeded
// from crypto/rand.
func NewSource() ByteSource {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// crypto/rand.Read never fails on supported platforms.
		panic(err)
	}
	return &chachaSource{rng: rand.NewChaCha8(seed)}
}

func (c *chachaSource) Byte() byte {
	return byte(c.rng.Uint64())
}

// Bytes is a ByteSource replaying a fixed sequence. It wraps around at
// the end; an empty sequence yields zeros.
type Bytes struct {
	seq []byte
	pos int
}

// NewBytes returns a ByteSource replaying seq.
func NewBytes(seq ...byte) *Bytes {
	return &Bytes{seq: seq}
}

func (b *Bytes) Byte() byte {
	if len(b.seq) == 0 {
		return 0
	}
	v := b.seq[b.pos%len(b.seq)]
	b.pos++
	return v
}
