// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package balanced

import "fmt"

// Alphabet represents a token alphabet partitioned into opens and closes
// by an injective open-to-close pairing. The zero value is not usable;
// use NewAlphabet.
type Alphabet[T comparable] struct {
	closeOf map[T]T
	openOf  map[T]T
}

// NewAlphabet returns an Alphabet for the supplied open-to-close pairing.
// The pairing must be injective and no token may appear as both an open
// and a close; violations return an error wrapping ErrInvalidAlphabet.
func NewAlphabet[T comparable](pairs map[T]T) (*Alphabet[T], error) {
	a := &Alphabet[T]{
		closeOf: make(map[T]T, len(pairs)),
		openOf:  make(map[T]T, len(pairs)),
	}
	for open, cl := range pairs {
		if open == cl {
			return nil, fmt.Errorf("%w: %v pairs with itself", ErrInvalidAlphabet, open)
		}
		if prev, ok := a.openOf[cl]; ok {
			return nil, fmt.Errorf("%w: %v closes both %v and %v", ErrInvalidAlphabet, cl, prev, open)
		}
		a.closeOf[open] = cl
		a.openOf[cl] = open
	}
	for open := range a.closeOf {
		if _, ok := a.openOf[open]; ok {
			return nil, fmt.Errorf("%w: %v is both an open and a close", ErrInvalidAlphabet, open)
		}
	}
	return a, nil
}

// IsOpen returns true if t is an open token.
func (a *Alphabet[T]) IsOpen(t T) bool {
	_, ok := a.closeOf[t]
	return ok
}

// IsClose returns true if t is a close token.
func (a *Alphabet[T]) IsClose(t T) bool {
	_, ok := a.openOf[t]
	return ok
}

// CloseOf returns the close paired with the supplied open.
func (a *Alphabet[T]) CloseOf(open T) (T, bool) {
	cl, ok := a.closeOf[open]
	return cl, ok
}

// Check verifies that every token in seq belongs to the alphabet,
// returning an error wrapping ErrUnknownToken that identifies the
// offset of the first offending token.
func (a *Alphabet[T]) Check(seq []T) error {
	for i, t := range seq {
		if !a.IsOpen(t) && !a.IsClose(t) {
			return fmt.Errorf("%w: %v at offset %v", ErrUnknownToken, t, i)
		}
	}
	return nil
}
