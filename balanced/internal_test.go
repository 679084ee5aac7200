// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package balanced

import (
	"errors"
	"testing"
)

func newTestSession(t *testing.T) *session[rune] {
	t.Helper()
	alpha, err := NewAlphabet(map[rune]rune{'(': ')', '[': ']'})
	if err != nil {
		t.Fatal(err)
	}
	return newSession(alpha, StrictEquality[rune], 0)
}

func TestSpanIdentity(t *testing.T) {
	se := newTestSession(t)
	s := se.intern([]rune("([])()"))
	if got, want := s.key(), (viewKey{id: 0, off: 0, n: 6}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := s.slice(1, 3).key(), (viewKey{id: 0, off: 1, n: 2}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// An equal-content window over a different buffer has a different
	// identity.
	other := se.intern([]rune("([])()"))
	if s.key() == other.key() {
		t.Errorf("distinct buffers share the identity %v", s.key())
	}
	// Re-slicing the same window yields the same identity.
	if got, want := s.slice(1, 3).key(), s.slice(1, 3).key(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDecompose(t *testing.T) {
	se := newTestSession(t)
	s := se.intern([]rune("([])()"))
	d, err := se.decompose(s)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string([]rune{d.a, d.b}), "()"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := string(d.head.toks), "[]"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := string(d.tail.toks), "()"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// The record is computed once per view identity.
	again, err := se.decompose(s)
	if err != nil {
		t.Fatal(err)
	}
	if d != again {
		t.Errorf("got a second decomposition for the same view")
	}
	// The concatenation is materialized on demand, into a buffer with
	// its own identity.
	ht := se.headTail(d)
	if got, want := string(ht.toks), "[]()"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if ht.id == s.id {
		t.Errorf("concatenation shares the input buffer identity")
	}
	if got, want := se.headTail(d).key(), ht.key(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDecomposeUnbalanced(t *testing.T) {
	se := newTestSession(t)
	for i, input := range []string{"(", "(]", ")(", "(()"} {
		if _, err := se.decompose(se.intern([]rune(input))); !errors.Is(err, ErrUnbalanced) {
			t.Errorf("%v: got %v, want %v", i, err, ErrUnbalanced)
		}
	}
}

func TestIsomorphismAvoidsConcatenation(t *testing.T) {
	se := newTestSession(t)
	s1 := se.intern([]rune("(([])[])"))
	s2 := se.intern([]rune("([]([]))"))
	if _, err := se.lcsi(s1, s2); err != nil {
		t.Fatal(err)
	}
	for k, d := range se.decomps {
		if d.hasHT {
			t.Errorf("%v: isomorphism materialized a head-tail concatenation", k)
		}
	}
}
