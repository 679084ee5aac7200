// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package balanced_test

import (
	"errors"
	"fmt"
	"testing"

	"cloudeng.io/subtree/balanced"
)

var parens = map[rune]rune{'(': ')', '[': ']'}

func ExampleMatcher_LongestCommonEmbedding() {
	m, _ := balanced.NewMatcher(parens)
	r, _ := m.LongestCommonEmbedding([]rune("(())"), []rune("()"))
	fmt.Printf("%v %q %q\n", r.Score, string(r.A), string(r.B))
	// Output:
	// 1 "()" "()"
}

func ExampleUniversal() {
	m, _ := balanced.NewMatcher(parens, balanced.WithAffinity(balanced.Universal[rune]))
	r, _ := m.LongestCommonEmbedding([]rune("()"), []rune("[]"))
	fmt.Printf("%v %q %q\n", r.Score, string(r.A), string(r.B))
	// Output:
	// 1 "()" "[]"
}

func TestEmbedding(t *testing.T) {
	strict, err := balanced.NewMatcher(parens)
	if err != nil {
		t.Fatal(err)
	}
	for i, tc := range []struct {
		s1, s2 string
		score  float64
		exact  bool
		o1, o2 string
	}{
		{"()", "()", 1, true, "()", "()"},
		{"()", "[]", 0, true, "", ""},
		{"(())", "()", 1, true, "()", "()"},
		// The nesting of s1 and the ordering of s2 are incompatible,
		// so only one of the two pairs can be kept.
		{"([])", "()[]", 1, false, "", ""},
		{"", "()", 0, true, "", ""},
		{"(()[])", "([])()", 2, false, "", ""},
	} {
		r, err := strict.LongestCommonEmbedding([]rune(tc.s1), []rune(tc.s2))
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got, want := r.Score, tc.score; got != want {
			t.Errorf("%v: got score %v, want %v", i, got, want)
		}
		if tc.exact {
			if got, want := string(r.A), tc.o1; got != want {
				t.Errorf("%v: got %q, want %q", i, got, want)
			}
			if got, want := string(r.B), tc.o2; got != want {
				t.Errorf("%v: got %q, want %q", i, got, want)
			}
		}
		checkOutputs(t, i, parens, strictRuneAffinity, []rune(tc.s1), []rune(tc.s2), r)
	}
}

func TestEmbeddingUniversal(t *testing.T) {
	m, err := balanced.NewMatcher(parens, balanced.WithAffinity(balanced.Universal[rune]))
	if err != nil {
		t.Fatal(err)
	}
	r, err := m.LongestCommonEmbedding([]rune("()"), []rune("[]"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := r.Score, 1.0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := string(r.A)+" "+string(r.B), "() []"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

// The letter alphabet pairs each lower case open with its upper case
// close, so a tree with nodes a->b reads as "abBA".
var letters = map[rune]rune{'a': 'A', 'b': 'B', 'c': 'C'}

func TestIsomorphism(t *testing.T) {
	m, err := balanced.NewMatcher(letters)
	if err != nil {
		t.Fatal(err)
	}
	for i, tc := range []struct {
		s1, s2       string
		embed, isomo float64
	}{
		// a->b embeds in a->c->b by contracting c, but the adjacency
		// is lost so the isomorphism keeps a single node.
		{"abBA", "acbBCA", 2, 1},
		{"abBA", "abBA", 2, 2},
		{"aAbB", "abBA", 1, 1},
		{"", "aA", 0, 0},
		// Siblings can be skipped without breaking adjacency.
		{"abBcCA", "acCA", 2, 2},
	} {
		re, err := m.LongestCommonEmbedding([]rune(tc.s1), []rune(tc.s2))
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		ri, err := m.LongestCommonIsomorphism([]rune(tc.s1), []rune(tc.s2))
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got, want := re.Score, tc.embed; got != want {
			t.Errorf("%v: got embedding score %v, want %v", i, got, want)
		}
		if got, want := ri.Score, tc.isomo; got != want {
			t.Errorf("%v: got isomorphism score %v, want %v", i, got, want)
		}
		checkOutputs(t, i, letters, strictRuneAffinity, []rune(tc.s1), []rune(tc.s2), ri)
	}
}

func TestAlphabetErrors(t *testing.T) {
	for i, pairs := range []map[rune]rune{
		{'(': '('},
		{'a': 'z', 'b': 'z'},
		{'(': ')', ')': 'x'},
	} {
		if _, err := balanced.NewMatcher(pairs); !errors.Is(err, balanced.ErrInvalidAlphabet) {
			t.Errorf("%v: got %v, want %v", i, err, balanced.ErrInvalidAlphabet)
		}
	}
}

func TestInputErrors(t *testing.T) {
	m, err := balanced.NewMatcher(parens)
	if err != nil {
		t.Fatal(err)
	}
	for i, tc := range []struct {
		s1, s2 string
		kind   error
	}{
		{"(a)", "()", balanced.ErrUnknownToken},
		{"()", "()x", balanced.ErrUnknownToken},
		{"(x)", "(y)", balanced.ErrUnknownToken},
		{"(((", "()", balanced.ErrUnbalanced},
		{"()", ")(", balanced.ErrUnbalanced},
		{"(]", "()", balanced.ErrUnbalanced},
		{"()(", "()", balanced.ErrUnbalanced},
	} {
		if _, err := m.LongestCommonEmbedding([]rune(tc.s1), []rune(tc.s2)); !errors.Is(err, tc.kind) {
			t.Errorf("%v: got %v, want %v", i, err, tc.kind)
		}
		if _, err := m.LongestCommonIsomorphism([]rune(tc.s1), []rune(tc.s2)); !errors.Is(err, tc.kind) {
			t.Errorf("%v: got %v, want %v", i, err, tc.kind)
		}
	}
}

func TestDepthLimit(t *testing.T) {
	deep := ""
	for i := 0; i < 64; i++ {
		deep = "(" + deep + ")"
	}
	m, err := balanced.NewMatcher(parens, balanced.WithMaxDepth[rune](8))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.LongestCommonEmbedding([]rune(deep), []rune(deep)); !errors.Is(err, balanced.ErrResourceExhausted) {
		t.Errorf("got %v, want %v", err, balanced.ErrResourceExhausted)
	}
	// The same inputs succeed without a limit.
	m, err = balanced.NewMatcher(parens)
	if err != nil {
		t.Fatal(err)
	}
	r, err := m.LongestCommonEmbedding([]rune(deep), []rune(deep))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := r.Score, 64.0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDeterminism(t *testing.T) {
	m, err := balanced.NewMatcher(parens)
	if err != nil {
		t.Fatal(err)
	}
	s1, s2 := []rune("(()[])([])"), []rune("([])()[]")
	first, err := m.LongestCommonEmbedding(s1, s2)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		r, err := m.LongestCommonEmbedding(s1, s2)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := string(r.A)+" "+string(r.B), string(first.A)+" "+string(first.B); got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}
