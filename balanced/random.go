// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package balanced

import "math/rand"

// Random returns a random balanced sequence containing n open/close
// pairs drawn from the supplied opens. The shape is chosen by a random
// walk that never lets the depth go negative; rng drives both the walk
// and the choice of open at each step, so a seeded rng yields a
// reproducible sequence.
func Random[T comparable](n int, alpha *Alphabet[T], opens []T, rng *rand.Rand) []T {
	out := make([]T, 0, 2*n)
	var pending []T
	remaining := n
	for remaining > 0 || len(pending) > 0 {
		if remaining > 0 && (len(pending) == 0 || rng.Intn(2) == 0) {
			open := opens[rng.Intn(len(opens))]
			cl, _ := alpha.CloseOf(open)
			out = append(out, open)
			pending = append(pending, cl)
			remaining--
			continue
		}
		out = append(out, pending[len(pending)-1])
		pending = pending[:len(pending)-1]
	}
	return out
}
