// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package balanced

import "errors"

var (
	// ErrInvalidAlphabet is returned when an open/close pairing is
	// malformed, eg. two opens share a close or a token appears as
	// both an open and a close.
	ErrInvalidAlphabet = errors.New("invalid alphabet")

	// ErrUnknownToken is returned when an input sequence contains a
	// token that is neither an open nor a close of the alphabet.
	ErrUnknownToken = errors.New("unknown token")

	// ErrUnbalanced is returned when a sequence has no matching close
	// for one of its opens, or a close that no open accounts for.
	ErrUnbalanced = errors.New("unbalanced sequence")

	// ErrResourceExhausted is returned when a configured recursion
	// depth limit is exceeded.
	ErrResourceExhausted = errors.New("resource exhausted")
)
