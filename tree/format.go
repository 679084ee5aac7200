// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"io"
	"strings"
)

// glyphSet holds the box drawing fragments used to render a forest.
type glyphSet struct {
	empty        string
	newTreeMid   string
	newTreeLast  string
	mid          string
	last         string
	withinTree   string
	withinForest string
	endOfForest  string
}

var utfGlyphs = glyphSet{
	empty:        "╙",
	newTreeMid:   "╟── ",
	newTreeLast:  "╙── ",
	mid:          "├─╼ ",
	last:         "└─╼ ",
	withinTree:   "│   ",
	withinForest: "╎   ",
	endOfForest:  "    ",
}

var asciiGlyphs = glyphSet{
	empty:        "+",
	newTreeMid:   "+-- ",
	newTreeLast:  "+-- ",
	mid:          "|-> ",
	last:         "L-> ",
	withinTree:   "|   ",
	withinForest: ":   ",
	endOfForest:  "    ",
}

// Format writes a text rendering of the supplied forest using box
// drawing glyphs, one node per line, eg:
//
//	╙── 0
//	    ├─╼ 1
//	    └─╼ 2
func Format[L comparable](w io.Writer, roots ...*Node[L]) {
	format(w, utfGlyphs, roots)
}

// FormatASCII is like Format but uses only ASCII characters.
func FormatASCII[L comparable](w io.Writer, roots ...*Node[L]) {
	format(w, asciiGlyphs, roots)
}

// String returns the rendering produced by Format.
func String[L comparable](roots ...*Node[L]) string {
	out := &strings.Builder{}
	Format(out, roots...)
	return out.String()
}

func format[L comparable](w io.Writer, g glyphSet, roots []*Node[L]) {
	if len(roots) == 0 {
		fmt.Fprintln(w, g.empty)
		return
	}
	var walk func(n *Node[L], indent, this, next string)
	walk = func(n *Node[L], indent, this, next string) {
		fmt.Fprintf(w, "%s%s%v\n", indent, this, n.Label)
		for i, c := range n.Children {
			if i == len(n.Children)-1 {
				walk(c, indent+next, g.last, g.endOfForest)
				continue
			}
			walk(c, indent+next, g.mid, g.withinTree)
		}
	}
	for i, r := range roots {
		if i == len(roots)-1 {
			walk(r, "", g.newTreeLast, g.endOfForest)
			continue
		}
		walk(r, "", g.newTreeMid, g.withinForest)
	}
}
