// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command subtree compares balanced, parenthesis like, sequences and
// renders the ordered trees they encode.
package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"slices"

	"cloudeng.io/algo/lcs"
	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/subtree/balanced"
	"cloudeng.io/subtree/tree"
)

var cmdSet *subcmd.CommandSet

type matchFlags struct {
	Pairs     string `subcmd:"pairs,()[]{}<>,open/close pairs as adjacent characters"`
	Universal bool   `subcmd:"universal,false,score every pairing of opens as 1 instead of requiring equality"`
	MaxDepth  int    `subcmd:"max-depth,0,limit the recursion depth with 0 meaning unbounded"`
	Trees     bool   `subcmd:"trees,false,also render the outputs as trees"`
}

type randomFlags struct {
	Pairs string `subcmd:"pairs,()[]{}<>,open/close pairs as adjacent characters"`
	Size  int    `subcmd:"size,10,number of open/close pairs to generate"`
	Seed  int64  `subcmd:"seed,1,seed for the random shape"`
}

type showFlags struct {
	Pairs string `subcmd:"pairs,()[]{}<>,open/close pairs as adjacent characters"`
	ASCII bool   `subcmd:"ascii,false,use only ASCII characters in the rendering"`
}

func init() {
	embedFS := subcmd.NewFlagSet()
	embedFS.MustRegisterFlagStruct(&matchFlags{}, nil, nil)
	isoFS := subcmd.NewFlagSet()
	isoFS.MustRegisterFlagStruct(&matchFlags{}, nil, nil)
	randomFS := subcmd.NewFlagSet()
	randomFS.MustRegisterFlagStruct(&randomFlags{}, nil, nil)
	showFS := subcmd.NewFlagSet()
	showFS.MustRegisterFlagStruct(&showFlags{}, nil, nil)

	embedCmd := subcmd.NewCommand("embed", embedFS, embed, subcmd.ExactlyNumArguments(2))
	embedCmd.Document("find the longest common embedded subsequence of two balanced sequences", "<sequence> <sequence>")

	isoCmd := subcmd.NewCommand("isomorphism", isoFS, isomorphism, subcmd.ExactlyNumArguments(2))
	isoCmd.Document("find the longest common subsequence of two balanced sequences under subtree-isomorphism rules", "<sequence> <sequence>")

	randomCmd := subcmd.NewCommand("random", randomFS, random, subcmd.WithoutArguments())
	randomCmd.Document("generate a random balanced sequence")

	showCmd := subcmd.NewCommand("show", showFS, show, subcmd.ExactlyNumArguments(1))
	showCmd.Document("render a balanced sequence as a tree", "<sequence>")

	cmdSet = subcmd.NewCommandSet(embedCmd, isoCmd, randomCmd, showCmd)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

func parsePairs(s string) (map[rune]rune, error) {
	runes := []rune(s)
	if len(runes) == 0 || len(runes)%2 != 0 {
		return nil, fmt.Errorf("pairs must be a non-empty string of adjacent open+close characters: %q", s)
	}
	pairs := make(map[rune]rune, len(runes)/2)
	for i := 0; i < len(runes); i += 2 {
		pairs[runes[i]] = runes[i+1]
	}
	return pairs, nil
}

func embed(_ context.Context, values interface{}, args []string) error {
	return match(values.(*matchFlags), args, false)
}

func isomorphism(_ context.Context, values interface{}, args []string) error {
	return match(values.(*matchFlags), args, true)
}

func match(fv *matchFlags, args []string, iso bool) error {
	pairs, err := parsePairs(fv.Pairs)
	if err != nil {
		return err
	}
	opts := []balanced.Option[rune]{balanced.WithMaxDepth[rune](fv.MaxDepth)}
	if fv.Universal {
		opts = append(opts, balanced.WithAffinity(balanced.Universal[rune]))
	}
	m, err := balanced.NewMatcher(pairs, opts...)
	if err != nil {
		return err
	}
	s1, s2 := []rune(args[0]), []rune(args[1])
	var r balanced.Result[rune]
	if iso {
		r, err = m.LongestCommonIsomorphism(s1, s2)
	} else {
		r, err = m.LongestCommonEmbedding(s1, s2)
	}
	if err != nil {
		return err
	}
	fmt.Printf("score: %v\n", r.Score)
	fmt.Printf("%s\n", string(r.A))
	printAlignment(os.Stdout, s1, r.A)
	fmt.Printf("%s\n", string(r.B))
	printAlignment(os.Stdout, s2, r.B)
	if fv.Trees {
		for _, out := range [][]rune{r.A, r.B} {
			roots, err := sequenceTree(pairs, out)
			if err != nil {
				return err
			}
			tree.Format(os.Stdout, roots...)
		}
	}
	return nil
}

// printAlignment displays how an output embeds in the input it was
// drawn from, as the deletions that reduce the input to the output.
func printAlignment(out io.Writer, input, embedded []rune) {
	es := lcs.NewMyers(input, embedded).SES()
	es.FormatHorizontal(out, input)
}

func random(_ context.Context, values interface{}, _ []string) error {
	fv := values.(*randomFlags)
	pairs, err := parsePairs(fv.Pairs)
	if err != nil {
		return err
	}
	alpha, err := balanced.NewAlphabet(pairs)
	if err != nil {
		return err
	}
	opens := make([]rune, 0, len(pairs))
	for open := range pairs {
		opens = append(opens, open)
	}
	slices.Sort(opens)
	rng := rand.New(rand.NewSource(fv.Seed))
	fmt.Println(string(balanced.Random(fv.Size, alpha, opens, rng)))
	return nil
}

func show(_ context.Context, values interface{}, args []string) error {
	fv := values.(*showFlags)
	pairs, err := parsePairs(fv.Pairs)
	if err != nil {
		return err
	}
	roots, err := sequenceTree(pairs, []rune(args[0]))
	if err != nil {
		return err
	}
	if fv.ASCII {
		tree.FormatASCII(os.Stdout, roots...)
		return nil
	}
	tree.Format(os.Stdout, roots...)
	return nil
}

// sequenceTree parses a balanced sequence into a forest whose nodes are
// labeled with their open tokens.
func sequenceTree(pairs map[rune]rune, seq []rune) ([]*tree.Node[string], error) {
	var roots, open []*tree.Node[string]
	var closes []rune
	for i, t := range seq {
		if cl, ok := pairs[t]; ok {
			n := &tree.Node[string]{Label: string(t)}
			if len(open) == 0 {
				roots = append(roots, n)
			} else {
				parent := open[len(open)-1]
				parent.Children = append(parent.Children, n)
			}
			open = append(open, n)
			closes = append(closes, cl)
			continue
		}
		if len(closes) == 0 || closes[len(closes)-1] != t {
			return nil, fmt.Errorf("unbalanced sequence: %q at offset %v", t, i)
		}
		open = open[:len(open)-1]
		closes = closes[:len(closes)-1]
	}
	if len(open) != 0 {
		return nil, fmt.Errorf("unbalanced sequence: %v opens left unclosed", len(open))
	}
	return roots, nil
}
