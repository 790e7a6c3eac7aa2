package gct

import (
	"github.com/jsphweid/gct/model"
	"github.com/jsphweid/gct/util"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Finder finds the largest subset of a chord whose tones are pairwise
// consonant. The result is sorted ascending.
type Finder interface {
	FindMaximalConsonantSubset(chord model.Notes) (model.Notes, error)
}

const (
	SearchClique      = "clique"
	SearchPermutation = "permutation"
)

func FinderByName(name string) (Finder, error) {
	switch name {
	case "", SearchClique:
		return CliqueFinder{}, nil
	case SearchPermutation:
		return PermutationFinder{}, nil
	}
	return nil, errors.Wrapf(ErrUnknownSearch, "%q", name)
}

// CliqueFinder runs a bounded backtracking maximum clique search over the
// consonance graph of the chord. Among maximum cliques it returns the one
// whose chord indices are lexicographically smallest, i.e. tones appearing
// earlier in the input win ties.
type CliqueFinder struct{}

func (CliqueFinder) FindMaximalConsonantSubset(chord model.Notes) (model.Notes, error) {
	if len(chord) == 0 {
		return nil, ErrEmptyChord
	}
	g := newConsonanceGraph(chord)
	return g.tones(g.maximumClique()), nil
}

type consonanceGraph struct {
	chord model.Notes
	adj   [][]bool
}

func newConsonanceGraph(chord model.Notes) consonanceGraph {
	adj := make([][]bool, len(chord))
	for i := range chord {
		adj[i] = make([]bool, len(chord))
		for j := range chord {
			adj[i][j] = i != j && IsConsonant(util.Abs(chord[i]-chord[j]))
		}
	}
	return consonanceGraph{chord: chord, adj: adj}
}

// maximumClique returns chord indices in ascending order. Branches are
// visited in lexicographic order and only a strictly larger clique replaces
// the best, so the first maximum found is the lexicographically smallest.
func (g consonanceGraph) maximumClique() []int {
	var best, current []int

	var extend func(candidates []int)
	extend = func(candidates []int) {
		if len(candidates) == 0 {
			if len(current) > len(best) {
				best = slices.Clone(current)
			}
			return
		}
		for i, v := range candidates {
			if len(current)+len(candidates)-i <= len(best) {
				return
			}
			var next []int
			for _, w := range candidates[i+1:] {
				if g.adj[v][w] {
					next = append(next, w)
				}
			}
			current = append(current, v)
			extend(next)
			current = current[:len(current)-1]
		}
	}

	all := make([]int, len(g.chord))
	for i := range all {
		all[i] = i
	}
	extend(all)
	return best
}

func (g consonanceGraph) tones(indices []int) model.Notes {
	res := make(model.Notes, len(indices))
	for i, idx := range indices {
		res[i] = g.chord[idx]
	}
	slices.Sort(res)
	return res
}

// PermutationFinder tries every ordering of the chord, growing a subset
// greedily left to right, and keeps the first strictly largest one. It
// costs O(n!·n) so callers must keep chords small.
type PermutationFinder struct{}

func (PermutationFinder) FindMaximalConsonantSubset(chord model.Notes) (model.Notes, error) {
	if len(chord) == 0 {
		return nil, ErrEmptyChord
	}

	perm := make([]int, len(chord))
	for i := range perm {
		perm[i] = i
	}

	var best model.Notes
	for {
		subset := model.Notes{chord[perm[0]]}
		for _, idx := range perm[1:] {
			if consonantWithAll(chord[idx], subset) {
				subset = append(subset, chord[idx])
			}
		}
		if len(subset) > len(best) {
			best = subset
		}
		// nothing can beat the whole chord
		if len(best) == len(chord) || !nextPermutation(perm) {
			break
		}
	}

	slices.Sort(best)
	return best, nil
}

func consonantWithAll(tone int, subset model.Notes) bool {
	for _, s := range subset {
		if !IsConsonant(util.Abs(tone - s)) {
			return false
		}
	}
	return true
}

// nextPermutation rearranges p into the next permutation in lexicographic
// order, reporting false once p is the last one.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
	return true
}
