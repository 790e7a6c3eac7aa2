// Package gct computes the Generalized Chord Type of a chord relative to a
// scale: the scale degree of the chord's root and the chord transposed so
// that its root is 0.
//
// The root is the lowest tone of the largest pairwise consonant subset of
// the chord. Everything in this package is pure and safe for concurrent
// use.
package gct

import (
	"github.com/jsphweid/gct/model"
	"github.com/jsphweid/gct/util"
	"golang.org/x/exp/slices"
)

type Encoder struct {
	finder Finder
}

type Option func(*Encoder)

func WithFinder(f Finder) Option {
	return func(e *Encoder) {
		e.finder = f
	}
}

func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{finder: CliqueFinder{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEncoder = NewEncoder()

func FindMaximalConsonantSubset(chord model.Notes) (model.Notes, error) {
	return defaultEncoder.finder.FindMaximalConsonantSubset(chord)
}

func DetermineRoot(chord model.Notes) (model.PitchClass, error) {
	return defaultEncoder.DetermineRoot(chord)
}

func Encode(chord model.Notes, scale model.Scale) (model.Encoding, error) {
	return defaultEncoder.Encode(chord, scale)
}

// DetermineRoot returns the lowest tone of the maximal consonant subset. A
// tone left out of that subset is never the root, even if it is the lowest
// tone of the chord.
func (e *Encoder) DetermineRoot(chord model.Notes) (model.PitchClass, error) {
	subset, err := e.finder.FindMaximalConsonantSubset(chord)
	if err != nil {
		return 0, err
	}
	return slices.Min(subset), nil
}

func (e *Encoder) Encode(chord model.Notes, scale model.Scale) (model.Encoding, error) {
	if len(chord) == 0 {
		return model.Encoding{}, ErrEmptyChord
	}
	if len(scale.Vector) == 0 {
		return model.Encoding{}, ErrEmptyScale
	}

	root, err := e.DetermineRoot(chord)
	if err != nil {
		return model.Encoding{}, err
	}
	degree, err := GetScaleDegree(root, scale.Vector, scale.Root)
	if err != nil {
		return model.Encoding{}, err
	}
	return model.Encoding{
		ScaleDegree: degree,
		Chord:       NormalizeToRoot(chord, root),
	}, nil
}

// NormalizeToRoot transposes every tone of the chord so that root maps to
// 0, reduces mod 12 and sorts. Duplicates are kept.
func NormalizeToRoot(chord model.Notes, root model.PitchClass) model.Notes {
	res := make(model.Notes, len(chord))
	for i, tone := range chord {
		res[i] = util.Mod(tone-root, 12)
	}
	slices.Sort(res)
	return res
}

// GetScaleDegree maps root to its offset from scaleRoot within the scale.
// A root that is not in vector is approximated by the offset numerically
// closest to its own; ties go to the earliest entry of vector.
func GetScaleDegree(root model.PitchClass, vector model.Notes, scaleRoot model.PitchClass) (int, error) {
	if len(vector) == 0 {
		return 0, ErrEmptyScale
	}

	offsets := make([]int, len(vector))
	for i, v := range vector {
		offsets[i] = util.Mod(v-scaleRoot, 12)
	}

	if i := slices.Index(vector, root); i >= 0 {
		return offsets[i], nil
	}

	target := util.Mod(root-scaleRoot, 12)
	closest := offsets[0]
	for _, o := range offsets[1:] {
		if util.Abs(o-target) < util.Abs(closest-target) {
			closest = o
		}
	}
	return closest, nil
}
