package scale

import (
	"os"
	"strconv"
	"strings"

	"github.com/jsphweid/gct/model"
	"github.com/jsphweid/gct/util"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownScale = errors.New("unknown scale")
	ErrInvalidScale = errors.New("invalid scale")
	ErrInvalidRoot  = errors.New("invalid root")
)

// Catalog maps scale names to their intervals above the scale root.
type Catalog map[string][]int

func Default() Catalog {
	return Catalog{
		"major":            {0, 2, 4, 5, 7, 9, 11},
		"minor":            {0, 2, 3, 5, 7, 8, 10},
		"harmonic-minor":   {0, 2, 3, 5, 7, 8, 11},
		"melodic-minor":    {0, 2, 3, 5, 7, 9, 11},
		"dorian":           {0, 2, 3, 5, 7, 9, 10},
		"phrygian":         {0, 1, 3, 5, 7, 8, 10},
		"lydian":           {0, 2, 4, 6, 7, 9, 11},
		"mixolydian":       {0, 2, 4, 5, 7, 9, 10},
		"locrian":          {0, 1, 3, 5, 6, 8, 10},
		"whole-tone":       {0, 2, 4, 6, 8, 10},
		"pentatonic-major": {0, 2, 4, 7, 9},
		"pentatonic-minor": {0, 3, 5, 7, 10},
		"chromatic":        {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	}
}

// Load returns the default catalog extended (or overridden) by the scales
// in the YAML file at path, e.g.
//
//	hijaz: [0, 1, 4, 5, 7, 8, 10]
func Load(path string) (Catalog, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading scale file")
	}
	var extra map[string][]int
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return nil, errors.Wrapf(err, "parsing scale file %s", path)
	}
	for name, intervals := range extra {
		if err := validate(intervals); err != nil {
			return nil, errors.Wrapf(err, "scale %q", name)
		}
		c[normalizeName(name)] = intervals
	}
	return c, nil
}

func validate(intervals []int) error {
	if len(intervals) == 0 {
		return errors.Wrap(ErrInvalidScale, "no intervals")
	}
	for _, v := range intervals {
		if v < 0 || v > 11 {
			return errors.Wrapf(ErrInvalidScale, "interval %d out of range", v)
		}
	}
	return nil
}

func normalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

func (c Catalog) Names() []string {
	return util.GetKeys(c)
}

// Lookup builds the named scale on root. The vector holds the scale's pitch
// classes in ascending order.
func (c Catalog) Lookup(name string, root model.PitchClass) (model.Scale, error) {
	intervals, ok := c[normalizeName(name)]
	if !ok {
		return model.Scale{}, errors.Wrapf(ErrUnknownScale, "%q", name)
	}
	vector := make(model.Notes, len(intervals))
	for i, iv := range intervals {
		vector[i] = util.Mod(root+iv, 12)
	}
	slices.Sort(vector)
	return model.Scale{Root: util.Mod(root, 12), Vector: vector}, nil
}

var noteNames = map[string]int{
	"c": 0, "d": 2, "e": 4, "f": 5, "g": 7, "a": 9, "b": 11,
}

// ParseRoot accepts a note name with optional accidentals ("C", "F#", "Bb",
// "ebb") or a plain integer.
func ParseRoot(s string) (model.PitchClass, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	if s == "" {
		return 0, errors.Wrap(ErrInvalidRoot, "empty")
	}

	lower := strings.ToLower(s)
	pc, ok := noteNames[lower[:1]]
	if !ok {
		return 0, errors.Wrapf(ErrInvalidRoot, "%q", s)
	}
	for _, r := range lower[1:] {
		switch r {
		case '#':
			pc++
		case 'b':
			pc--
		default:
			return 0, errors.Wrapf(ErrInvalidRoot, "%q", s)
		}
	}
	return util.Mod(pc, 12), nil
}
