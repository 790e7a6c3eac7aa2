package model

import (
	"fmt"
	"strings"
)

// PitchClass is a note modulo the octave. Values outside 0-11 (absolute
// MIDI pitches for instance) are accepted; only their differences mod 12
// matter until a chord is normalized.
type PitchClass = int

type Notes = []PitchClass

type Scale struct {
	Root   PitchClass `json:"root"`
	Vector Notes      `json:"vector"`
}

// Encoding is a chord's GCT: the scale degree of its root and its tones
// transposed so the root is 0.
type Encoding struct {
	ScaleDegree int   `json:"scale_degree"`
	Chord       Notes `json:"chord"`
}

// String renders the usual GCT notation, e.g. [8,[0,3,6,8]].
func (e Encoding) String() string {
	parts := make([]string, len(e.Chord))
	for i, v := range e.Chord {
		parts[i] = fmt.Sprint(v)
	}
	return fmt.Sprintf("[%d,[%s]]", e.ScaleDegree, strings.Join(parts, ","))
}

// Chord is the set of sounding MIDI keys at some point in a file.
type Chord struct {
	// milliseconds from the start of the file
	Offset uint32
	Notes  []uint8
}
