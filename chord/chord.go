package chord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/gct/model"
	"gitlab.com/gomidi/midi/v2/smf"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

type reducedEvent struct {
	// microseconds
	Offset    int64
	IsNoteOff bool
	Note      uint8
}

// CreateChordKey returns e.g. "60-64-67" regardless of the order of notes.
func CreateChordKey[A constraints.Integer](notes []A) string {
	sorted := slices.Clone(notes)
	slices.Sort(sorted)
	parts := make([]string, len(sorted))
	for i, note := range sorted {
		parts[i] = fmt.Sprint(note)
	}
	return strings.Join(parts, "-")
}

func getChord(offset int64, pressed map[uint8]bool) model.Chord {
	var c model.Chord
	for note := range pressed {
		c.Notes = append(c.Notes, note)
	}
	slices.Sort(c.Notes)

	// millis is plenty and gives ~1200 hours in a uint32
	c.Offset = uint32(offset / 1000)
	return c
}

func reduceEvents(s *smf.SMF) []reducedEvent {
	var reducedEvents []reducedEvent
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteStart(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, reducedEvent{
					Offset: s.TimeAt(absTicks),
					Note:   key,
				})
			case event.Message.GetNoteEnd(&channel, &key):
				reducedEvents = append(reducedEvents, reducedEvent{
					Offset:    s.TimeAt(absTicks),
					IsNoteOff: true,
					Note:      key,
				})
			}
		}
	}

	// earlier offsets first, note offs before note ons at the same offset
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].Offset != reducedEvents[j].Offset {
			return reducedEvents[i].Offset < reducedEvents[j].Offset
		}
		return reducedEvents[i].IsNoteOff && !reducedEvents[j].IsNoteOff
	})
	return reducedEvents
}

// GetChords returns the sounding chord after each distinct event time, in
// time order. Moments of silence are left out.
func GetChords(s *smf.SMF) []model.Chord {
	var chords []model.Chord
	pressed := make(map[uint8]bool)

	events := reduceEvents(s)
	for i, evt := range events {
		if evt.IsNoteOff {
			delete(pressed, evt.Note)
		} else {
			pressed[evt.Note] = true
		}

		// only the state after the last event at an offset counts
		if i+1 < len(events) && events[i+1].Offset == evt.Offset {
			continue
		}
		if len(pressed) > 0 {
			chords = append(chords, getChord(evt.Offset, pressed))
		}
	}
	return chords
}
