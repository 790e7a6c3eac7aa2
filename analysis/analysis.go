// Package analysis runs the GCT encoder over every chord of a MIDI file.
package analysis

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/jsphweid/gct/chord"
	"github.com/jsphweid/gct/gct"
	"github.com/jsphweid/gct/midi"
	"github.com/jsphweid/gct/model"
	"github.com/jsphweid/gct/util"
	"github.com/pkg/errors"
)

type Result struct {
	// milliseconds
	Offset   uint32         `json:"offset"`
	Notes    []uint8        `json:"notes"`
	Key      string         `json:"key"`
	Encoding model.Encoding `json:"encoding"`
}

type Report struct {
	Id      uuid.UUID   `json:"id"`
	File    string      `json:"file"`
	Scale   model.Scale `json:"scale"`
	Results []Result    `json:"results"`
	// chords larger than the configured maximum
	Skipped int `json:"skipped"`
}

// Summary counts how often each GCT occurs.
func (r Report) Summary() map[string]int {
	res := make(map[string]int)
	for _, result := range r.Results {
		res[result.Encoding.String()]++
	}
	return res
}

type Analyzer struct {
	Encoder      *gct.Encoder
	Scale        model.Scale
	MaxChordSize int
	Logger       *log.Logger
}

func (a *Analyzer) logger() *log.Logger {
	if a.Logger == nil {
		return log.Default()
	}
	return a.Logger
}

func (a *Analyzer) encoder() *gct.Encoder {
	if a.Encoder == nil {
		return gct.NewEncoder()
	}
	return a.Encoder
}

func (a *Analyzer) AnalyzeFile(path string) (Report, error) {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		return Report{}, err
	}
	return a.AnalyzeChords(path, chord.GetChords(parsed))
}

func (a *Analyzer) AnalyzeChords(file string, chords []model.Chord) (Report, error) {
	report := Report{Id: uuid.New(), File: file, Scale: a.Scale}
	logger := a.logger().With("file", file, "report", report.Id)
	enc := a.encoder()

	for _, c := range chords {
		if a.MaxChordSize > 0 && len(c.Notes) > a.MaxChordSize {
			logger.Warn("skipping oversized chord", "offset", c.Offset, "size", len(c.Notes))
			report.Skipped++
			continue
		}
		encoding, err := enc.Encode(util.ToInts(c.Notes), a.Scale)
		if err != nil {
			return Report{}, errors.Wrapf(err, "encoding chord at %dms in %s", c.Offset, file)
		}
		report.Results = append(report.Results, Result{
			Offset:   c.Offset,
			Notes:    c.Notes,
			Key:      chord.CreateChordKey(c.Notes),
			Encoding: encoding,
		})
	}

	logger.Debug("analyzed", "chords", len(report.Results), "skipped", report.Skipped)
	return report, nil
}
