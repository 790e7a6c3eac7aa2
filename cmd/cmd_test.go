package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jsphweid/gct/gct"
	"github.com/jsphweid/gct/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postEncode(t *testing.T, body string) *http.Response {
	req := httptest.NewRequest(http.MethodPost, "/encode", strings.NewReader(body))
	w := httptest.NewRecorder()
	newRouter().ServeHTTP(w, req)
	return w.Result()
}

func TestEncodeAllPrintsEncodings(t *testing.T) {
	var out bytes.Buffer
	s, err := resolveScale("", "4", "0,2,4,5,7,9,11")
	require.NoError(t, err)

	err = encodeAll(&out, gct.NewEncoder(), s, []string{"1,4,7,9", "5"})
	require.NoError(t, err)
	assert.Equal(t, "[1 4 7 9]\troot 1\t[8,[0,3,6,8]]\n[5]\troot 5\t[1,[0]]\n", out.String())
}

func TestEncodeAllRejectsBadInput(t *testing.T) {
	s, err := resolveScale("major", "C", "")
	require.NoError(t, err)

	assert.Error(t, encodeAll(io.Discard, gct.NewEncoder(), s, []string{"1,x"}))
	assert.ErrorIs(t, encodeAll(io.Discard, gct.NewEncoder(), s, []string{""}), gct.ErrEmptyChord)

	t.Setenv("GCT_MAX_CHORD_SIZE", "2")
	assert.ErrorIs(t, encodeAll(io.Discard, gct.NewEncoder(), s, []string{"0,4,7"}), ErrChordTooLarge)
}

func TestHandleEncodeWithExplicitScale(t *testing.T) {
	resp := postEncode(t, `{"chords": [[1, 4, 7, 9], [5]], "scale": {"root": 4, "vector": [0, 2, 4, 5, 7, 9, 11]}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res model.EncodeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))

	assert := assert.New(t)
	assert.NotEmpty(res.RequestId)
	assert.Equal(res.RequestId, resp.Header.Get("X-Request-Id"))
	assert.Equal([]model.EncodeResult{
		{
			Input:    model.Notes{1, 4, 7, 9},
			Root:     1,
			Encoding: model.Encoding{ScaleDegree: 8, Chord: model.Notes{0, 3, 6, 8}},
			GCT:      "[8,[0,3,6,8]]",
		},
		{
			Input:    model.Notes{5},
			Root:     5,
			Encoding: model.Encoding{ScaleDegree: 1, Chord: model.Notes{0}},
			GCT:      "[1,[0]]",
		},
	}, res.Results)
}

func TestHandleEncodeWithNamedScale(t *testing.T) {
	resp := postEncode(t, `{"chords": [[57, 60, 64]], "scale_name": "minor", "scale_root": "A", "search": "permutation"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res model.EncodeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, model.Notes{0, 2, 4, 5, 7, 9, 11}, res.Scale.Vector)
	assert.Equal(t, "[0,[0,3,7]]", res.Results[0].GCT)
}

func TestHandleEncodeRejectsBadRequests(t *testing.T) {
	cases := map[string]string{
		"bad json":      `{"chords": `,
		"no chords":     `{"chords": []}`,
		"empty chord":   `{"chords": [[]]}`,
		"empty scale":   `{"chords": [[0, 4, 7]], "scale": {"root": 0, "vector": []}}`,
		"unknown scale": `{"chords": [[0, 4, 7]], "scale_name": "bebop"}`,
		"bad root":      `{"chords": [[0, 4, 7]], "scale_root": "H"}`,
		"bad search":    `{"chords": [[0, 4, 7]], "search": "greedy"}`,
		"too large":     `{"chords": [[0, 1, 2, 3, 4, 5, 6, 7, 8]]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			resp := postEncode(t, body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var e model.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
			assert.NotEmpty(t, e.Error)
		})
	}
}

func TestHandleScales(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/scales", nil)
	w := httptest.NewRecorder()
	newRouter().ServeHTTP(w, req)

	var infos []model.ScaleInfo
	require.NoError(t, json.NewDecoder(w.Result().Body).Decode(&infos))
	assert.Contains(t, infos, model.ScaleInfo{Name: "major", Intervals: []int{0, 2, 4, 5, 7, 9, 11}})
}

func TestWatcherHandlesEachNewFileOnce(t *testing.T) {
	dir := t.TempDir()
	handled := make(chan string, 10)
	w := newWatcher(dir, 10*time.Millisecond, log.New(io.Discard), func(path string) {
		handled <- path
	})

	first := filepath.Join(dir, "a.mid")
	require.NoError(t, os.WriteFile(first, nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))
	require.NoError(t, w.poll())
	require.NoError(t, w.poll())

	select {
	case path := <-handled:
		assert.Equal(t, first, path)
	case <-time.After(time.Second):
		t.Fatal("file was not handled")
	}

	second := filepath.Join(dir, "b.midi")
	require.NoError(t, os.WriteFile(second, nil, 0644))
	require.NoError(t, w.poll())

	select {
	case path := <-handled:
		assert.Equal(t, second, path)
	case <-time.After(time.Second):
		t.Fatal("file was not handled")
	}

	select {
	case path := <-handled:
		t.Fatalf("handled %s twice", path)
	case <-time.After(50 * time.Millisecond):
	}
}
