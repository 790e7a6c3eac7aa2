//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/gct/cmd"
	"github.com/jsphweid/gct/model"
	"github.com/stretchr/testify/assert"
)

func createEncodeReqBody(chords []model.Notes, scale model.Scale) io.Reader {
	data, err := json.Marshal(model.EncodeRequestBody{Chords: chords, Scale: &scale})
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func encode(t *testing.T, body io.Reader) model.EncodeResponse {
	req := httptest.NewRequest(http.MethodPost, "/encode", body)
	w := httptest.NewRecorder()
	cmd.HandleEncode(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)
	assert.Equal(t, 200, resp.StatusCode, string(respBody))

	var res model.EncodeResponse
	if err := json.Unmarshal(respBody, &res); err != nil {
		panic(err.Error())
	}
	return res
}

func TestChromaticRootE2E(t *testing.T) {
	body := createEncodeReqBody(
		[]model.Notes{{1, 4, 7, 9}},
		model.Scale{Root: 4, Vector: model.Notes{0, 2, 4, 5, 7, 9, 11}},
	)
	res := encode(t, body)

	assert := assert.New(t)
	assert.Len(res.Results, 1)
	assert.Equal("[8,[0,3,6,8]]", res.Results[0].GCT)
	assert.Equal(1, res.Results[0].Root)
}

func TestCadenceInCMajorE2E(t *testing.T) {
	body := createEncodeReqBody(
		[]model.Notes{{48, 64, 67, 72}, {53, 65, 69, 72}, {55, 65, 71, 74}, {48, 64, 67, 72}},
		model.Scale{Root: 0, Vector: model.Notes{0, 2, 4, 5, 7, 9, 11}},
	)
	res := encode(t, body)

	var gcts []string
	for _, r := range res.Results {
		gcts = append(gcts, r.GCT)
	}
	assert.Equal(t, []string{"[0,[0,0,4,7]]", "[5,[0,0,4,7]]", "[7,[0,4,7,10]]", "[0,[0,0,4,7]]"}, gcts)
}
