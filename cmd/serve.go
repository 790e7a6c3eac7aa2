package cmd

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/gct/constants"
	"github.com/jsphweid/gct/gct"
	"github.com/jsphweid/gct/model"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the encoder over HTTP",
	Long:  `Serves POST /encode and GET /scales on GCT_ADDR (default :8080).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(constants.GetAddr())
	},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("could not write response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func requestScale(input model.EncodeRequestBody) (model.Scale, error) {
	if input.Scale != nil {
		return *input.Scale, nil
	}
	name, root := input.ScaleName, input.ScaleRoot
	if name == "" {
		name = "major"
	}
	if root == "" {
		root = "C"
	}
	return resolveScale(name, root, "")
}

func HandleEncode(w http.ResponseWriter, r *http.Request) {
	var input model.EncodeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "could not decode request body"))
		return
	}
	if len(input.Chords) == 0 {
		writeError(w, http.StatusBadRequest, errors.New("no chords given"))
		return
	}

	s, err := requestScale(input)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	finder, err := gct.FinderByName(input.Search)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	enc := gct.NewEncoder(gct.WithFinder(finder))

	res := model.EncodeResponse{
		RequestId: uuid.New().String(),
		Scale:     s,
		Results:   make([]model.EncodeResult, 0, len(input.Chords)),
	}
	for i, chord := range input.Chords {
		if err := checkChordSize(chord); err != nil {
			writeError(w, http.StatusBadRequest, errors.Wrapf(err, "chord %d", i))
			return
		}
		encoding, err := enc.Encode(chord, s)
		if err != nil {
			writeError(w, http.StatusBadRequest, errors.Wrapf(err, "chord %d", i))
			return
		}
		// chord and scale are valid at this point
		root, _ := enc.DetermineRoot(chord)
		res.Results = append(res.Results, model.EncodeResult{
			Input:    chord,
			Root:     root,
			Encoding: encoding,
			GCT:      encoding.String(),
		})
	}

	w.Header().Set("X-Request-Id", res.RequestId)
	writeJSON(w, http.StatusOK, res)
}

func HandleScales(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scaleInfos())
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "took", time.Since(start))
	})
}

func newRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(logRequests)
	router.HandleFunc("/encode", HandleEncode).Methods("POST")
	router.HandleFunc("/scales", HandleScales).Methods("GET")
	return cors.Default().Handler(router)
}

func serve(addr string) error {
	logger.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, newRouter())
}
