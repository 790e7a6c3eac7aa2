package cmd

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/jsphweid/gct/constants"
	"github.com/jsphweid/gct/gct"
	"github.com/jsphweid/gct/model"
	"github.com/jsphweid/gct/scale"
	"github.com/jsphweid/gct/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var ErrChordTooLarge = errors.New("chord too large")

var (
	logger  = log.Default()
	catalog = scale.Default()
)

var rootCmd = &cobra.Command{
	Use:   "gct",
	Short: "Generalized Chord Type analysis",
	Long: `Encodes chords as Generalized Chord Types: the scale degree of the
chord's root plus its tones transposed so that the root is 0.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// a missing .env is fine
		_ = godotenv.Load()

		logger = newLogger(constants.GetLogLevel())
		c, err := scale.Load(constants.GetScalesPath())
		if err != nil {
			return err
		}
		catalog = c
		return nil
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func newLogger(level string) *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gct",
	})
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		l.Warn("unknown log level, using info", "level", level)
		lvl = log.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}

// scaleFlags are shared by every command that needs a reference scale and a
// subset search strategy.
type scaleFlags struct {
	name   string
	root   string
	vector string
	search string
}

func (f *scaleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.name, "scale", "s", "major", "named scale from the catalog")
	cmd.Flags().StringVarP(&f.root, "root", "r", "C", "scale root as a note name or pitch class")
	cmd.Flags().StringVar(&f.vector, "scale-vector", "", "explicit comma separated scale pitch classes, overrides --scale")
	cmd.Flags().StringVar(&f.search, "search", gct.SearchClique, "consonant subset search: clique or permutation")
}

func (f *scaleFlags) resolve() (model.Scale, *gct.Encoder, error) {
	finder, err := gct.FinderByName(f.search)
	if err != nil {
		return model.Scale{}, nil, err
	}
	s, err := resolveScale(f.name, f.root, f.vector)
	if err != nil {
		return model.Scale{}, nil, err
	}
	return s, gct.NewEncoder(gct.WithFinder(finder)), nil
}

func resolveScale(name, root, vector string) (model.Scale, error) {
	r, err := scale.ParseRoot(root)
	if err != nil {
		return model.Scale{}, err
	}
	if vector == "" {
		return catalog.Lookup(name, r)
	}
	v, err := util.ParseInts(vector)
	if err != nil {
		return model.Scale{}, errors.Wrap(err, "scale vector")
	}
	return model.Scale{Root: r, Vector: v}, nil
}

func checkChordSize(chord model.Notes) error {
	if limit := constants.GetMaxChordSize(); len(chord) > limit {
		return errors.Wrapf(ErrChordTooLarge, "%d tones, at most %d allowed", len(chord), limit)
	}
	return nil
}
