package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/gct/analysis"
	"github.com/jsphweid/gct/constants"
	"github.com/jsphweid/gct/util"
	"github.com/spf13/cobra"
)

var (
	analyzeFlags  scaleFlags
	analyzeJSON   bool
	analyzeMaxNum int
)

func init() {
	analyzeFlags.register(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print reports as JSON")
	analyzeCmd.Flags().IntVar(&analyzeMaxNum, "max", 0, "analyze at most this many files per directory (0 is all)")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze PATH...",
	Short: "Encodes every chord of MIDI files",
	Long:  `Encodes every chord of the given MIDI files or of the MIDI files found under the given directories.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, enc, err := analyzeFlags.resolve()
		if err != nil {
			return err
		}
		a := &analysis.Analyzer{
			Encoder:      enc,
			Scale:        s,
			MaxChordSize: constants.GetMaxChordSize(),
			Logger:       logger,
		}

		paths, err := expandPaths(args, analyzeMaxNum)
		if err != nil {
			return err
		}
		for i, path := range paths {
			logger.Info("analyzing", "file", path, "n", i+1, "of", len(paths))
			report, err := a.AnalyzeFile(path)
			if err != nil {
				logger.Error("skipping file", "file", path, "err", err)
				continue
			}
			if err := printReport(cmd.OutOrStdout(), report, analyzeJSON); err != nil {
				return err
			}
		}
		return nil
	},
}

func expandPaths(args []string, maxNum int) ([]string, error) {
	var res []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			res = append(res, arg)
			continue
		}
		paths, err := util.GatherAllMidiPaths(arg, maxNum)
		if err != nil {
			return nil, err
		}
		res = append(res, paths...)
	}
	return res, nil
}

func printReport(out io.Writer, report analysis.Report, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(out).Encode(report)
	}

	fmt.Fprintf(out, "# %s (%s) scale %d %v\n", report.File, report.Id, report.Scale.Root, report.Scale.Vector)
	for _, r := range report.Results {
		fmt.Fprintf(out, "%8dms\t%s\t%v\n", r.Offset, r.Key, r.Encoding)
	}
	summary := report.Summary()
	for _, key := range util.GetKeys(summary) {
		fmt.Fprintf(out, "# %v x%d\n", key, summary[key])
	}
	if report.Skipped > 0 {
		fmt.Fprintf(out, "# skipped %d oversized chords\n", report.Skipped)
	}
	return nil
}
