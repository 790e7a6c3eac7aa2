package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/gct/gct"
	"github.com/jsphweid/gct/model"
	"github.com/jsphweid/gct/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var encodeFlags scaleFlags

func init() {
	encodeFlags.register(encodeCmd)
	rootCmd.AddCommand(encodeCmd)
}

var encodeCmd = &cobra.Command{
	Use:   "encode CHORD...",
	Short: "Encodes chords given as comma separated pitches",
	Long: `Encodes each chord argument, e.g.

  gct encode 1,4,7,9 --root 4 --scale-vector 0,2,4,5,7,9,11
  gct encode 60,64,67 67,71,74,77 --scale minor --root A`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, enc, err := encodeFlags.resolve()
		if err != nil {
			return err
		}
		return encodeAll(cmd.OutOrStdout(), enc, s, args)
	},
}

func encodeAll(out io.Writer, enc *gct.Encoder, s model.Scale, args []string) error {
	for _, arg := range args {
		chord, err := util.ParseInts(arg)
		if err != nil {
			return errors.Wrapf(err, "chord %q", arg)
		}
		if err := checkChordSize(chord); err != nil {
			return err
		}
		root, err := enc.DetermineRoot(chord)
		if err != nil {
			return errors.Wrapf(err, "chord %q", arg)
		}
		encoding, err := enc.Encode(chord, s)
		if err != nil {
			return errors.Wrapf(err, "chord %q", arg)
		}
		fmt.Fprintf(out, "%v\troot %d\t%v\n", chord, root, encoding)
	}
	return nil
}
