package cmd

import (
	"fmt"

	"github.com/jsphweid/gct/model"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scalesCmd)
}

var scalesCmd = &cobra.Command{
	Use:   "scales",
	Short: "Lists the scale catalog",
	Long:  `Lists the named scales, including the ones loaded from GCT_SCALES_PATH.`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, info := range scaleInfos() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-18s %v\n", info.Name, info.Intervals)
		}
	},
}

func scaleInfos() []model.ScaleInfo {
	names := catalog.Names()
	res := make([]model.ScaleInfo, 0, len(names))
	for _, name := range names {
		res = append(res, model.ScaleInfo{Name: name, Intervals: catalog[name]})
	}
	return res
}
