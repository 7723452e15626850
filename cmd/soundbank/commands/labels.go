// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"github.com/spf13/cobra"
)

var (
	labelsIDs    []string
	labelsNoSave bool
)

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "Print the decoded label tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(labelsIDs) > 0 {
			globalConfig.IDs = labelsIDs
		}

		ld, err := newLoader()
		if err != nil {
			return err
		}

		labels, err := ld.Labels(cmd.Context(), !labelsNoSave)
		if perr := printResult(labels); perr != nil {
			return perr
		}
		return err
	},
}

func init() {
	labelsCmd.Flags().StringSliceVar(&labelsIDs, "ids", nil, "recording ids (default all)")
	labelsCmd.Flags().BoolVar(&labelsNoSave, "no-save", false, "do not save the label files")
}
