// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"github.com/spf13/cobra"
)

var pathsIDs []string

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Resolve per-item input and output locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(pathsIDs) > 0 {
			globalConfig.IDs = pathsIDs
		}

		ld, err := newLoader()
		if err != nil {
			return err
		}

		paths, err := ld.Paths(cmd.Context())
		if err != nil {
			return err
		}

		return printResult(paths)
	},
}

func init() {
	pathsCmd.Flags().StringSliceVar(&pathsIDs, "ids", nil, "recording ids (default all)")
}
