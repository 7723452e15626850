// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"github.com/spf13/cobra"
)

var infoNoSave bool

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the release metadata table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ld, err := newLoader()
		if err != nil {
			return err
		}

		table, err := ld.Info(cmd.Context(), !infoNoSave)
		if table == nil {
			return err
		}

		if perr := printResult(table); perr != nil {
			return perr
		}
		return err
	},
}

func init() {
	infoCmd.Flags().BoolVar(&infoNoSave, "no-save", false, "do not save the metadata file")
}
