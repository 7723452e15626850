// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/soundbank"
	"github.com/ik5/soundbank/segment"
)

var (
	processSegment      string
	processSegmentTable string
	processPipeline     pipelineFlags
)

var processCmd = &cobra.Command{
	Use:   "process <input> <output.wav>",
	Short: "Segment and process a single file or URL",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		boundary, err := parseBoundary(processSegment, processSegmentTable)
		if err != nil {
			return err
		}

		opts, err := processPipeline.options()
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		if err := soundbank.PrepareFile(cmd.Context(), client, args[0], args[1], boundary, opts); err != nil {
			return err
		}

		slog.Info("wrote", slog.String("path", args[1]), slog.String("segment", boundary.String()))
		return nil
	},
}

// parseBoundary reads "start,stop" seconds or a table location. At most one
// may be given.
func parseBoundary(pair, table string) (segment.Boundary, error) {
	switch {
	case pair != "" && table != "":
		return segment.None(), errors.New("--segment and --segment-table are mutually exclusive")
	case table != "":
		return segment.Table(table), nil
	case pair == "":
		return segment.None(), nil
	}

	startStr, stopStr, ok := strings.Cut(pair, ",")
	if !ok {
		return segment.None(), fmt.Errorf("invalid --segment %q: want start,stop", pair)
	}

	start, err := strconv.ParseFloat(strings.TrimSpace(startStr), 64)
	if err != nil {
		return segment.None(), fmt.Errorf("invalid segment start: %w", err)
	}
	stop, err := strconv.ParseFloat(strings.TrimSpace(stopStr), 64)
	if err != nil {
		return segment.None(), fmt.Errorf("invalid segment stop: %w", err)
	}

	if err := segment.Validate(start, stop); err != nil {
		return segment.None(), err
	}

	return segment.Pair(start, stop), nil
}

func init() {
	processCmd.Flags().StringVar(&processSegment, "segment", "", "segment boundary in seconds, start,stop")
	processCmd.Flags().StringVar(&processSegmentTable, "segment-table", "", "path or URL of a boundary table")
	processPipeline.register(processCmd)
}
