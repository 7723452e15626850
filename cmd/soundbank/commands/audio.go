// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/ik5/soundbank/audio"
	"github.com/ik5/soundbank/dataset"
	"github.com/ik5/soundbank/normalize"
	"github.com/ik5/soundbank/process"
)

// pipelineFlags are shared by the audio and process commands.
type pipelineFlags struct {
	targetRate int
	normLevel  float64
	normMethod string
	fade       float64
	fadeEdge   string
	resampler  string
}

func (p *pipelineFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&p.targetRate, "target-rate", process.DefaultTargetRate, "output sample rate in Hz")
	f.Float64Var(&p.normLevel, "norm-level", math.NaN(), "loudness target in dBFS (default no normalization)")
	f.StringVar(&p.normMethod, "norm-method", normalize.MethodFFmpeg, "normalization method: ffmpeg-normalize or gain")
	f.Float64Var(&p.fade, "fade", process.DefaultFadeDuration, "fade duration in seconds, 0 to disable")
	f.StringVar(&p.fadeEdge, "fade-edge", "both", "fade edge: in, out or both")
	f.StringVar(&p.resampler, "resampler", "soxr", "resampler: soxr, soxr_vhq, soxr_mq, soxr_lq, soxr_qq or cubic")
}

// options builds the pipeline. Normalization is enabled only when a level is
// given.
func (p *pipelineFlags) options() (process.Options, error) {
	opts := process.Defaults()
	opts.TargetRate = p.targetRate
	opts.FadeDuration = p.fade

	edge, err := audio.ParseEdge(p.fadeEdge)
	if err != nil {
		return opts, err
	}
	opts.FadeEdge = edge

	if opts.Resampler, err = process.NewResampler(p.resampler); err != nil {
		return opts, err
	}

	if math.IsNaN(p.normLevel) {
		return opts, nil
	}

	opts.Level = normalize.Target(p.normLevel)
	opts.Normalizer, err = normalize.New(p.normMethod, normalize.WithTool(globalConfig.NormalizeTool))
	if err != nil {
		return opts, err
	}

	return opts, nil
}

var (
	audioIDs         []string
	audioNoOriginal  bool
	audioNoProcessed bool
	audioNoSegment   bool
	audioRaw         bool
	audioPipeline    pipelineFlags
)

var audioCmd = &cobra.Command{
	Use:   "audio",
	Short: "Download, segment, process and save recordings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(audioIDs) > 0 {
			globalConfig.IDs = audioIDs
		}

		popts, err := audioPipeline.options()
		if err != nil {
			return err
		}

		ld, err := newLoader()
		if err != nil {
			return err
		}

		report, runErr := ld.Audio(cmd.Context(), dataset.AudioOptions{
			SaveOriginal:  !audioNoOriginal,
			SaveProcessed: !audioNoProcessed,
			Segment:       !audioNoSegment,
			Raw:           audioRaw,
			Process:       popts,
		})
		if report == nil {
			return runErr
		}

		if err := printResult(summarize(report)); err != nil {
			return err
		}

		if n := report.Failed(); n > 0 {
			return fmt.Errorf("%d of %d items failed", n, len(report.Results))
		}
		return nil
	},
}

type itemSummary struct {
	ID            string `json:"id" yaml:"id"`
	Status        string `json:"status" yaml:"status"`
	OriginalPath  string `json:"original_path,omitempty" yaml:"original_path,omitempty"`
	ProcessedPath string `json:"processed_path,omitempty" yaml:"processed_path,omitempty"`
	Error         string `json:"error,omitempty" yaml:"error,omitempty"`
}

type audioSummary struct {
	Items     []itemSummary `json:"items" yaml:"items"`
	Processed int           `json:"processed" yaml:"processed"`
	Skipped   int           `json:"skipped" yaml:"skipped"`
	Failed    int           `json:"failed" yaml:"failed"`
}

func summarize(r *dataset.Report) audioSummary {
	s := audioSummary{Skipped: r.Skipped(), Failed: r.Failed()}
	for _, res := range r.Results {
		item := itemSummary{
			ID:            res.ID,
			Status:        "ok",
			OriginalPath:  res.OriginalPath,
			ProcessedPath: res.ProcessedPath,
		}
		switch {
		case res.Err != nil:
			item.Status = "failed"
			item.Error = res.Err.Error()
		case res.Skipped:
			item.Status = "skipped"
		default:
			s.Processed++
		}
		s.Items = append(s.Items, item)
	}
	return s
}

func init() {
	f := audioCmd.Flags()
	f.StringSliceVar(&audioIDs, "ids", nil, "recording ids (default all)")
	f.BoolVar(&audioNoOriginal, "no-original", false, "stream originals instead of saving them")
	f.BoolVar(&audioNoProcessed, "no-processed", false, "do not write processed files")
	f.BoolVar(&audioNoSegment, "no-segment", false, "process whole recordings")
	f.BoolVar(&audioRaw, "raw", false, "skip resampling, normalization and fades")
	audioPipeline.register(audioCmd)
}
