// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ik5/soundbank/audio"
	"github.com/ik5/soundbank/decode"
	"github.com/ik5/soundbank/formats/wav"
	"github.com/ik5/soundbank/process"
	"github.com/ik5/soundbank/segment"
	"golang.org/x/sync/errgroup"
)

// AudioOptions selects what Audio does for each item.
type AudioOptions struct {
	// SaveOriginal downloads the original file into the original-audio
	// directory; otherwise it is decoded straight from its URL.
	SaveOriginal bool
	// SaveProcessed writes <id>_processed.wav.
	SaveProcessed bool
	// ReturnAudio keeps each item's final buffer in its result.
	ReturnAudio bool
	// Segment cuts each item to its boundary table. Items without one are
	// skipped. When false the whole recording is processed.
	Segment bool
	// Raw skips the processing pipeline.
	Raw bool
	// Process configures the pipeline.
	Process process.Options
}

// DefaultAudioOptions mirrors a full dataset build.
func DefaultAudioOptions() AudioOptions {
	return AudioOptions{
		SaveOriginal:  true,
		SaveProcessed: true,
		ReturnAudio:   true,
		Segment:       true,
		Process:       process.Defaults(),
	}
}

// Record is one recording held in memory.
type Record struct {
	ID     string        `json:"id" yaml:"id"`
	Buffer *audio.Buffer `json:"-" yaml:"-"`
}

// ItemResult is the outcome for one item. Err is nil on success. Skipped
// items had no boundary table; their original may still have been saved.
type ItemResult struct {
	ID            string  `json:"id" yaml:"id"`
	OriginalPath  string  `json:"original_path,omitempty" yaml:"original_path,omitempty"`
	ProcessedPath string  `json:"processed_path,omitempty" yaml:"processed_path,omitempty"`
	Skipped       bool    `json:"skipped" yaml:"skipped"`
	Err           error   `json:"-" yaml:"-"`
	Record        *Record `json:"-" yaml:"-"`
}

// Report lists item results in listing order.
type Report struct {
	Results []ItemResult `json:"results" yaml:"results"`
}

// Failed counts items with an error.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Skipped counts items without a boundary table.
func (r *Report) Skipped() int {
	n := 0
	for _, res := range r.Results {
		if res.Skipped {
			n++
		}
	}
	return n
}

// Records returns the in-memory recordings, in listing order.
func (r *Report) Records() []Record {
	var out []Record
	for _, res := range r.Results {
		if res.Record != nil {
			out = append(out, *res.Record)
		}
	}
	return out
}

// Err joins every item error, or returns nil.
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", res.ID, res.Err))
		}
	}
	return errors.Join(errs...)
}

// Audio fetches, segments, processes and saves every item. A failing item is
// logged and recorded in its result; the others still run. The returned
// error joins the item errors.
func (l *Loader) Audio(ctx context.Context, opts AudioOptions) (*Report, error) {
	paths, err := l.Paths(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{Results: make([]ItemResult, len(paths.Items))}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.cfg.Workers)

	for i, item := range paths.Items {
		g.Go(func() error {
			report.Results[i] = l.audioItem(ctx, item, opts)
			return nil
		})
	}
	_ = g.Wait()

	return report, report.Err()
}

func (l *Loader) audioItem(ctx context.Context, item Item, opts AudioOptions) (res ItemResult) {
	log := l.logger.With(slog.String("id", item.ID))
	res = ItemResult{ID: item.ID}

	// A panic in one item's decode or pipeline must not take the batch down.
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic: %v", r)
			log.Error("item failed", slog.Any("error", err))
			res = ItemResult{ID: item.ID, OriginalPath: res.OriginalPath, Err: err}
		}
	}()

	fail := func(err error) ItemResult {
		log.Error("item failed", slog.Any("error", err))
		res.Err = err
		return res
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	source := item.OriginalURL
	if opts.SaveOriginal {
		path, err := l.client.Download(ctx, item.OriginalURL, item.OriginalDir, item.OriginalName)
		if err != nil {
			return fail(fmt.Errorf("downloading original: %w", err))
		}
		log.Debug("saved original", slog.String("path", path))
		res.OriginalPath = path
		source = path
	}

	boundary := segment.None()
	if opts.Segment {
		if !l.client.Available(ctx, item.SegmentURL) {
			log.Info("no segment boundary, skipping", slog.String("segment", item.SegmentURL))
			res.Skipped = true
		} else {
			boundary = segment.Table(item.SegmentURL)
		}
	}

	if res.Skipped && !opts.ReturnAudio {
		return res
	}

	decodeOpts := decode.Options{Format: decode.FormatOf(item.OriginalName)}
	buf, err := segment.File(ctx, l.client, source, boundary, decodeOpts)
	if err != nil {
		return fail(err)
	}

	if !res.Skipped {
		if !opts.Raw {
			buf, err = process.Process(ctx, buf, opts.Process)
			if err != nil {
				return fail(err)
			}
		}

		if opts.SaveProcessed {
			if err := wav.WriteFile(item.ProcessedPath, buf); err != nil {
				return fail(err)
			}
			res.ProcessedPath = item.ProcessedPath
			log.Debug("saved processed", slog.String("path", item.ProcessedPath))
		}
	}

	if opts.ReturnAudio {
		res.Record = &Record{ID: item.ID, Buffer: buf}
	}

	log.Info("item done",
		slog.Bool("skipped", res.Skipped),
		slog.Int("sample_rate", buf.SampleRate),
		slog.Float64("seconds", buf.Duration()))

	return res
}
