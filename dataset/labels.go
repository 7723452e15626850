// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

const (
	SalienceForeground = "foreground"
	SalienceBackground = "background"
)

var salienceCodes = map[string]string{
	"C1": SalienceForeground,
	"C2": SalienceBackground,
}

// Label is one annotated sound event.
type Label struct {
	ID       string  `json:"id" yaml:"id"`
	Start    float64 `json:"start" yaml:"start"`
	Stop     float64 `json:"stop" yaml:"stop"`
	Label    string  `json:"label" yaml:"label"`
	Salience string  `json:"salience" yaml:"salience"`
}

// DecodeLabel splits "<code>-<category>" and maps the code to a salience.
// Everything after the first dash is the category, so "C1-car-horn" gives
// "car-horn". Splitting on every dash and taking the second part would give
// "car" instead.
func DecodeLabel(full string) (salience, category string, err error) {
	code, category, ok := strings.Cut(strings.TrimSpace(full), "-")
	if !ok {
		return "", "", fmt.Errorf("%w: %q has no category", ErrBadLabel, full)
	}

	salience, ok = salienceCodes[code]
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownSalience, code)
	}

	return salience, category, nil
}

// ReadLabels parses a headerless label table with tab separated start, stop
// and compound label columns. Blank lines are ignored.
func ReadLabels(id string, r io.Reader) ([]Label, error) {
	var labels []Label

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		fields := strings.Split(text, "\t")
		if len(fields) < 3 {
			fields = strings.Fields(text)
		}
		if len(fields) < 3 {
			return nil, fmt.Errorf("%w: line %d: want 3 columns", ErrBadLabel, line)
		}

		start, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: start: %v", ErrBadLabel, line, err)
		}
		stop, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: stop: %v", ErrBadLabel, line, err)
		}

		salience, category, err := DecodeLabel(fields[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		labels = append(labels, Label{
			ID:       id,
			Start:    start,
			Stop:     stop,
			Label:    category,
			Salience: salience,
		})
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return labels, nil
}

// Labels loads every item's label table. With save each file is also
// downloaded into the labels directory. Items whose table cannot be read are
// logged and left out; their errors are joined into the returned error.
func (l *Loader) Labels(ctx context.Context, save bool) ([]Label, error) {
	paths, err := l.Paths(ctx)
	if err != nil {
		return nil, err
	}

	var (
		labels []Label
		errs   []error
	)
	for _, item := range paths.Items {
		got, err := l.itemLabels(ctx, item, save)
		if err != nil {
			l.logger.Error("labels failed", slog.String("id", item.ID), slog.Any("error", err))
			errs = append(errs, fmt.Errorf("%s: %w", item.ID, err))
			continue
		}
		labels = append(labels, got...)
	}

	return labels, errors.Join(errs...)
}

func (l *Loader) itemLabels(ctx context.Context, item Item, save bool) ([]Label, error) {
	rc, err := l.client.Open(ctx, item.LabelURL)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	labels, err := ReadLabels(item.ID, rc)
	if err != nil {
		return nil, err
	}

	if save {
		if _, err := l.client.Download(ctx, item.LabelURL, item.LabelDir, ""); err != nil {
			return nil, fmt.Errorf("saving labels: %w", err)
		}
	}

	return labels, nil
}
