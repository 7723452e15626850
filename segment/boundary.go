// SPDX-License-Identifier: EPL-2.0

package segment

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ik5/soundbank/audio"
	"github.com/ik5/soundbank/fetch"
)

type kind int

const (
	kindNone kind = iota
	kindPair
	kindTable
)

// Boundary says where a segment lives: an explicit (start, stop) pair in
// seconds, a boundary table to read it from, or nothing at all.
type Boundary struct {
	kind        kind
	start, stop float64
	location    string
}

// Pair is an explicit boundary in seconds.
func Pair(start, stop float64) Boundary {
	return Boundary{kind: kindPair, start: start, stop: stop}
}

// Table defers the boundary to a table at location (path or URL).
func Table(location string) Boundary {
	return Boundary{kind: kindTable, location: location}
}

// None keeps the whole recording.
func None() Boundary { return Boundary{} }

func (b Boundary) IsNone() bool { return b.kind == kindNone }

func (b Boundary) String() string {
	switch b.kind {
	case kindPair:
		return fmt.Sprintf("%g-%g", b.start, b.stop)
	case kindTable:
		return "table:" + b.location
	}
	return "none"
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// Validate checks 0 <= start < stop for pairs. Both ends must be finite.
func Validate(start, stop float64) error {
	if !finite(start) || !finite(stop) || start < 0 || start >= stop {
		return fmt.Errorf("%w: start %g stop %g", ErrInvalidBoundary, start, stop)
	}
	return nil
}

// Resolve turns b into a time window, reading the table through opener when
// needed. None resolves to the unbounded window.
func (b Boundary) Resolve(ctx context.Context, opener fetch.Opener) (audio.Window, error) {
	start, stop := b.start, b.stop

	switch b.kind {
	case kindNone:
		return audio.Window{}, nil
	case kindTable:
		rc, err := opener.Open(ctx, b.location)
		if err != nil {
			return audio.Window{}, err
		}
		defer rc.Close()

		start, stop, err = ReadTable(rc)
		if err != nil {
			return audio.Window{}, fmt.Errorf("%s: %w", b.location, err)
		}
	}

	if err := Validate(start, stop); err != nil {
		return audio.Window{}, err
	}

	return audio.Window{Offset: start, Duration: stop - start}, nil
}

// ReadTable reads the first non-blank row of a whitespace-separated boundary
// table and returns its first two columns.
func ReadTable(r io.Reader) (start, stop float64, err error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return 0, 0, fmt.Errorf("%w: want two columns, got %q", ErrBadTable, sc.Text())
		}

		if start, err = strconv.ParseFloat(fields[0], 64); err != nil {
			return 0, 0, fmt.Errorf("%w: start: %v", ErrBadTable, err)
		}
		if stop, err = strconv.ParseFloat(fields[1], 64); err != nil {
			return 0, 0, fmt.Errorf("%w: stop: %v", ErrBadTable, err)
		}
		return start, stop, nil
	}

	if err := sc.Err(); err != nil {
		return 0, 0, fmt.Errorf("%w", err)
	}

	return 0, 0, fmt.Errorf("%w: no rows", ErrBadTable)
}
