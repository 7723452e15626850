// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/ik5/soundbank/audio"
	"github.com/ik5/soundbank/fetch"
	"github.com/ik5/soundbank/formats/aiff"
	"github.com/ik5/soundbank/formats/flac"
	"github.com/ik5/soundbank/formats/mp3"
	"github.com/ik5/soundbank/formats/vorbis"
	"github.com/ik5/soundbank/formats/wav"
)

var ErrUnknownFormat = errors.New("unknown audio format")

// sniffSize is enough header to tell every registered container apart.
const sniffSize = 12

// Options controls a single decode.
type Options struct {
	// Format forces a registry key ("wav", "mp3", ...). Empty means detect.
	Format string
	// Window restricts the decoded range.
	Window audio.Window
	// Registry overrides the default decoder set.
	Registry *audio.Registry
}

// NewRegistry returns a Registry with every supported container registered
// under its usual file extensions.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("flac", flac.Decoder{})

	return r
}

var defaultRegistry = NewRegistry()

// Sniff names the container in header by its magic bytes, or returns "".
func Sniff(header []byte) string {
	switch {
	case len(header) >= 12 && bytes.Equal(header[0:4], []byte("RIFF")) && bytes.Equal(header[8:12], []byte("WAVE")):
		return "wav"
	case len(header) >= 12 && bytes.Equal(header[0:4], []byte("FORM")) &&
		(bytes.Equal(header[8:12], []byte("AIFF")) || bytes.Equal(header[8:12], []byte("AIFC"))):
		return "aiff"
	case bytes.HasPrefix(header, []byte("OggS")):
		return "ogg"
	case bytes.HasPrefix(header, []byte("fLaC")):
		return "flac"
	case bytes.HasPrefix(header, []byte("ID3")):
		return "mp3"
	case len(header) >= 2 && header[0] == 0xFF && header[1]&0xE0 == 0xE0:
		return "mp3"
	}

	return ""
}

// FormatOf returns the lowercase extension of location without the dot. URL
// query strings and fragments are ignored.
func FormatOf(location string) string {
	p := location
	if fetch.IsURL(location) {
		if u, err := url.Parse(location); err == nil {
			p = u.Path
		}
	}

	return strings.ToLower(strings.TrimPrefix(filepath.Ext(p), "."))
}

// Reader decodes r into a mono Buffer restricted to opts.Window.
func Reader(r io.Reader, opts Options) (*audio.Buffer, error) {
	reg := opts.Registry
	if reg == nil {
		reg = defaultRegistry
	}

	format := opts.Format
	if _, ok := reg.Get(format); !ok {
		br := bufio.NewReader(r)
		header, _ := br.Peek(sniffSize)
		format = Sniff(header)
		r = br
	}

	dec, ok := reg.Get(format)
	if !ok {
		return nil, ErrUnknownFormat
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", format, err)
	}
	defer src.Close()

	buf, err := audio.ReadMono(src, opts.Window)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", format, err)
	}

	return buf, nil
}

// File opens location (a path or URL) through opener and decodes it. When
// opts.Format is empty the extension decides, falling back to the content.
func File(ctx context.Context, opener fetch.Opener, location string, opts Options) (*audio.Buffer, error) {
	if opts.Format == "" {
		opts.Format = FormatOf(location)
	}

	rc, err := opener.Open(ctx, location)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	buf, err := Reader(rc, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", location, err)
	}

	return buf, nil
}
