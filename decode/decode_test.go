// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/soundbank/audio"
	"github.com/ik5/soundbank/fetch"
	"github.com/ik5/soundbank/internal/audiotest"
)

func TestSniff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header []byte
		want   string
	}{
		{"wav", audiotest.WAV(8000, 1, []int16{1, 2})[:12], "wav"},
		{"aiff", []byte("FORM\x00\x00\x00\x10AIFF"), "aiff"},
		{"aifc", []byte("FORM\x00\x00\x00\x10AIFC"), "aiff"},
		{"ogg", []byte("OggS\x00\x02"), "ogg"},
		{"flac", []byte("fLaC\x00\x00\x00\x22"), "flac"},
		{"id3", []byte("ID3\x04\x00"), "mp3"},
		{"mpeg sync", []byte{0xFF, 0xFB, 0x90, 0x00}, "mp3"},
		{"text", []byte("hello world!"), ""},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Sniff(tt.header); got != tt.want {
				t.Errorf("Sniff() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"a.WAV", "wav"},
		{"/data/b.flac", "flac"},
		{"https://host/x/c.mp3?download=1", "mp3"},
		{"https://zenodo.org/api/records/1/files/d.wav/content", ""},
		{"noext", ""},
	}

	for _, tt := range tests {
		if got := FormatOf(tt.in); got != tt.want {
			t.Errorf("FormatOf(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewRegistry_Formats(t *testing.T) {
	t.Parallel()

	want := []string{"aif", "aiff", "flac", "mp3", "oga", "ogg", "wav", "wave"}
	got := NewRegistry().Formats()
	if len(got) != len(want) {
		t.Fatalf("Formats() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Formats()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReader_SniffsWAV(t *testing.T) {
	t.Parallel()

	data := audiotest.WAV(8000, 2, []int16{16384, -16384, 8192, 8192})

	buf, err := Reader(bytes.NewReader(data), Options{})
	if err != nil {
		t.Fatalf("Reader() error = %v", err)
	}
	if buf.SampleRate != 8000 || buf.Len() != 2 {
		t.Fatalf("Reader() = rate %d len %d, want 8000, 2", buf.SampleRate, buf.Len())
	}
	if buf.Samples[0] != 0 || buf.Samples[1] != 0.25 {
		t.Errorf("Reader() samples = %v, want [0 0.25]", buf.Samples)
	}
}

func TestReader_Window(t *testing.T) {
	t.Parallel()

	pcm := make([]int16, 100)
	for i := range pcm {
		pcm[i] = int16(i * 100)
	}
	data := audiotest.WAV(100, 1, pcm)

	buf, err := Reader(bytes.NewReader(data), Options{Format: "wav", Window: audio.Window{Offset: 0.2, Duration: 0.3}})
	if err != nil {
		t.Fatalf("Reader() error = %v", err)
	}
	if buf.Len() != 30 {
		t.Fatalf("Reader() len = %d, want 30", buf.Len())
	}
	if want := float32(2000) / 32768; buf.Samples[0] != want {
		t.Errorf("first sample = %v, want %v", buf.Samples[0], want)
	}
}

func TestReader_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := Reader(bytes.NewReader([]byte("definitely not audio")), Options{})
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Reader() error = %v, want ErrUnknownFormat", err)
	}
}

func TestFile_LocalAndURL(t *testing.T) {
	t.Parallel()

	data := audiotest.WAV(16000, 1, make([]int16, 1600))

	path := filepath.Join(t.TempDir(), "clip.wav")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(data)
	}))
	t.Cleanup(srv.Close)

	client := fetch.New()
	for _, loc := range []string{path, srv.URL + "/records/1/files/clip.wav/content"} {
		buf, err := File(context.Background(), client, loc, Options{})
		if err != nil {
			t.Fatalf("File(%q) error = %v", loc, err)
		}
		if buf.SampleRate != 16000 || buf.Len() != 1600 {
			t.Errorf("File(%q) = rate %d len %d", loc, buf.SampleRate, buf.Len())
		}
	}
}
