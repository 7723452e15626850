// SPDX-License-Identifier: EPL-2.0

package normalize

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/ik5/soundbank/audio"
	"github.com/ik5/soundbank/formats/wav"
)

const DefaultTool = "ffmpeg-normalize"

type commandRunner interface {
	CombinedOutput(ctx context.Context, name string, args []string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) CombinedOutput(ctx context.Context, name string, args []string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// ArgsFunc builds the tool's argument list.
type ArgsFunc func(in, out string, level float64, sampleRate int) []string

// DefaultArgs targets level dBFS at the input rate, overwriting out.
func DefaultArgs(in, out string, level float64, sampleRate int) []string {
	return []string{
		in,
		"-o", out,
		"-f",
		"-t", strconv.FormatFloat(level, 'f', -1, 64),
		"-ar", strconv.Itoa(sampleRate),
	}
}

// External normalizes through a command-line loudness normalizer. Each call
// writes its own uniquely named WAV pair in the temp directory and removes
// both files afterwards, so calls may run concurrently.
type External struct {
	tool    string
	args    ArgsFunc
	cmd     commandRunner
	tempDir string
}

type ExternalOption func(*External)

// WithTool sets the executable name or path.
func WithTool(path string) ExternalOption {
	return func(e *External) {
		if path != "" {
			e.tool = path
		}
	}
}

func WithArgs(f ArgsFunc) ExternalOption {
	return func(e *External) { e.args = f }
}

// WithTempDir sets where the intermediate files go. Defaults to os.TempDir.
func WithTempDir(dir string) ExternalOption {
	return func(e *External) { e.tempDir = dir }
}

func withCommandRunner(r commandRunner) ExternalOption {
	return func(e *External) { e.cmd = r }
}

func NewExternal(opts ...ExternalOption) *External {
	e := &External{
		tool: DefaultTool,
		args: DefaultArgs,
		cmd:  execRunner{},
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *External) Normalize(ctx context.Context, buf *audio.Buffer, level Level) (_ *audio.Buffer, err error) {
	target, ok := level.DB()
	if !ok {
		return buf, nil
	}

	dir := e.tempDir
	if dir == "" {
		dir = os.TempDir()
	}

	id := uuid.NewString()
	in := filepath.Join(dir, "soundbank-"+id+"-pre.wav")
	out := filepath.Join(dir, "soundbank-"+id+"-post.wav")
	defer func() {
		os.Remove(in)
		os.Remove(out)
	}()

	if err := wav.WriteFile(in, buf); err != nil {
		return nil, err
	}

	output, err := e.cmd.CombinedOutput(ctx, e.tool, e.args(in, out, target, buf.SampleRate))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v: %s", ErrExternalTool, e.tool, err, strings.TrimSpace(string(output)))
	}

	data, err := os.ReadFile(out)
	if err != nil {
		return nil, fmt.Errorf("%w: reading output: %v", ErrExternalTool, err)
	}

	src, err := wav.Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: decoding output: %v", ErrExternalTool, err)
	}
	defer src.Close()

	return audio.ReadMono(src, audio.Window{})
}
