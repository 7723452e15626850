// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/soundbank/audio"
	"github.com/ik5/soundbank/utils"
)

const headerSize = 44

// Write encodes buf as a mono 16-bit PCM WAV with a canonical 44-byte header.
func Write(w io.Writer, buf *audio.Buffer) error {
	if buf.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", audio.ErrInvalidSampleRate, buf.SampleRate)
	}

	const (
		channels      = 1
		bitsPerSample = 16
		blockAlign    = channels * bitsPerSample / 8
	)
	dataSize := uint32(buf.Len() * blockAlign)

	header := make([]byte, headerSize)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], headerSize-8+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], wavFormatPCM)
	binary.LittleEndian.PutUint16(header[22:24], channels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(buf.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(buf.SampleRate*blockAlign))
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	const chunkSize = 8192
	chunk := make([]byte, 0, min(buf.Len(), chunkSize)*2)
	for i := 0; i < buf.Len(); i += chunkSize {
		chunk = chunk[:0]
		for _, v := range buf.Samples[i:min(i+chunkSize, buf.Len())] {
			chunk = binary.LittleEndian.AppendUint16(chunk, uint16(utils.Float32ToInt16(v)))
		}
		if _, err := w.Write(chunk); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// WriteFile writes buf to path, creating parent directories as needed.
func WriteFile(path string, buf *audio.Buffer) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := Write(bw, buf); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return bw.Flush()
}
