// SPDX-License-Identifier: EPL-2.0

package fixture

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ik5/audfixture/audio"
	"github.com/ik5/audfixture/formats/wav"
)

// FileMetadata describes a written fixture.
type FileMetadata struct {
	Path      string
	SizeBytes int64
	Frames    int
}

// Synthesize validates spec and returns its mono tone, positioned at sample 0.
func Synthesize(spec Spec) (*audio.ToneSource, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	tone, err := audio.NewToneSource(spec.SampleRate, spec.Frequency, spec.TotalFrames())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}

	return tone, nil
}

// Generator writes fixtures to disk.
type Generator struct {
	logger *zap.Logger
}

// NewGenerator returns a Generator logging to logger. A nil logger disables logging.
func NewGenerator(logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Generator{logger: logger}
}

// Generate synthesizes spec and writes it to spec.OutputPath.
//
// Missing parent directories are created. The file is written to a temporary
// sibling and renamed into place, so on success it replaces any previous file
// and on failure the previous file (if any) is left untouched.
func (g *Generator) Generate(spec Spec) (FileMetadata, error) {
	tone, err := Synthesize(spec)
	if err != nil {
		return FileMetadata{}, err
	}

	dir := filepath.Dir(spec.OutputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return FileMetadata{}, fmt.Errorf("%w: create %s: %w", ErrIO, dir, err)
	}

	g.logger.Debug("writing fixture",
		zap.String("path", spec.OutputPath),
		zap.Int("frames", tone.Frames()),
		zap.Int("sample_rate", spec.SampleRate),
		zap.Float64("frequency", spec.Frequency),
		zap.Float64("amplitude", spec.Amplitude),
	)

	tmpPath, size, err := writeTemp(dir, tone, spec.Amplitude)
	if err != nil {
		return FileMetadata{}, err
	}

	if err := os.Rename(tmpPath, spec.OutputPath); err != nil {
		_ = os.Remove(tmpPath)
		return FileMetadata{}, fmt.Errorf("%w: replace %s: %w", ErrIO, spec.OutputPath, err)
	}

	g.logger.Info("fixture written",
		zap.String("path", spec.OutputPath),
		zap.Int64("size_bytes", size),
	)

	return FileMetadata{
		Path:      spec.OutputPath,
		SizeBytes: size,
		Frames:    tone.Frames(),
	}, nil
}

// writeTemp encodes tone into a new temporary file in dir. The file is closed
// on every path and removed when anything fails.
func writeTemp(dir string, tone *audio.ToneSource, amplitude float64) (path string, size int64, err error) {
	f, err := os.CreateTemp(dir, ".fixture-*.wav")
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrIO, err)
	}
	path = f.Name()

	defer func() {
		err = multierr.Append(err, wrapIO(f.Close()))
		if err != nil {
			_ = os.Remove(path)
			path, size = "", 0
		}
	}()

	if err = f.Chmod(0o644); err != nil {
		return path, 0, fmt.Errorf("%w: %w", ErrIO, err)
	}

	w := bufio.NewWriterSize(f, 64*1024)
	if size, err = wav.WriteStereo16(w, tone, amplitude); err != nil {
		return path, size, fmt.Errorf("%w: %w", ErrIO, err)
	}

	if err = w.Flush(); err != nil {
		return path, size, fmt.Errorf("%w: %w", ErrIO, err)
	}

	if err = f.Sync(); err != nil {
		return path, size, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return path, size, nil
}

func wrapIO(err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrIO, err)
}
