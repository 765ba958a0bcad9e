// SPDX-License-Identifier: EPL-2.0

package fixture

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	goaudio "github.com/go-audio/audio"
	"go.uber.org/multierr"

	"github.com/ik5/audfixture/formats/wav"
)

// Info is what a fixture file decodes to.
type Info struct {
	Path           string
	SizeBytes      int64
	Format         goaudio.Format
	BitDepth       int
	DeclaredFrames int // from the data chunk header
	Frames         int // actually decoded
	Duration       time.Duration
	Peak           int  // largest absolute sample value
	ChannelsMatch  bool // every frame has identical left and right samples
}

// Consistent reports whether the header agrees with the decoded payload and
// the file length of a canonical 44-byte-header file.
func (i Info) Consistent() bool {
	return i.Frames == i.DeclaredFrames && i.SizeBytes == wav.FileSize(i.Frames)
}

// Inspect decodes the WAV file at path and summarizes it.
func Inspect(path string) (info Info, err error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() {
		err = multierr.Append(err, wrapIO(f.Close()))
	}()

	st, err := f.Stat()
	if err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrIO, err)
	}

	src, err := wav.Decoder{}.DecodeFile(f)
	if err != nil {
		return Info{}, fmt.Errorf("inspect %s: %w", path, err)
	}

	info = Info{
		Path:           path,
		SizeBytes:      st.Size(),
		Format:         *src.Format(),
		BitDepth:       wav.BitsPerSample,
		DeclaredFrames: src.Frames(),
		ChannelsMatch:  true,
	}

	channels := src.Channels()
	buf := make([]float64, 4096*channels)
	samples := 0
	for {
		n, readErr := src.ReadSamples(buf)
		for i := range n {
			v := int(math.Abs(math.Round(buf[i] * 32768)))
			info.Peak = max(info.Peak, v)

			if channels == 2 && i%2 == 1 && buf[i] != buf[i-1] {
				info.ChannelsMatch = false
			}
		}
		samples += n

		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return Info{}, fmt.Errorf("inspect %s: %w", path, readErr)
		}
	}

	info.Frames = samples / channels
	info.Duration = time.Duration(float64(info.Frames) / float64(src.SampleRate()) * float64(time.Second))

	return info, nil
}
