// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audfixture/audio"
)

// pcmReader is the subset of gowav.Decoder used by source, to allow testing
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source streams 16-bit PCM from a decoded WAV file as float64 in [-1,1).
type Source struct {
	dec        pcmReader
	format     *goaudio.Format
	sampleRate int
	channels   int
	frames     int
	intBuf     *goaudio.IntBuffer
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }

// Frames is the frame count declared by the data chunk.
func (s *Source) Frames() int { return s.frames }

// Format returns the go-audio format of the stream.
func (s *Source) Format() *goaudio.Format { return s.format }

func (s *Source) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// Resize buffer if needed
	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.format,
			SourceBitDepth: BitsPerSample,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}

	for i := range n {
		dst[i] = float64(s.intBuf.Data[i]) / 32768.0
	}

	return n, nil
}

// Decoder reads PCM 16-bit WAV files through github.com/go-audio/wav.
type Decoder struct{}

var _ audio.Decoder = Decoder{}

func (Decoder) Decode(r io.ReadSeeker) (audio.Source, error) {
	return decode(r)
}

// DecodeFile is Decode with the concrete result type.
func (Decoder) DecodeFile(r io.ReadSeeker) (*Source, error) {
	return decode(r)
}

func decode(r io.ReadSeeker) (*Source, error) {
	d := gowav.NewDecoder(r)

	d.ReadInfo()
	if err := d.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	if d.WavAudioFormat != formatPCM || d.BitDepth != BitsPerSample {
		return nil, ErrOnlyPCM16bitSupported
	}

	if d.NumChans < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedChannels, d.NumChans)
	}

	if err := d.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	channels := int(d.NumChans)
	frameBytes := int64(channels * BitsPerSample / 8)

	return &Source{
		dec:        d,
		format:     d.Format(),
		sampleRate: int(d.SampleRate),
		channels:   channels,
		frames:     int(d.PCMLen() / frameBytes),
	}, nil
}
