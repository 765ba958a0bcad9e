// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
)

// ToneSource is a finite mono sine generator.
//
// Sample i is sin(2π × frequency × i / sampleRate). The value depends only on
// the index, so a rewound source replays exactly the same sequence.
type ToneSource struct {
	sampleRate int
	frequency  float64
	frames     int
	pos        int
}

// NewToneSource returns a mono sine source of frames samples.
func NewToneSource(sampleRate int, frequency float64, frames int) (*ToneSource, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	if !(frequency > 0) || math.IsInf(frequency, 0) {
		return nil, ErrInvalidFrequency
	}

	if frames < 0 {
		return nil, ErrNegativeLength
	}

	return &ToneSource{
		sampleRate: sampleRate,
		frequency:  frequency,
		frames:     frames,
	}, nil
}

func (s *ToneSource) SampleRate() int    { return s.sampleRate }
func (s *ToneSource) Channels() int      { return 1 }
func (s *ToneSource) Frames() int        { return s.frames }
func (s *ToneSource) Frequency() float64 { return s.frequency }
func (s *ToneSource) Close() error       { return nil }

// Rewind restarts the sequence at sample 0.
func (s *ToneSource) Rewind() { s.pos = 0 }

// Sample returns the value at index i without moving the read position.
func (s *ToneSource) Sample(i int) float64 {
	return math.Sin(2 * math.Pi * s.frequency * float64(i) / float64(s.sampleRate))
}

func (s *ToneSource) ReadSamples(dst []float64) (int, error) {
	if s.pos >= s.frames {
		return 0, io.EOF
	}

	n := min(len(dst), s.frames-s.pos)
	for i := range n {
		dst[i] = s.Sample(s.pos + i)
	}
	s.pos += n

	if s.pos >= s.frames {
		return n, io.EOF
	}

	return n, nil
}
