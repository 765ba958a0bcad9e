// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// StereoUpmixer duplicates a mono source into identical left and right channels.
type StereoUpmixer struct {
	src Source
	tmp []float64
}

func NewStereoUpmixer(src Source) (*StereoUpmixer, error) {
	if src.Channels() != 1 {
		return nil, fmt.Errorf("%w: got %d channels", ErrNotMono, src.Channels())
	}

	return &StereoUpmixer{
		src: src,
		tmp: make([]float64, 4096),
	}, nil
}

func (m *StereoUpmixer) SampleRate() int { return m.src.SampleRate() }
func (m *StereoUpmixer) Channels() int   { return 2 }
func (m *StereoUpmixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Frames reports the frame count of the wrapped source, or -1 when it is unknown.
func (m *StereoUpmixer) Frames() int {
	if f, ok := m.src.(FiniteSource); ok {
		return f.Frames()
	}

	return -1
}

// Rewind restarts the wrapped source when it supports it.
func (m *StereoUpmixer) Rewind() {
	if r, ok := m.src.(Rewinder); ok {
		r.Rewind()
	}
}

func (m *StereoUpmixer) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%2 != 0 {
		return 0, ErrInvalidDstSize
	}

	frames := len(dst) / 2

	// Grow tmp buffer if needed (but don't shrink to avoid thrashing)
	if cap(m.tmp) < frames {
		m.tmp = make([]float64, frames)
	}
	m.tmp = m.tmp[:frames]

	n, err := m.src.ReadSamples(m.tmp)
	for f := range n {
		idx := f << 1 // f * 2
		dst[idx] = m.tmp[f]
		dst[idx+1] = m.tmp[f]
	}

	return n * 2, err
}
