// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float64 samples, nominally in [-1,1].
	// Returns number of float64 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	// The final chunk may be returned together with io.EOF.
	ReadSamples(dst []float64) (n int, err error)

	// Close releases any resources.
	Close() error
}

// FiniteSource is a Source whose length is known before the first read.
type FiniteSource interface {
	Source

	// Frames is the total number of frames the source yields from its start.
	Frames() int
}

// Rewinder is implemented by sources that can restart from the first frame.
type Rewinder interface {
	Rewind()
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.ReadSeeker) (Source, error)
}
