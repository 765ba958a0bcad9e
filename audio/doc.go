// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample-stream primitives used to build fixtures.
//
// This package contains:
//   - Source, FiniteSource and Rewinder interfaces for sample streams
//   - ToneSource, a deterministic sine generator
//   - StereoUpmixer, which duplicates a mono stream into two channels
//
// # Source Interface
//
// A Source yields interleaved float64 samples:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float64) (int, error)
//	    Close() error
//	}
//
// A FiniteSource additionally reports its total frame count up front, which
// lets encoders write complete container headers before the payload.
//
// # Tone Generation
//
// ToneSource computes sample i as sin(2π × f × i / rate):
//
//	tone, err := audio.NewToneSource(48000, 440, 48000) // 1 second of A4
//	buf := make([]float64, 4096)
//	n, err := tone.ReadSamples(buf)
//
// Every value is a pure function of its index. Rewind restarts the sequence
// and replays identical values.
//
// # Channel Upmixing
//
// StereoUpmixer turns a mono source into a stereo one with both channels equal:
//
//	stereo, err := audio.NewStereoUpmixer(tone)
//	buf := make([]float64, 4096) // must be a multiple of 2
//	n, err := stereo.ReadSamples(buf)
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available. The last chunk
// may arrive together with io.EOF, so always consume n before checking err:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // Process n samples from buf
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	}
package audio
