// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/audfixture/audio"
	"github.com/ik5/audfixture/utils"
)

// Layout of the canonical stereo 16-bit PCM file.
const (
	HeaderSize    = 44
	Channels      = 2
	BitsPerSample = 16
	BlockAlign    = Channels * BitsPerSample / 8 // 4

	formatPCM = 1
	// RIFF size field counts everything after itself: 36 header bytes + data.
	maxDataSize = math.MaxUint32 - (HeaderSize - 8)
)

// FileSize returns the exact byte length of a stereo 16-bit file holding frames frames.
func FileSize(frames int) int64 {
	return HeaderSize + int64(frames)*BlockAlign
}

// HeaderStereo16 builds the 44-byte RIFF/WAVE header for frames stereo
// 16-bit frames at sampleRate.
func HeaderStereo16(sampleRate, frames int) ([HeaderSize]byte, error) {
	var header [HeaderSize]byte

	if sampleRate <= 0 || int64(sampleRate)*BlockAlign > math.MaxUint32 {
		return header, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	if frames < 0 || int64(frames)*BlockAlign > maxDataSize {
		return header, fmt.Errorf("%w: %d frames", ErrDataTooLarge, frames)
	}

	dataSize := uint32(frames) * BlockAlign
	byteRate := uint32(sampleRate) * BlockAlign

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], Channels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], BlockAlign)
	binary.LittleEndian.PutUint16(header[34:36], BitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	return header, nil
}

// WriteStereo16 encodes src as a stereo 16-bit PCM WAV stream and returns the
// number of bytes written.
//
// A mono src is duplicated into both channels. Each value is quantized with
// utils.QuantizeInt16 using amplitude. The header is derived from src.Frames()
// before any payload is written; if src then yields a different number of
// frames, ErrFrameCountMismatch is returned.
func WriteStereo16(w io.Writer, src audio.FiniteSource, amplitude float64) (int64, error) {
	frames := src.Frames()

	var stream audio.Source = src
	switch src.Channels() {
	case 1:
		up, err := audio.NewStereoUpmixer(src)
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}
		stream = up
	case 2:
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedChannels, src.Channels())
	}

	header, err := HeaderStereo16(src.SampleRate(), frames)
	if err != nil {
		return 0, err
	}

	written, err := w.Write(header[:])
	total := int64(written)
	if err != nil {
		return total, fmt.Errorf("%w", err)
	}

	// Write 8192 frames at a time
	const chunkFrames = 8192
	samples := make([]float64, chunkFrames*Channels)
	buf := make([]byte, chunkFrames*BlockAlign)

	remaining := frames
	for {
		n, readErr := stream.ReadSamples(samples)
		got := n / Channels
		if got > remaining {
			return total, fmt.Errorf("%w: more than %d frames", ErrFrameCountMismatch, frames)
		}

		if got > 0 {
			out := buf[:got*BlockAlign]
			for i := range got * Channels {
				binary.LittleEndian.PutUint16(out[i*2:i*2+2], uint16(utils.QuantizeInt16(samples[i], amplitude)))
			}

			written, err = w.Write(out)
			total += int64(written)
			if err != nil {
				return total, fmt.Errorf("%w", err)
			}
			remaining -= got
		}

		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return total, fmt.Errorf("%w", readErr)
		}
		if n == 0 {
			// a source that makes no progress without EOF would spin forever
			return total, fmt.Errorf("%w: source stalled after %d frames", ErrFrameCountMismatch, frames-remaining)
		}
	}

	if remaining != 0 {
		return total, fmt.Errorf("%w: got %d of %d frames", ErrFrameCountMismatch, frames-remaining, frames)
	}

	return total, nil
}
