// SPDX-License-Identifier: EPL-2.0

// Package wav provides canonical stereo 16-bit PCM WAV encoding and
// PCM 16-bit WAV decoding.
//
// # Writing WAV Files
//
// WriteStereo16 streams any audio.FiniteSource into a RIFF/WAVE file. Mono
// sources are duplicated into both channels:
//
//	tone, _ := audio.NewToneSource(48000, 440, 48000)
//	file, _ := os.Create("tone.wav")
//	n, err := wav.WriteStereo16(file, tone, 0.3)
//
// The header is computed from the source's frame count before the payload
// is written, so nothing is patched afterwards and the declared sizes always
// match the data. A source that yields more or fewer frames than it declared
// makes WriteStereo16 fail with ErrFrameCountMismatch.
//
// Samples are quantized as round(clamp(v, -1, 1) × amplitude × 32767).
//
// # Decoding WAV Files
//
// The Decoder reads files through github.com/go-audio/wav:
//
//	file, _ := os.Open("tone.wav")
//	src, err := wav.Decoder{}.DecodeFile(file)
//	buf := make([]float64, 4096)
//	n, err := src.ReadSamples(buf)
//
// Samples come back as float64 values of int16/32768.
//
// # File Format
//
// Files written by this package consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): PCM, 2 channels, sample rate, byte rate, block align 4, 16 bits
//   - data chunk: 8 byte header followed by frames × 4 bytes of little-endian samples
//
// # Error Handling
//
//   - ErrNotWavFile: The input is not a valid RIFF/WAVE stream
//   - ErrOnlyPCM16bitSupported: The file is not 16-bit integer PCM
//   - ErrFrameCountMismatch: A source broke its declared length
//   - ErrDataTooLarge: The payload does not fit the 32-bit RIFF size fields
package wav
