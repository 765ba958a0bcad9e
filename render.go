// SPDX-License-Identifier: EPL-2.0

package audfixture

import (
	"fmt"
	"io"

	"github.com/ik5/audfixture/audio"
	"github.com/ik5/audfixture/fixture"
	"github.com/ik5/audfixture/utils"
)

// RenderStereo16 is a convenience function that synthesizes spec entirely in
// memory and returns interleaved stereo 16-bit samples.
//
// The samples are exactly the payload Generate would write to disk, so
// len(result) == 2 × spec.TotalFrames(). spec.OutputPath is validated but not used.
//
// Example:
//
//	spec := fixture.DefaultSpec("unused.wav")
//	pcm, rate, err := audfixture.RenderStereo16(spec)
//	// pcm[2*i] == pcm[2*i+1] for every frame i
func RenderStereo16(spec fixture.Spec) ([]int16, int, error) {
	tone, err := fixture.Synthesize(spec)
	if err != nil {
		return nil, 0, err
	}

	stereo, err := audio.NewStereoUpmixer(tone)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	pcm16 := make([]int16, 0, tone.Frames()*2)
	buf := make([]float64, 4096)

	for {
		n, err := stereo.ReadSamples(buf)
		for i := range n {
			pcm16 = append(pcm16, utils.QuantizeInt16(buf[i], spec.Amplitude))
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, spec.SampleRate, fmt.Errorf("%w", err)
		}
	}

	return pcm16, spec.SampleRate, nil
}
