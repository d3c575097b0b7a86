// Package audio turns the beeper state of the virtual machine into sound,
// either played on the host audio device or recorded to a WAV file.
package audio

// Beeper tone parameters.
const (
	DefaultSampleRate = 44100
	ToneFrequency     = 440
	framesPerSecond   = 60
)

// tone generates a square wave. Samples are in the range -1 to 1.
type tone struct {
	step  float64 // phase increment per sample
	phase float64
}

func newTone(sampleRate int) *tone {
	return &tone{
		step: float64(ToneFrequency) / float64(sampleRate),
	}
}

// next returns the next sample, silence advances the phase as well so that
// the wave continues seamlessly when the beeper toggles.
func (t *tone) next(active bool) float32 {
	t.phase += t.step
	if t.phase >= 1 {
		t.phase--
	}

	switch {
	case !active:
		return 0
	case t.phase < 0.5:
		return 1
	default:
		return -1
	}
}

// samplesPerFrame returns the number of samples covering one 60 Hz frame.
func samplesPerFrame(sampleRate int) int {
	return sampleRate / framesPerSecond
}
