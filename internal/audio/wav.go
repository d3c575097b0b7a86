package audio

import (
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	wavBitDepth  = 16
	wavPCMFormat = 1
)

// WavRecorder records the beeper as 16 bit mono PCM. Every Beep call
// appends one 60 Hz frame of samples.
type WavRecorder struct {
	encoder   *wav.Encoder
	tone      *tone
	buffer    *goaudio.IntBuffer
	amplitude float64
	err       error // first write error
}

// NewWavRecorder writes a WAV stream to w. The header is completed by Close,
// which does not close w.
func NewWavRecorder(w io.WriteSeeker, sampleRate int) *WavRecorder {
	return &WavRecorder{
		encoder: wav.NewEncoder(w, sampleRate, wavBitDepth, 1, wavPCMFormat),
		tone:    newTone(sampleRate),
		buffer: &goaudio.IntBuffer{
			Format: &goaudio.Format{
				NumChannels: 1,
				SampleRate:  sampleRate,
			},
			Data:           make([]int, samplesPerFrame(sampleRate)),
			SourceBitDepth: wavBitDepth,
		},
		amplitude: math.MaxInt16 * volume,
	}
}

// Beep records one frame of tone or silence. After a write error all
// further frames are dropped and Close reports the error.
func (r *WavRecorder) Beep(active bool) {
	if r.err != nil {
		return
	}
	for i := range r.buffer.Data {
		r.buffer.Data[i] = int(float64(r.tone.next(active)) * r.amplitude)
	}
	if err := r.encoder.Write(r.buffer); err != nil {
		r.err = fmt.Errorf("writing wav samples: %w", err)
	}
}

// Close flushes the samples and finalizes the WAV header.
func (r *WavRecorder) Close() error {
	if r.err != nil {
		return r.err
	}
	if err := r.encoder.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}
	return nil
}
