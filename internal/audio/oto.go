package audio

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ebitengine/oto/v3"
)

const (
	bytesPerSample = 4 // float32
	volume         = 0.2
	bufferDuration = 50 * time.Millisecond
)

// OtoSpeaker plays the beeper tone on the host audio device.
type OtoSpeaker struct {
	ctx    *oto.Context
	player *oto.Player
	stream *stream
}

// NewOtoSpeaker opens the host audio device and starts streaming silence.
func NewOtoSpeaker(sampleRate int) (*OtoSpeaker, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   bufferDuration,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	s := &OtoSpeaker{
		ctx:    ctx,
		stream: newStream(sampleRate),
	}
	s.player = ctx.NewPlayer(s.stream)
	s.player.Play()
	return s, nil
}

// Beep switches the tone on or off.
func (s *OtoSpeaker) Beep(active bool) {
	s.stream.active.Store(active)
}

// Close stops playback.
func (s *OtoSpeaker) Close() error {
	if err := s.player.Close(); err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	return nil
}

// stream is the io.Reader that the audio device pulls samples from.
// Read runs on the audio goroutine, the beeper state is shared atomically.
type stream struct {
	active atomic.Bool

	mu   sync.Mutex
	tone *tone
}

func newStream(sampleRate int) *stream {
	return &stream{
		tone: newTone(sampleRate),
	}
}

// Read fills p with float32 little endian samples. It never fails and
// never returns io.EOF.
func (s *stream) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := s.active.Load()
	n := len(p) / bytesPerSample * bytesPerSample
	for i := 0; i < n; i += bytesPerSample {
		sample := s.tone.next(active) * volume
		binary.LittleEndian.PutUint32(p[i:], math.Float32bits(sample))
	}
	return n, nil
}
