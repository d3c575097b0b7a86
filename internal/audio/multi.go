package audio

// Speaker receives the beeper state once per timer tick.
type Speaker interface {
	Beep(active bool)
}

// Multi forwards every beep to all speakers.
type Multi []Speaker

// Beep implements Speaker.
func (m Multi) Beep(active bool) {
	for _, s := range m {
		s.Beep(active)
	}
}
