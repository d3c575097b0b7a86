// Package runner drives a frame function at a fixed rate.
package runner

import (
	"context"
	"time"
)

// FrameRate is the CHIP-8 timer frequency in Hz.
const FrameRate = 60

// FrameDuration is the duration of one frame at FrameRate.
const FrameDuration = time.Second / FrameRate

// Run calls frame once per period until the context is cancelled, frame
// returns an error or maxFrames frames have run. A maxFrames of 0 runs
// without limit. The number of executed frames is returned.
func Run(ctx context.Context, period time.Duration, maxFrames int, frame func() error) (int, error) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	frames := 0
	for maxFrames == 0 || frames < maxFrames {
		if err := ctx.Err(); err != nil {
			return frames, err
		}

		select {
		case <-ctx.Done():
			return frames, ctx.Err()
		case <-ticker.C:
		}

		if err := frame(); err != nil {
			return frames, err
		}
		frames++
	}
	return frames, nil
}
