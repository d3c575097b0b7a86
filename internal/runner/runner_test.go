package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

func TestRun_FrameLimit(t *testing.T) {
	calls := 0
	frames, err := Run(context.Background(), time.Millisecond, 5, func() error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 5, frames)
	assert.Equal(t, 5, calls)
}

func TestRun_FrameError(t *testing.T) {
	errFrame := errors.New("frame failed")
	calls := 0
	frames, err := Run(context.Background(), time.Millisecond, 0, func() error {
		calls++
		if calls == 3 {
			return errFrame
		}
		return nil
	})

	assert.True(t, errors.Is(err, errFrame))
	assert.Equal(t, 2, frames)
}

func TestRun_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	frames, err := Run(ctx, time.Millisecond, 0, func() error {
		cancel()
		return nil
	})

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, frames)
}
