package pkg

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/qnkhuat/sgfterm/pkg/config"
)

// Clock drives autoplay. Every period it calls onTick unless paused. onTick
// runs on the clock goroutine, so it should hand the work to the UI.
type Clock struct {
	mu       sync.Mutex
	interval time.Duration
	speed    int
	paused   bool

	onTick func()
	reset  chan struct{}
}

func NewClock(interval time.Duration, speed int, onTick func()) *Clock {
	return &Clock{
		interval: interval,
		speed:    config.ClampSpeed(speed),
		paused:   true,
		onTick:   onTick,
		reset:    make(chan struct{}, 1),
	}
}

func (cl *Clock) String() string {
	return fmt.Sprintf("x%d", cl.Speed())
}

// Run ticks until ctx is done.
func (cl *Clock) Run(ctx context.Context) {
	tick := time.NewTicker(cl.Period())
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-cl.reset:
			tick.Reset(cl.Period())
		case <-tick.C:
			if !cl.Paused() {
				cl.onTick()
			}
		}
	}
}

// Period is the interval divided by the speed.
func (cl *Clock) Period() time.Duration {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.interval / time.Duration(cl.speed)
}

func (cl *Clock) Speed() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.speed
}

// SetSpeed clamps speed to [1, config.MaxSpeed] and restarts the period.
func (cl *Clock) SetSpeed(speed int) int {
	cl.mu.Lock()
	cl.speed = config.ClampSpeed(speed)
	speed = cl.speed
	cl.mu.Unlock()

	select {
	case cl.reset <- struct{}{}:
	default:
	}
	return speed
}

func (cl *Clock) Paused() bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.paused
}

func (cl *Clock) Pause() {
	cl.mu.Lock()
	cl.paused = true
	cl.mu.Unlock()
}

func (cl *Clock) Resume() {
	cl.mu.Lock()
	cl.paused = false
	cl.mu.Unlock()
}

// Toggle flips the paused state and reports whether the clock now runs.
func (cl *Clock) Toggle() bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.paused = !cl.paused
	return !cl.paused
}
