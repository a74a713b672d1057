package request

import (
	"context"
	"math"
	"regexp"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter is the blocking-wait contract shared by *rate.Limiter and
// *SlidingWindow.
type Limiter interface {
	Wait(ctx context.Context) error
}

// SlidingWindow admits at most maxCalls calls in any rolling window of the
// given duration. Wait blocks until the oldest call in the window expires;
// it never rejects. Unlike a token bucket, a full burst of maxCalls holds
// the next call back for the entire window measured from the first call.
type SlidingWindow struct {
	mu       sync.Mutex
	window   time.Duration
	maxCalls int
	starts   []time.Time
}

func NewSlidingWindow(maxCalls int, window time.Duration) *SlidingWindow {
	if maxCalls <= 0 {
		maxCalls = 1
	}
	return &SlidingWindow{
		window:   window,
		maxCalls: maxCalls,
		starts:   make([]time.Time, 0, maxCalls),
	}
}

func (sw *SlidingWindow) Wait(ctx context.Context) error {
	for {
		sw.mu.Lock()
		now := time.Now()

		// Drop call starts that have aged out of the window.
		kept := sw.starts[:0]
		for _, t := range sw.starts {
			if now.Sub(t) < sw.window {
				kept = append(kept, t)
			}
		}
		sw.starts = kept

		if len(sw.starts) < sw.maxCalls {
			sw.starts = append(sw.starts, now)
			sw.mu.Unlock()
			return nil
		}

		wait := sw.window - now.Sub(sw.starts[0])
		sw.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// ParseRateLimit turns a "200/minute" or "10/second" style string into a
// token-bucket limiter. Returns nil for unparseable input.
func ParseRateLimit(rateStr string) *rate.Limiter {
	if rateStr == "" {
		return nil
	}
	re := regexp.MustCompile(`(\d+)/(minute|second)`)
	matches := re.FindStringSubmatch(rateStr)
	if len(matches) != 3 {
		return nil
	}

	count, err := strconv.Atoi(matches[1])
	if err != nil {
		return nil
	}

	unit := matches[2]
	switch unit {
	case "minute":
		reqsPerSecond := float64(count) / 60.0
		burstSize := int(math.Max(5, float64(count)*0.25))
		return rate.NewLimiter(rate.Limit(reqsPerSecond), burstSize)
	case "second":
		return rate.NewLimiter(rate.Limit(float64(count)), 5)
	default:
		return nil
	}
}
