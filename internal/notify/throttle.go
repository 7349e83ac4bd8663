package notify

import (
	"errors"
	"time"

	"golang.org/x/time/rate"
)

var ErrThrottled = errors.New("notify: throttled")

// ThrottledNotifier forwards to next at most once per interval after an
// initial burst. Excess notices are dropped with ErrThrottled.
type ThrottledNotifier struct {
	next    Notifier
	limiter *rate.Limiter
}

func Throttle(next Notifier, every time.Duration, burst int) *ThrottledNotifier {
	if burst < 1 {
		burst = 1
	}
	return &ThrottledNotifier{next: next, limiter: rate.NewLimiter(rate.Every(every), burst)}
}

func (t *ThrottledNotifier) Notify(n Notice) error {
	if !t.limiter.Allow() {
		return ErrThrottled
	}
	return t.next.Notify(n)
}
