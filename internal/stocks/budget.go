package stocks

import (
	"time"

	"golang.org/x/time/rate"
)

// minuteBudget allows up to limit requests per minute, refilled evenly over the minute.
type minuteBudget struct {
	limiter *rate.Limiter
	nowFunc func() time.Time
}

func newMinuteBudget(limit int) *minuteBudget {
	every := rate.Limit(0)
	if limit > 0 {
		every = rate.Every(time.Minute / time.Duration(limit))
	}
	return &minuteBudget{
		limiter: rate.NewLimiter(every, max(limit, 0)),
		nowFunc: time.Now,
	}
}

// Take consumes one request from the budget, false when none is left.
func (b *minuteBudget) Take() bool {
	return b.limiter.AllowN(b.nowFunc(), 1)
}
