package gcal

import (
	"container/heap"
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/googleapi"
)

const (
	PriorityLow    = 0
	PriorityNormal = 1
	PriorityHigh   = 2
)

var ErrLimiterStopped = errors.New("rate limiter stopped")

type RateLimiterConfig struct {
	// minimum time between two request starts
	MinInterval time.Duration
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
	// retries for transient failures; rate limit hits never consume one
	MaxRetries int
}

func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		MinInterval: 100 * time.Millisecond,
		BaseBackoff: time.Second,
		MaxBackoff:  32 * time.Second,
		MaxRetries:  3,
	}
}

type request struct {
	ctx      context.Context
	priority int
	seq      uint64
	fn       func(ctx context.Context) error
	result   chan error
}

// requestQueue orders by priority (higher first), then by arrival.
type requestQueue []*request

func (q requestQueue) Len() int { return len(q) }
func (q requestQueue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority > q[j].priority
	}
	return q[i].seq < q[j].seq
}
func (q requestQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *requestQueue) Push(x any)   { *q = append(*q, x.(*request)) }
func (q *requestQueue) Pop() any {
	old := *q
	n := len(old)
	r := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return r
}

// RateLimiter runs calendar API calls one by one from a priority queue, keeping them
// MinInterval apart and backing off on rate limit and transient errors.
type RateLimiter struct {
	cfg RateLimiterConfig

	mu       sync.Mutex
	queue    requestQueue
	seq      uint64
	running  bool
	stopped  bool
	wake     chan struct{}
	stopChan chan struct{}
	done     chan struct{}

	// owned by the worker goroutine
	lastStart time.Time
	// shared by all requests, so a rate limited quota keeps slowing the next ones
	rateBackoff *backoff.ExponentialBackOff

	nowFunc   func() time.Time
	sleepFunc func(ctx context.Context, d time.Duration) error
}

func NewRateLimiter(cfg RateLimiterConfig) *RateLimiter {
	return &RateLimiter{
		cfg:         cfg,
		wake:        make(chan struct{}, 1),
		stopChan:    make(chan struct{}),
		done:        make(chan struct{}),
		rateBackoff: newBackoff(cfg),
		nowFunc:     time.Now,
		sleepFunc:   sleepCtx,
	}
}

// newBackoff doubles from BaseBackoff up to MaxBackoff, without jitter and without giving up.
func newBackoff(cfg RateLimiterConfig) *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = cfg.BaseBackoff
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = cfg.MaxBackoff
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *RateLimiter) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running || l.stopped {
		return
	}
	l.running = true
	go l.loop()
}

// Stop ends the worker and fails all queued requests with ErrLimiterStopped.
func (l *RateLimiter) Stop() {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.stopped = true
	wasRunning := l.running
	close(l.stopChan)
	pending := l.queue
	l.queue = nil
	l.mu.Unlock()

	for _, r := range pending {
		r.result <- ErrLimiterStopped
	}
	if wasRunning {
		<-l.done
	}
}

// Do queues fn and blocks until it ran (with retries) or ctx is done.
func (l *RateLimiter) Do(ctx context.Context, priority int, fn func(ctx context.Context) error) error {
	r := &request{
		ctx:      ctx,
		priority: priority,
		fn:       fn,
		result:   make(chan error, 1),
	}

	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return ErrLimiterStopped
	}
	l.seq++
	r.seq = l.seq
	heap.Push(&l.queue, r)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}

	select {
	case err := <-r.result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *RateLimiter) QueueLen() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

func (l *RateLimiter) next() *request {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queue) == 0 {
		return nil
	}
	return heap.Pop(&l.queue).(*request)
}

func (l *RateLimiter) loop() {
	defer close(l.done)

	// stopCtx aborts sleeps when the limiter stops
	stopCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-l.stopChan:
			cancel()
		case <-stopCtx.Done():
		}
	}()

	for {
		r := l.next()
		if r == nil {
			select {
			case <-l.wake:
				continue
			case <-l.stopChan:
				return
			}
		}
		r.result <- l.execute(stopCtx, r)
	}
}

func (l *RateLimiter) execute(stopCtx context.Context, r *request) error {
	var transientBackoff *backoff.ExponentialBackOff
	retries := 0
	for {
		if err := r.ctx.Err(); err != nil {
			return err
		}

		if wait := l.lastStart.Add(l.cfg.MinInterval).Sub(l.nowFunc()); wait > 0 {
			if err := l.sleep(stopCtx, r.ctx, wait); err != nil {
				return err
			}
		}
		l.lastStart = l.nowFunc()

		err := r.fn(r.ctx)
		switch {
		case err == nil:
			l.rateBackoff.Reset()
			return nil
		case isRateLimitError(err):
			wait := l.rateBackoff.NextBackOff()
			log.Debugf("gcal limiter: rate limited, backing off %s", wait)
			if err := l.sleep(stopCtx, r.ctx, wait); err != nil {
				return err
			}
		case isTransientError(err) && retries < l.cfg.MaxRetries:
			if transientBackoff == nil {
				transientBackoff = newBackoff(l.cfg)
			}
			retries++
			wait := transientBackoff.NextBackOff()
			log.Debugf("gcal limiter: transient error [%s], retry %d in %s", err, retries, wait)
			if err := l.sleep(stopCtx, r.ctx, wait); err != nil {
				return err
			}
		default:
			return err
		}
	}
}

// sleep waits d unless the limiter stops or the caller gives up first.
func (l *RateLimiter) sleep(stopCtx, reqCtx context.Context, d time.Duration) error {
	ctx, cancel := context.WithCancel(reqCtx)
	defer cancel()
	stop := context.AfterFunc(stopCtx, cancel)
	defer stop()

	if err := l.sleepFunc(ctx, d); err != nil {
		if stopCtx.Err() != nil {
			return ErrLimiterStopped
		}
		return reqCtx.Err()
	}
	return nil
}

func isRateLimitError(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.Code == http.StatusTooManyRequests {
		return true
	}
	if apiErr.Code == http.StatusForbidden {
		for _, item := range apiErr.Errors {
			if item.Reason == "rateLimitExceeded" || item.Reason == "userRateLimitExceeded" {
				return true
			}
		}
	}
	return false
}

func isTransientError(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code >= http.StatusInternalServerError
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
