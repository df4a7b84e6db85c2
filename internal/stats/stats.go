// Package stats collects in-process operational counters for the bot:
// updates seen, replies per forward kind, and command invocations. Counters
// live in memory only and are never persisted; they exist for the /stats
// command and the periodic stats report.
package stats

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/codewithnafira/forwardinfobot/internal/forward"
)

// Recorder holds monotonic counters. All methods are safe for concurrent
// use; counting uses atomics only, no locks on the hot path.
type Recorder struct {
	start   time.Time
	updates atomic.Int64

	// Indexed by forward.Kind (none, user, chat, hidden).
	replies [4]atomic.Int64

	mu       sync.RWMutex
	commands map[string]*atomic.Int64
}

// NewRecorder creates a Recorder whose uptime starts at now.
func NewRecorder(now time.Time) *Recorder {
	return &Recorder{
		start:    now,
		commands: make(map[string]*atomic.Int64),
	}
}

// CountUpdate records one inbound update.
func (r *Recorder) CountUpdate() {
	r.updates.Add(1)
}

// CountReply records one classification reply of the given kind.
func (r *Recorder) CountReply(k forward.Kind) {
	if k < 0 || int(k) >= len(r.replies) {
		return
	}
	r.replies[k].Add(1)
}

// CountCommand records one invocation of the named command.
func (r *Recorder) CountCommand(name string) {
	r.mu.RLock()
	c, ok := r.commands[name]
	r.mu.RUnlock()
	if !ok {
		r.mu.Lock()
		c, ok = r.commands[name]
		if !ok {
			c = &atomic.Int64{}
			r.commands[name] = c
		}
		r.mu.Unlock()
	}
	c.Add(1)
}

// Middleware returns a bot middleware that counts every inbound update
// before passing it on.
func (r *Recorder) Middleware() bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			r.CountUpdate()
			next(ctx, b, update)
		}
	}
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Start    time.Time
	Uptime   time.Duration
	Updates  int64
	Replies  map[forward.Kind]int64
	Commands map[string]int64
}

// Snapshot returns a consistent-enough copy of the counters as of now.
// Counters may advance between individual reads; each value on its own is
// exact and monotonic.
func (r *Recorder) Snapshot(now time.Time) Snapshot {
	s := Snapshot{
		Start:    r.start,
		Uptime:   now.Sub(r.start),
		Updates:  r.updates.Load(),
		Replies:  make(map[forward.Kind]int64, len(r.replies)),
		Commands: make(map[string]int64),
	}
	for i := range r.replies {
		if n := r.replies[i].Load(); n > 0 {
			s.Replies[forward.Kind(i)] = n
		}
	}
	r.mu.RLock()
	for name, c := range r.commands {
		s.Commands[name] = c.Load()
	}
	r.mu.RUnlock()
	return s
}
