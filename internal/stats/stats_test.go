package stats

import (
	"sync"
	"testing"
	"time"

	"github.com/codewithnafira/forwardinfobot/internal/forward"
)

func TestRecorderCounts(t *testing.T) {
	start := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	r := NewRecorder(start)

	r.CountUpdate()
	r.CountUpdate()
	r.CountReply(forward.KindUser)
	r.CountReply(forward.KindNone)
	r.CountReply(forward.KindUser)
	r.CountCommand("myid")

	snap := r.Snapshot(start.Add(time.Hour))

	if snap.Updates != 2 {
		t.Errorf("updates = %d, want 2", snap.Updates)
	}
	if snap.Replies[forward.KindUser] != 2 {
		t.Errorf("user replies = %d, want 2", snap.Replies[forward.KindUser])
	}
	if snap.Replies[forward.KindNone] != 1 {
		t.Errorf("none replies = %d, want 1", snap.Replies[forward.KindNone])
	}
	if _, ok := snap.Replies[forward.KindChat]; ok {
		t.Error("expected zero-count kinds to be omitted from snapshot")
	}
	if snap.Commands["myid"] != 1 {
		t.Errorf("myid count = %d, want 1", snap.Commands["myid"])
	}
	if snap.Uptime != time.Hour {
		t.Errorf("uptime = %v, want 1h", snap.Uptime)
	}
}

func TestRecorderOutOfRangeKind(t *testing.T) {
	r := NewRecorder(time.Now())

	// Must not panic or misattribute counts.
	r.CountReply(forward.Kind(99))
	r.CountReply(forward.Kind(-1))

	if snap := r.Snapshot(time.Now()); len(snap.Replies) != 0 {
		t.Errorf("replies = %v, want empty", snap.Replies)
	}
}

func TestRecorderConcurrent(t *testing.T) {
	r := NewRecorder(time.Now())

	const workers = 8
	const perWorker = 1000

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				r.CountUpdate()
				r.CountReply(forward.KindHidden)
				r.CountCommand("help")
			}
		}()
	}
	wg.Wait()

	snap := r.Snapshot(time.Now())
	want := int64(workers * perWorker)
	if snap.Updates != want {
		t.Errorf("updates = %d, want %d", snap.Updates, want)
	}
	if snap.Replies[forward.KindHidden] != want {
		t.Errorf("hidden replies = %d, want %d", snap.Replies[forward.KindHidden], want)
	}
	if snap.Commands["help"] != want {
		t.Errorf("help count = %d, want %d", snap.Commands["help"], want)
	}
}
