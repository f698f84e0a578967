package worker

import (
	"bytes"
	"fmt"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/gnuchess-board-go/internal/config"
	"github.com/lgbarn/gnuchess-board-go/internal/refengine"
	"github.com/lgbarn/gnuchess-board-go/internal/session"
	"github.com/lgbarn/gnuchess-board-go/internal/testutil"
)

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) Result {
		atomic.AddInt32(counter, 1)
		return Result{Name: item.Name, Index: item.Index}
	}
}

func newRefEngine() session.Engine {
	return refengine.New()
}

func quietConfig() *config.Config {
	return config.NewConfigBuilder().WithVerbosity(config.Silent).WithLog(io.Discard).Build()
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4))
	pool.Start()

	const numItems = 10
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(WorkItem{Name: fmt.Sprintf("game%d", i), Index: i})
		}
		pool.Close()
	}()

	count := 0
	for range pool.Results() {
		count++
	}
	if count != numItems {
		t.Errorf("results = %d; want %d", count, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestPoolEarlyStop tests that stopped pools skip queued items.
func TestPoolEarlyStop(t *testing.T) {
	var processed int32
	slow := func(item WorkItem) Result {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processed, 1)
		return Result{Index: item.Index}
	}

	pool := NewPool(slow, WithWorkers(2), WithBufferSize(100))
	pool.Start()
	for i := 0; i < 50; i++ {
		pool.Submit(WorkItem{Index: i})
	}
	pool.Stop()
	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	go pool.Close()
	for range pool.Results() {
	}
	if got := atomic.LoadInt32(&processed); got >= 50 {
		t.Errorf("processed = %d; stop should skip queued items", got)
	}
}

// TestNewPoolOptions tests the functional options.
func TestNewPoolOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"buffer", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"invalid buffer ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
		{"both", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(countingProcessFunc(new(int32)), tt.opts...)
			if pool.NumWorkers() != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", pool.NumWorkers(), tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}

	if got := NewPool(countingProcessFunc(new(int32)), WithWorkers(0)).NumWorkers(); got < 1 {
		t.Errorf("WithWorkers(0) gave %d workers", got)
	}
}

// TestRunAllKeepsOrder tests that results come back in submission order.
func TestRunAllKeepsOrder(t *testing.T) {
	delayed := func(item WorkItem) Result {
		if item.Index%2 == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		return Result{Name: item.Name, Index: item.Index}
	}
	items := make([]WorkItem, 12)
	for i := range items {
		items[i] = WorkItem{Name: fmt.Sprintf("game%d", i)}
	}

	results := NewPool(delayed, WithWorkers(4)).RunAll(items)
	if len(results) != len(items) {
		t.Fatalf("results = %d; want %d", len(results), len(items))
	}
	for i, r := range results {
		if r.Name != items[i].Name {
			t.Errorf("results[%d] = %s; want %s", i, r.Name, items[i].Name)
		}
	}
}

func TestReplay(t *testing.T) {
	items := []WorkItem{
		{Name: "ruy lopez", Moves: []string{"e4", "e5", "Nf3", "Nc6", "Bb5"}},
		{Name: "scholar", Moves: []string{"e4", "e5", "Bc4", "Nc6", "Qh5", "Nf6", "Qxf7#"}},
		{Name: "broken", Moves: []string{"e4", "e4"}},
		{Name: "empty"},
	}
	results := NewPool(Replay(quietConfig(), newRefEngine), WithWorkers(3)).RunAll(items)

	ruy := results[0]
	testutil.AssertNoError(t, ruy.Err)
	testutil.AssertEqual(t, ruy.Session.Moves(), items[0].Moves)
	testutil.AssertEqual(t, len(ruy.Reports), 6)
	testutil.AssertSquare(t, ruy.Last().Source, "b5", "bishops are not traced")

	scholar := results[1]
	testutil.AssertNoError(t, scholar.Err)
	testutil.AssertEqual(t, scholar.Last().Status, session.StatusCheckmate)
	testutil.AssertSquare(t, scholar.Last().Source, "h5")

	broken := results[2]
	testutil.AssertError(t, broken.Err)
	testutil.AssertContains(t, broken.Err.Error(), "move 2")
	testutil.AssertEqual(t, broken.Session.Moves(), []string{"e4"})

	empty := results[3]
	testutil.AssertNoError(t, empty.Err)
	testutil.AssertEqual(t, len(empty.Reports), 1)
}

func TestReplayLogsSummary(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().WithVerbosity(config.Summary).WithLog(buf).Build()
	NewPool(Replay(cfg, newRefEngine)).RunAll([]WorkItem{{Name: "short", Moves: []string{"d4"}}})
	testutil.AssertContains(t, buf.String(), "short: 1 moves replayed")
}
