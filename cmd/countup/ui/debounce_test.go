package ui

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_SingleCall(t *testing.T) {
	var called int32
	debouncer := NewDebouncer(50 * time.Millisecond)

	debouncer.Debounce(func() {
		atomic.AddInt32(&called, 1)
	})

	time.Sleep(100 * time.Millisecond)

	if atomic.LoadInt32(&called) != 1 {
		t.Errorf("Expected 1 call, got %d", called)
	}
}

func TestDebouncer_RapidCalls(t *testing.T) {
	var called int32
	var lastValue int32
	debouncer := NewDebouncer(50 * time.Millisecond)

	for i := 1; i <= 10; i++ {
		value := int32(i)
		debouncer.Debounce(func() {
			atomic.StoreInt32(&lastValue, value)
			atomic.AddInt32(&called, 1)
		})
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)

	if atomic.LoadInt32(&called) != 1 {
		t.Errorf("Expected 1 call for rapid succession, got %d", called)
	}
	if atomic.LoadInt32(&lastValue) != 10 {
		t.Errorf("Expected last value 10, got %d", lastValue)
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	var called int32
	debouncer := NewDebouncer(50 * time.Millisecond)

	debouncer.Debounce(func() {
		atomic.AddInt32(&called, 1)
	})

	time.Sleep(10 * time.Millisecond)
	debouncer.Cancel()

	time.Sleep(100 * time.Millisecond)

	if atomic.LoadInt32(&called) != 0 {
		t.Errorf("Expected 0 calls after cancel, got %d", called)
	}
}

func TestThrottle(t *testing.T) {
	th := NewThrottle(100 * time.Millisecond)
	base := time.Unix(1000, 0)

	if !th.Allow(base) {
		t.Fatal("first event must pass")
	}
	if th.Allow(base.Add(50 * time.Millisecond)) {
		t.Error("event inside the window must be dropped")
	}
	if !th.Allow(base.Add(100 * time.Millisecond)) {
		t.Error("event at the window edge must pass")
	}
	if th.Allow(base.Add(150 * time.Millisecond)) {
		t.Error("window restarts from the last allowed event")
	}
}

func BenchmarkDebouncer_RapidCalls(b *testing.B) {
	debouncer := NewDebouncer(10 * time.Millisecond)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		debouncer.Debounce(func() {})
	}

	debouncer.Cancel()
}
