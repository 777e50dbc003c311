package watcher

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Debouncer_Trigger(t *testing.T) {
	var (
		mu            sync.Mutex
		called        int
		receivedPaths []string
	)

	d := NewDebouncer(50*time.Millisecond, func(paths []string) {
		mu.Lock()
		defer mu.Unlock()

		called++
		receivedPaths = paths
	})
	defer d.Stop()

	d.Trigger("fanmenu.yaml")
	d.Trigger(".env")
	d.Trigger("sounds/fold.wav")

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	assert.Equal(t, 1, called)
	assert.Len(t, receivedPaths, 3)
	mu.Unlock()
}

func Test_Debouncer_CoalescesRapidEvents(t *testing.T) {
	var (
		mu        sync.Mutex
		callCount int
	)

	d := NewDebouncer(50*time.Millisecond, func(paths []string) {
		mu.Lock()
		defer mu.Unlock()

		callCount++
	})
	defer d.Stop()

	for i := 0; i < 10; i++ {
		d.Trigger("fanmenu.yaml")
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	assert.Equal(t, 1, callCount)
	mu.Unlock()
}

func Test_Debouncer_Stop(t *testing.T) {
	var called bool

	d := NewDebouncer(50*time.Millisecond, func(paths []string) {
		called = true
	})

	d.Trigger("fanmenu.yaml")
	d.Stop()

	time.Sleep(100 * time.Millisecond)

	assert.False(t, called)
}

func Test_Debouncer_StopPreventsNewTriggers(t *testing.T) {
	var called bool

	d := NewDebouncer(50*time.Millisecond, func(paths []string) {
		called = true
	})

	d.Stop()
	d.Trigger("fanmenu.yaml")

	time.Sleep(100 * time.Millisecond)

	assert.False(t, called)
}

func Test_Debouncer_MultipleCallbacks(t *testing.T) {
	var (
		mu        sync.Mutex
		callCount int
	)

	d := NewDebouncer(30*time.Millisecond, func(paths []string) {
		mu.Lock()
		defer mu.Unlock()

		callCount++
	})
	defer d.Stop()

	d.Trigger("fanmenu.yaml")
	time.Sleep(50 * time.Millisecond)

	d.Trigger(".env")
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	assert.Equal(t, 2, callCount)
	mu.Unlock()
}

func Test_Debouncer_UniqueFiles(t *testing.T) {
	var receivedPaths []string

	d := NewDebouncer(50*time.Millisecond, func(paths []string) {
		receivedPaths = paths
	})
	defer d.Stop()

	d.Trigger("fanmenu.yaml")
	d.Trigger("fanmenu.yaml")
	d.Trigger("fanmenu.yaml")

	time.Sleep(100 * time.Millisecond)

	assert.Len(t, receivedPaths, 1)
	assert.Equal(t, "fanmenu.yaml", receivedPaths[0])
}

func Test_Debouncer_SortedPaths(t *testing.T) {
	var (
		mu            sync.Mutex
		receivedPaths []string
	)

	d := NewDebouncer(20*time.Millisecond, func(paths []string) {
		mu.Lock()
		defer mu.Unlock()

		receivedPaths = paths
	})
	defer d.Stop()

	d.Trigger("select.wav")
	d.Trigger("expand.wav")
	d.Trigger("fold.wav")

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()

		return len(receivedPaths) == 3
	}, time.Second, 10*time.Millisecond)

	mu.Lock()
	assert.Equal(t, []string{"expand.wav", "fold.wav", "select.wav"}, receivedPaths)
	mu.Unlock()
}
