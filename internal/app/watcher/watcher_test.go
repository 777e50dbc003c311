package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"fanmenu/internal/config/logger"
)

const testDelay = 30 * time.Millisecond

func newTestWatcher(t *testing.T) Watcher {
	t.Helper()

	w, err := NewWatcherWithDelay(testDelay, logger.NewNopLogger())
	require.NoError(t, err)

	t.Cleanup(w.Close)

	return w
}

func waitForChange(t *testing.T, w Watcher) Change {
	t.Helper()

	select {
	case change, ok := <-w.Changes():
		require.True(t, ok, "changes channel closed")
		return change
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change")
	}

	return Change{}
}

func assertNoChange(t *testing.T, w Watcher) {
	t.Helper()

	select {
	case change := <-w.Changes():
		t.Fatalf("unexpected change: %v", change)
	case <-time.After(5 * testDelay):
	}
}

func Test_NewWatcher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := logger.NewMockLogger(ctrl)
	log.EXPECT().WithComponent("WATCHER").Return(logger.NewNopLogger())

	w, err := NewWatcher(log)
	require.NoError(t, err)
	assert.NotNil(t, w.Changes())

	w.Close()
}

func Test_Watcher_ReportsConfigChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fanmenu.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0644))

	w := newTestWatcher(t)
	require.NoError(t, w.Watch(dir, []string{"fanmenu.yaml", ".env"}, nil))

	require.NoError(t, os.WriteFile(path, []byte("version: 1\nmenu:\n  direction: left\n"), 0644))

	change := waitForChange(t, w)

	absDir, _ := filepath.Abs(dir)
	assert.Equal(t, absDir, change.Root)
	assert.Equal(t, []string{"fanmenu.yaml"}, change.Files)
	assert.True(t, change.Has("fanmenu.yaml"))
	assert.False(t, change.Has(".env"))
}

func Test_Watcher_IgnoresUnmatchedFiles(t *testing.T) {
	dir := t.TempDir()

	w := newTestWatcher(t)
	require.NoError(t, w.Watch(dir, []string{"*.wav"}, nil))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	assertNoChange(t, w)
}

func Test_Watcher_NestedDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "clicks"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "backup"), 0755))

	w := newTestWatcher(t)
	require.NoError(t, w.Watch(dir, []string{"**/*.wav"}, []string{"backup/**"}))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "backup", "old.wav"), []byte("x"), 0644))
	assertNoChange(t, w)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "clicks", "expand.wav"), []byte("x"), 0644))

	change := waitForChange(t, w)
	assert.Equal(t, []string{filepath.Join("clicks", "expand.wav")}, change.Files)
}

func Test_Watcher_Unwatch(t *testing.T) {
	dir := t.TempDir()

	w := newTestWatcher(t)
	require.NoError(t, w.Watch(dir, []string{"*.wav"}, nil))
	require.NoError(t, w.Watch(dir, []string{"*.wav"}, nil))

	w.Unwatch(dir)
	w.Unwatch(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "fold.wav"), []byte("x"), 0644))

	assertNoChange(t, w)
}

func Test_Watcher_InvalidPattern(t *testing.T) {
	w := newTestWatcher(t)

	assert.Error(t, w.Watch(t.TempDir(), []string{"[invalid"}, nil))
}

func Test_Watcher_MissingDir(t *testing.T) {
	w := newTestWatcher(t)

	assert.Error(t, w.Watch(filepath.Join(t.TempDir(), "absent"), []string{"*"}, nil))
}

func Test_Watcher_Close(t *testing.T) {
	w, err := NewWatcherWithDelay(testDelay, logger.NewNopLogger())
	require.NoError(t, err)

	require.NoError(t, w.Watch(t.TempDir(), []string{"*"}, nil))

	w.Close()
	w.Close()

	select {
	case _, ok := <-w.Changes():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("changes channel not closed")
	}

	assert.NoError(t, w.Watch(t.TempDir(), []string{"*"}, nil))
}

func Test_isRelevantEvent(t *testing.T) {
	tests := []struct {
		name   string
		op     fsnotify.Op
		expect bool
	}{
		{name: "write", op: fsnotify.Write, expect: true},
		{name: "create", op: fsnotify.Create, expect: true},
		{name: "remove", op: fsnotify.Remove, expect: true},
		{name: "rename", op: fsnotify.Rename, expect: true},
		{name: "chmod", op: fsnotify.Chmod, expect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, isRelevantEvent(fsnotify.Event{Name: "x", Op: tt.op}))
		})
	}
}

func Test_shouldSkipDir(t *testing.T) {
	assert.True(t, shouldSkipDir(".git"))
	assert.False(t, shouldSkipDir("sounds"))
}
