package registry

import (
	"testing"
	"time"
)

func TestWatcherSignalsSchemeFileChange(t *testing.T) {
	reg, systemDir, _ := newTestRegistry(t)

	w, err := reg.Watch()
	if err != nil {
		t.Fatalf("Watch() error: %v", err)
	}
	defer w.Close()

	writeModern(t, systemDir, "fresh", "Fresh")

	select {
	case _, ok := <-w.Events():
		if !ok {
			t.Fatal("event channel closed unexpectedly")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no change signal within timeout")
	}
}

func TestWatchFailsWithoutRoots(t *testing.T) {
	reg := New(Options{
		SystemDirs: []string{"/nonexistent/swatch/system"},
		UserDir:    "/nonexistent/swatch/user",
	})
	if w, err := reg.Watch(); err == nil {
		w.Close()
		t.Fatal("expected an error when no search root exists")
	}
}
