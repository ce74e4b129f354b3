package watchdog

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestStart_FiresAfterBudget(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	fired := make(chan int, 1)
	Start(5*time.Millisecond, log, func(code int) { fired <- code })

	select {
	case code := <-fired:
		if code != 1 {
			t.Fatalf("exit code = %d, want 1", code)
		}
	case <-time.After(time.Second):
		t.Fatal("watchdog never fired")
	}

	if !strings.Contains(buf.String(), "time budget") {
		t.Fatalf("missing diagnostic before exit: %s", buf.String())
	}
}

func TestStop_DisarmsTimer(t *testing.T) {
	log := slog.New(slog.DiscardHandler)

	fired := make(chan int, 1)
	g := Start(10*time.Millisecond, log, func(code int) { fired <- code })
	g.Stop()

	select {
	case <-fired:
		t.Fatal("watchdog fired after Stop")
	case <-time.After(50 * time.Millisecond):
	}
}
