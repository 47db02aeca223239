package console

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestBanner_ShowAndAutoClear(t *testing.T) {
	var buf bytes.Buffer
	b := NewBanner(&buf, 20*time.Millisecond)

	b.Show("Login successful!", true)
	if got := b.Current(); got != "Login successful!" {
		t.Fatalf("Current() = %q before TTL", got)
	}
	if !strings.Contains(buf.String(), "Success") {
		t.Fatalf("success banner not written: %q", buf.String())
	}

	time.Sleep(60 * time.Millisecond)
	if got := b.Current(); got != "" {
		t.Fatalf("banner not cleared after TTL, still %q", got)
	}
}

// A second message inside the window overwrites the first, and the first
// message's timer still fires and clears it early. That is the documented
// behaviour, not a bug.
func TestBanner_SecondMessageOverwrites(t *testing.T) {
	var buf bytes.Buffer
	b := NewBanner(&buf, 30*time.Millisecond)

	b.Show("first", true)
	b.Show("second", false)
	if got := b.Current(); got != "second" {
		t.Fatalf("Current() = %q, want overwritten message", got)
	}

	time.Sleep(70 * time.Millisecond)
	if got := b.Current(); got != "" {
		t.Fatalf("banner not cleared, still %q", got)
	}
	if !strings.Contains(buf.String(), "Error") {
		t.Fatalf("error banner not written: %q", buf.String())
	}
}
