// Package console implements the view renderers for the three terminal
// clients. Renderers only write to their own output regions; they never
// touch session or request state.
package console

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Banner is a transient message region. Each Show schedules a deferred clear
// after the TTL with no cancellation: a newer message overwrites the content
// while the older timer still fires and clears it.
type Banner struct {
	mu  sync.Mutex
	out io.Writer
	ttl time.Duration
	msg string
}

// NewBanner returns a banner writing to out and clearing after ttl.
func NewBanner(out io.Writer, ttl time.Duration) *Banner {
	return &Banner{out: out, ttl: ttl}
}

// Show prints and holds the message, then lets the deferred clear empty it.
func (b *Banner) Show(message string, ok bool) {
	prefix := "✔ Success"
	if !ok {
		prefix = "✘ Error"
	}

	b.mu.Lock()
	b.msg = message
	fmt.Fprintf(b.out, "%s\n%s\n", prefix, message)
	b.mu.Unlock()

	time.AfterFunc(b.ttl, b.clear)
}

// Current returns the message currently held, or "" once cleared.
func (b *Banner) Current() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.msg
}

func (b *Banner) clear() {
	b.mu.Lock()
	b.msg = ""
	b.mu.Unlock()
}
