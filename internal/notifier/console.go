package notifier

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// DismissAfter is how long a toast stays visible
const DismissAfter = 3 * time.Second

// Console writes toasts to a terminal. The dismissal timer runs in the
// background; nothing waits for it.
type Console struct {
	out      io.Writer
	duration time.Duration

	mu      sync.Mutex
	current *Toast
	timer   *time.Timer
	// OnDismiss, when set, is called with each toast as it expires
	OnDismiss func(Toast)
}

// NewConsole creates a console notifier writing to out
func NewConsole(out io.Writer) *Console {
	return &Console{out: out, duration: DismissAfter}
}

// Notify prints the toast and schedules its dismissal
func (c *Console) Notify(message string, kind Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
	}

	toast := &Toast{Message: message, Kind: kind}
	c.current = toast
	fmt.Fprintln(c.out, toast.String())

	c.timer = time.AfterFunc(c.duration, func() { c.dismiss(toast) })
}

// Current returns the visible toast, if any
func (c *Console) Current() (Toast, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return Toast{}, false
	}
	return *c.current, true
}

func (c *Console) dismiss(toast *Toast) {
	c.mu.Lock()
	// a newer toast has already replaced this one
	if c.current != toast {
		c.mu.Unlock()
		return
	}
	c.current = nil
	c.timer = nil
	onDismiss := c.OnDismiss
	c.mu.Unlock()

	if onDismiss != nil {
		onDismiss(*toast)
	}
}
