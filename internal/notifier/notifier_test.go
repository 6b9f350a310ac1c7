package notifier

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer guards writes from Notify against reads in the test
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestConsoleNotify(t *testing.T) {
	out := &syncBuffer{}
	c := NewConsole(out)

	c.Notify("ICS file downloaded!", KindSuccess)

	assert.Equal(t, "[success] ICS file downloaded!\n", out.String())
	toast, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, Toast{Message: "ICS file downloaded!", Kind: KindSuccess}, toast)
}

func TestConsoleReplacesPreviousToast(t *testing.T) {
	c := NewConsole(&syncBuffer{})
	c.duration = 50 * time.Millisecond

	dismissed := make(chan Toast, 2)
	c.OnDismiss = func(t Toast) { dismissed <- t }

	c.Notify("Opening Google Calendar...", KindInfo)
	c.Notify("No matches selected", KindError)

	toast, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "No matches selected", toast.Message)

	select {
	case got := <-dismissed:
		assert.Equal(t, "No matches selected", got.Message, "only the latest toast should expire")
	case <-time.After(time.Second):
		t.Fatal("toast was never dismissed")
	}

	select {
	case extra := <-dismissed:
		t.Errorf("replaced toast was dismissed too: %v", extra)
	case <-time.After(100 * time.Millisecond):
	}

	_, ok = c.Current()
	assert.False(t, ok)
}

func TestConsoleDefaultDuration(t *testing.T) {
	c := NewConsole(&syncBuffer{})
	assert.Equal(t, 3*time.Second, c.duration)
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()

	_, ok := r.Last()
	assert.False(t, ok)

	r.Notify("Opening Outlook...", KindInfo)
	r.Notify("Downloaded 2 matches!", KindSuccess)

	assert.Equal(t, []Toast{
		{Message: "Opening Outlook...", Kind: KindInfo},
		{Message: "Downloaded 2 matches!", Kind: KindSuccess},
	}, r.Toasts())

	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, KindSuccess, last.Kind)
}

func TestToastString(t *testing.T) {
	assert.Equal(t, "[error] No matches selected", Toast{Message: "No matches selected", Kind: KindError}.String())
}
