package notifier

import "fmt"

// Kind is the style of a toast
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Toast is a single status message
type Toast struct {
	Message string `json:"message"`
	Kind    Kind   `json:"kind"`
}

func (t Toast) String() string {
	return fmt.Sprintf("[%s] %s", t.Kind, t.Message)
}

// Notifier defines the interface for showing toasts
type Notifier interface {
	// Notify shows message, replacing any toast still on screen
	Notify(message string, kind Kind)
}
