package prompt

import "time"

// ReadOptions carries the per-read settings a KeyReader may honor.
type ReadOptions struct {
	// InheritInputMethod asks the reader to deliver input-method composed
	// characters as single keys. Readers without an input method ignore it.
	InheritInputMethod bool
	// Timeout bounds the wait for a keystroke. Zero means wait forever.
	Timeout time.Duration
}

// KeyReader produces one keystroke at a time. ReadKey must render
// promptText as the live prompt and block until a key arrives, the
// timeout elapses (ErrTimeout) or the read is interrupted (ErrInterrupted).
type KeyReader interface {
	ReadKey(promptText string, opts ReadOptions) (string, error)
}

// Surface is a transient display area for help output. Show replaces any
// previous content; Close removes the surface entirely.
type Surface interface {
	Show(text string) error
	Close() error
}

// Context is a snapshot of whatever the display showed before a prompt
// began. Restore puts it back.
type Context interface {
	Restore() error
}

// Display hands out named surfaces and before/after context snapshots.
// Requesting the same name twice must re-use the open surface rather than
// stacking a new one.
type Display interface {
	Surface(name string) (Surface, error)
	Capture() (Context, error)
}
