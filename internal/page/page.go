package page

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound reports that a fallback chain exhausted without any candidate
// becoming observable. It is recoverable; callers decide whether to abort
// or continue with partial data.
var ErrNotFound = errors.New("page: no candidate resolved")

// Descriptor identifies one candidate element or region on the page.
// Descriptors are immutable and supplied as priority-ordered lists.
type Descriptor struct {
	Name     string `yaml:"name"`
	Selector string `yaml:"selector"`
}

// Target is a handle to a located element. Its lifetime is bounded to the
// current page state; it must not be cached across navigations.
type Target interface {
	// Text returns the rendered text content of the target.
	Text() (string, error)
	// HTML returns the target's outer HTML.
	HTML() (string, error)
	// Attribute returns the named attribute value; ok is false when the
	// attribute is absent.
	Attribute(name string) (value string, ok bool, err error)
	// Fill types text into the target.
	Fill(text string) error
	// Click activates the target.
	Click() error
}

// Provider is the page-provider capability the extractor consumes. The
// production implementation drives a headless browser; tests substitute
// fakes.
type Provider interface {
	// Navigate loads the URL and waits for the page to settle.
	Navigate(ctx context.Context, url string) error
	// Resolve waits up to timeout for the first element matching the
	// selector to become visible. Returns ErrNotFound when it does not.
	Resolve(selector string, timeout time.Duration) (Target, error)
	// ResolveAll waits up to timeout for at least one match, then returns
	// every current match. Returns ErrNotFound when none appear.
	ResolveAll(selector string, timeout time.Duration) ([]Target, error)
	// Settle blocks for a bounded delay to let the page catch up after an
	// interaction.
	Settle(d time.Duration)
	// PressEnter sends the Enter key to the page.
	PressEnter() error
	// Close releases the page session. Safe to call on every exit path.
	Close() error
}
