// Package browser implements the page-provider capability on a headless
// Chrome session driven through Rod. It owns the browser lifecycle for one
// extraction run: launch, a single stealth page, bounded element
// resolution, interaction primitives, and teardown.
package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"
	"github.com/rs/zerolog"

	"patentdates/internal/page"
)

// Options configures the browser session.
type Options struct {
	// Headless controls whether Chrome runs without a visible window.
	Headless bool

	Logger zerolog.Logger
}

// Session is a live Chrome session with one open page. It implements
// page.Provider. Close must run on every exit path.
type Session struct {
	browser *rod.Browser
	page    *rod.Page
	lnch    *launcher.Launcher
	log     zerolog.Logger
}

var _ page.Provider = (*Session)(nil)

// Open launches Chrome and creates a stealth page. The caller owns the
// session exclusively until Close.
func Open(opts Options) (*Session, error) {
	l := launcher.New().
		Headless(opts.Headless).
		Set("disable-blink-features", "AutomationControlled")

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("browser: launch: %w", err)
	}

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("browser: connect: %w", err)
	}

	p, err := stealth.Page(b)
	if err != nil {
		b.Close()
		l.Cleanup()
		return nil, fmt.Errorf("browser: create page: %w", err)
	}

	opts.Logger.Debug().Bool("headless", opts.Headless).Msg("browser: session open")

	return &Session{browser: b, page: p, lnch: l, log: opts.Logger}, nil
}

// Navigate loads the URL and waits for the load event within ctx. A load
// that never settles is logged and tolerated; the resolver's own bounded
// waits cover late content.
func (s *Session) Navigate(ctx context.Context, url string) error {
	if err := s.page.Context(ctx).Navigate(url); err != nil {
		return fmt.Errorf("browser: navigate %s: %w", url, err)
	}
	if err := s.page.Context(ctx).WaitLoad(); err != nil {
		s.log.Warn().Str("url", url).Err(err).Msg("browser: wait load timeout")
	}
	return nil
}

// Resolve waits up to timeout for the selector's first match to become
// visible. Returns page.ErrNotFound when it does not.
func (s *Session) Resolve(selector string, timeout time.Duration) (page.Target, error) {
	el, err := s.page.Timeout(timeout).Element(selector)
	if err != nil {
		s.log.Debug().Str("selector", selector).Msg("browser: not present")
		return nil, fmt.Errorf("%w: %s", page.ErrNotFound, selector)
	}
	if err := el.WaitVisible(); err != nil {
		s.log.Debug().Str("selector", selector).Msg("browser: present but not visible")
		return nil, fmt.Errorf("%w: %s", page.ErrNotFound, selector)
	}
	return &element{el: el.CancelTimeout()}, nil
}

// ResolveAll waits up to timeout for the first match, then returns every
// current match for the selector.
func (s *Session) ResolveAll(selector string, timeout time.Duration) ([]page.Target, error) {
	if _, err := s.page.Timeout(timeout).Element(selector); err != nil {
		s.log.Debug().Str("selector", selector).Msg("browser: not present")
		return nil, fmt.Errorf("%w: %s", page.ErrNotFound, selector)
	}

	els, err := s.page.Elements(selector)
	if err != nil {
		return nil, fmt.Errorf("browser: elements %s: %w", selector, err)
	}

	targets := make([]page.Target, 0, len(els))
	for _, el := range els {
		targets = append(targets, &element{el: el})
	}
	return targets, nil
}

// Settle blocks for a fixed delay so the page can catch up after an
// interaction. Bounded by construction, never an indefinite poll.
func (s *Session) Settle(d time.Duration) {
	time.Sleep(d)
}

// PressEnter sends the Enter key to the focused element.
func (s *Session) PressEnter() error {
	if err := s.page.Keyboard.Press(input.Enter); err != nil {
		return fmt.Errorf("browser: press enter: %w", err)
	}
	return nil
}

// Close shuts down the page, the browser, and the launched Chrome process.
func (s *Session) Close() error {
	if s.page != nil {
		s.page.Close()
		s.page = nil
	}
	if s.browser != nil {
		s.browser.Close()
		s.browser = nil
	}
	if s.lnch != nil {
		s.lnch.Cleanup()
		s.lnch = nil
	}
	s.log.Debug().Msg("browser: session closed")
	return nil
}
