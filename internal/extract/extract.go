package extract

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"patentdates/internal/config"
	"patentdates/internal/mine"
	"patentdates/internal/page"
)

var (
	// ErrNoSearchTerm reports that no term was supplied and none could be
	// derived from the search input's placeholder.
	ErrNoSearchTerm = errors.New("extract: no search term available")

	// ErrNoResultFound reports that no result entry resolved. Terminal:
	// there is nothing to mine without a result page.
	ErrNoResultFound = errors.New("extract: no search result resolved")
)

// Result is the outcome of one extraction run.
type Result struct {
	// Term is the search term actually submitted.
	Term string

	// Findings holds the mined date per slot; unfilled slots are absent.
	Findings mine.Findings
}

// Runner composes the fallback resolver and the section miner over one
// page session.
type Runner struct {
	provider page.Provider
	cfg      *config.Config
	log      zerolog.Logger
}

// New creates a Runner. The provider's lifetime is managed by the caller.
func New(p page.Provider, cfg *config.Config, log zerolog.Logger) *Runner {
	return &Runner{provider: p, cfg: cfg, log: log}
}

// Run executes the full flow and returns whatever findings it gathered.
// The returned Result is non-nil only when the run reached the section
// scan; run-terminal errors carry no partial result to report.
func (r *Runner) Run(ctx context.Context, term string) (*Result, error) {
	navCtx, cancel := context.WithTimeout(ctx, r.cfg.NavigateTimeout)
	defer cancel()
	if err := r.provider.Navigate(navCtx, r.cfg.URL); err != nil {
		return nil, fmt.Errorf("loading search page: %w", err)
	}

	term, err := r.submitSearch(term)
	if err != nil {
		return nil, err
	}
	r.log.Info().Str("term", term).Msg("search submitted")

	r.dismissConsent()

	if err := r.openFirstResult(); err != nil {
		return nil, err
	}
	r.log.Info().Msg("result selected")

	findings := r.scanSections()
	r.log.Info().Int("found", len(findings)).Msg("sections scanned")

	return &Result{Term: term, Findings: findings}, nil
}

// submitSearch locates the search input, derives a default term from its
// placeholder when none was supplied, and submits. A missing search box is
// tolerated when a term exists; the result stage will decide whether the
// page is usable anyway.
func (r *Runner) submitSearch(term string) (string, error) {
	box, d, err := page.Resolve(r.provider, r.cfg.Selectors.SearchBox, r.cfg.ResolveTimeout)
	if err != nil {
		if term == "" {
			return "", ErrNoSearchTerm
		}
		r.log.Warn().Msg("search input not found, continuing with supplied term")
		return term, nil
	}
	r.log.Debug().Str("descriptor", d.Name).Msg("search input resolved")

	if term == "" {
		hint, ok, err := box.Attribute("placeholder")
		if err != nil {
			r.log.Debug().Err(err).Msg("placeholder read failed")
		}
		if ok {
			term = deriveTerm(hint)
		}
		if term == "" {
			return "", ErrNoSearchTerm
		}
		r.log.Info().Str("term", term).Msg("derived search term from placeholder")
	}

	if err := box.Fill(term); err != nil {
		return "", fmt.Errorf("filling search input: %w", err)
	}
	if err := r.provider.PressEnter(); err != nil {
		return "", fmt.Errorf("submitting search: %w", err)
	}
	r.provider.Settle(r.cfg.SettleDelay)
	return term, nil
}

// dismissConsent clicks through an interstitial consent dialog when one is
// present. Absence is the normal case, not an error.
func (r *Runner) dismissConsent() {
	btn, d, err := page.Resolve(r.provider, r.cfg.Selectors.Consent, r.cfg.ResolveTimeout)
	if err != nil {
		r.log.Debug().Msg("no consent dialog")
		return
	}
	if err := btn.Click(); err != nil {
		r.log.Warn().Str("descriptor", d.Name).Err(err).Msg("consent dismiss failed")
		return
	}
	r.log.Info().Str("descriptor", d.Name).Msg("consent dismissed")
	r.provider.Settle(r.cfg.SettleDelay)
}

// openFirstResult activates the first result entry. The chain ends in a
// generic any-results-container candidate; when even that fails the run is
// over.
func (r *Runner) openFirstResult() error {
	link, d, err := page.Resolve(r.provider, r.cfg.Selectors.Result, r.cfg.ResolveTimeout)
	if err != nil {
		return ErrNoResultFound
	}
	r.log.Debug().Str("descriptor", d.Name).Msg("result entry resolved")

	if err := link.Click(); err != nil {
		return fmt.Errorf("opening result: %w", err)
	}
	r.provider.Settle(r.cfg.SettleDelay)
	return nil
}

// scanSections walks the section chain in order, mining every resolved
// instance, and stops as soon as all slots are filled or candidates
// exhaust. Misses and unreadable sections are absorbed.
func (r *Runner) scanSections() mine.Findings {
	findings := mine.NewFindings()

	for _, d := range r.cfg.Selectors.Sections {
		if findings.Complete() {
			break
		}

		targets, err := r.provider.ResolveAll(d.Selector, r.cfg.ResolveTimeout)
		if err != nil {
			r.log.Debug().Str("descriptor", d.Name).Msg("section candidate missed")
			continue
		}
		r.log.Debug().Str("descriptor", d.Name).Int("instances", len(targets)).Msg("scanning sections")

		for _, t := range targets {
			if findings.Complete() {
				break
			}
			html, err := t.HTML()
			if err != nil {
				r.log.Debug().Str("descriptor", d.Name).Err(err).Msg("section unreadable")
				continue
			}
			if err := findings.ScanHTML(html); err != nil {
				r.log.Debug().Str("descriptor", d.Name).Err(err).Msg("section unparseable")
			}
		}
	}

	return findings
}
