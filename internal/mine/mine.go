package mine

import (
	"regexp"
	"strings"
)

// Slot names one of the semantic date slots the extractor fills.
type Slot string

const (
	SlotFiling      Slot = "filing"
	SlotPublication Slot = "publication"
	SlotGrant       Slot = "grant"
)

// Slots lists every slot in report order: publication, grant, filing.
var Slots = []Slot{SlotPublication, SlotGrant, SlotFiling}

// Label returns the human-readable label used in the console report.
func (s Slot) Label() string {
	return string(s) + " date"
}

// keywords maps each slot to its case-insensitive label keywords. A unit
// belongs to a slot when any keyword is a substring of the unit.
var keywords = map[Slot][]string{
	SlotFiling:      {"filing date", "filed", "application date"},
	SlotPublication: {"publication date", "published", "pub. date"},
	SlotGrant:       {"grant date", "granted", "patent grant"},
}

// datePattern matches YYYY-MM-DD and YYYY/MM/DD tokens. Month and day
// ranges are not validated here; that is the date layer's job.
var datePattern = regexp.MustCompile(`\d{4}[-/]\d{2}[-/]\d{2}`)

// Findings accumulates at most one date string per slot over a run.
// Values are normalized to dash separators.
type Findings map[Slot]string

// NewFindings returns an empty accumulator.
func NewFindings() Findings {
	return make(Findings)
}

// Complete reports whether every slot has a finding.
func (f Findings) Complete() bool {
	return len(f) == len(keywords)
}

// set records a finding unless the slot is already filled. First match
// wins for the lifetime of the run.
func (f Findings) set(slot Slot, value string) {
	if _, ok := f[slot]; ok {
		return
	}
	f[slot] = value
}

// ScanUnit scans one discrete text unit for every unfilled slot. A slot is
// filled when the unit contains one of its keywords and a date-shaped
// token; the token is normalized to dash separators before storage.
func (f Findings) ScanUnit(unit string) {
	lower := strings.ToLower(unit)
	for slot, kws := range keywords {
		if _, filled := f[slot]; filled {
			continue
		}
		if !containsAny(lower, kws) {
			continue
		}
		token := datePattern.FindString(unit)
		if token == "" {
			continue
		}
		f.set(slot, strings.ReplaceAll(token, "/", "-"))
	}
}

// ScanUnits scans units in order, stopping early once every slot is
// filled.
func (f Findings) ScanUnits(units []string) {
	for _, u := range units {
		if f.Complete() {
			return
		}
		f.ScanUnit(u)
	}
}

func containsAny(lower string, kws []string) bool {
	for _, kw := range kws {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
