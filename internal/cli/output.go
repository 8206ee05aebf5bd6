package cli

import (
	"fmt"
	"io"

	"patentdates/internal/dates"
	"patentdates/internal/mine"
)

// pairs lists the reported differences in their fixed output order.
var pairs = [][2]mine.Slot{
	{mine.SlotPublication, mine.SlotGrant},
	{mine.SlotPublication, mine.SlotFiling},
	{mine.SlotGrant, mine.SlotFiling},
}

// WriteReport prints the three dates in publication, grant, filing order,
// then the pairwise differences. A missing date prints as N/A; a pair with
// a missing member is reported as not computable, never as zero.
func WriteReport(w io.Writer, f mine.Findings) error {
	for _, slot := range mine.Slots {
		d := dates.Parse(f[slot])
		if _, err := fmt.Fprintf(w, "%s: %s\n", titleCase(slot.Label()), dates.Format(d)); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}

	for _, pair := range pairs {
		a, b := pair[0], pair[1]
		n, ok := dates.DiffDays(dates.Parse(f[a]), dates.Parse(f[b]))
		var line string
		if ok {
			line = fmt.Sprintf("Difference between %s and %s are %d days.", a.Label(), b.Label(), n)
		} else {
			line = fmt.Sprintf("Difference between %s and %s is not computable (missing date).", a.Label(), b.Label())
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}

	return nil
}

// titleCase upper-cases the first letter of a slot label for the date
// lines ("Publication date: ...").
func titleCase(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
