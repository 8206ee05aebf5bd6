package dates

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantYear  int
		wantMonth time.Month
		wantDay   int
		wantZero  bool
	}{
		{
			name:      "Dash format 2015-03-10",
			text:      "2015-03-10",
			wantYear:  2015,
			wantMonth: time.March,
			wantDay:   10,
		},
		{
			name:      "Slash format 2020/07/01",
			text:      "2020/07/01",
			wantYear:  2020,
			wantMonth: time.July,
			wantDay:   1,
		},
		{
			name:      "Surrounding whitespace",
			text:      "  2018-11-30 ",
			wantYear:  2018,
			wantMonth: time.November,
			wantDay:   30,
		},
		{
			name:     "Empty string",
			text:     "",
			wantZero: true,
		},
		{
			name:     "Whitespace only",
			text:     "   ",
			wantZero: true,
		},
		{
			name:     "Not a date",
			text:     "pending",
			wantZero: true,
		},
		{
			name:     "Month out of range",
			text:     "2015-13-10",
			wantZero: true,
		},
		{
			name:     "Day out of range",
			text:     "2015-02-30",
			wantZero: true,
		},
		{
			name:     "Mixed separators",
			text:     "2015-03/10",
			wantZero: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text)
			if tt.wantZero {
				if !got.IsZero() {
					t.Errorf("Parse(%q) = %v, want zero time", tt.text, got)
				}
				return
			}
			if got.IsZero() {
				t.Fatalf("Parse(%q) returned zero time", tt.text)
			}
			if got.Year() != tt.wantYear || got.Month() != tt.wantMonth || got.Day() != tt.wantDay {
				t.Errorf("Parse(%q) = %v, want %d-%d-%d", tt.text, got, tt.wantYear, tt.wantMonth, tt.wantDay)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	if got := Format(time.Time{}); got != NotAvailable {
		t.Errorf("Format(zero) = %q, want %q", got, NotAvailable)
	}
	d := time.Date(2020, time.July, 1, 0, 0, 0, 0, time.UTC)
	if got := Format(d); got != "2020-07-01" {
		t.Errorf("Format = %q, want 2020-07-01", got)
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	inputs := []string{"2015-03-10", "2020-07-01", "1999-12-31", "2024-02-29"}
	for _, s := range inputs {
		first := Parse(s)
		again := Parse(Format(first))
		if !first.Equal(again) {
			t.Errorf("round trip of %q changed value: %v vs %v", s, first, again)
		}
	}
}

func TestDiffDays(t *testing.T) {
	filing := Parse("2015-03-10")
	grant := Parse("2020/07/01")

	got, ok := DiffDays(filing, grant)
	if !ok {
		t.Fatal("DiffDays returned not computable for two valid dates")
	}
	if got != 1940 {
		t.Errorf("DiffDays = %d, want 1940", got)
	}

	// Symmetry
	rev, ok := DiffDays(grant, filing)
	if !ok || rev != got {
		t.Errorf("DiffDays not symmetric: %d vs %d", got, rev)
	}

	// Identity
	same, ok := DiffDays(filing, filing)
	if !ok || same != 0 {
		t.Errorf("DiffDays(a, a) = %d, want 0", same)
	}
}

func TestDiffDaysMissing(t *testing.T) {
	valid := Parse("2015-03-10")
	tests := []struct {
		name string
		a, b time.Time
	}{
		{"first missing", time.Time{}, valid},
		{"second missing", valid, time.Time{}},
		{"both missing", time.Time{}, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := DiffDays(tt.a, tt.b); ok {
				t.Error("expected not computable")
			}
		})
	}
}
