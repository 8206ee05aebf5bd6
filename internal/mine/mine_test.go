package mine

import "testing"

func TestScanUnit(t *testing.T) {
	tests := []struct {
		name string
		unit string
		slot Slot
		want string
	}{
		{
			name: "Filing date dash format",
			unit: "Filing Date: 2015-03-10",
			slot: SlotFiling,
			want: "2015-03-10",
		},
		{
			name: "Grant date slash format normalizes",
			unit: "Grant Date: 2020/07/01",
			slot: SlotGrant,
			want: "2020-07-01",
		},
		{
			name: "Publication via published keyword",
			unit: "Published 2018-05-22 under number WO2018",
			slot: SlotPublication,
			want: "2018-05-22",
		},
		{
			name: "Application date keyword",
			unit: "Application date 2016-01-04",
			slot: SlotFiling,
			want: "2016-01-04",
		},
		{
			name: "Pub. date abbreviation",
			unit: "Pub. Date 2019/10/15",
			slot: SlotPublication,
			want: "2019-10-15",
		},
		{
			name: "Case insensitive keyword",
			unit: "PATENT GRANT issued 2021-02-09",
			slot: SlotGrant,
			want: "2021-02-09",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFindings()
			f.ScanUnit(tt.unit)
			if got := f[tt.slot]; got != tt.want {
				t.Errorf("slot %s = %q, want %q", tt.slot, got, tt.want)
			}
		})
	}
}

func TestScanUnitNoMatch(t *testing.T) {
	tests := []struct {
		name string
		unit string
	}{
		{"Keyword without date", "Filing Date: pending"},
		{"Date without keyword", "Priority claimed 2015-03-10"},
		{"Date shape too loose", "Filed on 15-03-10"},
		{"Empty unit", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFindings()
			f.ScanUnit(tt.unit)
			if len(f) != 0 {
				t.Errorf("expected no findings, got %v", f)
			}
		})
	}
}

func TestFirstMatchWins(t *testing.T) {
	f := NewFindings()
	f.ScanUnits([]string{
		"Filing Date: 2015-03-10",
		"Filed again (republication): 2017-09-09",
	})
	if f[SlotFiling] != "2015-03-10" {
		t.Errorf("filing = %q, first match must win", f[SlotFiling])
	}
}

func TestFilledSlotDoesNotBlockOthers(t *testing.T) {
	f := NewFindings()
	f.ScanUnits([]string{
		"Filing Date: 2015-03-10",
		"Filed: 2016-01-01", // must not overwrite filing
		"Grant Date: 2020/07/01",
	})
	if f[SlotFiling] != "2015-03-10" {
		t.Errorf("filing = %q, want 2015-03-10", f[SlotFiling])
	}
	if f[SlotGrant] != "2020-07-01" {
		t.Errorf("grant = %q, want 2020-07-01", f[SlotGrant])
	}
	if _, ok := f[SlotPublication]; ok {
		t.Error("publication should stay unfilled")
	}
}

func TestUnitGranularity(t *testing.T) {
	// The keyword and the date sit in different units: no pairing.
	f := NewFindings()
	f.ScanUnits([]string{
		"Filing Date:",
		"2015-03-10",
	})
	if len(f) != 0 {
		t.Errorf("keyword and date in separate units must not pair, got %v", f)
	}
}

func TestComplete(t *testing.T) {
	f := NewFindings()
	if f.Complete() {
		t.Error("empty findings reported complete")
	}
	f.ScanUnits([]string{
		"Filing Date: 2015-03-10",
		"Publication Date: 2016-09-15",
		"Grant Date: 2020-07-01",
	})
	if !f.Complete() {
		t.Errorf("findings %v should be complete", f)
	}
}

func TestScanHTMLTableRows(t *testing.T) {
	html := `<table>
		<tr><td>Application number</td><td>US14/123,456</td></tr>
		<tr><td>Filing Date</td><td>2015-03-10</td></tr>
		<tr><td>Publication Date</td><td>2016/09/15</td></tr>
		<tr><td>Grant Date</td><td>2020-07-01</td></tr>
	</table>`

	f := NewFindings()
	if err := f.ScanHTML(html); err != nil {
		t.Fatalf("ScanHTML failed: %v", err)
	}
	want := Findings{
		SlotFiling:      "2015-03-10",
		SlotPublication: "2016-09-15",
		SlotGrant:       "2020-07-01",
	}
	for slot, w := range want {
		if f[slot] != w {
			t.Errorf("slot %s = %q, want %q", slot, f[slot], w)
		}
	}
}

func TestScanHTMLRowIsolation(t *testing.T) {
	// Keyword in one row, date in another: the table as a whole contains
	// both, but no single row does.
	html := `<table>
		<tr><td>Filing Date</td><td>pending</td></tr>
		<tr><td>Priority</td><td>2015-03-10</td></tr>
	</table>`

	f := NewFindings()
	if err := f.ScanHTML(html); err != nil {
		t.Fatalf("ScanHTML failed: %v", err)
	}
	if len(f) != 0 {
		t.Errorf("expected no findings, got %v", f)
	}
}

func TestScanHTMLDefinitionList(t *testing.T) {
	html := `<dl>
		<dt>Grant Date</dt><dd>2020/07/01</dd>
		<dt>Inventor</dt><dd>Doe</dd>
	</dl>`

	f := NewFindings()
	if err := f.ScanHTML(html); err != nil {
		t.Fatalf("ScanHTML failed: %v", err)
	}
	if f[SlotGrant] != "2020-07-01" {
		t.Errorf("grant = %q, want 2020-07-01", f[SlotGrant])
	}
}

func TestScanHTMLDivBlocks(t *testing.T) {
	html := `<section>
		<div>Filed 2015-03-10 in the United States</div>
		<div>Granted 2020-07-01</div>
	</section>`

	f := NewFindings()
	if err := f.ScanHTML(html); err != nil {
		t.Fatalf("ScanHTML failed: %v", err)
	}
	if f[SlotFiling] != "2015-03-10" {
		t.Errorf("filing = %q, want 2015-03-10", f[SlotFiling])
	}
	if f[SlotGrant] != "2020-07-01" {
		t.Errorf("grant = %q, want 2020-07-01", f[SlotGrant])
	}
}

func TestScanHTMLPlainText(t *testing.T) {
	html := "Filing Date: 2015-03-10\nGrant Date: 2020-07-01"

	f := NewFindings()
	if err := f.ScanHTML(html); err != nil {
		t.Fatalf("ScanHTML failed: %v", err)
	}
	if f[SlotFiling] != "2015-03-10" || f[SlotGrant] != "2020-07-01" {
		t.Errorf("findings = %v", f)
	}
}
