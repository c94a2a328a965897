package scrape

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const oddsPage = `<html><body>
<table>
  <thead><tr><th>Matchup</th><th>Spread</th><th>Total</th></tr></thead>
  <tbody>
    <tr><td>BUF @ KC</td><td>KC -3.5</td><td>47.5</td></tr>
    <tr><td>DAL at PHI</td><td>-6</td><td>o51½</td></tr>
    <tr><td>DEN @ LV</td><td>PK</td><td>41</td></tr>
    <tr><td>Thursday Night Recap</td><td></td><td></td></tr>
  </tbody>
</table>
<table>
  <thead><tr><th>Standings</th><th>W</th><th>L</th></tr></thead>
  <tbody><tr><td>KC</td><td>9</td><td>1</td></tr></tbody>
</table>
</body></html>`

func docFrom(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func TestParseRows(t *testing.T) {
	rows := parseRows(docFrom(t, oddsPage))

	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3 (%v)", len(rows), rows)
	}

	kc, ok := rows["BUF@KC"]
	if !ok {
		t.Fatal("missing BUF@KC row")
	}
	if kc.Spread == nil || *kc.Spread != -3.5 || kc.SpreadTeam != "KC" {
		t.Errorf("BUF@KC spread = %+v", kc)
	}
	if kc.Total == nil || *kc.Total != 47.5 {
		t.Errorf("BUF@KC total = %v", kc.Total)
	}

	phi, ok := rows["DAL@PHI"]
	if !ok {
		t.Fatal("missing DAL@PHI row")
	}
	if phi.Spread == nil || *phi.Spread != -6 || phi.SpreadTeam != "" {
		t.Errorf("DAL@PHI spread = %+v", phi)
	}
	if phi.Total == nil || *phi.Total != 51.5 {
		t.Errorf("DAL@PHI total = %v (fraction glyph)", phi.Total)
	}

	lv, ok := rows["DEN@LV"]
	if !ok {
		t.Fatal("missing DEN@LV row")
	}
	if lv.Spread == nil || *lv.Spread != 0 {
		t.Errorf("DEN@LV pick'em spread = %v", lv.Spread)
	}
}

func TestParseRowsIgnoresTablesWithoutOddsColumns(t *testing.T) {
	rows := parseRows(docFrom(t, `<table><thead><tr><th>Team</th><th>W</th></tr></thead>
	<tbody><tr><td>BUF @ KC</td><td>9</td></tr></tbody></table>`))
	if len(rows) != 0 {
		t.Fatalf("rows = %v, want none", rows)
	}
}

func TestParseSpreadCell(t *testing.T) {
	cases := []struct {
		in    string
		value float64
		team  string
		ok    bool
	}{
		{"KC -3.5", -3.5, "KC", true},
		{"-7", -7, "", true},
		{"+3", 3, "", true},
		{"PK", 0, "", true},
		{"even", 0, "", true},
		{"-2½", -2.5, "", true},
		{"", 0, "", false},
		{"n/a", 0, "", false},
	}
	for _, tc := range cases {
		v, team, ok := parseSpreadCell(tc.in)
		if ok != tc.ok || (ok && (v != tc.value || team != tc.team)) {
			t.Errorf("parseSpreadCell(%q) = (%v, %q, %v), want (%v, %q, %v)",
				tc.in, v, team, ok, tc.value, tc.team, tc.ok)
		}
	}
}
