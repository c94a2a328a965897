package scrape

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	matchupPattern = regexp.MustCompile(`([A-Z&]{2,5})\s*(?:@|AT)\s*([A-Z&]{2,5})`)
	spreadPattern  = regexp.MustCompile(`(?:([A-Z&]{2,5})\s+)?(-?\d+(?:\.\d+)?)`)
	numberPattern  = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
)

// parsedRow is one matchup row lifted off the page. SpreadTeam carries the
// abbreviation printed next to the spread when the page quotes the line
// relative to the favorite rather than the home team.
type parsedRow struct {
	Away       string
	Home       string
	Spread     *float64
	SpreadTeam string
	Total      *float64
}

// parseRows walks every table on the page and extracts matchup rows keyed
// by "AWAY@HOME". Column positions are discovered from the header text, so
// minor page reshuffles keep working. Best effort: rows that do not look
// like a matchup are skipped silently.
func parseRows(doc *goquery.Document) map[string]parsedRow {
	out := make(map[string]parsedRow)

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		spreadCol, totalCol := findOddsColumns(table)
		if spreadCol < 0 && totalCol < 0 {
			return
		}

		table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
			cells := tr.Find("th,td")
			if cells.Length() == 0 {
				return
			}

			row, ok := matchupRow(cells.First().Text())
			if !ok {
				return
			}

			if spreadCol >= 0 && spreadCol < cells.Length() {
				if v, team, ok := parseSpreadCell(cells.Eq(spreadCol).Text()); ok {
					row.Spread = &v
					row.SpreadTeam = team
				}
			}
			if totalCol >= 0 && totalCol < cells.Length() {
				if v, ok := parseNumberCell(cells.Eq(totalCol).Text()); ok {
					row.Total = &v
				}
			}
			if row.Spread == nil && row.Total == nil {
				return
			}

			key := row.Away + "@" + row.Home
			if _, exists := out[key]; !exists {
				out[key] = row
			}
		})
	})

	return out
}

// findOddsColumns locates spread/total columns from the header row.
// Returns -1 for columns the table does not carry.
func findOddsColumns(table *goquery.Selection) (spreadCol, totalCol int) {
	spreadCol, totalCol = -1, -1
	table.Find("thead tr").First().Find("th,td").Each(func(i int, h *goquery.Selection) {
		text := strings.ToLower(strings.TrimSpace(h.Text()))
		switch {
		case strings.Contains(text, "spread") || text == "line":
			if spreadCol < 0 {
				spreadCol = i
			}
		case strings.Contains(text, "total") || strings.Contains(text, "o/u"):
			if totalCol < 0 {
				totalCol = i
			}
		}
	})
	return spreadCol, totalCol
}

func matchupRow(raw string) (parsedRow, bool) {
	m := matchupPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(raw)))
	if m == nil {
		return parsedRow{}, false
	}
	return parsedRow{Away: m[1], Home: m[2]}, true
}

// parseSpreadCell reads cells like "KC -3.5", "-3.5" or "PK" (pick'em).
// The returned team is empty when the cell quotes a bare number.
func parseSpreadCell(raw string) (value float64, team string, ok bool) {
	trimmed := strings.ToUpper(strings.TrimSpace(strings.ReplaceAll(raw, "½", ".5")))
	if trimmed == "PK" || trimmed == "EVEN" {
		return 0, "", true
	}
	m := spreadPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return 0, "", false
	}
	v, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return 0, "", false
	}
	return v, m[1], true
}

func parseNumberCell(raw string) (float64, bool) {
	m := numberPattern.FindString(strings.ReplaceAll(raw, "½", ".5"))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
