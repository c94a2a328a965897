package espn

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"football-lines-service/internal/domain"
)

// detailsPattern matches odds details strings like "KC -3.5" or "OSU -10".
var detailsPattern = regexp.MustCompile(`^([A-Z&]+)\s+(-?\d+(?:\.\d+)?)$`)

func mapEvent(league domain.League, ev eventResponse) (domain.Game, error) {
	if len(ev.Competitions) == 0 {
		return domain.Game{}, fmt.Errorf("event %s has no competitions", ev.ID)
	}
	comp := ev.Competitions[0]

	var home, away competitorResponse
	var haveHome, haveAway bool
	for _, c := range comp.Competitors {
		switch c.HomeAway {
		case "home":
			home, haveHome = c, true
		case "away":
			away, haveAway = c, true
		}
	}
	if !haveHome || !haveAway {
		return domain.Game{}, fmt.Errorf("event %s missing home/away competitors", ev.ID)
	}

	kickoff, err := time.Parse(eventDateLayout, ev.Date)
	if err != nil {
		// Some feeds carry full RFC3339 timestamps instead.
		kickoff, err = time.Parse(time.RFC3339, ev.Date)
		if err != nil {
			return domain.Game{}, fmt.Errorf("event %s has unparseable date %q", ev.ID, ev.Date)
		}
	}

	game := domain.Game{
		ID:       ev.ID,
		League:   league,
		HomeTeam: mapTeam(home),
		AwayTeam: mapTeam(away),
		Kickoff:  kickoff.UTC(),
		Status:   mapStatus(ev.Status),
		Period:   ev.Status.Period,
		Clock:    ev.Status.DisplayClock,
		Score: domain.Score{
			Home: parseScore(home.Score),
			Away: parseScore(away.Score),
		},
	}

	if len(comp.Odds) > 0 {
		game.Line = mapOddsItem(game, comp.Odds[0], providerName+"-scoreboard", kickoff)
	}
	return game, nil
}

func mapTeam(c competitorResponse) domain.Team {
	return domain.Team{
		ID:           c.Team.ID,
		Name:         c.Team.DisplayName,
		Abbreviation: strings.ToUpper(c.Team.Abbreviation),
		Rank:         normalizeRank(c.CuratedRank.Current),
	}
}

// normalizeRank drops the "99" placeholder used for unranked teams.
func normalizeRank(rank int) int {
	if rank <= 0 || rank > 25 {
		return 0
	}
	return rank
}

func mapStatus(status statusResponse) domain.GameStatus {
	name := strings.ToUpper(status.Type.Name)
	if name == "STATUS_HALFTIME" || strings.EqualFold(status.Type.Description, "halftime") {
		return domain.StatusHalftime
	}

	switch strings.ToLower(status.Type.State) {
	case "pre":
		return domain.StatusScheduled
	case "in":
		return domain.StatusInProgress
	case "post":
		switch name {
		case "STATUS_POSTPONED":
			return domain.StatusPostponed
		case "STATUS_CANCELED", "STATUS_CANCELLED":
			return domain.StatusCanceled
		default:
			return domain.StatusFinal
		}
	default:
		return domain.StatusScheduled
	}
}

func parseScore(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

// mapOddsItem converts one upstream odds entry to a home-relative Line.
func mapOddsItem(game domain.Game, item oddsItem, source string, capturedAt time.Time) domain.Line {
	line := domain.Line{Source: source, CapturedAt: capturedAt}

	if item.Spread != 0 {
		spread := item.Spread
		line.Spread = &spread
	} else if spread, ok := spreadFromDetails(game, item.Details); ok {
		line.Spread = &spread
	}

	if item.OverUnder > 0 {
		total := item.OverUnder
		line.Total = &total
	}
	if ml := normalizeMoneyline(item.HomeTeamOdds.MoneyLine); ml != nil {
		line.HomeMoneyline = ml
	}
	if ml := normalizeMoneyline(item.AwayTeamOdds.MoneyLine); ml != nil {
		line.AwayMoneyline = ml
	}
	return line
}

func mapPickcenter(game domain.Game, items []oddsItem, capturedAt time.Time) domain.Line {
	// Books earlier in the list are the featured ones; take the first
	// entry that carries any market.
	for _, item := range items {
		line := mapOddsItem(game, item, summarySourceName, capturedAt)
		if !line.Empty() {
			return line
		}
	}
	return domain.Line{}
}

// spreadFromDetails parses strings like "KC -3.5" into a home-relative
// spread. The named team is the favorite.
func spreadFromDetails(game domain.Game, details string) (float64, bool) {
	details = strings.TrimSpace(details)
	if details == "" || strings.EqualFold(details, "even") || strings.EqualFold(details, "pk") {
		return 0, false
	}
	m := detailsPattern.FindStringSubmatch(details)
	if m == nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return 0, false
	}

	switch strings.ToUpper(m[1]) {
	case strings.ToUpper(game.HomeTeam.Abbreviation):
		return value, true
	case strings.ToUpper(game.AwayTeam.Abbreviation):
		return -value, true
	default:
		return 0, false
	}
}

// normalizeMoneyline treats zero as "no market" and clips junk values.
func normalizeMoneyline(raw float64) *int {
	ml := int(raw)
	if ml == 0 {
		return nil
	}
	return &ml
}
