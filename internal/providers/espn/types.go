package espn

type scoreboardResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Date         string                `json:"date"`
	Name         string                `json:"name"`
	ShortName    string                `json:"shortName"`
	Status       statusResponse        `json:"status"`
	Competitions []competitionResponse `json:"competitions"`
}

type competitionResponse struct {
	ID          string               `json:"id"`
	Competitors []competitorResponse `json:"competitors"`
	Odds        []oddsItem           `json:"odds"`
}

type competitorResponse struct {
	ID          string       `json:"id"`
	HomeAway    string       `json:"homeAway"`
	Score       string       `json:"score"`
	Team        teamResponse `json:"team"`
	CuratedRank rankResponse `json:"curatedRank"`
}

type teamResponse struct {
	ID           string `json:"id"`
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"displayName"`
	Name         string `json:"name"`
	Location     string `json:"location"`
}

type rankResponse struct {
	Current int `json:"current"`
}

type statusResponse struct {
	Period       int                `json:"period"`
	DisplayClock string             `json:"displayClock"`
	Type         statusTypeResponse `json:"type"`
}

type statusTypeResponse struct {
	Name        string `json:"name"`
	State       string `json:"state"`
	Completed   bool   `json:"completed"`
	Description string `json:"description"`
}

type summaryResponse struct {
	Pickcenter []oddsItem `json:"pickcenter"`
}

type oddsItem struct {
	Provider     oddsProvider `json:"provider"`
	Details      string       `json:"details"`
	OverUnder    float64      `json:"overUnder"`
	Spread       float64      `json:"spread"`
	HomeTeamOdds teamOdds     `json:"homeTeamOdds"`
	AwayTeamOdds teamOdds     `json:"awayTeamOdds"`
}

type oddsProvider struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type teamOdds struct {
	Favorite  bool    `json:"favorite"`
	MoneyLine float64 `json:"moneyLine"`
}
