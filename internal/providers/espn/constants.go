package espn

import "time"

const (
	providerName      = "espn"
	summarySourceName = "espn-summary"

	defaultBaseURL     = "https://site.api.espn.com/apis/site/v2/sports"
	defaultHTTPTimeout = 10 * time.Second

	// The college scoreboard defaults to top-25 only; groups=80 returns
	// all FBS games and limit keeps full Saturdays on one page.
	collegeGroupsParam = "80"
	scoreboardLimit    = "300"

	eventDateLayout = "2006-01-02T15:04Z"
)
