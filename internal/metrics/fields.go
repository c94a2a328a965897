package metrics

// Attribute keys shared between the recorder and otel instruments.
const (
	AttrProvider = "provider"
	AttrSource   = "source"
	AttrLeague   = "league"
	AttrTask     = "task"
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
)
