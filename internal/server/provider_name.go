package server

import (
	"fmt"
	"strings"

	"football-lines-service/internal/providers"
)

// normalizeProviderName returns a lower-cased provider name, deriving from
// the instance when not explicitly configured. Keeps naming consistent
// across metrics and logs.
func normalizeProviderName(raw string, provider providers.GameProvider) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
