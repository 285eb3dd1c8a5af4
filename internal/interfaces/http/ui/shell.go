package ui

import (
	"strings"

	"github.com/fraudlens/console/pkg/constants"
)

// WithInitialPage stamps the page the shell script should activate on load.
// The page id must come from the shell's page registry; it is spliced into an
// HTML attribute verbatim.
func WithInitialPage(shell string, page constants.PageID) []byte {
	return []byte(strings.Replace(shell, `data-initial-page=""`,
		`data-initial-page="`+string(page)+`"`, 1))
}
