//go:build querykitdebug

package builder

import (
	"log/slog"

	"github.com/blockberries/querykit/types"
)

// noteReplace warns when a query kind overwrites an earlier one.
// Only compiled with -tags querykitdebug.
func noteReplace(prev, next types.QueryKind) {
	if prev == types.KindNone {
		return
	}
	slog.Default().Warn("query kind replaced",
		"component", "querykit/builder",
		"previous", prev.String(),
		"next", next.String(),
	)
}
