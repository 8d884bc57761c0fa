//go:build !querykitdebug

package builder

import "github.com/blockberries/querykit/types"

func noteReplace(prev, next types.QueryKind) {}
