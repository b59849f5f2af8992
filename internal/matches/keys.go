package matches

import (
	"strings"

	"matchsight/internal/hashutil"
)

// CacheKey builds a canonical digest for a request so repeated analyses of
// the same fixture hit the cache regardless of name casing or whitespace.
func CacheKey(req *Request) string {
	if req == nil {
		return ""
	}
	return hashutil.HashStrings(
		canonical(req.Sport),
		canonical(req.Home),
		canonical(req.Away),
		canonical(req.League),
		canonical(req.MatchDate),
	)
}

func canonical(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
