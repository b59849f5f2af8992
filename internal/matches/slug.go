package matches

import (
	"strings"

	"matchsight/internal/hashutil"
)

const slugHashLen = 8

// Slug formats a URL-safe identifier for a fixture, e.g.
// "arsenal-vs-chelsea-1a2b3c4d". The hash suffix disambiguates rematches
// across leagues and dates.
func Slug(req *Request) string {
	if req == nil {
		return ""
	}
	parts := []string{slugify(req.Home), "vs", slugify(req.Away)}
	suffix := hashutil.ShortHash(slugHashLen,
		canonical(req.Sport), canonical(req.Home), canonical(req.Away),
		canonical(req.League), canonical(req.MatchDate))
	parts = append(parts, suffix)
	return strings.Join(parts, "-")
}

func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
