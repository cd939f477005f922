package monster

import (
	"strings"

	"github.com/osse101/CookieMonster_Go/internal/domain"
)

// Nommer is anything with a nom count. *domain.Cookie satisfies it.
// NomLine only honours counts up to MaxNoms.
type Nommer interface {
	NomCount() int
}

// React returns the monster's reaction line for a cookie.
// It has no side effects.
func React(c Nommer) string {
	if c.NomCount() < domain.ReactionThreshold {
		return domain.ReactionDislike
	}
	return domain.ReactionLike
}

// NomLine returns "Om" followed by one " nom" per nom count, then "!".
// Counts are clamped to [0, MaxNoms].
func NomLine(c Nommer) string {
	n := c.NomCount()
	if n < 0 {
		n = 0
	}
	if n > MaxNoms {
		n = MaxNoms
	}

	var b strings.Builder
	b.Grow(len(domain.NomPrefix) + n*len(domain.NomWord) + len(domain.NomSuffix))
	b.WriteString(domain.NomPrefix)
	b.WriteString(strings.Repeat(domain.NomWord, n))
	b.WriteString(domain.NomSuffix)
	return b.String()
}
