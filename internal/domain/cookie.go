package domain

// Cookie is a single consumable in a monster's jar.
// The nom count is fixed when the cookie is baked and never changes.
type Cookie struct {
	kind     string
	nomCount int
}

// cookieNomCounts maps known kinds to their nom count.
// Kinds missing from the table fall back to DefaultNomCount.
var cookieNomCounts = map[string]int{
	CookieChocolateChip: 10,
	CookieOatmealRaisin: 1,
}

// NewCookie bakes a cookie of the given kind.
// Any kind is accepted; unknown kinds score DefaultNomCount.
func NewCookie(kind string) *Cookie {
	return &Cookie{
		kind:     kind,
		nomCount: ScoreFor(kind),
	}
}

// ScoreFor returns the nom count for a cookie kind.
// Matching is exact, so "chocolate chip" is an unknown kind.
func ScoreFor(kind string) int {
	if count, ok := cookieNomCounts[kind]; ok {
		return count
	}
	return DefaultNomCount
}

// Kind returns the cookie kind label
func (c *Cookie) Kind() string {
	return c.kind
}

// NomCount returns how many noms the cookie is worth
func (c *Cookie) NomCount() int {
	return c.nomCount
}
