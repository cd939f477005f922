package domain

// Cookie kind constants - exact labels, matched case-sensitively
const (
	CookieChocolateChip = "Chocolate Chip"
	CookieOatmealRaisin = "Oatmeal Raisin"
)

// DefaultNomCount is the nom count for any kind not in the score table
const DefaultNomCount = 5

// SeedCookieKind is the kind every new monster starts with
const SeedCookieKind = CookieChocolateChip

// ReactionThreshold is the lowest nom count a monster openly likes.
// Cookies below it get the "just kidding" reaction.
const ReactionThreshold = 3

// Narration text, matched byte for byte by consumers of the output
const (
	ReactionDislike = "Me no like this cookie...just kidding.  Me love all cookies!"
	ReactionLike    = "Oh me like this cookie!"

	NomPrefix = "Om"
	NomWord   = " nom"
	NomSuffix = "!"
)
