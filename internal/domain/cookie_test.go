package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCookie_NomCount(t *testing.T) {
	tests := []struct {
		name string
		kind string
		want int
	}{
		{name: "chocolate chip", kind: CookieChocolateChip, want: 10},
		{name: "oatmeal raisin", kind: CookieOatmealRaisin, want: 1},
		{name: "unknown kind", kind: "Snickerdoodle", want: DefaultNomCount},
		{name: "empty kind", kind: "", want: DefaultNomCount},
		{name: "lowercase known kind", kind: "chocolate chip", want: DefaultNomCount},
		{name: "uppercase known kind", kind: "OATMEAL RAISIN", want: DefaultNomCount},
		{name: "trailing space", kind: "Chocolate Chip ", want: DefaultNomCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cookie := NewCookie(tt.kind)

			assert.Equal(t, tt.want, cookie.NomCount())
			assert.Equal(t, tt.kind, cookie.Kind(), "Kind should be kept as given")
			assert.Equal(t, tt.want, ScoreFor(tt.kind), "ScoreFor should agree with NewCookie")
		})
	}
}

func TestCookie_NomCountIsStable(t *testing.T) {
	cookie := NewCookie(CookieChocolateChip)

	first := cookie.NomCount()
	second := cookie.NomCount()

	assert.Equal(t, first, second)
	assert.Equal(t, 10, second)
}

func TestMeal_Lines(t *testing.T) {
	meal := &Meal{Reaction: ReactionLike, Noms: "Om nom!"}

	assert.Equal(t, []string{ReactionLike, "Om nom!"}, meal.Lines())
}

func TestReactionText(t *testing.T) {
	// Consumers compare this byte for byte, including the double space
	assert.Equal(t, "Me no like this cookie...just kidding.  Me love all cookies!", ReactionDislike)
	assert.Equal(t, "Oh me like this cookie!", ReactionLike)
}
