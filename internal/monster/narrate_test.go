package monster

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CookieMonster_Go/internal/domain"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("stdout closed")
}

func TestWriteMeal(t *testing.T) {
	t.Run("writes reaction then noms", func(t *testing.T) {
		var out bytes.Buffer
		meal := &domain.Meal{Reaction: domain.ReactionLike, Noms: "Om nom nom!"}

		err := WriteMeal(&out, meal)

		assert.NoError(t, err)
		assert.Equal(t, "Oh me like this cookie!\nOm nom nom!\n", out.String())
	})

	t.Run("nil meal", func(t *testing.T) {
		var out bytes.Buffer

		err := WriteMeal(&out, nil)

		assert.ErrorIs(t, err, domain.ErrNilMeal)
		assert.Empty(t, out.String())
	})

	t.Run("write failure is wrapped", func(t *testing.T) {
		meal := &domain.Meal{Reaction: domain.ReactionLike, Noms: "Om!"}

		err := WriteMeal(failingWriter{}, meal)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write meal")
	})
}
