package monster

import (
	"fmt"
	"io"

	"github.com/osse101/CookieMonster_Go/internal/domain"
)

// WriteMeal writes the meal narration to w, one line each for the reaction and the noms.
func WriteMeal(w io.Writer, meal *domain.Meal) error {
	if meal == nil {
		return domain.ErrNilMeal
	}

	for _, line := range meal.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf(ErrFmtWriteMealFailed, err)
		}
	}
	return nil
}
