package monster

import (
	"context"
	"fmt"

	"github.com/osse101/CookieMonster_Go/internal/domain"
	"github.com/osse101/CookieMonster_Go/internal/event"
	"github.com/osse101/CookieMonster_Go/internal/logger"
	"github.com/osse101/CookieMonster_Go/internal/utils"
)

// Monster owns a jar of cookies and eats them oldest first.
// A Monster is not safe for concurrent use.
type Monster struct {
	jar []*domain.Cookie
	bus event.Bus
}

// NewMonster creates a monster whose jar holds one seed cookie.
// bus may be nil, in which case no events are published.
func NewMonster(bus event.Bus) *Monster {
	return &Monster{
		jar: []*domain.Cookie{domain.NewCookie(domain.SeedCookieKind)},
		bus: bus,
	}
}

// Remaining returns how many cookies are left in the jar
func (m *Monster) Remaining() int {
	return len(m.jar)
}

// Eat eats the earliest cookie in the jar and returns the narration for it.
// Nothing is written; pass the meal to WriteMeal for that.
// Returns domain.ErrCookieJarEmpty when the jar has nothing left.
func (m *Monster) Eat(ctx context.Context) (*domain.Meal, error) {
	log := logger.FromContext(ctx)

	if len(m.jar) == 0 {
		log.Warn(LogMsgCookieJarEmpty)
		return nil, fmt.Errorf("%w: cannot eat", domain.ErrCookieJarEmpty)
	}

	cookie := m.jar[0]
	reaction := React(cookie)
	m.jar = utils.RemoveCookie(m.jar, cookie)

	meal := &domain.Meal{
		Kind:     cookie.Kind(),
		NomCount: cookie.NomCount(),
		Reaction: reaction,
		Noms:     NomLine(cookie),
	}

	// The cookie is gone either way; a failed publish only costs metrics
	if m.bus != nil {
		if err := m.bus.Publish(ctx, event.NewCookieEatenEvent(meal.Kind, meal.NomCount)); err != nil {
			log.Warn(LogMsgEventPublishFailed, "error", err, "kind", meal.Kind)
		}
	}

	log.Debug(LogMsgCookieEaten, "kind", meal.Kind, "nomCount", meal.NomCount, "remaining", len(m.jar))
	return meal, nil
}
