// Package draw implements the weekly card selection: a bounded,
// optionally domain-balanced random subset of the non-Ace deck.
package draw

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/josephgoksu/solventdeck/internal/dateutil"
	"github.com/josephgoksu/solventdeck/internal/deck"
	"github.com/josephgoksu/solventdeck/models"
)

// ErrEmptyPool signals that the deck holds no drawable (non-Ace) cards.
// The caller leaves the previous draw untouched and shows guidance instead.
var ErrEmptyPool = errors.New("no drawable cards in the deck")

// Allowed weekly draw sizes.
const (
	MinCount = 3
	MaxCount = 5
)

// Weekly selects up to count cards from the deck's non-Ace pool.
//
// When ensureBalance is set, the first phase walks the suits in fixed order
// and picks one card uniformly at random from each suit that has any,
// stopping once count is reached. The second phase fills remaining slots by
// sampling the pool uniformly without replacement, skipping ids already
// selected. Selection order is insertion order: balance picks first.
//
// The result never exceeds count, never contains duplicate ids, never
// contains an Ace, and its week start is the Monday of now's local week.
func Weekly(cards []models.Card, count int, ensureBalance bool, rng *rand.Rand, now time.Time) (models.Draw, error) {
	if count < MinCount || count > MaxCount {
		return models.Draw{}, fmt.Errorf("draw count must be between %d and %d, got %d", MinCount, MaxCount, count)
	}

	pool := deck.Pool(cards)
	if len(pool) == 0 {
		return models.Draw{}, ErrEmptyPool
	}

	selected := make([]models.Card, 0, count)
	picked := make(map[string]bool, count)

	if ensureBalance {
		bySuit := make(map[models.Suit][]models.Card, 4)
		for _, c := range pool {
			bySuit[c.Suit] = append(bySuit[c.Suit], c)
		}
		for _, s := range models.Suits() {
			if len(selected) >= count {
				break
			}
			candidates := bySuit[s]
			if len(candidates) == 0 {
				continue
			}
			c := candidates[rng.Intn(len(candidates))]
			selected = append(selected, c)
			picked[c.ID] = true
		}
	}

	// Fill phase: sample without replacement from a working copy. Balance
	// picks were not removed from the pool, so skip already-selected ids.
	working := make([]models.Card, len(pool))
	copy(working, pool)
	for len(selected) < count && len(working) > 0 {
		i := rng.Intn(len(working))
		c := working[i]
		working = append(working[:i], working[i+1:]...)
		if picked[c.ID] {
			continue
		}
		selected = append(selected, c)
		picked[c.ID] = true
	}

	ids := make([]string, len(selected))
	for i, c := range selected {
		ids[i] = c.ID
	}
	return models.Draw{
		WeekStart: dateutil.FormatLocal(dateutil.StartOfWeek(now)),
		Selected:  ids,
	}, nil
}
