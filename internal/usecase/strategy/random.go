package strategy

import (
	"math/rand"
	"time"

	"github.com/jtkrd/investment-game/internal/domain"
)

// Random picks MaxPicks symbols from a uniformly random permutation of the
// snapshot. The random source is injectable so tests can fix the seed.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random strategy around the given source.
// A nil source falls back to a time-seeded one.
func NewRandom(rng *rand.Rand) Random {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return Random{rng: rng}
}

// Name implements domain.SelectionStrategy
func (Random) Name() string {
	return "random"
}

// Select implements domain.SelectionStrategy
func (r Random) Select(snap *domain.Snapshot) []string {
	symbols := snap.Symbols()
	r.rng.Shuffle(len(symbols), func(i, j int) {
		symbols[i], symbols[j] = symbols[j], symbols[i]
	})
	return capPicks(symbols)
}
