package card

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

var ErrInsufficientData = errors.New("not enough labels for a card")

// Card holds the labels of one game, row-major.
type Card []string

// At returns the label drawn at row, col of a size x size grid.
func (c Card) At(row, col, size int) string {
	return c[row*size+col]
}

// Generate draws size*size labels from all without replacement. Each
// draw picks uniformly among the labels not chosen yet, so the result is
// the prefix of a Fisher-Yates shuffle. all is left untouched.
func Generate(all []string, size int, rng *rand.Rand) (Card, error) {
	cells := size * size
	if len(all) < cells {
		return nil, errors.Wrapf(ErrInsufficientData, "need %d, have %d", cells, len(all))
	}

	pool := make([]string, len(all))
	copy(pool, all)

	card := make(Card, 0, cells)
	for i := 0; i < cells; i++ {
		remaining := len(pool) - i
		j := i + rng.IntN(remaining)
		pool[i], pool[j] = pool[j], pool[i]
		card = append(card, pool[i])
	}
	return card, nil
}
