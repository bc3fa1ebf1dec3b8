package explore

import "github.com/katalvlaran/valvenet/activation"

// cacheKey identifies states whose futures are identical: same position,
// same opened set, same minute. Among them only the one that released the
// most matters.
type cacheKey struct {
	at      int
	minutes int
	set     activation.Set
}

// cache is the memo of one Explore call. States with the same set always
// belong to the same level, so the cache only ever needs the level being
// merged and is reset between levels.
type cache struct {
	slots map[cacheKey]int // key → arena index
}

func newCache() *cache {
	return &cache{slots: make(map[cacheKey]int)}
}

func (c *cache) reset() { clear(c.slots) }

// lookup returns the arena index of the state already stored under s's key.
func (c *cache) lookup(s State) (int, bool) {
	i, ok := c.slots[cacheKey{at: s.At, minutes: s.Minutes, set: s.Set}]
	return i, ok
}

func (c *cache) store(s State, idx int) {
	c.slots[cacheKey{at: s.At, minutes: s.Minutes, set: s.Set}] = idx
}
