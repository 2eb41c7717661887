package order

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// IntN is the slice of *rand.Rand the id generator needs
type IntN interface {
	IntN(n int) int
}

// NewID returns an id like S46-240101-1234: the UTC date of now and a random
// suffix in [1000, 9999]. Uniqueness is not checked; two orders on the same
// day collide with probability 1/9000.
func NewID(now time.Time, rng IntN) string {
	var n int
	if rng != nil {
		n = rng.IntN(9000)
	} else {
		n = rand.IntN(9000)
	}
	return fmt.Sprintf("S46-%s-%d", now.UTC().Format("060102"), 1000+n)
}
