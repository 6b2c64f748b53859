package badminton

import (
	"math/rand"
	"time"
)

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// shuffled returns a copy of players in a uniformly random permutation
// (Fisher–Yates). The input slice is left untouched.
func shuffled(r *rand.Rand, players []string) []string {
	out := make([]string, len(players))
	copy(out, players)
	for i := len(out) - 1; i >= 1; i-- {
		j := r.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
