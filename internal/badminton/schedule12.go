package badminton

import (
	"fmt"
	"math/rand"
)

// GenerateTwelvePlayerSchedule builds a 5-round team round robin for
// exactly 12 players: 6 teams of 2, 3 games per round, every pair of teams
// meeting exactly once. Teams are formed by slicing a random permutation
// into consecutive pairs unless the caller supplies its own partition;
// a supplied partition must hold exactly 6 disjoint pairs (validated at
// the boundary, not here, beyond the count).
func GenerateTwelvePlayerSchedule(players []string, customTeams [][2]string) (*Schedule, error) {
	return generateTwelve(rng, players, customTeams)
}

func generateTwelve(r *rand.Rand, players []string, customTeams [][2]string) (*Schedule, error) {
	if len(players) != 12 {
		return nil, fmt.Errorf("%w: need exactly 12 players, got %d", ErrInvalidPlayerCount, len(players))
	}

	teams := make([]Team, 6)
	if customTeams != nil {
		if len(customTeams) != 6 {
			return nil, fmt.Errorf("need exactly 6 teams, got %d", len(customTeams))
		}
		for i, t := range customTeams {
			teams[i] = NewTeam(t[0], t[1])
		}
	} else {
		order := shuffled(r, players)
		for i := range teams {
			teams[i] = NewTeam(order[2*i], order[2*i+1])
		}
	}

	// Circle method: team 0 stays fixed, the other five rotate. Each
	// round pairs the rotation's ends symmetrically around team 0's
	// opponent, then moves the last entry to the front.
	rotation := []int{1, 2, 3, 4, 5}
	schedule := &Schedule{Teams: teams}
	gameID := 1
	for roundNum := 1; roundNum <= 5; roundNum++ {
		matchups := [3][2]int{
			{0, rotation[0]},
			{rotation[1], rotation[4]},
			{rotation[2], rotation[3]},
		}
		rnd := Round{Number: roundNum}
		for _, m := range matchups {
			rnd.Games = append(rnd.Games, Game{
				ID:    gameID,
				Side1: Side(teams[m[0]]),
				Side2: Side(teams[m[1]]),
			})
			gameID++
		}
		schedule.Rounds = append(schedule.Rounds, rnd)

		rotation = append([]int{rotation[4]}, rotation[:4]...)
	}
	return schedule, nil
}
