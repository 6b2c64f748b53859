package badminton

import (
	"fmt"
	"math/rand"
)

// eightPlayerRounds is a 1-factorization of K8: 7 rounds, each splitting
// positions 0..7 into 4 disjoint partner pairs, grouped two pairs per game.
// Every unordered position pair partners up exactly once across the 14
// games, and every position plays once per round. Built by the circle
// method with position 7 fixed; kept as a verified literal table rather
// than derived at runtime.
var eightPlayerRounds = [7][2][2][2]int{
	{{{7, 0}, {1, 6}}, {{2, 5}, {3, 4}}},
	{{{7, 1}, {2, 0}}, {{3, 6}, {4, 5}}},
	{{{7, 2}, {3, 1}}, {{4, 0}, {5, 6}}},
	{{{7, 3}, {4, 2}}, {{5, 1}, {6, 0}}},
	{{{7, 4}, {5, 3}}, {{6, 2}, {0, 1}}},
	{{{7, 5}, {6, 4}}, {{0, 3}, {1, 2}}},
	{{{7, 6}, {0, 5}}, {{1, 4}, {2, 3}}},
}

// GenerateEightPlayerSchedule builds a 7-round social-doubles schedule for
// exactly 8 players: 2 games per round, every pair of players partnering
// exactly once over the 14 games. Player assignment to template positions
// is randomized, so repeated calls yield different schedules.
func GenerateEightPlayerSchedule(players []string) (*Schedule, error) {
	return generateEight(rng, players)
}

func generateEight(r *rand.Rand, players []string) (*Schedule, error) {
	if len(players) != 8 {
		return nil, fmt.Errorf("%w: need exactly 8 players, got %d", ErrInvalidPlayerCount, len(players))
	}

	order := shuffled(r, players)
	schedule := &Schedule{}
	gameID := 1
	for i, round := range eightPlayerRounds {
		rnd := Round{Number: i + 1}
		for _, game := range round {
			rnd.Games = append(rnd.Games, Game{
				ID:    gameID,
				Side1: Side{order[game[0][0]], order[game[0][1]]},
				Side2: Side{order[game[1][0]], order[game[1][1]]},
			})
			gameID++
		}
		schedule.Rounds = append(schedule.Rounds, rnd)
	}
	return schedule, nil
}
