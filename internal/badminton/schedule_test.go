package badminton

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func eightPlayers() []string {
	return []string{"Alice", "Bob", "Charlie", "David", "Erin", "Frank", "Grace", "Heidi"}
}

func twelvePlayers() []string {
	players := make([]string, 12)
	for i := range players {
		players[i] = fmt.Sprintf("player%d", i+1)
	}
	return players
}

func TestShufflePreservesElements(t *testing.T) {
	players := eightPlayers()
	original := append([]string(nil), players...)

	out := shuffled(rand.New(rand.NewSource(7)), players)

	assert.Equal(t, original, players, "Input must not be modified")
	assert.ElementsMatch(t, original, out, "Output must hold the same elements")
}

func TestShuffleDeterministicWithSeed(t *testing.T) {
	first := shuffled(rand.New(rand.NewSource(42)), eightPlayers())
	second := shuffled(rand.New(rand.NewSource(42)), eightPlayers())

	assert.Equal(t, first, second, "Same seed must give the same permutation")
}

func TestGenerateEightPlayerScheduleStructure(t *testing.T) {
	schedule, err := GenerateEightPlayerSchedule(eightPlayers())
	assert.NoError(t, err)
	assert.False(t, schedule.TeamMode())
	assert.Len(t, schedule.Rounds, 7, "Should have 7 rounds")

	wantID := 1
	for i, round := range schedule.Rounds {
		assert.Equal(t, i+1, round.Number)
		assert.Len(t, round.Games, 2, "Each round should have 2 games")
		for _, g := range round.Games {
			assert.Equal(t, wantID, g.ID, "Game IDs should be sequential from 1")
			assert.False(t, g.Played)
			wantID++
		}
	}
}

func TestGenerateEightPlayerScheduleCoversAllPartnerships(t *testing.T) {
	schedule, err := GenerateEightPlayerSchedule(eightPlayers())
	assert.NoError(t, err)

	partnerships := make(map[Team]int)
	appearances := make(map[string]int)
	for _, round := range schedule.Rounds {
		inRound := make(map[string]int)
		for _, g := range round.Games {
			partnerships[g.Side1.Team()]++
			partnerships[g.Side2.Team()]++
			for _, p := range []string{g.Side1[0], g.Side1[1], g.Side2[0], g.Side2[1]} {
				appearances[p]++
				inRound[p]++
			}
		}
		for player, n := range inRound {
			assert.Equal(t, 1, n, "Player %s must appear once per round", player)
		}
	}

	assert.Len(t, partnerships, 28, "All 28 pairs must partner up")
	for pair, n := range partnerships {
		assert.Equal(t, 1, n, "Pair %v must partner exactly once", pair)
	}
	for player, n := range appearances {
		assert.Equal(t, 7, n, "Player %s must play 7 games", player)
	}
}

func TestGenerateEightPlayerScheduleRejectsWrongCount(t *testing.T) {
	for _, n := range []int{0, 7, 9, 12} {
		players := make([]string, n)
		for i := range players {
			players[i] = fmt.Sprintf("player%d", i+1)
		}
		_, err := GenerateEightPlayerSchedule(players)
		assert.ErrorIs(t, err, ErrInvalidPlayerCount, "%d players must be rejected", n)
	}
}

func TestGenerateTwelvePlayerScheduleStructure(t *testing.T) {
	schedule, err := GenerateTwelvePlayerSchedule(twelvePlayers(), nil)
	assert.NoError(t, err)
	assert.True(t, schedule.TeamMode())
	assert.Len(t, schedule.Rounds, 5, "Should have 5 rounds")
	assert.Len(t, schedule.Teams, 6, "Should have 6 teams")

	members := make(map[string]int)
	for _, team := range schedule.Teams {
		members[team[0]]++
		members[team[1]]++
	}
	assert.Len(t, members, 12, "Teams must cover all 12 players")
	for player, n := range members {
		assert.Equal(t, 1, n, "Player %s must be on exactly one team", player)
	}

	wantID := 1
	for i, round := range schedule.Rounds {
		assert.Equal(t, i+1, round.Number)
		assert.Len(t, round.Games, 3, "Each round should have 3 games")
		for _, g := range round.Games {
			assert.Equal(t, wantID, g.ID)
			wantID++
		}
	}
}

func TestGenerateTwelvePlayerScheduleCoversAllMatchups(t *testing.T) {
	schedule, err := GenerateTwelvePlayerSchedule(twelvePlayers(), nil)
	assert.NoError(t, err)

	type matchup [2]Team
	matchups := make(map[matchup]int)
	games := make(map[Team]int)
	for _, round := range schedule.Rounds {
		inRound := make(map[Team]int)
		for _, g := range round.Games {
			t1, t2 := g.Side1.Team(), g.Side2.Team()
			if t2[0] < t1[0] || (t2[0] == t1[0] && t2[1] < t1[1]) {
				t1, t2 = t2, t1
			}
			matchups[matchup{t1, t2}]++
			games[t1]++
			games[t2]++
			inRound[t1]++
			inRound[t2]++
		}
		for team, n := range inRound {
			assert.Equal(t, 1, n, "Team %v must play once per round", team)
		}
	}

	assert.Len(t, matchups, 15, "All 15 matchups must occur")
	for m, n := range matchups {
		assert.Equal(t, 1, n, "Matchup %v must occur exactly once", m)
	}
	for team, n := range games {
		assert.Equal(t, 5, n, "Team %v must play 5 games", team)
	}
}

func TestGenerateTwelvePlayerScheduleCustomTeams(t *testing.T) {
	players := twelvePlayers()
	custom := make([][2]string, 6)
	for i := range custom {
		custom[i] = [2]string{players[i], players[11-i]}
	}

	schedule, err := GenerateTwelvePlayerSchedule(players, custom)
	assert.NoError(t, err)

	want := make([]Team, 6)
	for i, pair := range custom {
		want[i] = NewTeam(pair[0], pair[1])
	}
	assert.Equal(t, want, schedule.Teams, "Custom partition must be used as-is")
}

func TestGenerateTwelvePlayerScheduleRejectsWrongCount(t *testing.T) {
	_, err := GenerateTwelvePlayerSchedule(twelvePlayers()[:11], nil)
	assert.ErrorIs(t, err, ErrInvalidPlayerCount)

	_, err = GenerateTwelvePlayerSchedule(twelvePlayers(), [][2]string{{"a", "b"}})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidPlayerCount, "A bad partition is not a player-count failure")
}

func TestScheduleCloneIsolation(t *testing.T) {
	schedule, err := GenerateTwelvePlayerSchedule(twelvePlayers(), nil)
	assert.NoError(t, err)

	snapshot := schedule.Clone()
	assert.Equal(t, schedule, snapshot)

	assert.NoError(t, schedule.RecordScore(1, 21, 15))
	assert.False(t, snapshot.Game(1).Played, "Scoring the original must not touch the clone")
	assert.True(t, schedule.Game(1).Played)
}

func TestRecordScore(t *testing.T) {
	schedule, err := GenerateEightPlayerSchedule(eightPlayers())
	assert.NoError(t, err)

	assert.NoError(t, schedule.RecordScore(3, 21, 18))
	g := schedule.Game(3)
	assert.True(t, g.Played)
	assert.Equal(t, 21, g.Score1)
	assert.Equal(t, 18, g.Score2)

	assert.Error(t, schedule.RecordScore(99, 21, 18), "Unknown game ID must fail")
	assert.Error(t, schedule.RecordScore(1, -1, 18), "Negative scores must fail")
	assert.False(t, schedule.Complete())
}
