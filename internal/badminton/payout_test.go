package badminton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scoredEightSchedule() *Schedule {
	// Points lost: Alice/Bob 0, Erin/Frank 3, Charlie/David 6, Grace/Heidi 11.
	s := &Schedule{Rounds: []Round{{Number: 1, Games: []Game{
		{ID: 1, Side1: Side{"Alice", "Bob"}, Side2: Side{"Charlie", "David"}},
		{ID: 2, Side1: Side{"Erin", "Frank"}, Side2: Side{"Grace", "Heidi"}},
	}}}}
	s.RecordScore(1, 21, 15)
	s.RecordScore(2, 18, 10)
	return s
}

func TestComputePlayerPayouts(t *testing.T) {
	payouts := ComputePlayerPayouts(scoredEightSchedule(), 2)

	assert.Equal(t, 6, payouts["Alice"], "1st: prize 8 minus fee 2")
	assert.Equal(t, 4, payouts["Bob"], "2nd: prize 6 minus fee 2")
	assert.Equal(t, 0, payouts["Erin"], "3rd: prize 2 minus fee 2")
	for _, player := range []string{"Frank", "Charlie", "David", "Grace", "Heidi"} {
		assert.Equal(t, -2, payouts[player], "%s pays the fee only", player)
	}

	total := 0
	for _, amount := range payouts {
		total += amount
	}
	assert.Equal(t, 0, total, "Settlement must net to zero")
}

func TestComputePlayerPayoutsFullScheduleNetsToZero(t *testing.T) {
	schedule, err := GenerateEightPlayerSchedule(eightPlayers())
	assert.NoError(t, err)
	for _, round := range schedule.Rounds {
		for _, g := range round.Games {
			schedule.RecordScore(g.ID, 21, (g.ID*5)%21)
		}
	}

	payouts := ComputePlayerPayouts(schedule, 2)
	assert.Len(t, payouts, 8)

	total := 0
	for _, amount := range payouts {
		total += amount
	}
	assert.Equal(t, 0, total)
}

func TestComputeTeamPayouts(t *testing.T) {
	players := twelvePlayers()
	custom := make([][2]string, 6)
	for i := range custom {
		custom[i] = [2]string{players[2*i], players[2*i+1]}
	}
	schedule, err := GenerateTwelvePlayerSchedule(players, custom)
	assert.NoError(t, err)

	teamIndex := make(map[Team]int)
	for i, team := range schedule.Teams {
		teamIndex[team] = i
	}
	for _, round := range schedule.Rounds {
		for _, g := range round.Games {
			if teamIndex[g.Side1.Team()] < teamIndex[g.Side2.Team()] {
				schedule.RecordScore(g.ID, 21, 15)
			} else {
				schedule.RecordScore(g.ID, 15, 21)
			}
		}
	}

	payouts := ComputeTeamPayouts(schedule, 2)
	assert.Len(t, payouts, 12)

	wantByRank := []int{4, 2, 0, -2, -2, -2}
	for rank, team := range schedule.Teams {
		assert.Equal(t, wantByRank[rank], payouts[team[0]], "Team %d member", rank+1)
		assert.Equal(t, wantByRank[rank], payouts[team[1]], "Teammates net the same amount")
	}

	total := 0
	for _, amount := range payouts {
		total += amount
	}
	assert.Equal(t, 0, total, "Settlement must net to zero")
}

func TestComputeSideBetTotals(t *testing.T) {
	bets := []SideBet{{
		Side1:   Side{"Alice", "Bob"},
		Side2:   Side{"Charlie", "David"},
		Stake:   5,
		Outcome: SideBetSide1Won,
	}}

	totals := ComputeSideBetTotals(bets)
	assert.Equal(t, 5, totals["Alice"])
	assert.Equal(t, 5, totals["Bob"])
	assert.Equal(t, -5, totals["Charlie"])
	assert.Equal(t, -5, totals["David"])
}

func TestComputeSideBetTotalsUnsettled(t *testing.T) {
	bets := []SideBet{{
		Side1:   Side{"Alice", "Bob"},
		Side2:   Side{"Charlie", "David"},
		Stake:   5,
		Outcome: SideBetUnsettled,
	}}

	assert.Empty(t, ComputeSideBetTotals(bets), "Unsettled bets contribute nothing")
}

func TestComputeSideBetTotalsAccumulate(t *testing.T) {
	bets := []SideBet{
		{Side1: Side{"Alice", "Bob"}, Side2: Side{"Charlie", "David"}, Stake: 5, Outcome: SideBetSide2Won},
		{Side1: Side{"Alice", "Erin"}, Side2: Side{"Frank", "Grace"}, Stake: 3, Outcome: SideBetSide1Won},
	}

	totals := ComputeSideBetTotals(bets)
	assert.Equal(t, -2, totals["Alice"], "-5 from the first bet, +3 from the second")
	assert.Equal(t, 5, totals["Charlie"])
	assert.Equal(t, -3, totals["Frank"])
}

func TestComputePayoutsWithSideBets(t *testing.T) {
	bets := []SideBet{{
		Side1:   Side{"Grace", "Heidi"},
		Side2:   Side{"Alice", "Bob"},
		Stake:   5,
		Outcome: SideBetSide1Won,
	}}

	payouts := ComputePayoutsWithSideBets(scoredEightSchedule(), 2, bets)
	assert.Equal(t, 1, payouts["Alice"], "6 from the tournament, -5 from the bet")
	assert.Equal(t, 3, payouts["Grace"], "-2 from the tournament, +5 from the bet")

	total := 0
	for _, amount := range payouts {
		total += amount
	}
	assert.Equal(t, 0, total, "The overlay keeps the books balanced")
}

func TestComputePayoutsWithSideBetsTeamMode(t *testing.T) {
	players := twelvePlayers()
	custom := make([][2]string, 6)
	for i := range custom {
		custom[i] = [2]string{players[2*i], players[2*i+1]}
	}
	schedule, err := GenerateTwelvePlayerSchedule(players, custom)
	assert.NoError(t, err)

	teamIndex := make(map[Team]int)
	for i, team := range schedule.Teams {
		teamIndex[team] = i
	}
	for _, round := range schedule.Rounds {
		for _, g := range round.Games {
			if teamIndex[g.Side1.Team()] < teamIndex[g.Side2.Team()] {
				schedule.RecordScore(g.ID, 21, 15)
			} else {
				schedule.RecordScore(g.ID, 15, 21)
			}
		}
	}

	// The last-placed team wins a side bet off the winning team.
	bets := []SideBet{{
		Side1:   Side(schedule.Teams[5]),
		Side2:   Side(schedule.Teams[0]),
		Stake:   3,
		Outcome: SideBetSide1Won,
	}}

	payouts := ComputePayoutsWithSideBets(schedule, 2, bets)
	assert.Len(t, payouts, 12)
	assert.Equal(t, 1, payouts[schedule.Teams[0][0]], "1st place: 6-2 from the tournament, -3 from the bet")
	assert.Equal(t, 1, payouts[schedule.Teams[5][0]], "Last place: -2 from the tournament, +3 from the bet")

	total := 0
	for _, amount := range payouts {
		total += amount
	}
	assert.Equal(t, 0, total, "Team settlement with side bets must net to zero")
}
