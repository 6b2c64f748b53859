package badminton

import "sort"

// Fixed prize tables, same currency unit as the entry fee. With the
// standard fee of 2 the books balance exactly: 8 players pay 16 and the
// player prizes total 16; 12 players pay 24 and the per-player team
// prizes total 24.
var (
	playerPrizes = [3]int{8, 6, 2}
	teamPrizes   = [3]int{6, 4, 2}
)

// ComputePlayerPayouts settles an 8-player tournament: every player who
// appears in a scored game owes the entry fee, and the three players with
// the fewest points lost collect the fixed prizes on top. Ranking ties
// keep encounter order.
func ComputePlayerPayouts(s *Schedule, entryFee int) map[string]int {
	stats, order := foldPlayerStats(s)

	ranked := make([]string, len(order))
	copy(ranked, order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return stats[ranked[i]].PointsLost < stats[ranked[j]].PointsLost
	})

	payouts := make(map[string]int, len(ranked))
	for rank, player := range ranked {
		net := -entryFee
		if rank < len(playerPrizes) {
			net += playerPrizes[rank]
		}
		payouts[player] = net
	}
	return payouts
}

// ComputeTeamPayouts settles a 12-player tournament using the team
// ranking from ComputeTeamStatistics. Prizes are per player, so both
// members of a placing team net the same amount.
func ComputeTeamPayouts(s *Schedule, entryFee int) map[string]int {
	ranked := ComputeTeamStatistics(s)

	payouts := make(map[string]int, 2*len(ranked))
	for rank, ts := range ranked {
		net := -entryFee
		if rank < len(teamPrizes) {
			net += teamPrizes[rank]
		}
		payouts[ts.Team[0]] = net
		payouts[ts.Team[1]] = net
	}
	return payouts
}

// ComputeSideBetTotals sums settled side bets per player: the stake is
// credited to each winner and debited from each loser. Unsettled bets
// contribute nothing.
func ComputeSideBetTotals(bets []SideBet) map[string]int {
	totals := make(map[string]int)
	for _, bet := range bets {
		var winners, losers Side
		switch bet.Outcome {
		case SideBetSide1Won:
			winners, losers = bet.Side1, bet.Side2
		case SideBetSide2Won:
			winners, losers = bet.Side2, bet.Side1
		default:
			continue
		}
		for _, p := range winners {
			totals[p] += bet.Stake
		}
		for _, p := range losers {
			totals[p] -= bet.Stake
		}
	}
	return totals
}

// ComputePayoutsWithSideBets overlays side-bet totals on the tournament
// settlement. The schedule's mode picks the player or team payout.
func ComputePayoutsWithSideBets(s *Schedule, entryFee int, bets []SideBet) map[string]int {
	var payouts map[string]int
	if s.TeamMode() {
		payouts = ComputeTeamPayouts(s, entryFee)
	} else {
		payouts = ComputePlayerPayouts(s, entryFee)
	}
	for player, amount := range ComputeSideBetTotals(bets) {
		payouts[player] += amount
	}
	return payouts
}
