package badminton

import "sort"

// PointCeiling is the assumed maximum rally score of a game. "Points lost"
// is the ceiling minus the side's score; extended games above 21 go
// negative on purpose rather than being clamped.
const PointCeiling = 21

type PlayerStats struct {
	TotalPoints int
	PointsLost  int
	GamesPlayed int
	Wins        int
	Losses      int
	GameScores  []int
}

type TeamStats struct {
	Team           Team
	GamesPlayed    int
	Wins           int
	Losses         int
	PointsScored   int
	PointsConceded int
	PointDiff      int
	PointsLost     int
	GameScores     []int
}

// ComputePlayerStatistics folds every scored game into per-player
// aggregates. Unscored games contribute nothing; players with no scored
// games are absent from the result. Game scores are appended in
// round/game order.
func ComputePlayerStatistics(s *Schedule) map[string]*PlayerStats {
	stats, _ := foldPlayerStats(s)
	return stats
}

// foldPlayerStats also returns player names in encounter order, which the
// payout ranking uses to break ties deterministically.
func foldPlayerStats(s *Schedule) (map[string]*PlayerStats, []string) {
	stats := make(map[string]*PlayerStats)
	var order []string

	get := func(player string) *PlayerStats {
		ps, ok := stats[player]
		if !ok {
			ps = &PlayerStats{}
			stats[player] = ps
			order = append(order, player)
		}
		return ps
	}

	for i := range s.Rounds {
		for _, g := range s.Rounds[i].Games {
			if !g.Played {
				continue
			}
			for _, p := range g.Side1 {
				accumulate(get(p), g.Score1, g.Score2)
			}
			for _, p := range g.Side2 {
				accumulate(get(p), g.Score2, g.Score1)
			}
		}
	}
	return stats, order
}

func accumulate(ps *PlayerStats, scored, conceded int) {
	ps.TotalPoints += scored
	ps.PointsLost += PointCeiling - scored
	ps.GamesPlayed++
	ps.GameScores = append(ps.GameScores, scored)
	if scored > conceded {
		ps.Wins++
	} else if scored < conceded {
		ps.Losses++
	}
	// A tie counts as neither a win nor a loss.
}

// ComputeTeamStatistics folds every scored game into per-team aggregates,
// keyed by the canonical (sorted) player pair, and returns them ranked by
// wins descending then point differential descending. Ties beyond that
// keep encounter order, so the ranking is deterministic and is the one
// the team payout uses.
func ComputeTeamStatistics(s *Schedule) []*TeamStats {
	byTeam := make(map[Team]*TeamStats)
	var ranked []*TeamStats

	get := func(team Team) *TeamStats {
		ts, ok := byTeam[team]
		if !ok {
			ts = &TeamStats{Team: team}
			byTeam[team] = ts
			ranked = append(ranked, ts)
		}
		return ts
	}

	fold := func(ts *TeamStats, scored, conceded int) {
		ts.GamesPlayed++
		ts.PointsScored += scored
		ts.PointsConceded += conceded
		ts.PointDiff = ts.PointsScored - ts.PointsConceded
		ts.PointsLost += PointCeiling - scored
		ts.GameScores = append(ts.GameScores, scored)
		if scored > conceded {
			ts.Wins++
		} else if scored < conceded {
			ts.Losses++
		}
	}

	for i := range s.Rounds {
		for _, g := range s.Rounds[i].Games {
			if !g.Played {
				continue
			}
			fold(get(g.Side1.Team()), g.Score1, g.Score2)
			fold(get(g.Side2.Team()), g.Score2, g.Score1)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Wins != ranked[j].Wins {
			return ranked[i].Wins > ranked[j].Wins
		}
		return ranked[i].PointDiff > ranked[j].PointDiff
	})
	return ranked
}
