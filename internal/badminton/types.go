package badminton

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidPlayerCount is returned by the schedule generators when the
// player list does not match the format's fixed size (8 or 12).
var ErrInvalidPlayerCount = errors.New("invalid player count")

const (
	ModeEightPlayers = "players8"
	ModeTwelveTeams  = "teams12"
)

// Side is one of the two competing parties in a game: a pair of partner
// players in 8-player mode, or a team's two members in 12-player mode.
type Side [2]string

// Team is an unordered pair of players. Identity is the pair itself, so
// members are kept in canonical (sorted) order.
type Team [2]string

// NewTeam canonicalizes a pair of players into a Team.
func NewTeam(a, b string) Team {
	if b < a {
		a, b = b, a
	}
	return Team{a, b}
}

// Team reads the side as a canonical Team.
func (s Side) Team() Team {
	return NewTeam(s[0], s[1])
}

type Game struct {
	ID     int
	Side1  Side
	Side2  Side
	Score1 int
	Score2 int
	Played bool
}

type Round struct {
	Number int
	Games  []Game
}

// Schedule is the full tournament fixture list. It is created once by a
// generator and mutated only through RecordScore. Teams is set in
// 12-player mode and nil in 8-player mode.
type Schedule struct {
	Rounds []Round
	Teams  []Team
}

// TeamMode reports whether the schedule was generated for the 12-player
// team format.
func (s *Schedule) TeamMode() bool {
	return len(s.Teams) > 0
}

// Game looks up a game by its sequential identifier.
func (s *Schedule) Game(gameID int) *Game {
	for i := range s.Rounds {
		for j := range s.Rounds[i].Games {
			if s.Rounds[i].Games[j].ID == gameID {
				return &s.Rounds[i].Games[j]
			}
		}
	}
	return nil
}

// RecordScore attaches a final score to a game. Scores must be
// non-negative; the caller validates them before handing them in.
func (s *Schedule) RecordScore(gameID, score1, score2 int) error {
	g := s.Game(gameID)
	if g == nil {
		return fmt.Errorf("no game with ID %d", gameID)
	}
	if score1 < 0 || score2 < 0 {
		return fmt.Errorf("scores must be non-negative, got %d and %d", score1, score2)
	}
	g.Score1 = score1
	g.Score2 = score2
	g.Played = true
	return nil
}

// Clone returns a deep copy of the schedule, so readers can work from a
// snapshot while the original keeps taking score updates.
func (s *Schedule) Clone() *Schedule {
	out := &Schedule{
		Teams:  append([]Team(nil), s.Teams...),
		Rounds: make([]Round, len(s.Rounds)),
	}
	for i, r := range s.Rounds {
		out.Rounds[i] = Round{Number: r.Number, Games: append([]Game(nil), r.Games...)}
	}
	return out
}

// Complete reports whether every game in the schedule has a recorded score.
func (s *Schedule) Complete() bool {
	for i := range s.Rounds {
		for _, g := range s.Rounds[i].Games {
			if !g.Played {
				return false
			}
		}
	}
	return true
}

// Players returns every player appearing in the schedule, sorted.
func (s *Schedule) Players() []string {
	seen := make(map[string]bool)
	for i := range s.Rounds {
		for _, g := range s.Rounds[i].Games {
			for _, p := range []string{g.Side1[0], g.Side1[1], g.Side2[0], g.Side2[1]} {
				seen[p] = true
			}
		}
	}
	players := make([]string, 0, len(seen))
	for p := range seen {
		players = append(players, p)
	}
	sort.Strings(players)
	return players
}

const (
	SideBetUnsettled = "unsettled"
	SideBetSide1Won  = "side1"
	SideBetSide2Won  = "side2"
)

// SideBet is an independent wager between two two-player sides. It is not
// tied to any scheduled game; the core never checks the named players
// against the schedule.
type SideBet struct {
	Side1   Side
	Side2   Side
	Stake   int
	Outcome string // SideBetUnsettled, SideBetSide1Won or SideBetSide2Won
}
