package server

import (
	"fmt"
	"sync"

	"github.com/jyyae86/badminton-8somes/internal/badminton"
)

// Tournament is one live tournament: its immutable schedule plus the side
// bets placed against it.
type Tournament struct {
	ID       string
	Mode     string
	EntryFee int
	Schedule *badminton.Schedule
	SideBets []badminton.SideBet
}

// Store keeps every active tournament in memory. Each tournament owns an
// independent schedule, so the store lock is the only synchronization
// needed.
type Store struct {
	mu          sync.RWMutex
	tournaments map[string]*Tournament
}

func NewStore() *Store {
	return &Store{tournaments: make(map[string]*Tournament)}
}

func (st *Store) Add(t *Tournament) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.tournaments[t.ID] = t
}

// Snapshot returns a deep copy of the tournament. Readers never see the
// live schedule, so score updates racing a standings request only ever
// touch store-owned state under the lock.
func (st *Store) Snapshot(id string) (*Tournament, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	t, ok := st.tournaments[id]
	if !ok {
		return nil, false
	}
	bets := make([]badminton.SideBet, len(t.SideBets))
	copy(bets, t.SideBets)
	return &Tournament{
		ID:       t.ID,
		Mode:     t.Mode,
		EntryFee: t.EntryFee,
		Schedule: t.Schedule.Clone(),
		SideBets: bets,
	}, true
}

func (st *Store) RecordScore(id string, gameID, score1, score2 int) (badminton.Game, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	t, ok := st.tournaments[id]
	if !ok {
		return badminton.Game{}, fmt.Errorf("no tournament with ID %s", id)
	}
	if err := t.Schedule.RecordScore(gameID, score1, score2); err != nil {
		return badminton.Game{}, err
	}
	return *t.Schedule.Game(gameID), nil
}

// AddSideBet registers an unsettled bet and returns its index.
func (st *Store) AddSideBet(id string, bet badminton.SideBet) (int, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	t, ok := st.tournaments[id]
	if !ok {
		return 0, fmt.Errorf("no tournament with ID %s", id)
	}
	bet.Outcome = badminton.SideBetUnsettled
	t.SideBets = append(t.SideBets, bet)
	return len(t.SideBets) - 1, nil
}

func (st *Store) SettleSideBet(id string, index int, outcome string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	t, ok := st.tournaments[id]
	if !ok {
		return fmt.Errorf("no tournament with ID %s", id)
	}
	if index < 0 || index >= len(t.SideBets) {
		return fmt.Errorf("no side bet with index %d", index)
	}
	if outcome != badminton.SideBetSide1Won && outcome != badminton.SideBetSide2Won {
		return fmt.Errorf("invalid side bet outcome %q", outcome)
	}
	t.SideBets[index].Outcome = outcome
	return nil
}
