package temporal

import (
	"context"
	"fmt"
	"log"

	"github.com/jyyae86/badminton-8somes/internal/badminton"
	"github.com/jyyae86/badminton-8somes/internal/db"
)

type SettleInput struct {
	TournamentID string
	EntryFee     int
	Schedule     *badminton.Schedule
	SideBets     []badminton.SideBet
}

// GenerateScheduleActivity builds the tournament's schedule, persists it
// and announces it on JetStream.
func GenerateScheduleActivity(ctx context.Context, input TournamentInput) (*badminton.Schedule, error) {
	log.Printf("Starting GenerateScheduleActivity for tournament %s", input.TournamentID)

	var schedule *badminton.Schedule
	var err error
	switch input.Mode {
	case badminton.ModeEightPlayers:
		schedule, err = badminton.GenerateEightPlayerSchedule(input.Players)
	case badminton.ModeTwelveTeams:
		schedule, err = badminton.GenerateTwelvePlayerSchedule(input.Players, input.Teams)
	default:
		return nil, fmt.Errorf("unknown tournament mode %q", input.Mode)
	}
	if err != nil {
		return nil, err
	}

	if gdb := GetDB(); gdb != nil {
		if _, err := db.SaveSchedule(gdb, input.TournamentID, input.Mode, input.EntryFee, schedule); err != nil {
			log.Printf("Error persisting schedule for tournament %s: %v", input.TournamentID, err)
		}
	}
	if js := GetJetStream(); js != nil {
		if err := badminton.SendScheduleUpdateToNATS(js, input.TournamentID, schedule); err != nil {
			log.Printf("Error publishing schedule for tournament %s: %v", input.TournamentID, err)
		}
	}

	log.Printf("Completed GenerateScheduleActivity for tournament %s", input.TournamentID)
	return schedule, nil
}

// PublishStandingsActivity recomputes the standings from the current
// schedule state and publishes them.
func PublishStandingsActivity(ctx context.Context, tournamentID string, schedule *badminton.Schedule) error {
	var standings interface{}
	if schedule.TeamMode() {
		standings = badminton.ComputeTeamStatistics(schedule)
	} else {
		standings = badminton.ComputePlayerStatistics(schedule)
	}

	if js := GetJetStream(); js != nil {
		if err := badminton.SendStandingsToNATS(js, tournamentID, standings); err != nil {
			return err
		}
	}
	return nil
}

// SettleTournamentActivity computes the final settlement, stores the
// payout rows and publishes the result.
func SettleTournamentActivity(ctx context.Context, input SettleInput) (map[string]int, error) {
	log.Printf("Starting SettleTournamentActivity for tournament %s", input.TournamentID)

	payouts := badminton.ComputePayoutsWithSideBets(input.Schedule, input.EntryFee, input.SideBets)

	if gdb := GetDB(); gdb != nil {
		if err := db.SavePayouts(gdb, input.TournamentID, payouts); err != nil {
			log.Printf("Error persisting payouts for tournament %s: %v", input.TournamentID, err)
		}
	}
	if js := GetJetStream(); js != nil {
		if err := badminton.SendSettlementToNATS(js, input.TournamentID, payouts); err != nil {
			log.Printf("Error publishing settlement for tournament %s: %v", input.TournamentID, err)
		}
	}

	log.Printf("Completed SettleTournamentActivity for tournament %s", input.TournamentID)
	return payouts, nil
}
