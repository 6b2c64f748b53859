package badminton

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

func SendScheduleUpdateToNATS(js nats.JetStreamContext, tournamentID string, schedule *Schedule) error {
	subject := fmt.Sprintf("badminton.tournament.%s.schedule", tournamentID)

	messageBytes, err := json.Marshal(schedule)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule for tournament %s: %w", tournamentID, err)
	}

	if _, err := js.Publish(subject, messageBytes); err != nil {
		return fmt.Errorf("failed to publish schedule to JetStream for tournament %s: %w", tournamentID, err)
	}

	return nil
}

func SendGameUpdateToNATS(js nats.JetStreamContext, tournamentID string, game *Game) error {
	subject := fmt.Sprintf("badminton.tournament.%s.game.%d", tournamentID, game.ID)

	messageBytes, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("failed to marshal game %d for tournament %s: %w", game.ID, tournamentID, err)
	}

	if _, err := js.Publish(subject, messageBytes); err != nil {
		return fmt.Errorf("failed to publish game %d to JetStream for tournament %s: %w", game.ID, tournamentID, err)
	}

	return nil
}

func SendStandingsToNATS(js nats.JetStreamContext, tournamentID string, standings interface{}) error {
	subject := fmt.Sprintf("badminton.tournament.%s.standings", tournamentID)

	messageBytes, err := json.Marshal(standings)
	if err != nil {
		return fmt.Errorf("failed to marshal standings for tournament %s: %w", tournamentID, err)
	}

	if _, err := js.Publish(subject, messageBytes); err != nil {
		return fmt.Errorf("failed to publish standings to JetStream for tournament %s: %w", tournamentID, err)
	}

	return nil
}

func SendSettlementToNATS(js nats.JetStreamContext, tournamentID string, payouts map[string]int) error {
	subject := fmt.Sprintf("badminton.tournament.%s.settlement", tournamentID)

	messageBytes, err := json.Marshal(payouts)
	if err != nil {
		return fmt.Errorf("failed to marshal settlement for tournament %s: %w", tournamentID, err)
	}

	if _, err := js.Publish(subject, messageBytes); err != nil {
		return fmt.Errorf("failed to publish settlement to JetStream for tournament %s: %w", tournamentID, err)
	}

	return nil
}
