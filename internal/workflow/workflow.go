package temporal

import (
	"time"

	"github.com/jyyae86/badminton-8somes/internal/badminton"

	"go.temporal.io/sdk/workflow"
)

const (
	TaskQueue = "badminton-task-queue"

	SignalRecordScore   = "recordScore"
	SignalPlaceSideBet  = "placeSideBet"
	SignalSettleSideBet = "settleSideBet"
	SignalFinish        = "finish"
)

type TournamentInput struct {
	TournamentID string
	Mode         string
	Players      []string
	Teams        [][2]string
	EntryFee     int
}

type ScoreSignal struct {
	GameID int
	Score1 int
	Score2 int
}

type SideBetSignal struct {
	Bet badminton.SideBet
}

type SettleSideBetSignal struct {
	Index   int
	Outcome string
}

// TournamentWorkflow drives one tournament end to end: it generates the
// schedule, folds in score and side-bet signals as the games are played,
// republishes standings after every score, and settles the payouts once
// the schedule is complete or a finish signal arrives.
func TournamentWorkflow(ctx workflow.Context, input TournamentInput) (map[string]int, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute * 5,
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)
	logger := workflow.GetLogger(ctx)

	var schedule badminton.Schedule
	err := workflow.ExecuteActivity(ctx, GenerateScheduleActivity, input).Get(ctx, &schedule)
	if err != nil {
		return nil, err
	}

	scoreCh := workflow.GetSignalChannel(ctx, SignalRecordScore)
	placeBetCh := workflow.GetSignalChannel(ctx, SignalPlaceSideBet)
	settleBetCh := workflow.GetSignalChannel(ctx, SignalSettleSideBet)
	finishCh := workflow.GetSignalChannel(ctx, SignalFinish)

	var sideBets []badminton.SideBet
	finished := false

	for !finished && !schedule.Complete() {
		selector := workflow.NewSelector(ctx)

		selector.AddReceive(scoreCh, func(c workflow.ReceiveChannel, more bool) {
			var sig ScoreSignal
			c.Receive(ctx, &sig)
			if err := schedule.RecordScore(sig.GameID, sig.Score1, sig.Score2); err != nil {
				logger.Error("Rejected score signal", "gameID", sig.GameID, "error", err)
				return
			}
			err := workflow.ExecuteActivity(ctx, PublishStandingsActivity, input.TournamentID, &schedule).Get(ctx, nil)
			if err != nil {
				logger.Error("PublishStandings activity failed", "error", err)
			}
		})

		selector.AddReceive(placeBetCh, func(c workflow.ReceiveChannel, more bool) {
			var sig SideBetSignal
			c.Receive(ctx, &sig)
			sig.Bet.Outcome = badminton.SideBetUnsettled
			sideBets = append(sideBets, sig.Bet)
		})

		selector.AddReceive(settleBetCh, func(c workflow.ReceiveChannel, more bool) {
			var sig SettleSideBetSignal
			c.Receive(ctx, &sig)
			if sig.Index < 0 || sig.Index >= len(sideBets) {
				logger.Error("Rejected side bet settlement", "index", sig.Index)
				return
			}
			if sig.Outcome != badminton.SideBetSide1Won && sig.Outcome != badminton.SideBetSide2Won {
				logger.Error("Rejected side bet outcome", "outcome", sig.Outcome)
				return
			}
			sideBets[sig.Index].Outcome = sig.Outcome
		})

		selector.AddReceive(finishCh, func(c workflow.ReceiveChannel, more bool) {
			c.Receive(ctx, nil)
			finished = true
		})

		selector.Select(ctx)
	}

	settleInput := SettleInput{
		TournamentID: input.TournamentID,
		EntryFee:     input.EntryFee,
		Schedule:     &schedule,
		SideBets:     sideBets,
	}

	var payouts map[string]int
	err = workflow.ExecuteActivity(ctx, SettleTournamentActivity, settleInput).Get(ctx, &payouts)
	if err != nil {
		return nil, err
	}
	return payouts, nil
}
