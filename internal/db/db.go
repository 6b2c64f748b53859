package db

import (
	"fmt"
	"log"

	"github.com/jyyae86/badminton-8somes/config"
	"github.com/jyyae86/badminton-8somes/internal/badminton"
	"github.com/jyyae86/badminton-8somes/internal/db/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to the database: %v", err)
		return nil, err
	}
	log.Println("Connected to the database")
	return DB, nil
}

func Migrate() error {
	err := DB.AutoMigrate(&models.Tournament{}, &models.TournamentPlayer{}, &models.Game{}, &models.SideBet{}, &models.Payout{})
	if err != nil {
		log.Printf("Error migrating database: %v", err)
		return err
	}
	log.Println("Database migration completed")
	return nil
}

func GetDB() *gorm.DB {
	return DB
}

// SaveSchedule stores a freshly generated tournament with its players and
// unscored games.
func SaveSchedule(gdb *gorm.DB, uuid, mode string, entryFee int, schedule *badminton.Schedule) (*models.Tournament, error) {
	tournament := &models.Tournament{UUID: uuid, Mode: mode, EntryFee: entryFee}
	if err := gdb.Create(tournament).Error; err != nil {
		return nil, fmt.Errorf("failed to create tournament %s: %w", uuid, err)
	}

	teamNumbers := make(map[string]int)
	for i, team := range schedule.Teams {
		teamNumbers[team[0]] = i + 1
		teamNumbers[team[1]] = i + 1
	}
	for _, name := range schedule.Players() {
		player := models.TournamentPlayer{
			TournamentID: tournament.ID,
			Name:         name,
			TeamNumber:   teamNumbers[name],
		}
		if err := gdb.Create(&player).Error; err != nil {
			return nil, fmt.Errorf("failed to create player %s: %w", name, err)
		}
	}

	for _, round := range schedule.Rounds {
		for _, g := range round.Games {
			game := models.Game{
				TournamentID: tournament.ID,
				GameNumber:   g.ID,
				RoundNumber:  round.Number,
				Side1PlayerA: g.Side1[0],
				Side1PlayerB: g.Side1[1],
				Side2PlayerA: g.Side2[0],
				Side2PlayerB: g.Side2[1],
			}
			if err := gdb.Create(&game).Error; err != nil {
				return nil, fmt.Errorf("failed to create game %d: %w", g.ID, err)
			}
		}
	}

	return tournament, nil
}

// SaveScore updates the persisted row for one game of a tournament.
func SaveScore(gdb *gorm.DB, uuid string, gameID, score1, score2 int) error {
	var tournament models.Tournament
	if err := gdb.Where("uuid = ?", uuid).First(&tournament).Error; err != nil {
		return fmt.Errorf("failed to load tournament %s: %w", uuid, err)
	}
	updates := map[string]interface{}{"score1": score1, "score2": score2, "played": true}
	err := gdb.Model(&models.Game{}).
		Where("tournament_id = ? AND game_number = ?", tournament.ID, gameID).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to save score for game %d: %w", gameID, err)
	}
	return nil
}

// SavePayouts stores the final settlement and marks the tournament settled.
func SavePayouts(gdb *gorm.DB, uuid string, payouts map[string]int) error {
	var tournament models.Tournament
	if err := gdb.Where("uuid = ?", uuid).First(&tournament).Error; err != nil {
		return fmt.Errorf("failed to load tournament %s: %w", uuid, err)
	}
	for name, amount := range payouts {
		row := models.Payout{TournamentID: tournament.ID, PlayerName: name, Amount: amount}
		if err := gdb.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to save payout for %s: %w", name, err)
		}
	}
	return gdb.Model(&tournament).Update("settled", true).Error
}
