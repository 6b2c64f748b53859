package models

import (
	"time"
)

type Tournament struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	UUID      string    `gorm:"size:36;not null;unique"`
	Mode      string    `gorm:"size:20;not null"`
	EntryFee  int       `gorm:"not null"`
	Settled   bool      `gorm:"default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	DeletedAt time.Time `gorm:"index"`
}

type TournamentPlayer struct {
	ID           uint       `gorm:"primaryKey;autoIncrement"`
	TournamentID uint       `gorm:"not null"`
	Tournament   Tournament `gorm:"foreignKey:TournamentID"`
	Name         string     `gorm:"size:100;not null"`
	TeamNumber   int        `gorm:"default:0"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`
	DeletedAt    time.Time  `gorm:"index"`
}

type Game struct {
	ID           uint       `gorm:"primaryKey;autoIncrement"`
	TournamentID uint       `gorm:"not null"`
	Tournament   Tournament `gorm:"foreignKey:TournamentID"`
	GameNumber   int        `gorm:"not null"`
	RoundNumber  int        `gorm:"not null"`
	Side1PlayerA string     `gorm:"size:100;not null"`
	Side1PlayerB string     `gorm:"size:100;not null"`
	Side2PlayerA string     `gorm:"size:100;not null"`
	Side2PlayerB string     `gorm:"size:100;not null"`
	Score1       int        `gorm:"default:0"`
	Score2       int        `gorm:"default:0"`
	Played       bool       `gorm:"default:false"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`
	DeletedAt    time.Time  `gorm:"index"`
}

type SideBet struct {
	ID           uint       `gorm:"primaryKey;autoIncrement"`
	TournamentID uint       `gorm:"not null"`
	Tournament   Tournament `gorm:"foreignKey:TournamentID"`
	Side1PlayerA string     `gorm:"size:100;not null"`
	Side1PlayerB string     `gorm:"size:100;not null"`
	Side2PlayerA string     `gorm:"size:100;not null"`
	Side2PlayerB string     `gorm:"size:100;not null"`
	Stake        int        `gorm:"not null"`
	Outcome      string     `gorm:"size:20;not null;default:unsettled"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`
	DeletedAt    time.Time  `gorm:"index"`
}

type Payout struct {
	ID           uint       `gorm:"primaryKey;autoIncrement"`
	TournamentID uint       `gorm:"not null"`
	Tournament   Tournament `gorm:"foreignKey:TournamentID"`
	PlayerName   string     `gorm:"size:100;not null"`
	Amount       int        `gorm:"not null"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`
	DeletedAt    time.Time  `gorm:"index"`
}
