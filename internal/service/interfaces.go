package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sgerasimov/bankgen/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UserRepository interface {
	Create(ctx context.Context, args domain.UserCreate) (*domain.User, error)
	GetAllIDs(ctx context.Context) ([]int64, error)
}

type AccountRepository interface {
	Create(ctx context.Context, args domain.AccountCreate) (*domain.Account, error)
	GetActive(ctx context.Context) ([]domain.Account, error)
	DebitIfSufficient(ctx context.Context, accountID int64, amount decimal.Decimal) (decimal.Decimal, error)
	Credit(ctx context.Context, accountID int64, amount decimal.Decimal) (decimal.Decimal, error)
	LinkOwner(ctx context.Context, accountID, userID int64) error
	CreateSaving(ctx context.Context, args domain.SavingAccountCreate) error
}

type PaymentRailRepository interface {
	GetAll(ctx context.Context) ([]domain.PaymentRail, error)
	NextNumber(ctx context.Context, railID int64) (string, error)
}

type TransactionTypeRepository interface {
	GetAll(ctx context.Context) ([]domain.TransactionType, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, args domain.TransactionCreate) (*domain.Transaction, error)
	ReceivedStatsPerUser(ctx context.Context) ([]domain.ReceivedStats, error)
}

type ScheduledTransferRepository interface {
	Create(ctx context.Context, args domain.ScheduledTransferCreate) (*domain.ScheduledTransfer, error)
}

type AchievementRepository interface {
	Grant(ctx context.Context, userID int64, achievementName string) (bool, error)
}
