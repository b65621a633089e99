package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID        int64
	CreatedAt time.Time
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

type Account struct {
	ID          int64
	CreatedAt   time.Time
	OwnerID     int64
	Number      string
	Balance     decimal.Decimal
	Currency    string
	PaymentRail string
	Status      AccountStatusType
}

// PaymentRail платежная система. LastNumber хранит счетчик выдачи номеров счетов,
// номера в рамках одной системы строго возрастают и уникальны.
type PaymentRail struct {
	ID         int64
	Name       string
	LastNumber int64
}

type TransactionType struct {
	ID   int64
	Name string
}

// Transaction запись в журнале операций. SenderID == nil означает внешнее пополнение
// (депозит без счета-отправителя). Записи неизменяемы после вставки.
type Transaction struct {
	ID          int64
	CreatedAt   time.Time
	SenderID    *int64
	ReceiverID  int64
	Amount      decimal.Decimal
	Converted   decimal.Decimal
	Reference   string
	Description string
	TypeID      int64
	Status      TransactionStatusType
}

type ScheduledTransfer struct {
	ID             int64
	SenderID       int64
	ReceiverID     int64
	Amount         decimal.Decimal
	Description    string
	Frequency      FrequencyType
	StartDate      time.Time
	NextOccurrence time.Time
	EndDate        time.Time
}

// SavingAccount цель накопления, привязанная к обычному счету.
type SavingAccount struct {
	ID               int64
	AccountID        int64
	GoalAmount       decimal.Decimal
	GoalName         string
	MinBalance       decimal.Decimal
	InterestRate     decimal.Decimal
	NextInterestDate time.Time
}

type Achievement struct {
	ID   int64
	Name string
}

type UserAchievement struct {
	ID            int64
	UserID        int64
	AchievementID int64
	GrantedAt     time.Time
}
