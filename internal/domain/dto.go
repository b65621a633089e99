package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountStatusType string

const (
	AccountStatusActive AccountStatusType = "active"
	AccountStatusFrozen AccountStatusType = "frozen"
	AccountStatusClosed AccountStatusType = "closed"
)

type TransactionStatusType string

const (
	TransactionStatusCompleted TransactionStatusType = "completed"
	TransactionStatusFailed    TransactionStatusType = "failed"
)

type FrequencyType string

const (
	FrequencyWeekly  FrequencyType = "weekly"
	FrequencyMonthly FrequencyType = "monthly"
)

type UserCreate struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

type AccountCreate struct {
	OwnerID     int64
	Number      string
	Balance     decimal.Decimal
	Currency    string
	PaymentRail string
}

type SavingAccountCreate struct {
	AccountID        int64
	GoalAmount       decimal.Decimal
	GoalName         string
	MinBalance       decimal.Decimal
	InterestRate     decimal.Decimal
	NextInterestDate time.Time
}

type TransactionCreate struct {
	SenderID    *int64
	ReceiverID  int64
	Amount      decimal.Decimal
	Converted   decimal.Decimal
	Reference   string
	Description string
	TypeID      int64
	Status      TransactionStatusType
}

type ScheduledTransferCreate struct {
	SenderID       int64
	ReceiverID     int64
	Amount         decimal.Decimal
	Description    string
	Frequency      FrequencyType
	StartDate      time.Time
	NextOccurrence time.Time
	EndDate        time.Time
}

// ReceivedStats агрегат входящих операций юзера: кол-во и сумма полученных средств.
type ReceivedStats struct {
	UserID int64
	Count  int64
	Total  decimal.Decimal
}
