package pgrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sgerasimov/bankgen/internal/domain"
	"github.com/sgerasimov/bankgen/pkg/uow"
)

type AccountRepository struct {
	conn uow.DBTX
}

func NewAccountRepository(conn uow.DBTX) *AccountRepository {
	return &AccountRepository{conn: conn}
}

// Create вставляет счет и возвращает запись целиком (включая присвоенный статус).
func (a *AccountRepository) Create(ctx context.Context, args domain.AccountCreate) (*domain.Account, error) {
	const query = `
		INSERT INTO bank_accounts (account_number, balance, payment_system, currency, owner_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING bank_account_id, created_at, balance, status`

	account := domain.Account{
		OwnerID:     args.OwnerID,
		Number:      args.Number,
		Currency:    args.Currency,
		PaymentRail: args.PaymentRail,
	}
	err := a.conn.QueryRow(ctx, query, args.Number, args.Balance, args.PaymentRail, args.Currency, args.OwnerID).
		Scan(&account.ID, &account.CreatedAt, &account.Balance, &account.Status)
	if err != nil {
		return nil, convertErr(err, "creating account")
	}
	return &account, nil
}

// GetActive возвращает все активные счета. Используется при прогреве кеша.
func (a *AccountRepository) GetActive(ctx context.Context) ([]domain.Account, error) {
	const query = `
		SELECT bank_account_id, created_at, owner_id, account_number, balance, currency, payment_system, status
		FROM bank_accounts
		WHERE status = 'active'`

	rows, err := a.conn.Query(ctx, query)
	if err != nil {
		return nil, convertErr(err, "getting active accounts")
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var acc domain.Account
		if scanErr := rows.Scan(
			&acc.ID, &acc.CreatedAt, &acc.OwnerID, &acc.Number,
			&acc.Balance, &acc.Currency, &acc.PaymentRail, &acc.Status,
		); scanErr != nil {
			return nil, convertErr(scanErr, "scanning account")
		}
		accounts = append(accounts, acc)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating accounts")
	}
	return accounts, nil
}

// DebitIfSufficient списывает amount со счета одним условным UPDATE: строка меняется
// только если баланса хватает. Проверка и списание атомарны на уровне БД, поэтому
// конкурентный внешний писатель не уведет баланс в минус. Возвращает баланс после
// списания либо domain.ErrInsufficientFunds.
func (a *AccountRepository) DebitIfSufficient(
	ctx context.Context,
	accountID int64,
	amount decimal.Decimal,
) (decimal.Decimal, error) {
	const query = `
		UPDATE bank_accounts
		SET balance = balance - $1
		WHERE bank_account_id = $2 AND balance >= $1
		RETURNING balance`

	var balance decimal.Decimal
	err := a.conn.QueryRow(ctx, query, amount, accountID).Scan(&balance)
	if err != nil {
		// счет гарантированно существует (выбран из кеша активных), значит
		// отсутствие строки означает нехватку средств.
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Decimal{}, domain.ErrInsufficientFunds
		}
		return decimal.Decimal{}, convertErr(err, "debiting account %d", accountID)
	}
	return balance, nil
}

// Credit зачисляет amount на счет и возвращает баланс после зачисления.
func (a *AccountRepository) Credit(
	ctx context.Context,
	accountID int64,
	amount decimal.Decimal,
) (decimal.Decimal, error) {
	const query = `
		UPDATE bank_accounts
		SET balance = balance + $1
		WHERE bank_account_id = $2
		RETURNING balance`

	var balance decimal.Decimal
	err := a.conn.QueryRow(ctx, query, amount, accountID).Scan(&balance)
	if err != nil {
		return decimal.Decimal{}, convertErr(err, "crediting account %d", accountID)
	}
	return balance, nil
}

// LinkOwner создает запись членства юзера в счете.
func (a *AccountRepository) LinkOwner(ctx context.Context, accountID, userID int64) error {
	const query = `
		INSERT INTO user_bank_accounts (bank_account_id, user_id)
		VALUES ($1, $2)`

	if _, err := a.conn.Exec(ctx, query, accountID, userID); err != nil {
		return convertErr(err, "linking account %d to user %d", accountID, userID)
	}
	return nil
}

// CreateSaving привязывает к счету цель накопления.
func (a *AccountRepository) CreateSaving(ctx context.Context, args domain.SavingAccountCreate) error {
	const query = `
		INSERT INTO saving_accounts
		(bank_account_id, goal_amount, goal_name, min_balance, interest_rate, next_interest_date)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := a.conn.Exec(ctx, query,
		args.AccountID, args.GoalAmount, args.GoalName, args.MinBalance, args.InterestRate, args.NextInterestDate)
	if err != nil {
		return convertErr(err, "creating saving account for account %d", args.AccountID)
	}
	return nil
}
