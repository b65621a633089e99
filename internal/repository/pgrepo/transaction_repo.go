package pgrepo

import (
	"context"

	"github.com/sgerasimov/bankgen/internal/domain"
	"github.com/sgerasimov/bankgen/pkg/uow"
)

type TransactionRepository struct {
	conn uow.DBTX
}

func NewTransactionRepository(conn uow.DBTX) *TransactionRepository {
	return &TransactionRepository{conn: conn}
}

// Create вставляет запись журнала операций. Запись после вставки не меняется:
// failed-транзакция остается в журнале как свидетельство попытки, без влияния на балансы.
func (t *TransactionRepository) Create(ctx context.Context, args domain.TransactionCreate) (*domain.Transaction, error) {
	const query = `
		INSERT INTO transactions
		(sender_account_id, receiver_account_id, amount, converted_amount, reference, description, type_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING transaction_id, created_at`

	transaction := domain.Transaction{
		SenderID:    args.SenderID,
		ReceiverID:  args.ReceiverID,
		Amount:      args.Amount,
		Converted:   args.Converted,
		Reference:   args.Reference,
		Description: args.Description,
		TypeID:      args.TypeID,
		Status:      args.Status,
	}
	err := t.conn.QueryRow(ctx, query,
		args.SenderID, args.ReceiverID, args.Amount, args.Converted,
		args.Reference, args.Description, args.TypeID, args.Status,
	).Scan(&transaction.ID, &transaction.CreatedAt)
	if err != nil {
		return nil, convertErr(err, "creating transaction")
	}
	return &transaction, nil
}

// ReceivedStatsPerUser агрегирует входящие операции: для каждого юзера, хотя бы раз
// выступавшего получателем, считает кол-во и сумму полученного. Суммируется amount
// без нормализации валют - правила достижений оперируют "сырыми" единицами.
func (t *TransactionRepository) ReceivedStatsPerUser(ctx context.Context) ([]domain.ReceivedStats, error) {
	const query = `
		SELECT u.user_id,
		       COUNT(t.transaction_id) AS tx_count,
		       COALESCE(SUM(t.amount), 0) AS total_received
		FROM users u
		JOIN bank_accounts ba ON ba.owner_id = u.user_id
		JOIN transactions t ON t.receiver_account_id = ba.bank_account_id
		GROUP BY u.user_id`

	rows, err := t.conn.Query(ctx, query)
	if err != nil {
		return nil, convertErr(err, "aggregating received stats")
	}
	defer rows.Close()

	var stats []domain.ReceivedStats
	for rows.Next() {
		var s domain.ReceivedStats
		if scanErr := rows.Scan(&s.UserID, &s.Count, &s.Total); scanErr != nil {
			return nil, convertErr(scanErr, "scanning received stats")
		}
		stats = append(stats, s)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating received stats")
	}
	return stats, nil
}
