package pgrepo

import (
	"context"

	"github.com/sgerasimov/bankgen/internal/domain"
	"github.com/sgerasimov/bankgen/pkg/uow"
)

type ScheduledTransferRepository struct {
	conn uow.DBTX
}

func NewScheduledTransferRepository(conn uow.DBTX) *ScheduledTransferRepository {
	return &ScheduledTransferRepository{conn: conn}
}

// Create вставляет определение регулярного перевода. Исполнением расписания
// занимается платформа, генератор только фиксирует намерение.
func (s *ScheduledTransferRepository) Create(
	ctx context.Context,
	args domain.ScheduledTransferCreate,
) (*domain.ScheduledTransfer, error) {
	const query = `
		INSERT INTO scheduled_transfers
		(sender_account_id, receiver_account_id, amount, description, frequency, start_date, next_occurrence_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING scheduled_transfer_id`

	transfer := domain.ScheduledTransfer{
		SenderID:       args.SenderID,
		ReceiverID:     args.ReceiverID,
		Amount:         args.Amount,
		Description:    args.Description,
		Frequency:      args.Frequency,
		StartDate:      args.StartDate,
		NextOccurrence: args.NextOccurrence,
		EndDate:        args.EndDate,
	}
	err := s.conn.QueryRow(ctx, query,
		args.SenderID, args.ReceiverID, args.Amount, args.Description,
		args.Frequency, args.StartDate, args.NextOccurrence, args.EndDate,
	).Scan(&transfer.ID)
	if err != nil {
		return nil, convertErr(err, "creating scheduled transfer")
	}
	return &transfer, nil
}
