package pgrepo

import (
	"context"

	"github.com/sgerasimov/bankgen/internal/domain"
	"github.com/sgerasimov/bankgen/pkg/uow"
)

type TransactionTypeRepository struct {
	conn uow.DBTX
}

func NewTransactionTypeRepository(conn uow.DBTX) *TransactionTypeRepository {
	return &TransactionTypeRepository{conn: conn}
}

// GetAll возвращает справочник категорий транзакций.
func (t *TransactionTypeRepository) GetAll(ctx context.Context) ([]domain.TransactionType, error) {
	rows, err := t.conn.Query(ctx, `SELECT type_id, name FROM transaction_type`)
	if err != nil {
		return nil, convertErr(err, "getting transaction types")
	}
	defer rows.Close()

	var types []domain.TransactionType
	for rows.Next() {
		var tt domain.TransactionType
		if scanErr := rows.Scan(&tt.ID, &tt.Name); scanErr != nil {
			return nil, convertErr(scanErr, "scanning transaction type")
		}
		types = append(types, tt)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating transaction types")
	}
	return types, nil
}
