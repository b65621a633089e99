package pgrepo

import (
	"context"
	"fmt"

	"github.com/sgerasimov/bankgen/internal/domain"
	"github.com/sgerasimov/bankgen/pkg/uow"
)

// accountNumberWidth ширина числовой части номера счета (дополняется нулями слева).
const accountNumberWidth = 6

type PaymentRailRepository struct {
	conn uow.DBTX
}

func NewPaymentRailRepository(conn uow.DBTX) *PaymentRailRepository {
	return &PaymentRailRepository{conn: conn}
}

func (p *PaymentRailRepository) GetAll(ctx context.Context) ([]domain.PaymentRail, error) {
	rows, err := p.conn.Query(ctx, `SELECT payment_system_id, payment_system, last_number FROM payment_system`)
	if err != nil {
		return nil, convertErr(err, "getting payment rails")
	}
	defer rows.Close()

	var rails []domain.PaymentRail
	for rows.Next() {
		var rail domain.PaymentRail
		if scanErr := rows.Scan(&rail.ID, &rail.Name, &rail.LastNumber); scanErr != nil {
			return nil, convertErr(scanErr, "scanning payment rail")
		}
		rails = append(rails, rail)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating payment rails")
	}
	return rails, nil
}

// NextNumber выдает следующий номер счета платежной системы и продвигает счетчик.
// Строка счетчика берется под эксклюзивной блокировкой (FOR UPDATE), поэтому два
// конкурентных вызова никогда не вернут одинаковый номер. Вызывать только внутри
// объемлющей транзакции: при ее откате инкремент счетчика откатывается вместе с ней.
func (p *PaymentRailRepository) NextNumber(ctx context.Context, railID int64) (string, error) {
	const selectQuery = `
		SELECT payment_system, last_number FROM payment_system
		WHERE payment_system_id = $1
		FOR UPDATE`

	var railName string
	var lastNumber int64
	if err := p.conn.QueryRow(ctx, selectQuery, railID).Scan(&railName, &lastNumber); err != nil {
		return "", convertErr(err, "locking payment rail %d", railID)
	}

	const updateQuery = `
		UPDATE payment_system
		SET last_number = last_number + 1
		WHERE payment_system_id = $1`

	if _, err := p.conn.Exec(ctx, updateQuery, railID); err != nil {
		return "", convertErr(err, "advancing payment rail %d counter", railID)
	}

	return fmt.Sprintf("%s%0*d", railName, accountNumberWidth, lastNumber), nil
}
