package pgrepo

import (
	"context"

	"github.com/sgerasimov/bankgen/internal/domain"
	"github.com/sgerasimov/bankgen/pkg/uow"
)

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

// Create создает юзера. В случае конфликта email возвращает domain.ErrDuplicateKey,
// во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) Create(ctx context.Context, args domain.UserCreate) (*domain.User, error) {
	const query = `
		INSERT INTO users (first_name, last_name, email, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id, created_at`

	user := domain.User{
		FirstName: args.FirstName,
		LastName:  args.LastName,
		Email:     args.Email,
		Phone:     args.Phone,
	}
	err := u.conn.QueryRow(ctx, query, args.FirstName, args.LastName, args.Email, args.Phone).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return nil, convertErr(err, "creating user")
	}
	return &user, nil
}

// GetAllIDs возвращает идентификаторы всех юзеров. Используется при прогреве кеша.
func (u *UserRepository) GetAllIDs(ctx context.Context) ([]int64, error) {
	rows, err := u.conn.Query(ctx, `SELECT user_id FROM users`)
	if err != nil {
		return nil, convertErr(err, "getting user ids")
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, convertErr(scanErr, "scanning user id")
		}
		ids = append(ids, id)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating user ids")
	}
	return ids, nil
}
