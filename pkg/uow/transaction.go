package uow

import (
	"github.com/jackc/pgx/v5"
)

// txScope выдает репозитории, привязанные к открытой транзакции.
type txScope struct {
	repositories map[RepositoryName]RepositoryFactory
	tx           pgx.Tx
}

func newTxScope(tx pgx.Tx, repositories map[RepositoryName]RepositoryFactory) *txScope {
	return &txScope{
		repositories: repositories,
		tx:           tx,
	}
}

func (t *txScope) Get(name RepositoryName) (Repository, error) {
	if factory, ok := t.repositories[name]; ok {
		return factory(t.tx), nil
	}
	return nil, ErrRepositoryNotRegistered
}

// GetAs возвращает транзакционный репозиторий с именем name, приведенный к типу T.
// Возможные ошибки: ErrRepositoryNotRegistered, ErrInvalidRepositoryType.
func GetAs[T any](t TX, name RepositoryName) (T, error) {
	var res T
	repo, err := t.Get(name)
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	res, ok := repo.(T)
	if !ok {
		return res, ErrInvalidRepositoryType
	}
	return res, nil
}
