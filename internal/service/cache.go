package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/sgerasimov/bankgen/internal/domain"
	"github.com/sgerasimov/bankgen/pkg/uow"
)

// CachedAccount краткая сводка счета для случайного выбора участников.
type CachedAccount struct {
	ID       int64
	OwnerID  int64
	Balance  decimal.Decimal
	Currency string
	Number   string
}

// EntityCache внутрипроцессное зеркало рабочего множества: юзеры, активные счета
// и статичные справочники. Кеш только ускоряет выбор участников и никогда не
// служит источником истины - все инвариантные проверки повторяются в БД внутри
// той же транзакции, что и мутация.
type EntityCache struct {
	mu       sync.RWMutex
	userIDs  []int64
	accounts []CachedAccount
	position map[int64]int
	types    []domain.TransactionType
	rails    []domain.PaymentRail
}

func NewEntityCache() *EntityCache {
	return &EntityCache{position: make(map[int64]int)}
}

// Warm одним заходом вычитывает юзеров, активные счета и справочники.
func (c *EntityCache) Warm(ctx context.Context, u uow.UOW) error {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(domain.UserRepoName))
	if userRepoErr != nil {
		return userRepoErr //nolint:wrapcheck
	}
	accountRepo, accountRepoErr := uow.GetRepositoryAs[AccountRepository](u, uow.RepositoryName(domain.AccountRepoName))
	if accountRepoErr != nil {
		return accountRepoErr //nolint:wrapcheck
	}
	typeRepo, typeRepoErr := uow.GetRepositoryAs[TransactionTypeRepository](
		u, uow.RepositoryName(domain.TransactionTypeRepoName))
	if typeRepoErr != nil {
		return typeRepoErr //nolint:wrapcheck
	}
	railRepo, railRepoErr := uow.GetRepositoryAs[PaymentRailRepository](
		u, uow.RepositoryName(domain.PaymentRailRepoName))
	if railRepoErr != nil {
		return railRepoErr //nolint:wrapcheck
	}

	userIDs, usersErr := userRepo.GetAllIDs(ctx)
	if usersErr != nil {
		return fmt.Errorf("cache warm up: %w", usersErr)
	}
	accounts, accountsErr := accountRepo.GetActive(ctx)
	if accountsErr != nil {
		return fmt.Errorf("cache warm up: %w", accountsErr)
	}
	types, typesErr := typeRepo.GetAll(ctx)
	if typesErr != nil {
		return fmt.Errorf("cache warm up: %w", typesErr)
	}
	rails, railsErr := railRepo.GetAll(ctx)
	if railsErr != nil {
		return fmt.Errorf("cache warm up: %w", railsErr)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.userIDs = userIDs
	c.accounts = make([]CachedAccount, 0, len(accounts))
	c.position = make(map[int64]int, len(accounts))
	for _, acc := range accounts {
		c.position[acc.ID] = len(c.accounts)
		c.accounts = append(c.accounts, CachedAccount{
			ID:       acc.ID,
			OwnerID:  acc.OwnerID,
			Balance:  acc.Balance,
			Currency: acc.Currency,
			Number:   acc.Number,
		})
	}
	c.types = types
	c.rails = rails
	return nil
}

func (c *EntityCache) UserCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.userIDs)
}

func (c *EntityCache) AccountCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.accounts)
}

func (c *EntityCache) AddUser(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.userIDs = append(c.userIDs, id)
}

func (c *EntityCache) AddAccount(account CachedAccount) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.position[account.ID]; ok {
		return
	}
	c.position[account.ID] = len(c.accounts)
	c.accounts = append(c.accounts, account)
}

// SetBalance заменяет баланс счета авторитетным значением, возвращенным БД после
// записи. Локально балансы не пересчитываются, чтобы не разъезжаться с внешними
// писателями.
func (c *EntityCache) SetBalance(accountID int64, balance decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if pos, ok := c.position[accountID]; ok {
		c.accounts[pos].Balance = balance
	}
}

func (c *EntityCache) RandomUser(rnd *rand.Rand) (int64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.userIDs) == 0 {
		return 0, false
	}
	return c.userIDs[rnd.IntN(len(c.userIDs))], true
}

func (c *EntityCache) RandomAccount(rnd *rand.Rand) (CachedAccount, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.accounts) == 0 {
		return CachedAccount{}, false
	}
	return c.accounts[rnd.IntN(len(c.accounts))], true
}

func (c *EntityCache) RandomRail(rnd *rand.Rand) (domain.PaymentRail, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.rails) == 0 {
		return domain.PaymentRail{}, false
	}
	return c.rails[rnd.IntN(len(c.rails))], true
}

func (c *EntityCache) RandomTransactionType(rnd *rand.Rand) (domain.TransactionType, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.types) == 0 {
		return domain.TransactionType{}, false
	}
	return c.types[rnd.IntN(len(c.types))], true
}

func (c *EntityCache) TransactionTypeByName(name string) (domain.TransactionType, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, t := range c.types {
		if t.Name == name {
			return t, true
		}
	}
	return domain.TransactionType{}, false
}
