package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/sgerasimov/bankgen/internal/domain"
	"github.com/sgerasimov/bankgen/internal/metrics"
	"github.com/sgerasimov/bankgen/pkg/uow"
)

const (
	initialBalanceMin = 100.0
	initialBalanceMax = 10000.0

	// savingGoalProbability доля новых счетов, к которым привязывается цель накопления.
	savingGoalProbability = 0.2
	savingInterestDays    = 30
)

var accountCurrencies = []string{"USD", "EUR", "RUB", "GBP"}

var savingGoalNames = []string{"House", "Car", "Vacation", "Education", "Emergency Fund"}

type AccountService struct {
	uow         uow.UOW
	cache       *EntityCache
	metrics     *metrics.Collector
	rnd         *rand.Rand
	maxAccounts int
	l           *logrus.Entry
}

func NewAccountService(
	u uow.UOW,
	cache *EntityCache,
	collector *metrics.Collector,
	rnd *rand.Rand,
	maxAccounts int,
	l *logrus.Logger,
) (*AccountService, error) {
	// проверяем регистрацию заранее, чтобы ошибка конфигурации всплыла на старте
	if _, err := uow.GetRepositoryAs[AccountRepository](u, uow.RepositoryName(domain.AccountRepoName)); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &AccountService{
		uow:         u,
		cache:       cache,
		metrics:     collector,
		rnd:         rnd,
		maxAccounts: maxAccounts,
		l:           l.WithField("component", "account_service"),
	}, nil
}

// CreateAccount открывает счет случайному юзеру: выделяет номер в случайной
// платежной системе, вставляет счет, членство владельца и иногда цель накопления -
// всё одной транзакцией. Выделение номера и вставка счета неразделимы: при откате
// счетчик номеров возвращается назад и дыр от неудачных попыток не остается.
func (s *AccountService) CreateAccount(ctx context.Context) (*domain.Account, error) {
	if s.cache.AccountCount() >= s.maxAccounts {
		return nil, nil
	}
	ownerID, ok := s.cache.RandomUser(s.rnd)
	if !ok {
		return nil, nil
	}
	rail, ok := s.cache.RandomRail(s.rnd)
	if !ok {
		return nil, nil
	}

	balance := decimal.NewFromFloat(uniformFloat(s.rnd, initialBalanceMin, initialBalanceMax)).Round(2)
	currency := accountCurrencies[s.rnd.IntN(len(accountCurrencies))]

	var account *domain.Account
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		railRepo, railRepoErr := uow.GetAs[PaymentRailRepository](tx, uow.RepositoryName(domain.PaymentRailRepoName))
		if railRepoErr != nil {
			return railRepoErr //nolint:wrapcheck
		}
		accountRepo, accountRepoErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(domain.AccountRepoName))
		if accountRepoErr != nil {
			return accountRepoErr //nolint:wrapcheck
		}

		number, numberErr := railRepo.NextNumber(c, rail.ID)
		if numberErr != nil {
			return numberErr //nolint:wrapcheck
		}

		var createErr error
		account, createErr = accountRepo.Create(c, domain.AccountCreate{
			OwnerID:     ownerID,
			Number:      number,
			Balance:     balance,
			Currency:    currency,
			PaymentRail: rail.Name,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		if linkErr := accountRepo.LinkOwner(c, account.ID, ownerID); linkErr != nil {
			return linkErr //nolint:wrapcheck
		}

		if s.rnd.Float64() < savingGoalProbability {
			if savingErr := s.attachSavingGoal(c, accountRepo, account.ID, balance); savingErr != nil {
				return savingErr
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating account: %w", txErr)
	}

	s.cache.AddAccount(CachedAccount{
		ID:       account.ID,
		OwnerID:  account.OwnerID,
		Balance:  account.Balance,
		Currency: account.Currency,
		Number:   account.Number,
	})
	s.metrics.IncAccountsCreated()

	s.l.WithFields(logrus.Fields{
		"accountNumber": account.Number,
		"balance":       account.Balance.String(),
		"currency":      account.Currency,
	}).Info("created new account")
	return account, nil
}

func (s *AccountService) attachSavingGoal(
	ctx context.Context,
	accountRepo AccountRepository,
	accountID int64,
	balance decimal.Decimal,
) error {
	goalAmount := balance.Mul(decimal.NewFromFloat(uniformFloat(s.rnd, 2, 5))).Round(2)
	interestRate := decimal.NewFromFloat(uniformFloat(s.rnd, 1.5, 7.5)).Round(2)

	return accountRepo.CreateSaving(ctx, domain.SavingAccountCreate{ //nolint:wrapcheck
		AccountID:        accountID,
		GoalAmount:       goalAmount,
		GoalName:         savingGoalNames[s.rnd.IntN(len(savingGoalNames))],
		MinBalance:       balance.Mul(decimal.NewFromFloat(0.5)).Round(2),
		InterestRate:     interestRate,
		NextInterestDate: time.Now().AddDate(0, 0, savingInterestDays),
	})
}
