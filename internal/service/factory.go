package service

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/sgerasimov/bankgen/internal/metrics"
	"github.com/sgerasimov/bankgen/pkg/uow"
)

type AppServices struct {
	Cache              *EntityCache
	UserService        *UserService
	AccountService     *AccountService
	LedgerService      *LedgerService
	AchievementService *AchievementService
}

type FactoryArgs struct {
	UOW         uow.UOW
	Metrics     *metrics.Collector
	Logger      *logrus.Logger
	MaxUsers    int
	MaxAccounts int
}

// Factory собирает сервисы генератора поверх общего кеша и одного источника
// случайности. Генератор строго последовательный, поэтому общий rand безопасен.
func Factory(args FactoryArgs) (*AppServices, error) {
	cache := NewEntityCache()
	rnd := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec

	userService, userServiceErr := NewUserService(
		args.UOW, cache, args.Metrics, rnd, args.MaxUsers, args.Logger)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	accountService, accountServiceErr := NewAccountService(
		args.UOW, cache, args.Metrics, rnd, args.MaxAccounts, args.Logger)
	if accountServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", accountServiceErr.Error())
	}

	ledgerService, ledgerServiceErr := NewLedgerService(args.UOW, cache, args.Metrics, rnd, args.Logger)
	if ledgerServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", ledgerServiceErr.Error())
	}

	achievementService, achievementServiceErr := NewAchievementService(args.UOW, args.Metrics, args.Logger)
	if achievementServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", achievementServiceErr.Error())
	}

	return &AppServices{
		Cache:              cache,
		UserService:        userService,
		AccountService:     accountService,
		LedgerService:      ledgerService,
		AchievementService: achievementService,
	}, nil
}
