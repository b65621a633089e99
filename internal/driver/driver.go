// Package driver крутит основной цикл генератора: с фиксированным интервалом
// дергает фабрики сущностей, движок операций и пересчет достижений.
package driver

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sgerasimov/bankgen/internal/domain"
	"github.com/sgerasimov/bankgen/internal/metrics"
)

//go:generate mockgen -source=driver.go -destination=mocks/mocks.go -package=mocks

type UserCreator interface {
	CreateUser(ctx context.Context) (*domain.User, error)
}

type AccountCreator interface {
	CreateAccount(ctx context.Context) (*domain.Account, error)
}

type TransactionGenerator interface {
	GenerateTransaction(ctx context.Context) error
}

type AchievementEvaluator interface {
	EvaluateAchievements(ctx context.Context) error
}

const (
	bootstrapUsers    = 10
	bootstrapAccounts = 20

	// каденции цикла: юзер каждый 10-й тик, счет каждый 20-й, сводка каждый 100-й.
	userCadence    = 10
	accountCadence = 20
	statsCadence   = 100
)

type Driver struct {
	users        UserCreator
	accounts     AccountCreator
	ledger       TransactionGenerator
	achievements AchievementEvaluator
	collector    *metrics.Collector
	interval     time.Duration
	l            *logrus.Entry
}

type Args struct {
	Users        UserCreator
	Accounts     AccountCreator
	Ledger       TransactionGenerator
	Achievements AchievementEvaluator
	Collector    *metrics.Collector
	Interval     time.Duration
	Logger       *logrus.Logger
}

func New(args Args) *Driver {
	return &Driver{
		users:        args.Users,
		accounts:     args.Accounts,
		ledger:       args.Ledger,
		achievements: args.Achievements,
		collector:    args.Collector,
		interval:     args.Interval,
		l:            args.Logger.WithField("component", "driver"),
	}
}

// Run ведет цикл до отмены контекста. Операции строго последовательны: следующий
// тик не начинается, пока не завершился текущий, а остановка по сигналу ждет конца
// текущей операции. Ошибки тика только логируются - следующий тик и есть ретрай.
func (d *Driver) Run(ctx context.Context) {
	d.l.WithField("interval", d.interval.String()).Info("Starting")

	d.bootstrap(ctx)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	var counter uint64
	for {
		select {
		case <-ctx.Done():
			d.l.Info("Got stop signal, exiting...")
			d.logStats()
			return
		case <-ticker.C:
			counter++
			d.tick(ctx, counter)
		}
	}
}

// bootstrap наполняет пустую базу стартовой популяцией, чтобы движку сразу было
// из кого выбирать участников.
func (d *Driver) bootstrap(ctx context.Context) {
	for range bootstrapUsers {
		if ctx.Err() != nil {
			return
		}
		if _, err := d.users.CreateUser(ctx); err != nil {
			d.l.WithError(err).Error("bootstrap user")
		}
	}
	for range bootstrapAccounts {
		if ctx.Err() != nil {
			return
		}
		if _, err := d.accounts.CreateAccount(ctx); err != nil {
			d.l.WithError(err).Error("bootstrap account")
		}
	}
}

func (d *Driver) tick(ctx context.Context, counter uint64) {
	started := time.Now()

	if counter%userCadence == 0 {
		if _, err := d.users.CreateUser(ctx); err != nil {
			d.l.WithError(err).Error("create user")
		}
	}
	if counter%accountCadence == 0 {
		if _, err := d.accounts.CreateAccount(ctx); err != nil {
			d.l.WithError(err).Error("create account")
		}
	}

	if err := d.ledger.GenerateTransaction(ctx); err != nil {
		d.l.WithError(err).Error("generate transaction")
	}
	if err := d.achievements.EvaluateAchievements(ctx); err != nil {
		d.l.WithError(err).Error("evaluate achievements")
	}

	d.collector.ObserveTick(time.Since(started))

	if counter%statsCadence == 0 {
		d.logStats()
	}
}

func (d *Driver) logStats() {
	stats := d.collector.Snapshot()
	d.l.WithFields(logrus.Fields{
		"usersCreated":              stats.UsersCreated,
		"accountsCreated":           stats.AccountsCreated,
		"transactionsCompleted":     stats.TransactionsCompleted,
		"transactionsFailed":        stats.TransactionsFailed,
		"scheduledTransfersCreated": stats.ScheduledTransfersCreated,
		"achievementsGranted":       stats.AchievementsGranted,
	}).Info("generator statistics")
}
