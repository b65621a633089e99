package app

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sgerasimov/bankgen/internal/config"
	"github.com/sgerasimov/bankgen/internal/domain"
	"github.com/sgerasimov/bankgen/internal/driver"
	"github.com/sgerasimov/bankgen/internal/metrics"
	"github.com/sgerasimov/bankgen/internal/repository/pgrepo"
	"github.com/sgerasimov/bankgen/internal/service"
	"github.com/sgerasimov/bankgen/internal/transport/ops"
	"github.com/sgerasimov/bankgen/pkg/uow"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting bankgen with config: %+v", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return errors.Wrap(connErr, "app run")
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return errors.Wrap(uowErr, "app run")
	}

	collector := metrics.NewCollector()

	services, servicesErr := service.Factory(service.FactoryArgs{
		UOW:         unitOfWork,
		Metrics:     collector,
		Logger:      a.Logger,
		MaxUsers:    a.Config.MaxUsers,
		MaxAccounts: a.Config.MaxAccounts,
	})
	if servicesErr != nil {
		return errors.Wrap(servicesErr, "app run")
	}

	if warmErr := services.Cache.Warm(notifyCtx, unitOfWork); warmErr != nil {
		return errors.Wrap(warmErr, "app run")
	}
	a.Logger.WithFields(logrus.Fields{
		"users":    services.Cache.UserCount(),
		"accounts": services.Cache.AccountCount(),
	}).Info("cache initialized")

	router := ops.NewRouter(conn, collector)

	errChan := make(chan error, 1)
	go func() {
		if runErr := router.Run(a.Config.OpsAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	generatorLoop := driver.New(driver.Args{
		Users:        services.UserService,
		Accounts:     services.AccountService,
		Ledger:       services.LedgerService,
		Achievements: services.AchievementService,
		Collector:    collector,
		Interval:     a.Config.TickInterval(),
		Logger:       a.Logger,
	})

	go generatorLoop.Run(notifyCtx)

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[domain.RepositoryName]uow.RepositoryFactory{
		domain.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		domain.AccountRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewAccountRepository(dbtx)
		},
		domain.PaymentRailRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewPaymentRailRepository(dbtx)
		},
		domain.TransactionTypeRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewTransactionTypeRepository(dbtx)
		},
		domain.TransactionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewTransactionRepository(dbtx)
		},
		domain.ScheduledTransferRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewScheduledTransferRepository(dbtx)
		},
		domain.AchievementRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewAchievementRepository(dbtx)
		},
	}

	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, errors.Wrap(regErr, "init UOW")
		}
	}

	return unitOfWork, nil
}
