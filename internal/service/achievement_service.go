package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/sgerasimov/bankgen/internal/domain"
	"github.com/sgerasimov/bankgen/internal/metrics"
	"github.com/sgerasimov/bankgen/pkg/uow"
)

const (
	firstTransactionAchievement = "First Transaction"
	activeUserAchievement       = "Active User"
	savingsMasterAchievement    = "Savings Master"

	firstTransactionThreshold = 1
	activeUserThreshold       = 50
)

// savingsMasterTotal порог суммы полученного. Валюты не нормализуются:
// правило оперирует единицами колонки amount как есть.
var savingsMasterTotal = decimal.NewFromInt(10000)

type AchievementService struct {
	uow     uow.UOW
	metrics *metrics.Collector
	l       *logrus.Entry
}

func NewAchievementService(u uow.UOW, collector *metrics.Collector, l *logrus.Logger) (*AchievementService, error) {
	if _, err := uow.GetRepositoryAs[AchievementRepository](u, uow.RepositoryName(domain.AchievementRepoName)); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &AchievementService{
		uow:     u,
		metrics: collector,
		l:       l.WithField("component", "achievement_service"),
	}, nil
}

// EvaluateAchievements пересчитывает агрегаты входящих операций и выдает
// недостающие достижения. Повторный вызов без новых транзакций ничего не выдает:
// каждая выдача идемпотентна на уровне БД.
func (s *AchievementService) EvaluateAchievements(ctx context.Context) error {
	var granted int

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		transactionRepo, transactionRepoErr := uow.GetAs[TransactionRepository](
			tx, uow.RepositoryName(domain.TransactionRepoName))
		if transactionRepoErr != nil {
			return transactionRepoErr //nolint:wrapcheck
		}
		achievementRepo, achievementRepoErr := uow.GetAs[AchievementRepository](
			tx, uow.RepositoryName(domain.AchievementRepoName))
		if achievementRepoErr != nil {
			return achievementRepoErr //nolint:wrapcheck
		}

		stats, statsErr := transactionRepo.ReceivedStatsPerUser(c)
		if statsErr != nil {
			return statsErr //nolint:wrapcheck
		}

		for _, userStats := range stats {
			n, grantErr := s.grantQualified(c, achievementRepo, userStats)
			if grantErr != nil {
				return grantErr
			}
			granted += n
		}
		return nil
	})
	if txErr != nil {
		return fmt.Errorf("evaluating achievements: %w", txErr)
	}

	s.metrics.AddAchievementsGranted(granted)
	if granted > 0 {
		s.l.WithField("granted", granted).Info("granted achievements")
	}
	return nil
}

// grantQualified применяет правила независимо: за один проход юзер может получить
// сразу несколько достижений.
func (s *AchievementService) grantQualified(
	ctx context.Context,
	achievementRepo AchievementRepository,
	userStats domain.ReceivedStats,
) (int, error) {
	var granted int

	if userStats.Count >= firstTransactionThreshold {
		inserted, err := achievementRepo.Grant(ctx, userStats.UserID, firstTransactionAchievement)
		if err != nil {
			return granted, err //nolint:wrapcheck
		}
		if inserted {
			granted++
		}
	}

	if userStats.Count >= activeUserThreshold {
		inserted, err := achievementRepo.Grant(ctx, userStats.UserID, activeUserAchievement)
		if err != nil {
			return granted, err //nolint:wrapcheck
		}
		if inserted {
			granted++
		}
	}

	if userStats.Total.GreaterThanOrEqual(savingsMasterTotal) {
		inserted, err := achievementRepo.Grant(ctx, userStats.UserID, savingsMasterAchievement)
		if err != nil {
			return granted, err //nolint:wrapcheck
		}
		if inserted {
			granted++
		}
	}

	return granted, nil
}
