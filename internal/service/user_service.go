package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"

	"github.com/sgerasimov/bankgen/internal/domain"
	"github.com/sgerasimov/bankgen/internal/metrics"
	"github.com/sgerasimov/bankgen/pkg/uow"
)

const phoneMaxLen = 20

type UserService struct {
	uow      uow.UOW
	userRepo UserRepository
	cache    *EntityCache
	metrics  *metrics.Collector
	faker    *gofakeit.Faker
	rnd      *rand.Rand
	maxUsers int
	l        *logrus.Entry
}

func NewUserService(
	u uow.UOW,
	cache *EntityCache,
	collector *metrics.Collector,
	rnd *rand.Rand,
	maxUsers int,
	l *logrus.Logger,
) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(domain.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr //nolint:wrapcheck
	}
	return &UserService{
		uow:      u,
		userRepo: userRepo,
		cache:    cache,
		metrics:  collector,
		faker:    gofakeit.New(0),
		rnd:      rnd,
		maxUsers: maxUsers,
		l:        l.WithField("component", "user_service"),
	}, nil
}

// CreateUser создает синтетического юзера. При достигнутом лимите популяции
// молча выходит без записи (no-op, не ошибка).
func (s *UserService) CreateUser(ctx context.Context) (*domain.User, error) {
	if s.cache.UserCount() >= s.maxUsers {
		return nil, nil
	}

	firstName := s.faker.FirstName()
	lastName := s.faker.LastName()
	// числовой суффикс вместо faker.unique: не накапливаем глобальное состояние
	// уникальности на длинных прогонах.
	email := fmt.Sprintf("%s.%s%d@%s",
		strings.ToLower(firstName), strings.ToLower(lastName), s.rnd.IntN(1000000), s.faker.DomainName())
	phone := s.faker.Phone()
	if len(phone) > phoneMaxLen {
		phone = phone[:phoneMaxLen]
	}

	user, err := s.userRepo.Create(ctx, domain.UserCreate{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
	})
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.cache.AddUser(user.ID)
	s.metrics.IncUsersCreated()

	s.l.WithFields(logrus.Fields{
		"userID": user.ID,
		"name":   firstName + " " + lastName,
	}).Info("created new user")
	return user, nil
}
