package driver

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/sgerasimov/bankgen/internal/domain"
	"github.com/sgerasimov/bankgen/internal/driver/mocks"
	"github.com/sgerasimov/bankgen/internal/metrics"
)

type DriverTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockUsers        *mocks.MockUserCreator
	mockAccounts     *mocks.MockAccountCreator
	mockLedger       *mocks.MockTransactionGenerator
	mockAchievements *mocks.MockAchievementEvaluator
	driver           *Driver
}

func TestDriverSuite(t *testing.T) {
	suite.Run(t, new(DriverTestSuite))
}

func (s *DriverTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUsers = mocks.NewMockUserCreator(s.mockCtrl)
	s.mockAccounts = mocks.NewMockAccountCreator(s.mockCtrl)
	s.mockLedger = mocks.NewMockTransactionGenerator(s.mockCtrl)
	s.mockAchievements = mocks.NewMockAchievementEvaluator(s.mockCtrl)

	l := logrus.New()
	l.SetOutput(io.Discard)

	s.driver = New(Args{
		Users:        s.mockUsers,
		Accounts:     s.mockAccounts,
		Ledger:       s.mockLedger,
		Achievements: s.mockAchievements,
		Collector:    metrics.NewCollector(),
		Interval:     time.Hour,
		Logger:       l,
	})
}

func (s *DriverTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *DriverTestSuite) TestBootstrap() {
	s.mockUsers.EXPECT().CreateUser(gomock.Any()).
		Return(&domain.User{ID: 1}, nil).Times(bootstrapUsers)
	s.mockAccounts.EXPECT().CreateAccount(gomock.Any()).
		Return(&domain.Account{ID: 1}, nil).Times(bootstrapAccounts)

	s.driver.bootstrap(s.T().Context())
}

func (s *DriverTestSuite) TestBootstrap_StopsOnCancel() {
	ctx, cancel := context.WithCancel(s.T().Context())
	cancel()

	// отмененный контекст: ни одного вызова фабрик
	s.driver.bootstrap(ctx)
}

func (s *DriverTestSuite) TestTickCadence() {
	const ticks = 20

	// движок и достижения - каждый тик, юзер - каждый 10-й, счет - каждый 20-й
	s.mockLedger.EXPECT().GenerateTransaction(gomock.Any()).Return(nil).Times(ticks)
	s.mockAchievements.EXPECT().EvaluateAchievements(gomock.Any()).Return(nil).Times(ticks)
	s.mockUsers.EXPECT().CreateUser(gomock.Any()).Return(&domain.User{ID: 1}, nil).Times(2)
	s.mockAccounts.EXPECT().CreateAccount(gomock.Any()).Return(&domain.Account{ID: 1}, nil).Times(1)

	for counter := uint64(1); counter <= ticks; counter++ {
		s.driver.tick(s.T().Context(), counter)
	}
}

func (s *DriverTestSuite) TestTick_ErrorsDoNotStopTheLoop() {
	boom := errors.New("boom")

	s.mockUsers.EXPECT().CreateUser(gomock.Any()).Return(nil, boom)
	s.mockLedger.EXPECT().GenerateTransaction(gomock.Any()).Return(boom).Times(2)
	s.mockAchievements.EXPECT().EvaluateAchievements(gomock.Any()).Return(boom).Times(2)

	s.driver.tick(s.T().Context(), userCadence)
	s.driver.tick(s.T().Context(), userCadence+1)
}

func (s *DriverTestSuite) TestRun_ReturnsOnCancel() {
	ctx, cancel := context.WithCancel(s.T().Context())
	cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.driver.Run(ctx)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		s.Fail("driver did not stop after context cancellation")
	}
}
