package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/sgerasimov/bankgen/internal/domain"
	"github.com/sgerasimov/bankgen/internal/metrics"
	"github.com/sgerasimov/bankgen/internal/service/mocks"
	"github.com/sgerasimov/bankgen/pkg/uow"
	uowmocks "github.com/sgerasimov/bankgen/pkg/uow/mocks"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockAccountRepo *mocks.MockAccountRepository
	mockRailRepo    *mocks.MockPaymentRailRepository
	cache           *EntityCache
	collector       *metrics.Collector
	service         *AccountService
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockAccountRepo = mocks.NewMockAccountRepository(s.mockCtrl)
	s.mockRailRepo = mocks.NewMockPaymentRailRepository(s.mockCtrl)
	s.cache = NewEntityCache()
	s.collector = metrics.NewCollector()

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(domain.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()

	var err error
	s.service, err = NewAccountService(s.mockUOW, s.cache, s.collector, testRand(), 100, testLogger())
	s.Require().NoError(err)
}

func (s *AccountServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AccountServiceTestSuite) TestCreateAccount() {
	s.cache.AddUser(7)
	s.cache.rails = []domain.PaymentRail{{ID: 1, Name: "VISA", LastNumber: 5}}

	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		},
	)
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(domain.PaymentRailRepoName)).
		Return(s.mockRailRepo, nil)
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(domain.AccountRepoName)).
		Return(s.mockAccountRepo, nil)

	// номер выделяется внутри той же транзакции, что и вставка счета
	s.mockRailRepo.EXPECT().NextNumber(gomock.Any(), int64(1)).Return("VISA000005", nil)

	s.mockAccountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, args domain.AccountCreate) (*domain.Account, error) {
			s.Equal(int64(7), args.OwnerID)
			s.Equal("VISA000005", args.Number)
			s.Equal("VISA", args.PaymentRail)
			s.True(args.Balance.GreaterThanOrEqual(decimal.NewFromInt(100)))
			s.True(args.Balance.LessThanOrEqual(decimal.NewFromInt(10000)))
			s.Contains(accountCurrencies, args.Currency)
			return &domain.Account{
				ID:          11,
				OwnerID:     args.OwnerID,
				Number:      args.Number,
				Balance:     args.Balance,
				Currency:    args.Currency,
				PaymentRail: args.PaymentRail,
				Status:      domain.AccountStatusActive,
			}, nil
		})
	s.mockAccountRepo.EXPECT().LinkOwner(gomock.Any(), int64(11), int64(7)).Return(nil)
	// цель накопления вероятностная, поэтому без фиксации числа вызовов
	s.mockAccountRepo.EXPECT().CreateSaving(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, args domain.SavingAccountCreate) error {
			s.Equal(int64(11), args.AccountID)
			s.Contains(savingGoalNames, args.GoalName)
			return nil
		}).AnyTimes()

	account, err := s.service.CreateAccount(s.T().Context())
	s.Require().NoError(err)
	s.Require().NotNil(account)

	s.Equal(1, s.cache.AccountCount())
	s.Equal(uint64(1), s.collector.Snapshot().AccountsCreated)
}

func (s *AccountServiceTestSuite) TestCreateAccount_CapReached() {
	capped, err := NewAccountService(s.mockUOW, s.cache, s.collector, testRand(), 0, testLogger())
	s.Require().NoError(err)

	account, createErr := capped.CreateAccount(s.T().Context())
	s.Require().NoError(createErr)
	s.Nil(account)
	s.Zero(s.collector.Snapshot().AccountsCreated)
}

func (s *AccountServiceTestSuite) TestCreateAccount_NoUsersYet() {
	s.cache.rails = []domain.PaymentRail{{ID: 1, Name: "VISA", LastNumber: 1}}

	account, err := s.service.CreateAccount(s.T().Context())
	s.Require().NoError(err)
	s.Nil(account)
}
