package service

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/sgerasimov/bankgen/internal/domain"
	"github.com/sgerasimov/bankgen/internal/service/mocks"
	"github.com/sgerasimov/bankgen/pkg/uow"
	uowmocks "github.com/sgerasimov/bankgen/pkg/uow/mocks"
)

type EntityCacheTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockUserRepo    *mocks.MockUserRepository
	mockAccountRepo *mocks.MockAccountRepository
	mockTypeRepo    *mocks.MockTransactionTypeRepository
	mockRailRepo    *mocks.MockPaymentRailRepository
	cache           *EntityCache
}

func TestEntityCacheSuite(t *testing.T) {
	suite.Run(t, new(EntityCacheTestSuite))
}

func (s *EntityCacheTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockAccountRepo = mocks.NewMockAccountRepository(s.mockCtrl)
	s.mockTypeRepo = mocks.NewMockTransactionTypeRepository(s.mockCtrl)
	s.mockRailRepo = mocks.NewMockPaymentRailRepository(s.mockCtrl)
	s.cache = NewEntityCache()
}

func (s *EntityCacheTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *EntityCacheTestSuite) TestWarm() {
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(domain.UserRepoName)).
		Return(s.mockUserRepo, nil)
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(domain.AccountRepoName)).
		Return(s.mockAccountRepo, nil)
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(domain.TransactionTypeRepoName)).
		Return(s.mockTypeRepo, nil)
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(domain.PaymentRailRepoName)).
		Return(s.mockRailRepo, nil)

	s.mockUserRepo.EXPECT().GetAllIDs(gomock.Any()).Return([]int64{1, 2, 3}, nil)
	s.mockAccountRepo.EXPECT().GetActive(gomock.Any()).Return([]domain.Account{
		{ID: 10, OwnerID: 1, Balance: decimal.NewFromInt(500), Currency: "USD", Number: "VISA000001"},
		{ID: 20, OwnerID: 2, Balance: decimal.NewFromInt(700), Currency: "EUR", Number: "MIR000002"},
	}, nil)
	s.mockTypeRepo.EXPECT().GetAll(gomock.Any()).Return([]domain.TransactionType{
		{ID: 1, Name: "transfer"},
		{ID: 2, Name: "deposit"},
	}, nil)
	s.mockRailRepo.EXPECT().GetAll(gomock.Any()).Return([]domain.PaymentRail{
		{ID: 1, Name: "VISA", LastNumber: 2},
	}, nil)

	s.Require().NoError(s.cache.Warm(s.T().Context(), s.mockUOW))

	s.Equal(3, s.cache.UserCount())
	s.Equal(2, s.cache.AccountCount())

	deposit, ok := s.cache.TransactionTypeByName("deposit")
	s.Require().True(ok)
	s.Equal(int64(2), deposit.ID)

	rail, ok := s.cache.RandomRail(testRand())
	s.Require().True(ok)
	s.Equal("VISA", rail.Name)
}

func (s *EntityCacheTestSuite) TestSetBalance() {
	s.cache.AddAccount(CachedAccount{ID: 10, Balance: decimal.NewFromInt(500)})
	s.cache.AddAccount(CachedAccount{ID: 20, Balance: decimal.NewFromInt(700)})

	s.cache.SetBalance(20, decimal.NewFromInt(42))

	rnd := testRand()
	seen := map[int64]decimal.Decimal{}
	for range 100 {
		acc, ok := s.cache.RandomAccount(rnd)
		s.Require().True(ok)
		seen[acc.ID] = acc.Balance
	}
	s.True(seen[10].Equal(decimal.NewFromInt(500)))
	s.True(seen[20].Equal(decimal.NewFromInt(42)))
}

func (s *EntityCacheTestSuite) TestSetBalance_UnknownAccountIgnored() {
	s.cache.AddAccount(CachedAccount{ID: 10, Balance: decimal.NewFromInt(500)})

	// счет не из кеша: молча игнорируется
	s.cache.SetBalance(99, decimal.NewFromInt(1))

	acc, ok := s.cache.RandomAccount(testRand())
	s.Require().True(ok)
	s.True(acc.Balance.Equal(decimal.NewFromInt(500)))
}

func (s *EntityCacheTestSuite) TestAddAccount_DuplicateIgnored() {
	s.cache.AddAccount(CachedAccount{ID: 10, Balance: decimal.NewFromInt(500)})
	s.cache.AddAccount(CachedAccount{ID: 10, Balance: decimal.NewFromInt(999)})

	s.Equal(1, s.cache.AccountCount())
}

func (s *EntityCacheTestSuite) TestEmptyPickers() {
	rnd := testRand()

	_, ok := s.cache.RandomUser(rnd)
	s.False(ok)
	_, ok = s.cache.RandomAccount(rnd)
	s.False(ok)
	_, ok = s.cache.RandomRail(rnd)
	s.False(ok)
	_, ok = s.cache.RandomTransactionType(rnd)
	s.False(ok)
	_, ok = s.cache.TransactionTypeByName("deposit")
	s.False(ok)
}
