package service

import (
	"context"
	"io"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/sgerasimov/bankgen/internal/domain"
	"github.com/sgerasimov/bankgen/internal/metrics"
	"github.com/sgerasimov/bankgen/internal/service/mocks"
	"github.com/sgerasimov/bankgen/pkg/uow"
	uowmocks "github.com/sgerasimov/bankgen/pkg/uow/mocks"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// testRand сидированный генератор: прогоны тестов воспроизводимы.
func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

type LedgerServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockUOW          *uowmocks.MockUOW
	mockTX           *uowmocks.MockTX
	mockAccountRepo  *mocks.MockAccountRepository
	mockTxRepo       *mocks.MockTransactionRepository
	mockTransferRepo *mocks.MockScheduledTransferRepository
	cache            *EntityCache
	collector        *metrics.Collector
	service          *LedgerService
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockAccountRepo = mocks.NewMockAccountRepository(s.mockCtrl)
	s.mockTxRepo = mocks.NewMockTransactionRepository(s.mockCtrl)
	s.mockTransferRepo = mocks.NewMockScheduledTransferRepository(s.mockCtrl)
	s.cache = NewEntityCache()
	s.collector = metrics.NewCollector()

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(domain.TransactionRepoName)).
		Return(s.mockTxRepo, nil).AnyTimes()

	var err error
	s.service, err = NewLedgerService(s.mockUOW, s.cache, s.collector, testRand(), testLogger())
	s.Require().NoError(err)
}

func (s *LedgerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectUnit прокидывает замыкание Do напрямую в мок-транзакцию.
func (s *LedgerServiceTestSuite) expectUnit() {
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		},
	).AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(domain.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(domain.TransactionRepoName)).
		Return(s.mockTxRepo, nil).AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(domain.ScheduledTransferRepoName)).
		Return(s.mockTransferRepo, nil).AnyTimes()
}

func (s *LedgerServiceTestSuite) TestApply_Completed() {
	sender := CachedAccount{ID: 1, OwnerID: 10, Balance: decimal.NewFromInt(500), Currency: "USD", Number: "VISA000001"}
	receiver := CachedAccount{ID: 2, OwnerID: 11, Balance: decimal.NewFromInt(200), Currency: "USD", Number: "MIR000002"}
	plan := transferPlan{
		Sender:      &sender,
		Receiver:    receiver,
		Amount:      decimal.NewFromInt(120),
		Converted:   decimal.NewFromInt(120),
		TypeID:      1,
		Description: "Money transfer #4242",
		Reference:   "ref-1",
	}

	s.expectUnit()
	s.mockAccountRepo.EXPECT().
		DebitIfSufficient(gomock.Any(), sender.ID, plan.Amount).
		Return(decimal.NewFromInt(380), nil)
	s.mockAccountRepo.EXPECT().
		Credit(gomock.Any(), receiver.ID, plan.Converted).
		Return(decimal.NewFromInt(320), nil)
	s.mockTxRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, args domain.TransactionCreate) (*domain.Transaction, error) {
			s.Require().NotNil(args.SenderID)
			s.Equal(sender.ID, *args.SenderID)
			s.Equal(receiver.ID, args.ReceiverID)
			s.Equal(domain.TransactionStatusCompleted, args.Status)
			s.Equal(plan.Reference, args.Reference)
			return &domain.Transaction{ID: 1}, nil
		})

	res, err := s.service.apply(s.T().Context(), plan)
	s.Require().NoError(err)

	s.Equal(domain.TransactionStatusCompleted, res.Status)
	s.True(res.SenderBalance.Equal(decimal.NewFromInt(380)))
	s.True(res.ReceiverBalance.Equal(decimal.NewFromInt(320)))
}

func (s *LedgerServiceTestSuite) TestApply_InsufficientFundsCommitsFailedRecord() {
	sender := CachedAccount{ID: 1, Balance: decimal.NewFromInt(50), Currency: "USD", Number: "VISA000001"}
	receiver := CachedAccount{ID: 2, Balance: decimal.NewFromInt(200), Currency: "USD", Number: "MIR000002"}
	plan := transferPlan{
		Sender:    &sender,
		Receiver:  receiver,
		Amount:    decimal.NewFromInt(150),
		Converted: decimal.NewFromInt(150),
		TypeID:    1,
		Reference: "ref-2",
	}

	s.expectUnit()
	s.mockAccountRepo.EXPECT().
		DebitIfSufficient(gomock.Any(), sender.ID, plan.Amount).
		Return(decimal.Zero, domain.ErrInsufficientFunds)
	// зачисления быть не должно: Credit не настраиваем вовсе
	s.mockTxRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, args domain.TransactionCreate) (*domain.Transaction, error) {
			s.Equal(domain.TransactionStatusFailed, args.Status)
			return &domain.Transaction{ID: 2}, nil
		})

	res, err := s.service.apply(s.T().Context(), plan)
	s.Require().NoError(err)
	s.Equal(domain.TransactionStatusFailed, res.Status)
}

func (s *LedgerServiceTestSuite) TestApply_DepositHasNoSenderSide() {
	receiver := CachedAccount{ID: 2, Balance: decimal.NewFromInt(200), Currency: "EUR", Number: "MIR000002"}
	plan := transferPlan{
		Receiver:  receiver,
		Amount:    decimal.NewFromInt(300),
		Converted: decimal.NewFromInt(300),
		TypeID:    2,
		Reference: "ref-3",
	}

	s.expectUnit()
	s.mockAccountRepo.EXPECT().
		Credit(gomock.Any(), receiver.ID, plan.Converted).
		Return(decimal.NewFromInt(500), nil)
	s.mockTxRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, args domain.TransactionCreate) (*domain.Transaction, error) {
			s.Nil(args.SenderID)
			s.Equal(domain.TransactionStatusCompleted, args.Status)
			return &domain.Transaction{ID: 3}, nil
		})

	res, err := s.service.apply(s.T().Context(), plan)
	s.Require().NoError(err)
	s.Equal(domain.TransactionStatusCompleted, res.Status)
	s.True(res.ReceiverBalance.Equal(decimal.NewFromInt(500)))
}

func (s *LedgerServiceTestSuite) TestGenerateTransaction_NoopBelowTwoAccounts() {
	s.cache.AddAccount(CachedAccount{ID: 1, Balance: decimal.NewFromInt(100), Currency: "USD"})

	// ни Do, ни репозитории не настроены: любой вызов провалил бы тест
	s.Require().NoError(s.service.GenerateTransaction(s.T().Context()))
}

func (s *LedgerServiceTestSuite) TestGenerateTransaction_Completed() {
	s.seedCache()
	s.expectUnit()

	credited := decimal.NewFromFloat(777.77)
	s.mockAccountRepo.EXPECT().
		DebitIfSufficient(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(decimal.NewFromFloat(42.42), nil).AnyTimes()
	s.mockAccountRepo.EXPECT().
		Credit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(credited, nil).AnyTimes()
	s.mockTxRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&domain.Transaction{ID: 1}, nil).AnyTimes()
	s.mockTransferRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&domain.ScheduledTransfer{ID: 1}, nil).AnyTimes()

	const iterations = 30
	for range iterations {
		s.Require().NoError(s.service.GenerateTransaction(s.T().Context()))
	}

	stats := s.collector.Snapshot()
	s.Equal(uint64(iterations), stats.TransactionsCompleted)
	s.Zero(stats.TransactionsFailed)

	// балансы в кеше заменяются авторитетным значением из БД
	var updated bool
	for _, acc := range s.cache.accounts {
		if acc.Balance.Equal(credited) {
			updated = true
			break
		}
	}
	s.True(updated)
}

func (s *LedgerServiceTestSuite) TestGenerateTransaction_InsufficientFundsIsNotAnError() {
	s.seedCache()
	s.expectUnit()

	s.mockAccountRepo.EXPECT().
		DebitIfSufficient(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(decimal.Zero, domain.ErrInsufficientFunds).AnyTimes()
	s.mockAccountRepo.EXPECT().
		Credit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(decimal.NewFromInt(100), nil).AnyTimes()
	s.mockTxRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&domain.Transaction{ID: 1}, nil).AnyTimes()
	s.mockTransferRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&domain.ScheduledTransfer{ID: 1}, nil).AnyTimes()

	// за 50 розыгрышей отправитель выпадает почти наверняка
	const iterations = 50
	for range iterations {
		s.Require().NoError(s.service.GenerateTransaction(s.T().Context()))
	}

	stats := s.collector.Snapshot()
	s.NotZero(stats.TransactionsFailed)
	s.Equal(uint64(iterations), stats.TransactionsCompleted+stats.TransactionsFailed)
}

func (s *LedgerServiceTestSuite) TestDrawAmount_BoundedBySenderBalance() {
	sender := &CachedAccount{ID: 1, Balance: decimal.NewFromInt(500)}

	for range 100 {
		amount := s.service.drawAmount(sender)
		s.True(amount.GreaterThanOrEqual(decimal.NewFromInt(101)), amount.String())
		s.True(amount.LessThanOrEqual(decimal.NewFromInt(600)), amount.String())
	}
}

func (s *LedgerServiceTestSuite) TestDrawAmount_TinyBalanceClampsToMinimum() {
	sender := &CachedAccount{ID: 1, Balance: decimal.NewFromFloat(0.5)}

	amount := s.service.drawAmount(sender)
	s.True(amount.Equal(decimal.NewFromInt(101)), amount.String())
}

func (s *LedgerServiceTestSuite) TestDrawType_DepositForcedWithoutSender() {
	s.seedCache()

	for range 20 {
		txType := s.service.drawType(nil)
		s.Equal(depositTypeName, txType.Name)
	}
}

func (s *LedgerServiceTestSuite) seedCache() {
	s.cache.AddAccount(CachedAccount{ID: 1, OwnerID: 10, Balance: decimal.NewFromInt(5000), Currency: "USD", Number: "VISA000001"})
	s.cache.AddAccount(CachedAccount{ID: 2, OwnerID: 11, Balance: decimal.NewFromInt(5000), Currency: "EUR", Number: "MIR000002"})
	s.cache.AddAccount(CachedAccount{ID: 3, OwnerID: 12, Balance: decimal.NewFromInt(5000), Currency: "RUB", Number: "MASTERCARD000003"})
	s.cache.types = []domain.TransactionType{
		{ID: 1, Name: "transfer"},
		{ID: 2, Name: "deposit"},
		{ID: 3, Name: "payment"},
	}
}

func TestConvertAmount(t *testing.T) {
	cases := []struct {
		name     string
		amount   decimal.Decimal
		from, to string
		want     decimal.Decimal
	}{
		{name: "same currency", amount: decimal.NewFromInt(100), from: "USD", to: "USD", want: decimal.NewFromInt(100)},
		{name: "usd to eur", amount: decimal.NewFromInt(100), from: "USD", to: "EUR", want: decimal.NewFromFloat(117.65)},
		{name: "eur to usd", amount: decimal.NewFromInt(100), from: "EUR", to: "USD", want: decimal.NewFromInt(85)},
		{name: "rub to usd", amount: decimal.NewFromInt(10), from: "RUB", to: "USD", want: decimal.NewFromInt(750)},
		{name: "unknown currency treated as base", amount: decimal.NewFromInt(10), from: "JPY", to: "USD", want: decimal.NewFromInt(10)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := convertAmount(tc.amount, tc.from, tc.to)
			if !got.Equal(tc.want) {
				t.Errorf("convertAmount(%s, %s, %s) = %s, want %s", tc.amount, tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestScheduleDates(t *testing.T) {
	rnd := testRand()
	start := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	t.Run("weekly", func(t *testing.T) {
		for range 50 {
			next, end := scheduleDates(rnd, domain.FrequencyWeekly, start)
			if !next.Equal(start.AddDate(0, 0, 7)) {
				t.Errorf("next = %s, want start+7d", next)
			}
			if end.Before(start.AddDate(0, 0, 30)) || end.After(start.AddDate(0, 0, 180)) {
				t.Errorf("end = %s, want within [start+30d, start+180d]", end)
			}
		}
	})

	t.Run("monthly", func(t *testing.T) {
		for range 50 {
			next, end := scheduleDates(rnd, domain.FrequencyMonthly, start)
			if !next.Equal(start.AddDate(0, 0, 30)) {
				t.Errorf("next = %s, want start+30d", next)
			}
			if end.Before(start.AddDate(0, 0, 90)) || end.After(start.AddDate(0, 0, 365)) {
				t.Errorf("end = %s, want within [start+90d, start+365d]", end)
			}
		}
	})
}
