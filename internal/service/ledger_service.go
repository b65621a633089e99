package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/sgerasimov/bankgen/internal/domain"
	"github.com/sgerasimov/bankgen/internal/metrics"
	"github.com/sgerasimov/bankgen/pkg/uow"
)

const (
	// depositProbability вероятность транзакции без отправителя (внешнее пополнение).
	depositProbability = 0.3
	// scheduledSpawnProbability вероятность породить регулярный перевод из завершенного.
	scheduledSpawnProbability = 0.05

	// amountOffset прибавляется к розыгрышу суммы уже после округления. Сумма
	// нарочно может превысить баланс отправителя: так остается живой путь
	// insufficient funds.
	amountOffset = 100

	amountDrawMin      = 1.0
	syntheticAmountMin = 10.0
	syntheticAmountMax = 1000.0

	depositTypeName = "deposit"

	moneyScale = 2

	descriptionSuffixMin = 1000
	descriptionSuffixMax = 9999

	weeklyNextDays   = 7
	weeklyEndMinDays = 30
	weeklyEndMaxDays = 180

	monthlyNextDays   = 30
	monthlyEndMinDays = 90
	monthlyEndMaxDays = 365
)

// conversionRates фиксированный курс валют к базовой (USD). Иллюстративные
// константы, не живой фид.
var conversionRates = map[string]decimal.Decimal{
	"USD": decimal.NewFromFloat(1.0),
	"EUR": decimal.NewFromFloat(0.85),
	"RUB": decimal.NewFromFloat(75.0),
	"GBP": decimal.NewFromFloat(0.73),
}

var descriptionPhrases = map[string][]string{
	"transfer":   {"Money transfer", "Funds transfer", "Payment"},
	"deposit":    {"ATM deposit", "Bank deposit", "Cash deposit"},
	"withdrawal": {"ATM withdrawal", "Cash withdrawal"},
	"payment":    {"Online payment", "Store payment", "Service payment"},
	"refund":     {"Purchase refund", "Service refund"},
}

const defaultDescriptionPhrase = "Transaction"

// LedgerService движок генерации операций: выбирает участников, считает сумму и
// конвертацию, атомарно двигает балансы и дописывает запись в журнал.
type LedgerService struct {
	uow     uow.UOW
	cache   *EntityCache
	metrics *metrics.Collector
	rnd     *rand.Rand
	l       *logrus.Entry
}

func NewLedgerService(
	u uow.UOW,
	cache *EntityCache,
	collector *metrics.Collector,
	rnd *rand.Rand,
	l *logrus.Logger,
) (*LedgerService, error) {
	if _, err := uow.GetRepositoryAs[TransactionRepository](u, uow.RepositoryName(domain.TransactionRepoName)); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &LedgerService{
		uow:     u,
		cache:   cache,
		metrics: collector,
		rnd:     rnd,
		l:       l.WithField("component", "ledger_service"),
	}, nil
}

// transferPlan разыгранные параметры одной операции. Отделен от применения,
// чтобы применение оставалось детерминированным.
type transferPlan struct {
	Sender      *CachedAccount
	Receiver    CachedAccount
	Amount      decimal.Decimal
	Converted   decimal.Decimal
	TypeID      int64
	Description string
	Reference   string
}

type applyResult struct {
	Status          domain.TransactionStatusType
	SenderBalance   decimal.Decimal
	ReceiverBalance decimal.Decimal
}

// GenerateTransaction пытается создать одну транзакцию. Меньше двух счетов в
// кеше - no-op. Бизнес-отказ (нехватка средств) не ошибка: в журнал ложится
// failed-запись и вызов завершается штатно.
func (s *LedgerService) GenerateTransaction(ctx context.Context) error {
	if s.cache.AccountCount() < 2 {
		return nil
	}

	plan, ok := s.draw()
	if !ok {
		return nil
	}

	res, applyErr := s.apply(ctx, plan)
	if applyErr != nil {
		return fmt.Errorf("generate transaction: %w", applyErr)
	}

	s.metrics.IncTransactionsCreated(res.Status)

	if res.Status == domain.TransactionStatusFailed {
		s.l.WithFields(logrus.Fields{
			"sender": plan.Sender.Number,
			"amount": plan.Amount.String(),
		}).Warn("insufficient funds for transaction")
		return nil
	}

	if plan.Sender != nil {
		s.cache.SetBalance(plan.Sender.ID, res.SenderBalance)
	}
	s.cache.SetBalance(plan.Receiver.ID, res.ReceiverBalance)

	if plan.Sender != nil && s.rnd.Float64() < scheduledSpawnProbability {
		if spawnErr := s.spawnScheduledTransfer(ctx, plan.Sender.ID, plan.Receiver.ID, plan.Amount); spawnErr != nil {
			// породить регулярный перевод не вышло - сама транзакция уже закоммичена,
			// поэтому только логируем.
			s.l.WithError(spawnErr).Error("create scheduled transfer")
		}
	}

	s.l.WithFields(logrus.Fields{
		"amount":    plan.Amount.String(),
		"converted": plan.Converted.String(),
		"from":      senderLabel(plan.Sender),
		"to":        plan.Receiver.Number,
	}).Info("created transaction")
	return nil
}

// draw разыгрывает участников, сумму, категорию и описание будущей операции.
func (s *LedgerService) draw() (transferPlan, bool) {
	var sender *CachedAccount
	if s.rnd.Float64() >= depositProbability {
		acc, ok := s.cache.RandomAccount(s.rnd)
		if !ok {
			return transferPlan{}, false
		}
		sender = &acc
	}

	receiver, ok := s.cache.RandomAccount(s.rnd)
	if !ok {
		return transferPlan{}, false
	}
	// самоперевод исключается пересэмплированием, а не отказом постфактум
	for sender != nil && sender.ID == receiver.ID {
		receiver, _ = s.cache.RandomAccount(s.rnd)
	}

	amount := s.drawAmount(sender)
	txType := s.drawType(sender)
	converted := amount
	if sender != nil && sender.Currency != receiver.Currency {
		converted = convertAmount(amount, sender.Currency, receiver.Currency)
	}

	return transferPlan{
		Sender:      sender,
		Receiver:    receiver,
		Amount:      amount,
		Converted:   converted,
		TypeID:      txType.ID,
		Description: s.describe(txType),
		Reference:   uuid.NewString(),
	}, true
}

// drawAmount ограничивает розыгрыш кешированным балансом отправителя (или
// синтетическим потолком для депозита), округляет до копеек и добавляет
// фиксированное смещение. Порядок важен: сначала округление, потом смещение.
func (s *LedgerService) drawAmount(sender *CachedAccount) decimal.Decimal {
	var maxAmount float64
	if sender != nil {
		maxAmount, _ = sender.Balance.Float64()
	} else {
		maxAmount = uniformFloat(s.rnd, syntheticAmountMin, syntheticAmountMax)
	}
	if maxAmount < amountDrawMin {
		maxAmount = amountDrawMin
	}

	drawn := decimal.NewFromFloat(uniformFloat(s.rnd, amountDrawMin, maxAmount)).Round(moneyScale)
	return drawn.Add(decimal.NewFromInt(amountOffset))
}

// drawType выбирает категорию равновероятно; для операции без отправителя
// принудительно deposit (у депозита не бывает дебетуемой стороны).
func (s *LedgerService) drawType(sender *CachedAccount) domain.TransactionType {
	txType, _ := s.cache.RandomTransactionType(s.rnd)
	if sender == nil {
		if deposit, ok := s.cache.TransactionTypeByName(depositTypeName); ok {
			return deposit
		}
	}
	return txType
}

func (s *LedgerService) describe(txType domain.TransactionType) string {
	phrases, ok := descriptionPhrases[txType.Name]
	if !ok {
		phrases = []string{defaultDescriptionPhrase}
	}
	phrase := phrases[s.rnd.IntN(len(phrases))]
	return fmt.Sprintf("%s #%d", phrase, uniformInt(s.rnd, descriptionSuffixMin, descriptionSuffixMax))
}

// convertAmount переводит сумму между валютами через фиксированную таблицу курсов
// к базовой единице. Неизвестная валюта считается базовой (курс 1).
func convertAmount(amount decimal.Decimal, fromCurrency, toCurrency string) decimal.Decimal {
	return amount.Mul(rateOf(fromCurrency)).Div(rateOf(toCurrency)).Round(moneyScale)
}

func rateOf(currency string) decimal.Decimal {
	if rate, ok := conversionRates[currency]; ok {
		return rate
	}
	return decimal.NewFromInt(1)
}

// apply исполняет план одной транзакцией БД: условное списание, зачисление и
// запись журнала коммитятся или откатываются вместе. Нехватка средств не
// откатывает транзакцию - вместо переводов коммитится failed-запись без
// какого-либо влияния на балансы.
func (s *LedgerService) apply(ctx context.Context, plan transferPlan) (applyResult, error) {
	var res applyResult

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		accountRepo, accountRepoErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(domain.AccountRepoName))
		if accountRepoErr != nil {
			return accountRepoErr //nolint:wrapcheck
		}
		transactionRepo, transactionRepoErr := uow.GetAs[TransactionRepository](
			tx, uow.RepositoryName(domain.TransactionRepoName))
		if transactionRepoErr != nil {
			return transactionRepoErr //nolint:wrapcheck
		}

		record := domain.TransactionCreate{
			ReceiverID:  plan.Receiver.ID,
			Amount:      plan.Amount,
			Converted:   plan.Converted,
			Reference:   plan.Reference,
			Description: plan.Description,
			TypeID:      plan.TypeID,
			Status:      domain.TransactionStatusCompleted,
		}

		if plan.Sender != nil {
			record.SenderID = &plan.Sender.ID

			senderBalance, debitErr := accountRepo.DebitIfSufficient(c, plan.Sender.ID, plan.Amount)
			if errors.Is(debitErr, domain.ErrInsufficientFunds) {
				record.Status = domain.TransactionStatusFailed
				if _, insertErr := transactionRepo.Create(c, record); insertErr != nil {
					return insertErr //nolint:wrapcheck
				}
				res.Status = domain.TransactionStatusFailed
				return nil
			}
			if debitErr != nil {
				return debitErr //nolint:wrapcheck
			}
			res.SenderBalance = senderBalance
		}

		receiverBalance, creditErr := accountRepo.Credit(c, plan.Receiver.ID, plan.Converted)
		if creditErr != nil {
			return creditErr //nolint:wrapcheck
		}
		res.ReceiverBalance = receiverBalance

		if _, insertErr := transactionRepo.Create(c, record); insertErr != nil {
			return insertErr //nolint:wrapcheck
		}
		res.Status = domain.TransactionStatusCompleted
		return nil
	})
	if txErr != nil {
		return applyResult{}, txErr //nolint:wrapcheck
	}
	return res, nil
}

// spawnScheduledTransfer материализует регулярный перевод из только что
// завершенного. Отдельная транзакция БД: исходная операция уже закоммичена.
// Покрытие будущих списаний не проверяется - фиксируется только намерение.
func (s *LedgerService) spawnScheduledTransfer(ctx context.Context, senderID, receiverID int64, amount decimal.Decimal) error {
	frequency := domain.FrequencyWeekly
	if s.rnd.IntN(2) == 1 {
		frequency = domain.FrequencyMonthly
	}
	start := time.Now()
	next, end := scheduleDates(s.rnd, frequency, start)

	description := fmt.Sprintf("Scheduled %s transfer #%d",
		frequency, uniformInt(s.rnd, descriptionSuffixMin, descriptionSuffixMax))

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		transferRepo, transferRepoErr := uow.GetAs[ScheduledTransferRepository](
			tx, uow.RepositoryName(domain.ScheduledTransferRepoName))
		if transferRepoErr != nil {
			return transferRepoErr //nolint:wrapcheck
		}
		_, createErr := transferRepo.Create(c, domain.ScheduledTransferCreate{
			SenderID:       senderID,
			ReceiverID:     receiverID,
			Amount:         amount,
			Description:    description,
			Frequency:      frequency,
			StartDate:      start,
			NextOccurrence: next,
			EndDate:        end,
		})
		return createErr //nolint:wrapcheck
	})
	if txErr != nil {
		return fmt.Errorf("spawning scheduled transfer: %w", txErr)
	}

	s.metrics.IncScheduledTransfersCreated()
	s.l.WithField("frequency", frequency).Info("created scheduled transfer")
	return nil
}

// scheduleDates считает дату следующего срабатывания и дату окончания:
// weekly - +7 дней и конец через 30-180 дней, monthly - +30 и 90-365.
func scheduleDates(rnd *rand.Rand, frequency domain.FrequencyType, start time.Time) (next, end time.Time) {
	if frequency == domain.FrequencyWeekly {
		next = start.AddDate(0, 0, weeklyNextDays)
		end = start.AddDate(0, 0, uniformInt(rnd, weeklyEndMinDays, weeklyEndMaxDays))
		return next, end
	}
	next = start.AddDate(0, 0, monthlyNextDays)
	end = start.AddDate(0, 0, uniformInt(rnd, monthlyEndMinDays, monthlyEndMaxDays))
	return next, end
}

func senderLabel(sender *CachedAccount) string {
	if sender == nil {
		return "DEPOSIT"
	}
	return sender.Number
}
