// Package metrics собирает счетчики активности генератора: prometheus для
// внешнего наблюдения и локальный снапшот для периодического лога и /stats.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sgerasimov/bankgen/internal/domain"
)

type Collector struct {
	registry                  *prometheus.Registry
	usersCreated              prometheus.Counter
	accountsCreated           prometheus.Counter
	transactionsCreated       *prometheus.CounterVec
	scheduledTransfersCreated prometheus.Counter
	achievementsGranted       prometheus.Counter
	tickDuration              prometheus.Histogram

	mu       sync.Mutex
	snapshot Stats
}

// Stats снапшот счетчиков за время жизни процесса. Счетчики принадлежат процессу,
// не ядру: обнуляются вместе с ним.
type Stats struct {
	UsersCreated              uint64 `json:"users_created"`
	AccountsCreated           uint64 `json:"accounts_created"`
	TransactionsCompleted     uint64 `json:"transactions_completed"`
	TransactionsFailed        uint64 `json:"transactions_failed"`
	ScheduledTransfersCreated uint64 `json:"scheduled_transfers_created"`
	AchievementsGranted       uint64 `json:"achievements_granted"`
}

func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		usersCreated: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "bankgen_users_created_total",
			Help: "Total number of synthetic users created",
		}),
		accountsCreated: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "bankgen_accounts_created_total",
			Help: "Total number of synthetic accounts created",
		}),
		transactionsCreated: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "bankgen_transactions_created_total",
			Help: "Total number of transaction records appended, by status",
		}, []string{"status"}),
		scheduledTransfersCreated: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "bankgen_scheduled_transfers_created_total",
			Help: "Total number of scheduled transfers spawned",
		}),
		achievementsGranted: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "bankgen_achievements_granted_total",
			Help: "Total number of achievement grants inserted",
		}),
		tickDuration: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "bankgen_tick_duration_seconds",
			Help:    "Duration of one generator tick",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (c *Collector) IncUsersCreated() {
	c.usersCreated.Inc()
	c.mu.Lock()
	c.snapshot.UsersCreated++
	c.mu.Unlock()
}

func (c *Collector) IncAccountsCreated() {
	c.accountsCreated.Inc()
	c.mu.Lock()
	c.snapshot.AccountsCreated++
	c.mu.Unlock()
}

func (c *Collector) IncTransactionsCreated(status domain.TransactionStatusType) {
	c.transactionsCreated.WithLabelValues(string(status)).Inc()
	c.mu.Lock()
	if status == domain.TransactionStatusFailed {
		c.snapshot.TransactionsFailed++
	} else {
		c.snapshot.TransactionsCompleted++
	}
	c.mu.Unlock()
}

func (c *Collector) IncScheduledTransfersCreated() {
	c.scheduledTransfersCreated.Inc()
	c.mu.Lock()
	c.snapshot.ScheduledTransfersCreated++
	c.mu.Unlock()
}

// AddAchievementsGranted учитывает только реально вставленные гранты,
// идемпотентные повторы сюда не попадают.
func (c *Collector) AddAchievementsGranted(n int) {
	if n <= 0 {
		return
	}
	c.achievementsGranted.Add(float64(n))
	c.mu.Lock()
	c.snapshot.AchievementsGranted += uint64(n)
	c.mu.Unlock()
}

func (c *Collector) ObserveTick(d time.Duration) {
	c.tickDuration.Observe(d.Seconds())
}

func (c *Collector) Snapshot() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}

// Handler возвращает http-обработчик prometheus для /metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
