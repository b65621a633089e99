package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sgerasimov/bankgen/internal/domain"
)

func TestCollectorSnapshot(t *testing.T) {
	c := NewCollector()

	c.IncUsersCreated()
	c.IncAccountsCreated()
	c.IncAccountsCreated()
	c.IncTransactionsCreated(domain.TransactionStatusCompleted)
	c.IncTransactionsCreated(domain.TransactionStatusCompleted)
	c.IncTransactionsCreated(domain.TransactionStatusFailed)
	c.IncScheduledTransfersCreated()
	c.AddAchievementsGranted(3)
	c.ObserveTick(10 * time.Millisecond)

	stats := c.Snapshot()
	assert.Equal(t, uint64(1), stats.UsersCreated)
	assert.Equal(t, uint64(2), stats.AccountsCreated)
	assert.Equal(t, uint64(2), stats.TransactionsCompleted)
	assert.Equal(t, uint64(1), stats.TransactionsFailed)
	assert.Equal(t, uint64(1), stats.ScheduledTransfersCreated)
	assert.Equal(t, uint64(3), stats.AchievementsGranted)
}

func TestCollectorAddAchievementsGranted_IgnoresNonPositive(t *testing.T) {
	c := NewCollector()

	c.AddAchievementsGranted(0)
	c.AddAchievementsGranted(-5)

	assert.Zero(t, c.Snapshot().AchievementsGranted)
}

// Снапшот - копия: мутации после чтения его не трогают.
func TestCollectorSnapshotIsACopy(t *testing.T) {
	c := NewCollector()
	c.IncUsersCreated()

	before := c.Snapshot()
	c.IncUsersCreated()

	assert.Equal(t, uint64(1), before.UsersCreated)
	assert.Equal(t, uint64(2), c.Snapshot().UsersCreated)
}
