package domain

type RepositoryName string

const (
	UserRepoName              RepositoryName = "user"
	AccountRepoName           RepositoryName = "account"
	PaymentRailRepoName       RepositoryName = "payment_rail"
	TransactionTypeRepoName   RepositoryName = "transaction_type"
	TransactionRepoName       RepositoryName = "transaction"
	ScheduledTransferRepoName RepositoryName = "scheduled_transfer"
	AchievementRepoName       RepositoryName = "achievement"
)
