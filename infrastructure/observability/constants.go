package observability

// Metric name prefixes
const (
	MetricPrefix = "natanbot"
)

// Metric names
const (
	// Discord metrics
	MessagesReadTotal = MetricPrefix + ".messages.read_total"

	// Ledger metrics
	ActionsTotal             = MetricPrefix + ".ledger.actions_total"
	BalanceTransactionsTotal = MetricPrefix + ".ledger.balance_transactions_total"
	XPAwardedTotal           = MetricPrefix + ".xp.awarded_total"
	LevelUpsTotal            = MetricPrefix + ".xp.level_ups_total"

	// VIP metrics
	VIPGrantsTotal  = MetricPrefix + ".vip.grants_total"
	VIPExpiredTotal = MetricPrefix + ".vip.expired_total"

	// Store metrics
	StoreWritesTotal   = MetricPrefix + ".store.writes_total"
	StoreWriteDuration = MetricPrefix + ".store.write_duration"
)

// Label keys
const (
	LabelType   = "type"
	LabelKind   = "kind"
	LabelStatus = "status"
	LabelReason = "reason"
	LabelDomain = "domain"
	LabelResult = "result"
)

// Message types for Discord
const (
	MessageTypeInteraction = "interaction"
	MessageTypeMessage     = "message"
)

// Store write results
const (
	ResultOK    = "ok"
	ResultError = "error"
)
