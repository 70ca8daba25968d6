package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNamePostbacksReceived  = "postbacks_received_total"
	MetricNamePostbacksRejected  = "postbacks_rejected_total"
	MetricNameDepositVolume      = "deposit_volume_credited_total"
	MetricNamePredictionsAwarded = "predictions_awarded_total"
	MetricNameVerifications      = "verifications_total"
	MetricNameStoreErrors        = "ledger_store_errors_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextPostbacksReceived  = "Total number of postback events received, by network and event kind"
	HelpTextPostbacksRejected  = "Total number of postback events rejected, by reason"
	HelpTextDepositVolume      = "Total deposit amount credited to ledgers"
	HelpTextPredictionsAwarded = "Total number of predictions granted"
	HelpTextVerifications      = "Total number of login eligibility checks, by outcome status"
	HelpTextStoreErrors        = "Total number of ledger store failures, by operation"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelNetwork   = "network"
	LabelEventKind = "event_kind"
	LabelReason    = "reason"
	LabelOperation = "operation"
)

// Rejection reason label values
const (
	ReasonMissingPlayerID = "missing_player_id"
	ReasonStoreFailure    = "store_failure"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
