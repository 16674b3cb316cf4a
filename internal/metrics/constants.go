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

// Valuation metric names
const (
	MetricNameValuationsTotal   = "valuations_total"
	MetricNameValuationDuration = "valuation_duration_seconds"
	MetricNameEfficiencyCache   = "efficiency_cache_lookups_total"
	MetricNameRecommendedRounds = "efficiency_recommended_rounds"
	MetricNameDatasetVersion    = "dataset_version"
	MetricNameDatasetMutations  = "dataset_mutations_total"
	MetricNameDatasetEntries    = "dataset_entries"
	MetricNameDatasetRefreshes  = "dataset_refreshes_total"
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

// Valuation metric help text
const (
	HelpTextValuationsTotal   = "Total number of valuations by operation and outcome"
	HelpTextValuationDuration = "Valuation latency in seconds"
	HelpTextEfficiencyCache   = "Efficiency result cache lookups by result"
	HelpTextRecommendedRounds = "Delivery milestone recommended by best-mode evaluations"
	HelpTextDatasetVersion    = "Version of the active dataset"
	HelpTextDatasetMutations  = "Total number of dataset mutations by operation"
	HelpTextDatasetEntries    = "Number of entries in the active dataset by kind"
	HelpTextDatasetRefreshes  = "Scheduled dataset refreshes by outcome"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
	LabelOutcome   = "outcome"
	LabelResult    = "result"
	LabelKind      = "kind"
)

// Label values
const (
	OutcomeSuccess = "success"
	CacheHit       = "hit"
	CacheMiss      = "miss"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

// ValuationLatencyBuckets are finer since valuations run in memory
var ValuationLatencyBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05}
