package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Snowball engine metrics
	OrderingsComputed    prometheus.Counter
	SchedulesComputed    prometheus.Counter
	ProjectionsComputed  prometheus.Counter
	ProjectionInfeasible prometheus.Counter
	ProjectionMonths     prometheus.Histogram
	ProjectionDuration   prometheus.Histogram
	ProjectionCacheHits  *prometheus.CounterVec

	// Debt metrics
	DebtsCreated  prometheus.Counter
	DebtsPaidOff  prometheus.Counter
	DebtOperation *prometheus.CounterVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBQueries  *prometheus.CounterVec
	DBDuration *prometheus.HistogramVec
	DBErrors   *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec
}

var (
	defaultOnce    sync.Once
	defaultMetrics *Metrics
)

// Default returns the process-wide metrics, registering them on first use.
// promauto registration panics on duplicates, so all callers share this one.
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultMetrics = New()
	})
	return defaultMetrics
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		OrderingsComputed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "debtwise_orderings_computed_total",
			Help: "Total number of snowball orderings computed",
		}),
		SchedulesComputed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "debtwise_schedules_computed_total",
			Help: "Total number of payment schedules computed",
		}),
		ProjectionsComputed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "debtwise_projections_computed_total",
			Help: "Total number of debt-free-date projections computed",
		}),
		ProjectionInfeasible: promauto.NewCounter(prometheus.CounterOpts{
			Name: "debtwise_projections_infeasible_total",
			Help: "Total number of projections that could not converge",
		}),
		ProjectionMonths: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "debtwise_projection_months",
			Help:    "Months to debt free across successful projections",
			Buckets: []float64{6, 12, 24, 36, 60, 120, 240, 600},
		}),
		ProjectionDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "debtwise_projection_duration_seconds",
			Help:    "Duration of projection computations",
			Buckets: prometheus.DefBuckets,
		}),
		ProjectionCacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "debtwise_projection_cache_total",
				Help: "Projection cache lookups by outcome",
			},
			[]string{"outcome"},
		),

		DebtsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "debtwise_debts_created_total",
			Help: "Total number of debts created",
		}),
		DebtsPaidOff: promauto.NewCounter(prometheus.CounterOpts{
			Name: "debtwise_debts_paid_off_total",
			Help: "Total number of debts marked paid",
		}),
		DebtOperation: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "debtwise_debt_operations_total",
				Help: "Total debt operations by type",
			},
			[]string{"operation"},
		),

		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "debtwise_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "debtwise_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "debtwise_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "debtwise_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "debtwise_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "debtwise_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "debtwise_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),

		AuthAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "debtwise_auth_attempts_total",
				Help: "Total authentication attempts",
			},
			[]string{"status"},
		),
	}
}
