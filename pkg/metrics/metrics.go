// Package metrics предоставляет Prometheus-метрики сервиса планирования:
// HTTP-метрики для middleware и доменные счётчики движка.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	// HTTPRequestsTotal количество HTTP запросов по методу, пути и статусу
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration длительность HTTP запросов
	HTTPRequestDuration *prometheus.HistogramVec

	// AppointmentsScheduledTotal количество запланированных приёмов
	// по типу и приоритету
	AppointmentsScheduledTotal *prometheus.CounterVec

	// UrgentPreemptionsTotal количество переносов записей ради срочных приёмов
	UrgentPreemptionsTotal prometheus.Counter

	// AlternativeDatesTotal количество ответов с альтернативными датами
	// (подходящих врачей не нашлось)
	AlternativeDatesTotal prometheus.Counter

	// SchedulingFailuresTotal количество отказов планирования по причинам
	SchedulingFailuresTotal *prometheus.CounterVec

	// DBOpenConnections текущее количество открытых соединений с БД
	DBOpenConnections prometheus.Gauge

	// DBInUseConnections количество соединений, занятых запросами
	DBInUseConnections prometheus.Gauge

	// DBIdleConnections количество простаивающих соединений
	DBIdleConnections prometheus.Gauge

	// DBWaitDurationSeconds суммарное время ожидания свободного соединения
	DBWaitDurationSeconds prometheus.Gauge
}

// New создает и регистрирует метрики в реестре Prometheus по умолчанию
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "scheduling",
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   "scheduling",
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		AppointmentsScheduledTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "scheduling",
			Name:        "appointments_scheduled_total",
			Help:        "Total number of successfully scheduled appointments",
			ConstLabels: constLabels,
		}, []string{"type", "priority"}),

		UrgentPreemptionsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace:   "scheduling",
			Name:        "urgent_preemptions_total",
			Help:        "Total number of appointments rescheduled to make room for urgent requests",
			ConstLabels: constLabels,
		}),

		AlternativeDatesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace:   "scheduling",
			Name:        "alternative_dates_total",
			Help:        "Total number of responses suggesting alternative dates",
			ConstLabels: constLabels,
		}),

		SchedulingFailuresTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "scheduling",
			Name:        "scheduling_failures_total",
			Help:        "Total number of scheduling failures by reason",
			ConstLabels: constLabels,
		}, []string{"reason"}),

		DBOpenConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace:   "scheduling",
			Name:        "db_open_connections",
			Help:        "Current number of open database connections",
			ConstLabels: constLabels,
		}),

		DBInUseConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace:   "scheduling",
			Name:        "db_in_use_connections",
			Help:        "Number of database connections currently in use",
			ConstLabels: constLabels,
		}),

		DBIdleConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace:   "scheduling",
			Name:        "db_idle_connections",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}),

		DBWaitDurationSeconds: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace:   "scheduling",
			Name:        "db_wait_duration_seconds_total",
			Help:        "Total time blocked waiting for a database connection",
			ConstLabels: constLabels,
		}),
	}
}

// AppointmentScheduled фиксирует успешно запланированный приём
func (m *Metrics) AppointmentScheduled(apptType, priority string) {
	m.AppointmentsScheduledTotal.WithLabelValues(apptType, priority).Inc()
}

// UrgentPreemptions фиксирует количество переносов ради срочного приёма
func (m *Metrics) UrgentPreemptions(count int) {
	m.UrgentPreemptionsTotal.Add(float64(count))
}

// AlternativeDatesSuggested фиксирует ответ с альтернативными датами
func (m *Metrics) AlternativeDatesSuggested() {
	m.AlternativeDatesTotal.Inc()
}

// SchedulingFailure фиксирует отказ планирования
func (m *Metrics) SchedulingFailure(reason string) {
	m.SchedulingFailuresTotal.WithLabelValues(reason).Inc()
}
