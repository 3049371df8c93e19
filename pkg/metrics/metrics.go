package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// =============================================================================
// HTTP Метрики
// =============================================================================

// HttpRequestsTotal - счётчик всех HTTP запросов
// Labels: service, method, path, status
var HttpRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	},
	[]string{"service", "method", "path", "status"},
)

// HttpRequestDuration - гистограмма времени ответа
// Пример: histogram_quantile(0.95, rate(http_request_duration_seconds_bucket[5m]))
var HttpRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	},
	[]string{"service", "method", "path"},
)

// HttpRequestsInFlight - текущее количество обрабатываемых запросов
var HttpRequestsInFlight = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "http_requests_in_flight",
		Help: "Current number of HTTP requests being processed",
	},
	[]string{"service"},
)

// =============================================================================
// MongoDB Метрики
// =============================================================================

// MongoOperationDuration - время выполнения операций с коллекцией
var MongoOperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "mongo_operation_duration_seconds",
		Help:    "Duration of MongoDB operations in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	},
	[]string{"service", "operation", "collection"},
)

// MongoErrors - счётчик ошибок MongoDB
var MongoErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "mongo_errors_total",
		Help: "Total number of MongoDB errors",
	},
	[]string{"service", "operation"},
)

// =============================================================================
// Kafka Метрики
// =============================================================================

// KafkaMessagesProduced - отправленные сообщения
var KafkaMessagesProduced = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "kafka_messages_produced_total",
		Help: "Total number of Kafka messages produced",
	},
	[]string{"service", "topic"},
)

// KafkaProduceDuration - время отправки сообщения
var KafkaProduceDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "kafka_produce_duration_seconds",
		Help:    "Duration of Kafka produce operations",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	},
	[]string{"service", "topic"},
)

// KafkaErrors - ошибки Kafka
var KafkaErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "kafka_errors_total",
		Help: "Total number of Kafka errors",
	},
	[]string{"service", "topic", "operation"},
)

// =============================================================================
// Метрики вызовов внешних сервисов (User API, Offer API)
// =============================================================================

// UpstreamRequestDuration - время запросов к внешним сервисам
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "upstream_request_duration_seconds",
		Help:    "Duration of requests to upstream services",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	},
	[]string{"service", "target"}, // target: user-api, offer-api
)

// UpstreamErrors - ошибки запросов к внешним сервисам
var UpstreamErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "upstream_errors_total",
		Help: "Total number of upstream request errors",
	},
	[]string{"service", "target", "kind"}, // kind: transport, status
)

// =============================================================================
// Business Метрики
// =============================================================================

// ReviewsCreated - созданные отзывы
var ReviewsCreated = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "reviews_created_total",
		Help: "Total number of reviews created",
	},
)

// ReviewsGrade - распределение оценок
var ReviewsGrade = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "reviews_grade",
		Help:    "Distribution of review grades",
		Buckets: []float64{0, 1, 2, 3, 4, 5},
	},
)

// ResponsesAdded - ответы, добавленные к отзывам
var ResponsesAdded = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "review_responses_added_total",
		Help: "Total number of responses added to reviews",
	},
)
