// Package metrics provides Prometheus metrics for the room-api service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ActiveRooms tracks the number of rooms currently in the active state.
	ActiveRooms = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "room_active_rooms",
			Help: "Number of currently active rooms",
		},
	)

	// RoomsCreated tracks the total number of rooms created, by agent.
	RoomsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "room_rooms_created_total",
			Help: "Total number of rooms created",
		},
		[]string{"agent"},
	)

	// RoomsClosed tracks the total number of rooms closed, by close reason.
	RoomsClosed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "room_rooms_closed_total",
			Help: "Total number of rooms closed",
		},
		[]string{"reason"},
	)

	// ChatDurationSeconds tracks the distribution of recorded chat durations.
	ChatDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "room_chat_duration_seconds",
			Help:    "Recorded chat duration at room close",
			Buckets: []float64{10, 30, 60, 120, 300, 600, 1800, 3600},
		},
	)

	// RemoteOperations tracks calls to the LiveKit server API.
	RemoteOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "room_remote_operations_total",
			Help: "Total LiveKit server API operations",
		},
		[]string{"operation", "status"},
	)

	// CredentialsIssued tracks the total number of API credentials issued.
	CredentialsIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "room_credentials_issued_total",
			Help: "Total number of API credentials issued",
		},
	)

	// CredentialsRevoked tracks the total number of API credentials revoked.
	CredentialsRevoked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "room_credentials_revoked_total",
			Help: "Total number of API credentials revoked",
		},
	)

	// CredentialsSwept tracks expired store entries removed by the sweeper.
	CredentialsSwept = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "room_credentials_swept_total",
			Help: "Total number of expired credential entries swept",
		},
	)

	// TokenGenerationDuration tracks media grant generation time.
	TokenGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "room_token_generation_duration_seconds",
			Help:    "Duration of LiveKit media token generation",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
	)

	// OccupancySyncErrors tracks errors during occupancy polling.
	OccupancySyncErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "room_occupancy_sync_errors_total",
			Help: "Total number of errors during occupancy sync",
		},
	)

	// RequestsTotal counts HTTP requests handled by the service.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "room_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// RequestDuration tracks HTTP request latency.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "room_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)
)

// RecordRoomCreated increments room creation metrics.
func RecordRoomCreated(agent string) {
	RoomsCreated.WithLabelValues(agent).Inc()
	ActiveRooms.Inc()
}

// RecordRoomClosed increments room closure metrics.
func RecordRoomClosed(reason string, durationSec int) {
	RoomsClosed.WithLabelValues(reason).Inc()
	ChatDurationSeconds.Observe(float64(durationSec))
	ActiveRooms.Dec()
}

// RecordRemoteOperation records a LiveKit server API call.
func RecordRemoteOperation(operation, status string) {
	RemoteOperations.WithLabelValues(operation, status).Inc()
}

// RecordRequest records an HTTP request.
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSec)
}
