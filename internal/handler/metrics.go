package handler

import (
	"github.com/pr-poehali-dev/perfume-shop-creation/internal/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "perfume_shop",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total number of successfully saved orders",
		},
	)

	ordersFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "perfume_shop",
			Subsystem: "orders",
			Name:      "failed_total",
			Help:      "Total number of failed order save attempts",
		},
	)

	notificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "perfume_shop",
			Subsystem: "notifications",
			Name:      "dispatched_total",
			Help:      "Notification delivery attempts by channel and outcome",
		},
		[]string{"channel", "outcome"},
	)
)

// notificationResult учитывает только реальные попытки доставки:
// несконфигурированный канал не попадает в метрику вовсе.
func notificationResult(channel string, outcome entities.DeliveryOutcome) {
	var label string
	switch outcome {
	case entities.DeliverySent:
		label = "success"
	case entities.DeliveryFailed:
		label = "failure"
	default:
		return
	}
	notificationsTotal.WithLabelValues(channel, label).Inc()
}
