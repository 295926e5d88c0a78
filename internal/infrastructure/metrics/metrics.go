package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "documentacion",
			Name:      "work_order_transitions_total",
			Help:      "Status change requests per order kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	attachmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "documentacion",
			Name:      "attachments_total",
			Help:      "Uploaded files per order kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	messagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "documentacion",
			Name:      "communication_messages_total",
			Help:      "Messages posted on prosthesis threads per sender kind.",
		},
		[]string{"sender_kind"},
	)
)

const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

func RecordTransition(kind, outcome string) {
	transitionsTotal.WithLabelValues(kind, outcome).Inc()
}

func RecordAttachments(kind, outcome string, n int) {
	if n <= 0 {
		return
	}
	attachmentsTotal.WithLabelValues(kind, outcome).Add(float64(n))
}

func RecordMessage(senderKind string) {
	messagesTotal.WithLabelValues(senderKind).Inc()
}
