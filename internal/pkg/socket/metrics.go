package socket

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PushEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "push_events_total",
			Help: "Total number of push events received, by event name",
		},
		[]string{"event"},
	)

	PushBadFramesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "push_bad_frames_total",
			Help: "Total number of inbound frames that failed to decode",
		},
	)

	PushReconnectsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "push_reconnects_total",
			Help: "Total number of reconnection rounds after a transport break",
		},
	)
)
