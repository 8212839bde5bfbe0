package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hipchat_plugin_events_total",
		Help: "The total number of processed build events",
	}, []string{"event"})

	notificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hipchat_plugin_notifications_total",
		Help: "The total number of delivered chat messages",
	}, []string{"color"})

	perf = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "hipchat_plugin_perf",
		Help: "Performance of functions",
	}, []string{"function"})
)
