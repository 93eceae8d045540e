package webhook

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	eventKindVerification = "url_verification"
	eventKindText         = "text"
	eventKindIgnored      = "ignored"

	deliveryStatusOK     = "ok"
	deliveryStatusFailed = "failed"
)

var (
	eventsReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "feishu_relay",
		Name:      "events_received_total",
		Help:      "Webhook events received, by kind.",
	}, []string{"kind"})

	completionFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "feishu_relay",
		Name:      "completion_failures_total",
		Help:      "Completion calls that ended in a diagnostic reply.",
	})

	deliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "feishu_relay",
		Name:      "deliveries_total",
		Help:      "Replies sent back to the messaging platform, by status.",
	}, []string{"status"})
)
