package config

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus counters for the issue workflow
var (
	IssuesSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portal",
			Name:      "issues_submitted_total",
			Help:      "Total number of citizen issue reports submitted",
		},
		[]string{"ward", "category"},
	)

	IssueStatusUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portal",
			Name:      "issue_status_updates_total",
			Help:      "Total number of moderation status changes",
		},
		[]string{"status"},
	)

	AttachmentUploads = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "portal",
			Name:      "attachment_uploads_total",
			Help:      "Total number of attachment uploads",
		},
	)
)
