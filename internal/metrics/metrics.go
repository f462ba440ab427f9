// Package metrics defines the Prometheus instruments for the recruit-portal
// client. It is the single source of truth for metric names, labels, and
// help strings; collectors register themselves with the default registry at
// package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "recruit"

// RequestsTotal counts outbound API requests.
// Labels:
//   - op: logical operation name (e.g. "jobs.list", "auth.login")
//   - outcome: "ok", "rejected" (credential refused), or "error"
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of outbound API requests, by operation and outcome.",
	},
	[]string{"op", "outcome"},
)

// AuthRejectedTotal counts credential rejections that forced a logout.
var AuthRejectedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejected_total",
		Help:      "Total number of 401 responses that cleared the local session.",
	},
)

// ResumeUploadBytes observes the size of uploaded resume files.
var ResumeUploadBytes = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "resume_upload_bytes",
		Help:      "Size distribution of uploaded resume files.",
		Buckets:   prometheus.ExponentialBuckets(64*1024, 4, 8), // 64 KiB .. 1 GiB
	},
)

// SearchesTotal counts job searches, split by whether any filter was set.
var SearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of job searches, by filtered/unfiltered.",
	},
	[]string{"filtered"},
)
