package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RemindersSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reminder_emails_sent_total",
			Help: "Reminder emails delivered successfully",
		},
	)
	RemindersFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reminder_emails_failed_total",
			Help: "Reminder email delivery failures",
		},
	)
	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)
)

var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RemindersSent)
	prometheus.MustRegister(RemindersFailed)
	prometheus.MustRegister(WorkerQueueDepth)
}
