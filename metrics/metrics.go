package metrics

import "github.com/prometheus/client_golang/prometheus"

// ReminderMetrics exposes counters for the reminder batch runs.
type ReminderMetrics struct {
	runsTotal      *prometheus.CounterVec
	remindersTotal *prometheus.CounterVec
}

func NewReminderMetrics(reg prometheus.Registerer) *ReminderMetrics {
	m := &ReminderMetrics{
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salon",
			Subsystem: "reminders",
			Name:      "runs_total",
			Help:      "Total reminder batch runs",
		}, []string{"outcome"}), // completed, skipped_rest_day, failed
		remindersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salon",
			Subsystem: "reminders",
			Name:      "sends_total",
			Help:      "Total reminder send attempts",
		}, []string{"status"}), // sent, failed, skipped_no_phone, skipped_claimed
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.runsTotal, m.remindersTotal)
	return m
}

func (m *ReminderMetrics) ObserveRun(outcome string) {
	if m == nil {
		return
	}
	m.runsTotal.WithLabelValues(outcome).Inc()
}

func (m *ReminderMetrics) ObserveSend(status string) {
	if m == nil {
		return
	}
	m.remindersTotal.WithLabelValues(status).Inc()
}
