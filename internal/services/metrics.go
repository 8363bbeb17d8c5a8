package services

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	submissions *prometheus.CounterVec
	logins      *prometheus.CounterVec
	exports     prometheus.Counter
}

// NewMetrics registers the intake counters on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_submissions_total",
			Help: "Submission attempts by outcome (sent, failed, invalid).",
		}, []string{"outcome"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_hr_logins_total",
			Help: "HR passphrase checks by result (ok, denied).",
		}, []string{"result"}),
		exports: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "intake_exports_total",
			Help: "Spreadsheet exports produced.",
		}),
	}
	reg.MustRegister(m.submissions, m.logins, m.exports)
	return m
}

func (m *Metrics) submission(outcome string) {
	if m != nil {
		m.submissions.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) login(ok bool) {
	if m == nil {
		return
	}
	if ok {
		m.logins.WithLabelValues("ok").Inc()
	} else {
		m.logins.WithLabelValues("denied").Inc()
	}
}

func (m *Metrics) export() {
	if m != nil {
		m.exports.Inc()
	}
}
