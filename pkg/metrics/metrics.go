package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	LoginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "devfolio", Name: "login_attempts_total", Help: "Number of admin login attempts by outcome."},
		[]string{"outcome"},
	)
	ContentUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "devfolio", Name: "content_updates_total", Help: "Number of content section updates by section."},
		[]string{"section"},
	)
	ContactSubmissions = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "devfolio", Name: "contact_submissions_total", Help: "Number of accepted contact form submissions."},
	)
	StorageErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "devfolio", Name: "storage_errors_total", Help: "Number of storage backend failures by operation."},
		[]string{"op"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(LoginAttempts)
	reg.MustRegister(ContentUpdates)
	reg.MustRegister(ContactSubmissions)
	reg.MustRegister(StorageErrors)
}
