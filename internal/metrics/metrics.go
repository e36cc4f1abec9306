package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jobboard_request_duration_seconds",
			Help:    "Duration of each HTTP request in seconds.",
			Buckets: []float64{0.005, 0.025, 0.1, 0.5, 1, 5},
		},
		[]string{"method", "path", "status"},
	)
	ApplicationsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboard_applications_submitted_total",
			Help: "Total number of submitted applications.",
		},
	)
	NotificationsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboard_notifications_delivered_total",
			Help: "Total number of real-time notifications written to sockets.",
		},
	)
	WsConnectionsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "jobboard_ws_connections",
			Help: "Number of open websocket connections.",
		},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(ApplicationsCounter)
	prometheus.MustRegister(NotificationsCounter)
	prometheus.MustRegister(WsConnectionsGauge)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), mux))
	}()
}
