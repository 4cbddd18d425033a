package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ParcelsByStatus обновляется фоновой задачей status_metrics.
var ParcelsByStatus = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "parcels_by_status",
		Help: "Number of parcels per current tracking status",
	},
	[]string{"status"},
)
