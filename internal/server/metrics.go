package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	analysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "emotion_dashboard_analyses_total",
		Help: "Completed analyses by kind (single, dataset, review, batch).",
	}, []string{"kind"})

	datasetUploadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "emotion_dashboard_dataset_uploads_total",
		Help: "Datasets accepted into the working set.",
	})

	datasetRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "emotion_dashboard_dataset_rejections_total",
		Help: "Dataset uploads rejected, by reason.",
	}, []string{"reason"})
)
