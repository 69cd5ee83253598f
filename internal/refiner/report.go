package refiner

import (
	"image"
	"time"

	"github.com/Hari-Shankar-Karthik/masklasso/internal/config"
	"github.com/Hari-Shankar-Karthik/masklasso/internal/mask"
	"github.com/Hari-Shankar-Karthik/masklasso/internal/metrics"
)

// Report compares the original and refined masks against the source image.
type Report struct {
	Original   metrics.Scores  `json:"original" yaml:"original"`
	Refined    metrics.Scores  `json:"refined" yaml:"refined"`
	Overlap    metrics.Overlap `json:"overlap" yaml:"overlap"`
	Processing float64         `json:"processing_time_seconds" yaml:"processing_time_seconds"`
}

// RefineWithReport runs the refinement and scores both masks, returning the
// refined mask together with a comparison report.
func RefineWithReport(m *mask.Mask, img image.Image, cfg *config.Config) (*mask.Mask, *Report, error) {
	start := time.Now()
	refined, err := Refine(m, img, &cfg.Refine)
	if err != nil {
		return nil, nil, err
	}

	origScores, err := metrics.Compute(m, img, cfg.Metrics.EdgeThreshold)
	if err != nil {
		return nil, nil, err
	}
	refScores, err := metrics.Compute(refined, img, cfg.Metrics.EdgeThreshold)
	if err != nil {
		return nil, nil, err
	}

	report := &Report{
		Original:   origScores,
		Refined:    refScores,
		Overlap:    metrics.ComputeOverlap(m, refined),
		Processing: time.Since(start).Seconds(),
	}
	return refined, report, nil
}
