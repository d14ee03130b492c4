package ranking

import (
	"math"

	"github.com/jonathan/resume-ranker/internal/similarity"
	"github.com/jonathan/resume-ranker/internal/types"
)

// Reporting band the raw weighted score is mapped into before percentage conversion
const (
	BandFloor = 0.75
	BandSpan  = 0.20
)

// RawScore is the weighted sum of the axis scores
func RawScore(axes []types.AxisResult) float64 {
	total := 0.0
	for _, a := range axes {
		total += a.Score * a.Weight
	}
	return total
}

// Band maps a raw score onto [BandFloor, BandFloor+BandSpan]
func Band(raw float64) float64 {
	return BandFloor + similarity.Clamp01(raw)*BandSpan
}

// Percent converts a [0, 1] score to a percentage rounded to two decimals
func Percent(score float64) float64 {
	return math.Round(score*10000) / 100
}
