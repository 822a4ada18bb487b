package ranking

import (
	"time"

	"github.com/cldprgm/Network-vibe/domain"
)

// Weights of the post score formula
type Weights struct {
	Rating    float64 `mapstructure:"rating" validate:"gte=0"`
	Comments  float64 `mapstructure:"comments" validate:"gte=0"`
	Freshness float64 `mapstructure:"freshness" validate:"gte=0"`
	Random    float64 `mapstructure:"random" validate:"gte=0"`
	// JitterMax bounds random_factor to [0, JitterMax)
	JitterMax float64 `mapstructure:"jitter_max" validate:"gte=0"`
}

func DefaultWeights() Weights {
	return Weights{
		Rating:    0.4,
		Comments:  0.1,
		Freshness: 0.3,
		Random:    0.6,
		JitterMax: 0.4,
	}
}

// Freshness is 1/(1+hours since creation), in (0, 1]. Future timestamps count as now.
func Freshness(created, now time.Time) float64 {
	hours := now.Sub(created).Hours()
	if hours < 0 {
		hours = 0
	}
	return 1.0 / (1.0 + hours)
}

// PostScore computes
//
//	w_rating*sum_rating + w_comments*comment_count + w_freshness*freshness + w_random*random_factor
//
// with random_factor drawn from src in [0, JitterMax).
func PostScore(w Weights, s domain.ScoreSignal, now time.Time, src RandomSource) float64 {
	return w.Rating*float64(s.SumRating) +
		w.Comments*float64(s.CommentCount) +
		w.Freshness*Freshness(s.CreatedAt, now) +
		w.Random*Jitter(src, w.JitterMax)
}
