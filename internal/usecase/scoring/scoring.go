// Package scoring turns candidate technician facts into ranked suggestions.
// Everything here is a pure function of its inputs.
package scoring

import (
	"fmt"
	"math"
	"sort"

	"dispatch_service/internal/config"
	"dispatch_service/internal/domain/entities"

	"github.com/dustin/go-humanize"
)

// Candidate holds the facts gathered for one eligible technician.
type Candidate struct {
	TechID                   string
	TechName                 string
	ETAMinutes               *float64
	ETAWithoutTrafficMinutes *float64
	DistanceKm               *float64
	ETAEstimated             bool
	FreeMinutes              int
	ShiftMinutes             int
	EarliestStart            string
	Performance              entities.PerformanceStats
	IsPreferred              bool
}

// neutral is used for rating and on-time factors of technicians with no
// history yet.
const neutral = 0.5

// Rank scores every candidate and returns them best first.
func Rank(cands []Candidate, w config.ScoringWeights) []entities.TechSuggestion {
	best, worst, anyETA := etaBounds(cands)
	total := w.Total()

	out := make([]entities.TechSuggestion, 0, len(cands))
	for _, c := range cands {
		b := entities.ScoreBreakdown{
			Proximity:    proximity(c.ETAMinutes, best, worst, anyETA),
			Availability: availability(c.FreeMinutes, c.ShiftMinutes),
			OnTime:       onTime(c.Performance),
			Rating:       rating(c.Performance),
		}
		if c.IsPreferred {
			b.Preferred = 1
		}
		weighted := w.Proximity*b.Proximity + w.Availability*b.Availability + w.OnTime*b.OnTime +
			w.Rating*b.Rating + w.Preferred*b.Preferred
		score := 0
		if total > 0 {
			score = int(math.Round(weighted / total * 100))
		}
		out = append(out, entities.TechSuggestion{
			TechID:                   c.TechID,
			TechName:                 c.TechName,
			Score:                    min(max(score, 0), 100),
			Breakdown:                b,
			Reasons:                  reasons(c),
			ETAMinutes:               c.ETAMinutes,
			ETAWithoutTrafficMinutes: c.ETAWithoutTrafficMinutes,
			DistanceKm:               c.DistanceKm,
			ETAEstimated:             c.ETAEstimated,
			AvailableHours:           math.Round(float64(c.FreeMinutes)/60*100) / 100,
			EarliestStart:            c.EarliestStart,
			Performance: entities.PerformanceSnapshot{
				JobsCompleted:    c.Performance.JobsCompleted,
				AvgRating:        c.Performance.AvgRating,
				OnTimePercentage: c.Performance.OnTimePercentage,
			},
			IsPreferred: c.IsPreferred,
		})
	}
	Sort(out)
	return out
}

// Sort orders suggestions by score descending, then lower ETA (unknown ETA
// last), then technician id.
func Sort(s []entities.TechSuggestion) {
	sort.SliceStable(s, func(i, j int) bool {
		if s[i].Score != s[j].Score {
			return s[i].Score > s[j].Score
		}
		ei, ej := etaOrInf(s[i].ETAMinutes), etaOrInf(s[j].ETAMinutes)
		if ei != ej {
			return ei < ej
		}
		return s[i].TechID < s[j].TechID
	})
}

func etaOrInf(eta *float64) float64 {
	if eta == nil {
		return math.Inf(1)
	}
	return *eta
}

func etaBounds(cands []Candidate) (best, worst float64, ok bool) {
	for _, c := range cands {
		if c.ETAMinutes == nil {
			continue
		}
		v := *c.ETAMinutes
		if !ok {
			best, worst, ok = v, v, true
			continue
		}
		best = math.Min(best, v)
		worst = math.Max(worst, v)
	}
	return best, worst, ok
}

// proximity is min-max normalized: the closest candidate scores 1, the
// farthest 0. Without an ETA the factor is 0.
func proximity(eta *float64, best, worst float64, anyETA bool) float64 {
	if eta == nil || !anyETA {
		return 0
	}
	if worst-best < 1e-9 {
		return 1
	}
	return (worst - *eta) / (worst - best)
}

func availability(free, shift int) float64 {
	if shift <= 0 || free <= 0 {
		return 0
	}
	return math.Min(float64(free)/float64(shift), 1)
}

func onTime(p entities.PerformanceStats) float64 {
	if p.JobsCompleted == 0 {
		return neutral
	}
	return clamp01(p.OnTimePercentage / 100)
}

func rating(p entities.PerformanceStats) float64 {
	if p.RatingCount == 0 {
		return neutral
	}
	return clamp01(p.AvgRating / 5)
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

func reasons(c Candidate) []string {
	var out []string
	if c.ETAMinutes != nil {
		r := fmt.Sprintf("%s min away", humanize.FtoaWithDigits(*c.ETAMinutes, 1))
		if c.DistanceKm != nil {
			r += fmt.Sprintf(" (%s km)", humanize.FtoaWithDigits(*c.DistanceKm, 1))
		}
		if c.ETAEstimated {
			r += ", estimated without live traffic"
		}
		out = append(out, r)
	} else {
		out = append(out, "No current location")
	}
	out = append(out, fmt.Sprintf("%s hours free", humanize.FtoaWithDigits(float64(c.FreeMinutes)/60, 1)))
	if c.EarliestStart != "" {
		out = append(out, "Can start at "+c.EarliestStart)
	}
	if c.Performance.JobsCompleted > 0 {
		out = append(out, fmt.Sprintf("%s%% on time across %s jobs",
			humanize.FtoaWithDigits(c.Performance.OnTimePercentage, 0),
			humanize.Comma(int64(c.Performance.JobsCompleted))))
	}
	if c.Performance.RatingCount > 0 {
		out = append(out, fmt.Sprintf("Rated %s from %s reviews",
			humanize.FtoaWithDigits(c.Performance.AvgRating, 1),
			humanize.Comma(int64(c.Performance.RatingCount))))
	}
	if c.IsPreferred {
		out = append(out, "Customer's preferred technician")
	}
	return out
}
