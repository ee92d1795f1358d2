// Package aggregate derives read-only statistics from rating sets.
// Every function is pure and safe for concurrent use.
package aggregate

import (
	"slices"
	"time"

	"storerating/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Summary computes count, average and the 1..5 distribution of ratings.
// The average is rounded half-up to one decimal and is 0 for an empty set.
func Summary(ratings []*entity.Rating) entity.RatingSummary {
	dist := EmptyDistribution()

	var sum int64
	for _, r := range ratings {
		sum += int64(r.Value)
		dist[r.Value]++
	}

	return entity.RatingSummary{
		Count:        len(ratings),
		Average:      Average(sum, len(ratings)),
		Distribution: dist,
	}
}

// EmptyDistribution returns a distribution with every bucket 1..5 set to 0.
func EmptyDistribution() entity.Distribution {
	dist := make(entity.Distribution, entity.MaxRatingValue)
	for v := entity.MinRatingValue; v <= entity.MaxRatingValue; v++ {
		dist[v] = 0
	}

	return dist
}

// Average returns sum/count rounded half-up to one decimal place, or 0 when count is 0.
func Average(sum int64, count int) float64 {
	if count == 0 {
		return 0
	}

	avg, _ := decimal.NewFromInt(sum).
		Div(decimal.NewFromInt(int64(count))).
		Round(1).
		Float64()

	return avg
}

// SummariesByStore groups ratings by store and summarizes each group. Every
// requested store gets an entry, including stores without ratings.
func SummariesByStore(storeIDs []uuid.UUID, ratings []*entity.Rating) map[uuid.UUID]entity.RatingSummary {
	grouped := make(map[uuid.UUID][]*entity.Rating, len(storeIDs))
	for _, r := range ratings {
		grouped[r.StoreID] = append(grouped[r.StoreID], r)
	}

	out := make(map[uuid.UUID]entity.RatingSummary, len(storeIDs))
	for _, id := range storeIDs {
		out[id] = Summary(grouped[id])
	}

	return out
}

type monthKey struct {
	year  int
	month time.Month
}

// MonthlyTrend buckets the ratings created within the trailing monthsBack
// months before now by calendar month (UTC) and returns the buckets in
// chronological order. Ratings outside [now-monthsBack, now] are ignored.
func MonthlyTrend(ratings []*entity.Rating, monthsBack int, now time.Time) []entity.TrendPoint {
	if monthsBack <= 0 {
		return []entity.TrendPoint{}
	}

	now = now.UTC()
	since := now.AddDate(0, -monthsBack, 0)

	sums := make(map[monthKey]int64)
	counts := make(map[monthKey]int)
	for _, r := range ratings {
		at := r.CreatedAt.UTC()
		if at.Before(since) || at.After(now) {
			continue
		}

		key := monthKey{year: at.Year(), month: at.Month()}
		sums[key] += int64(r.Value)
		counts[key]++
	}

	keys := make([]monthKey, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b monthKey) int {
		if a.year != b.year {
			return a.year - b.year
		}

		return int(a.month) - int(b.month)
	})

	points := make([]entity.TrendPoint, 0, len(keys))
	for _, key := range keys {
		points = append(points, entity.TrendPoint{
			Year:    key.year,
			Month:   int(key.month),
			Average: Average(sums[key], counts[key]),
			Count:   counts[key],
		})
	}

	return points
}
