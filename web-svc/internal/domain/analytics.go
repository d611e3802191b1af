package domain

import (
	"math"
	"strconv"
)

// MetricKind tells what DishScore.Score means for a given top list.
type MetricKind int

const (
	ActivityCount MetricKind = iota
	AverageRating
)

func (k MetricKind) String() string {
	switch k {
	case AverageRating:
		return "rating"
	default:
		return "reviews"
	}
}

// FormatScore renders an average rating with one decimal and a count as an integer.
func FormatScore(kind MetricKind, score float64) string {
	if kind == AverageRating {
		return strconv.FormatFloat(score, 'f', 1, 64)
	}
	return strconv.FormatFloat(math.Round(score), 'f', 0, 64)
}

type DishScore struct {
	DishID       int     `json:"dish_id"`
	DishName     string  `json:"dish_name"`
	RestaurantID int     `json:"restaurant_id"`
	Score        float64 `json:"score"`
	ReviewCount  int     `json:"review_count"`
}

// RatingDistribution holds review counts for ratings 1..5 in order.
type RatingDistribution [5]int

// DistributionFromBuckets maps the "1".."5" keyed payload; missing keys stay zero.
func DistributionFromBuckets(buckets map[string]int) RatingDistribution {
	var d RatingDistribution
	for i := range d {
		d[i] = buckets[strconv.Itoa(i+1)]
	}
	return d
}

func (d RatingDistribution) Values() []int {
	return d[:]
}
