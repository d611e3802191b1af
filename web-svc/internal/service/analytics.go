package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"overcooked-simplified/web-svc/internal/domain"

	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"
)

const (
	MsgNoData      = "No data to display"
	MsgUnknownDish = "Unknown dish"
)

type Medal string

const (
	MedalGold    Medal = "gold"
	MedalSilver  Medal = "silver"
	MedalBronze  Medal = "bronze"
	MedalNeutral Medal = "neutral"
)

func medalFor(rank int) Medal {
	switch rank {
	case 1:
		return MedalGold
	case 2:
		return MedalSilver
	case 3:
		return MedalBronze
	default:
		return MedalNeutral
	}
}

type TopItem struct {
	Rank        int
	Medal       Medal
	DishName    string
	CafeName    string
	Score       string
	ReviewCount int
}

// TopList is one ranked list. Items keep the backend order.
type TopList struct {
	Kind   domain.MetricKind
	Items  []TopItem
	Empty  string
	Failed string
}

type Stats struct {
	ActiveCafes    int
	TotalReviews   int
	ReviewedDishes int
	AvgRating      string
}

type Chart struct {
	Values [5]int
	SVG    string
}

type Dashboard struct {
	Today   TopList
	AllTime TopList
	Stats   Stats
	Chart   Chart
}

type AnalyticsService struct {
	backend AnalyticsBackend
	chart   ChartRenderer
}

func NewAnalyticsService(backend AnalyticsBackend, chart ChartRenderer) *AnalyticsService {
	return &AnalyticsService{backend: backend, chart: chart}
}

// cafeNames maps cafe ids to names. It is built once per load and only read afterwards.
type cafeNames map[int]string

func (n cafeNames) name(id int) string {
	if name, ok := n[id]; ok && name != "" {
		return name
	}
	return fallbackCafeName(id)
}

// Load runs one full dashboard cycle: the cafe lookup first, then both top
// lists and the stats concurrently, then the rating chart. Partial failures
// become failed sections; the returned error aggregates them for logging.
func (s *AnalyticsService) Load(ctx context.Context) (Dashboard, error) {
	var (
		dash Dashboard
		mu   sync.Mutex
		errs *multierror.Error
	)
	collect := func(err error) {
		if err == nil {
			return
		}
		mu.Lock()
		errs = multierror.Append(errs, err)
		mu.Unlock()
	}

	names, err := s.cafeNames(ctx)
	collect(err)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		var err error
		dash.Today, err = s.topList(ctx, domain.ActivityCount, names)
		collect(err)
	}()
	go func() {
		defer wg.Done()
		var err error
		dash.AllTime, err = s.topList(ctx, domain.AverageRating, names)
		collect(err)
	}()
	go func() {
		defer wg.Done()
		var err error
		dash.Stats, err = s.stats(ctx)
		collect(err)
	}()
	wg.Wait()

	dash.Chart, err = s.ratingChart(ctx)
	collect(err)

	return dash, errs.ErrorOrNil()
}

func (s *AnalyticsService) cafeNames(ctx context.Context) (cafeNames, error) {
	cafes, err := s.backend.ListCafes(ctx)
	if err != nil {
		return cafeNames{}, fmt.Errorf("load cafe names: %w", err)
	}
	names := make(cafeNames, len(cafes))
	for _, cafe := range cafes {
		names[cafe.ID] = cafe.Name
	}
	return names, nil
}

func (s *AnalyticsService) topList(ctx context.Context, kind domain.MetricKind, names cafeNames) (TopList, error) {
	list := TopList{Kind: kind}

	var (
		scores []domain.DishScore
		err    error
	)
	switch kind {
	case domain.AverageRating:
		scores, err = s.backend.TopAllTime(ctx)
	default:
		scores, err = s.backend.TopToday(ctx)
	}
	if err != nil {
		list.Failed = MsgNoData
		return list, fmt.Errorf("load top %s: %w", kind, err)
	}

	list.Items = make([]TopItem, 0, len(scores))
	for i, score := range scores {
		rank := i + 1
		list.Items = append(list.Items, TopItem{
			Rank:        rank,
			Medal:       medalFor(rank),
			DishName:    orDefault(score.DishName, MsgUnknownDish),
			CafeName:    names.name(score.RestaurantID),
			Score:       domain.FormatScore(kind, score.Score),
			ReviewCount: score.ReviewCount,
		})
	}
	if len(list.Items) == 0 {
		list.Empty = MsgNoData
	}
	return list, nil
}

// stats re-reads the cafe list and the all-time top list; a failed half
// leaves its numbers at zero.
func (s *AnalyticsService) stats(ctx context.Context) (Stats, error) {
	var (
		cafes    []domain.Cafe
		top      []domain.DishScore
		cafesErr error
		topErr   error
		wg       sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		cafes, cafesErr = s.backend.ListCafes(ctx)
	}()
	go func() {
		defer wg.Done()
		top, topErr = s.backend.TopAllTime(ctx)
	}()
	wg.Wait()

	stats := Stats{AvgRating: domain.FormatScore(domain.AverageRating, 0)}
	var errs *multierror.Error
	if cafesErr != nil {
		errs = multierror.Append(errs, fmt.Errorf("stats cafes: %w", cafesErr))
	} else {
		stats.ActiveCafes = len(cafes)
	}

	if topErr != nil {
		errs = multierror.Append(errs, fmt.Errorf("stats top: %w", topErr))
	} else if len(top) > 0 {
		var sum float64
		for _, dish := range top {
			stats.TotalReviews += dish.ReviewCount
			sum += dish.Score
		}
		stats.ReviewedDishes = len(top)
		stats.AvgRating = domain.FormatScore(domain.AverageRating, sum/float64(len(top)))
	}
	return stats, errs.ErrorOrNil()
}

// ratingChart renders a fresh chart every call. A failed fetch draws all zeros.
func (s *AnalyticsService) ratingChart(ctx context.Context) (Chart, error) {
	dist, fetchErr := s.backend.RatingDistribution(ctx)
	if fetchErr != nil {
		dist = domain.RatingDistribution{}
		fetchErr = fmt.Errorf("load rating distribution: %w", fetchErr)
	}

	chart := Chart{Values: dist}
	if s.chart == nil {
		return chart, fetchErr
	}

	svg, err := s.chart.RenderDistribution(dist)
	if err != nil {
		log.WithError(err).Error("failed to render rating chart")
		return chart, multierror.Append(fetchErr, fmt.Errorf("render chart: %w", err)).ErrorOrNil()
	}
	chart.SVG = string(svg)
	return chart, fetchErr
}

// RatingLabel is the x-axis label of a distribution bar.
func RatingLabel(stars int) string {
	if stars == 1 {
		return "1 star"
	}
	return strconv.Itoa(stars) + " stars"
}
