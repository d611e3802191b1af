package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"overcooked-simplified/web-svc/internal/domain"
)

const (
	MsgNoCheckID       = "Check ID not found in URL"
	MsgCheckLoadFail   = "Failed to load the check"
	MsgRateOneDish     = "Rate at least one dish"
	MsgReviewSendFail  = "Failed to send the review"
	MsgReviewThankYou  = "Thank you for your review!"
	maxRating          = 5
	reviewCheckIDParam = "check_id"
)

var ErrNoCheckID = errors.New("check id not found in url")

// StarWidget is the five-star control of one dish row. Committed is the
// clicked rating, Preview the hovered one; zero means none.
type StarWidget struct {
	Committed int
	Preview   int
}

func (w *StarWidget) Hover(n int) {
	if n < 1 || n > maxRating {
		return
	}
	w.Preview = n
}

// Leave drops the hover preview so the committed rating, or nothing, shows again.
func (w *StarWidget) Leave() {
	w.Preview = 0
}

func (w *StarWidget) Click(n int) {
	if n < 1 || n > maxRating {
		return
	}
	w.Committed = n
	w.Preview = 0
}

// Stars reports which of the five stars are lit.
func (w StarWidget) Stars() [maxRating]bool {
	shown := w.Committed
	if w.Preview > 0 {
		shown = w.Preview
	}
	var lit [maxRating]bool
	for i := range lit {
		lit[i] = i < shown
	}
	return lit
}

type ReviewRow struct {
	DishID   int
	DishName string
	Quantity int
	Price    string
	Stars    StarWidget
	Comment  string
}

// ReviewPage is the review form of one check. Submitted switches it to the
// thank-you panel for good.
type ReviewPage struct {
	CheckID      int
	RestaurantID int
	Total        string
	Date         string
	Rows         []ReviewRow
	Submitted    bool
}

// RatingInput is one submitted row of the review form.
type RatingInput struct {
	DishID  int
	Rating  int
	Comment string
}

type ReviewService struct {
	backend   ReviewBackend
	publisher EventPublisher
}

func NewReviewService(backend ReviewBackend, publisher EventPublisher) *ReviewService {
	return &ReviewService{backend: backend, publisher: publisher}
}

// CheckIDFromQuery reads check_id from the page URL.
func (s *ReviewService) CheckIDFromQuery(values url.Values) (int, error) {
	id, ok := domain.ParseID(values.Get(reviewCheckIDParam))
	if !ok {
		return 0, ErrNoCheckID
	}
	return id, nil
}

func (s *ReviewService) LoadCheck(ctx context.Context, checkID int) (ReviewPage, error) {
	check, err := s.backend.GetCheck(ctx, checkID)
	if err != nil {
		return ReviewPage{}, fmt.Errorf("load check %d: %w", checkID, err)
	}

	page := ReviewPage{
		CheckID:      check.ID,
		RestaurantID: check.RestaurantID,
		Total:        FormatMoney(check.TotalAmount),
		Rows:         make([]ReviewRow, 0, len(check.Items)),
	}
	if page.CheckID == 0 {
		page.CheckID = checkID
	}
	if !check.CreatedAt.IsZero() {
		page.Date = check.CreatedAt.Format(dateLayout)
	}
	for _, item := range check.Items {
		page.Rows = append(page.Rows, ReviewRow{
			DishID:   item.DishID,
			DishName: orDefault(item.DishName, MsgUnknownDish),
			Quantity: item.Quantity,
			Price:    FormatMoney(item.Price),
		})
	}
	return page, nil
}

// Apply copies submitted ratings and comments onto the page rows so a failed
// submit re-renders with what the user entered.
func (p *ReviewPage) Apply(inputs []RatingInput) {
	byDish := make(map[int]RatingInput, len(inputs))
	for _, in := range inputs {
		byDish[in.DishID] = in
	}
	for i, row := range p.Rows {
		in, ok := byDish[row.DishID]
		if !ok {
			continue
		}
		p.Rows[i].Stars = StarWidget{}
		p.Rows[i].Stars.Click(in.Rating)
		p.Rows[i].Comment = in.Comment
	}
}

// Submit sends every rated row in one request. Rows without a rating in
// 1..5 are left out; when none remain nothing is sent.
func (s *ReviewService) Submit(ctx context.Context, page *ReviewPage, inputs []RatingInput) error {
	page.Apply(inputs)

	reviews := make([]domain.Review, 0, len(inputs))
	for _, in := range inputs {
		if in.Rating < 1 || in.Rating > maxRating {
			continue
		}
		reviews = append(reviews, domain.Review{
			DishID:  in.DishID,
			Rating:  in.Rating,
			Comment: in.Comment,
		})
	}
	if len(reviews) == 0 {
		return ErrNoRatings
	}

	err := s.backend.SubmitReviews(ctx, domain.ReviewSubmission{
		CheckID:      page.CheckID,
		RestaurantID: page.RestaurantID,
		Reviews:      reviews,
	})
	if err != nil {
		return fmt.Errorf("submit reviews for check %d: %w", page.CheckID, err)
	}

	page.Submitted = true
	publish(ctx, s.publisher, domain.UIEvent{
		Type:         domain.EventReviewsSubmitted,
		CheckID:      page.CheckID,
		RestaurantID: page.RestaurantID,
		Count:        len(reviews),
	})
	return nil
}
