package service

import (
	"context"

	"overcooked-simplified/web-svc/internal/backend"
	"overcooked-simplified/web-svc/internal/domain"
)

type CatalogBackend interface {
	ListCafes(ctx context.Context) ([]domain.Cafe, error)
	CafeMenu(ctx context.Context, cafeID int) ([]domain.Dish, error)
}

type CheckBackend interface {
	ListChecks(ctx context.Context) ([]domain.Check, error)
	CreateCheck(ctx context.Context, check domain.NewCheck) (domain.Check, error)
	CheckQRCode(ctx context.Context, checkID int) ([]byte, string, error)
	GetCheck(ctx context.Context, checkID int) (domain.Check, error)
}

type CafeBackend interface {
	ListCafes(ctx context.Context) ([]domain.Cafe, error)
	GetCafe(ctx context.Context, cafeID int) (domain.Cafe, error)
	CreateCafe(ctx context.Context, cafe domain.Cafe) (domain.Cafe, error)
	UpdateCafe(ctx context.Context, cafe domain.Cafe) (domain.Cafe, error)
	DeleteCafe(ctx context.Context, cafeID int) error
	UploadCafeImage(ctx context.Context, cafeID int, image domain.ImageUpload) (string, error)
}

type DishBackend interface {
	CafeMenu(ctx context.Context, cafeID int) ([]domain.Dish, error)
	ListDishes(ctx context.Context, cafeID int) ([]domain.Dish, error)
	CreateDish(ctx context.Context, dish domain.Dish) (domain.Dish, error)
	UpdateDish(ctx context.Context, dish domain.Dish) (domain.Dish, error)
	DeleteDish(ctx context.Context, cafeID, dishID int) error
	UploadDishImage(ctx context.Context, cafeID, dishID int, image domain.ImageUpload) (string, error)
}

// AdminBackend covers checks, cafes and dishes management.
type AdminBackend interface {
	CheckBackend
	CafeBackend
	DishBackend
}

type AnalyticsBackend interface {
	ListCafes(ctx context.Context) ([]domain.Cafe, error)
	TopToday(ctx context.Context) ([]domain.DishScore, error)
	TopAllTime(ctx context.Context) ([]domain.DishScore, error)
	RatingDistribution(ctx context.Context) (domain.RatingDistribution, error)
}

type ReviewBackend interface {
	GetCheck(ctx context.Context, checkID int) (domain.Check, error)
	SubmitReviews(ctx context.Context, submission domain.ReviewSubmission) error
}

// Backend is the whole REST surface the pages consume.
type Backend interface {
	CatalogBackend
	AdminBackend
	AnalyticsBackend
	ReviewBackend
}

type FlashStore interface {
	Push(ctx context.Context, session string, n domain.Notification) error
	Drain(ctx context.Context, session string) ([]domain.Notification, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.UIEvent) error
}

// ChartRenderer draws the rating distribution.
type ChartRenderer interface {
	RenderDistribution(dist domain.RatingDistribution) ([]byte, error)
}

var _ Backend = (*backend.Client)(nil)
