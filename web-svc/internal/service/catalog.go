package service

import (
	"context"
	"fmt"
	"time"

	"overcooked-simplified/web-svc/internal/domain"
)

const (
	MsgNoCafes         = "No cafes available"
	MsgNoDishes        = "No dishes to display"
	MsgNoDescription   = "No description"
	MsgCatalogLoadFail = "Failed to load cafes"
	MsgMenuLoadFail    = "Failed to load the menu"
)

// Section is the visible part of the catalog page. Only one is shown at a time.
type Section int

const (
	SectionCafes Section = iota
	SectionMenu
)

type CafeCard struct {
	ID          int
	Name        string
	Description string
	Image       Image
}

type DishCard struct {
	ID          int
	Name        string
	Description string
	Price       string
	Image       Image
}

// CatalogPage is the view-model of the customer catalog.
type CatalogPage struct {
	Section Section

	Cafes      []CafeCard
	CafesEmpty string

	MenuCafeID int
	MenuTitle  string
	Dishes     []DishCard
	MenuEmpty  string
}

type CatalogService struct {
	backend CatalogBackend
	now     func() time.Time
}

func NewCatalogService(backend CatalogBackend, now func() time.Time) *CatalogService {
	if now == nil {
		now = time.Now
	}
	return &CatalogService{backend: backend, now: now}
}

// LoadCafes replaces the cafe grid. On failure the grid keeps its prior state.
func (s *CatalogService) LoadCafes(ctx context.Context, page *CatalogPage) error {
	cafes, err := s.backend.ListCafes(ctx)
	if err != nil {
		return fmt.Errorf("load cafes: %w", err)
	}

	now := s.now()
	cards := make([]CafeCard, 0, len(cafes))
	for _, cafe := range cafes {
		cards = append(cards, CafeCard{
			ID:          cafe.ID,
			Name:        cafe.Name,
			Description: orDefault(cafe.Description, MsgNoDescription),
			Image:       ImageSource(cafe.ImageURL, now),
		})
	}

	page.Cafes = cards
	page.CafesEmpty = ""
	if len(cards) == 0 {
		page.CafesEmpty = MsgNoCafes
	}
	return nil
}

// ShowMenu fetches the menu of a cafe and switches the page to it.
func (s *CatalogService) ShowMenu(ctx context.Context, page *CatalogPage, cafeID int, cafeName string) error {
	dishes, err := s.backend.CafeMenu(ctx, cafeID)
	if err != nil {
		return fmt.Errorf("load menu of cafe %d: %w", cafeID, err)
	}

	page.Section = SectionMenu
	page.MenuCafeID = cafeID
	page.MenuTitle = "Menu - " + cafeName
	page.Dishes = dishCards(dishes, s.now())
	page.MenuEmpty = ""
	if len(page.Dishes) == 0 {
		page.MenuEmpty = MsgNoDishes
	}
	return nil
}

func (s *CatalogService) HideMenu(page *CatalogPage) {
	page.Section = SectionCafes
}

func dishCards(dishes []domain.Dish, now time.Time) []DishCard {
	cards := make([]DishCard, 0, len(dishes))
	for _, dish := range dishes {
		cards = append(cards, DishCard{
			ID:          dish.ID,
			Name:        dish.Name,
			Description: orDefault(dish.Description, MsgNoDescription),
			Price:       FormatMoney(dish.Price),
			Image:       ImageSource(dish.ImageURL, now),
		})
	}
	return cards
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
