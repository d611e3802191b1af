package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"overcooked-simplified/web-svc/internal/domain"

	"github.com/hashicorp/go-multierror"
)

const (
	MsgSelectCafe     = "Select a cafe"
	MsgMenuEmpty      = "The menu is empty"
	MsgDishCreated    = "Dish added"
	MsgDishUpdated    = "Dish updated"
	MsgDishDeleted    = "Dish deleted"
	MsgDishLoadFail   = "Failed to load the dish"
	MsgDishSaveFail   = "Failed to save the dish"
	MsgDishDeleteFail = "Failed to delete the dish"
)

var ErrDishNotFound = errors.New("dish not found")

type DishRow struct {
	ID          int
	Name        string
	Price       string
	Description string
	Thumb       Image
}

// DishManagerPage is the cafe selector plus the dish table of the selected cafe.
type DishManagerPage struct {
	Cafes        []CafeOption
	SelectedCafe int
	CanAdd       bool
	Rows         []DishRow
	Message      string
	Failed       bool
}

// DishForm backs the add and edit dialog; an empty ID means add.
type DishForm struct {
	ID          string
	CafeID      int     `validate:"gt=0"`
	Name        string  `validate:"required"`
	Price       float64 `validate:"gt=0"`
	Description string
	ImageURL    string
}

func (f DishForm) Title() string {
	if f.ID == "" {
		return "Add dish"
	}
	return "Edit dish"
}

func (s *AdminService) DishManager(ctx context.Context, cafeID int) (DishManagerPage, error) {
	page := DishManagerPage{SelectedCafe: cafeID}

	cafes, err := s.backend.ListCafes(ctx)
	if err != nil {
		page.Message = MsgCafesLoadFail
		page.Failed = true
		return page, fmt.Errorf("load cafes: %w", err)
	}
	page.Cafes = cafeOptions(cafes, cafeID)

	if cafeID <= 0 {
		page.Message = MsgSelectCafe
		return page, nil
	}
	page.CanAdd = true

	dishes, err := s.backend.ListDishes(ctx, cafeID)
	if err != nil {
		page.Message = MsgDishesLoadFail
		page.Failed = true
		return page, fmt.Errorf("load dishes of cafe %d: %w", cafeID, err)
	}

	now := s.now()
	page.Rows = make([]DishRow, 0, len(dishes))
	for _, dish := range dishes {
		page.Rows = append(page.Rows, DishRow{
			ID:          dish.ID,
			Name:        dish.Name,
			Price:       FormatMoney(dish.Price),
			Description: orDefault(dish.Description, "-"),
			Thumb:       ImageSource(dish.ImageURL, now),
		})
	}
	if len(page.Rows) == 0 {
		page.Message = MsgMenuEmpty
	}
	return page, nil
}

// EditDish prefills the form from the cafe's dish list.
func (s *AdminService) EditDish(ctx context.Context, cafeID, dishID int) (DishForm, error) {
	dishes, err := s.backend.ListDishes(ctx, cafeID)
	if err != nil {
		return DishForm{}, fmt.Errorf("load dishes of cafe %d: %w", cafeID, err)
	}
	for _, dish := range dishes {
		if dish.ID != dishID {
			continue
		}
		return DishForm{
			ID:          fmt.Sprint(dish.ID),
			CafeID:      cafeID,
			Name:        dish.Name,
			Price:       dish.Price,
			Description: dish.Description,
			ImageURL:    dish.ImageURL,
		}, nil
	}
	return DishForm{}, fmt.Errorf("dish %d of cafe %d: %w", dishID, cafeID, ErrDishNotFound)
}

// SaveDish creates or updates the dish and then uploads the image, if any.
func (s *AdminService) SaveDish(ctx context.Context, form DishForm, image *domain.ImageUpload) (SaveResult, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Description = strings.TrimSpace(form.Description)
	if err := validateForm(form); err != nil {
		return SaveResult{}, err
	}

	dish := domain.Dish{
		RestaurantID: form.CafeID,
		Name:         form.Name,
		Price:        form.Price,
		Description:  form.Description,
	}
	result := SaveResult{Created: form.ID == ""}

	var (
		saved domain.Dish
		err   error
	)
	if result.Created {
		saved, err = s.backend.CreateDish(ctx, dish)
	} else {
		id, ok := domain.ParseID(form.ID)
		if !ok {
			return SaveResult{}, &FormError{Fields: map[string]string{"ID": "ID is invalid"}}
		}
		dish.ID = id
		saved, err = s.backend.UpdateDish(ctx, dish)
		if saved.ID == 0 {
			saved.ID = id
		}
	}
	if err != nil {
		return SaveResult{}, fmt.Errorf("save dish: %w", err)
	}
	result.ID = saved.ID
	result.ImageURL = saved.ImageURL

	var errs *multierror.Error
	if image != nil && saved.ID == 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: saved dish has no id", ErrImageUpload))
	} else if image != nil {
		url, err := s.backend.UploadDishImage(ctx, form.CafeID, saved.ID, *image)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%w: dish %d: %w", ErrImageUpload, saved.ID, err))
		} else {
			result.ImageURL = url
		}
	}

	publish(ctx, s.publisher, domain.UIEvent{
		Type:         domain.EventDishSaved,
		RestaurantID: form.CafeID,
		DishID:       saved.ID,
		Timestamp:    s.now(),
	})
	return result, errs.ErrorOrNil()
}

func (s *AdminService) DeleteDish(ctx context.Context, cafeID, dishID int, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := s.backend.DeleteDish(ctx, cafeID, dishID); err != nil {
		return fmt.Errorf("delete dish %d: %w", dishID, err)
	}

	publish(ctx, s.publisher, domain.UIEvent{
		Type:         domain.EventDishDeleted,
		RestaurantID: cafeID,
		DishID:       dishID,
		Timestamp:    s.now(),
	})
	return nil
}
