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
	MsgUntitled       = "Untitled"
	MsgCafeCreated    = "Cafe created"
	MsgCafeUpdated    = "Cafe updated"
	MsgCafeDeleted    = "Cafe deleted"
	MsgCafesLoadFail  = "Failed to load cafes"
	MsgCafeLoadFail   = "Failed to load the cafe"
	MsgCafeSaveFail   = "Failed to save the cafe"
	MsgCafeDeleteFail = "Failed to delete the cafe"
	MsgImageUpload    = "Image upload failed"
)

// ErrImageUpload marks a save whose record was stored but whose image was not.
var ErrImageUpload = errors.New("image upload failed")

type CafeRow struct {
	ID    int
	Name  string
	Thumb Image
}

// CafeForm backs both the add and the edit dialog; an empty ID means add.
type CafeForm struct {
	ID          string
	Name        string `validate:"required"`
	Address     string
	Description string
	ImageURL    string
}

func (f CafeForm) Title() string {
	if f.ID == "" {
		return "Add cafe"
	}
	return "Edit cafe"
}

// SaveResult reports what a save stored. ID is set whenever the record itself was saved.
type SaveResult struct {
	ID       int
	Created  bool
	ImageURL string
}

func (s *AdminService) ListCafes(ctx context.Context) ([]CafeRow, error) {
	cafes, err := s.backend.ListCafes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cafes: %w", err)
	}

	now := s.now()
	rows := make([]CafeRow, 0, len(cafes))
	for _, cafe := range cafes {
		rows = append(rows, CafeRow{
			ID:    cafe.ID,
			Name:  orDefault(cafe.Name, MsgUntitled),
			Thumb: ImageSource(cafe.ImageURL, now),
		})
	}
	return rows, nil
}

func (s *AdminService) EditCafe(ctx context.Context, cafeID int) (CafeForm, error) {
	cafe, err := s.backend.GetCafe(ctx, cafeID)
	if err != nil {
		return CafeForm{}, fmt.Errorf("load cafe %d: %w", cafeID, err)
	}
	return CafeForm{
		ID:          fmt.Sprint(cafe.ID),
		Name:        cafe.Name,
		Address:     cafe.Address,
		Description: cafe.Description,
		ImageURL:    cafe.ImageURL,
	}, nil
}

// SaveCafe creates or updates the cafe and then uploads the image, if any.
// A failed upload does not undo the saved record.
func (s *AdminService) SaveCafe(ctx context.Context, form CafeForm, image *domain.ImageUpload) (SaveResult, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Description = strings.TrimSpace(form.Description)
	form.Address = strings.TrimSpace(form.Address)
	if err := validateForm(form); err != nil {
		return SaveResult{}, err
	}

	cafe := domain.Cafe{Name: form.Name, Address: form.Address, Description: form.Description}
	result := SaveResult{Created: form.ID == ""}

	var (
		saved domain.Cafe
		err   error
	)
	if result.Created {
		saved, err = s.backend.CreateCafe(ctx, cafe)
	} else {
		id, ok := domain.ParseID(form.ID)
		if !ok {
			return SaveResult{}, &FormError{Fields: map[string]string{"ID": "ID is invalid"}}
		}
		cafe.ID = id
		saved, err = s.backend.UpdateCafe(ctx, cafe)
		if saved.ID == 0 {
			saved.ID = id
		}
	}
	if err != nil {
		return SaveResult{}, fmt.Errorf("save cafe: %w", err)
	}
	result.ID = saved.ID
	result.ImageURL = saved.ImageURL

	var errs *multierror.Error
	if image != nil && saved.ID == 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: saved cafe has no id", ErrImageUpload))
	} else if image != nil {
		url, err := s.backend.UploadCafeImage(ctx, saved.ID, *image)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%w: cafe %d: %w", ErrImageUpload, saved.ID, err))
		} else {
			result.ImageURL = url
		}
	}

	publish(ctx, s.publisher, domain.UIEvent{
		Type:         domain.EventCafeSaved,
		RestaurantID: saved.ID,
		Timestamp:    s.now(),
	})
	return result, errs.ErrorOrNil()
}

// DeleteCafe removes a cafe and, on the backend, its dishes. Nothing is sent
// until the caller confirms.
func (s *AdminService) DeleteCafe(ctx context.Context, cafeID int, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := s.backend.DeleteCafe(ctx, cafeID); err != nil {
		return fmt.Errorf("delete cafe %d: %w", cafeID, err)
	}

	publish(ctx, s.publisher, domain.UIEvent{
		Type:         domain.EventCafeDeleted,
		RestaurantID: cafeID,
		Timestamp:    s.now(),
	})
	return nil
}
