package backend

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"overcooked-simplified/web-svc/internal/domain"
)

// The backend is not consistent about field names: dishes come back with
// either "id" or "dish_id", checks with "total_amount" or "total". All of
// that is absorbed here so the rest of the service sees domain types only.

type wireCafe struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Description string      `json:"description"`
	ImageURL    interface{} `json:"image_url"`
}

func (w wireCafe) normalize() domain.Cafe {
	return domain.Cafe{
		ID:          w.ID,
		Name:        w.Name,
		Address:     w.Address,
		Description: w.Description,
		ImageURL:    imageString(w.ImageURL),
	}
}

type wireDish struct {
	ID           int         `json:"id"`
	DishID       int         `json:"dish_id"`
	RestaurantID int         `json:"restaurant_id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Price        float64     `json:"price"`
	ImageURL     interface{} `json:"image_url"`
}

func (w wireDish) normalize() domain.Dish {
	id := w.DishID
	if id == 0 {
		id = w.ID
	}
	return domain.Dish{
		ID:           id,
		RestaurantID: w.RestaurantID,
		Name:         w.Name,
		Description:  w.Description,
		Price:        w.Price,
		ImageURL:     imageString(w.ImageURL),
	}
}

type wireCheckItem struct {
	DishID   int     `json:"dish_id"`
	ID       int     `json:"id"`
	DishName string  `json:"dish_name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type wireCheck struct {
	ID           int             `json:"id"`
	RestaurantID int             `json:"restaurant_id"`
	CafeName     string          `json:"cafe_name"`
	TotalAmount  *float64        `json:"total_amount"`
	Total        *float64        `json:"total"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	Items        []wireCheckItem `json:"items"`
}

func (w wireCheck) normalize() domain.Check {
	check := domain.Check{
		ID:           w.ID,
		RestaurantID: w.RestaurantID,
		CafeName:     w.CafeName,
		Status:       w.Status,
		CreatedAt:    w.CreatedAt,
		Items:        make([]domain.CheckItem, 0, len(w.Items)),
	}

	switch {
	case w.TotalAmount != nil && *w.TotalAmount != 0:
		check.TotalAmount = *w.TotalAmount
	case w.Total != nil:
		check.TotalAmount = *w.Total
	}

	for _, item := range w.Items {
		dishID := item.DishID
		if dishID == 0 {
			dishID = item.ID
		}
		check.Items = append(check.Items, domain.CheckItem{
			DishID:   dishID,
			DishName: item.DishName,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	return check
}

type wireScore struct {
	DishID       int     `json:"dish_id"`
	DishName     string  `json:"dish_name"`
	RestaurantID int     `json:"restaurant_id"`
	Score        float64 `json:"score"`
	ReviewCount  int     `json:"review_count"`
}

func (w wireScore) normalize() domain.DishScore {
	return domain.DishScore(w)
}

func imageString(v interface{}) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// decodeList decodes a JSON array. Anything that is not an array (null, an
// object, an error envelope) is treated as an empty list.
func decodeList[W any, T any](data []byte, normalize func(W) T) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	out := []T{}
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return out, nil
	}

	var wire []W
	if err := json.Unmarshal(trimmed, &wire); err != nil {
		return nil, err
	}
	for _, w := range wire {
		out = append(out, normalize(w))
	}
	return out, nil
}
