package domain

import (
	"io"
	"time"
)

type Cafe struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type Dish struct {
	ID           int     `json:"dish_id"`
	RestaurantID int     `json:"restaurant_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"image_url"`
}

type CheckItem struct {
	DishID   int     `json:"dish_id"`
	DishName string  `json:"dish_name,omitempty"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Check is a customer order. It is immutable once created.
type Check struct {
	ID           int         `json:"id"`
	RestaurantID int         `json:"restaurant_id"`
	CafeName     string      `json:"cafe_name"`
	TotalAmount  float64     `json:"total_amount"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	Items        []CheckItem `json:"items"`
}

type NewCheck struct {
	RestaurantID int         `json:"restaurant_id"`
	Items        []CheckItem `json:"items"`
	TotalAmount  float64     `json:"total_amount"`
}

type Review struct {
	DishID  int    `json:"dish_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type ReviewSubmission struct {
	CheckID      int      `json:"check_id"`
	RestaurantID int      `json:"restaurant_id"`
	Reviews      []Review `json:"reviews"`
}

// ImageUpload is a file picked in a cafe or dish form.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        io.Reader
}
