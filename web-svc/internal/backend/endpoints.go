package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"

	"overcooked-simplified/web-svc/internal/domain"
)

func (c *Client) ListChecks(ctx context.Context) ([]domain.Check, error) {
	data, err := c.getList(ctx, "/api/orders")
	if err != nil {
		return nil, err
	}
	checks, err := decodeList(data, wireCheck.normalize)
	if err != nil {
		return nil, fmt.Errorf("decode GET /api/orders: %w", err)
	}
	return checks, nil
}

func (c *Client) CreateCheck(ctx context.Context, check domain.NewCheck) (domain.Check, error) {
	var created wireCheck
	if err := c.sendJSON(ctx, http.MethodPost, "/api/orders", check, &created); err != nil {
		return domain.Check{}, err
	}
	return created.normalize(), nil
}

// CheckQRCode returns the PNG bytes and content type of a check's QR code.
func (c *Client) CheckQRCode(ctx context.Context, checkID int) ([]byte, string, error) {
	path := fmt.Sprintf("/api/orders/%d/qrcode", checkID)
	resp, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read GET %s: %w", path, err)
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return data, contentType, nil
}

func (c *Client) GetCheck(ctx context.Context, checkID int) (domain.Check, error) {
	var check wireCheck
	if err := c.getJSON(ctx, fmt.Sprintf("/api/check/%d", checkID), &check); err != nil {
		return domain.Check{}, err
	}
	return check.normalize(), nil
}

func (c *Client) SubmitReviews(ctx context.Context, submission domain.ReviewSubmission) error {
	return c.sendJSON(ctx, http.MethodPost, "/api/reviews", submission, nil)
}

func (c *Client) ListCafes(ctx context.Context) ([]domain.Cafe, error) {
	data, err := c.getList(ctx, "/api/cafes")
	if err != nil {
		return nil, err
	}
	cafes, err := decodeList(data, wireCafe.normalize)
	if err != nil {
		return nil, fmt.Errorf("decode GET /api/cafes: %w", err)
	}
	return cafes, nil
}

func (c *Client) GetCafe(ctx context.Context, cafeID int) (domain.Cafe, error) {
	var cafe wireCafe
	if err := c.getJSON(ctx, fmt.Sprintf("/api/restaurants/%d", cafeID), &cafe); err != nil {
		return domain.Cafe{}, err
	}
	return cafe.normalize(), nil
}

type cafePayload struct {
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description"`
}

func (c *Client) CreateCafe(ctx context.Context, cafe domain.Cafe) (domain.Cafe, error) {
	var created wireCafe
	payload := cafePayload{Name: cafe.Name, Address: cafe.Address, Description: cafe.Description}
	if err := c.sendJSON(ctx, http.MethodPost, "/api/restaurants", payload, &created); err != nil {
		return domain.Cafe{}, err
	}
	return created.normalize(), nil
}

func (c *Client) UpdateCafe(ctx context.Context, cafe domain.Cafe) (domain.Cafe, error) {
	var updated wireCafe
	payload := cafePayload{Name: cafe.Name, Address: cafe.Address, Description: cafe.Description}
	path := fmt.Sprintf("/api/restaurants/%d", cafe.ID)
	if err := c.sendJSON(ctx, http.MethodPut, path, payload, &updated); err != nil {
		return domain.Cafe{}, err
	}
	result := updated.normalize()
	if result.ID == 0 {
		result.ID = cafe.ID
	}
	return result, nil
}

func (c *Client) DeleteCafe(ctx context.Context, cafeID int) error {
	return c.delete(ctx, fmt.Sprintf("/api/restaurants/%d", cafeID))
}

func (c *Client) UploadCafeImage(ctx context.Context, cafeID int, image domain.ImageUpload) (string, error) {
	return c.upload(ctx, fmt.Sprintf("/api/restaurants/%d/image", cafeID), image)
}

// CafeMenu is the customer-facing dish list of a cafe.
func (c *Client) CafeMenu(ctx context.Context, cafeID int) ([]domain.Dish, error) {
	path := fmt.Sprintf("/api/cafe/%d/menu", cafeID)
	data, err := c.getList(ctx, path)
	if err != nil {
		return nil, err
	}
	dishes, err := decodeList(data, wireDish.normalize)
	if err != nil {
		return nil, fmt.Errorf("decode GET %s: %w", path, err)
	}
	return dishes, nil
}

func (c *Client) ListDishes(ctx context.Context, cafeID int) ([]domain.Dish, error) {
	path := fmt.Sprintf("/api/restaurants/%d/dishes", cafeID)
	data, err := c.getList(ctx, path)
	if err != nil {
		return nil, err
	}
	dishes, err := decodeList(data, wireDish.normalize)
	if err != nil {
		return nil, fmt.Errorf("decode GET %s: %w", path, err)
	}
	return dishes, nil
}

type dishPayload struct {
	RestaurantID int     `json:"restaurant_id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Description  string  `json:"description"`
}

func (c *Client) CreateDish(ctx context.Context, dish domain.Dish) (domain.Dish, error) {
	var created wireDish
	payload := dishPayload{RestaurantID: dish.RestaurantID, Name: dish.Name, Price: dish.Price, Description: dish.Description}
	path := fmt.Sprintf("/api/restaurants/%d/dishes", dish.RestaurantID)
	if err := c.sendJSON(ctx, http.MethodPost, path, payload, &created); err != nil {
		return domain.Dish{}, err
	}
	return created.normalize(), nil
}

func (c *Client) UpdateDish(ctx context.Context, dish domain.Dish) (domain.Dish, error) {
	var updated wireDish
	payload := dishPayload{RestaurantID: dish.RestaurantID, Name: dish.Name, Price: dish.Price, Description: dish.Description}
	path := fmt.Sprintf("/api/restaurants/%d/dishes/%d", dish.RestaurantID, dish.ID)
	if err := c.sendJSON(ctx, http.MethodPut, path, payload, &updated); err != nil {
		return domain.Dish{}, err
	}
	result := updated.normalize()
	if result.ID == 0 {
		result.ID = dish.ID
	}
	return result, nil
}

func (c *Client) DeleteDish(ctx context.Context, cafeID, dishID int) error {
	return c.delete(ctx, fmt.Sprintf("/api/restaurants/%d/dishes/%d", cafeID, dishID))
}

func (c *Client) UploadDishImage(ctx context.Context, cafeID, dishID int, image domain.ImageUpload) (string, error) {
	return c.upload(ctx, fmt.Sprintf("/api/restaurants/%d/dishes/%d/image", cafeID, dishID), image)
}

func (c *Client) TopToday(ctx context.Context) ([]domain.DishScore, error) {
	return c.scores(ctx, "/api/analytics/top-today")
}

func (c *Client) TopAllTime(ctx context.Context) ([]domain.DishScore, error) {
	return c.scores(ctx, "/api/analytics/top-alltime")
}

func (c *Client) scores(ctx context.Context, path string) ([]domain.DishScore, error) {
	data, err := c.getList(ctx, path)
	if err != nil {
		return nil, err
	}
	scores, err := decodeList(data, wireScore.normalize)
	if err != nil {
		return nil, fmt.Errorf("decode GET %s: %w", path, err)
	}
	return scores, nil
}

func (c *Client) RatingDistribution(ctx context.Context) (domain.RatingDistribution, error) {
	var buckets map[string]int
	if err := c.getJSON(ctx, "/api/analytics/rating-distribution", &buckets); err != nil {
		return domain.RatingDistribution{}, err
	}
	return domain.DistributionFromBuckets(buckets), nil
}

// upload sends the image as multipart field "image" and returns the stored URL.
func (c *Client) upload(ctx context.Context, path string, image domain.ImageUpload) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	contentType := image.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, escapeQuotes(filepath.Base(image.Filename))))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("build upload %s: %w", path, err)
	}
	if _, err := io.Copy(part, image.Data); err != nil {
		return "", fmt.Errorf("read upload for %s: %w", path, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("build upload %s: %w", path, err)
	}

	data, err := c.read(ctx, http.MethodPost, path, &body, writer.FormDataContentType())
	if err != nil {
		return "", err
	}

	var result struct {
		ImageURL string `json:"image_url"`
	}
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, &result); err != nil {
			return "", fmt.Errorf("decode POST %s: %w", path, err)
		}
	}
	return result.ImageURL, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
