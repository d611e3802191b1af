package httpapi

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"overcooked-simplified/web-svc/internal/domain"
	"overcooked-simplified/web-svc/internal/service"
)

const maxUploadSize = 10 << 20

// checkSelection reads the check form: one hidden "dish" field per row plus
// price_<id>, checked_<id> and qty_<id>. Rows without a chargeable price are
// dropped.
func checkSelection(r *http.Request) service.CheckSelection {
	cafeID, _ := domain.ParseID(r.PostFormValue("cafe_id"))
	selection := service.CheckSelection{CafeID: cafeID}

	for _, raw := range r.PostForm["dish"] {
		id, ok := domain.ParseID(raw)
		if !ok {
			continue
		}
		price, ok := formPrice(r.PostFormValue("price_" + raw))
		if !ok {
			continue
		}
		qty, _ := strconv.Atoi(r.PostFormValue("qty_" + raw))
		selection.Rows = append(selection.Rows, service.CheckRow{
			DishID:   id,
			Price:    price,
			Quantity: qty,
			Checked:  r.PostFormValue("checked_"+raw) != "",
		})
	}
	return selection
}

// formPrice parses a submitted price; NaN, infinities and non-positive values
// are rejected.
func formPrice(raw string) (float64, bool) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || !service.ValidPrice(price) {
		return 0, false
	}
	return price, true
}

func ratingInputs(r *http.Request) []service.RatingInput {
	var inputs []service.RatingInput
	for _, raw := range r.PostForm["dish"] {
		id, ok := domain.ParseID(raw)
		if !ok {
			continue
		}
		rating, _ := strconv.Atoi(r.PostFormValue("rating_" + raw))
		inputs = append(inputs, service.RatingInput{
			DishID:  id,
			Rating:  rating,
			Comment: strings.TrimSpace(r.PostFormValue("comment_" + raw)),
		})
	}
	return inputs
}

// parseUploadForm accepts both multipart and urlencoded bodies.
func parseUploadForm(r *http.Request) error {
	err := r.ParseMultipartForm(maxUploadSize)
	if errors.Is(err, http.ErrNotMultipart) {
		return r.ParseForm()
	}
	return err
}

// formImage returns the picked image, or nil when the file input was left empty.
// The caller closes the returned file.
func formImage(r *http.Request) (*domain.ImageUpload, io.Closer, error) {
	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	if header.Size == 0 {
		file.Close()
		return nil, nil, nil
	}
	return &domain.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        file,
	}, file, nil
}

func cafeForm(r *http.Request) service.CafeForm {
	return service.CafeForm{
		ID:          strings.TrimSpace(r.FormValue("id")),
		Name:        r.FormValue("name"),
		Address:     r.FormValue("address"),
		Description: r.FormValue("description"),
	}
}

func dishForm(r *http.Request) service.DishForm {
	cafeID, _ := domain.ParseID(r.FormValue("cafe_id"))
	price, _ := formPrice(r.FormValue("price"))
	return service.DishForm{
		ID:          strings.TrimSpace(r.FormValue("id")),
		CafeID:      cafeID,
		Name:        r.FormValue("name"),
		Price:       price,
		Description: r.FormValue("description"),
	}
}

func queryID(r *http.Request, key string) int {
	id, _ := domain.ParseID(r.URL.Query().Get(key))
	return id
}
