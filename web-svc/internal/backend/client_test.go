package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"overcooked-simplified/web-svc/internal/backend"
	"overcooked-simplified/web-svc/internal/domain"
	"overcooked-simplified/web-svc/internal/mocks"

	"github.com/gorilla/mux"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newFakeBackend(t *testing.T, register func(r *mux.Router)) *backend.Client {
	t.Helper()
	r := mux.NewRouter()
	register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return backend.NewClient(srv.URL+"/", srv.Client())
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, body)
}

func TestClient_ListCafes(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantLen int
	}{
		{name: "array", body: `[{"id":1,"name":"Pelmeni","image_url":"/uploads/a.png"},{"id":2,"name":"Blini","image_url":null}]`, wantLen: 2},
		{name: "null coerced to empty", body: `null`, wantLen: 0},
		{name: "object coerced to empty", body: `{"error":"boom"}`, wantLen: 0},
		{name: "empty array", body: `[]`, wantLen: 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			client := newFakeBackend(t, func(r *mux.Router) {
				r.HandleFunc("/api/cafes", func(w http.ResponseWriter, r *http.Request) {
					writeJSON(w, http.StatusOK, testCase.body)
				}).Methods("GET")
			})

			cafes, err := client.ListCafes(context.Background())

			require.NoError(t, err)
			assert.NotNil(t, cafes)
			assert.Len(t, cafes, testCase.wantLen)
		})
	}
}

func TestClient_ListCafes_NormalizesImage(t *testing.T) {
	client := newFakeBackend(t, func(r *mux.Router) {
		r.HandleFunc("/api/cafes", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `[{"id":1,"name":"A","image_url":42},{"id":2,"name":"B","image_url":"  "}]`)
		})
	})

	cafes, err := client.ListCafes(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "", cafes[0].ImageURL)
	assert.Equal(t, "", cafes[1].ImageURL)
}

func TestClient_CafeMenu_ToleratesBothIDFields(t *testing.T) {
	client := newFakeBackend(t, func(r *mux.Router) {
		r.HandleFunc("/api/cafe/{id}/menu", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "3", mux.Vars(r)["id"])
			writeJSON(w, http.StatusOK, `[{"dish_id":7,"name":"Soup","price":150},{"id":8,"name":"Tea","price":50}]`)
		})
	})

	dishes, err := client.CafeMenu(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, dishes, 2)
	assert.Equal(t, 7, dishes[0].ID)
	assert.Equal(t, 8, dishes[1].ID)
	assert.Equal(t, 150.0, dishes[0].Price)
}

func TestClient_GetCheck_ToleratesTotalFieldNames(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantTotal float64
	}{
		{name: "total_amount", body: `{"id":5,"restaurant_id":3,"total_amount":300,"items":[]}`, wantTotal: 300},
		{name: "total only", body: `{"id":5,"restaurant_id":3,"total":120.5,"items":[]}`, wantTotal: 120.5},
		{name: "zero total_amount falls back", body: `{"id":5,"restaurant_id":3,"total_amount":0,"total":80}`, wantTotal: 80},
		{name: "neither", body: `{"id":5,"restaurant_id":3}`, wantTotal: 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			client := newFakeBackend(t, func(r *mux.Router) {
				r.HandleFunc("/api/check/{id}", func(w http.ResponseWriter, r *http.Request) {
					writeJSON(w, http.StatusOK, testCase.body)
				})
			})

			check, err := client.GetCheck(context.Background(), 5)

			require.NoError(t, err)
			assert.Equal(t, testCase.wantTotal, check.TotalAmount)
			assert.NotNil(t, check.Items)
		})
	}
}

func TestClient_GetCheck_NotFound(t *testing.T) {
	client := newFakeBackend(t, func(r *mux.Router) {
		r.HandleFunc("/api/check/{id}", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Order not found", http.StatusNotFound)
		})
	})

	_, err := client.GetCheck(context.Background(), 99)

	require.Error(t, err)
	assert.True(t, errors.Is(err, backend.ErrNotFound))

	var statusErr *backend.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, "/api/check/99", statusErr.Path)
	assert.Equal(t, "Order not found", statusErr.Body)
}

func TestClient_CreateCheck(t *testing.T) {
	var received domain.NewCheck
	client := newFakeBackend(t, func(r *mux.Router) {
		r.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			writeJSON(w, http.StatusCreated, `{"id":11,"restaurant_id":3,"total_amount":300,"items":[{"dish_id":7,"quantity":2,"price":150}]}`)
		}).Methods("POST")
	})

	created, err := client.CreateCheck(context.Background(), domain.NewCheck{
		RestaurantID: 3,
		Items:        []domain.CheckItem{{DishID: 7, Quantity: 2, Price: 150}},
		TotalAmount:  300,
	})

	require.NoError(t, err)
	assert.Equal(t, 11, created.ID)
	assert.Equal(t, 3, received.RestaurantID)
	assert.Equal(t, 300.0, received.TotalAmount)
	assert.Equal(t, []domain.CheckItem{{DishID: 7, Quantity: 2, Price: 150}}, received.Items)
}

func TestClient_CheckQRCode(t *testing.T) {
	png, err := qrcode.Encode("http://localhost/review.html?check_id=4", qrcode.Medium, 256)
	require.NoError(t, err)

	client := newFakeBackend(t, func(r *mux.Router) {
		r.HandleFunc("/api/orders/{id}/qrcode", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/png")
			w.Write(png)
		})
	})

	data, contentType, err := client.CheckQRCode(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, png, data)
}

func TestClient_UploadDishImage(t *testing.T) {
	client := newFakeBackend(t, func(r *mux.Router) {
		r.HandleFunc("/api/restaurants/{restaurantId}/dishes/{dishId}/image", func(w http.ResponseWriter, r *http.Request) {
			if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
				return
			}
			file, header, err := r.FormFile("image")
			if !assert.NoError(t, err) {
				return
			}
			defer file.Close()
			content, _ := io.ReadAll(file)

			assert.Equal(t, "soup.png", header.Filename)
			assert.Equal(t, "image/png", header.Header.Get("Content-Type"))
			assert.Equal(t, "pixels", string(content))
			writeJSON(w, http.StatusOK, `{"message":"Image uploaded successfully","image_url":"/uploads/dish_3_7_soup.png"}`)
		}).Methods("POST")
	})

	url, err := client.UploadDishImage(context.Background(), 3, 7, domain.ImageUpload{
		Filename:    "soup.png",
		ContentType: "image/png",
		Data:        strings.NewReader("pixels"),
	})

	require.NoError(t, err)
	assert.Equal(t, "/uploads/dish_3_7_soup.png", url)
}

func TestClient_DeleteDish(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantErr  bool
		notFound bool
	}{
		{name: "no content", status: http.StatusNoContent},
		{name: "not found", status: http.StatusNotFound, wantErr: true, notFound: true},
		{name: "server error", status: http.StatusInternalServerError, wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			client := newFakeBackend(t, func(r *mux.Router) {
				r.HandleFunc("/api/restaurants/3/dishes/7", func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(testCase.status)
				}).Methods("DELETE")
			})

			err := client.DeleteDish(context.Background(), 3, 7)

			if testCase.wantErr {
				assert.Error(t, err)
				assert.Equal(t, testCase.notFound, errors.Is(err, backend.ErrNotFound))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClient_RatingDistribution(t *testing.T) {
	client := newFakeBackend(t, func(r *mux.Router) {
		r.HandleFunc("/api/analytics/rating-distribution", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"1":2,"3":5}`)
		})
	})

	dist, err := client.RatingDistribution(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 5, 0, 0}, dist.Values())
}

func TestClient_TransportError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	client := backend.NewClient("http://backend", mockClient)
	_, err := client.TopToday(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "/api/analytics/top-today")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestUploadsProxy(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader("jpeg-bytes")),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "image/jpeg")
	resp.Header.Set("ETag", `"v1"`)
	resp.Header.Set("Connection", "keep-alive")
	resp.Header.Set("Transfer-Encoding", "chunked")
	resp.Header.Set("Set-Cookie", "backend=1")
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "http://backend/uploads/dish_1_2_a.jpg" &&
			req.Header.Get("If-None-Match") == `"v0"` &&
			req.Header.Get("Cookie") == ""
	})).Return(resp, nil).Once()

	proxy := backend.NewUploadsProxy(backend.NewClient("http://backend", mockClient))
	req := httptest.NewRequest(http.MethodGet, "/uploads/dish_1_2_a.jpg", nil)
	req.Header.Set("If-None-Match", `"v0"`)
	req.Header.Set("Cookie", "overcooked_session=abc")
	rr := httptest.NewRecorder()
	proxy.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/jpeg", rr.Header().Get("Content-Type"))
	assert.Equal(t, `"v1"`, rr.Header().Get("ETag"))
	for _, dropped := range []string{"Connection", "Transfer-Encoding", "Set-Cookie"} {
		assert.Empty(t, rr.Header().Values(dropped), dropped)
	}
	assert.Equal(t, "jpeg-bytes", rr.Body.String())
}

func TestUploadsProxy_BackendDown(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	mockClient.On("Do", mock.Anything).Return(nil, errors.New("dial tcp: refused")).Once()

	proxy := backend.NewUploadsProxy(backend.NewClient("http://backend", mockClient))
	rr := httptest.NewRecorder()
	proxy.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/uploads/x.png", nil))

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}
