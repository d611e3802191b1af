package httpapi_test

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"
	"time"

	httpapi "overcooked-simplified/web-svc/internal/api/http"
	"overcooked-simplified/web-svc/internal/backend"
	"overcooked-simplified/web-svc/internal/domain"
	"overcooked-simplified/web-svc/internal/mocks"
	"overcooked-simplified/web-svc/internal/service"
	"overcooked-simplified/web-svc/internal/storage"
	"overcooked-simplified/web-svc/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	backend *mocks.Backend
	router  http.Handler
}

func newFixture(t *testing.T, opts httpapi.RouterOptions) fixture {
	t.Helper()
	be := mocks.NewBackend(t)
	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	handler := httpapi.NewHandler(
		service.NewCatalogService(be, nil),
		service.NewAdminService(be, nil, 0, nil),
		service.NewAnalyticsService(be, nil),
		service.NewReviewService(be, nil),
		service.NewNotifications(storage.NewMemoryFlashStore(time.Minute)),
		renderer,
		nil,
		5*time.Minute,
	)
	return fixture{backend: be, router: httpapi.NewRouter(handler, opts)}
}

func (f fixture) do(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "overcooked_session" {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

var errBackend = &backend.StatusError{Method: "GET", Path: "/api/cafes", Code: http.StatusInternalServerError}

func TestHealthCheck(t *testing.T) {
	f := newFixture(t, httpapi.RouterOptions{})

	w := f.do(httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}

func TestSessionCookie(t *testing.T) {
	f := newFixture(t, httpapi.RouterOptions{})

	first := f.do(httptest.NewRequest("GET", "/health", nil))
	cookie := sessionCookie(t, first)
	second := f.do(httptest.NewRequest("GET", "/health", nil), cookie)

	assert.NotEmpty(t, cookie.Value)
	assert.Empty(t, second.Result().Cookies())
}

func TestCatalogHandler(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		cafes    []domain.Cafe
		cafesErr error
		wantBody []string
	}{
		{
			name:     "cafes listed",
			path:     "/",
			cafes:    []domain.Cafe{{ID: 1, Name: "Pelmeni"}},
			wantBody: []string{"Pelmeni", "/cafes/1/menu?name=Pelmeni"},
		},
		{
			name:     "index alias",
			path:     "/index.html",
			cafes:    []domain.Cafe{},
			wantBody: []string{service.MsgNoCafes},
		},
		{
			name:     "backend failure",
			path:     "/",
			cafesErr: errBackend,
			wantBody: []string{service.MsgCatalogLoadFail, `data-level="error"`},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t, httpapi.RouterOptions{})
			f.backend.On("ListCafes", mock.Anything).Return(testCase.cafes, testCase.cafesErr).Once()

			w := f.do(httptest.NewRequest("GET", testCase.path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			for _, want := range testCase.wantBody {
				assert.Contains(t, w.Body.String(), want)
			}
		})
	}
}

func TestCafeMenuHandler(t *testing.T) {
	t.Run("menu shown", func(t *testing.T) {
		f := newFixture(t, httpapi.RouterOptions{})
		f.backend.On("CafeMenu", mock.Anything, 2).Return([]domain.Dish{{ID: 7, Name: "Borscht", Price: 150}}, nil).Once()

		w := f.do(httptest.NewRequest("GET", "/cafes/2/menu?name=Blini", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Menu - Blini")
		assert.Contains(t, w.Body.String(), `id="menu-section"`)
		assert.NotContains(t, w.Body.String(), `id="cafes-section"`)
	})

	t.Run("failure keeps the cafe grid", func(t *testing.T) {
		f := newFixture(t, httpapi.RouterOptions{})
		f.backend.On("CafeMenu", mock.Anything, 2).Return(nil, errBackend).Once()
		f.backend.On("ListCafes", mock.Anything).Return([]domain.Cafe{{ID: 2, Name: "Blini"}}, nil).Once()

		w := f.do(httptest.NewRequest("GET", "/cafes/2/menu?name=Blini", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `id="cafes-section"`)
		assert.Contains(t, w.Body.String(), service.MsgMenuLoadFail)
	})
}

func TestCreateCheckHandler(t *testing.T) {
	f := newFixture(t, httpapi.RouterOptions{})
	f.backend.On("CreateCheck", mock.Anything, domain.NewCheck{
		RestaurantID: 3,
		Items:        []domain.CheckItem{{DishID: 7, Quantity: 2, Price: 150}},
		TotalAmount:  300,
	}).Return(domain.Check{ID: 11, RestaurantID: 3}, nil).Once()
	f.backend.On("ListChecks", mock.Anything).Return([]domain.Check{
		{ID: 11, RestaurantID: 3, CafeName: "Pelmeni", TotalAmount: 300},
	}, nil).Once()

	post := f.do(postForm("/admin/checks/new", url.Values{
		"cafe_id":   {"3"},
		"dish":      {"7", "8"},
		"price_7":   {"150"},
		"checked_7": {"on"},
		"qty_7":     {"2"},
		"price_8":   {"90"},
		"qty_8":     {"1"},
		"action":    {"create"},
	}))
	require.Equal(t, http.StatusSeeOther, post.Code)
	assert.Equal(t, "/admin", post.Header().Get("Location"))

	list := f.do(httptest.NewRequest("GET", "/admin", nil), sessionCookie(t, post))
	assert.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), service.MsgCheckCreated)
	assert.Contains(t, list.Body.String(), "Pelmeni")
}

func TestCreateCheckHandler_UnchargeablePrice(t *testing.T) {
	tests := []struct {
		name  string
		price string
	}{
		{name: "nan", price: "NaN"},
		{name: "overflow to infinity", price: "1e400"},
		{name: "negative", price: "-150"},
		{name: "not a number", price: "abc"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t, httpapi.RouterOptions{})
			f.backend.On("ListCafes", mock.Anything).Return([]domain.Cafe{{ID: 3, Name: "Pelmeni"}}, nil).Once()
			f.backend.On("CafeMenu", mock.Anything, 3).Return([]domain.Dish{{ID: 7, Name: "Borscht", Price: 150}}, nil).Once()

			w := f.do(postForm("/admin/checks/new", url.Values{
				"cafe_id":   {"3"},
				"dish":      {"7"},
				"price_7":   {testCase.price},
				"checked_7": {"on"},
				"qty_7":     {"1"},
				"action":    {"create"},
			}))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `data-level="error"`)
			assert.Contains(t, w.Body.String(), service.MsgNothingSelected)
			assert.Contains(t, w.Body.String(), `id="total-amount" class="font-bold">0<`)
			f.backend.AssertNotCalled(t, "CreateCheck", mock.Anything, mock.Anything)
		})
	}
}

func TestCheckFormRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		action    string
		checked   bool
		wantTotal string
		wantBody  string
	}{
		{name: "recalculate", action: "recalculate", checked: true, wantTotal: "300"},
		{name: "create with nothing checked", action: "create", checked: false, wantTotal: "0", wantBody: service.MsgNothingSelected},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t, httpapi.RouterOptions{})
			f.backend.On("ListCafes", mock.Anything).Return([]domain.Cafe{{ID: 3, Name: "Pelmeni"}}, nil).Once()
			f.backend.On("CafeMenu", mock.Anything, 3).Return([]domain.Dish{{ID: 7, Name: "Borscht", Price: 150}}, nil).Once()

			values := url.Values{"cafe_id": {"3"}, "dish": {"7"}, "price_7": {"150"}, "qty_7": {"2"}, "action": {testCase.action}}
			if testCase.checked {
				values.Set("checked_7", "on")
			}
			w := f.do(postForm("/admin/checks/new", values))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `id="total-amount" class="font-bold">`+testCase.wantTotal+`<`)
			if testCase.wantBody != "" {
				assert.Contains(t, w.Body.String(), testCase.wantBody)
			}
		})
	}
}

func TestAdminQROverlay(t *testing.T) {
	f := newFixture(t, httpapi.RouterOptions{})
	f.backend.On("ListChecks", mock.Anything).Return([]domain.Check{}, nil).Once()
	f.backend.On("CheckQRCode", mock.Anything, 9).Return([]byte{0x89, 'P', 'N', 'G'}, "image/png", nil).Once()

	w := f.do(httptest.NewRequest("GET", "/admin?qr=9", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `id="qr-overlay"`)
	assert.Contains(t, w.Body.String(), "data:image/png;base64,")
	assert.Contains(t, w.Body.String(), service.MsgNoChecks)
}

func TestViewCheckRedirect(t *testing.T) {
	f := newFixture(t, httpapi.RouterOptions{})

	w := f.do(httptest.NewRequest("GET", "/admin/checks/9/view", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/review?check_id=9", w.Header().Get("Location"))
}

func TestDeleteCafeHandler(t *testing.T) {
	tests := []struct {
		name         string
		confirm      string
		setupMock    func(*mocks.Backend)
		wantLocation string
	}{
		{
			name:         "unconfirmed sends nothing",
			setupMock:    func(m *mocks.Backend) {},
			wantLocation: "/admin/cafes/5/delete",
		},
		{
			name:    "confirmed",
			confirm: "yes",
			setupMock: func(m *mocks.Backend) {
				m.On("DeleteCafe", mock.Anything, 5).Return(nil).Once()
			},
			wantLocation: "/admin/cafes",
		},
		{
			name:    "backend error",
			confirm: "yes",
			setupMock: func(m *mocks.Backend) {
				m.On("DeleteCafe", mock.Anything, 5).Return(errors.New("boom")).Once()
			},
			wantLocation: "/admin/cafes",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t, httpapi.RouterOptions{})
			testCase.setupMock(f.backend)

			w := f.do(postForm("/admin/cafes/5/delete", url.Values{"confirm": {testCase.confirm}}))

			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, testCase.wantLocation, w.Header().Get("Location"))
		})
	}
}

func TestConfirmDeleteDishPage(t *testing.T) {
	f := newFixture(t, httpapi.RouterOptions{})

	w := f.do(httptest.NewRequest("GET", "/admin/dishes/7/delete?cafe_id=3", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `action="/admin/dishes/7/delete?cafe_id=3"`)
	assert.Contains(t, w.Body.String(), `name="confirm" value="yes"`)
}

func TestSaveCafeHandler_Validation(t *testing.T) {
	f := newFixture(t, httpapi.RouterOptions{})

	w := f.do(postForm("/admin/cafes", url.Values{"name": {"  "}}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Name is required")
}

func TestSaveCafeHandler_UploadFailureKeepsRecord(t *testing.T) {
	f := newFixture(t, httpapi.RouterOptions{})
	f.backend.On("CreateCafe", mock.Anything, domain.Cafe{Name: "Pelmeni"}).Return(domain.Cafe{ID: 5, Name: "Pelmeni"}, nil).Once()
	f.backend.On("UploadCafeImage", mock.Anything, 5, mock.AnythingOfType("domain.ImageUpload")).Return("", errors.New("too large")).Once()
	f.backend.On("ListCafes", mock.Anything).Return([]domain.Cafe{{ID: 5, Name: "Pelmeni"}}, nil).Once()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("name", "Pelmeni"))
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="cafe.png"`)
	header.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/admin/cafes", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	post := f.do(req)
	require.Equal(t, http.StatusSeeOther, post.Code)

	list := f.do(httptest.NewRequest("GET", "/admin/cafes", nil), sessionCookie(t, post))
	assert.Contains(t, list.Body.String(), service.MsgCafeCreated)
	assert.Contains(t, list.Body.String(), service.MsgImageUpload)
}

func TestDishManagerHandler(t *testing.T) {
	f := newFixture(t, httpapi.RouterOptions{})
	f.backend.On("ListCafes", mock.Anything).Return([]domain.Cafe{{ID: 3, Name: "Pelmeni"}}, nil).Once()

	w := f.do(httptest.NewRequest("GET", "/admin/dishes", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), service.MsgSelectCafe)
	assert.Contains(t, w.Body.String(), "disabled")
}

func TestAnalyticsHandler(t *testing.T) {
	f := newFixture(t, httpapi.RouterOptions{})
	f.backend.On("ListCafes", mock.Anything).Return([]domain.Cafe{{ID: 1, Name: "Pelmeni"}}, nil)
	f.backend.On("TopToday", mock.Anything).Return([]domain.DishScore{{DishID: 7, DishName: "Borscht", RestaurantID: 1, Score: 4}}, nil).Once()
	f.backend.On("TopAllTime", mock.Anything).Return([]domain.DishScore{}, nil)
	f.backend.On("RatingDistribution", mock.Anything).Return(domain.RatingDistribution{}, errBackend).Once()

	w := f.do(httptest.NewRequest("GET", "/analytics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `content="300"`)
	assert.Contains(t, w.Body.String(), "Borscht")
	assert.Contains(t, w.Body.String(), service.MsgNoData)
}

func TestReviewHandler(t *testing.T) {
	check := domain.Check{
		ID:           4,
		RestaurantID: 3,
		TotalAmount:  300,
		Items:        []domain.CheckItem{{DishID: 7, DishName: "Borscht", Quantity: 2, Price: 150}},
	}

	t.Run("missing check id", func(t *testing.T) {
		f := newFixture(t, httpapi.RouterOptions{})

		w := f.do(httptest.NewRequest("GET", "/review", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), service.MsgNoCheckID)
	})

	t.Run("unknown check", func(t *testing.T) {
		f := newFixture(t, httpapi.RouterOptions{})
		f.backend.On("GetCheck", mock.Anything, 4).Return(domain.Check{}, &backend.StatusError{Code: http.StatusNotFound}).Once()

		w := f.do(httptest.NewRequest("GET", "/review.html?check_id=4", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), service.MsgCheckLoadFail)
	})

	t.Run("no ratings sends nothing", func(t *testing.T) {
		f := newFixture(t, httpapi.RouterOptions{})
		f.backend.On("GetCheck", mock.Anything, 4).Return(check, nil).Once()

		w := f.do(postForm("/review?check_id=4", url.Values{"dish": {"7"}, "comment_7": {"tasty"}}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), service.MsgRateOneDish)
		assert.Contains(t, w.Body.String(), `id="review-form"`)
		assert.Contains(t, w.Body.String(), "tasty")
	})

	t.Run("submitted", func(t *testing.T) {
		f := newFixture(t, httpapi.RouterOptions{})
		f.backend.On("GetCheck", mock.Anything, 4).Return(check, nil).Once()
		f.backend.On("SubmitReviews", mock.Anything, domain.ReviewSubmission{
			CheckID:      4,
			RestaurantID: 3,
			Reviews:      []domain.Review{{DishID: 7, Rating: 5, Comment: "tasty"}},
		}).Return(nil).Once()

		w := f.do(postForm("/review?check_id=4", url.Values{"dish": {"7"}, "rating_7": {"5"}, "comment_7": {" tasty "}}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `id="thank-you"`)
		assert.NotContains(t, w.Body.String(), `id="review-form"`)
	})
}

func TestCSRFProtection(t *testing.T) {
	f := newFixture(t, httpapi.RouterOptions{CSRFKey: []byte("0123456789abcdef0123456789abcdef")})

	w := f.do(postForm("/admin/cafes/5/delete", url.Values{"confirm": {"yes"}}))

	assert.Equal(t, http.StatusForbidden, w.Code)
}
