package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"overcooked-simplified/web-svc/internal/domain"

	log "github.com/sirupsen/logrus"
)

const (
	MsgNoChecks         = "No checks found"
	MsgChecksLoadFail   = "Failed to load checks"
	MsgNoCafeDishes     = "No dishes in this cafe"
	MsgDishesLoadFail   = "Failed to load dishes"
	MsgCheckCreated     = "Check created"
	MsgCheckCreateFail  = "Failed to create the check"
	MsgNothingSelected  = "Select a cafe and at least one dish"
	MsgQRFail           = "Failed to generate the QR code"
	DefaultRefreshDelay = 500 * time.Millisecond
)

const dateLayout = "02.01.2006"

type AdminService struct {
	backend      AdminBackend
	publisher    EventPublisher
	refreshDelay time.Duration
	now          func() time.Time
}

func NewAdminService(backend AdminBackend, publisher EventPublisher, refreshDelay time.Duration, now func() time.Time) *AdminService {
	if now == nil {
		now = time.Now
	}
	return &AdminService{
		backend:      backend,
		publisher:    publisher,
		refreshDelay: refreshDelay,
		now:          now,
	}
}

type CheckListRow struct {
	ID       int
	CafeName string
	Total    string
	Date     string
}

// CheckList is the recent checks table. Failed replaces the table when set.
type CheckList struct {
	Rows   []CheckListRow
	Empty  string
	Failed string
}

// LoadChecks lists checks, resolving cafe names the list payload lacks.
func (s *AdminService) LoadChecks(ctx context.Context) (CheckList, error) {
	checks, err := s.backend.ListChecks(ctx)
	if err != nil {
		return CheckList{Failed: MsgChecksLoadFail}, fmt.Errorf("load checks: %w", err)
	}

	names := make(map[int]string)
	list := CheckList{Rows: make([]CheckListRow, 0, len(checks))}
	for _, check := range checks {
		name := check.CafeName
		if name == "" {
			name = s.cafeName(ctx, check.RestaurantID, names)
		}

		row := CheckListRow{
			ID:       check.ID,
			CafeName: name,
			Total:    FormatMoney(check.TotalAmount),
		}
		if !check.CreatedAt.IsZero() {
			row.Date = check.CreatedAt.Format(dateLayout)
		}
		list.Rows = append(list.Rows, row)
	}

	if len(list.Rows) == 0 {
		list.Empty = MsgNoChecks
	}
	return list, nil
}

func (s *AdminService) cafeName(ctx context.Context, cafeID int, cache map[int]string) string {
	if name, ok := cache[cafeID]; ok {
		return name
	}

	name := fallbackCafeName(cafeID)
	if cafeID > 0 {
		cafe, err := s.backend.GetCafe(ctx, cafeID)
		if err != nil {
			log.WithError(err).WithField("cafe_id", cafeID).Warn("failed to resolve cafe name")
		} else if cafe.Name != "" {
			name = cafe.Name
		}
	}
	cache[cafeID] = name
	return name
}

func fallbackCafeName(id int) string {
	return "Cafe #" + strconv.Itoa(id)
}

type CafeOption struct {
	ID       int
	Name     string
	Selected bool
}

// CheckForm is the "new check" dialog.
type CheckForm struct {
	Cafes        []CafeOption
	CafesEmpty   string
	SelectedCafe int
	Rows         []CheckRow
	RowsMessage  string
	RowsFailed   bool
	Total        string
}

// CheckSelection is what the check form submits: the cafe and every dish row.
type CheckSelection struct {
	CafeID int
	Rows   []CheckRow
}

func (s *AdminService) OpenCheckForm(ctx context.Context, cafeID int) (CheckForm, error) {
	form := CheckForm{SelectedCafe: cafeID, Total: FormatMoney(0)}

	cafes, err := s.backend.ListCafes(ctx)
	if err != nil {
		return form, fmt.Errorf("load cafes: %w", err)
	}
	form.Cafes = cafeOptions(cafes, cafeID)
	if len(form.Cafes) == 0 {
		form.CafesEmpty = MsgNoCafes
	}

	if cafeID <= 0 {
		return form, nil
	}

	dishes, err := s.backend.CafeMenu(ctx, cafeID)
	if err != nil {
		log.WithError(err).WithField("cafe_id", cafeID).Error("failed to load dishes for check form")
		form.RowsMessage = MsgDishesLoadFail
		form.RowsFailed = true
		return form, nil
	}

	form.Rows = make([]CheckRow, 0, len(dishes))
	for _, dish := range dishes {
		form.Rows = append(form.Rows, CheckRow{
			DishID:   dish.ID,
			Name:     dish.Name,
			Price:    dish.Price,
			Quantity: minQuantity,
		})
	}
	if len(form.Rows) == 0 {
		form.RowsMessage = MsgNoCafeDishes
	}
	return form, nil
}

// Recalculate applies the submitted checkboxes and quantities to the form rows
// and recomputes the total from the checked rows only.
func (s *AdminService) Recalculate(form *CheckForm, selection CheckSelection) {
	submitted := make(map[int]CheckRow, len(selection.Rows))
	for _, row := range selection.Rows {
		submitted[row.DishID] = row
	}

	for i, row := range form.Rows {
		sel, ok := submitted[row.DishID]
		if !ok {
			form.Rows[i].Checked = false
			continue
		}
		form.Rows[i].Checked = sel.Checked
		form.Rows[i].Quantity = ClampQuantity(sel.Quantity)
	}
	form.Total = FormatMoney(CheckTotal(form.Rows))
}

// CreateCheck posts the checked rows of the selection as a new check, then
// waits for the backend to propagate it before the caller reloads the list.
func (s *AdminService) CreateCheck(ctx context.Context, selection CheckSelection) (domain.Check, error) {
	items := make([]domain.CheckItem, 0, len(selection.Rows))
	for _, row := range selection.Rows {
		if !row.Checked || !ValidPrice(row.Price) {
			continue
		}
		items = append(items, domain.CheckItem{
			DishID:   row.DishID,
			Quantity: ClampQuantity(row.Quantity),
			Price:    row.Price,
		})
	}
	if selection.CafeID <= 0 || len(items) == 0 {
		return domain.Check{}, ErrNothingSelected
	}

	created, err := s.backend.CreateCheck(ctx, domain.NewCheck{
		RestaurantID: selection.CafeID,
		Items:        items,
		TotalAmount:  CheckTotal(selection.Rows),
	})
	if err != nil {
		return domain.Check{}, fmt.Errorf("create check: %w", err)
	}

	publish(ctx, s.publisher, domain.UIEvent{
		Type:         domain.EventCheckCreated,
		CheckID:      created.ID,
		RestaurantID: selection.CafeID,
		Count:        len(items),
		Timestamp:    s.now(),
	})

	s.wait(ctx)
	return created, nil
}

func (s *AdminService) wait(ctx context.Context) {
	if s.refreshDelay <= 0 {
		return
	}
	timer := time.NewTimer(s.refreshDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// QROverlay shows a check's QR code; clicking the backdrop closes it.
type QROverlay struct {
	CheckID int
	DataURL string
}

func (s *AdminService) CheckQR(ctx context.Context, checkID int) (QROverlay, error) {
	data, contentType, err := s.backend.CheckQRCode(ctx, checkID)
	if err != nil {
		return QROverlay{}, fmt.Errorf("load qr code of check %d: %w", checkID, err)
	}
	return QROverlay{
		CheckID: checkID,
		DataURL: "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data),
	}, nil
}

func cafeOptions(cafes []domain.Cafe, selected int) []CafeOption {
	options := make([]CafeOption, 0, len(cafes))
	for _, cafe := range cafes {
		options = append(options, CafeOption{
			ID:       cafe.ID,
			Name:     cafe.Name,
			Selected: cafe.ID == selected,
		})
	}
	return options
}
