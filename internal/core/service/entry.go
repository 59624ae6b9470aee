package service

import (
	"context"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/akramov/telepos/internal/core/domain"
	"github.com/akramov/telepos/internal/core/logger"
	"github.com/akramov/telepos/internal/core/serviceerrors"
)

type EntryField string

const (
	FieldQuantity EntryField = "quantity"
	FieldPrice    EntryField = "price"
)

func ParseEntryField(s string) (EntryField, error) {
	switch EntryField(s) {
	case FieldQuantity, FieldPrice:
		return EntryField(s), nil
	default:
		return "", serviceerrors.NewValidationError("неизвестное поле: " + s)
	}
}

// EntrySession is the keypad editing state for one line field.
type EntrySession struct {
	LineID  domain.ID  `json:"line_id"`
	Field   EntryField `json:"field"`
	Pending string     `json:"pending"`
}

// EntryService reconciles a pending textual numeric edit against a
// cart line. It unifies the two observed input modes: a keypad session
// (Begin .. Commit) and a live inline field (LiveUpdate .. Finalize),
// both ending in the same accept/reject rules.
type EntryService struct {
	mu   sync.Mutex
	cart *CartService

	lineID  domain.ID
	field   EntryField
	pending string
	// seeded marks the untouched Begin value: the first digit typed
	// replaces it instead of appending, matching a full retype.
	seeded bool

	// pre-edit values for open live edits, restored on reject.
	liveOriginals map[string]float64
}

func NewEntryService(cart *CartService) *EntryService {
	return &EntryService{
		cart:          cart,
		liveOriginals: make(map[string]float64),
	}
}

// Begin opens a session seeded with the current stored value.
func (s *EntryService) Begin(ctx context.Context, lineID domain.ID, field EntryField) (EntrySession, error) {
	line, ok := s.cart.Line(lineID)
	if !ok {
		return EntrySession{}, serviceerrors.NewNotFoundError("позиция не найдена")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lineID = lineID
	s.field = field
	if field == FieldQuantity {
		s.pending = formatNumber(line.Quantity)
	} else {
		s.pending = formatNumber(line.Price)
	}
	s.seeded = true
	return s.session(), nil
}

// AppendDigit adds one digit. The first digit after Begin replaces the
// seeded value.
func (s *EntryService) AppendDigit(digit string) (EntrySession, error) {
	if len(digit) != 1 || digit[0] < '0' || digit[0] > '9' {
		return EntrySession{}, serviceerrors.NewValidationError("ожидалась цифра")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lineID == "" {
		return EntrySession{}, serviceerrors.NewValidationError("нет активного ввода")
	}
	if s.seeded {
		s.pending = digit
		s.seeded = false
	} else {
		s.pending += digit
	}
	return s.session(), nil
}

// AppendDecimalPoint adds the decimal point; a second one in the same
// session is ignored silently.
func (s *EntryService) AppendDecimalPoint() (EntrySession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lineID == "" {
		return EntrySession{}, serviceerrors.NewValidationError("нет активного ввода")
	}
	if s.seeded {
		s.pending = "0."
		s.seeded = false
		return s.session(), nil
	}
	if !strings.Contains(s.pending, ".") {
		s.pending += "."
	}
	return s.session(), nil
}

// Backspace removes the last character of the pending text.
func (s *EntryService) Backspace() (EntrySession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lineID == "" {
		return EntrySession{}, serviceerrors.NewValidationError("нет активного ввода")
	}
	s.seeded = false
	if s.pending != "" {
		s.pending = s.pending[:len(s.pending)-1]
	}
	return s.session(), nil
}

// ClearPending resets the composed text to empty.
func (s *EntryService) ClearPending() (EntrySession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lineID == "" {
		return EntrySession{}, serviceerrors.NewValidationError("нет активного ввода")
	}
	s.pending = ""
	s.seeded = false
	return s.session(), nil
}

// AdjustBy is the price-only ±delta shortcut. Empty pending text is
// treated as zero and the result never goes below zero.
func (s *EntryService) AdjustBy(delta float64) (EntrySession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lineID == "" {
		return EntrySession{}, serviceerrors.NewValidationError("нет активного ввода")
	}
	if s.field != FieldPrice {
		return EntrySession{}, serviceerrors.NewValidationError("шаг цены доступен только для цены")
	}

	current := 0.0
	if s.pending != "" {
		if v, err := strconv.ParseFloat(s.pending, 64); err == nil {
			current = v
		}
	}
	s.pending = formatNumber(math.Max(0, current+delta))
	s.seeded = false
	return s.session(), nil
}

// Commit parses the pending text and applies the accept/reject rules.
// The session closes either way; the caller refreshes its view from
// the cart afterwards.
func (s *EntryService) Commit(ctx context.Context) error {
	s.mu.Lock()
	lineID, field, pending := s.lineID, s.field, s.pending
	s.lineID = ""
	s.field = ""
	s.pending = ""
	s.seeded = false
	s.mu.Unlock()

	if lineID == "" {
		return serviceerrors.NewValidationError("нет активного ввода")
	}

	if err := applyEntry(s.cart, lineID, field, pending); err != nil {
		logger.Debug(ctx, "entry: commit rejected", map[string]any{
			"line_id": lineID,
			"field":   field,
			"pending": pending,
		})
		return err
	}
	return nil
}

// LiveUpdate writes a best-effort parse into the cart on every
// keystroke so the running total stays responsive. No validation; the
// pre-edit value is remembered so a later rejected Finalize can
// restore it.
func (s *EntryService) LiveUpdate(ctx context.Context, lineID domain.ID, field EntryField, raw string) error {
	line, ok := s.cart.Line(lineID)
	if !ok {
		return serviceerrors.NewNotFoundError("позиция не найдена")
	}

	s.mu.Lock()
	key := liveKey(lineID, field)
	if _, seen := s.liveOriginals[key]; !seen {
		if field == FieldQuantity {
			s.liveOriginals[key] = line.Quantity
		} else {
			s.liveOriginals[key] = line.Price
		}
	}
	s.mu.Unlock()

	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	if field == FieldQuantity {
		s.cart.setQuantityDirect(lineID, v)
	} else {
		s.cart.setPriceDirect(lineID, v)
	}
	return nil
}

// Finalize applies the same accept/reject rules as Commit to the final
// text of an inline edit. On rejection the pre-edit value recorded by
// LiveUpdate is restored.
func (s *EntryService) Finalize(ctx context.Context, lineID domain.ID, field EntryField, raw string) error {
	s.mu.Lock()
	key := liveKey(lineID, field)
	original, hadLive := s.liveOriginals[key]
	delete(s.liveOriginals, key)
	s.mu.Unlock()

	err := applyEntry(s.cart, lineID, field, raw)
	if err == nil {
		return nil
	}

	if hadLive {
		if field == FieldQuantity {
			s.cart.setQuantityDirect(lineID, original)
		} else {
			s.cart.setPriceDirect(lineID, original)
		}
	}
	return err
}

// Session exposes the current keypad state, if any.
func (s *EntryService) Session() (EntrySession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lineID == "" {
		return EntrySession{}, false
	}
	return s.session(), true
}

func (s *EntryService) session() EntrySession {
	return EntrySession{LineID: s.lineID, Field: s.field, Pending: s.pending}
}

// applyEntry is the single accept/reject contract shared by keypad
// commits and inline finalizes:
//   - quantity: NaN or <1 is rejected, except exactly 0 which deletes
//     the line; values >= 1 are stored as given.
//   - price: NaN or negative is rejected; anything else is stored.
func applyEntry(cart *CartService, lineID domain.ID, field EntryField, raw string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	parseFailed := err != nil || math.IsNaN(v) || math.IsInf(v, 0)

	switch field {
	case FieldQuantity:
		if parseFailed || (v < 1 && v != 0) {
			return serviceerrors.NewValidationError("некорректное количество")
		}
		if v == 0 {
			cart.removeLine(lineID)
			return nil
		}
		if _, ok := cart.Line(lineID); !ok {
			return serviceerrors.NewNotFoundError("позиция не найдена")
		}
		cart.setQuantityDirect(lineID, v)
		return nil
	case FieldPrice:
		if parseFailed || v < 0 {
			return serviceerrors.NewValidationError("некорректная цена")
		}
		if _, ok := cart.Line(lineID); !ok {
			return serviceerrors.NewNotFoundError("позиция не найдена")
		}
		cart.setPriceDirect(lineID, v)
		return nil
	default:
		return serviceerrors.NewValidationError("неизвестное поле")
	}
}

func liveKey(lineID domain.ID, field EntryField) string {
	return string(lineID) + "|" + string(field)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
