package intake

import (
	"context"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/prabeth/vovos-pedidos-online/models"
)

// Step is the workflow state. Transitions only move forward on valid input;
// every failure leaves the current step and the draft untouched.
type Step int

const (
	StepScheduling Step = iota
	StepOrdering
	StepConfirming
)

// How far ahead the scheduling calendar looks.
const availabilityWindowDays = 60

// Draft is the in-progress order, owned exclusively by one Workflow. It
// survives navigation between steps and submission failures; only Reset or a
// new Workflow discards it.
type Draft struct {
	Name    string
	Phone   string
	Date    string
	Slot    string
	Cart    *Cart
	Payment models.PaymentMethod
}

// Workflow drives date/slot selection, cart assembly, contact capture and
// submission against the storefront API.
type Workflow struct {
	client  *Client
	step    Step
	draft   Draft
	catalog Catalog
	avail   map[string]models.DayStatus
	locator url.Values

	inFlight atomic.Bool
	now      func() time.Time
}

func NewWorkflow(client *Client) *Workflow {
	return &Workflow{
		client:  client,
		step:    StepScheduling,
		draft:   Draft{Cart: NewCart(), Payment: models.PaymentZelle},
		avail:   make(map[string]models.DayStatus),
		locator: url.Values{},
		now:     time.Now,
	}
}

// Start loads the catalog and the availability window for the calendar.
func (w *Workflow) Start(ctx context.Context) error {
	products, err := w.client.Products(ctx)
	if err != nil {
		return err
	}
	today := w.now().Format(dateLayout)
	end := w.now().AddDate(0, 0, availabilityWindowDays).Format(dateLayout)
	avail, err := w.client.Availability(ctx, today, end)
	if err != nil {
		return err
	}
	w.catalog = NewCatalog(products)
	w.avail = avail
	return nil
}

func (w *Workflow) Step() Step       { return w.step }
func (w *Workflow) Draft() Draft     { return w.draft }
func (w *Workflow) Cart() *Cart      { return w.draft.Cart }
func (w *Workflow) Catalog() Catalog { return w.catalog }

// SelectDate picks a pickup date. A previously chosen slot is kept.
func (w *Workflow) SelectDate(date string) error {
	if err := DateSelectable(date, w.avail); err != nil {
		return err
	}
	w.draft.Date = date
	return nil
}

// SelectSlot picks a time slot from the fixed sequence.
func (w *Workflow) SelectSlot(slot string) error {
	if !SlotValid(slot) {
		return ErrInvalidSlot
	}
	w.draft.Slot = slot
	return nil
}

// Advance moves from scheduling to ordering. Both a date and a slot are
// required; on success the locator reflects the selection so the exact state
// can be rebuilt from a link.
func (w *Workflow) Advance() error {
	if w.draft.Date == "" {
		return ErrDateRequired
	}
	if w.draft.Slot == "" {
		return ErrSlotRequired
	}
	w.locator.Set("date", w.draft.Date)
	w.locator.Set("time", w.draft.Slot)
	w.step = StepOrdering
	return nil
}

// Locator returns the shareable query state for the current selection.
func (w *Workflow) Locator() url.Values {
	return w.locator
}

// RestoreFromQuery pre-selects date and slot from locator parameters and
// auto-advances to the ordering step when the slot belongs to the fixed
// sequence and the date is not a Sunday.
func (w *Workflow) RestoreFromQuery(q url.Values) {
	date := q.Get("date")
	slot := q.Get("time")
	if date == "" || slot == "" {
		return
	}
	if !SlotValid(slot) || IsSunday(date) {
		return
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return
	}
	w.draft.Date = date
	w.draft.Slot = slot
	w.locator.Set("date", date)
	w.locator.Set("time", slot)
	w.step = StepOrdering
}

// SetName records the customer name as typed.
func (w *Workflow) SetName(name string) {
	w.draft.Name = name
}

// TypePhone reformats the phone input on every keystroke.
func (w *Workflow) TypePhone(raw string) string {
	w.draft.Phone = FormatPhone(raw)
	return w.draft.Phone
}

// SetPayment selects the payment method tag.
func (w *Workflow) SetPayment(m models.PaymentMethod) error {
	if m != models.PaymentZelle && m != models.PaymentCash {
		return ErrInvalidMethod
	}
	w.draft.Payment = m
	return nil
}

// Payload builds the create-order request body from the draft and the
// catalog snapshot.
func (w *Workflow) Payload() OrderPayload {
	var lines []models.OrderLine
	for _, l := range w.draft.Cart.Lines() {
		lines = append(lines, models.OrderLine{
			ProductID: l.ProductID,
			Name:      w.catalog.NameOf(l.ProductID),
			UnitPrice: w.catalog.PriceOf(l.ProductID),
			Quantity:  l.Quantity,
		})
	}
	return OrderPayload{
		CustomerName:  w.draft.Name,
		CustomerPhone: w.draft.Phone,
		OrderDate:     w.draft.Date,
		OrderTime:     w.draft.Slot,
		Items:         ItemsSummary(w.draft.Cart, w.catalog),
		Lines:         lines,
		Total:         w.draft.Cart.Total(w.catalog),
		PaymentMethod: w.draft.Payment,
	}
}

// Submit validates the draft locally, and only then calls the order store.
// Validation failures never reach the network. Any failure keeps the
// workflow on the ordering step with the draft intact so the user can retry.
// On success the workflow moves to confirming; the draft is kept because the
// confirmation summary and the outbound message still need it.
func (w *Workflow) Submit(ctx context.Context) error {
	if !w.inFlight.CompareAndSwap(false, true) {
		return ErrSubmitPending
	}
	defer w.inFlight.Store(false)

	if w.draft.Date == "" {
		return ErrDateRequired
	}
	if w.draft.Cart.Total(w.catalog) <= 0 {
		return ErrEmptyCart
	}
	if !ValidPhone(w.draft.Phone) {
		return ErrInvalidPhone
	}
	if strings.TrimSpace(w.draft.Name) == "" {
		return ErrNameRequired
	}

	if err := w.client.PlaceOrder(ctx, w.Payload()); err != nil {
		return err
	}
	w.step = StepConfirming
	return nil
}

// Confirmation renders the outbound message for the submitted draft.
func (w *Workflow) Confirmation() string {
	return ConfirmationMessage(w.draft, w.catalog)
}

// Reset discards the draft and returns to scheduling.
func (w *Workflow) Reset() {
	w.draft = Draft{Cart: NewCart(), Payment: models.PaymentZelle}
	w.locator = url.Values{}
	w.step = StepScheduling
}
