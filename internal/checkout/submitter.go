package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"storefront/internal/api"
	"storefront/internal/cart"
	"storefront/internal/discount"
	"storefront/internal/pricing"
)

// State is where the submitter currently is in the order flow. The notify
// states are a secondary branch after Success and never reverse the order
// outcome.
type State string

const (
	StateIdle            State = "idle"
	StateValidating      State = "validating"
	StateSubmitting      State = "submitting"
	StateSuccess         State = "success"
	StateFailed          State = "failed"
	StateNotifyingAdmin  State = "notifying_admin"
	StateNotifySucceeded State = "notify_succeeded"
	StateNotifyFailed    State = "notify_failed"
)

var (
	// ErrEmptyCart blocks checkout entirely; a zero-total order is never
	// submitted.
	ErrEmptyCart = errors.New("cannot check out with an empty cart")

	// ErrSubmitInProgress guards against duplicate submission from repeated
	// clicks while a submit is in flight.
	ErrSubmitInProgress = errors.New("order submission already in progress")
)

// Result is what a successful submission hands back to the UI layer. The
// order is final even when NotifyWarning is set; a failed admin notification
// only warrants a secondary banner.
type Result struct {
	Order         Order
	NotifyWarning string
}

// Submitter drives the order flow: validate, submit, record, clear cart,
// then best-effort admin notification.
type Submitter struct {
	client *api.Client
	cart   *cart.Store
	log    *zap.Logger

	mu         sync.Mutex
	state      State
	submitting bool
	history    []Order
}

func NewSubmitter(client *api.Client, cartStore *cart.Store, log *zap.Logger) *Submitter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Submitter{
		client: client,
		cart:   cartStore,
		log:    log,
		state:  StateIdle,
	}
}

func (s *Submitter) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Submitter) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// History returns the locally recorded orders, newest last.
func (s *Submitter) History() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Order(nil), s.history...)
}

// Submit runs the whole flow against the current cart snapshot. The fees
// slice and applied discount must come from the same checkout session the
// form was filled in. On validation failure a FieldErrors is returned and
// nothing is sent.
func (s *Submitter) Submit(ctx context.Context, form Form, fees []api.ShippingFee, applied *discount.Applied) (*Result, error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return nil, ErrSubmitInProgress
	}
	s.submitting = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()
	}()

	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	s.setState(StateValidating)
	form = form.Normalize()
	if fieldErrs := form.Validate(); len(fieldErrs) > 0 {
		s.setState(StateIdle)
		return nil, fieldErrs
	}

	var discountAmount float64
	if applied != nil {
		discountAmount = applied.Amount
	}
	totals := pricing.Compute(items, fees, form.Governorate, discountAmount)

	s.setState(StateSubmitting)
	resp, err := s.client.CreateOrder(ctx, buildOrderRequest(form, items, applied))
	if err != nil {
		s.setState(StateFailed)
		s.log.Error("order submission failed", zap.Error(err))
		return nil, err
	}

	order := buildLocalOrder(resp, form, items, totals, applied)
	s.mu.Lock()
	s.history = append(s.history, order)
	s.state = StateSuccess
	s.mu.Unlock()

	s.cart.Clear()
	s.log.Info("order created",
		zap.String("order_id", order.ID),
		zap.Float64("total", order.Total))

	result := &Result{Order: order}

	s.setState(StateNotifyingAdmin)
	if err := s.client.NotifyAdmin(ctx, order.ID, totals.Total); err != nil {
		s.setState(StateNotifyFailed)
		s.log.Warn("admin notification failed, order already created", zap.Error(err))
		result.NotifyWarning = "failed to notify the store, your order was still created"
	} else {
		s.setState(StateNotifySucceeded)
	}

	return result, nil
}

func buildOrderRequest(form Form, items []cart.LineItem, applied *discount.Applied) api.CreateOrderRequest {
	orderItems := make([]api.OrderItemRequest, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, api.OrderItemRequest{
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.UnitPrice,
			Size:            nullable(item.Size),
			Color:           nullable(item.Color),
		})
	}

	req := api.CreateOrderRequest{
		FullName:      form.FullName,
		PhoneNumber:   form.Phone,
		Address:       form.Address,
		Governorate:   form.Governorate,
		PaymentMethod: paymentMethodCode(form.PaymentMethod),
		Items:         orderItems,
	}
	if applied != nil {
		code := applied.Code
		req.DiscountCode = &code
	}
	return req
}

func buildLocalOrder(resp api.CreateOrderResponse, form Form, items []cart.LineItem, totals pricing.Totals, applied *discount.Applied) Order {
	orderItems := make([]OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, OrderItem{
			ProductID:       item.ProductID,
			ProductName:     item.ProductName,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.UnitPrice,
			Size:            item.Size,
			Color:           item.Color,
		})
	}

	order := Order{
		ID:             resp.ID,
		CustomerID:     resp.CustomerID,
		Items:          orderItems,
		Total:          pricing.Round2(totals.Total),
		ShippingFee:    pricing.Round2(totals.ShippingFee),
		DiscountAmount: pricing.Round2(totals.DiscountAmount),
		PaymentMethod:  mapPaymentMethod(resp.PaymentMethod),
		Status:         mapStatus(resp.Status),
		CreatedAt:      resp.Date,
		Customer: CustomerInfo{
			FullName:    form.FullName,
			Phone:       form.Phone,
			Address:     form.Address,
			Governorate: form.Governorate,
		},
	}
	if order.ID == "" {
		order.ID = fmt.Sprintf("order-%d", time.Now().UnixMilli())
	}
	if order.CreatedAt == "" {
		order.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if applied != nil {
		order.DiscountCode = applied.Code
	}
	return order
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
