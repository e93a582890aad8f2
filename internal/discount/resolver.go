package discount

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"storefront/internal/api"
	"storefront/internal/pricing"
)

// ErrInvalidCode covers unknown, deleted and inactive codes alike; the
// shopper gets the same answer for all three.
var ErrInvalidCode = errors.New("discount code is invalid or expired")

var ErrEmptyCode = errors.New("enter a discount code")

// MinimumOrderError is returned when the code exists but the current subtotal
// is below its minimum order amount.
type MinimumOrderError struct {
	Minimum float64
}

func (e *MinimumOrderError) Error() string {
	return fmt.Sprintf("order subtotal must be at least %s to use this code", pricing.Format(e.Minimum))
}

// Applied is the resolved effect of a code on the current cart: what gets
// subtracted from the subtotal and under which code the order is submitted.
type Applied struct {
	Code   string
	Amount float64
}

// Resolver validates a user-entered code against the server and re-derives
// the monetary amount locally for display. Time-window and usage-limit
// validity stay server-side behind the isActive flag; the client does not
// second-guess them.
type Resolver struct {
	client *api.Client
	log    *zap.Logger
}

func NewResolver(client *api.Client, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{client: client, log: log}
}

// Resolve looks the code up and applies the minimum-order gate against the
// given subtotal. Callers must compute the subtotal from the same cart
// snapshot they will submit.
func (r *Resolver) Resolve(ctx context.Context, code string, subtotal float64) (*Applied, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrEmptyCode
	}

	descriptor, err := r.client.GetDiscountCode(ctx, code)
	if err != nil {
		if api.IsKind(err, api.KindNotFound) {
			return nil, ErrInvalidCode
		}
		return nil, err
	}

	if !descriptor.IsActive {
		return nil, ErrInvalidCode
	}
	if descriptor.MinOrderAmount > subtotal {
		return nil, &MinimumOrderError{Minimum: descriptor.MinOrderAmount}
	}

	amount := pricing.DiscountAmount(subtotal, descriptor)
	r.log.Info("discount code applied",
		zap.String("code", code),
		zap.Float64("amount", amount))

	return &Applied{Code: code, Amount: amount}, nil
}
