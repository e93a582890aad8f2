package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"storefront/internal/config"
	"storefront/internal/session"
)

// Client talks to the remote storefront API. All calls classify failures into
// api.Error kinds; a 401 on an authenticated call expires the session store,
// which fires the registered expiry hook at most once.
type Client struct {
	http          *resty.Client
	store         *session.Store
	log           *zap.Logger
	retryAttempts int
	retryDelay    time.Duration
}

func New(cfg config.Config, store *session.Store, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	httpClient := resty.New().
		SetBaseURL(cfg.APIBaseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http:          httpClient,
		store:         store,
		log:           log,
		retryAttempts: cfg.RetryAttempts,
		retryDelay:    cfg.RetryDelay,
	}
}

var errNoToken = &Error{Kind: KindAuthRequired, Status: http.StatusUnauthorized, Message: "no access token"}

// BaseURL exposes the configured API origin, needed when relative upload
// paths in responses have to be made absolute.
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

func (c *Client) do(authed bool, send func(*resty.Request) (*resty.Response, error)) error {
	req := c.http.R().SetHeader("Content-Type", "application/json")
	if authed {
		token := c.store.AccessToken()
		if token == "" {
			return errNoToken
		}
		req.SetAuthToken(token)
	}

	resp, err := send(req)
	if err != nil {
		return networkError(err)
	}
	if resp.IsError() {
		kind := classify(resp.StatusCode())
		if kind == KindAuthRequired && authed {
			c.store.Expire()
		}
		return &Error{Kind: kind, Status: resp.StatusCode(), Message: errorMessage(resp.Body())}
	}
	return nil
}

// errorMessage pulls a human-readable message out of an error body. The
// backend is inconsistent about the field name, so both shapes are tried
// before falling back to the raw body.
func errorMessage(body []byte) string {
	var shape struct {
		Error   string `json:"error"`
		Message string `json:"Message"`
	}
	if err := json.Unmarshal(body, &shape); err == nil {
		if shape.Error != "" {
			return shape.Error
		}
		if shape.Message != "" {
			return shape.Message
		}
	}
	if len(body) > 200 {
		body = body[:200]
	}
	return string(body)
}

// FetchCart loads the canonical server-side cart. Transient failures are
// retried with the standard bounded-retry shape.
func (c *Client) FetchCart(ctx context.Context) (CartResponse, error) {
	var out CartResponse
	err := withRetry(ctx, c.log, "fetch cart", c.retryAttempts, c.retryDelay, func() error {
		out = CartResponse{}
		return c.do(true, func(req *resty.Request) (*resty.Response, error) {
			return req.SetContext(ctx).SetResult(&out).Get("/api/cart")
		})
	})
	return out, err
}

// AddCartItem stages a product selection into the server-side cart. The local
// store is only mutated after this succeeds; the server stays authoritative.
func (c *Client) AddCartItem(ctx context.Context, item AddCartItemRequest) error {
	return c.do(true, func(req *resty.Request) (*resty.Response, error) {
		return req.SetContext(ctx).SetBody(item).Post("/api/cart/items")
	})
}

func (c *Client) FetchShippingFees(ctx context.Context, pageNumber, pageSize int) (ShippingFeePage, error) {
	var out ShippingFeePage
	err := c.do(false, func(req *resty.Request) (*resty.Response, error) {
		r := req.SetContext(ctx).
			SetQueryParam("pageNumber", fmt.Sprint(pageNumber)).
			SetQueryParam("pageSize", fmt.Sprint(pageSize)).
			SetResult(&out)
		if token := c.store.AccessToken(); token != "" {
			r.SetAuthToken(token)
		}
		return r.Get("/api/shipping-fees")
	})
	return out, err
}

func (c *Client) GetDiscountCode(ctx context.Context, code string) (DiscountCode, error) {
	var out DiscountCode
	err := c.do(false, func(req *resty.Request) (*resty.Response, error) {
		return req.SetContext(ctx).SetResult(&out).Get("/api/discount-codes/code/" + code)
	})
	return out, err
}

// CreateOrder submits the order. No retry here: without an idempotency key a
// transport-level retry could double-submit.
func (c *Client) CreateOrder(ctx context.Context, order CreateOrderRequest) (CreateOrderResponse, error) {
	var out CreateOrderResponse
	err := c.do(true, func(req *resty.Request) (*resty.Response, error) {
		return req.SetContext(ctx).SetBody(order).SetResult(&out).Post("/api/orders")
	})
	return out, err
}

// NotifyAdmin tells the backend to push a new-order notification to the
// admin. Best effort with bounded retry; the order is already final when
// this runs.
func (c *Client) NotifyAdmin(ctx context.Context, orderNumber string, total float64) error {
	body := NotifyAdminRequest{
		OrderNumber: orderNumber,
		Total:       decimal.NewFromFloat(total).StringFixed(2),
	}
	return withRetry(ctx, c.log, "notify admin", c.retryAttempts, c.retryDelay, func() error {
		return c.do(true, func(req *resty.Request) (*resty.Response, error) {
			return req.SetContext(ctx).SetBody(body).Post("/api/notification/send")
		})
	})
}

// Login authenticates and stores the returned token pair in the session
// store on success.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	var out LoginResponse
	err := c.do(false, func(req *resty.Request) (*resty.Response, error) {
		return req.SetContext(ctx).
			SetBody(LoginRequest{Email: email, Password: password}).
			SetResult(&out).
			Post("/api/auth/login")
	})
	if err != nil {
		return LoginResponse{}, err
	}
	if out.AccessToken == "" {
		return LoginResponse{}, &Error{Kind: KindServer, Status: http.StatusOK, Message: "accessToken missing in login response"}
	}
	c.store.SetTokens(out.AccessToken, out.RefreshToken)
	return out, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(false, func(r *resty.Request) (*resty.Response, error) {
		return r.SetContext(ctx).SetBody(req).Post("/api/auth/register")
	})
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.do(false, func(r *resty.Request) (*resty.Response, error) {
		return r.SetContext(ctx).SetBody(ForgotPasswordRequest{Email: email}).Post("/api/auth/forgot-password")
	})
}

func (c *Client) ResetPassword(ctx context.Context, email, token, newPassword string) error {
	return c.do(false, func(r *resty.Request) (*resty.Response, error) {
		return r.SetContext(ctx).
			SetBody(ResetPasswordRequest{Email: email, Token: token, NewPassword: newPassword}).
			Post("/api/auth/reset-password")
	})
}
