package stub

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"storefront/internal/api"
)

type user struct {
	ID           string
	FullName     string
	Email        string
	PhoneNumber  string
	Address      string
	Governorate  string
	PasswordHash []byte
	Roles        []string
}

type cartLine struct {
	ID        string
	ProductID string
	Quantity  int
	Size      string
	Color     string
}

type product struct {
	ID    string
	Name  string
	Price float64
}

type order struct {
	ID            string
	CustomerID    string
	Status        int
	PaymentMethod int
	Date          string
	DiscountCode  string
	Items         []api.OrderItemRequest
}

type notification struct {
	OrderNumber string
	Total       string
}

// data is the in-memory backing store for the stub. Everything is gone on
// restart, which is the point: the stub only exists so the client packages
// can be exercised without the real backend.
type data struct {
	mu            sync.Mutex
	users         map[string]*user // keyed by lowercased email
	products      map[string]product
	carts         map[string][]cartLine // keyed by user id
	shippingFees  []api.ShippingFee
	discountCodes map[string]api.DiscountCode // keyed by code
	orders        []order
	notifications []notification

	// failNotifications makes that many upcoming notification sends return
	// 500, so tests can drive the retry path.
	failNotifications int
}

func newData() *data {
	d := &data{
		users:         make(map[string]*user),
		products:      make(map[string]product),
		carts:         make(map[string][]cartLine),
		discountCodes: make(map[string]api.DiscountCode),
	}
	d.seed()
	return d
}

func floatPtr(v float64) *float64 { return &v }

func (d *data) seed() {
	now := time.Now().UTC().Format(time.RFC3339)

	for _, p := range []product{
		{ID: uuid.NewString(), Name: "Summer Dress", Price: 100},
		{ID: uuid.NewString(), Name: "Kids Hoodie", Price: 250},
		{ID: uuid.NewString(), Name: "Linen Shirt", Price: 320},
	} {
		d.products[p.ID] = p
	}

	d.shippingFees = []api.ShippingFee{
		{ID: uuid.NewString(), Governorate: "Cairo", Fee: 30, DeliveryTime: "1-2 days", Status: 1, CreatedAt: now},
		{ID: uuid.NewString(), Governorate: "Giza", Fee: 35, DeliveryTime: "1-2 days", Status: 1, CreatedAt: now},
		{ID: uuid.NewString(), Governorate: "Alexandria", Fee: 45, DeliveryTime: "2-3 days", Status: 1, CreatedAt: now},
		{ID: uuid.NewString(), Governorate: "Aswan", Fee: 60, DeliveryTime: "3-5 days", Status: 1, CreatedAt: now},
	}

	d.discountCodes["SAVE10"] = api.DiscountCode{
		ID: uuid.NewString(), Code: "SAVE10", Type: 0,
		PercentageValue: floatPtr(10), MinOrderAmount: 50,
		MaxDiscountAmount: floatPtr(15), IsActive: true, CreatedAt: now,
	}
	d.discountCodes["FLAT500"] = api.DiscountCode{
		ID: uuid.NewString(), Code: "FLAT500", Type: 1,
		FixedValue: floatPtr(500), MinOrderAmount: 50, IsActive: true, CreatedAt: now,
	}
	d.discountCodes["OLDCODE"] = api.DiscountCode{
		ID: uuid.NewString(), Code: "OLDCODE", Type: 0,
		PercentageValue: floatPtr(20), MinOrderAmount: 0, IsActive: false, CreatedAt: now,
	}
}

func (d *data) addUser(fullName, email, phone, address, governorate, password string, roles []string) (*user, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &user{
		ID:           uuid.NewString(),
		FullName:     fullName,
		Email:        email,
		PhoneNumber:  phone,
		Address:      address,
		Governorate:  governorate,
		PasswordHash: hash,
		Roles:        roles,
	}
	d.users[u.Email] = u
	return u, nil
}

func (d *data) findProduct(id string) (product, bool) {
	p, ok := d.products[id]
	return p, ok
}

// FirstProductID exposes a seeded product id for tests and demos.
func (s *Server) FirstProductID() string {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for id := range s.data.products {
		return id
	}
	return ""
}

// FailNextNotifications makes the next n notification sends return 500.
func (s *Server) FailNextNotifications(n int) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	s.data.failNotifications = n
}

// Notifications returns the recorded admin notifications.
func (s *Server) Notifications() []struct{ OrderNumber, Total string } {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	out := make([]struct{ OrderNumber, Total string }, 0, len(s.data.notifications))
	for _, n := range s.data.notifications {
		out = append(out, struct{ OrderNumber, Total string }{n.OrderNumber, n.Total})
	}
	return out
}

// OrderCount reports how many orders the stub has accepted.
func (s *Server) OrderCount() int {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	return len(s.data.orders)
}
