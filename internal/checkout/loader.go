package checkout

import (
	"context"
	"strings"
	"sync"

	"storefront/internal/api"
	"storefront/internal/cart"
)

// PageData is what the checkout surface needs before the form can render:
// the hydrated cart and the shipping fee table. The two fetches are issued
// concurrently with no ordering dependency; pricing falls back to zero-valued
// defaults until both are in.
type PageData struct {
	Fees    []api.ShippingFee
	CartErr error
	FeesErr error
}

// LoadPage hydrates the cart store from the server and fetches the shipping
// fee table. Either side can fail independently; the caller decides what the
// shopper can still do.
func LoadPage(ctx context.Context, client *api.Client, cartStore *cart.Store) PageData {
	var data PageData
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		resp, err := client.FetchCart(ctx)
		if err != nil {
			data.CartErr = err
			return
		}
		cartStore.SetItems(NormalizeCartItems(client.BaseURL(), resp))
	}()
	go func() {
		defer wg.Done()
		page, err := client.FetchShippingFees(ctx, 1, 10)
		if err != nil {
			data.FeesErr = err
			return
		}
		data.Fees = page.Items
	}()
	wg.Wait()

	return data
}

// NormalizeCartItems converts the loosely shaped cart response into strict
// line items, filling the defaults the backend sometimes omits and turning
// relative upload paths into absolute URLs.
func NormalizeCartItems(baseURL string, resp api.CartResponse) []cart.LineItem {
	items := make([]cart.LineItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		line := cart.LineItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.Price,
			Quantity:    item.Quantity,
			Size:        item.Size,
			Color:       item.Color,
		}
		if line.ProductName == "" {
			line.ProductName = "Unknown Product"
		}
		if line.Quantity < 1 {
			line.Quantity = 1
		}
		for _, img := range item.Images {
			path := img.ImagePath
			if strings.HasPrefix(path, "/Uploads") || strings.HasPrefix(path, "/images") {
				path = baseURL + path
			}
			line.Images = append(line.Images, cart.Image{
				ID:        img.ID,
				ImagePath: path,
				IsMain:    img.IsMain,
			})
		}
		items = append(items, line)
	}
	return items
}
