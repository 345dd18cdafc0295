package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/gateway"
)

type catalogGateway struct {
	client *Client
}

// NewCatalogGateway creates the upstream-backed CatalogGateway.
func NewCatalogGateway(client *Client) gateway.CatalogGateway {
	return &catalogGateway{client: client}
}

func productQueryValues(query gateway.ProductQuery) url.Values {
	values := url.Values{}
	if query.Search != "" {
		values.Set("search", query.Search)
	}
	if query.CategoryID > 0 {
		values.Set("category_id", strconv.FormatInt(query.CategoryID, 10))
	}
	if query.StoreID > 0 {
		values.Set("store_id", strconv.FormatInt(query.StoreID, 10))
	}
	if query.Featured {
		values.Set("featured", "true")
	}
	if query.Page > 0 {
		values.Set("page", strconv.Itoa(query.Page))
	}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}

	return values
}

func (g *catalogGateway) ListProducts(ctx context.Context, query gateway.ProductQuery) (*gateway.ProductPage, error) {
	var page gateway.ProductPage
	err := g.client.decode(ctx, request{
		method: http.MethodGet,
		path:   "/products",
		query:  productQueryValues(query),
	}, &page)
	if err != nil {
		return nil, err
	}

	return &page, nil
}

func (g *catalogGateway) GetProduct(ctx context.Context, productID int64) (*entity.Product, error) {
	var payload struct {
		Product *entity.Product `json:"product"`
	}
	err := g.client.decode(ctx, request{
		method: http.MethodGet,
		path:   "/products/" + strconv.FormatInt(productID, 10),
	}, &payload)
	if statusOf(err) == http.StatusNotFound {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return payload.Product, nil
}

func (g *catalogGateway) ListManagedProducts(ctx context.Context, token string, query gateway.ProductQuery) (*gateway.ProductPage, error) {
	var page gateway.ProductPage
	err := g.client.decode(ctx, request{
		method: http.MethodGet,
		path:   "/products/manage",
		token:  token,
		query:  productQueryValues(query),
	}, &page)
	if err != nil {
		return nil, err
	}

	return &page, nil
}

func (g *catalogGateway) ProductStats(ctx context.Context, token string) (*entity.ProductStats, error) {
	var payload struct {
		Stats *entity.ProductStats `json:"stats"`
	}
	err := g.client.decode(ctx, request{
		method: http.MethodGet,
		path:   "/products/stats",
		token:  token,
	}, &payload)
	if err != nil {
		return nil, err
	}

	return payload.Stats, nil
}

func (g *catalogGateway) CreateProduct(ctx context.Context, token string, input *gateway.ProductInput, image *gateway.ImageUpload) (*entity.Product, error) {
	return g.writeProduct(ctx, http.MethodPost, "/products", token, input, image)
}

func (g *catalogGateway) UpdateProduct(ctx context.Context, token string, productID int64, input *gateway.ProductInput, image *gateway.ImageUpload) (*entity.Product, error) {
	path := "/products/" + strconv.FormatInt(productID, 10)

	product, err := g.writeProduct(ctx, http.MethodPut, path, token, input, image)
	if statusOf(err) == http.StatusNotFound {
		return nil, domainerrors.ErrProductNotFound
	}

	return product, err
}

func (g *catalogGateway) writeProduct(ctx context.Context, method, path, token string, input *gateway.ProductInput, image *gateway.ImageUpload) (*entity.Product, error) {
	req := request{
		method: method,
		path:   path,
		token:  token,
	}

	if image != nil {
		// Image writes go up as multipart with the product fields beside
		// the file part.
		fields := map[string]string{
			"name":                  input.Name,
			"description":           input.Description,
			"price":                 strconv.FormatFloat(input.Price, 'f', -1, 64),
			"category_id":           strconv.FormatInt(input.CategoryID, 10),
			"stock_quantity":        strconv.Itoa(input.StockQuantity),
			"is_featured":           strconv.FormatBool(input.IsFeatured),
			"is_active":             strconv.FormatBool(input.IsActive),
			"loyalty_points_earned": strconv.Itoa(input.LoyaltyPointsEarned),
		}
		if input.SalePrice != nil {
			fields["sale_price"] = strconv.FormatFloat(*input.SalePrice, 'f', -1, 64)
		}
		req.fields = fields
		req.file = &filePart{
			fieldName:   "image",
			filename:    image.Filename,
			contentType: image.ContentType,
			reader:      image.Reader,
		}
	} else {
		req.body = input
	}

	var payload struct {
		Product *entity.Product `json:"product"`
	}
	if err := g.client.decode(ctx, req, &payload); err != nil {
		return nil, err
	}

	return payload.Product, nil
}

func (g *catalogGateway) DeleteProduct(ctx context.Context, token string, productID int64) error {
	err := g.client.decode(ctx, request{
		method: http.MethodDelete,
		path:   "/products/" + strconv.FormatInt(productID, 10),
		token:  token,
	}, nil)
	if statusOf(err) == http.StatusNotFound {
		return domainerrors.ErrProductNotFound
	}

	return err
}

func (g *catalogGateway) SetProductFlags(ctx context.Context, token string, productID int64, flags gateway.ProductFlags) error {
	err := g.client.decode(ctx, request{
		method: http.MethodPut,
		path:   "/products/" + strconv.FormatInt(productID, 10),
		token:  token,
		body:   flags,
	}, nil)
	if statusOf(err) == http.StatusNotFound {
		return domainerrors.ErrProductNotFound
	}

	return err
}
