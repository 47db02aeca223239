package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/learnstack/demo-console/internal/core/domain"
	"github.com/learnstack/demo-console/internal/core/ports"
	"github.com/learnstack/demo-console/internal/metrics"
)

// CatalogFlow orchestrates the catalog console. The listing is a transient
// cache of the last successful response; failed mutations leave it untouched
// and successful ones reload it from the source of truth.
type CatalogFlow struct {
	api     ports.CatalogAPI
	view    ports.CatalogView
	confirm ports.Confirmer
	log     zerolog.Logger

	listing []domain.Product
	editing *domain.Product
}

func NewCatalogFlow(api ports.CatalogAPI, view ports.CatalogView, confirm ports.Confirmer, log zerolog.Logger) *CatalogFlow {
	return &CatalogFlow{api: api, view: view, confirm: confirm, log: log}
}

// Start mirrors page load: full listing plus stats.
func (f *CatalogFlow) Start(ctx context.Context) {
	f.Load(ctx)
	f.RefreshStats(ctx)
}

// Load fetches the full listing and redraws the table and category list.
func (f *CatalogFlow) Load(ctx context.Context) {
	f.view.Loading()

	products, err := f.api.List(ctx)
	if err != nil {
		f.log.Error().Err(err).Msg("failed to load products")
		f.view.Error("Failed to load products")
		return
	}

	f.listing = products
	f.view.RenderProducts(products)
	f.view.RenderCategories(categoriesOf(products))
}

// RefreshStats recomputes the stats bar from the three stat endpoints.
// A failed stat falls back to zero rather than blocking the others.
func (f *CatalogFlow) RefreshStats(ctx context.Context) {
	var stats domain.CatalogStats
	var err error

	if stats.Products, err = f.api.Count(ctx); err != nil {
		f.log.Error().Err(err).Msg("failed to fetch product count")
	}
	if stats.InventoryValue, err = f.api.InventoryValue(ctx); err != nil {
		f.log.Error().Err(err).Msg("failed to fetch inventory value")
	}
	if stats.Categories, err = f.api.CategoryCount(ctx); err != nil {
		f.log.Error().Err(err).Msg("failed to fetch category count")
	}

	f.view.RenderStats(stats)
}

// Search filters the listing by name on the server. An empty query reloads
// the full listing.
func (f *CatalogFlow) Search(ctx context.Context, query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		f.Load(ctx)
		return
	}

	f.view.Loading()
	products, err := f.api.Search(ctx, query)
	if err != nil {
		f.log.Error().Err(err).Str("query", query).Msg("search failed")
		f.view.Error("Search failed")
		return
	}

	f.listing = products
	f.view.RenderProducts(products)
}

// FilterByCategory shows only the given category. An empty category reloads
// the full listing.
func (f *CatalogFlow) FilterByCategory(ctx context.Context, category string) {
	if category == "" {
		f.Load(ctx)
		return
	}

	products, err := f.api.ByCategory(ctx, category)
	if err != nil {
		f.log.Error().Err(err).Str("category", category).Msg("category filter failed")
		f.view.Error("Failed to filter products")
		return
	}

	f.listing = products
	f.view.RenderProducts(products)
}

// NewProduct enters the editing state with an empty product.
func (f *CatalogFlow) NewProduct() {
	f.editing = &domain.Product{}
	f.view.RenderEditor(f.editing)
}

// BeginEdit fetches the product and enters the editing state.
func (f *CatalogFlow) BeginEdit(ctx context.Context, id int64) {
	product, err := f.api.Get(ctx, id)
	if err != nil {
		f.log.Error().Err(err).Int64("id", id).Msg("failed to load product")
		f.view.Error("Failed to load product for editing")
		return
	}

	f.editing = product
	f.view.RenderEditor(f.editing)
}

// SetField updates one field of the product being edited.
func (f *CatalogFlow) SetField(field, value string) error {
	if f.editing == nil {
		return fmt.Errorf("no product is being edited")
	}

	switch strings.ToLower(field) {
	case "name":
		f.editing.Name = value
	case "description":
		f.editing.Description = value
	case "category":
		f.editing.Category = value
	case "price":
		price, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid price %q", value)
		}
		f.editing.Price = price
	default:
		return fmt.Errorf("unknown field %q (name, description, price, category)", field)
	}

	f.view.RenderEditor(f.editing)
	return nil
}

// Save validates and submits the product being edited: POST for new,
// PUT for existing. A failure keeps the editing state and leaves the listing
// untouched; success leaves editing, reloads the listing and recomputes stats.
func (f *CatalogFlow) Save(ctx context.Context) {
	if f.editing == nil {
		f.view.Error("No product is being edited")
		return
	}

	input := ports.ProductInput{
		Name:        f.editing.Name,
		Description: f.editing.Description,
		Price:       f.editing.Price,
		Category:    f.editing.Category,
	}
	if err := check(input); err != nil {
		metrics.ValidationsTotal.WithLabelValues("catalog").Inc()
		f.view.Error(err.Error())
		return
	}

	var err error
	if f.editing.ID == 0 {
		_, err = f.api.Create(ctx, input)
	} else {
		_, err = f.api.Update(ctx, f.editing.ID, input)
	}
	if err != nil {
		f.log.Error().Err(err).Int64("id", f.editing.ID).Msg("save failed")
		f.view.Message("Failed to save product", false)
		return
	}

	f.editing = nil
	f.Load(ctx)
	f.RefreshStats(ctx)
	f.view.Message("Product saved successfully!", true)
}

// CancelEdit leaves the editing state without saving.
func (f *CatalogFlow) CancelEdit() {
	f.editing = nil
}

// Delete asks for confirmation, then deletes. Success reloads the listing
// and recomputes stats; failure leaves the listing untouched.
func (f *CatalogFlow) Delete(ctx context.Context, id int64) {
	if !f.confirm.Confirm("Are you sure you want to delete this product?") {
		return
	}

	if err := f.api.Delete(ctx, id); err != nil {
		f.log.Error().Err(err).Int64("id", id).Msg("delete failed")
		f.view.Message("Failed to delete product", false)
		return
	}

	f.Load(ctx)
	f.RefreshStats(ctx)
	f.view.Message("Product deleted successfully!", true)
}

// Listing returns a copy of the cached listing.
func (f *CatalogFlow) Listing() []domain.Product {
	return append([]domain.Product(nil), f.listing...)
}

// Editing returns the product currently being edited, or nil.
func (f *CatalogFlow) Editing() *domain.Product {
	return f.editing
}

// categoriesOf returns the distinct non-empty categories, sorted.
func categoriesOf(products []domain.Product) []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories
}
