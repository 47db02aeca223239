package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/learnstack/demo-console/internal/core/domain"
	"github.com/learnstack/demo-console/internal/core/ports"
)

// CatalogView renders the catalog console: product table, category list,
// stats bar, editor panel and the transient alert region.
type CatalogView struct {
	out   io.Writer
	alert *Banner
}

var _ ports.CatalogView = (*CatalogView)(nil)

func NewCatalogView(out io.Writer, alertTTL time.Duration) *CatalogView {
	return &CatalogView{out: out, alert: NewBanner(out, alertTTL)}
}

func (v *CatalogView) Loading() {
	fmt.Fprintln(v.out, "Loading products...")
}

func (v *CatalogView) RenderProducts(products []domain.Product) {
	if len(products) == 0 {
		fmt.Fprintln(v.out, "No products found. Add your first product!")
		return
	}

	w := tabwriter.NewWriter(v.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION\tPRICE\tCATEGORY\tCREATED")
	for _, p := range products {
		fmt.Fprintf(w, "#%d\t%s\t%s\t$%s\t%s\t%s\n",
			p.ID,
			p.Name,
			orDash(p.Description),
			FormatAmount(p.Price),
			orDefault(p.Category, "Uncategorized"),
			FormatDate(p.CreatedAt),
		)
	}
	w.Flush()
}

func (v *CatalogView) RenderCategories(categories []string) {
	if len(categories) == 0 {
		return
	}
	fmt.Fprintf(v.out, "Categories: %s\n", strings.Join(categories, ", "))
}

func (v *CatalogView) RenderStats(stats domain.CatalogStats) {
	fmt.Fprintf(v.out, "Products: %d | Inventory value: $%s | Categories: %d\n",
		stats.Products, FormatAmount(stats.InventoryValue), stats.Categories)
}

func (v *CatalogView) RenderEditor(p *domain.Product) {
	title := "Add New Product"
	if p.ID != 0 {
		title = fmt.Sprintf("Edit Product #%d", p.ID)
	}
	fmt.Fprintf(v.out, "-- %s --\n", title)
	fmt.Fprintf(v.out, "  name:        %s\n", p.Name)
	fmt.Fprintf(v.out, "  description: %s\n", p.Description)
	fmt.Fprintf(v.out, "  price:       %s\n", FormatAmount(p.Price))
	fmt.Fprintf(v.out, "  category:    %s\n", p.Category)
	fmt.Fprintln(v.out, "(set <field> <value>, then save or cancel)")
}

func (v *CatalogView) Message(text string, ok bool) {
	v.alert.Show(text, ok)
}

func (v *CatalogView) Error(message string) {
	fmt.Fprintf(v.out, "✘ %s\n", message)
}

// Alert exposes the underlying alert region, mainly for tests.
func (v *CatalogView) Alert() *Banner {
	return v.alert
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
