package domain

import "time"

// Product is owned by the catalog backend; the client only ever holds a
// transient, possibly stale copy of the listing for rendering and filtering.
type Product struct {
	ID          int64     `json:"id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// CatalogStats aggregates the three stat endpoints of the catalog backend.
type CatalogStats struct {
	Products       int64
	InventoryValue float64
	Categories     int64
}
