// Package catalog implements the storefront's in-memory catalog filtering.
// Filtering is a pure function over a fetched product list: handlers (or a
// client rendering the list) re-apply the current FilterState on every change
// instead of mutating any shared view.
package catalog

import "strings"

// Product is the stable internal product shape every consumer filters and
// renders against. Raw records from the data access layer are normalized into
// this shape exactly once, at the boundary (see normalize.go).
type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Stock        int      `json:"stock"`
	CategoryID   string   `json:"category_id,omitempty"`
	CategoryName string   `json:"category_name,omitempty"`
	MaterialName string   `json:"material_name,omitempty"`
	DeliveryDays int      `json:"delivery_days"`
	ImageURLs    []string `json:"image_urls"`
}

// FilterState is the user's active set of catalog filters. Every field is
// independently optional; the zero value of a field means "no filter" and the
// zero value of the whole struct passes every product. Active predicates
// combine with logical AND.
type FilterState struct {
	Query      string   `json:"query"`
	CategoryID string   `json:"category_id"`
	Material   string   `json:"material"`
	MinPrice   *float64 `json:"min_price"`
	MaxPrice   *float64 `json:"max_price"`
}

// IsZero reports whether no filter is active.
func (s FilterState) IsZero() bool {
	return s.Query == "" && s.CategoryID == "" && s.Material == "" &&
		s.MinPrice == nil && s.MaxPrice == nil
}

// Reset clears every filter field.
func (s *FilterState) Reset() {
	*s = FilterState{}
}

// ActiveFilters counts the active filter groups, the way the storefront
// filter bar badges them (min and max price count as one group).
func (s FilterState) ActiveFilters() int {
	n := 0
	if s.Query != "" {
		n++
	}
	if s.CategoryID != "" {
		n++
	}
	if s.Material != "" {
		n++
	}
	if s.MinPrice != nil || s.MaxPrice != nil {
		n++
	}
	return n
}

// Matches reports whether a single product passes every active predicate.
func (s FilterState) Matches(p Product) bool {
	if q := strings.TrimSpace(s.Query); q != "" {
		q = strings.ToLower(q)
		name := strings.ToLower(p.Name)
		desc := strings.ToLower(p.Description)
		if !strings.Contains(name, q) && !strings.Contains(desc, q) {
			return false
		}
	}
	if s.CategoryID != "" && p.CategoryID != s.CategoryID {
		return false
	}
	if s.Material != "" && p.MaterialName != s.Material {
		return false
	}
	if s.MinPrice != nil && p.Price < *s.MinPrice {
		return false
	}
	if s.MaxPrice != nil && p.Price > *s.MaxPrice {
		return false
	}
	return true
}

// Apply returns the subset of products passing the filter state, preserving
// the input order. The input slice is never mutated; an empty state returns a
// copy of the full list.
func Apply(products []Product, state FilterState) []Product {
	result := make([]Product, 0, len(products))
	for _, p := range products {
		if state.Matches(p) {
			result = append(result, p)
		}
	}
	return result
}
