package catalog

import (
	"strings"

	"github.com/amberleaf/menuforge/internal/models"
)

// Entry pairs an item with the display name of the category it sits
// in. Filters operate over entries so category matching never needs
// the machine key.
type Entry struct {
	Item         models.MenuItem `json:"item"`
	CategoryName string          `json:"categoryName"`
}

// Filter is the serializable interactive filter state. The zero value
// matches everything.
type Filter struct {
	Query    string `json:"query" form:"q"`
	Category string `json:"category" form:"category"`
	VegOnly  bool   `json:"vegOnly" form:"veg_only"`
}

// Reset returns the filter to its default state. Kept as a method so
// callers implementing a "clear filters" affordance share one
// definition of default.
func (f *Filter) Reset() {
	*f = Filter{}
}

// Flatten produces the entry list for one or more menus, preserving
// catalog order.
func Flatten(menus ...*models.Menu) []Entry {
	var entries []Entry
	for _, menu := range menus {
		for _, cat := range menu.Categories {
			for _, item := range cat.Items {
				entries = append(entries, Entry{Item: item, CategoryName: cat.Name})
			}
		}
	}
	return entries
}

// Apply returns the entries matching every enabled criterion, in
// source order. It never mutates its input. An empty result is a
// valid outcome, not an error.
func (f Filter) Apply(entries []Entry) []Entry {
	matched := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if f.matches(e) {
			matched = append(matched, e)
		}
	}
	return matched
}

func (f Filter) matches(e Entry) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		name := strings.ToLower(e.Item.Name)
		desc := strings.ToLower(e.Item.Description)
		if !strings.Contains(name, q) && !strings.Contains(desc, q) {
			return false
		}
	}
	if f.Category != "" && e.CategoryName != f.Category {
		return false
	}
	// Contains-veg test, deliberately independent of the exclusive
	// classification used for markers: an item tagged both veg and
	// non-veg passes this filter yet displays as non-veg.
	if f.VegOnly && !e.Item.HasDiet(models.DietVeg) {
		return false
	}
	return true
}

// GroupByDiet reorders items into the fixed presentation sequence
// veg, unmarked, non-veg, keeping relative order within each bucket.
// This is a render-time policy; it is never applied to filter
// results returned to API clients.
func GroupByDiet(items []models.MenuItem) []models.MenuItem {
	var veg, unmarked, nonVeg []models.MenuItem
	for _, item := range items {
		switch item.DietClass() {
		case models.DietClassVeg:
			veg = append(veg, item)
		case models.DietClassNonVeg:
			nonVeg = append(nonVeg, item)
		default:
			unmarked = append(unmarked, item)
		}
	}
	grouped := make([]models.MenuItem, 0, len(items))
	grouped = append(grouped, veg...)
	grouped = append(grouped, unmarked...)
	grouped = append(grouped, nonVeg...)
	return grouped
}
