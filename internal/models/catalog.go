package models

// Dietary tags carried by a menu item. An item may carry neither tag,
// in which case it renders without a marker.
const (
	DietVeg    = "veg"
	DietNonVeg = "non-veg"
)

// DietClass is the exclusive classification used for markers and for
// grouping at render time. Filtering does NOT use this classification;
// the veg filter is a plain contains-veg test (see catalog.Filter).
type DietClass int

const (
	DietClassUnmarked DietClass = iota
	DietClassVeg
	DietClassNonVeg
)

// MenuItem is a single sellable entry. Prices are whole rupees.
type MenuItem struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         int      `json:"price"`
	Price60ml     int      `json:"price60ml,omitempty"`
	BottlePrice   int      `json:"bottlePrice,omitempty"`
	Category      string   `json:"category"` // machine key, not the display category name
	Dietary       []string `json:"dietary,omitempty"`
	SpiceLevel    int      `json:"spiceLevel,omitempty"`
	IsRecommended bool     `json:"isRecommended,omitempty"`
	IsChefSpecial bool     `json:"isChefSpecial,omitempty"`
	IsAvailable   bool     `json:"isAvailable"`
	Allergens     []string `json:"allergens,omitempty"`
}

// HasDiet reports whether the item carries the given dietary tag.
func (m *MenuItem) HasDiet(tag string) bool {
	for _, d := range m.Dietary {
		if d == tag {
			return true
		}
	}
	return false
}

// DietClass returns the exclusive display classification. The non-veg
// tag wins when both tags are present; this mirrors how the printed
// menus mark such items and is locked in by tests.
func (m *MenuItem) DietClass() DietClass {
	switch {
	case m.HasDiet(DietNonVeg):
		return DietClassNonVeg
	case m.HasDiet(DietVeg):
		return DietClassVeg
	default:
		return DietClassUnmarked
	}
}

// MenuCategory is a named, ordered grouping of items. Item order is
// display order unless the renderer applies dietary grouping.
type MenuCategory struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	DisplayOrder int        `json:"displayOrder,omitempty"`
	Items        []MenuItem `json:"items"`
}

// Menu is the top-level container for one venue section.
type Menu struct {
	Venue       string         `json:"venue"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Tagline     string         `json:"tagline,omitempty"`
	Categories  []MenuCategory `json:"categories"`
}

// FindCategory returns the category with the given display name, or
// nil. Display name is the documented lookup key for both the merge
// tool and the interactive filter.
func (m *Menu) FindCategory(name string) *MenuCategory {
	for i := range m.Categories {
		if m.Categories[i].Name == name {
			return &m.Categories[i]
		}
	}
	return nil
}

// ItemCount returns the total number of items across all categories.
func (m *Menu) ItemCount() int {
	n := 0
	for _, c := range m.Categories {
		n += len(c.Items)
	}
	return n
}

// Venue keys, in the fixed order the assembled document presents them.
const (
	VenueFood = "food"
	VenueBar  = "bar"
	VenueCafe = "cafe"
)

// VenueOrder is the fixed presentation order for assembled documents.
var VenueOrder = []string{VenueFood, VenueBar, VenueCafe}
