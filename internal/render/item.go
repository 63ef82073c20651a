package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/amberleaf/menuforge/internal/models"
)

// PriceBlock is one labeled price point on an item fragment.
type PriceBlock struct {
	Label string
	Value int
}

// PriceBlocks expands an item's price fields into its display blocks.
// Spirits carry three tiers (30ml, 60ml, bottle); items with only a
// bottle price carry two, with unit labels chosen by the item's
// machine category key; everything else carries one.
func PriceBlocks(item models.MenuItem) []PriceBlock {
	switch {
	case item.Price60ml > 0 && item.BottlePrice > 0:
		return []PriceBlock{
			{Label: "30ml", Value: item.Price},
			{Label: "60ml", Value: item.Price60ml},
			{Label: "Bottle", Value: item.BottlePrice},
		}
	case item.BottlePrice > 0:
		small, large := unitLabels(item.Category)
		return []PriceBlock{
			{Label: small, Value: item.Price},
			{Label: large, Value: item.BottlePrice},
		}
	default:
		return []PriceBlock{{Label: "", Value: item.Price}}
	}
}

func unitLabels(categoryKey string) (string, string) {
	switch categoryKey {
	case "bakery":
		return "½ Kg", "1 Kg"
	case "beer":
		return "330ml", "650ml"
	default:
		return "Price", "Bottle"
	}
}

var itemTmpl = template.Must(template.New("item").Parse(`<div class="menu-item{{if not .Item.IsAvailable}} unavailable{{end}}">
  <div class="item-head">
    {{- if .DietMarker}}<span class="diet-marker {{.DietMarker}}"></span>{{end -}}
    <span class="item-name">{{.Item.Name}}</span>
    {{- if .Item.IsRecommended}}<span class="badge recommended">Recommended</span>{{end -}}
    {{- if .Item.IsChefSpecial}}<span class="badge chef-special">Chef&rsquo;s Special</span>{{end -}}
    {{- if .Spice}}<span class="spice">{{.Spice}}</span>{{end -}}
  </div>
  <p class="item-desc">{{.Item.Description}}</p>
  {{- if .Item.Allergens}}
  <p class="allergens">Allergens: {{.AllergenList}}</p>
  {{- end}}
  <div class="prices">
    {{- range .Blocks}}
    <span class="price-block">{{if .Label}}<span class="price-label">{{.Label}}</span> {{end}}&#8377;{{.Value}}</span>
    {{- end}}
  </div>
</div>
`))

type itemView struct {
	Item         models.MenuItem
	Blocks       []PriceBlock
	DietMarker   string
	Spice        template.HTML
	AllergenList string
}

// Item renders one menu item into a self-contained HTML fragment.
func Item(item models.MenuItem) (template.HTML, error) {
	view := itemView{
		Item:         item,
		Blocks:       PriceBlocks(item),
		DietMarker:   dietMarkerClass(item),
		Spice:        template.HTML(strings.Repeat("&#127798;", item.SpiceLevel)),
		AllergenList: strings.Join(item.Allergens, ", "),
	}

	var sb strings.Builder
	if err := itemTmpl.Execute(&sb, view); err != nil {
		return "", fmt.Errorf("failed to render item %s: %w", item.ID, err)
	}
	return template.HTML(sb.String()), nil
}

// dietMarkerClass maps the exclusive diet classification to a marker
// class. Unmarked items render no marker at all.
func dietMarkerClass(item models.MenuItem) string {
	switch item.DietClass() {
	case models.DietClassVeg:
		return "veg"
	case models.DietClassNonVeg:
		return "non-veg"
	default:
		return ""
	}
}
