package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/amberleaf/menuforge/internal/catalog"
	"github.com/amberleaf/menuforge/internal/models"
)

var categoryTmpl = template.Must(template.New("category").Parse(`<section class="category">
  <h2 class="category-title">{{.Name}}</h2>
  {{- if .Description}}
  <p class="category-desc">{{.Description}}</p>
  {{- end}}
  <hr class="category-divider">
  {{- range .Items}}
  {{.}}
  {{- end}}
</section>
`))

type categoryView struct {
	Name        string
	Description string
	Items       []template.HTML
}

// Category renders a titled group of item fragments. Items appear in
// the dietary-grouped order (veg, unmarked, non-veg) regardless of
// their order in the source catalog; relative order within each
// bucket is preserved.
func Category(cat models.MenuCategory) (template.HTML, error) {
	grouped := catalog.GroupByDiet(cat.Items)
	fragments := make([]template.HTML, 0, len(grouped))
	for _, item := range grouped {
		frag, err := Item(item)
		if err != nil {
			return "", err
		}
		fragments = append(fragments, frag)
	}

	view := categoryView{
		Name:        cat.Name,
		Description: cat.Description,
		Items:       fragments,
	}

	var sb strings.Builder
	if err := categoryTmpl.Execute(&sb, view); err != nil {
		return "", fmt.Errorf("failed to render category %s: %w", cat.ID, err)
	}
	return template.HTML(sb.String()), nil
}
