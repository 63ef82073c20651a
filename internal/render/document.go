package render

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/amberleaf/menuforge/internal/models"
	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
)

// Brand identity printed on every document.
const (
	BrandName    = "Amber Leaf"
	BrandTagline = "One roof. Every mood."
	BrandAddress = "14 Residency Road, Bengaluru 560025"
	BrandPhone   = "+91 80 4112 8890"
	BrandEmail   = "hello@amberleaf.in"
)

// taxNotes holds the tax disclaimer printed in each venue's page
// footer and consolidated in the closing block.
var taxNotes = map[string]string{
	models.VenueFood: "5% GST applicable on all food items.",
	models.VenueBar:  "18% GST applicable on liquor. Prices exclusive of taxes.",
	models.VenueCafe: "5% GST applicable on all café items.",
}

const documentCSS = `
@page { size: A4; margin: 0; }
* { box-sizing: border-box; }
body { margin: 0; font-family: Georgia, 'Times New Roman', serif; color: #2b2119; }
.page { width: 210mm; height: 297mm; padding: 18mm 16mm; page-break-after: always; position: relative; background: #fdf9f2; }
.brand-mark { font-size: 28px; letter-spacing: 4px; text-transform: uppercase; }
.cover { text-align: center; padding-top: 60mm; }
.cover .tagline { font-style: italic; color: #8a6d3b; margin-top: 8px; }
.cover .toc { margin-top: 24mm; list-style: none; padding: 0; }
.cover .toc li { margin: 4px 0; }
.cover .contact, .cover .disclaimer { font-size: 11px; color: #6b5d4f; margin-top: 16mm; }
.section-divider { text-align: center; padding-top: 120mm; }
.section-divider h1 { font-size: 36px; margin: 0; }
.section-divider .subtitle { color: #8a6d3b; font-style: italic; }
.running-header { display: flex; justify-content: space-between; align-items: baseline; border-bottom: 1px solid #c9b79c; padding-bottom: 6px; margin-bottom: 12px; }
.running-header .menu-name { font-size: 14px; color: #6b5d4f; }
.page-footer { position: absolute; bottom: 12mm; left: 16mm; right: 16mm; font-size: 10px; color: #8a7a68; text-align: center; border-top: 1px solid #c9b79c; padding-top: 4px; }
.category-title { margin: 0; font-size: 22px; }
.category-desc { margin: 2px 0 0; color: #6b5d4f; font-style: italic; }
.category-divider { border: none; border-top: 1px solid #c9b79c; margin: 8px 0 12px; }
.menu-item { margin-bottom: 10px; }
.menu-item.unavailable { display: none; }
.item-head { display: flex; align-items: center; gap: 6px; }
.item-name { font-weight: bold; }
.item-desc { margin: 1px 0 2px; font-size: 12px; color: #5a4d40; }
.allergens { margin: 0; font-size: 10px; color: #8a7a68; }
.diet-marker { width: 10px; height: 10px; border-radius: 50%; display: inline-block; }
.diet-marker.veg { background: #1e7d32; }
.diet-marker.non-veg { background: #b03a2e; }
.badge { font-size: 9px; text-transform: uppercase; letter-spacing: 1px; padding: 1px 5px; border: 1px solid #8a6d3b; border-radius: 3px; color: #8a6d3b; }
.prices { font-size: 13px; }
.price-block { margin-right: 14px; }
.price-label { font-size: 10px; color: #6b5d4f; text-transform: uppercase; }
.closing { text-align: center; padding-top: 40mm; }
.closing .tax-info { font-size: 12px; margin: 18mm 0; }
.closing .attribution { font-size: 10px; color: #8a7a68; margin-top: 24mm; }
`

var documentTmpl = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Brand}} &mdash; Menu</title>
<style>{{.CSS}}</style>
</head>
<body>
<div class="page cover">
  <div class="brand-mark">{{.Brand}}</div>
  <p class="tagline">{{.Tagline}}</p>
  <ul class="toc">
    {{- range .TOC}}
    <li>{{.}}</li>
    {{- end}}
  </ul>
  <p class="contact">{{.Address}} &middot; {{.Phone}} &middot; {{.Email}}</p>
  <p class="disclaimer">All prices in Indian Rupees. Taxes as applicable per section.</p>
</div>
{{- range .Sections}}
<div class="page section-divider">
  <h1>{{.Title}}</h1>
  <p class="subtitle">{{.Subtitle}}</p>
</div>
{{- range .Pages}}
<div class="page">
  <div class="running-header">
    <span class="brand-mark">{{$.Brand}}</span>
    <span class="menu-name">{{.MenuName}} &mdash; {{.MenuDescription}}</span>
  </div>
  {{.Category}}
  <div class="page-footer">{{.TaxNote}}</div>
</div>
{{- end}}
{{- end}}
<div class="page closing">
  <div class="brand-mark">{{.Brand}}</div>
  <div class="tax-info">
    {{- range .TaxNotes}}
    <p>{{.}}</p>
    {{- end}}
  </div>
  <p class="contact">{{.Address}} &middot; {{.Phone}} &middot; {{.Email}}</p>
  <p class="attribution">Menu design and typesetting by the {{.Brand}} team.</p>
</div>
</body>
</html>
`))

type sectionView struct {
	Title    string
	Subtitle string
	Pages    []pageView
}

type pageView struct {
	MenuName        string
	MenuDescription string
	Category        template.HTML
	TaxNote         string
}

type documentView struct {
	Brand    string
	Tagline  string
	Address  string
	Phone    string
	Email    string
	CSS      template.CSS
	TOC      []string
	Sections []sectionView
	TaxNotes []string
}

// Document assembles the complete printable HTML for the given menus.
// Menus must already be in venue order; each category occupies exactly
// one page. Overlong categories overflow their page rather than being
// split (see DESIGN.md).
func Document(menus []*models.Menu) (string, error) {
	view := documentView{
		Brand:   BrandName,
		Tagline: BrandTagline,
		Address: BrandAddress,
		Phone:   BrandPhone,
		Email:   BrandEmail,
		CSS:     template.CSS(documentCSS),
	}

	pageCount := 0
	for _, menu := range menus {
		pageCount += len(menu.Categories)
	}
	bar := progressbar.Default(int64(pageCount), "assembling pages")

	for _, menu := range menus {
		view.TOC = append(view.TOC, menu.Name)
		view.TaxNotes = append(view.TaxNotes, fmt.Sprintf("%s: %s", menu.Name, taxNotes[menu.Venue]))

		section := sectionView{Title: menu.Name, Subtitle: menu.Description}
		for _, cat := range menu.Categories {
			rendered, err := Category(cat)
			if err != nil {
				return "", err
			}
			section.Pages = append(section.Pages, pageView{
				MenuName:        menu.Name,
				MenuDescription: menu.Description,
				Category:        rendered,
				TaxNote:         taxNotes[menu.Venue],
			})
			_ = bar.Add(1)
		}
		view.Sections = append(view.Sections, section)
	}

	var sb strings.Builder
	if err := documentTmpl.Execute(&sb, view); err != nil {
		return "", fmt.Errorf("failed to assemble document: %w", err)
	}
	return sb.String(), nil
}

// Generate assembles the document, persists the intermediate HTML,
// then hands it to the render engine for the PDF. The HTML is written
// before the engine runs so a failed render leaves it behind for
// inspection.
func Generate(ctx context.Context, cfg *models.Config, menus []*models.Menu, engine Engine) error {
	html, err := Document(menus)
	if err != nil {
		return err
	}

	if err := os.WriteFile(cfg.DocumentHTMLPath, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write intermediate document %s: %w", cfg.DocumentHTMLPath, err)
	}
	log.Infof("wrote intermediate document to %s", cfg.DocumentHTMLPath)

	ctx, cancel := context.WithTimeout(ctx, cfg.RenderTimeout)
	defer cancel()

	pdf, err := engine.RenderPDF(ctx, html)
	if err != nil {
		return fmt.Errorf("render engine failed (intermediate document kept at %s): %w", cfg.DocumentHTMLPath, err)
	}

	if err := os.WriteFile(cfg.DocumentPDFPath, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.DocumentPDFPath, err)
	}
	log.Infof("wrote %s (%d bytes)", cfg.DocumentPDFPath, len(pdf))
	return nil
}
