package render

import (
	"context"
	"fmt"
	"io"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Engine converts a complete HTML document into a paginated PDF. It
// is a single blocking call: the caller gets the whole artifact or an
// error, never a partial result.
type Engine interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// ChromeEngine renders through a headless Chrome instance managed by
// rod. A fresh browser is launched per call; document generation is a
// manually re-run batch operation, not a service, so there is nothing
// to pool.
type ChromeEngine struct{}

func NewChromeEngine() *ChromeEngine {
	return &ChromeEngine{}
}

// A4 in inches. The document supplies its own margins, so the print
// margins are zeroed out.
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
)

func (e *ChromeEngine) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	u, err := launcher.New().Headless(true).Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(u).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("failed to set document content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("failed waiting for document load: %w", err)
	}

	width := paperWidthIn
	height := paperHeightIn
	margin := 0.0
	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground: true,
		PaperWidth:      &width,
		PaperHeight:     &height,
		MarginTop:       &margin,
		MarginBottom:    &margin,
		MarginLeft:      &margin,
		MarginRight:     &margin,
	})
	if err != nil {
		return nil, fmt.Errorf("print to PDF failed: %w", err)
	}

	pdf, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed reading PDF stream: %w", err)
	}
	return pdf, nil
}
