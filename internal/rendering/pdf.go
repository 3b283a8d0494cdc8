package rendering

import (
	"context"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/joshwakefield/jd-brief/internal/types"
)

// Letter paper with 16mm margins, in inches as the print API expects.
const (
	paperWidthIn  = 8.5
	paperHeightIn = 11.0
	marginIn      = 0.63
)

// DefaultRenderTimeout bounds a single print job.
const DefaultRenderTimeout = 30 * time.Second

// Renderer produces document bytes from a validated Brief.
type Renderer interface {
	Render(ctx context.Context, brief *types.Brief) ([]byte, error)
}

// ChromeRenderer renders briefs to PDF through a headless Chrome instance.
// Requires Chrome/Chromium to be installed on the system.
type ChromeRenderer struct {
	Timeout time.Duration
	Verbose bool
}

// NewChromeRenderer creates a ChromeRenderer with the default timeout.
func NewChromeRenderer() *ChromeRenderer {
	return &ChromeRenderer{Timeout: DefaultRenderTimeout}
}

// Render composes the brief HTML and prints it to PDF bytes.
func (r *ChromeRenderer) Render(ctx context.Context, brief *types.Brief) ([]byte, error) {
	html, err := ComposeHTML(brief)
	if err != nil {
		return nil, err
	}

	if r.Verbose {
		log.Printf("[RENDER] Printing brief for %s at %s", brief.JDFields.Role, brief.JDFields.Company)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := r.Timeout
	if timeout == 0 {
		timeout = DefaultRenderTimeout
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte

	err = chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithMarginTop(marginIn).
				WithMarginBottom(marginIn).
				WithMarginLeft(marginIn).
				WithMarginRight(marginIn).
				WithPrintBackground(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)

	if err != nil {
		return nil, &Error{Message: "PDF print failed", Cause: err}
	}

	if r.Verbose {
		log.Printf("[RENDER] PDF produced: %d bytes", len(pdf))
	}

	return pdf, nil
}
