package export

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/jonathan/resume-builder/internal/preview"
)

// HTMLRenderer prints a rendered preview page to PDF.
type HTMLRenderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// ChromeRenderer prints HTML with a headless Chromium over the DevTools protocol.
type ChromeRenderer struct {
	ExecPath string        // Browser binary; empty lets chromedp search the usual names
	Timeout  time.Duration // Upper bound for one print
	Verbose  bool
}

// Letter paper with half-inch margins, in inches.
const (
	paperWidthIn  = 8.5
	paperHeightIn = 11
	marginIn      = 0.5
)

// browserNames are the executables chromedp looks for.
var browserNames = []string{
	"headless_shell",
	"headless-shell",
	"chromium",
	"chromium-browser",
	"google-chrome",
	"google-chrome-stable",
}

// BrowserAvailable reports whether a Chromium binary can be found.
func (c *ChromeRenderer) BrowserAvailable() bool {
	if c.ExecPath != "" {
		_, err := exec.LookPath(c.ExecPath)
		return err == nil
	}
	for _, name := range browserNames {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

// RenderPDF loads html into a blank tab, waits for the preview element and
// prints the page to PDF.
func (c *ChromeRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	if !c.BrowserAvailable() {
		return nil, &Error{Kind: KindDependency, Format: FormatPDF, Cause: fmt.Errorf("no Chromium executable found")}
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if c.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(c.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	if c.Verbose {
		log.Printf("[BROWSER] Printing preview (%d bytes of HTML)", len(html))
	}

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("#"+preview.TargetID, chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithMarginTop(marginIn).
				WithMarginBottom(marginIn).
				WithMarginLeft(marginIn).
				WithMarginRight(marginIn).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, &Error{Kind: KindDependency, Format: FormatPDF, Cause: err}
		}
		return nil, fmt.Errorf("browser rendering failed: %w", err)
	}

	if c.Verbose {
		log.Printf("[BROWSER] Printed PDF: %d bytes", len(pdf))
	}
	return pdf, nil
}

// checkTarget verifies that html contains the element a raster export prints.
func checkTarget(html string) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return fmt.Errorf("failed to parse preview HTML: %w", err)
	}
	if doc.Find("#"+preview.TargetID).Length() == 0 {
		return fmt.Errorf("resume preview element %q not found", preview.TargetID)
	}
	return nil
}
