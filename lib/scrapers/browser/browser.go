// Package browser builds chromedp contexts from the browser_settings
// section of the config.
package browser

import (
	"context"

	fakeua "github.com/EDDYCJY/fake-useragent"
	"github.com/chromedp/chromedp"
)

type Options struct {
	Headless   bool
	WindowSize [2]int
	UserAgent  string
}

func (o Options) userAgent() string {
	if o.UserAgent != "" {
		return o.UserAgent
	}
	return fakeua.Chrome()
}

func (o Options) windowSize() (int, int) {
	if o.WindowSize[0] <= 0 || o.WindowSize[1] <= 0 {
		return 1920, 1080
	}
	return o.WindowSize[0], o.WindowSize[1]
}

// NewContext returns a chromedp tab context configured per the options,
// with automation fingerprints dialed down. The cancel func tears down the
// tab and its allocator.
func NewContext(ctx context.Context, opts Options) (context.Context, context.CancelFunc) {
	width, height := opts.windowSize()

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.UserAgent(opts.userAgent()),
		chromedp.WindowSize(width, height),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)

	return tabCtx, func() {
		cancelTab()
		cancelAlloc()
	}
}
