package rod

import (
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the default number of rendered lyrics pages before the
// browser is recycled.
const DefaultMaxPages = 75

// instance is one launched browser process.
type instance struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	pages    int64
	active   int
	retired  bool
}

func (i *instance) close() error {
	err := i.browser.Close()
	i.launcher.Kill()
	return err
}

// BrowserManager hands out a shared headless browser and replaces it after a
// number of pages, since Chrome memory grows under sustained load and is
// not reclaimed by closing pages. A replaced browser stays open until its
// last in-flight page is released.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	mu       sync.Mutex
	current  *instance
	retiring []*instance
	maxPages int64
	closed   bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets the maximum number of pages before the browser is recycled.
func WithMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		bm.maxPages = n
	}
}

// NewBrowserManager launches a headless Chrome browser.
// Close must be called when the BrowserManager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(bm)
	}

	inst, err := launch()
	if err != nil {
		return nil, err
	}
	bm.current = inst
	return bm, nil
}

// Acquire returns the browser to render one page with and a release
// function that must be called once the page is done. The browser is
// recycled first when it has rendered maxPages pages. If a replacement
// cannot be launched the old browser keeps serving.
func (bm *BrowserManager) Acquire() (*rod.Browser, func()) {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.maxPages > 0 && bm.current.pages >= bm.maxPages {
		bm.recycle()
	}

	inst := bm.current
	inst.active++
	var once sync.Once
	return inst.browser, func() {
		once.Do(func() { bm.release(inst) })
	}
}

func (bm *BrowserManager) release(inst *instance) {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	inst.active--
	inst.pages++
	if inst.retired && inst.active == 0 && !bm.closed {
		_ = inst.close()
		bm.dropRetiring(inst)
	}
}

// recycle must be called with mu held.
func (bm *BrowserManager) recycle() {
	next, err := launch()
	if err != nil {
		return
	}

	old := bm.current
	bm.current = next
	old.retired = true
	if old.active == 0 {
		_ = old.close()
		return
	}
	bm.retiring = append(bm.retiring, old)
}

func (bm *BrowserManager) dropRetiring(inst *instance) {
	for i, r := range bm.retiring {
		if r == inst {
			bm.retiring = append(bm.retiring[:i], bm.retiring[i+1:]...)
			return
		}
	}
}

// Close shuts down every browser process. Close is safe to call multiple
// times.
func (bm *BrowserManager) Close() error {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil
	}
	bm.closed = true

	err := bm.current.close()
	for _, inst := range bm.retiring {
		_ = inst.close()
	}
	bm.retiring = nil
	return err
}

// LauncherPID returns the process ID of the current browser launcher.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	return bm.current.launcher.PID()
}

// launch starts a browser with flags that keep background pages from being
// throttled.
func launch() (*instance, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &instance{browser: browser, launcher: l}, nil
}
