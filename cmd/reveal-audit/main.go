package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"autobot_site_go/services/reveal/chromeplatform"
	"autobot_site_go/templates/sections"

	"github.com/chromedp/chromedp"
	"github.com/spf13/cobra"
)

var (
	pageURL    string
	chromePath string
	width      int
	height     int
	step       int
	settle     time.Duration
	timeout    time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "reveal-audit",
	Short: "Check that every landing section reveals while scrolling",
	Long: `Loads the landing page in headless Chrome, attaches a browser
IntersectionObserver to every section and scrolls from top to bottom.
Exits non-zero when a section never became visible.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		opts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.NoSandbox,
			chromedp.DisableGPU,
			chromedp.WindowSize(width, height),
		)
		if chromePath != "" {
			opts = append(opts, chromedp.ExecPath(chromePath))
		}

		allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
		defer allocCancel()

		browserCtx, browserCancel := chromedp.NewContext(allocCtx)
		defer browserCancel()

		if err := chromedp.Run(browserCtx,
			chromedp.Navigate(pageURL),
			chromedp.WaitReady("#"+sections.ContactID, chromedp.ByID),
		); err != nil {
			return fmt.Errorf("failed to load %s: %w", pageURL, err)
		}

		platform, err := chromeplatform.New(browserCtx)
		if err != nil {
			return err
		}

		page := sections.Landing()
		seen := newRevealLog()
		for _, s := range page.Sections {
			s.OnRender(func(s *sections.Section) {
				if s.Visible() {
					seen.mark(s.ID)
				}
			})
		}
		page.Mount(platform)
		defer page.Unmount()

		var scrollHeight int
		if err := chromedp.Run(browserCtx, chromedp.Evaluate(`document.documentElement.scrollHeight`, &scrollHeight)); err != nil {
			return fmt.Errorf("failed to measure page: %w", err)
		}

		for _, y := range scrollPositions(scrollHeight, height, step) {
			if err := chromedp.Run(browserCtx,
				chromedp.Evaluate(fmt.Sprintf("window.scrollTo(0, %d)", y), nil),
				chromedp.Sleep(settle),
			); err != nil {
				return fmt.Errorf("failed to scroll to %d: %w", y, err)
			}
		}

		ids := make([]string, 0, len(page.Sections))
		for _, s := range page.Sections {
			ids = append(ids, s.ID)
		}
		if missing := writeReport(cmd.OutOrStdout(), ids, seen); len(missing) > 0 {
			return fmt.Errorf("%d sections never revealed: %v", len(missing), missing)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&pageURL, "url", "http://localhost:8080/", "landing page to audit")
	rootCmd.Flags().StringVar(&chromePath, "chrome", os.Getenv("CHROME_PATH"), "Chrome or headless-shell executable")
	rootCmd.Flags().IntVar(&width, "width", 1280, "viewport width in pixels")
	rootCmd.Flags().IntVar(&height, "height", 800, "viewport height in pixels")
	rootCmd.Flags().IntVar(&step, "step", 400, "scroll step in pixels")
	rootCmd.Flags().DurationVar(&settle, "settle", 250*time.Millisecond, "wait after each scroll step")
	rootCmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "overall audit timeout")
}

func main() {
	rootCmd.SilenceUsage = true
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Printf("[WARNING] %v", err)
		os.Exit(1)
	}
}

// revealLog records which sections were visible at least once. Marks arrive
// from the browser dispatch goroutine and the scroll loop.
type revealLog struct {
	mu   sync.Mutex
	seen map[string]bool
}

func newRevealLog() *revealLog {
	return &revealLog{seen: make(map[string]bool)}
}

func (r *revealLog) mark(id string) {
	r.mu.Lock()
	r.seen[id] = true
	r.mu.Unlock()
}

func (r *revealLog) revealed(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seen[id]
}

// scrollPositions lists the scroll offsets that walk a page of the given
// height from top to bottom, always ending at the last full viewport.
func scrollPositions(pageHeight, viewportHeight, step int) []int {
	if step <= 0 {
		step = viewportHeight
	}
	last := pageHeight - viewportHeight
	if last <= 0 {
		return []int{0}
	}

	var positions []int
	for y := 0; y < last; y += step {
		positions = append(positions, y)
	}
	return append(positions, last)
}

// writeReport prints one line per section and returns the ids that never
// revealed.
func writeReport(w io.Writer, ids []string, seen *revealLog) []string {
	var missing []string
	for _, id := range ids {
		status := "revealed"
		if !seen.revealed(id) {
			status = "NOT REVEALED"
			missing = append(missing, id)
		}
		fmt.Fprintf(w, "%-14s %s\n", id, status)
	}
	return missing
}
