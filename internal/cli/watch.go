package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/shipnotes/shipnotes/internal/changelog"
	"github.com/shipnotes/shipnotes/internal/config"
	"github.com/shipnotes/shipnotes/internal/errors"
	"github.com/shipnotes/shipnotes/internal/site"
)

// watchDebounce coalesces the bursts of write events editors emit on save.
const watchDebounce = 200 * time.Millisecond

var watchOutputFlag string

var watchCmd = &cobra.Command{
	Use:   "watch [changelog]",
	Short: "Regenerate the page whenever the changelog changes",
	Long: `Watch the changelog source and regenerate the HTML page on change.

Uses file system notifications, so saves are picked up immediately.
Press Ctrl-C to stop.

Example:
  shipnotes watch -o docs/changelog.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.GroupID = GroupSite
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchOutputFlag, "output", "o", "",
		"File to regenerate on each change")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	output := watchOutputFlag
	if output == "" {
		output = cfg.Output
	}
	if output == "" {
		return errors.NewArgumentError(
			"watch needs an output file to regenerate",
			"Pass --output path/to/changelog.html",
			"Or set the 'output' key in your shipnotes config")
	}

	input, err := resolveInput(cfg, args)
	if err != nil {
		return err
	}

	regenerate := func() {
		if err := regeneratePage(input, output, cfg); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s regenerate failed: %v\n", time.Now().Format("15:04:05"), err)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s ✓ %s → %s\n", time.Now().Format("15:04:05"), input, output)
	}
	regenerate()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory rather than the file: editors replace files on
	// save, which would invalidate a direct file watch.
	dir := filepath.Dir(input)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (Ctrl-C to stop)\n", input)

	debounce := time.NewTimer(watchDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if samePath(event.Name, input) && (event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)) {
				debounce.Reset(watchDebounce)
			}
		case <-debounce.C:
			regenerate()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

// regeneratePage performs one load-render-write cycle.
func regeneratePage(input, output string, cfg *config.Configuration) error {
	releases, err := changelog.LoadFile(input)
	if err != nil {
		return fmt.Errorf("loading changelog: %w", err)
	}

	html, err := site.Render(releases, siteParams(cfg))
	if err != nil {
		return fmt.Errorf("rendering changelog page: %w", err)
	}

	if err := os.WriteFile(output, []byte(html), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	return nil
}

// samePath compares two paths after cleaning; events report the path as
// registered, so a cheap lexical comparison is enough.
func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
