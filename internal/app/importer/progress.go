package importer

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// ProgressConfig controls whether import progress is rendered and where
type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

// ProgressManager owns the bar container of one import run
type ProgressManager struct {
	container *mpb.Progress
	enabled   bool
	mu        sync.Mutex
}

// ProgressBar tracks the tracks processed by an import. A disabled bar is a no-op.
type ProgressBar struct {
	bar     *mpb.Bar
	enabled bool
}

// NewProgressManager renders to stderr unless config.Writer is set
func NewProgressManager(config ProgressConfig) *ProgressManager {
	if !config.Enabled {
		return &ProgressManager{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
	)

	return &ProgressManager{
		container: container,
		enabled:   true,
	}
}

// CreateBar adds a bar counting total tracks
func (pm *ProgressManager) CreateBar(total int, description string) *ProgressBar {
	if !pm.enabled || pm.container == nil {
		return &ProgressBar{enabled: false}
	}

	pm.mu.Lock()
	defer pm.mu.Unlock()

	bar := pm.container.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.NewPercentage("%.1f", decor.WCSyncSpace),
			decor.OnComplete(
				decor.EwmaSpeed(0, "%.1f tracks/s", 30, decor.WCSyncSpace), " ✓ ",
			),
		),
	)

	return &ProgressBar{
		bar:     bar,
		enabled: true,
	}
}

// Increment advances the bar by one item that started at start
func (pb *ProgressBar) Increment(start time.Time) {
	if pb.enabled && pb.bar != nil {
		pb.bar.EwmaIncrement(time.Since(start))
	}
}

// Complete finishes the bar at its current count, even when items were skipped
func (pb *ProgressBar) Complete() {
	if pb.enabled && pb.bar != nil {
		pb.bar.SetTotal(pb.bar.Current(), true)
	}
}

// Wait blocks until every bar has rendered its final state
func (pm *ProgressManager) Wait() {
	if pm.enabled && pm.container != nil {
		pm.container.Wait()
	}
}

// IsTTY reports whether writer is a character device
func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// ShouldShowProgress enables bars when forced or when attached to a terminal
func ShouldShowProgress(forced bool) bool {
	if forced {
		return true
	}

	return IsTTY(os.Stderr) || IsTTY(os.Stdout)
}
