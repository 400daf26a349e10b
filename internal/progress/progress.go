package progress

import (
	"os"

	"github.com/schollz/progressbar/v3"
)

// IndexSpinner shows a spinner while an index build is polled. Disabled it
// is a no-op, so callers never branch on interactivity themselves.
type IndexSpinner struct {
	enabled bool
	bar     *progressbar.ProgressBar
}

// NewIndexSpinner creates a spinner; pass enabled=false for non-interactive runs.
func NewIndexSpinner(enabled bool) *IndexSpinner {
	return &IndexSpinner{enabled: enabled}
}

// Start begins an indeterminate spinner with the given description.
func (p *IndexSpinner) Start(desc string) {
	if !p.enabled {
		return
	}
	p.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
}

// Tick advances the spinner one poll cycle.
func (p *IndexSpinner) Tick() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Add(1)
}

// Finish clears the spinner.
func (p *IndexSpinner) Finish() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Finish()
	p.bar = nil
}
