package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

var now = time.Now

// OnOptions selects a calendar day.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2024-2-28" or --on="2/28".`)
}

// GetOn parses --on. A month/day without a year is taken to be in the
// current year.
func (o *OnOptions) GetOn() (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, time.Local)
	if err != nil {
		short, err2 := time.ParseInLocation(layoutISOShort, o.OnString, time.Local)
		if err2 != nil {
			return nil, fmt.Errorf("invalid --on %q: %w", o.OnString, err)
		}
		t = short.AddDate(now().Year(), 0, 0)
	}
	return &t, nil
}
