package options

import (
	"time"

	"github.com/spf13/cobra"
)

const layoutISO = "2006-01-02"

// OnOptions captures the day a command targets.
type OnOptions struct {
	OnString string
}

// AddOnArgs wires the date flag on the provided command.
func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a day, example: --on="2024-03-15". Defaults to today.`)
}

// GetOn parses the flag; nil means today.
func (o *OnOptions) GetOn() (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
