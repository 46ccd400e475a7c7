package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newPresetsCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List configured preset keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			keys := cfg.PresetKeys()
			if len(keys) == 0 {
				fmt.Fprintln(stdout, "No presets configured")
				return nil
			}
			tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "PRESET\tSUBSCRIPTION\tRESOURCE GROUP")
			for _, k := range keys {
				p := cfg.Presets[k]
				fmt.Fprintf(tw, "%s\t%s\t%s\n", k, p.Subscription, p.ResourceGroup)
			}
			return tw.Flush()
		},
	}
}
