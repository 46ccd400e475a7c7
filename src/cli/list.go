package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"azpull/src/localstore"
)

func newListCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List previously fetched container folders under the destination root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dest, _ := cmd.Root().PersistentFlags().GetString("dest")
			fetches, err := localstore.List(dest)
			if err != nil {
				return err
			}
			return renderFetches(stdout, fetches)
		},
	}
}

func renderFetches(w io.Writer, fetches []localstore.Fetch) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CONTAINER\tFILES\tBYTES\tDUMP\tSTATIC")
	for _, f := range fetches {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\n", f.Container, f.Files, f.Bytes, yesNo(f.HasDump), yesNo(f.HasStatic))
	}
	return tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
