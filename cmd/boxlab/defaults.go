package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/boxlab/internal/style"
)

func newDefaultsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "List the default records and slider bounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderDefaults(cmd)
		},
	}

	return cmd
}

func renderDefaults(cmd *cobra.Command) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "ELEMENT\tPADDING\tMARGIN\tWIDTH\tHEIGHT\tPOSITION\tDISPLAY\tBACKGROUND")
	for _, role := range style.Roles() {
		rec := style.Defaults(role)
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			role, rec.Padding, rec.Margin, rec.Width, rec.Height, rec.Position, rec.Display, rec.Background)
	}
	fmt.Fprintln(writer)

	fmt.Fprintln(writer, "ELEMENT\tPADDING\tMARGIN\tWIDTH\tHEIGHT")
	for _, role := range style.Roles() {
		limits := style.LimitsFor(role)
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			role, formatRange(limits.Padding), formatRange(limits.Margin), formatRange(limits.Width), formatRange(limits.Height))
	}

	return writer.Flush()
}

func formatRange(r style.Range) string {
	return fmt.Sprintf("%d..%d", r.Min, r.Max)
}
