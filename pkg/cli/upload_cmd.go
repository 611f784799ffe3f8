package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newUploadCmd(client *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>...",
		Short: "Upload data files for ingestion",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.Upload(cmd.Context(), args)
			if err != nil {
				return err
			}

			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, result)
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TABLE\tCOLUMNS\tSTATUS")
			for _, t := range result.Tables {
				status := "registered"
				if t.Error != "" {
					status = t.Error
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Name, strings.Join(t.Columns, ", "), status)
			}
			return tw.Flush()
		},
	}
}

func newTablesCmd(client *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List registered tables and their columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tables, err := client.Tables(cmd.Context())
			if err != nil {
				return err
			}

			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]interface{}{"tables": tables})
			}

			if len(tables) == 0 {
				fmt.Fprintln(os.Stdout, "(no tables)")
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TABLE\tCOLUMNS")
			for _, t := range tables {
				cols := make([]string, 0, len(t.Columns))
				for _, c := range t.Columns {
					cols = append(cols, c.Name)
				}
				fmt.Fprintf(tw, "%s\t%s\n", t.Name, strings.Join(cols, ", "))
			}
			return tw.Flush()
		},
	}
}
