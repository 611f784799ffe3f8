package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newAskCmd(client *Client) *cobra.Command {
	var voiceFile string

	cmd := &cobra.Command{
		Use:   "ask [question...]",
		Short: "Ask a natural-language question",
		Long:  "Ask a natural-language question, either as arguments or transcribed from an audio file via --voice-file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.TrimSpace(strings.Join(args, " "))
			voiceHint := ""

			if voiceFile != "" {
				text, err := transcribeFile(cmd.Context(), client, voiceFile)
				if err != nil {
					return err
				}
				voiceHint = text
				fmt.Fprintf(os.Stderr, "Transcribed: %s\n", text)
			}

			if question == "" && voiceHint == "" {
				return fmt.Errorf("nothing to ask: pass a question or --voice-file")
			}

			result, err := client.Ask(cmd.Context(), question, voiceHint)
			if err != nil {
				return err
			}

			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, result)
			}

			fmt.Fprintf(os.Stdout, "SQL: %s\n\n", result.SQL)
			if result.Warning != "" {
				fmt.Fprintf(os.Stderr, "Warning: %s\n", result.Warning)
			}
			return PrintRows(os.Stdout, result.Rows)
		},
	}

	cmd.Flags().StringVar(&voiceFile, "voice-file", "", "Audio file to transcribe into the question")

	return cmd
}

func newResultsCmd(client *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "results",
		Short: "Show the most recently cached query results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := client.Results(cmd.Context())
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]interface{}{"rows": rows})
			}
			return PrintRows(os.Stdout, rows)
		},
	}
}
