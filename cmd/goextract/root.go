package main

import (
	"context"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hyperifyio/goextract/internal/app"
)

// NewRootCmd creates the goextract command. Diagnostics go to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "goextract <url>",
		Short: "Extract the main content of a web page into a standalone HTML file",
		Long: `goextract downloads a single page, strips scripts, styles, navigation,
footers and sidebars, picks the container that looks like the main content
and writes it with minimal styling for code, images and tables.

The file name is derived from the page title or host unless -o is given.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cfg := app.Config{URL: args[0], OutputPath: outputPath}
			if err := run(ctx, cfg, out); err != nil {
				// Already reported on out; the process still exits normally.
				log.Debug().Err(err).Msg("run failed")
			}
			return nil
		},
	}
	cmd.SetOut(out)
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path")

	return cmd
}
