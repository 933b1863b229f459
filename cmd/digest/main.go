// Command digest renders Aha! and Confluence data as markdown digests.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/steveyegge/digest/internal/config"
	"github.com/steveyegge/digest/internal/debug"
	"github.com/steveyegge/digest/internal/telemetry"
	"github.com/steveyegge/digest/internal/ui"
)

var (
	outputFormat string
	noPager      bool
	timeout      time.Duration
	dateFormat   string
	verboseFlag  bool
	quietFlag    bool
)

// errReported means the failure has already been written to the output.
var errReported = errors.New("reported")

func init() {
	config.LoadDotEnv()
	if err := config.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize config: %v\n", err)
	}

	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", config.GetString("output.format"), "Output format (text|json|html)")
	rootCmd.PersistentFlags().BoolVar(&noPager, "no-pager", config.GetBool("display.no_pager"), "Do not pipe text output through a pager")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", config.GetDuration("http.timeout"), "Deadline for all API calls of one operation (0 disables)")
	rootCmd.PersistentFlags().StringVar(&dateFormat, "date-format", "", "Go time layout for dates (default: display.date_format)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose/debug output")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress non-essential output (errors only)")

	rootCmd.Flags().BoolP("version", "V", false, "Print version information")
}

var rootCmd = &cobra.Command{
	Use:           "digest",
	Short:         "digest - Aha! and Confluence digests",
	Long:          `Read-only digests of Aha! features, ideas, products and Confluence pages, rendered as markdown.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Fprintf(cmd.OutOrStdout(), "digest version %s (%s)\n", Version, Build)
			return
		}
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug.SetVerbose(verboseFlag)
		debug.SetQuiet(quietFlag)
		ui.InitColorProfile()

		if err := validateFormat(outputFormat); err != nil {
			return err
		}
		if dateFormat != "" {
			config.Set("display.date_format", dateFormat)
		}

		if err := telemetry.Init(cmd.Context(), "digest", Version); err != nil {
			debug.Logf("[telemetry] init failed: %v\n", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		telemetry.Shutdown(ctx)
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return
	}
	if !errors.Is(err, errReported) {
		fmt.Fprintln(os.Stderr, ui.RenderFail("Error: "+err.Error()))
	}
	stop()
	os.Exit(1)
}
