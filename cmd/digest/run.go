package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/steveyegge/digest/internal/debug"
	"github.com/steveyegge/digest/internal/tools"
	"github.com/steveyegge/digest/internal/ui"
)

var runCmd = &cobra.Command{
	Use:   "run <operation> [key=value ...]",
	Short: "Run a named operation",
	Long: `Run a named operation and print its digest.

Arguments are key=value pairs; see 'digest ops' for each operation's parameters.

Examples:
  digest run aha-features.list product_id=PRJ1 per_page=50
  digest run aha-features.search query=billing
  digest run confluence-page.get_page page_id=12345 plain_text=true`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		raw, err := parseArgs(args[1:])
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		defer debug.Timed(name, time.Now())
		res := tools.Invoke(ctx, name, raw)

		if err := writeResult(cmd.OutOrStdout(), name, res, outputFormat, ui.PagerOptions{NoPager: noPager}); err != nil {
			return err
		}
		if !res.OK() {
			return errReported
		}
		return nil
	},
}

// parseArgs turns key=value pairs into an argument record. Values stay
// strings; operations coerce them to their declared kinds.
func parseArgs(pairs []string) (map[string]interface{}, error) {
	raw := make(map[string]interface{}, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid argument %q (want key=value)", pair)
		}
		if _, dup := raw[key]; dup {
			return nil, fmt.Errorf("argument %q given more than once", key)
		}
		raw[key] = value
	}
	return raw, nil
}

func init() {
	rootCmd.AddCommand(runCmd)
}
