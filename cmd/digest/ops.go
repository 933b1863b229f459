package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/steveyegge/digest/internal/tools"
	"github.com/steveyegge/digest/internal/ui"
)

var opsCmd = &cobra.Command{
	Use:   "ops [operation]",
	Short: "List operations and their parameters",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ops := tools.List()
		if len(args) == 1 {
			op := tools.Get(args[0])
			if op == nil {
				return fmt.Errorf("unknown operation %q", args[0])
			}
			ops = []*tools.Operation{op}
		}
		if outputFormat == formatJSON {
			return outputJSON(cmd.OutOrStdout(), describeOps(ops))
		}
		writeOps(cmd.OutOrStdout(), ops)
		return nil
	},
}

type paramInfo struct {
	Name        string      `json:"name"`
	Kind        tools.Kind  `json:"kind"`
	Required    bool        `json:"required,omitempty"`
	Default     interface{} `json:"default,omitempty"`
	Description string      `json:"description,omitempty"`
}

type opInfo struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Params      []paramInfo `json:"params"`
}

func describeOps(ops []*tools.Operation) []opInfo {
	out := make([]opInfo, 0, len(ops))
	for _, op := range ops {
		info := opInfo{Name: op.Name, Description: op.Description, Params: []paramInfo{}}
		for _, p := range op.Params {
			info.Params = append(info.Params, paramInfo(p))
		}
		out = append(out, info)
	}
	return out
}

func writeOps(w io.Writer, ops []*tools.Operation) {
	for i, op := range ops {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s\n", ui.HeadingStyle.Render(op.Name))
		fmt.Fprintf(w, "  %s\n", op.Description)
		for _, p := range op.Params {
			fmt.Fprintf(w, "    %s\n", formatParam(p))
		}
	}
}

func formatParam(p tools.Param) string {
	var b strings.Builder
	b.WriteString(p.Name)
	fmt.Fprintf(&b, " (%s", p.Kind)
	switch {
	case p.Required:
		b.WriteString(", required")
	case p.Default != nil:
		fmt.Fprintf(&b, ", default %v", p.Default)
	}
	b.WriteString(")")
	if p.Description != "" {
		b.WriteString(" ")
		b.WriteString(ui.RenderMuted(p.Description))
	}
	return b.String()
}

func init() {
	rootCmd.AddCommand(opsCmd)
}
