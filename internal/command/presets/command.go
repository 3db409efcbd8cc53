// Package presets 提供命名模板列表命令。
package presets

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251210-go-pkg-mask/internal/command"
	"github.com/lwmacct/251210-go-pkg-mask/pkg/mask"
)

// Command 预设列表命令
var Command = New()

// New 创建预设列表命令。
func New() *cli.Command {
	return &cli.Command{
		Name:   "presets",
		Usage:  "列出命名模板",
		Flags:  command.MaskFlags(),
		Action: action,
	}
}

func action(_ context.Context, cmd *cli.Command) error {
	cfg, err := command.LoadConfig(cmd)
	if err != nil {
		return err
	}

	ph, err := cfg.Mask.PlaceholderRune()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.Root().Writer, 0, 4, 2, ' ', 0)
	for _, name := range cfg.PresetNames() {
		tmpl := cfg.Presets[name]
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\n", name, tmpl, mask.CountPlaceholders(tmpl, ph))
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("presets: write output: %w", err)
	}

	return nil
}
