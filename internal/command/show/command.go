// Package show 提供输出生效配置的命令。
package show

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251210-go-pkg-mask/internal/command"
	"github.com/lwmacct/251210-go-pkg-mask/internal/config"
)

// Command 配置输出命令
var Command = New()

// New 创建配置输出命令。
func New() *cli.Command {
	return &cli.Command{
		Name:   "config",
		Usage:  "以 YAML 输出合并后的配置 (可作为配置文件模板)",
		Flags:  command.MaskFlags(),
		Action: action,
	}
}

func action(_ context.Context, cmd *cli.Command) error {
	cfg, err := command.LoadConfig(cmd)
	if err != nil {
		return err
	}

	out, err := config.Render(*cfg)
	if err != nil {
		return err
	}

	if _, err := cmd.Root().Writer.Write(out); err != nil {
		return fmt.Errorf("config: write output: %w", err)
	}

	return nil
}
