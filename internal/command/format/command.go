// Package format 提供按模板格式化输入值的命令。
package format

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251210-go-pkg-mask/internal/command"
)

// Command 格式化命令
var Command = New()

// New 创建格式化命令。
func New() *cli.Command {
	return &cli.Command{
		Name:      "format",
		Usage:     "按模板格式化输入值",
		ArgsUsage: "VALUE...",
		Flags: append(command.MaskFlags(),
			&cli.StringFlag{
				Name:  "preset",
				Usage: "使用命名模板 (见 presets 命令)",
			},
			&cli.BoolFlag{
				Name:  "steps",
				Usage: "逐键输出每一步的格式化结果",
			},
		),
		Action: action,
	}
}
