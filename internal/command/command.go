// Package command 提供 maskfmt 的命令行功能。
package command

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251210-go-pkg-mask/internal/config"
)

const (
	// AppName 应用名称，用于生成默认配置路径。
	AppName = "maskfmt"
	// EnvPrefix 环境变量前缀。
	EnvPrefix = "MASKFMT_"
)

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()

// MaskFlags 返回与 mask.* 配置项对应的 flags。
//
// 每次调用返回新实例，flag 不能在多个命令间共享。
func MaskFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "配置文件路径 (默认按 .maskfmt.yaml 等路径搜索)",
		},
		&cli.StringFlag{
			Name:    "mask-template",
			Aliases: []string{"t"},
			Value:   Defaults.Mask.Template,
			Usage:   "掩码模板，如 \"+1 (xxx) xxx-xxxx\"",
		},
		&cli.StringFlag{
			Name:    "mask-placeholder",
			Aliases: []string{"p"},
			Value:   Defaults.Mask.Placeholder,
			Usage:   "占位符 (单个字符)",
		},
		&cli.BoolFlag{
			Name:  "mask-preserve-template",
			Value: Defaults.Mask.PreserveTemplate,
			Usage: "启用保留模式 (输入可能已带有字面字符)",
		},
	}
}

// LoadConfig 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags。
func LoadConfig(cmd *cli.Command) (*config.Config, error) {
	opts := []config.Option{
		config.WithCommand(cmd),
		config.WithAppName(AppName),
		config.WithEnvPrefix(EnvPrefix),
	}
	if path := cmd.String("config"); path != "" {
		opts = append(opts, config.WithConfigPaths(path))
	}

	return config.Load(opts...)
}
