package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251210-go-pkg-mask/internal/command"
	"github.com/lwmacct/251210-go-pkg-mask/internal/command/format"
	"github.com/lwmacct/251210-go-pkg-mask/internal/command/presets"
	"github.com/lwmacct/251210-go-pkg-mask/internal/command/show"
)

func main() {
	app := &cli.Command{
		Name:  command.AppName,
		Usage: "输入掩码格式化工具",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "输出调试日志",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("debug") {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}

			return ctx, nil
		},
		Commands: []*cli.Command{
			format.Command,
			presets.Command,
			show.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		slog.Error("应用程序运行失败", "error", err)
		os.Exit(1)
	}
}
