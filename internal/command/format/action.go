package format

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251210-go-pkg-mask/internal/command"
	"github.com/lwmacct/251210-go-pkg-mask/pkg/mask"
)

var errNoValue = errors.New("format: at least one VALUE is required")

func action(_ context.Context, cmd *cli.Command) error {
	cfg, err := command.LoadConfig(cmd)
	if err != nil {
		return err
	}

	m, err := cfg.NewMask(cmd.String("preset"))
	if err != nil {
		return err
	}

	values := cmd.Args().Slice()
	if len(values) == 0 {
		return errNoValue
	}

	slog.Debug("Formatting values", "template", m.Template(), "preserve", cfg.Mask.PreserveTemplate, "count", len(values))

	w := cmd.Root().Writer
	for _, value := range values {
		if cmd.Bool("steps") {
			err = writeSteps(w, m, value, cfg.Mask.PreserveTemplate)
		} else {
			_, err = fmt.Fprintln(w, m.Format(value))
		}
		if err != nil {
			return fmt.Errorf("format: write output: %w", err)
		}
	}

	return nil
}

// writeSteps 模拟逐键输入。
//
// 填充模式下每一步格式化原始输入的前缀；保留模式下把新字符追加到上一步的输出再格式化，
// 与输入框中的行为一致。
func writeSteps(w io.Writer, m *mask.Mask, value string, preserve bool) error {
	var (
		typed []rune
		shown string
	)
	for _, r := range value {
		typed = append(typed, r)
		if preserve {
			shown = m.Format(shown + string(r))
		} else {
			shown = m.Format(string(typed))
		}

		if _, err := fmt.Fprintf(w, "%s\t%s\n", string(typed), shown); err != nil {
			return err
		}
	}

	return nil
}
