// Package config 提供 maskfmt 的配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - 通过 WithAppName / WithConfigPaths 选项设置
//  3. 环境变量 - 通过 WithEnvPrefix 选项启用
//  4. CLI flags - 通过 WithCommand 选项设置
package config

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/lwmacct/251210-go-pkg-mask/pkg/mask"
)

// ErrNoTemplate 既未指定预设也未配置 mask.template。
var ErrNoTemplate = errors.New("config: no mask template configured")

// Config 应用配置。
type Config struct {
	Mask    MaskConfig        `json:"mask" desc:"掩码配置"`
	Presets map[string]string `json:"presets" desc:"命名模板 (名称 → 模板)"`
}

// MaskConfig 掩码配置。
type MaskConfig struct {
	Template         string `json:"template" desc:"未指定预设时使用的模板"`
	Placeholder      string `json:"placeholder" desc:"占位符 (单个字符)"`
	PreserveTemplate bool   `json:"preserve-template" desc:"启用保留模式"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Mask: MaskConfig{
			Placeholder: string(mask.DefaultPlaceholder),
		},
		Presets: map[string]string{
			"phone-us": "+1 (xxx) xxx-xxxx",
			"date":     "xx/xx/xxxx",
			"ssn":      "xxx-xx-xxxx",
			"card":     "xxxx xxxx xxxx xxxx",
			"zip":      "xxxxx-xxxx",
		},
	}
}

// PlaceholderRune 解析占位符；空字符串表示默认占位符。
func (c MaskConfig) PlaceholderRune() (rune, error) {
	if c.Placeholder == "" {
		return mask.DefaultPlaceholder, nil
	}
	if utf8.RuneCountInString(c.Placeholder) != 1 {
		return 0, fmt.Errorf("config: mask.placeholder must be a single character, got %q", c.Placeholder)
	}

	r, _ := utf8.DecodeRuneInString(c.Placeholder)

	return r, nil
}

// Template 返回预设对应的模板；preset 为空时返回 mask.template。
func (c *Config) Template(preset string) (string, error) {
	if preset == "" {
		if c.Mask.Template == "" {
			return "", ErrNoTemplate
		}

		return c.Mask.Template, nil
	}

	tmpl, ok := c.Presets[preset]
	if !ok {
		return "", fmt.Errorf("config: unknown preset %q (available: %v)", preset, c.PresetNames())
	}

	return tmpl, nil
}

// PresetNames 返回排序后的预设名称。
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// NewMask 按配置编译掩码。
func (c *Config) NewMask(preset string) (*mask.Mask, error) {
	tmpl, err := c.Template(preset)
	if err != nil {
		return nil, err
	}

	ph, err := c.Mask.PlaceholderRune()
	if err != nil {
		return nil, err
	}

	return mask.New(tmpl,
		mask.WithPlaceholder(ph),
		mask.WithPreserveTemplate(c.Mask.PreserveTemplate),
	), nil
}
