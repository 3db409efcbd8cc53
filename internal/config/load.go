package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251210-go-pkg-mask/pkg/templexp"
)

// DefaultPaths 返回默认配置文件的搜索顺序。
//
// 优先级 (从高到低)：
//  1. ./.appname.yaml - 当前目录应用配置
//  2. ~/.appname.yaml - 用户主目录配置
//  3. /etc/appname/config.yaml - 系统级配置
//  4. config.yaml - 当前目录通用配置
//  5. config/config.yaml - 子目录通用配置
func DefaultPaths(appName string) []string {
	var paths []string

	if appName != "" {
		paths = append(paths, "."+appName+".yaml")
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(home, "."+appName+".yaml"))
		}
		paths = append(paths, "/etc/"+appName+"/config.yaml")
	}

	return append(paths, "config.yaml", "config/config.yaml")
}

// Load 读取配置并按优先级合并：默认值 → 配置文件 → 环境变量 → CLI flags。
//
// 配置 key 由 json tag 定义，YAML、JSON、环境变量与 flags 共享同一套 key。
func Load(opts ...Option) (*Config, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if len(o.configPaths) == 0 {
		o.configPaths = DefaultPaths(o.appName)
	}

	configMap := toMap(DefaultConfig())

	// 配置文件：按顺序搜索，找到第一个即停止
	fileMap, path, err := readFirst(o.configPaths, !o.noExpansion)
	if err != nil {
		return nil, err
	}
	if fileMap != nil {
		mergeMaps(configMap, fileMap)
		slog.Debug("Loaded config from file", "path", path, "templateExpansion", !o.noExpansion)
	} else {
		slog.Debug("No config file found, using defaults")
	}

	fields := leafFields()

	if o.envPrefix != "" {
		for _, f := range fields {
			envKey := f.envKey(o.envPrefix)
			if val := os.Getenv(envKey); val != "" {
				setByPath(configMap, f.key, val)
				slog.Debug("Loaded env binding", "env", envKey, "path", f.key)
			}
		}
	}

	if o.cmd != nil {
		for _, f := range fields {
			f.applyFlag(o.cmd, configMap)
		}
	}

	var cfg Config
	if err := decode(configMap, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	return &cfg, nil
}

// MustLoad 调用 [Load] 并在失败时 panic，适合启动阶段。
func MustLoad(opts ...Option) *Config {
	cfg, err := Load(opts...)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load: %v", err))
	}

	return cfg
}

// readFirst 读取首个存在的配置文件；均不存在时返回 nil map。
func readFirst(paths []string, expand bool) (map[string]any, string, error) {
	for _, path := range paths {
		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if err != nil {
			continue
		}

		if expand {
			expanded, err := templexp.ExpandEnv(string(content))
			if err != nil {
				return nil, path, fmt.Errorf("config: expand template in %s: %w", path, err)
			}
			content = []byte(expanded)
		}

		m, err := parseConfigBytes(path, content)
		if err != nil {
			return nil, path, fmt.Errorf("config: parse %s: %w", path, err)
		}

		return m, path, nil
	}

	return nil, "", nil
}

// applyFlag 仅在用户显式设置 flag 时写入配置。
//
// flag 名称由 key 的 "." 替换为 "-" 得到，如 mask.template → --mask-template。
func (f field) applyFlag(cmd *cli.Command, config map[string]any) {
	name := strings.ReplaceAll(f.key, ".", "-")
	if !cmd.IsSet(name) {
		return
	}

	switch f.kind {
	case kindString:
		setByPath(config, f.key, cmd.String(name))
	case kindBool:
		setByPath(config, f.key, cmd.Bool(name))
	case kindInt:
		setByPath(config, f.key, cmd.Int(name))
	}
}
