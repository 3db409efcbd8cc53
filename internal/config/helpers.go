package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	yamlv3 "go.yaml.in/yaml/v3"
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindBool
	kindInt
)

// field 可由环境变量与 CLI flag 覆盖的叶子配置项。
type field struct {
	key  string // 如 mask.preserve-template
	kind fieldKind
}

// envKey 生成环境变量名："." 与 "-" 转为 "_"，转大写后加前缀。
func (f field) envKey(prefix string) string {
	return prefix + strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(f.key))
}

// leafFields 收集 Config 中的标量叶子字段；map 与切片不参与覆盖。
func leafFields() []field {
	var fields []field
	collectFields(reflect.TypeFor[Config](), "", &fields)

	return fields
}

func collectFields(typ reflect.Type, prefix string, fields *[]field) {
	for i := range typ.NumField() {
		sf := typ.Field(i)
		key := tagName(sf)
		if key == "" {
			continue
		}
		if prefix != "" {
			key = prefix + "." + key
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			collectFields(sf.Type, key, fields)
		case reflect.String:
			*fields = append(*fields, field{key: key, kind: kindString})
		case reflect.Bool:
			*fields = append(*fields, field{key: key, kind: kindBool})
		case reflect.Int, reflect.Int64:
			*fields = append(*fields, field{key: key, kind: kindInt})
		default:
		}
	}
}

func tagName(sf reflect.StructField) string {
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	if name == "-" || sf.PkgPath != "" {
		return ""
	}

	return name
}

// toMap 将配置结构体转换为以 json tag 为 key 的嵌套 map。
func toMap(v any) map[string]any {
	m, _ := valueToAny(reflect.ValueOf(v)).(map[string]any)
	if m == nil {
		return map[string]any{}
	}

	return m
}

func valueToAny(val reflect.Value) any {
	switch val.Kind() {
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return nil
		}

		return valueToAny(val.Elem())
	case reflect.Struct:
		out := make(map[string]any)
		typ := val.Type()
		for i := range typ.NumField() {
			if key := tagName(typ.Field(i)); key != "" {
				out[key] = valueToAny(val.Field(i))
			}
		}

		return out
	case reflect.Map:
		if val.IsNil() {
			return nil
		}
		out := make(map[string]any, val.Len())
		iter := val.MapRange()
		for iter.Next() {
			out[fmt.Sprintf("%v", iter.Key().Interface())] = valueToAny(iter.Value())
		}

		return out
	case reflect.Slice:
		if val.IsNil() {
			return nil
		}
		out := make([]any, val.Len())
		for i := range val.Len() {
			out[i] = valueToAny(val.Index(i))
		}

		return out
	default:
		return val.Interface()
	}
}

func parseConfigBytes(path string, content []byte) (map[string]any, error) {
	var raw any
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(content, &raw)
	} else {
		err = yamlv3.Unmarshal(content, &raw)
	}
	if err != nil {
		return nil, err
	}

	switch normalized := normalizeMapKeys(raw).(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return normalized, nil
	default:
		return nil, errors.New("config root must be object")
	}
}

func normalizeMapKeys(val any) any {
	switch typed := val.(type) {
	case map[string]any:
		for key, value := range typed {
			typed[key] = normalizeMapKeys(value)
		}

		return typed
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[fmt.Sprintf("%v", key)] = normalizeMapKeys(value)
		}

		return out
	case []any:
		for i := range typed {
			typed[i] = normalizeMapKeys(typed[i])
		}

		return typed
	default:
		return val
	}
}

func mergeMaps(dst, src map[string]any) {
	for key, value := range src {
		if valueMap, ok := value.(map[string]any); ok {
			if dstMap, ok := dst[key].(map[string]any); ok {
				mergeMaps(dstMap, valueMap)
				continue
			}
		}

		dst[key] = value
	}
}

func setByPath(dst map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := dst
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

func decode(data map[string]any, out *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.TextUnmarshallerHookFunc(),
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	})
	if err != nil {
		return err
	}

	return decoder.Decode(data)
}

// Render 以 YAML 输出配置，key 与配置文件一致。
func Render(cfg Config) ([]byte, error) {
	out, err := yamlv3.Marshal(toMap(cfg))
	if err != nil {
		return nil, fmt.Errorf("config: render: %w", err)
	}

	return out, nil
}
