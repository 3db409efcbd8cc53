package templexp

import (
	"fmt"
	"os"
	"strings"
)

// LookupFunc 查询变量值，第二个返回值表示变量是否已设置。
//
// [os.LookupEnv] 即为一个 LookupFunc。
type LookupFunc func(name string) (string, bool)

// ExpandEnv 使用当前进程环境变量展开 text。
//
// 仅在 ${VAR?msg} 类必填校验失败时返回 error。
func ExpandEnv(text string) (string, error) {
	return Expand(text, os.LookupEnv)
}

// Expand 使用 lookup 展开 text。
//
// lookup 为 nil 时所有变量都视为未设置。
func Expand(text string, lookup LookupFunc) (string, error) {
	if lookup == nil {
		lookup = func(string) (string, bool) { return "", false }
	}

	return expander{lookup: lookup}.expand(text)
}

type expander struct {
	lookup LookupFunc
}

// ═══════════════════════════════════════════════════════════════════════════
// 扫描
// ═══════════════════════════════════════════════════════════════════════════

func (e expander) expand(text string) (string, error) {
	if !strings.Contains(text, "$") {
		return text, nil
	}

	var buf strings.Builder
	buf.Grow(len(text))

	for i := 0; i < len(text); {
		j := strings.IndexByte(text[i:], '$')
		if j < 0 {
			buf.WriteString(text[i:])
			break
		}
		buf.WriteString(text[i : i+j])
		i += j

		rest := text[i:]
		switch {
		case strings.HasPrefix(rest, "$$"):
			buf.WriteByte('$')
			i += 2
		case strings.HasPrefix(rest, "${"):
			end := closingBrace(text, i+2)
			if end < 0 {
				buf.WriteByte('$')
				i++
				continue
			}

			out, ok, err := e.parameter(text[i+2 : end])
			if err != nil {
				return "", err
			}
			if ok {
				buf.WriteString(out)
			} else {
				buf.WriteString(text[i : end+1])
			}
			i = end + 1
		default:
			buf.WriteByte('$')
			i++
		}
	}

	return buf.String(), nil
}

// closingBrace 返回与 start 之前的 "${" 配对的 '}' 下标，未找到返回 -1。
func closingBrace(text string, start int) int {
	depth := 0
	for i := start; i < len(text); i++ {
		switch {
		case text[i] == '$' && i+1 < len(text) && text[i+1] == '{':
			depth++
			i++
		case text[i] == '}':
			if depth == 0 {
				return i
			}
			depth--
		}
	}

	return -1
}

// ═══════════════════════════════════════════════════════════════════════════
// 参数表达式
// ═══════════════════════════════════════════════════════════════════════════

// parameter 展开 ${...} 内部的表达式；ok 为 false 表示无法识别。
func (e expander) parameter(expr string) (string, bool, error) {
	name := varName(expr)
	if name == "" {
		return "", false, nil
	}

	val, set := e.lookup(name)
	rest := expr[len(name):]
	if rest == "" {
		return val, true, nil
	}

	colon := rest[0] == ':'
	if colon {
		rest = rest[1:]
	}
	if rest == "" {
		return "", false, nil
	}

	op, word := rest[0], rest[1:]
	usable := set && (!colon || val != "")

	switch op {
	case '-':
		if usable {
			return val, true, nil
		}
		out, err := e.expand(word)
		return out, err == nil, err
	case '+':
		if !usable {
			return "", true, nil
		}
		out, err := e.expand(word)
		return out, err == nil, err
	case '?':
		if usable {
			return val, true, nil
		}
		if word == "" {
			return "", false, fmt.Errorf("templexp: %s: parameter null or not set", name)
		}
		return "", false, fmt.Errorf("templexp: %s: %s", name, word)
	}

	return "", false, nil
}

func varName(expr string) string {
	if expr == "" || !isNameStart(expr[0]) {
		return ""
	}

	i := 1
	for i < len(expr) && (isNameStart(expr[i]) || (expr[i] >= '0' && expr[i] <= '9')) {
		i++
	}

	return expr[:i]
}

func isNameStart(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || ch == '_'
}
