package mask

import "strings"

// Validation 输入值相对模板的完整度。
type Validation struct {
	Value          string
	RequiredLength int  // 模板中占位符数量
	Complete       bool // 输入长度 >= RequiredLength
}

// FormatString 按 opts 格式化输入值。
//
// PreserveTemplate 为 true 时走保留模式；否则根据输入是否足以填满全部占位符，
// 选择完整填充或部分填充。函数对任意输入都返回字符串，不会失败。
func FormatString(opts Options) string {
	ph := opts.placeholder()
	tmpl := []rune(opts.Template)

	if opts.PreserveTemplate {
		return preserveTemplate(opts.Template, tmpl, opts.Value, ph)
	}

	return fill(tmpl, []rune(opts.Value), ph, countRunes(tmpl, ph))
}

// Format 是 [FormatString] 的选项函数版本。
//
// 示例：
//
//	mask.Format("xx/xx/xxxx", "0101") // "01/01"
//	mask.Format("+1 (xxx) xxx-xxxx", "+1 (713) 47", mask.WithPreserveTemplate(true))
func Format(template, value string, opts ...Option) string {
	o := Options{Template: template, Value: value}
	for _, opt := range opts {
		opt(&o)
	}

	return FormatString(o)
}

// CountPlaceholders 返回模板中占位符的数量，即完整输入所需的长度。
//
// placeholder 为 0 时使用 [DefaultPlaceholder]。
func CountPlaceholders(template string, placeholder rune) int {
	return strings.Count(template, string(placeholderOrDefault(placeholder)))
}

// Validate 判断输入值是否足以填满模板的全部占位符。
func Validate(template, value string, placeholder rune) Validation {
	required := CountPlaceholders(template, placeholder)

	return Validation{
		Value:          value,
		RequiredLength: required,
		Complete:       len([]rune(value)) >= required,
	}
}

func fill(tmpl, value []rune, ph rune, required int) string {
	if len(value) >= required {
		return fillComplete(tmpl, value, ph)
	}

	return fillPartial(tmpl, value, ph)
}

func countRunes(s []rune, r rune) int {
	n := 0
	for _, ch := range s {
		if ch == r {
			n++
		}
	}

	return n
}
