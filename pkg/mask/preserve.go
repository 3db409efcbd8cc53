package mask

import "strings"

// preserveTemplate 将可能已格式化过的输入与模板对齐。
//
// 扫描模板时维护输入游标与待提交的字面字符段：
//   - 进入占位符段时提交字面字符段，随后每个占位符消费一个输入字符；
//   - 遇到字面字符时暂存；若下一个未消费的输入字符与之相同，视为输入已带有该字符并前移游标；
//   - 输入耗尽后遇到占位符即停止，只输出暂存段中由输入提供的部分；
//   - 模板扫描完毕时，暂存段整体输出。
func preserveTemplate(template string, tmpl []rune, value string, ph rune) string {
	if strings.HasPrefix(template, value) {
		return value
	}

	val := []rune(value)

	var buf strings.Builder
	buf.Grow(len(template))

	var section []rune
	matched := 0 // section 前 matched 个字符已由输入提供
	vi := 0
	inPlaceholders := false

	for _, ch := range tmpl {
		if ch == ph {
			if vi >= len(val) {
				buf.WriteString(string(section[:matched]))

				return buf.String()
			}
			if !inPlaceholders {
				buf.WriteString(string(section))
				section = section[:0]
				matched = 0
				inPlaceholders = true
			}
			buf.WriteRune(val[vi])
			vi++

			continue
		}

		inPlaceholders = false
		section = append(section, ch)
		if vi < len(val) && val[vi] == ch {
			vi++
			matched = len(section)
		}
	}

	buf.WriteString(string(section))

	return buf.String()
}
