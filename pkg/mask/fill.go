package mask

import "strings"

// fillComplete 原位替换占位符，结果长度与模板一致。
//
// 输入值视为连续的替换字符池，按顺序每个占位符消费一个；
// 多余的输入字符被忽略。
func fillComplete(tmpl, value []rune, ph rune) string {
	out := make([]rune, len(tmpl))
	copy(out, tmpl)

	vi := 0
	for i := 0; i < len(out) && vi < len(value); i++ {
		if out[i] == ph {
			out[i] = value[vi]
			vi++
		}
	}

	return string(out)
}

// fillPartial 从左到右填充，在第一个无法填充的占位符处停止。
//
// 字面字符先暂存，只有其后的占位符被填充时才写出，
// 因此结果以最后一个已填充的占位符结尾（"555" 而不是 "555-"）。
// 一个占位符都未填充时保留模板开头的字面前缀（"ID-"）。
func fillPartial(tmpl, value []rune, ph rune) string {
	var buf strings.Builder
	buf.Grow(len(tmpl))

	pending := 0 // 暂存字面字符在 tmpl 中的起点
	pendingLen := 0
	vi := 0
	for i, ch := range tmpl {
		if ch != ph {
			if pendingLen == 0 {
				pending = i
			}
			pendingLen++
			continue
		}

		if vi >= len(value) {
			if vi == 0 {
				buf.WriteString(string(tmpl[pending : pending+pendingLen]))
			}

			return buf.String()
		}

		buf.WriteString(string(tmpl[pending : pending+pendingLen]))
		pendingLen = 0
		buf.WriteRune(value[vi])
		vi++
	}

	buf.WriteString(string(tmpl[pending : pending+pendingLen]))

	return buf.String()
}
