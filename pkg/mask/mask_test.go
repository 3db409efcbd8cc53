package mask_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251210-go-pkg-mask/pkg/mask"
)

const phoneUS = "+1 (xxx) xxx-xxxx"

func TestFormatString_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		opts mask.Options
		want string
	}{
		{
			name: "complete value",
			opts: mask.Options{Template: "xxx-xxxx", Value: "5551234"},
			want: "555-1234",
		},
		{
			name: "partial value drops trailing literal",
			opts: mask.Options{Template: "xxx-xxxx", Value: "555"},
			want: "555",
		},
		{
			name: "preserve already formatted value",
			opts: mask.Options{Template: phoneUS, Value: "+1 (713) 47", PreserveTemplate: true},
			want: "+1 (713) 47",
		},
		{
			name: "partial date",
			opts: mask.Options{Template: "xx/xx/xxxx", Value: "0101"},
			want: "01/01",
		},
		{
			name: "empty value keeps literal prefix",
			opts: mask.Options{Template: "ID-xxx", Value: ""},
			want: "ID-",
		},
		{
			name: "template without placeholders",
			opts: mask.Options{Template: "abc", Value: "z"},
			want: "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mask.FormatString(tt.opts))
		})
	}
}

func TestFormat_Fill(t *testing.T) {
	tests := []struct {
		name     string
		template string
		value    string
		want     string
	}{
		{name: "phone complete", template: phoneUS, value: "7134712345", want: "+1 (713) 471-2345"},
		{name: "extra value ignored", template: "xxx-xxxx", value: "555123499", want: "555-1234"},
		{name: "trailing literal kept when complete", template: "(xxx)", value: "123", want: "(123)"},
		{name: "value literals are plain characters", template: "xxx", value: "1-2", want: "1-2"},
		{name: "empty template", template: "", value: "abc", want: ""},
		{name: "empty template and value", template: "", value: "", want: ""},
		{name: "phone empty", template: phoneUS, value: "", want: "+1 ("},
		{name: "phone area code", template: phoneUS, value: "713", want: "+1 (713"},
		{name: "phone after area code", template: phoneUS, value: "7134", want: "+1 (713) 4"},
		{name: "mid template literal", template: "xxx-xxxx", value: "5551", want: "555-1"},
		{name: "date with year digit", template: "xx/xx/xxxx", value: "01012", want: "01/01/2"},
		{name: "prefix literal then value", template: "ID-xxx", value: "4", want: "ID-4"},
		{name: "trailing literal dropped when partial", template: "(xxx)", value: "12", want: "(12"},
		{name: "multibyte template", template: "№ xxx", value: "αβγ", want: "№ αβγ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mask.Format(tt.template, tt.value))
		})
	}
}

func TestFormat_Placeholder(t *testing.T) {
	assert.Equal(t, "12/31", mask.Format("##/##", "1231", mask.WithPlaceholder('#')))
	assert.Equal(t, "12", mask.Format("##/##", "12", mask.WithPlaceholder('#')))
	assert.Equal(t, "123-45", mask.Format("•••-••", "12345", mask.WithPlaceholder('•')))

	// 'x' 不再是占位符，按字面字符处理
	assert.Equal(t, "x1", mask.Format("x#", "1", mask.WithPlaceholder('#')))

	// 0 回退为默认占位符
	assert.Equal(t, "555-1234", mask.Format("xxx-xxxx", "5551234", mask.WithPlaceholder(0)))

	// 占位符不在模板中：所需长度为 0，模板原样返回
	assert.Equal(t, "xxx-xxxx", mask.Format("xxx-xxxx", "", mask.WithPlaceholder('#')))
}

func TestFormat_Preserve(t *testing.T) {
	preserve := mask.WithPreserveTemplate(true)

	tests := []struct {
		name     string
		template string
		value    string
		want     string
	}{
		{name: "literal prefix fast path", template: phoneUS, value: "+1 (", want: "+1 ("},
		{name: "empty value", template: phoneUS, value: "", want: ""},
		{name: "full formatted value", template: phoneUS, value: "+1 (713) 471-2345", want: "+1 (713) 471-2345"},
		{name: "raw digits complete", template: phoneUS, value: "7134712345", want: "+1 (713) 471-2345"},
		{name: "raw digits partial", template: phoneUS, value: "71347", want: "+1 (713) 47"},
		{name: "stops before unfillable placeholder", template: "xxx-xxxx", value: "555", want: "555"},
		{name: "typed literal kept", template: "xxx-xxxx", value: "555-", want: "555-"},
		{name: "only matched literals kept", template: "(xxx) xxx", value: "(713)", want: "(713)"},
		{name: "unmatched literals inserted", template: "(xxx) xxx", value: "7134", want: "(713) 4"},
		{name: "value longer than template", template: "xx", value: "123", want: "12"},
		{name: "template without placeholders", template: "abc", value: "z", want: "abc"},
		{name: "empty template", template: "", value: "5", want: ""},
		// 启发式对齐：输入中的 '1' 被当作 "+1" 的字面字符消费
		{name: "coincidental literal match", template: phoneUS, value: "1234", want: "+1 (234"},
		// 启发式对齐：'-' 落在占位符位置时按普通字符消费
		{name: "literal consumed as placeholder", template: "xxx-xxx", value: "12-", want: "12-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mask.Format(tt.template, tt.value, preserve))
		})
	}
}

func TestCountPlaceholders(t *testing.T) {
	assert.Equal(t, 10, mask.CountPlaceholders(phoneUS, 0))
	assert.Equal(t, 10, mask.CountPlaceholders(phoneUS, 'x'))
	assert.Equal(t, 0, mask.CountPlaceholders(phoneUS, '#'))
	assert.Equal(t, 0, mask.CountPlaceholders("", 0))
	assert.Equal(t, 3, mask.CountPlaceholders("•-••", '•'))
}

func TestValidate(t *testing.T) {
	v := mask.Validate("xx/xx/xxxx", "0101", 0)
	assert.Equal(t, mask.Validation{Value: "0101", RequiredLength: 8, Complete: false}, v)

	v = mask.Validate("xx/xx/xxxx", "01012000", 0)
	assert.True(t, v.Complete)

	v = mask.Validate("abc", "", 0)
	assert.True(t, v.Complete, "zero placeholders is always complete")

	v = mask.Validate("xxx", "αβγ", 0)
	assert.True(t, v.Complete, "length counts runes")
}

// 以下为对任意模板与输入都应成立的性质。

var propertyTemplates = []string{
	"",
	"abc",
	"xxx",
	"xxx-xxxx",
	"xx/xx/xxxx",
	"ID-xxx",
	"(xxx)",
	phoneUS,
	"x-x-x-",
	"--xx--xx--",
}

const propertyInput = "0123456789abcdef"

func TestProperties_Fill(t *testing.T) {
	for _, tmpl := range propertyTemplates {
		required := mask.CountPlaceholders(tmpl, 0)
		padded := propertyInput[:required]
		full := mask.Format(tmpl, padded)

		for n := 0; n <= len(propertyInput); n++ {
			value := propertyInput[:n]
			got := mask.Format(tmpl, value)

			assert.LessOrEqual(t, utf8.RuneCountInString(got), utf8.RuneCountInString(tmpl),
				"template %q value %q", tmpl, value)

			if n >= required {
				require.Len(t, got, len(tmpl), "template %q value %q", tmpl, value)
				vi := 0
				for i := range tmpl {
					if tmpl[i] == 'x' {
						assert.Equal(t, value[vi], got[i])
						vi++
					} else {
						assert.Equal(t, tmpl[i], got[i])
					}
				}

				continue
			}

			// 部分填充是完整填充的前缀，且不以尾随字面字符结尾
			assert.True(t, strings.HasPrefix(full, got), "template %q value %q got %q", tmpl, value, got)
			if n > 0 {
				assert.Equal(t, value[n-1], got[len(got)-1], "template %q value %q", tmpl, value)
			}
		}
	}
}

func TestProperties_PreserveIdempotent(t *testing.T) {
	preserve := mask.WithPreserveTemplate(true)

	for _, tmpl := range propertyTemplates {
		for n := 0; n <= len(propertyInput); n++ {
			once := mask.Format(tmpl, propertyInput[:n], preserve)
			twice := mask.Format(tmpl, once, preserve)
			assert.Equal(t, once, twice, "template %q value %q", tmpl, propertyInput[:n])
		}

		// 模板的任意前缀原样返回
		for i := range len(tmpl) + 1 {
			assert.Equal(t, tmpl[:i], mask.Format(tmpl, tmpl[:i], preserve))
		}
	}
}
