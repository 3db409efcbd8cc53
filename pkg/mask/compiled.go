package mask

// Mask 预编译的模板，适合逐键调用。
//
// 创建后不可变，可在多个 goroutine 间共享。
type Mask struct {
	template string
	runes    []rune
	ph       rune
	preserve bool
	required int
}

// New 编译模板。
//
// opts 中的 [WithPlaceholder] 与 [WithPreserveTemplate] 作用于之后的每次 [Mask.Format]。
func New(template string, opts ...Option) *Mask {
	o := Options{Template: template}
	for _, opt := range opts {
		opt(&o)
	}

	runes := []rune(template)
	ph := o.placeholder()

	return &Mask{
		template: template,
		runes:    runes,
		ph:       ph,
		preserve: o.PreserveTemplate,
		required: countRunes(runes, ph),
	}
}

// Format 格式化输入值，语义同 [FormatString]。
func (m *Mask) Format(value string) string {
	if m.preserve {
		return preserveTemplate(m.template, m.runes, value, m.ph)
	}

	return fill(m.runes, []rune(value), m.ph, m.required)
}

// Template 返回原始模板。
func (m *Mask) Template() string { return m.template }

// Placeholder 返回生效的占位符。
func (m *Mask) Placeholder() rune { return m.ph }

// RequiredLength 返回占位符数量。
func (m *Mask) RequiredLength() int { return m.required }

// Validate 判断输入值是否足以填满全部占位符。
func (m *Mask) Validate(value string) Validation {
	return Validation{
		Value:          value,
		RequiredLength: m.required,
		Complete:       len([]rune(value)) >= m.required,
	}
}
