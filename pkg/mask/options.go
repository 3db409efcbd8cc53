package mask

// DefaultPlaceholder 默认占位符。
const DefaultPlaceholder = 'x'

// Options 单次格式化的全部输入。
type Options struct {
	Template         string // 模板，必填
	Value            string // 输入值
	Placeholder      rune   // 占位符，0 表示 DefaultPlaceholder
	PreserveTemplate bool   // 是否启用保留模式
}

// Option 格式化选项函数。
type Option func(*Options)

// WithPlaceholder 设置占位符。
//
// 传入 0 时回退为 [DefaultPlaceholder]。
//
// 示例：
//
//	mask.Format("##/##", "1231", mask.WithPlaceholder('#')) // "12/31"
func WithPlaceholder(r rune) Option {
	return func(o *Options) {
		o.Placeholder = r
	}
}

// WithPreserveTemplate 启用或关闭保留模式（见包文档）。
func WithPreserveTemplate(preserve bool) Option {
	return func(o *Options) {
		o.PreserveTemplate = preserve
	}
}

func (o Options) placeholder() rune {
	return placeholderOrDefault(o.Placeholder)
}

func placeholderOrDefault(r rune) rune {
	if r == 0 {
		return DefaultPlaceholder
	}

	return r
}
