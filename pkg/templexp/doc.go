// Package templexp 提供配置文本的 Shell 参数展开。
//
// 只识别 ${...} 语法（不解析 $VAR），用于在 YAML/JSON 配置中引用环境变量，
// 例如在掩码预设里引用区号：
//
//	presets:
//	  office: "+${COUNTRY_CODE:-1} (xxx) xxx-xxxx"
//
// # 支持语法
//
//   - ${VAR} - 变量替换，未设置时为空
//   - ${VAR:-word} / ${VAR-word} - 回退值
//   - ${VAR:+word} / ${VAR+word} - 替代值
//   - ${VAR:?msg} / ${VAR?msg} - 必填校验，失败时返回 error
//   - "$$" - 字面量 "$"
//
// 带冒号的形式把空值视为未设置。word 中可以继续嵌套 ${...}。
// 无法识别的表达式保持原样。
//
// 注意：占位符 'x' 与 "$" 无关，模板中的 'x' 不会被展开。
package templexp
