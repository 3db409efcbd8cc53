// Package mask 提供输入掩码格式化（如电话号码、日期的逐键格式化）。
//
// 模板由占位符（默认 'x'）与字面字符组成，例如 "+1 (xxx) xxx-xxxx"。
// 格式化时占位符依次被输入值的字符替换，字面字符原样保留。
// 所有函数均为纯函数：不做 I/O、不返回 error、不会 panic，可并发调用。
//
// # 两种模式
//
//  1. 填充模式（默认）：把原始输入（如 "7134712345"）填入模板。
//     输入不足时在第一个无法填充的占位符处截断，且不输出其前方的尾随字面字符。
//  2. 保留模式（[WithPreserveTemplate]）：输入可能已经是上一轮格式化的结果，
//     与模板对齐后只补齐必要的字面字符，不会重复插入。
//
// # 快速开始
//
//	mask.Format("xxx-xxxx", "5551234")  // "555-1234"
//	mask.Format("xxx-xxxx", "555")      // "555"
//
//	mask.Format("+1 (xxx) xxx-xxxx", "+1 (713) 47",
//	    mask.WithPreserveTemplate(true),
//	) // "+1 (713) 47"
//
// 同一模板需要反复格式化时（每次按键），使用 [New] 预编译：
//
//	m := mask.New("xx/xx/xxxx")
//	m.Format("0101") // "01/01"
//
// # 已知边界
//
// 保留模式用"下一个未消费的输入字符是否等于当前字面字符"判断输入中是否已带有该字面字符。
// 这是启发式对齐而非解析：当输入字符恰好与无关的字面字符相同时可能错位。
//
// 长度均按 rune 计算。
package mask
