package mask_test

import (
	"fmt"

	"github.com/lwmacct/251210-go-pkg-mask/pkg/mask"
)

// Example_format 演示填充模式。
func Example_format() {
	fmt.Println(mask.Format("xxx-xxxx", "5551234"))
	fmt.Println(mask.Format("xxx-xxxx", "555"))
	fmt.Println(mask.Format("ID-xxx", ""))

	// Output:
	// 555-1234
	// 555
	// ID-
}

// Example_preserveTemplate 演示保留模式：已格式化的输入不会被重复插入字面字符。
func Example_preserveTemplate() {
	result := mask.FormatString(mask.Options{
		Template:         "+1 (xxx) xxx-xxxx",
		Value:            "+1 (713) 47",
		PreserveTemplate: true,
	})
	fmt.Println(result)

	// Output:
	// +1 (713) 47
}

// Example_keystrokes 演示逐键格式化。
func Example_keystrokes() {
	m := mask.New("xx/xx/xxxx")

	typed := "01022024"
	for i := 1; i <= len(typed); i++ {
		fmt.Println(m.Format(typed[:i]))
	}

	// Output:
	// 0
	// 01
	// 01/0
	// 01/02
	// 01/02/2
	// 01/02/20
	// 01/02/202
	// 01/02/2024
}

// Example_placeholder 演示自定义占位符。
func Example_placeholder() {
	fmt.Println(mask.Format("####-####", "12345678", mask.WithPlaceholder('#')))

	// Output:
	// 1234-5678
}
