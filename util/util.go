package util

import (
	"fmt"
	"strconv"
	"strings"
)

// TurnByteArrayToString 将byte数组转换为string 更好的判断问题所在
func TurnByteArrayToString(input []byte) string {
	result := ""
	for _, v := range input {
		result += strconv.Itoa(int(v)) + " "
	}
	return result
}

// isPrintable 只把可见的 ASCII 字符原样显示
func isPrintable(c byte) bool {
	return c >= 0x20 && c <= 0x7E
}

// RenderByte 将单个字节转换为 数值(字符) 的形式 不可见字符只显示数值
func RenderByte(c byte) string {
	if isPrintable(c) {
		return strconv.Itoa(int(c)) + "(" + string(c) + ")"
	}
	return strconv.Itoa(int(c))
}

// RenderKey 将键转换为可读的字符串 不可见字符以 \xNN 的形式显示
func RenderKey(key []byte) string {
	builder := &strings.Builder{}
	for _, c := range key {
		if isPrintable(c) && c != '\\' {
			builder.WriteByte(c)
		} else {
			fmt.Fprintf(builder, "\\x%02x", c)
		}
	}
	return builder.String()
}
