package adaptiveRadixTree

import (
	"fmt"
)

// numToBinIncludeLeadingZero 将传入的数字转换成带前导0的长度16的二进制表示的字符串
func numToBinIncludeLeadingZero(n uint16) string {
	return fmt.Sprintf("%016b", n)
}
