package adaptiveRadixTree

import (
	"math/bits"
	"strings"
)

// bitmap 对位图进行封装 把读写逻辑都封进来
// 其底层为 uint16 的切片 node48 用它记录 children 数组中哪些槽位已经被占用
type bitmap struct {
	data            []uint16
	effectiveLength int
}

// newBitmap 获取一个新的 bitmap length 用于指定 bitmap 的有效长度
//
// 如果 length 不足16也是用 uint16 进行存储
func newBitmap(length int) *bitmap {
	arrayLength := length / 16
	if length%16 != 0 {
		arrayLength += 1
	}
	return &bitmap{
		data:            make([]uint16, arrayLength),
		effectiveLength: length,
	}
}

// set1 将指定的数位设置为1 如果指定的数位超过了初始化 bitmap 时指定的长度 将不做任何操作
func (b *bitmap) set1(index int) {
	if index < 0 || index >= b.effectiveLength {
		return
	}
	b.data[index/16] |= 1 << (index % 16)
}

// set0 将指定的数位设置为0 如果指定的数位超过了初始化 bitmap 时指定的长度 将不做任何操作
func (b *bitmap) set0(index int) {
	if index < 0 || index >= b.effectiveLength {
		return
	}
	b.data[index/16] &^= 1 << (index % 16)
}

// get 指定数位是否为1 如果指定的数位超过了初始化直接返回 false
func (b *bitmap) get(index int) bool {
	if index < 0 || index >= b.effectiveLength {
		return false
	}
	return (b.data[index/16] & (1 << (index % 16))) != 0
}

// getNum 获取当前位图中数位为1的位的数量
func (b *bitmap) getNum() int {
	count := 0
	for i := range b.data {
		count += bits.OnesCount16(b.data[i])
	}
	return count
}

// firstZero 从低位开始线性查找第一个为0的数位 全满时返回 -1
func (b *bitmap) firstZero() int {
	for i := range b.data {
		if b.data[i] == 0xFFFF {
			continue
		}
		index := i*16 + bits.TrailingZeros16(^b.data[i])
		if index >= b.effectiveLength {
			return -1
		}
		return index
	}
	return -1
}

func (b *bitmap) string() string {
	strBuilder := &strings.Builder{}
	for i := range b.data {
		if b.data[i] == 0 {
			strBuilder.WriteString("0 ")
		} else {
			strBuilder.WriteString(numToBinIncludeLeadingZero(b.data[i]))
			strBuilder.WriteString(" ")
		}
	}

	return strBuilder.String()
}
