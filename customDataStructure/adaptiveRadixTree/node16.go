package adaptiveRadixTree

import (
	"fmt"
	"math/bits"
)

// node16 最多16个子节点 和 node4 一样 keys 按升序存放
//
// 查找时对16个字节同时比较 比较结果放进一个位域里 再用子节点数量生成的掩码过滤掉无效的部分
// 位域中最低的那个1就是要找的位置
type node16[T Value] struct {
	nodePrototype[T]
	keys     [node16Max]byte
	children [node16Max]artNode[T]
}

func (n *node16[T]) Kind() Kind {
	return Node16
}

func (n *node16[T]) Children() []Edge[T] {
	return innerEdges[T](n)
}

// mask 当前子节点数量对应的有效位掩码
func (n *node16[T]) mask() uint {
	return (uint(1) << n.childrenNum) - 1
}

// index 按给定的字节 寻找其子节点在 children 数组中的位置 找不到返回 -1
func (n *node16[T]) index(c byte) int {
	bitfield := uint(0)
	for i := uint(0); i < node16Max; i++ {
		if n.keys[i] == c {
			bitfield |= 1 << i
		}
	}
	bitfield &= n.mask()
	if bitfield != 0 {
		return bits.TrailingZeros(bitfield)
	}
	return -1
}

// lowerBound 第一个不小于 c 的字节的位置 全都比 c 小则返回子节点数量
func (n *node16[T]) lowerBound(c byte) int {
	bitfield := uint(0)
	for i := uint(0); i < node16Max; i++ {
		if n.keys[i] >= c {
			bitfield |= 1 << i
		}
	}
	bitfield &= n.mask()
	if bitfield != 0 {
		return bits.TrailingZeros(bitfield)
	}
	return int(n.childrenNum)
}

func (n *node16[T]) findChild(c byte) artNode[T] {
	if i := n.index(c); i >= 0 {
		return n.children[i]
	}
	return nil
}

func (n *node16[T]) addChild(c byte, child artNode[T]) {
	size := int(n.childrenNum)
	i := n.lowerBound(c)
	if i < size && n.keys[i] == c {
		n.children[i] = child
		return
	}
	if n.isFull() {
		panic("add child to a full node16")
	}

	copy(n.keys[i+1:size+1], n.keys[i:size])
	copy(n.children[i+1:size+1], n.children[i:size])
	n.keys[i] = c
	n.children[i] = child
	n.childrenNum += 1
}

func (n *node16[T]) deleteChild(c byte) {
	if n.isLack() {
		panic("delete child from a lack node16")
	}
	i := n.index(c)
	if i < 0 {
		return
	}

	size := int(n.childrenNum)
	copy(n.keys[i:size-1], n.keys[i+1:size])
	copy(n.children[i:size-1], n.children[i+1:size])
	n.keys[size-1] = 0
	n.children[size-1] = nil
	n.childrenNum -= 1
}

func (n *node16[T]) isFull() bool {
	return n.childrenNum == node16Max
}

func (n *node16[T]) isLack() bool {
	return n.childrenNum < node16Min
}

func (n *node16[T]) grow() innerNode[T] {
	newNode := newNode48[T](nil)
	newNode.copyMeta(&n.nodePrototype)
	for i := 0; i < int(n.childrenNum); i++ {
		newNode.children[i] = n.children[i]
		newNode.isExist.set1(i)
		newNode.keys[n.keys[i]] = byte(i + 1)
	}
	return newNode
}

func (n *node16[T]) shrink() artNode[T] {
	if !n.isLack() {
		panic(fmt.Sprintf("shrink a node16 with %d children", n.childrenNum))
	}
	newNode := newNode4[T](nil)
	newNode.copyMeta(&n.nodePrototype)
	copy(newNode.keys[:], n.keys[:n.childrenNum])
	copy(newNode.children[:], n.children[:n.childrenNum])
	return newNode
}

func (n *node16[T]) growChild(c byte) artNode[T] {
	return growChildOf[T](n, c)
}

func (n *node16[T]) shrinkChild(c byte) artNode[T] {
	return shrinkChildOf[T](n, c)
}

func (n *node16[T]) forEachChild(callback func(c byte, child artNode[T]) bool) bool {
	for i := 0; i < int(n.childrenNum); i++ {
		if !callback(n.keys[i], n.children[i]) {
			return false
		}
	}
	return true
}
