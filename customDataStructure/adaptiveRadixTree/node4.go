package adaptiveRadixTree

import (
	"fmt"
)

// node4 最多4个子节点 keys 和 children 是两个平行的数组 keys 按升序存放 查找时直接线性扫描
type node4[T Value] struct {
	nodePrototype[T]
	keys     [node4Max]byte
	children [node4Max]artNode[T]
}

func (n *node4[T]) Kind() Kind {
	return Node4
}

func (n *node4[T]) Children() []Edge[T] {
	return innerEdges[T](n)
}

// index 按给定的字节 寻找其子节点在 children 数组中的位置 找不到返回 -1
func (n *node4[T]) index(c byte) int {
	for i := 0; i < int(n.childrenNum); i++ {
		if n.keys[i] == c {
			return i
		}
	}
	return -1
}

func (n *node4[T]) findChild(c byte) artNode[T] {
	if i := n.index(c); i >= 0 {
		return n.children[i]
	}
	return nil
}

func (n *node4[T]) addChild(c byte, child artNode[T]) {
	size := int(n.childrenNum)

	// 找到插入的位置
	i := 0
	for i < size && c > n.keys[i] {
		i++
	}
	if i < size && n.keys[i] == c {
		n.children[i] = child
		return
	}
	if n.isFull() {
		panic("add child to a full node4")
	}

	// 该位置之后的内容全部后移 保持存储的字典序
	copy(n.keys[i+1:size+1], n.keys[i:size])
	copy(n.children[i+1:size+1], n.children[i:size])
	n.keys[i] = c
	n.children[i] = child
	n.childrenNum += 1
}

func (n *node4[T]) deleteChild(c byte) {
	if n.isLack() {
		panic("delete child from a lack node4")
	}
	i := n.index(c)
	if i < 0 {
		return
	}

	// 子节点和对应的值前移 维护子节点的字典序
	size := int(n.childrenNum)
	copy(n.keys[i:size-1], n.keys[i+1:size])
	copy(n.children[i:size-1], n.children[i+1:size])
	n.keys[size-1] = 0
	n.children[size-1] = nil
	n.childrenNum -= 1
}

func (n *node4[T]) isFull() bool {
	return n.childrenNum == node4Max
}

// isLack 对于 node4 来说 zeroChild 也要纳入统计
//
// childrenNum 为1时有可能 zeroChild 为空 该节点下确实只有一个子节点 可以进行路径压缩
// 也有可能 zeroChild 还有一个子节点 加起来一共俩子节点 这时候合并必然丢失其中一个
func (n *node4[T]) isLack() bool {
	total := int(n.childrenNum)
	if n.zeroChild != nil {
		total += 1
	}
	return total <= node4Min
}

func (n *node4[T]) grow() innerNode[T] {
	newNode := newNode16[T](nil)
	newNode.copyMeta(&n.nodePrototype)
	copy(newNode.keys[:], n.keys[:n.childrenNum])
	copy(newNode.children[:], n.children[:n.childrenNum])
	return newNode
}

// shrink node4 没有更小的节点了 它会和唯一的子节点进行合并
//
// 如果唯一的子节点是内部节点 需要把 当前前缀 + 子节点对应的字节 + 子节点的前缀 拼成子节点的新前缀
// 如果唯一的子节点是叶子节点 叶子节点存的是完整的键 直接返回即可
func (n *node4[T]) shrink() artNode[T] {
	if !n.isLack() {
		panic(fmt.Sprintf("shrink a node4 with %d children", n.childrenNum))
	}
	if n.childrenNum == 0 {
		if n.zeroChild == nil {
			panic("shrink an empty node4")
		}
		return n.zeroChild
	}

	child := n.children[0]
	if child.isLeaf() {
		return child
	}

	inner := toInner(child)
	childNode := inner.base()
	newPrefix := make([]byte, 0, n.prefixLen+1+childNode.prefixLen)
	newPrefix = append(newPrefix, n.prefix[:n.prefixLen]...)
	newPrefix = append(newPrefix, n.keys[0])
	newPrefix = append(newPrefix, childNode.prefix[:childNode.prefixLen]...)
	childNode.resetPrefix(newPrefix)
	return inner
}

func (n *node4[T]) growChild(c byte) artNode[T] {
	return growChildOf[T](n, c)
}

func (n *node4[T]) shrinkChild(c byte) artNode[T] {
	return shrinkChildOf[T](n, c)
}

func (n *node4[T]) forEachChild(callback func(c byte, child artNode[T]) bool) bool {
	for i := 0; i < int(n.childrenNum); i++ {
		if !callback(n.keys[i], n.children[i]) {
			return false
		}
	}
	return true
}
