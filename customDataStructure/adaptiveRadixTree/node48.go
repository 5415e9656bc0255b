package adaptiveRadixTree

import (
	"fmt"
)

// node48 最多48个子节点
//
// keys 是一个长度256的数组 以字节为索引 存放的是子节点在 children 数组中的位置+1 为0说明该字节没有子节点
// children 里的槽位由 isExist 记录是否被占用 删除子节点时不会整理 children 数组 所以槽位可能是不连续的
type node48[T Value] struct {
	nodePrototype[T]
	keys     [node256Max]byte
	children [node48Max]artNode[T]
	isExist  *bitmap
}

func (n *node48[T]) Kind() Kind {
	return Node48
}

func (n *node48[T]) Children() []Edge[T] {
	return innerEdges[T](n)
}

func (n *node48[T]) findChild(c byte) artNode[T] {
	if index := n.keys[c]; index != 0 {
		return n.children[index-1]
	}
	return nil
}

func (n *node48[T]) addChild(c byte, child artNode[T]) {
	if index := n.keys[c]; index != 0 {
		n.children[index-1] = child
		return
	}
	if n.isFull() {
		panic("add child to a full node48")
	}
	if n.isExist.getNum() != int(n.childrenNum) {
		panic(fmt.Sprintf("node48 has %d children but bitmap is %s", n.childrenNum, n.isExist.string()))
	}

	// 线性查找第一个空的槽位
	slot := n.isExist.firstZero()
	if slot < 0 {
		panic(fmt.Sprintf("node48 has %d children but no free slot", n.childrenNum))
	}
	n.children[slot] = child
	n.isExist.set1(slot)
	n.keys[c] = byte(slot + 1)
	n.childrenNum += 1
}

func (n *node48[T]) deleteChild(c byte) {
	if n.isLack() {
		panic("delete child from a lack node48")
	}
	index := n.keys[c]
	if index == 0 {
		return
	}
	if !n.isExist.get(int(index - 1)) {
		panic(fmt.Sprintf("node48 slot %d of byte %d is not occupied", index-1, c))
	}
	n.children[index-1] = nil
	n.isExist.set0(int(index - 1))
	n.keys[c] = 0
	n.childrenNum -= 1
}

func (n *node48[T]) isFull() bool {
	return n.childrenNum == node48Max
}

func (n *node48[T]) isLack() bool {
	return n.childrenNum < node48Min
}

func (n *node48[T]) grow() innerNode[T] {
	newNode := newNode256[T](nil)
	newNode.copyMeta(&n.nodePrototype)
	for c := 0; c < node256Max; c++ {
		if index := n.keys[c]; index != 0 {
			newNode.children[c] = n.children[index-1]
		}
	}
	return newNode
}

// shrink 按字节从小到大把子节点搬进 node16 这样 node16 的 keys 天然就是有序的
func (n *node48[T]) shrink() artNode[T] {
	if !n.isLack() {
		panic(fmt.Sprintf("shrink a node48 with %d children", n.childrenNum))
	}
	newNode := newNode16[T](nil)
	newNode.copyMeta(&n.nodePrototype)
	newNode.childrenNum = 0 // 重新开始计子节点的数量
	for c := 0; c < node256Max; c++ {
		if index := n.keys[c]; index != 0 {
			newNode.keys[newNode.childrenNum] = byte(c)
			newNode.children[newNode.childrenNum] = n.children[index-1]
			newNode.childrenNum += 1
		}
	}
	return newNode
}

func (n *node48[T]) growChild(c byte) artNode[T] {
	return growChildOf[T](n, c)
}

func (n *node48[T]) shrinkChild(c byte) artNode[T] {
	return shrinkChildOf[T](n, c)
}

func (n *node48[T]) forEachChild(callback func(c byte, child artNode[T]) bool) bool {
	for c := 0; c < node256Max; c++ {
		if index := n.keys[c]; index != 0 {
			if !callback(byte(c), n.children[index-1]) {
				return false
			}
		}
	}
	return true
}
