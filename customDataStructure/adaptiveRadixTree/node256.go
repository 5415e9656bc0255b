package adaptiveRadixTree

import (
	"fmt"
)

// node256 直接以字节为索引存放子节点 为 nil 说明该字节没有子节点
type node256[T Value] struct {
	nodePrototype[T]
	children [node256Max]artNode[T]
}

func (n *node256[T]) Kind() Kind {
	return Node256
}

func (n *node256[T]) Children() []Edge[T] {
	return innerEdges[T](n)
}

func (n *node256[T]) findChild(c byte) artNode[T] {
	return n.children[c]
}

// addChild 这里不会再向上转换 字节也就256个 不会存不下
func (n *node256[T]) addChild(c byte, child artNode[T]) {
	if n.children[c] == nil {
		n.childrenNum += 1
	}
	n.children[c] = child
}

func (n *node256[T]) deleteChild(c byte) {
	if n.isLack() {
		panic("delete child from a lack node256")
	}
	if n.children[c] != nil {
		n.children[c] = nil
		n.childrenNum -= 1
	}
}

// isFull node256 已经覆盖了所有的字节 永远不会因为满了而向上转换
func (n *node256[T]) isFull() bool {
	return false
}

func (n *node256[T]) isLack() bool {
	return n.childrenNum < node256Min
}

func (n *node256[T]) grow() innerNode[T] {
	panic("node256 can not grow")
}

func (n *node256[T]) shrink() artNode[T] {
	if !n.isLack() {
		panic(fmt.Sprintf("shrink a node256 with %d children", n.childrenNum))
	}
	newNode := newNode48[T](nil)
	newNode.copyMeta(&n.nodePrototype)
	newNode.childrenNum = 0 // 重新开始计子节点的数量
	for c, child := range n.children {
		if child != nil {
			newNode.children[newNode.childrenNum] = child
			newNode.isExist.set1(int(newNode.childrenNum))
			newNode.keys[c] = byte(newNode.childrenNum + 1)
			newNode.childrenNum += 1
		}
	}
	return newNode
}

func (n *node256[T]) growChild(c byte) artNode[T] {
	return growChildOf[T](n, c)
}

func (n *node256[T]) shrinkChild(c byte) artNode[T] {
	return shrinkChildOf[T](n, c)
}

func (n *node256[T]) forEachChild(callback func(c byte, child artNode[T]) bool) bool {
	for c, child := range n.children {
		if child != nil {
			if !callback(byte(c), child) {
				return false
			}
		}
	}
	return true
}
