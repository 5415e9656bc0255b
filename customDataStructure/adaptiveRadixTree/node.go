package adaptiveRadixTree

import (
	"fmt"
)

// artNode 树上所有节点的共同接口 具体类型只有 leaf node4 node16 node48 node256 五种
type artNode[T Value] interface {
	Node[T]

	// checkPrefix 从 key 的 depth 处开始和当前节点的前缀进行比较 返回能够匹配的字节数量
	//
	// 内部节点比较的是 key[depth...] 和 prefix[0...] 叶子节点比较的是 key[depth...] 和 prefix[depth...]
	checkPrefix(key Key, depth int) int
	prefixLength() int
	isLeaf() bool
}

// innerNode 内部节点的能力 四种内部节点的语义完全一致 只有存储方式和查找子节点的复杂度不同
type innerNode[T Value] interface {
	artNode[T]

	base() *nodePrototype[T]

	// findChild 按给定的字节 找到对应的子节点 找不到返回 nil
	findChild(c byte) artNode[T]
	// addChild 如果 c 已经有对应的子节点则原地替换 否则插入新的子节点 节点已满时调用属于程序错误
	addChild(c byte, child artNode[T])
	// deleteChild 删除 c 对应的子节点 节点已经处于下限时调用属于程序错误 是否向下转换由树来决定
	deleteChild(c byte)
	isFull() bool
	isLack() bool
	// grow 生成下一级更大的节点 前缀 子节点 zeroChild 全部转移过去 调用者负责用返回值替换自己
	grow() innerNode[T]
	// shrink 生成下一级更小的节点 node4 会直接返回唯一的子节点 并进行路径压缩
	shrink() artNode[T]
	// growChild 对 c 对应的(已满的)子节点执行 grow 并且把新节点放回原位
	growChild(c byte) artNode[T]
	// shrinkChild 对 c 对应的(低于下限的)子节点执行 shrink 并且把新节点放回原位
	shrinkChild(c byte) artNode[T]
	// forEachChild 按字节升序遍历带字节的子节点 不包括 zeroChild
	forEachChild(callback func(c byte, child artNode[T]) bool) bool
	truncPrefix(offset int)
}

// nodePrototype 四种内部节点共有的部分
type nodePrototype[T Value] struct {
	prefixLen   int
	prefix      []byte
	childrenNum uint16
	zeroChild   *leaf[T] // 这东西是给正好断在别的键的中间的键用的 比如说 apple 和 appleWatch apple对应的叶子节点就放在这
}

type leaf[T Value] struct {
	key   Key
	value T
}

// 内部节点公共方法

func (n *nodePrototype[T]) base() *nodePrototype[T] {
	return n
}

func (n *nodePrototype[T]) isLeaf() bool {
	return false
}

func (n *nodePrototype[T]) prefixLength() int {
	return n.prefixLen
}

func (n *nodePrototype[T]) checkPrefix(key Key, depth int) int {
	index, prefixIndex := depth, 0
	for index < len(key) && prefixIndex < n.prefixLen && key[index] == n.prefix[prefixIndex] {
		index++
		prefixIndex++
	}
	return index - depth
}

// resetPrefix 用给定的字节复制一份作为新的前缀
func (n *nodePrototype[T]) resetPrefix(prefix []byte) {
	if len(prefix) == 0 {
		n.prefix = nil
		n.prefixLen = 0
		return
	}
	n.prefix = make([]byte, len(prefix))
	copy(n.prefix, prefix)
	n.prefixLen = len(prefix)
}

// truncPrefix 去掉前缀的前 offset 个字节 保留 [offset, prefixLen)
//
// 在插入时拆分节点会用到 新的父节点拿走了共同的前缀和分叉的那个字节
func (n *nodePrototype[T]) truncPrefix(offset int) {
	if offset < 0 || offset > n.prefixLen {
		panic(fmt.Sprintf("truncate prefix out of range: offset %d, prefix length %d", offset, n.prefixLen))
	}
	n.resetPrefix(n.prefix[offset:n.prefixLen])
}

// copyMeta 将前缀 子节点数量和 zeroChild 从 src 中 copy 出来
func (n *nodePrototype[T]) copyMeta(src *nodePrototype[T]) {
	n.resetPrefix(src.prefix[:src.prefixLen])
	n.childrenNum = src.childrenNum
	n.zeroChild = src.zeroChild
}

// Node 接口实现

func (n *nodePrototype[T]) Prefix() []byte {
	if n.prefixLen == 0 {
		return nil
	}
	result := make([]byte, n.prefixLen)
	copy(result, n.prefix)
	return result
}

func (n *nodePrototype[T]) Key() Key {
	return nil
}

func (n *nodePrototype[T]) Value() (value T) {
	return
}

// 叶子节点函数

func (l *leaf[T]) Kind() Kind {
	return Leaf
}

func (l *leaf[T]) isLeaf() bool {
	return true
}

// prefixLength 叶子节点的前缀就是完整的键
func (l *leaf[T]) prefixLength() int {
	return len(l.key)
}

func (l *leaf[T]) checkPrefix(key Key, depth int) int {
	index := depth
	for index < len(key) && index < len(l.key) && key[index] == l.key[index] {
		index++
	}
	return index - depth
}

// checkKeyMatch 比较叶子节点存储的键和给定的键是否完全相同
func (l *leaf[T]) checkKeyMatch(key Key) bool {
	if len(key) != len(l.key) {
		return false
	}
	return l.checkPrefix(key, 0) == len(l.key)
}

// prefixMatchKey 检查给定的键是否为存储的键的前缀
func (l *leaf[T]) prefixMatchKey(keyPrefix Key) bool {
	if len(l.key) < len(keyPrefix) {
		return false
	}
	return l.checkPrefix(keyPrefix, 0) == len(keyPrefix)
}

func (l *leaf[T]) Prefix() []byte {
	return l.Key()
}

func (l *leaf[T]) Key() Key {
	result := make(Key, len(l.key))
	copy(result, l.key)
	return result
}

func (l *leaf[T]) Value() T {
	return l.value
}

func (l *leaf[T]) Children() []Edge[T] {
	return nil
}

// 类型判断和公共的子节点操作

// toInner 把节点转换成内部节点 节点类型不对说明树已经被破坏了 直接 panic
func toInner[T Value](node artNode[T]) innerNode[T] {
	switch n := node.(type) {
	case *node4[T]:
		return n
	case *node16[T]:
		return n
	case *node48[T]:
		return n
	case *node256[T]:
		return n
	case *leaf[T]:
		panic("leaf node can not be used as an inner node")
	default:
		panic(fmt.Sprintf("invalid node type: %T", node))
	}
}

// growChildOf growChild 的公共实现
func growChildOf[T Value](parent innerNode[T], c byte) artNode[T] {
	child := parent.findChild(c)
	if child == nil {
		return nil
	}
	inner := toInner(child)
	if !inner.isFull() {
		panic(fmt.Sprintf("grow a %s child which is not full", inner.Kind()))
	}
	grown := inner.grow()
	parent.addChild(c, grown)
	return grown
}

// shrinkChildOf shrinkChild 的公共实现
func shrinkChildOf[T Value](parent innerNode[T], c byte) artNode[T] {
	child := parent.findChild(c)
	if child == nil {
		return nil
	}
	inner := toInner(child)
	if !inner.isLack() {
		panic(fmt.Sprintf("shrink a %s child which is not lack", inner.Kind()))
	}
	shrunk := inner.shrink()
	parent.addChild(c, shrunk)
	return shrunk
}

// deleteZeroChildOf 删除内部节点的 zeroChild 并返回被删掉的叶子节点 和 deleteChild 一样 不能对 lack 的节点删除
func deleteZeroChildOf[T Value](n innerNode[T]) *leaf[T] {
	if n.isLack() {
		panic(fmt.Sprintf("delete zero child from a lack %s", n.Kind()))
	}
	zeroChild := n.base().zeroChild
	n.base().zeroChild = nil
	return zeroChild
}

// innerEdges 把内部节点的子节点整理成升序的边 zeroChild 在最前面
func innerEdges[T Value](n innerNode[T]) []Edge[T] {
	edges := make([]Edge[T], 0, int(n.base().childrenNum)+1)
	if zeroChild := n.base().zeroChild; zeroChild != nil {
		edges = append(edges, Edge[T]{Terminal: true, Node: zeroChild})
	}
	n.forEachChild(func(c byte, child artNode[T]) bool {
		edges = append(edges, Edge[T]{Index: c, Node: child})
		return true
	})
	return edges
}

// orderedChildren 和 innerEdges 一样的顺序 只不过不包装成边
func orderedChildren[T Value](n innerNode[T]) []artNode[T] {
	children := make([]artNode[T], 0, int(n.base().childrenNum)+1)
	if zeroChild := n.base().zeroChild; zeroChild != nil {
		children = append(children, zeroChild)
	}
	n.forEachChild(func(_ byte, child artNode[T]) bool {
		children = append(children, child)
		return true
	})
	return children
}

// findMinimumKey 找到字典序最小的键所对应的叶子节点
func findMinimumKey[T Value](node artNode[T]) *leaf[T] {
	for node != nil {
		if l, ok := node.(*leaf[T]); ok {
			return l
		}
		inner := toInner(node)
		if zeroChild := inner.base().zeroChild; zeroChild != nil {
			return zeroChild
		}
		var next artNode[T]
		inner.forEachChild(func(_ byte, child artNode[T]) bool {
			next = child
			return false
		})
		node = next
	}
	return nil
}

// findMaximumKey 找到字典序最大的键所对应的叶子节点
func findMaximumKey[T Value](node artNode[T]) *leaf[T] {
	for node != nil {
		if l, ok := node.(*leaf[T]); ok {
			return l
		}
		inner := toInner(node)
		var next artNode[T]
		inner.forEachChild(func(_ byte, child artNode[T]) bool {
			next = child
			return true
		})
		if next == nil {
			return inner.base().zeroChild
		}
		node = next
	}
	return nil
}
