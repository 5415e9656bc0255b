package adaptiveRadixTree

import (
	"fmt"
)

type tree[T Value] struct {
	version int // 给迭代器用的 记录树经过多少次修改
	// 准确来说是树的结构经过多少次修改 因为更新值并不会使 version + 1

	root artNode[T]
	size int
}

var _ Tree[int] = &tree[int]{}

// New 获取一棵新的树
func New[T Value]() Tree[T] {
	return newTree[T]()
}

func newTree[T Value]() *tree[T] {
	return &tree[T]{}
}

// Search 根据指定的键寻找对应的值
//
// 每经过一个内部节点 前缀必须完整匹配 不完整直接返回 KeyNotExist 最后在叶子节点处比较完整的键
func (t *tree[T]) Search(key Key) (value T, rc RC) {
	if t == nil {
		return value, InternalFailure
	}

	current := t.root
	depth := 0
	for current != nil {
		if currentLeaf, ok := current.(*leaf[T]); ok {
			if currentLeaf.checkKeyMatch(key) {
				return currentLeaf.value, Success
			}
			return value, KeyNotExist
		}

		currentNode := toInner(current)
		prefixLen := currentNode.prefixLength()
		if currentNode.checkPrefix(key, depth) != prefixLen {
			return value, KeyNotExist
		}
		depth += prefixLen

		// 键在当前节点处正好结束 只可能存在 zeroChild 中
		if depth == len(key) {
			zeroChild := currentNode.base().zeroChild
			if zeroChild != nil && zeroChild.checkKeyMatch(key) {
				return zeroChild.value, Success
			}
			return value, KeyNotExist
		}

		current = currentNode.findChild(key[depth])
		depth += 1
	}

	return value, KeyNotExist
}

// Insert 根据指定的键插入新值 如果键在树中已经有值 就更新值
//
// 循环向下查找的过程中记录上一个节点和通往当前节点的字节 最多只会发生一次拆分
// 需要添加子节点而当前节点已满时 通过上一个节点的 growChild 对当前节点进行向上转换 没有上一个节点说明当前节点是根节点
func (t *tree[T]) Insert(key Key, value T) RC {
	if t == nil {
		return InternalFailure
	}

	newLeafNode := newLeaf[T](key, value)
	if t.root == nil {
		t.root = newLeafNode
		t.structureChanged(1)
		return Success
	}

	var (
		prev      innerNode[T]
		prevIndex byte
		current   = t.root
		depth     = 0
	)
	for {
		requiredLen := current.prefixLength()
		matchLen := current.checkPrefix(key, depth)
		currentLeaf, isLeaf := current.(*leaf[T])
		if isLeaf {
			// 叶子节点存的是完整的键
			requiredLen -= depth
		}

		// 前缀不匹配 或者叶子节点的键和给定的键长度不一致 需要拆分
		if matchLen != requiredLen || (isLeaf && matchLen != len(key)-depth) {
			t.split(prev, prevIndex, current, newLeafNode, depth, matchLen)
			t.structureChanged(1)
			return Success
		}

		// 键已经存在 更新值
		if isLeaf {
			currentLeaf.value = value
			return Success
		}

		currentNode := toInner(current)
		depth += matchLen

		if depth == len(key) {
			if zeroChild := currentNode.base().zeroChild; zeroChild != nil {
				zeroChild.value = value
				return Success
			}
			currentNode.base().zeroChild = newLeafNode
			t.structureChanged(1)
			return Success
		}

		next := currentNode.findChild(key[depth])
		if next == nil {
			// 找到了插入的位置
			if currentNode.isFull() {
				if prev != nil {
					currentNode = toInner(prev.growChild(prevIndex))
				} else {
					currentNode = currentNode.grow()
					t.root = currentNode
				}
			}
			currentNode.addChild(key[depth], newLeafNode)
			t.structureChanged(1)
			return Success
		}

		prev, prevIndex = currentNode, key[depth]
		current = next
		depth += 1
	}
}

// split 在 current 的前缀中(或者叶子节点的键中)出现了分叉 生成一个新的 node4 持有共同的前缀 替换掉 current 的位置
//
// 新的叶子节点和 current 分别以各自分叉处的字节作为 node4 的子节点 如果某个键正好在分叉处结束 就作为 zeroChild
func (t *tree[T]) split(prev innerNode[T], prevIndex byte, current artNode[T], newLeafNode *leaf[T], depth int, matchLen int) {
	key := newLeafNode.key
	splitNode := newNode4[T](key[depth : depth+matchLen])
	diverge := depth + matchLen

	if diverge == len(key) {
		splitNode.zeroChild = newLeafNode
	} else {
		splitNode.addChild(key[diverge], newLeafNode)
	}

	switch currentNode := current.(type) {
	case *leaf[T]:
		if diverge == len(currentNode.key) {
			if splitNode.zeroChild != nil {
				panic(fmt.Sprintf("split two identical keys: %q", key))
			}
			splitNode.zeroChild = currentNode
		} else {
			splitNode.addChild(currentNode.key[diverge], currentNode)
		}
	default:
		inner := toInner(current)
		index := inner.base().prefix[matchLen]
		inner.truncPrefix(matchLen + 1)
		splitNode.addChild(index, inner)
	}

	if prev != nil {
		prev.addChild(prevIndex, splitNode)
	} else {
		t.root = splitNode
	}
}

// Remove 根据指定的键删除对应的值 并且返回被删除的值
//
// 向下查找时多看一步 要删除的叶子节点是下一个节点时 在当前节点处删除它 再检查当前节点是否需要向下转换
func (t *tree[T]) Remove(key Key) (value T, rc RC) {
	if t == nil {
		return value, InternalFailure
	}
	if t.root == nil {
		return value, KeyNotExist
	}

	// 根节点就是叶子节点
	if rootLeaf, ok := t.root.(*leaf[T]); ok {
		if rootLeaf.checkKeyMatch(key) {
			t.root = nil
			t.structureChanged(-1)
			return rootLeaf.value, Success
		}
		return value, KeyNotExist
	}

	var (
		prev      innerNode[T]
		prevIndex byte
		current   = toInner(t.root)
		depth     = 0
	)
	for {
		prefixLen := current.prefixLength()
		if current.checkPrefix(key, depth) != prefixLen {
			return value, KeyNotExist
		}
		depth += prefixLen

		if depth == len(key) {
			zeroChild := current.base().zeroChild
			if zeroChild == nil || !zeroChild.checkKeyMatch(key) {
				return value, KeyNotExist
			}
			deleteZeroChildOf(current)
			t.shrinkIfLack(prev, prevIndex, current)
			t.structureChanged(-1)
			return zeroChild.value, Success
		}

		next := current.findChild(key[depth])
		if next == nil {
			return value, KeyNotExist
		}

		if nextLeaf, ok := next.(*leaf[T]); ok {
			if !nextLeaf.checkKeyMatch(key) {
				return value, KeyNotExist
			}
			current.deleteChild(key[depth])
			t.shrinkIfLack(prev, prevIndex, current)
			t.structureChanged(-1)
			return nextLeaf.value, Success
		}

		prev, prevIndex = current, key[depth]
		current = toInner(next)
		depth += 1
	}
}

// shrinkIfLack 删除子节点之后 如果 current 低于下限 就进行向下转换 并替换掉它原来的位置
func (t *tree[T]) shrinkIfLack(prev innerNode[T], prevIndex byte, current innerNode[T]) {
	if !current.isLack() {
		return
	}
	if prev != nil {
		prev.shrinkChild(prevIndex)
	} else {
		t.root = current.shrink()
	}
}

// structureChanged 树的结构发生变动 delta 为键值对数量的变化
func (t *tree[T]) structureChanged(delta int) {
	t.version += 1
	t.size += delta
}

// Minimum 获取当前树上字典序最小的键所对应的值
func (t *tree[T]) Minimum() (min T, isFound bool) {
	if t == nil || t.root == nil {
		return
	}
	leafNode := findMinimumKey(t.root)
	return leafNode.value, true
}

// Maximum 获取当前树上字典序最大的键所对应的值
func (t *tree[T]) Maximum() (max T, isFound bool) {
	if t == nil || t.root == nil {
		return
	}
	leafNode := findMaximumKey(t.root)
	return leafNode.value, true
}

// Size 获取树上键值对数量
func (t *tree[T]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

// Root 获取根节点的只读视图 空树返回 nil
func (t *tree[T]) Root() Node[T] {
	if t == nil || t.root == nil {
		return nil
	}
	return t.root
}
