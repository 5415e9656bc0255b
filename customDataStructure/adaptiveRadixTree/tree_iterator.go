package adaptiveRadixTree

// iteratorLevel 记录迭代器路径的 children 是该层节点按字典序排好的子节点 childIndex 是下一个要访问的子节点
type iteratorLevel[T Value] struct {
	children   []artNode[T]
	childIndex int
}

// iterator 迭代器 按前序遍历返回每一个节点
type iterator[T Value] struct {
	version int // 用于和树的 version 进行比较 从而确定树的结构是否有变动

	tree     *tree[T]
	nextNode artNode[T]
	path     []*iteratorLevel[T]
}

// iteratorWithOption 带有选项的迭代器
type iteratorWithOption[T Value] struct {
	options  int
	nextNode Node[T]
	e        error
	iterator *iterator[T]
}

// traverseOption 将传入的选项们进行合并 如果未指定选项 则默认为 TraverseLeaf
func traverseOption(options ...int) int {
	option := 0
	for i := range options {
		option |= options[i]
	}
	option &= TraverseAll
	if option == 0 {
		return TraverseLeaf
	}
	return option
}

// modifyCallbackFunc 根据选项对 callback 函数进行修饰
func modifyCallbackFunc[T Value](option int, callback Callback[T]) Callback[T] {
	if option == TraverseAll {
		return callback
	}

	return func(node Node[T]) (isContinue bool) {
		if option&TraverseLeaf == TraverseLeaf && node.Kind() == Leaf {
			return callback(node)
		} else if option&TraverseNode == TraverseNode && node.Kind() != Leaf {
			return callback(node)
		}

		return true
	}
}

// ForEach 对树进行遍历 对于每个被遍历到的 符合条件的节点调用 callback 函数 默认情况下遍历只遍历叶子节点
//
// 叶子节点按键的字典序被访问 内部节点先于它的子节点被访问
func (t *tree[T]) ForEach(callback Callback[T], options ...int) {
	if t == nil || t.root == nil {
		return
	}
	option := traverseOption(options...)
	t.recursiveForEach(t.root, modifyCallbackFunc[T](option, callback))
}

// recursiveForEach 以递归的方式进行遍历
func (t *tree[T]) recursiveForEach(currentNode artNode[T], callback Callback[T]) traverseAction {
	if currentNode == nil {
		return Continue
	}

	if !callback(currentNode) {
		return Stop
	}
	if currentNode.isLeaf() {
		return Continue
	}

	inner := toInner(currentNode)
	if zeroChild := inner.base().zeroChild; zeroChild != nil {
		if t.recursiveForEach(zeroChild, callback) == Stop {
			return Stop
		}
	}
	isContinue := inner.forEachChild(func(_ byte, child artNode[T]) bool {
		return t.recursiveForEach(child, callback) == Continue
	})
	if !isContinue {
		return Stop
	}

	return Continue
}

// ForEachWithPrefix 对树进行遍历 对于每个被遍历到的 键以指定前缀开头的 符合条件的节点调用 callback 函数 默认情况下遍历只遍历叶子节点
func (t *tree[T]) ForEachWithPrefix(keyPrefix Key, callback Callback[T], options ...int) {
	if t == nil || t.root == nil {
		return
	}
	option := traverseOption(options...)
	t.forEachWithPrefix(t.root, keyPrefix, modifyCallbackFunc[T](option, callback))
}

// forEachWithPrefix 对 ForEachWithPrefix 的逻辑的封装 采用循环 + 递归的方式进行遍历
//
// 它会以循环先找到能够和指定的键完全匹配的前缀所对应的节点 之后对该节点以递归的方式遍历它的所有子节点
func (t *tree[T]) forEachWithPrefix(current artNode[T], keyPrefix Key, callback Callback[T]) traverseAction {
	depth := 0
	for current != nil {
		if currentLeaf, ok := current.(*leaf[T]); ok {
			if currentLeaf.prefixMatchKey(keyPrefix) {
				if !callback(current) {
					return Stop
				}
			}
			return Continue
		}

		if depth == len(keyPrefix) { // 给定的前缀已经匹配完 该节点下所有的键都以它开头
			return t.recursiveForEach(current, callback)
		}

		currentNode := toInner(current)
		prefixLen := currentNode.prefixLength()
		matchLen := currentNode.checkPrefix(keyPrefix, depth)
		if depth+matchLen == len(keyPrefix) { // 给定的前缀刚好在当前节点的前缀中匹配完
			return t.recursiveForEach(current, callback)
		}
		if matchLen != prefixLen { // 前缀在中途就分叉了
			return Continue
		}
		depth += prefixLen

		current = currentNode.findChild(keyPrefix[depth])
		depth += 1
	}

	return Continue
}

// Iterator 获取一个新的迭代器 默认只遍历叶子节点
func (t *tree[T]) Iterator(options ...int) Iterator[T] {
	option := traverseOption(options...)

	i := &iterator[T]{
		tree: t,
	}
	if t != nil && t.root != nil {
		i.version = t.version
		i.nextNode = t.root
	}

	if option&TraverseAll == TraverseAll {
		return i
	}

	bufferI := &iteratorWithOption[T]{
		options:  option,
		iterator: i,
	}

	return bufferI
}

// HasNext 是否存在下一个节点 对于当前迭代器来说 具体的搜索行为发生在 Next 中
func (i *iterator[T]) HasNext() bool {
	return i.tree != nil && i.nextNode != nil
}

// Next 获取下一个节点 如果下一个节点不存在或者树结构被修改 就返回 NoMoreNodeErr 或者 TreeIsModifiedErr
//
// 对于当前迭代器来说 具体的搜索行为发生在 Next 中
func (i *iterator[T]) Next() (Node[T], error) {
	if !i.HasNext() {
		return nil, NoMoreNodeErr
	}

	e := i.isTreeModified()
	if e != nil {
		return nil, e
	}

	current := i.nextNode
	i.next()

	return current, nil
}

// isTreeModified 检查树结构是否被修改
func (i *iterator[T]) isTreeModified() error {
	if i.version == i.tree.version {
		return nil
	}
	return TreeIsModifiedErr
}

// next 根据当前迭代器的情况 获取下一个节点并且存入迭代器
//
// 当前节点如果是内部节点 就把它的子节点作为新的一层压入路径 然后从路径的最深层开始找还没访问过的子节点 找不到就向上回退一层
func (i *iterator[T]) next() {
	if !i.nextNode.isLeaf() {
		i.path = append(i.path, &iteratorLevel[T]{
			children:   orderedChildren(toInner(i.nextNode)),
			childIndex: 0,
		})
	}

	for len(i.path) > 0 {
		level := i.path[len(i.path)-1]
		if level.childIndex < len(level.children) {
			i.nextNode = level.children[level.childIndex]
			level.childIndex += 1
			return
		}
		// 这一层已经访问完了 回退
		i.path = i.path[:len(i.path)-1]
	}

	// 没得回退 结束
	i.nextNode = nil
}

// HasNext 是否存在下一个节点 对于当前迭代器来说 具体的搜索行为发生在 HasNext 中
//
// 找到的节点会先缓存起来 在被 Next 取走之前重复调用 HasNext 不会继续向后搜索
func (bi *iteratorWithOption[T]) HasNext() bool {
	if bi.nextNode != nil || bi.e != nil {
		return true
	}
	for bi.iterator.HasNext() {
		bi.nextNode, bi.e = bi.iterator.Next()
		if bi.e != nil {
			return true // 这里只有直接返回 true 才能让用户通过 Next 拿到错误
		}
		if bi.options&TraverseLeaf == TraverseLeaf && bi.nextNode.Kind() == Leaf {
			return true
		} else if bi.options&TraverseNode == TraverseNode && bi.nextNode.Kind() != Leaf {
			return true
		}
	}

	bi.nextNode = nil
	bi.e = nil
	return false
}

// Next 获取下一个节点 如果下一个节点不存在或者树结构被修改 就返回 NoMoreNodeErr 或者 TreeIsModifiedErr
//
// 对于当前迭代器来说 具体的搜索行为发生在 HasNext 中 没有缓存的节点时由 Next 自己调用 HasNext
func (bi *iteratorWithOption[T]) Next() (Node[T], error) {
	if !bi.HasNext() {
		return nil, NoMoreNodeErr
	}
	node, e := bi.nextNode, bi.e
	bi.nextNode, bi.e = nil, nil
	return node, e
}
