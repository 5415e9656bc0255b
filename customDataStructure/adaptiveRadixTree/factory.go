package adaptiveRadixTree

// 前缀一律复制一份再存入节点 节点独占自己的前缀

func newNode4[T Value](prefix []byte) *node4[T] {
	n := &node4[T]{}
	n.resetPrefix(prefix)
	return n
}

func newNode16[T Value](prefix []byte) *node16[T] {
	n := &node16[T]{}
	n.resetPrefix(prefix)
	return n
}

func newNode48[T Value](prefix []byte) *node48[T] {
	n := &node48[T]{
		isExist: newBitmap(node48Max),
	}
	n.resetPrefix(prefix)
	return n
}

func newNode256[T Value](prefix []byte) *node256[T] {
	n := &node256[T]{}
	n.resetPrefix(prefix)
	return n
}

func newLeaf[T Value](key Key, value T) *leaf[T] {
	clonedKey := make(Key, len(key))
	copy(clonedKey, key)
	return &leaf[T]{
		key:   clonedKey,
		value: value,
	}
}
