package adaptiveRadixTree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// childBytes 按顺序收集内部节点中子节点对应的字节
func childBytes[T Value](n innerNode[T]) []byte {
	var result []byte
	n.forEachChild(func(c byte, _ artNode[T]) bool {
		result = append(result, c)
		return true
	})
	return result
}

func TestNode4AddChild(t *testing.T) {
	n := newNode4[int](nil)
	n.addChild('c', newLeaf[int](Key("c"), 3))
	n.addChild('a', newLeaf[int](Key("a"), 1))
	n.addChild('d', newLeaf[int](Key("d"), 4))
	n.addChild('b', newLeaf[int](Key("b"), 2))
	require.True(t, n.isFull())
	assert.Equal(t, []byte("abcd"), childBytes[int](n))

	// 已经存在的字节直接替换
	n.addChild('b', newLeaf[int](Key("b"), 20))
	assert.Equal(t, 20, n.findChild('b').Value())
	assert.Equal(t, uint16(node4Max), n.childrenNum)

	assert.Panics(t, func() {
		n.addChild('e', newLeaf[int](Key("e"), 5))
	})
	assert.Nil(t, n.findChild('e'))
}

func TestNode4DeleteChild(t *testing.T) {
	n := newNode4[int](Key("pre"))
	for _, c := range []byte("abc") {
		n.addChild(c, newLeaf[int](Key{c}, int(c)))
	}
	n.deleteChild('b')
	assert.Equal(t, []byte("ac"), childBytes[int](n))
	assert.Nil(t, n.findChild('b'))

	// 不存在的字节什么都不做
	n.deleteChild('z')
	assert.Equal(t, uint16(2), n.childrenNum)

	n.deleteChild('a')
	require.True(t, n.isLack())
	assert.Panics(t, func() {
		n.deleteChild('c')
	})
}

func TestNode4Grow(t *testing.T) {
	n := newNode4[int](Key("pre"))
	n.zeroChild = newLeaf[int](Key("pre"), 0)
	for _, c := range []byte("wxyz") {
		n.addChild(c, newLeaf[int](Key{c}, int(c)))
	}

	grown := n.grow()
	require.Equal(t, Node16, grown.Kind())
	assert.Equal(t, []byte("pre"), grown.Prefix())
	assert.Equal(t, []byte("wxyz"), childBytes(grown))
	assert.Same(t, n.zeroChild, grown.base().zeroChild)
	for _, c := range []byte("wxyz") {
		assert.Equal(t, int(c), grown.findChild(c).Value())
	}
}

// TestNode4ShrinkConcatPrefix node4 和唯一的内部子节点合并时 前缀 = 自己的前缀 + 字节 + 子节点的前缀
func TestNode4ShrinkConcatPrefix(t *testing.T) {
	child := newNode4[int](Key("ef"))
	child.addChild('1', newLeaf[int](Key("abcdef1"), 1))
	child.addChild('2', newLeaf[int](Key("abcdef2"), 2))

	n := newNode4[int](Key("abc"))
	n.addChild('d', child)
	require.True(t, n.isLack())

	shrunk := n.shrink()
	require.Same(t, child, shrunk)
	assert.Equal(t, []byte("abcdef"), shrunk.Prefix())

	notLack := newNode4[int](nil)
	notLack.addChild('a', newLeaf[int](Key("a"), 1))
	notLack.zeroChild = newLeaf[int](Key(""), 0)
	assert.False(t, notLack.isLack())
	assert.Panics(t, func() {
		notLack.shrink()
	})
}

func TestNode16Index(t *testing.T) {
	n := newNode16[int](nil)
	for i := node16Max - 1; i >= 0; i-- {
		c := byte(i * 3)
		n.addChild(c, newLeaf[int](Key{c}, i))
	}
	require.True(t, n.isFull())
	for i := 0; i < node16Max; i++ {
		assert.Equal(t, i, n.index(byte(i*3)))
		assert.Equal(t, i, n.findChild(byte(i*3)).Value())
	}
	assert.Equal(t, -1, n.index(1))

	// 删除之后 keys 末尾是0 不能被当作有效的子节点
	n.deleteChild(0)
	n.deleteChild(3)
	assert.Equal(t, -1, n.index(0))
	assert.Nil(t, n.findChild(0))
	assert.Equal(t, 0, n.index(6))
	assert.Equal(t, uint16(node16Max-2), n.childrenNum)
}

func TestNode16GrowAndShrink(t *testing.T) {
	n := newNode16[int](Key("p"))
	for i := 0; i < node16Max; i++ {
		n.addChild(byte(255-i), newLeaf[int](Key{byte(255 - i)}, i))
	}
	grown := n.grow()
	require.Equal(t, Node48, grown.Kind())
	assert.Equal(t, uint16(node16Max), grown.base().childrenNum)
	for i := 0; i < node16Max; i++ {
		assert.Equal(t, i, grown.findChild(byte(255-i)).Value())
	}

	for i := 0; i < node16Max-node16Min+1; i++ {
		n.deleteChild(byte(255 - i))
	}
	require.True(t, n.isLack())
	shrunk := toInner(n.shrink())
	require.Equal(t, Node4, shrunk.Kind())
	assert.Equal(t, []byte{240, 241, 242, 243}, childBytes(shrunk))
	assert.Equal(t, []byte("p"), shrunk.Prefix())
}

// TestNode48SlotReuse 删除子节点后空出来的槽位会被重新使用
func TestNode48SlotReuse(t *testing.T) {
	n := newNode48[int](nil)
	for i := 0; i < node48Max; i++ {
		n.addChild(byte(i*5), newLeaf[int](Key{byte(i * 5)}, i))
	}
	require.True(t, n.isFull())
	require.Equal(t, node48Max, n.isExist.getNum())

	slot := int(n.keys[10*5]) - 1
	n.deleteChild(10 * 5)
	assert.False(t, n.isExist.get(slot))
	assert.Nil(t, n.findChild(10*5))
	assert.Equal(t, slot, n.isExist.firstZero())

	n.addChild(1, newLeaf[int](Key{1}, -1))
	assert.Equal(t, byte(slot+1), n.keys[1])
	assert.Equal(t, -1, n.findChild(1).Value())
	assert.True(t, n.isFull())

	// 遍历按字节升序 而不是槽位顺序
	result := childBytes[int](n)
	require.Len(t, result, node48Max)
	assert.Equal(t, byte(0), result[0])
	assert.Equal(t, byte(1), result[1])
	assert.Equal(t, byte(5), result[2])
}

func TestNode48GrowAndShrink(t *testing.T) {
	n := newNode48[int](Key("p"))
	for i := 0; i < node48Max; i++ {
		n.addChild(byte(200-i), newLeaf[int](Key{byte(200 - i)}, i))
	}
	grown := n.grow()
	require.Equal(t, Node256, grown.Kind())
	assert.Equal(t, uint16(node48Max), grown.base().childrenNum)
	assert.Equal(t, 0, grown.findChild(200).Value())

	for i := 0; i < node48Max-node48Min+1; i++ {
		n.deleteChild(byte(200 - i))
	}
	require.True(t, n.isLack())
	shrunk := toInner(n.shrink())
	require.Equal(t, Node16, shrunk.Kind())
	bytes := childBytes(shrunk)
	require.Len(t, bytes, node48Min-1)
	assert.Equal(t, byte(200-node48Max+1), bytes[0])
	for i := 1; i < len(bytes); i++ {
		assert.Less(t, bytes[i-1], bytes[i])
	}
}

func TestNode256(t *testing.T) {
	n := newNode256[int](nil)
	for i := 0; i < node256Max; i++ {
		n.addChild(byte(i), newLeaf[int](Key{byte(i)}, i))
	}
	assert.False(t, n.isFull())
	assert.Equal(t, uint16(node256Max), n.childrenNum)
	assert.Panics(t, func() {
		n.grow()
	})

	// 替换不会增加子节点数量
	n.addChild(7, newLeaf[int](Key{7}, 70))
	assert.Equal(t, uint16(node256Max), n.childrenNum)
	assert.Equal(t, 70, n.findChild(7).Value())

	for i := node256Max - 1; i >= node256Min-1; i-- {
		n.deleteChild(byte(i))
	}
	require.True(t, n.isLack())
	shrunk := toInner(n.shrink())
	require.Equal(t, Node48, shrunk.Kind())
	assert.Equal(t, uint16(node256Min-1), shrunk.base().childrenNum)
	for i := 0; i < node256Min-1; i++ {
		assert.NotNil(t, shrunk.findChild(byte(i)))
	}
}

func TestTruncPrefix(t *testing.T) {
	n := newNode4[int](Key("abcdef"))
	n.truncPrefix(2)
	assert.Equal(t, []byte("cdef"), n.Prefix())
	assert.Equal(t, 4, n.prefixLength())
	n.truncPrefix(4)
	assert.Nil(t, n.Prefix())
	assert.Panics(t, func() {
		n.truncPrefix(1)
	})
}

func TestCheckPrefix(t *testing.T) {
	n := newNode4[int](Key("cde"))
	assert.Equal(t, 3, n.checkPrefix(Key("abcdef"), 2))
	assert.Equal(t, 2, n.checkPrefix(Key("abcdxx"), 2))
	assert.Equal(t, 1, n.checkPrefix(Key("abc"), 2))
	assert.Equal(t, 0, n.checkPrefix(Key("ab"), 2))

	l := newLeaf[int](Key("abcdef"), 1)
	assert.Equal(t, 4, l.checkPrefix(Key("abcdef"), 2))
	assert.Equal(t, 1, l.checkPrefix(Key("abcx"), 2))
	assert.True(t, l.checkKeyMatch(Key("abcdef")))
	assert.False(t, l.checkKeyMatch(Key("abcde")))
	assert.False(t, l.checkKeyMatch(Key("abcdefg")))
	assert.True(t, l.prefixMatchKey(Key("abc")))
	assert.False(t, l.prefixMatchKey(Key("abd")))
}

// TestLeafOwnsKey 叶子节点复制了一份键 外部修改不会影响树
func TestLeafOwnsKey(t *testing.T) {
	k := Key("misaka")
	l := newLeaf[int](k, 1)
	k[0] = 'M'
	assert.Equal(t, Key("misaka"), l.Key())

	exported := l.Key()
	exported[0] = 'X'
	assert.True(t, l.checkKeyMatch(Key("misaka")))
}

func TestToInner(t *testing.T) {
	assert.Panics(t, func() {
		toInner[int](newLeaf[int](Key("a"), 1))
	})
	assert.NotPanics(t, func() {
		toInner[int](newNode48[int](nil))
	})
}

func TestBitmap(t *testing.T) {
	b := newBitmap(node48Max)
	require.Len(t, b.data, 3)
	assert.Equal(t, 0, b.firstZero())

	b.set1(0)
	b.set1(17)
	b.set1(47)
	b.set1(48) // 超出有效长度 不做任何操作
	assert.True(t, b.get(17))
	assert.False(t, b.get(48))
	assert.Equal(t, 3, b.getNum())
	assert.Equal(t, 1, b.firstZero())

	for i := 0; i < node48Max; i++ {
		b.set1(i)
	}
	assert.Equal(t, -1, b.firstZero())
	b.set0(33)
	assert.Equal(t, 33, b.firstZero())
	assert.Equal(t, node48Max-1, b.getNum())
	assert.Equal(t, "1111111111111111 1111111111111111 1111111111111101 ", b.string())
}

// TestNode48BitmapMismatch 位图和子节点数量对不上说明节点已经被破坏了 直接 panic
func TestNode48BitmapMismatch(t *testing.T) {
	n := newNode48[int](nil)
	for i := 0; i < node48Min; i++ {
		n.addChild(byte(i), newLeaf[int](Key{byte(i)}, i))
	}
	require.Equal(t, node48Min, n.isExist.getNum())

	slot := int(n.keys[3]) - 1
	n.isExist.set0(slot)
	assert.Panics(t, func() {
		n.addChild('z', newLeaf[int](Key("z"), 0))
	})
	assert.Panics(t, func() {
		n.deleteChild(3)
	})
	assert.NotNil(t, n.findChild(3))

	n.isExist.set1(slot)
	assert.NotPanics(t, func() {
		n.addChild('z', newLeaf[int](Key("z"), 0))
		n.deleteChild(3)
	})
	assert.Nil(t, n.findChild(3))
	assert.Equal(t, node48Min, n.isExist.getNum())
}

func TestDeleteZeroChild(t *testing.T) {
	n := newNode4[int](Key("ab"))
	n.zeroChild = newLeaf[int](Key("ab"), 0)
	n.addChild('c', newLeaf[int](Key("abc"), 1))
	n.addChild('d', newLeaf[int](Key("abd"), 2))

	removed := deleteZeroChildOf[int](n)
	require.NotNil(t, removed)
	assert.Equal(t, Key("ab"), removed.Key())
	assert.Nil(t, n.zeroChild)
	assert.Equal(t, uint16(2), n.childrenNum)

	// 只剩 zeroChild 的 node4 已经是 lack 的了
	lack := newNode4[int](Key("ab"))
	lack.zeroChild = newLeaf[int](Key("ab"), 0)
	require.True(t, lack.isLack())
	assert.Panics(t, func() {
		deleteZeroChildOf[int](lack)
	})
	assert.NotNil(t, lack.zeroChild)
}
