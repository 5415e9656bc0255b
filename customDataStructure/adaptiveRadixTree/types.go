package adaptiveRadixTree

import (
	"MisakaART/logger"
	"errors"
)

// Key 键的类型 其底层为 []byte 类型 任何字节都可以出现在键中 包括0
type Key []byte

// Value 值的泛型 存入树的键值对的值必须符合该泛型所定义的类型
type Value interface {
	any
}

type Kind int

// Callback 在对树进行遍历时 每个节点都会传入该函数类型的实际函数 并且根据返回值决定是否继续遍历
type Callback[T Value] func(node Node[T]) (isContinue bool)

const (
	Leaf Kind = iota
	Node4
	Node16
	Node48
	Node256
)

func (k Kind) String() string {
	switch k {
	case Leaf:
		return "Leaf"
	case Node4:
		return "Node4"
	case Node16:
		return "Node16"
	case Node48:
		return "Node48"
	case Node256:
		return "Node256"
	default:
		return "Invalid"
	}
}

// RC 树的操作结果
type RC int

const (
	Success RC = iota
	InternalFailure
	KeyNotExist
)

func (rc RC) String() string {
	switch rc {
	case Success:
		return "SUCCESS"
	case InternalFailure:
		return "INTERNAL_FAILURE"
	case KeyNotExist:
		return "KEY_NOT_EXIST"
	default:
		return "UNKNOWN"
	}
}

// Err 将操作结果转换为对应的错误 Success 对应 nil
func (rc RC) Err() error {
	switch rc {
	case Success:
		return nil
	case KeyNotExist:
		return logger.KeyIsNotExisted
	default:
		return logger.InternalFailure
	}
}

type traverseAction int

const (
	Stop traverseAction = iota
	Continue
)

const (
	TraverseLeaf = 1
	TraverseNode = 2
	TraverseAll  = TraverseLeaf | TraverseNode
)

// Node 节点的只读视图 给遍历和打印树用的 不能通过它修改树
type Node[T Value] interface {
	Kind() Kind
	// Prefix 对于内部节点是压缩后的路径 对于叶子节点是完整的键
	Prefix() []byte
	// Key 仅对叶子节点有效 内部节点返回 nil
	Key() Key
	// Value 仅对叶子节点有效 内部节点返回零值
	Value() T
	// Children 按字节升序返回子节点 终止子节点(zeroChild)排在最前面 叶子节点返回 nil
	Children() []Edge[T]
}

// Edge 内部节点到子节点的一条边
type Edge[T Value] struct {
	Index    byte
	Terminal bool // 为 true 时 Index 无意义 子节点的键正好在父节点的前缀处结束
	Node     Node[T]
}

// Iterator 迭代器实例
type Iterator[T Value] interface {
	// HasNext 是否存在下一个节点
	HasNext() bool
	// Next 获取下一个节点 如果下一个节点不存在或者树结构被修改 就返回 NoMoreNodeErr 或者 TreeIsModifiedErr
	Next() (node Node[T], e error)
}

// Tree 树的接口
type Tree[T Value] interface {
	// Insert 根据指定的键插入新值 如果键在树中已经有值 就更新值 两种情况都返回 Success
	Insert(key Key, value T) RC
	// Remove 根据指定的键删除对应的值 并且返回被删除的值 如果键不存在将返回 KeyNotExist
	Remove(key Key) (value T, rc RC)
	// Search 根据指定的键寻找对应的值 如果键不存在将返回 KeyNotExist
	Search(key Key) (value T, rc RC)

	// ForEach 对树进行遍历 对于每个被遍历到的 符合条件的节点调用 callback 函数 默认情况下遍历只遍历叶子节点
	ForEach(callback Callback[T], options ...int)
	// ForEachWithPrefix 对树进行遍历 对于每个被遍历到的 键以指定前缀开头的 符合条件的节点调用 callback 函数 默认情况下遍历只遍历叶子节点
	ForEachWithPrefix(keyPrefix Key, callback Callback[T], options ...int)
	// Iterator 获取一个新的迭代器 默认只遍历叶子节点
	Iterator(options ...int) Iterator[T]

	// Minimum 获取当前树上字典序最小的键所对应的值
	Minimum() (min T, isFound bool)
	// Maximum 获取当前树上字典序最大的键所对应的值
	Maximum() (max T, isFound bool)

	// Size 获取树上键值对数量
	Size() int
	// Root 获取根节点的只读视图 空树返回 nil
	Root() Node[T]
}

var (
	NoMoreNodeErr     = errors.New("Tree Has No More Node! ")
	TreeIsModifiedErr = errors.New("Tree is Modified! ")
)
