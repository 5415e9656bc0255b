package adaptiveRadixTree

// 各类型节点的容量上限和下限
//
// 子节点数量达到上限后 再添加新的子节点之前必须先向上转换
// 子节点数量低于下限时 必须向下转换 node4 的下限是1 低于该值时不再转换为更小的节点 而是进行路径压缩
const (
	node4Min = 1
	node4Max = 4

	node16Min = node4Max + 1
	node16Max = 16

	node48Min = node16Max + 1
	node48Max = 48

	node256Min = node48Max + 1
	node256Max = 256
)
