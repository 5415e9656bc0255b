package artPrinter

import (
	"fmt"
	"io"

	"MisakaART/customDataStructure/adaptiveRadixTree"
	"MisakaART/util"

	"github.com/xlab/treeprint"
)

const emptyTree = "Empty Tree"

// Sprint 把整棵树以深度优先的顺序画出来 每个节点占一行
//
// 节点的标记: @LeafNode <键, 值> #Node4 {前缀} $Node16 {前缀} %Node48 {前缀} ^Node256 {前缀}
// 边的标记: -[字节(字符)] 终止子节点的边为 -[$]
func Sprint[T adaptiveRadixTree.Value](tree adaptiveRadixTree.Tree[T]) string {
	root := tree.Root()
	if root == nil {
		return emptyTree + "\n"
	}

	result := treeprint.NewWithRoot(nodeLabel(root))
	drawChildren(result, root)
	return result.String()
}

// Draw 和 Sprint 一样 只不过直接写入 w
func Draw[T adaptiveRadixTree.Value](tree adaptiveRadixTree.Tree[T], w io.Writer) error {
	_, e := io.WriteString(w, Sprint(tree))
	return e
}

func drawChildren[T adaptiveRadixTree.Value](branch treeprint.Tree, node adaptiveRadixTree.Node[T]) {
	for _, edge := range node.Children() {
		label := edgeLabel(edge) + " " + nodeLabel(edge.Node)
		if edge.Node.Kind() == adaptiveRadixTree.Leaf {
			branch.AddNode(label)
			continue
		}
		drawChildren(branch.AddBranch(label), edge.Node)
	}
}

func nodeLabel[T adaptiveRadixTree.Value](node adaptiveRadixTree.Node[T]) string {
	var mark string
	switch node.Kind() {
	case adaptiveRadixTree.Leaf:
		return fmt.Sprintf("@LeafNode <%s, %v>", util.RenderKey(node.Key()), node.Value())
	case adaptiveRadixTree.Node4:
		mark = "#"
	case adaptiveRadixTree.Node16:
		mark = "$"
	case adaptiveRadixTree.Node48:
		mark = "%"
	case adaptiveRadixTree.Node256:
		mark = "^"
	default:
		panic(fmt.Sprintf("invalid node kind: %d", node.Kind()))
	}
	return mark + node.Kind().String() + " {" + util.RenderKey(node.Prefix()) + "}"
}

func edgeLabel[T adaptiveRadixTree.Value](edge adaptiveRadixTree.Edge[T]) string {
	if edge.Terminal {
		return "-[$]"
	}
	return "-[" + util.RenderByte(edge.Index) + "]"
}
