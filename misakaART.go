package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"MisakaART/customDataStructure/adaptiveRadixTree"
	"MisakaART/customDataStructure/artPrinter"
	"MisakaART/logger"
	"MisakaART/util"

	"github.com/pkg/errors"
	"github.com/tidwall/redcon"
)

// 以下为可选配置项
const (
	DefaultLogDirName = "MisakaARTLog"
	LogDirEnv         = "MISAKA_ART_LOG_DIR"
	VerboseEnv        = "MISAKA_ART_VERBOSE"
)

// DefaultLogPath 默认的log目录 在系统的临时目录下
func DefaultLogPath() string {
	return filepath.Join(os.TempDir(), DefaultLogDirName)
}

type MisakaART struct {
	tree adaptiveRadixTree.Tree[string]

	logger *logger.Logger
}

func Init(logPath string, isVerbose bool) (*MisakaART, error) {
	art := &MisakaART{}
	var e error

	// 初始化logger
	art.logger, e = logger.NewLogger(logPath, isVerbose)
	if e != nil {
		return nil, errors.Wrapf(e, "create logger in %s", logPath)
	}
	logger.GenerateInfoLog("Logger is Ready!")

	art.tree = adaptiveRadixTree.New[string]()
	logger.GenerateInfoLog("Tree is Ready!")

	return art, nil
}

func (art *MisakaART) Destroy() {
	logger.GenerateInfoLog(fmt.Sprintf("Tree Destroyed With %d Keys", art.tree.Size()))
	// 关闭logger
	art.logger.StopLogger()
}

// Serve 从 in 中逐条读取命令并执行 回复写入 out
//
// 命令可以是 RESP 格式 也可以是 telnet 风格的一行一条命令 读到 QUIT 或者 in 结束时返回
func (art *MisakaART) Serve(in io.Reader, out io.Writer) error {
	reader := redcon.NewReader(in)
	writer := redcon.NewWriter(out)
	for {
		cmd, e := reader.ReadCommand()
		if e != nil {
			if errors.Is(e, io.EOF) {
				return errors.Wrap(writer.Flush(), "write reply")
			}
			logger.GenerateErrorLog(false, false, e.Error())
			writer.WriteError("ERR " + e.Error())
			_ = writer.Flush()
			return errors.Wrap(e, "read command")
		}
		if len(cmd.Args) == 0 {
			continue
		}

		isQuit := art.handleCommand(writer, cmd)
		e = writer.Flush()
		if e != nil {
			logger.GenerateErrorLog(false, false, e.Error())
			return errors.Wrap(e, "write reply")
		}
		if isQuit {
			return nil
		}
	}
}

// handleCommand 执行一条命令 返回值表示是否需要结束
func (art *MisakaART) handleCommand(w *redcon.Writer, cmd redcon.Command) (isQuit bool) {
	name := strings.ToLower(string(cmd.Args[0]))
	arity, isSupported := commandArity[name]
	if !isSupported {
		// 命令不能识别
		logger.GenerateErrorLog(false, false, logger.CommandIsNotSupported.Error(), string(cmd.Args[0]))
		w.WriteError("ERR unknown command '" + string(cmd.Args[0]) + "'")
		return false
	}
	if !arity.isAllowed(len(cmd.Args)) {
		// 参数数量错误
		logger.GenerateErrorLog(false, false, logger.WrongNumberOfArguments.Error(), string(cmd.Args[0]))
		w.WriteError("ERR wrong number of arguments for '" + string(cmd.Args[0]) + "' command")
		return false
	}
	logger.GenerateInfoLog("Query: " + name)

	switch name {
	case "ping":
		w.WriteString("PONG")
	case "quit":
		w.WriteString("OK")
		return true
	case "set":
		// set key value
		rc := art.tree.Insert(cmd.Args[1], string(cmd.Args[2]))
		if rc != adaptiveRadixTree.Success {
			art.writeRC(w, rc, cmd.Args[1])
			return false
		}
		w.WriteString("OK")
	case "get":
		// get key
		value, rc := art.tree.Search(cmd.Args[1])
		if rc != adaptiveRadixTree.Success {
			art.writeRC(w, rc, cmd.Args[1])
			return false
		}
		w.WriteBulkString(value)
	case "del":
		// del key
		value, rc := art.tree.Remove(cmd.Args[1])
		if rc != adaptiveRadixTree.Success {
			art.writeRC(w, rc, cmd.Args[1])
			return false
		}
		w.WriteBulkString(value)
	case "size":
		w.WriteInt(art.tree.Size())
	case "print":
		w.WriteBulkString(artPrinter.Sprint(art.tree))
	case "min":
		value, isFound := art.tree.Minimum()
		writeOptional(w, value, isFound)
	case "max":
		value, isFound := art.tree.Maximum()
		writeOptional(w, value, isFound)
	case "keys":
		// keys [prefix]
		var keys [][]byte
		collect := func(node adaptiveRadixTree.Node[string]) bool {
			keys = append(keys, node.Key())
			return true
		}
		if len(cmd.Args) == 2 {
			art.tree.ForEachWithPrefix(cmd.Args[1], collect)
		} else {
			art.tree.ForEach(collect)
		}
		w.WriteArray(len(keys))
		for _, k := range keys {
			w.WriteBulk(k)
		}
	}
	return false
}

// writeRC 键不存在时回复 null 其他失败回复错误
func (art *MisakaART) writeRC(w *redcon.Writer, rc adaptiveRadixTree.RC, key []byte) {
	if rc == adaptiveRadixTree.KeyNotExist {
		w.WriteNull()
		return
	}
	logger.GenerateErrorLog(false, false, rc.Err().Error(), util.RenderKey(key), util.TurnByteArrayToString(key))
	w.WriteError("ERR " + rc.String())
}

func writeOptional(w *redcon.Writer, value string, isFound bool) {
	if !isFound {
		w.WriteNull()
		return
	}
	w.WriteBulkString(value)
}

// arity 命令允许的参数数量范围 包括命令名本身
type arity struct {
	min int
	max int
}

func (a arity) isAllowed(n int) bool {
	return n >= a.min && n <= a.max
}

var commandArity = map[string]arity{
	"ping":  {1, 1},
	"quit":  {1, 1},
	"set":   {3, 3},
	"get":   {2, 2},
	"del":   {2, 2},
	"size":  {1, 1},
	"print": {1, 1},
	"min":   {1, 1},
	"max":   {1, 1},
	"keys":  {1, 2},
}

// RunDemo 插入两个在第三个字节处分叉的键 打印树 查找 再删除其中一个
func RunDemo(out io.Writer) error {
	tree := adaptiveRadixTree.New[float64]()
	pairs := []struct {
		key   string
		value float64
	}{
		{"abcas", 1.2},
		{"ababdw", 2.1},
	}

	for _, pair := range pairs {
		rc := tree.Insert(adaptiveRadixTree.Key(pair.key), pair.value)
		logger.GenerateInfoLog(fmt.Sprintf("Insert %s -> %v: %s", pair.key, pair.value, rc))
		if e := rc.Err(); e != nil {
			return errors.Wrapf(e, "insert %s", pair.key)
		}
	}
	if _, e := fmt.Fprintln(out, "Tree after insert:"); e != nil {
		return errors.Wrap(e, "write demo output")
	}
	if e := artPrinter.Draw(tree, out); e != nil {
		return errors.Wrap(e, "draw tree")
	}

	for _, pair := range pairs {
		value, rc := tree.Search(adaptiveRadixTree.Key(pair.key))
		logger.GenerateInfoLog(fmt.Sprintf("Search %s: %v %s", pair.key, value, rc))
		if _, e := fmt.Fprintf(out, "Search %s: %v %s\n", pair.key, value, rc); e != nil {
			return errors.Wrap(e, "write demo output")
		}
	}

	value, rc := tree.Remove(adaptiveRadixTree.Key("abcas"))
	logger.GenerateInfoLog(fmt.Sprintf("Remove abcas: %v %s", value, rc))
	if _, e := fmt.Fprintf(out, "Remove abcas: %v %s\n", value, rc); e != nil {
		return errors.Wrap(e, "write demo output")
	}
	if _, e := fmt.Fprintln(out, "Tree after remove:"); e != nil {
		return errors.Wrap(e, "write demo output")
	}
	return errors.Wrap(artPrinter.Draw(tree, out), "draw tree")
}
