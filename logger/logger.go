package logger

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logInputChannel = make(chan LogInfo, 10)
	activeLogger    atomic.Pointer[Logger] // 当前正在监听 channel 的 Logger 没有的话 log 直接丢弃
)

type LogLevel string

const (
	Error LogLevel = "E"
	Panic          = "P"
	Info           = "I"
)

// LogInfo 传递Log信息的结构体
type LogInfo struct {
	level   LogLevel
	logTime time.Time
	message string
}

func GenerateInfoLog(message string) {
	log := LogInfo{
		level:   Info,
		logTime: time.Now(),
	}
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		log.message = "Can not Get Caller Function, Message: " + message
	} else {
		log.message = runtime.FuncForPC(pc).Name() + " :" + message
	}
	sendLog(log)
}

func GenerateErrorLog(isPanic bool, needStackTrace bool, message string, keyParams ...string) {
	log := LogInfo{
		logTime: time.Now(),
	}
	if isPanic {
		log.level = Panic
	} else {
		log.level = Error
	}
	param := strings.Join(keyParams, " ")
	if needStackTrace { // 需要全部堆栈信息
		log.message = "Message: " + message + ", parameters: " + param + "\n"
		log.message += "Stack Trace: \n"

		pcs := make([]uintptr, 100)
		n := runtime.Callers(2, pcs)
		pcs = pcs[:n]
		frames := runtime.CallersFrames(pcs)

		for frame, more := frames.Next(); more; frame, more = frames.Next() {
			log.message += frame.File + ": " + strconv.Itoa(frame.Line) + ", Function: " + frame.Function + "\n"
		}
	} else { // 不需要
		pc, _, _, ok := runtime.Caller(1)
		if !ok {
			log.message = "Can not Get Caller Function, Message: " + message + ", parameters: " + param
		} else {
			log.message = runtime.FuncForPC(pc).Name() + " :" + message + ", parameters: " + param
		}
	}

	sendLog(log)
}

// sendLog 把 log 交给正在监听的 Logger 如果 Logger 正在关闭 放弃这条 log
func sendLog(log LogInfo) {
	current := activeLogger.Load()
	if current == nil {
		return
	}
	select {
	case logInputChannel <- log:
	case <-current.stopChannel:
	}
}

func (li *LogInfo) zapLevel() zapcore.Level {
	switch li.level {
	case Info:
		return zapcore.InfoLevel
	case Error:
		return zapcore.ErrorLevel
	default:
		return zapcore.DPanicLevel
	}
}

// encodeLevel 日志级别仍然用 I E P 三个字母表示
func encodeLevel(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	switch level {
	case zapcore.InfoLevel:
		enc.AppendString(string(Info))
	case zapcore.ErrorLevel:
		enc.AppendString(string(Error))
	default:
		enc.AppendString(Panic)
	}
}

// Logger 记录log信息的结构体
type Logger struct {
	loggerFile *os.File
	zapLogger  *zap.Logger

	stopChannel chan struct{}
	doneChannel chan struct{}
	isStop      atomic.Bool
}

// NewLogger 传入log文件存储的路径 以获取一个新的Logger isVerbose 为 true 时 log 同时输出到标准错误
func NewLogger(logPath string, isVerbose bool) (*Logger, error) {
	e := os.MkdirAll(logPath, 0755)
	if e != nil {
		return nil, e
	}
	f, e := os.OpenFile(GenerateLogFilePath(logPath), os.O_CREATE|os.O_RDWR|os.O_APPEND, 0644)
	if e != nil {
		return nil, e
	}

	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "message",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      encodeLevel,
		EncodeTime:       zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05"),
		ConsoleSeparator: " ",
	})
	core := zapcore.NewCore(encoder, zapcore.AddSync(f), zapcore.InfoLevel)
	if isVerbose {
		core = zapcore.NewTee(core, zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), zapcore.InfoLevel))
	}

	result := &Logger{
		loggerFile:  f,
		zapLogger:   zap.New(core),
		stopChannel: make(chan struct{}),
		doneChannel: make(chan struct{}),
	}
	activeLogger.Store(result)
	result.ListenLoggerChannel()
	return result, nil
}

// StopLogger 停止监听 把 channel 中剩余的 log 写完之后关闭文件 会等待监听的协程退出
func (logger *Logger) StopLogger() {
	if !logger.isStop.CompareAndSwap(false, true) {
		<-logger.doneChannel
		return
	}
	activeLogger.CompareAndSwap(logger, nil)
	close(logger.stopChannel)
	<-logger.doneChannel
}

// ListenLoggerChannel 开始监听channel以接收log信息 写入log文件
func (logger *Logger) ListenLoggerChannel() {
	go func() {
		defer close(logger.doneChannel)
		for { // 循环监听
			select {
			case log := <-logInputChannel:
				logger.write(log)
			case <-logger.stopChannel:
				// 把已经进入 channel 的 log 写完
				for {
					select {
					case log := <-logInputChannel:
						logger.write(log)
					default:
						logger.close()
						return
					}
				}
			}
		}
	}()
}

func (logger *Logger) write(log LogInfo) {
	if ce := logger.zapLogger.Check(log.zapLevel(), log.message); ce != nil {
		ce.Time = log.logTime
		ce.Write()
	}
}

func (logger *Logger) close() {
	e := logger.zapLogger.Sync()
	if e != nil {
		os.Stderr.WriteString("Can Not Sync Log File Cause of: " + e.Error() + "\n")
	}
	e = logger.loggerFile.Close() // 关闭文件
	if e != nil {
		os.Stderr.WriteString("Can Not Close Log File Cause of: " + e.Error() + "\n")
	}
}

func GenerateLogFilePath(path string) string {
	fileName := "log." + time.Now().Format("2006_01_02_15_04_05") + ".misaka"
	return filepath.Join(path, fileName)
}
