package logger

import "errors"

// 准备常驻的错误们
var (
	KeyIsNotExisted = errors.New("Key is Not Existed! ")
	InternalFailure = errors.New("Tree Internal Failure! ")

	// 命令执行器使用的错误

	CommandIsNotSupported  = errors.New("Command is Not Supported! ")
	WrongNumberOfArguments = errors.New("Wrong Number of Arguments! ")
	FileIsNotExist         = errors.New("File is not Exist! ")
)
