package services

import "errors"

var (
	// ErrSchedulingFailed 表示后台任务入队失败。主写入不会因此失败，回填运行会被挂起。
	ErrSchedulingFailed = errors.New("services: scheduling failed")
	// ErrPermissionDenied 表示调用者不是资源所有者。
	ErrPermissionDenied = errors.New("services: permission denied")
	// ErrInvalidArgument 表示输入参数不合法。
	ErrInvalidArgument = errors.New("services: invalid argument")
	// ErrUnknownPipeline 表示回填管线名称未注册。
	ErrUnknownPipeline = errors.New("services: unknown backfill pipeline")
)
