package tasks

import "errors"

// ErrUnknownTask 表示任务名未注册处理器。
var ErrUnknownTask = errors.New("tasks: unknown task")

type permanentError struct {
	cause error
}

func (e permanentError) Error() string {
	if e.cause == nil {
		return "permanent error"
	}
	return e.cause.Error()
}

func (e permanentError) Unwrap() error {
	return e.cause
}

// Permanent 把错误标记为不可重试，消费者会直接把任务置为 dead。
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return permanentError{cause: err}
}

// IsPermanent 报告错误是否被显式标记为不可重试。
func IsPermanent(err error) bool {
	var target permanentError
	return errors.As(err, &target)
}
