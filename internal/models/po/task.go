package po

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus 描述任务队列条目的状态。
type TaskStatus string

const (
	TaskStatusPending TaskStatus = "pending"
	TaskStatusDone    TaskStatus = "done"
	TaskStatusDead    TaskStatus = "dead"
)

// Task 表示 feed.tasks 中的一条后台任务。
type Task struct {
	ID          uuid.UUID
	Name        string
	Payload     []byte
	Status      TaskStatus
	RunAfter    time.Time
	Attempts    int32
	LockedUntil *time.Time
	ProcessedAt *time.Time
	LastError   *string
	CreatedAt   time.Time
}
