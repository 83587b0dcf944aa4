package po

import (
	"time"

	"github.com/google/uuid"
)

// SyncStatus 描述回填管线的运行状态。
type SyncStatus string

const (
	SyncStatusRunning SyncStatus = "running"
	SyncStatusDone    SyncStatus = "done"
	SyncStatusHalted  SyncStatus = "halted"
)

// SyncMode 区分重建与原地刷新。重建在每个命名空间首次出现时先清空；
// 刷新只做 ReplaceOrInsert，计数在运行期间保持完整。
type SyncMode string

const (
	SyncModeRebuild SyncMode = "rebuild"
	SyncModeRefresh SyncMode = "refresh"
)

// SyncState 表示 feed.sync_state 记录，用于可恢复的批处理。
type SyncState struct {
	PipelineKey   string
	RunID         uuid.UUID
	Cursor        string
	Status        SyncStatus
	Mode          SyncMode
	LastNamespace string
	Processed     int64
	UpdatedAt     time.Time
}
