package services

// TrackedRuns 返回 runner 当前持有的已清空命名空间集合数量。
func TrackedRuns(r *BackfillRunner) int {
	return r.cleared.Size()
}
