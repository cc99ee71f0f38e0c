package scheduler

import "go.trai.ch/rbuild/internal/core/domain"

// GetModuleStatusMap returns a copy of the internal module status map.
// This is exported for testing purposes only.
func (s *Scheduler) GetModuleStatusMap() map[string]domain.VertexStatus {
	return s.Statuses()
}
