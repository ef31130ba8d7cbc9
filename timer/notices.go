package timer

import (
	"sync"

	"github.com/werk-cli/werk/tracker"
)

// NoticeLog collects engine notices while the timer owns the terminal.
type NoticeLog struct {
	notices []tracker.Notice
	mu      sync.Mutex
}

func NewNoticeLog() *NoticeLog {
	return &NoticeLog{}
}

func (l *NoticeLog) Notify(n tracker.Notice) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.notices = append(l.notices, n)
}

// Drain returns the collected notices and clears the log.
func (l *NoticeLog) Drain() []tracker.Notice {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := l.notices
	l.notices = nil

	return out
}
