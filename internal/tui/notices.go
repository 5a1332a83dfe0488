package tui

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-tieba/internal/app"
)

const (
	noticeTTL        = 3 * time.Second
	maxVisibleNotice = 3
)

type notice struct {
	id    int
	level app.NoticeLevel
	text  string
}

// noticeStack holds the visible notices, oldest first.
type noticeStack struct {
	items  []notice
	nextID int
}

func (s *noticeStack) push(level app.NoticeLevel, text string) int {
	s.nextID++
	s.items = append(s.items, notice{id: s.nextID, level: level, text: text})
	if len(s.items) > maxVisibleNotice {
		s.items = s.items[len(s.items)-maxVisibleNotice:]
	}
	return s.nextID
}

func (s *noticeStack) remove(id int) {
	for i, n := range s.items {
		if n.id == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *noticeStack) len() int { return len(s.items) }

func (s *noticeStack) View() string {
	if len(s.items) == 0 {
		return ""
	}
	lines := make([]string, 0, len(s.items))
	for _, n := range s.items {
		lines = append(lines, noticeStyle(n.level).Render(n.text))
	}
	return strings.Join(lines, "\n")
}
