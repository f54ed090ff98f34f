package telemetry

import (
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/aoc/internal/core/ports"
	"go.trai.ch/aoc/internal/ui/style"
)

// Summary is a progrock.Writer that keeps the latest state of every vertex
// and logs one line per stage when it is closed.
type Summary struct {
	mu       sync.Mutex
	logger   ports.Logger
	order    []string
	vertices map[string]*progrock.Vertex
}

// NewSummary creates a Summary logging through logger.
func NewSummary(logger ports.Logger) *Summary {
	return &Summary{
		logger:   logger,
		vertices: make(map[string]*progrock.Vertex),
	}
}

// WriteStatus records the vertices carried by update.
func (s *Summary) WriteStatus(update *progrock.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range update.Vertexes {
		if _, seen := s.vertices[v.Id]; !seen {
			s.order = append(s.order, v.Id)
		}
		s.vertices[v.Id] = v
	}
	return nil
}

// Close logs the summary in the order the stages started.
func (s *Summary) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.order {
		s.logger.Info(summaryLine(s.vertices[id]))
	}
	s.order = nil
	return nil
}

func summaryLine(v *progrock.Vertex) string {
	switch {
	case v.Error != nil:
		return style.Cross + " " + v.Name
	case v.Canceled:
		return style.Warning + " " + v.Name + " (canceled)"
	case v.Completed == nil:
		return style.Warning + " " + v.Name + " (interrupted)"
	case v.Cached:
		return style.Check + " " + v.Name + " (cached)"
	default:
		return style.Check + " " + v.Name
	}
}
