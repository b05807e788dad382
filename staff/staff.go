// Package staff places note markers on a five-line staff, left to right,
// wiping the staff once the cursor runs past the right edge.
package staff

import "strings"

// Marker is an opaque handle returned by the Surface.
type Marker any

// Surface draws markers at staff coordinates.
type Surface interface {
	AddMarker(x, y float64, line int) Marker
	RemoveMarker(m Marker)
}

// Config holds the cursor constants and the key tables.
type Config struct {
	StartX  float64
	Spacing float64
	MaxX    float64
	LineY   []float64      // y of each note position, bottom to top
	Keys    map[string]int // key -> index into LineY
}

// Sink tracks the staff cursor and the markers currently shown.
type Sink struct {
	cfg     Config
	surface Surface
	cursor  float64
	markers []Marker
	clears  int
}

func New(cfg Config, surface Surface) *Sink {
	return &Sink{cfg: cfg, surface: surface, cursor: cfg.StartX}
}

// Place puts a marker for key at the cursor and advances it. Keys without a
// staff line are ignored.
func (s *Sink) Place(key string) bool {
	line, ok := s.cfg.Keys[strings.ToLower(key)]
	if !ok || line < 0 || line >= len(s.cfg.LineY) {
		return false
	}
	if s.cursor > s.cfg.MaxX {
		s.Clear()
	}

	var m Marker
	if s.surface != nil {
		m = s.surface.AddMarker(s.cursor, s.cfg.LineY[line], line)
	}
	s.markers = append(s.markers, m)
	s.cursor += s.cfg.Spacing
	return true
}

// Clear removes every marker and returns the cursor to the start.
func (s *Sink) Clear() {
	if s.surface != nil {
		for _, m := range s.markers {
			s.surface.RemoveMarker(m)
		}
	}
	s.markers = s.markers[:0]
	s.cursor = s.cfg.StartX
	s.clears++
}

func (s *Sink) Cursor() float64 {
	return s.cursor
}

func (s *Sink) Len() int {
	return len(s.markers)
}

// Clears counts how many times the staff has been wiped.
func (s *Sink) Clears() int {
	return s.clears
}
