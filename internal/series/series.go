// Package series records sick counts against simulation ticks.
package series

import "sort"

// Point is a single (tick, sick) sample.
type Point struct {
	Tick int
	Sick int
}

// TimeSeries maps ticks to the sick count observed at that tick. At most one
// sample is kept per tick; recording the same tick again overwrites it.
type TimeSeries struct {
	samples map[int]int
}

// New returns an empty series.
func New() *TimeSeries {
	return &TimeSeries{samples: make(map[int]int)}
}

// Record stores sick as the sample for tick.
func (s *TimeSeries) Record(tick, sick int) {
	if s.samples == nil {
		s.samples = make(map[int]int)
	}
	s.samples[tick] = sick
}

// At returns the sample recorded for tick, if any.
func (s *TimeSeries) At(tick int) (int, bool) {
	v, ok := s.samples[tick]
	return v, ok
}

// Len returns the number of samples.
func (s *TimeSeries) Len() int {
	return len(s.samples)
}

// Points returns the samples ordered by tick.
func (s *TimeSeries) Points() []Point {
	points := make([]Point, 0, len(s.samples))
	for tick, sick := range s.samples {
		points = append(points, Point{Tick: tick, Sick: sick})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Tick < points[j].Tick
	})
	return points
}

// Max returns the largest tick and the largest sick count, each taken
// independently. Both are zero for an empty series.
func (s *TimeSeries) Max() (maxTick, maxSick int) {
	for tick, sick := range s.samples {
		if tick > maxTick {
			maxTick = tick
		}
		if sick > maxSick {
			maxSick = sick
		}
	}
	return maxTick, maxSick
}

// Clone returns an independent copy.
func (s *TimeSeries) Clone() *TimeSeries {
	out := &TimeSeries{samples: make(map[int]int, len(s.samples))}
	for tick, sick := range s.samples {
		out.samples[tick] = sick
	}
	return out
}

// Merge combines several series key-wise. When two series hold a sample for
// the same tick, the later series wins. Nil series are skipped.
func Merge(all ...*TimeSeries) *TimeSeries {
	out := New()
	for _, s := range all {
		if s == nil {
			continue
		}
		for tick, sick := range s.samples {
			out.samples[tick] = sick
		}
	}
	return out
}
