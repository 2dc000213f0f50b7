package synco

import (
	"sort"
	"time"

	"go.uber.org/zap"
)

// Run fetches p's query, hands it to sys and returns what sys returns. The
// query is closed however sys exits, so every guard it took is released even
// when sys panics.
//
//	moved := synco.Run(w, synco.Tuple2(synco.Write[Position](), synco.Read[Velocity]()),
//	    func(q *synco.Query[synco.Row2[*Position, *Velocity]]) int {
//	        n := 0
//	        for _, row := range q.All() {
//	            pos, vel := row.Unpack()
//	            pos.X += vel.X
//	            n++
//	        }
//	        return n
//	    })
func Run[O, R any](w *World, p Pattern[O], sys func(*Query[O]) R) R {
	q := NewQuery(w, p)
	defer q.Close()
	return sys(q)
}

// Phase orders systems within a Schedule. Lower phases run first.
type Phase int

// SystemFunc is one unit of per-tick work.
type SystemFunc func(w *World)

type scheduled struct {
	phase Phase
	name  string
	fn    SystemFunc
}

// Schedule runs named systems against a World in phase order. Systems
// sharing a phase run in the order they were added.
type Schedule struct {
	world   *World
	systems []scheduled
	sorted  bool
	ticks   uint64
}

// NewSchedule returns an empty Schedule bound to w.
func NewSchedule(w *World) *Schedule {
	return &Schedule{
		world:   w,
		systems: make([]scheduled, 0, 16),
	}
}

// Add registers fn under name in the given phase.
func (s *Schedule) Add(phase Phase, name string, fn SystemFunc) *Schedule {
	s.systems = append(s.systems, scheduled{phase: phase, name: name, fn: fn})
	s.sorted = false
	return s
}

// Len returns the number of registered systems.
func (s *Schedule) Len() int { return len(s.systems) }

// Ticks returns how many times Tick has completed.
func (s *Schedule) Ticks() uint64 { return s.ticks }

// Tick runs every system once.
func (s *Schedule) Tick() {
	s.ensureSorted()
	start := time.Now()
	for _, sys := range s.systems {
		sys.fn(s.world)
	}
	s.ticks++
	s.world.log.Debug("tick",
		zap.Uint64("tick", s.ticks),
		zap.Int("systems", len(s.systems)),
		zap.Duration("took", time.Since(start)),
	)
}

// TickPhase runs only the systems registered in phase. It does not count as
// a tick.
func (s *Schedule) TickPhase(phase Phase) {
	s.ensureSorted()
	for _, sys := range s.systems {
		if sys.phase == phase {
			sys.fn(s.world)
		}
	}
}

// Names returns the system names in execution order.
func (s *Schedule) Names() []string {
	s.ensureSorted()
	names := make([]string, len(s.systems))
	for i, sys := range s.systems {
		names[i] = sys.name
	}
	return names
}

func (s *Schedule) ensureSorted() {
	if !s.sorted {
		sort.SliceStable(s.systems, func(i, j int) bool {
			return s.systems[i].phase < s.systems[j].phase
		})
		s.sorted = true
	}
}
