package flappy

// Spawner counts ticks and signals when a new Barrier is due.
type Spawner struct {
	counter  int
	interval int
}

// NewSpawner creates a spawner that fires once the counter exceeds interval.
func NewSpawner(interval int) Spawner {
	return Spawner{interval: interval}
}

// Tick advances the counter and reports whether a Barrier should be spawned.
// The counter restarts from zero after every spawn.
func (s *Spawner) Tick() bool {
	s.counter++
	if s.counter > s.interval {
		s.counter = 0
		return true
	}
	return false
}

// Reset sets the counter back to zero.
func (s *Spawner) Reset() {
	s.counter = 0
}

// Counter returns the ticks counted since the last spawn or reset.
func (s *Spawner) Counter() int {
	return s.counter
}
