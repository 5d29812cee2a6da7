package flappy

import "testing"

func TestSpawnerCadence(t *testing.T) {
	s := NewSpawner(90)

	var spawns []int
	for tick := 1; tick <= 300; tick++ {
		if s.Tick() {
			spawns = append(spawns, tick)
		}
	}

	expected := []int{91, 182, 273}
	if len(spawns) != len(expected) {
		t.Fatalf("spawns at %v, expected %v", spawns, expected)
	}
	for i := range expected {
		if spawns[i] != expected[i] {
			t.Errorf("spawn %d at tick %d, expected %d", i, spawns[i], expected[i])
		}
	}
}

func TestSpawnerReset(t *testing.T) {
	s := NewSpawner(90)
	for i := 0; i < 40; i++ {
		s.Tick()
	}
	if s.Counter() != 40 {
		t.Fatalf("counter = %d, expected 40", s.Counter())
	}

	s.Reset()
	if s.Counter() != 0 {
		t.Errorf("counter after reset = %d, expected 0", s.Counter())
	}
}
