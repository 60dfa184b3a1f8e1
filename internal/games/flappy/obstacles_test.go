package flappy

import (
	"testing"

	"github.com/vovakirdan/space-flappy/internal/config"
	"github.com/vovakirdan/space-flappy/internal/core"
)

// farHitbox is a hitbox nowhere near any test obstacle.
var farHitbox = core.BoxAround(100, 250, 9)

func newTestField(obstacles ...Obstacle) *ObstacleField {
	f := NewObstacleField(1, config.DefaultConfig())
	f.obstacles = append(f.obstacles, obstacles...)
	return f
}

func TestSpawnPolicy(t *testing.T) {
	tests := []struct {
		name     string
		existing []Obstacle
		spawn    bool
	}{
		{"empty field", nil, true},
		{"newest just spawned", []Obstacle{{X: 798}}, false},
		{"newest exactly at spacing", []Obstacle{{X: 600}}, false},
		{"newest past spacing", []Obstacle{{X: 599}}, true},
		{"only newest counts", []Obstacle{{X: 100}, {X: 700}}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newTestField(tc.existing...)
			before := f.Len()

			if got := f.MaybeSpawn(); got != tc.spawn {
				t.Fatalf("MaybeSpawn() = %v, expected %v", got, tc.spawn)
			}
			if !tc.spawn {
				if f.Len() != before {
					t.Errorf("no spawn expected, len %d -> %d", before, f.Len())
				}
				return
			}

			newest := f.Obstacles()[f.Len()-1]
			if newest.X != 800 {
				t.Errorf("new obstacle X = %f, expected right edge 800", newest.X)
			}
			if newest.Scored {
				t.Error("new obstacle should not be scored")
			}
		})
	}
}

func TestSpawnGapTopRange(t *testing.T) {
	f := NewObstacleField(99, config.DefaultConfig())

	for i := 0; i < 500; i++ {
		f.Reset()
		f.MaybeSpawn()
		gap := f.Obstacles()[0].GapTop
		if gap < 50 || gap >= 250 {
			t.Fatalf("gap-top %f outside [50, 250)", gap)
		}
	}
}

func TestAdvanceScrollsEachObstacleOnce(t *testing.T) {
	f := newTestField(Obstacle{X: 300}, Obstacle{X: 500}, Obstacle{X: 700})

	collided, _ := f.Advance(farHitbox, 100)

	if collided {
		t.Fatal("no collision expected")
	}
	want := []float64{298, 498, 698}
	for i, o := range f.Obstacles() {
		if o.X != want[i] {
			t.Errorf("obstacle %d X = %f, expected %f", i, o.X, want[i])
		}
	}
}

func TestAdvanceRemovesExactlyOnce(t *testing.T) {
	// First obstacle leaves this tick, the second only next tick.
	f := newTestField(Obstacle{X: -49, Scored: true}, Obstacle{X: -47, Scored: true}, Obstacle{X: 400})

	f.Advance(farHitbox, 100)

	if f.Len() != 2 {
		t.Fatalf("expected exactly one removal, len = %d", f.Len())
	}
	got := f.Obstacles()
	if got[0].X != -49 || got[1].X != 398 {
		t.Errorf("survivors = %+v, expected X -49 and 398", got)
	}

	// A right edge just above 0 is still on-screen.
	if got[0].Right(50) != 1 {
		t.Fatalf("unexpected right edge %f", got[0].Right(50))
	}
	f.Advance(farHitbox, 100)
	if f.Len() != 1 || f.Obstacles()[0].X != 396 {
		t.Errorf("second obstacle should be removed on the next tick, got %+v", f.Obstacles())
	}
}

func TestAdvanceRemovesAdjacentLeavers(t *testing.T) {
	f := newTestField(Obstacle{X: -51}, Obstacle{X: -50}, Obstacle{X: 200})

	f.Advance(farHitbox, 100)

	if f.Len() != 1 || f.Obstacles()[0].X != 198 {
		t.Errorf("both off-screen obstacles should go and nothing else, got %+v", f.Obstacles())
	}
}

func TestAdvanceStopsAtCollision(t *testing.T) {
	// First obstacle sits on the lane with its gap far above the actor.
	f := newTestField(Obstacle{X: 90, GapTop: 0}, Obstacle{X: 300}, Obstacle{X: 500})

	collided, passed := f.Advance(farHitbox, 100)

	if !collided {
		t.Fatal("expected collision")
	}
	if passed != 0 {
		t.Errorf("passed = %d, expected 0", passed)
	}
	got := f.Obstacles()
	if len(got) != 3 {
		t.Fatalf("collision should keep every obstacle, got %d", len(got))
	}
	if got[0].X != 88 || got[1].X != 300 || got[2].X != 500 {
		t.Errorf("obstacles after the collision should be untouched, got %+v", got)
	}
}

func TestAdvanceScoresOnTrailingEdge(t *testing.T) {
	// Gap around the actor so passing through is safe.
	f := newTestField(Obstacle{X: 52, GapTop: 175})

	_, passed := f.Advance(farHitbox, 100)
	if passed != 0 {
		t.Fatalf("right edge 100 is not past lane 100 yet, passed = %d", passed)
	}

	_, passed = f.Advance(farHitbox, 100)
	if passed != 1 || !f.Obstacles()[0].Scored {
		t.Fatalf("right edge 98 should score, passed = %d", passed)
	}

	_, passed = f.Advance(farHitbox, 100)
	if passed != 0 {
		t.Errorf("scored obstacle must not score again, passed = %d", passed)
	}
}

func TestObstacleCollides(t *testing.T) {
	o := Obstacle{X: 88, GapTop: 200}

	tests := []struct {
		name     string
		hb       core.Box
		expected bool
	}{
		{"inside gap", core.BoxAround(100, 210, 9), false},
		{"above gap-top", core.BoxAround(100, 195, 9), true},
		{"below gap", core.BoxAround(100, 345, 9), true},
		{"flush with gap bottom", core.BoxAround(100, 341, 9), false},
		{"left of columns", core.BoxAround(70, 100, 9), false},
		{"right of columns", core.BoxAround(150, 100, 9), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := o.Collides(tc.hb, 50, 150); got != tc.expected {
				t.Errorf("Collides() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
