package ecs

import "testing"

type recordingSystem struct {
	name string
	log  *[]string
}

func (r recordingSystem) Update(*World) {
	*r.log = append(*r.log, r.name)
}

func TestSchedulerRunsPhasesInOrder(t *testing.T) {
	var log []string
	s := NewScheduler()
	s.Add(PhaseRules, recordingSystem{"rules", &log})
	s.Add(PhaseInput, recordingSystem{"input", &log})
	s.Add(PhaseCollision, recordingSystem{"collision", &log})
	s.Add(PhasePhysics, recordingSystem{"physics", &log})
	s.Add(PhaseMovement, recordingSystem{"movement-a", &log})
	s.Add(PhaseMovement, recordingSystem{"movement-b", &log})

	s.Update(NewWorld())

	want := []string{"input", "movement-a", "movement-b", "physics", "collision", "rules"}
	if len(log) != len(want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, log)
		}
	}
}

func TestSchedulerIgnoresInvalidPhase(t *testing.T) {
	var log []string
	s := NewScheduler()
	s.Add(Phase(99), recordingSystem{"bad", &log})
	s.Add(PhaseInput, nil)
	s.Update(NewWorld())
	if len(log) != 0 || len(s.Systems()) != 0 {
		t.Fatalf("expected nothing registered, got %v", log)
	}
}
