package domain

import "testing"

func TestAddMeatClampsAtZero(t *testing.T) {
	p := &Player{Meat: 1}

	p.AddMeat(-3)
	if p.Meat != 0 {
		t.Fatalf("meat = %d, want 0", p.Meat)
	}

	p.AddMeat(2)
	if p.Meat != 2 {
		t.Fatalf("meat = %d, want 2", p.Meat)
	}
}

func TestNextIndexCyclesThroughAllPlayers(t *testing.T) {
	count := 5
	idx := 2
	seen := map[int]bool{}
	for i := 0; i < count; i++ {
		idx = NextIndex(idx, count)
		seen[idx] = true
	}
	if len(seen) != count {
		t.Fatalf("cycle visited %d indices, want %d", len(seen), count)
	}
	if idx != 2 {
		t.Fatalf("after %d advances index = %d, want 2", count, idx)
	}
}

func TestFindWinner(t *testing.T) {
	players := []*Player{
		{ID: "p0", Meat: 2},
		{ID: "p1", Meat: 5},
		{ID: "p2", Meat: 9},
	}

	if got := FindWinner(players, 10); got != -1 {
		t.Fatalf("FindWinner() = %d, want -1", got)
	}
	if got := FindWinner(players, 5); got != 1 {
		t.Fatalf("FindWinner() = %d, want 1", got)
	}
}

func TestFindCharacter(t *testing.T) {
	players := []*Player{
		{ID: "p0", Character: "Confucius"},
		{ID: "p1", Character: "Zilu"},
	}

	if got := FindCharacter(players, "Zilu"); got != 1 {
		t.Fatalf("FindCharacter(Zilu) = %d, want 1", got)
	}
	if got := FindCharacter(players, "Zigong"); got != -1 {
		t.Fatalf("FindCharacter(Zigong) = %d, want -1", got)
	}
}
