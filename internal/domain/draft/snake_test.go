package draft

import "testing"

func TestSnakeOrderReversesEvenRounds(t *testing.T) {
	managers := []int{1, 2, 3, 4}
	slots := SnakeOrder(managers, 3)

	if len(slots) != 12 {
		t.Fatalf("expected 12 slots, got %d", len(slots))
	}
	for i, slot := range slots {
		if slot.Pick != i+1 {
			t.Fatalf("pick numbers must be 1-based and monotonic, slot %d has pick %d", i, slot.Pick)
		}
	}

	if slots[0].ManagerID != 1 || slots[3].ManagerID != 4 {
		t.Fatalf("round 1 must iterate managers forward, got %d..%d", slots[0].ManagerID, slots[3].ManagerID)
	}
	if slots[4].ManagerID != 4 || slots[7].ManagerID != 1 {
		t.Fatalf("round 2 must iterate managers in reverse, got %d..%d", slots[4].ManagerID, slots[7].ManagerID)
	}
	if slots[8].ManagerID != 1 {
		t.Fatalf("round 3 must iterate forward again, got %d", slots[8].ManagerID)
	}
}

func TestSnakeOrderEmptyInputs(t *testing.T) {
	if slots := SnakeOrder(nil, 6); slots != nil {
		t.Fatalf("expected nil for empty manager list, got %v", slots)
	}
	if slots := SnakeOrder([]int{1}, 0); slots != nil {
		t.Fatalf("expected nil for zero rounds, got %v", slots)
	}
}
