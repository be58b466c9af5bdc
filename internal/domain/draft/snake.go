package draft

// SnakeOrder generates the full pick sequence for the given manager order and
// round count. Odd rounds iterate managers forward, even rounds in reverse, so
// average draft position stays fair. Pick numbers are 1-based and increase
// monotonically across the whole sequence.
func SnakeOrder(managerIDs []int, rounds int) []Slot {
	if len(managerIDs) == 0 || rounds <= 0 {
		return nil
	}

	slots := make([]Slot, 0, len(managerIDs)*rounds)
	pick := 1
	for round := 1; round <= rounds; round++ {
		if round%2 == 1 {
			for _, managerID := range managerIDs {
				slots = append(slots, Slot{Pick: pick, Round: round, ManagerID: managerID})
				pick++
			}
			continue
		}
		for i := len(managerIDs) - 1; i >= 0; i-- {
			slots = append(slots, Slot{Pick: pick, Round: round, ManagerID: managerIDs[i]})
			pick++
		}
	}

	return slots
}
