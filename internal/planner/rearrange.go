package planner

// rearrangeDailyVariety swaps lunch and dinner entries forward so a day does
// not repeat the protein category of an earlier meal that day. It scans each
// day once and takes the first later entry that resolves the clash; days
// with no such entry keep the repeat. Sequences are modified in place.
func rearrangeDailyVariety(breakfast, lunch, dinner []string) {
	days := min(len(breakfast), len(lunch))
	withDinner := len(dinner) >= days && !allEmpty(dinner)

	for i := 0; i < days; i++ {
		morning := CategoryOf(breakfast[i])

		if CategoryOf(lunch[i]) == morning {
			for j := i + 1; j < days; j++ {
				if CategoryOf(lunch[j]) != morning {
					lunch[i], lunch[j] = lunch[j], lunch[i]
					break
				}
			}
		}

		if !withDinner {
			continue
		}
		noon := CategoryOf(lunch[i])
		if c := CategoryOf(dinner[i]); c == morning || c == noon {
			for j := i + 1; j < days; j++ {
				if c := CategoryOf(dinner[j]); c != morning && c != noon {
					dinner[i], dinner[j] = dinner[j], dinner[i]
					break
				}
			}
		}
	}
}

func allEmpty(items []string) bool {
	for _, s := range items {
		if s != "" {
			return false
		}
	}
	return true
}
