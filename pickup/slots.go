package pickup

import (
	"fmt"
	"time"
)

// Interval between pickup slots
const Interval = 15 * time.Minute

// Slots lists pickup labels such as "12:15 PM" from start to end inclusive,
// both given as 24h "HH:MM".
func Slots(start, end string) ([]string, error) {
	from, err := time.Parse("15:04", start)
	if err != nil {
		return nil, fmt.Errorf("pickup start %q: %w", start, err)
	}
	to, err := time.Parse("15:04", end)
	if err != nil {
		return nil, fmt.Errorf("pickup end %q: %w", end, err)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("pickup window %s-%s ends before it starts", start, end)
	}

	var slots []string
	for t := from; !t.After(to); t = t.Add(Interval) {
		slots = append(slots, t.Format("3:04 PM"))
	}
	return slots, nil
}
