package summary

import (
	"slices"

	"github.com/terassyi/matome/internal/plan"
)

// Summary groups resource addresses by their effective action.
// Group slices keep the order in which records appeared in the plan;
// duplicate addresses are kept as separate entries.
type Summary map[Action][]string

// Aggregate classifies every resource change and groups the addresses by
// the resulting action. Every record lands in exactly one group; records
// without an address are booked under UnknownAddress, records without a
// change are classified from an empty leg list.
func Aggregate(changes []plan.ResourceChange) Summary {
	s := make(Summary)
	for _, rc := range changes {
		var actions []string
		if rc.Change != nil {
			actions = rc.Change.Actions
		}

		address := rc.Address
		if address == "" {
			address = UnknownAddress
		}

		action := Classify(actions)
		s[action] = append(s[action], address)
	}
	return s
}

// Actions returns the summary's actions in lexicographic order.
func (s Summary) Actions() []Action {
	actions := make([]Action, 0, len(s))
	for a := range s {
		actions = append(actions, a)
	}
	slices.Sort(actions)
	return actions
}

// Total returns the number of aggregated resource changes.
func (s Summary) Total() int {
	total := 0
	for _, addrs := range s {
		total += len(addrs)
	}
	return total
}
