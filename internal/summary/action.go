// Package summary classifies planned Terraform resource changes and
// groups the affected addresses by their effective action.
package summary

import (
	"sort"
	"strings"
)

// Action represents the effective operation Terraform will perform on a
// resource. The vocabulary is open: beyond the well-known values, any
// unanticipated combination of action legs collapses into a derived
// Action instead of failing.
type Action string

const (
	ActionCreate  Action = "create"  // Resource will be created
	ActionDelete  Action = "delete"  // Resource will be destroyed
	ActionUpdate  Action = "update"  // Resource will be updated in place
	ActionReplace Action = "replace" // Resource will be destroyed and recreated
	ActionNoOp    Action = "no-op"   // No change planned
	ActionUnknown Action = "unknown" // Record carried no actions
)

// UnknownAddress labels records that carry no resource address.
const UnknownAddress = "unknown_address"

// Classify collapses the action legs of a planned change into a single
// effective Action. Membership decides, not order or multiplicity: a
// delete+create pair in either order is a replacement, single intents
// are reported as-is, and any other non-empty combination is joined
// into a sorted, deduplicated, comma-separated Action. No legs at all
// means the record could not be interpreted.
func Classify(actions []string) Action {
	set := make(map[string]struct{}, len(actions))
	for _, a := range actions {
		set[a] = struct{}{}
	}

	has := func(a Action) bool {
		_, ok := set[string(a)]
		return ok
	}

	switch {
	case has(ActionDelete) && has(ActionCreate):
		return ActionReplace
	case has(ActionCreate):
		return ActionCreate
	case has(ActionDelete):
		return ActionDelete
	case has(ActionUpdate):
		return ActionUpdate
	case has(ActionNoOp):
		return ActionNoOp
	case len(set) > 0:
		tokens := make([]string, 0, len(set))
		for a := range set {
			tokens = append(tokens, a)
		}
		sort.Strings(tokens)
		return Action(strings.Join(tokens, ","))
	default:
		return ActionUnknown
	}
}
