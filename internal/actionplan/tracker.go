// Package actionplan tracks which of the four seeding checklist steps a
// student has completed. State survives restarts through a Store; corrupt or
// missing stored data silently degrades to an empty checklist.
package actionplan

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// TotalSteps is the fixed length of the seeding action plan.
const TotalSteps = 4

// DefaultPlanID scopes checklists of clients that do not name a plan.
const DefaultPlanID = "default"

var ErrInvalidStep = errors.New("step number must be between 1 and 4")

type Tracker struct {
	mu    sync.Mutex
	store Store
}

func NewTracker(store Store) *Tracker {
	return &Tracker{store: store}
}

// Toggle flips the completion of one step and persists the full set before
// returning. Toggling the same step twice restores the original state.
func (t *Tracker) Toggle(planID string, step int) ([]int, error) {
	if step < 1 || step > TotalSteps {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStep, step)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	set := t.load(planID)
	if set[step] {
		delete(set, step)
	} else {
		set[step] = true
	}

	steps := sorted(set)
	if err := t.store.Save(planID, steps); err != nil {
		return nil, err
	}
	return steps, nil
}

// Completed returns the completed step numbers in ascending order.
func (t *Tracker) Completed(planID string) []int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return sorted(t.load(planID))
}

// ProgressPercent is 100 * completed / total.
func (t *Tracker) ProgressPercent(planID string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.load(planID)) * 100 / TotalSteps
}

// load reads the persisted set, absorbing read failures and sanitizing
// out-of-range or duplicate entries. Never fails.
func (t *Tracker) load(planID string) map[int]bool {
	set := make(map[int]bool, TotalSteps)
	steps, err := t.store.Load(planID)
	if err != nil {
		return set
	}
	for _, n := range steps {
		if n >= 1 && n <= TotalSteps {
			set[n] = true
		}
	}
	return set
}

func sorted(set map[int]bool) []int {
	steps := make([]int, 0, len(set))
	for n := range set {
		steps = append(steps, n)
	}
	sort.Ints(steps)
	return steps
}
