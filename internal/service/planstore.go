package service

import (
	"github.com/samuhlo/diet-planner-cli/internal/model"
)

// PlanListener receives a snapshot of the whole plan after a mutation.
type PlanListener func(model.WeeklyPlan)

// PlanStore holds the mutable weekly plan. It follows a single-writer
// contract: mutations happen from one call site at a time, and listener
// notification runs synchronously on the writer's stack after the write
// completes. Readers always work on deep-copied snapshots, so a
// snapshot taken before a mutation never changes underneath a consumer.
type PlanStore struct {
	plan model.WeeklyPlan
	subs map[int]PlanListener
	next int
}

func NewPlanStore() *PlanStore {
	return &PlanStore{
		plan: model.WeeklyPlan{},
		subs: map[int]PlanListener{},
	}
}

// MealPatch is a field-level merge for one meal slot. Nil fields keep
// the existing value; last write wins per field.
type MealPatch struct {
	RecipeName *string
	Diners     *int
}

// SetMeal read-modify-writes the slot for (day, meal), creating the day
// and slot when absent.
func (s *PlanStore) SetMeal(day model.Weekday, meal model.MealType, patch MealPatch) {
	dp := s.ensureDay(day)
	if dp.Meals == nil {
		dp.Meals = map[model.MealType]*model.MealSlot{}
	}
	slot := dp.Meals[meal]
	if slot == nil {
		slot = &model.MealSlot{}
		dp.Meals[meal] = slot
	}
	if patch.RecipeName != nil {
		slot.RecipeName = *patch.RecipeName
	}
	if patch.Diners != nil {
		slot.Diners = *patch.Diners
	}
	s.notify()
}

// SetSupplementPlan replaces the day's supplement sub-plan wholesale.
// Sub-plans are edited as one cohesive unit (flag + list), so there is
// no per-field merge here.
func (s *PlanStore) SetSupplementPlan(day model.Weekday, plan model.ItemPlan) {
	s.ensureDay(day).Supplements = clonePlanItems(&plan)
	s.notify()
}

func (s *PlanStore) SetSnackPlan(day model.Weekday, plan model.ItemPlan) {
	s.ensureDay(day).Snacks = clonePlanItems(&plan)
	s.notify()
}

func (s *PlanStore) SetDessertPlan(day model.Weekday, plan model.ItemPlan) {
	s.ensureDay(day).Desserts = clonePlanItems(&plan)
	s.notify()
}

// Clear resets the store to an empty plan.
func (s *PlanStore) Clear() {
	s.plan = model.WeeklyPlan{}
	s.notify()
}

// Replace swaps in a whole plan, e.g. one loaded from disk.
func (s *PlanStore) Replace(plan model.WeeklyPlan) {
	s.plan = clonePlan(plan)
	s.notify()
}

// Snapshot returns a deep copy of the current plan.
func (s *PlanStore) Snapshot() model.WeeklyPlan {
	return clonePlan(s.plan)
}

// Subscribe registers a listener and returns its unsubscribe function.
func (s *PlanStore) Subscribe(fn PlanListener) (unsubscribe func()) {
	id := s.next
	s.next++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

func (s *PlanStore) ensureDay(day model.Weekday) *model.DailyPlan {
	dp := s.plan[day]
	if dp == nil {
		dp = &model.DailyPlan{}
		s.plan[day] = dp
	}
	return dp
}

func (s *PlanStore) notify() {
	if len(s.subs) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, fn := range s.subs {
		fn(snap)
	}
}

func clonePlan(plan model.WeeklyPlan) model.WeeklyPlan {
	out := model.WeeklyPlan{}
	for day, dp := range plan {
		if dp == nil {
			continue
		}
		cp := &model.DailyPlan{
			Supplements: clonePlanItems(dp.Supplements),
			Snacks:      clonePlanItems(dp.Snacks),
			Desserts:    clonePlanItems(dp.Desserts),
		}
		if dp.Meals != nil {
			cp.Meals = make(map[model.MealType]*model.MealSlot, len(dp.Meals))
			for mt, slot := range dp.Meals {
				if slot == nil {
					continue
				}
				c := *slot
				cp.Meals[mt] = &c
			}
		}
		out[day] = cp
	}
	return out
}

func clonePlanItems(p *model.ItemPlan) *model.ItemPlan {
	if p == nil {
		return nil
	}
	cp := &model.ItemPlan{Enabled: p.Enabled}
	if len(p.Items) > 0 {
		cp.Items = make([]model.ItemSelection, len(p.Items))
		copy(cp.Items, p.Items)
	}
	return cp
}
