// Package inventory implements the capacity-bounded container and its
// atomic store/discard decision.
//
// An Inventory has a capacity fixed at construction and an occupancy that
// only grows: there is no removal and no retry. Whether a stack fits is
// decided once, in arrival order, with all-or-nothing semantics: a stack
// is stored whole or not at all. Because each decision depends on the
// cumulative outcome of the earlier ones, the same set of stacks can end
// at different occupancies depending on presentation order. That is
// deterministic, expected behavior.
package inventory

import (
	"fmt"

	"github.com/stowage-dev/stowage/pkg/catalog"
)

// Sizer maps an (item, quantity) pair to the capacity units one stack
// consumes. The decision logic in Add never inspects the policy, so a
// different unit function can be supplied without touching it.
type Sizer func(item *catalog.Item, quantity int) int

// UnitSizer charges one capacity unit per quantity unit.
func UnitSizer(_ *catalog.Item, quantity int) int {
	return quantity
}

// WeightedSizer charges quantity times the item's declared weight.
// Items without a weight fall back to one unit per quantity unit.
func WeightedSizer(item *catalog.Item, quantity int) int {
	if item == nil || item.Weight == 0 {
		return quantity
	}
	return quantity * item.Weight
}

// Stack is a request to store a quantity of one item as a single
// indivisible unit. Item points into the owning Catalog's storage.
type Stack struct {
	Item     *catalog.Item
	Quantity int
	size     int
}

// NewStack builds a stack whose size is fixed up front by the given
// policy. A nil sizer means UnitSizer.
func NewStack(item *catalog.Item, quantity int, sizer Sizer) Stack {
	if sizer == nil {
		sizer = UnitSizer
	}
	return Stack{Item: item, Quantity: quantity, size: sizer(item, quantity)}
}

// Size returns the capacity units this stack consumes.
func (s Stack) Size() int {
	return s.size
}

// Inventory is one capacity-bounded container.
type Inventory struct {
	capacity int
	occupied int
	stacks   []Stack
}

// New creates an inventory with the given maximum size. The capacity is
// not validated here; Add behaves safely against any value, including
// negative ones (which simply reject everything).
func New(capacity int) *Inventory {
	return &Inventory{capacity: capacity}
}

// Add attempts to store the whole stack. It returns true and grows the
// occupancy by the stack's size only if the result stays within capacity;
// otherwise it returns false and leaves the inventory untouched. A
// rejected stack is gone for good; there is no later re-attempt.
//
// Stacks with a negative size are rejected unconditionally: occupancy
// only ever grows.
func (inv *Inventory) Add(s Stack) bool {
	if s.Size() < 0 || inv.occupied+s.Size() > inv.capacity {
		return false
	}
	inv.occupied += s.Size()
	inv.stacks = append(inv.stacks, s)
	return true
}

// Capacity returns the declared maximum size.
func (inv *Inventory) Capacity() int {
	return inv.capacity
}

// Occupied returns the current total occupancy.
func (inv *Inventory) Occupied() int {
	return inv.occupied
}

// Remaining returns the unused capacity. It can be negative for
// inventories constructed with a negative capacity.
func (inv *Inventory) Remaining() int {
	return inv.capacity - inv.occupied
}

// Stacks returns the stored stacks in acceptance order.
// The returned slice must not be modified.
func (inv *Inventory) Stacks() []Stack {
	return inv.stacks
}

// String renders the final state for the storage summary, one line for
// the inventory followed by one indented line per stored stack.
func (inv *Inventory) String() string {
	out := fmt.Sprintf("Inventory (%d/%d):", inv.occupied, inv.capacity)
	for _, s := range inv.stacks {
		name := ""
		if s.Item != nil {
			name = s.Item.Name
		}
		out += fmt.Sprintf("\n  (%2d) %s", s.Size(), name)
	}
	return out
}
