package variants

import "strings"

type classValueKind int

const (
	classValueZero classValueKind = iota
	classValueLiteral
	classValueSequence
	classValueSlotMap
)

// ClassValue is a class-name payload attached to a variant value, a slot
// base, or a compound rule. It is one of three shapes, decided once at
// construction: a literal class string, an ordered sequence of class strings,
// or a per-slot mapping. Literal and sequence payloads are global — in slots
// mode every slot emits them; a slot map is emitted only by the named slots.
type ClassValue struct {
	kind    classValueKind
	literal string
	seq     []string
	slots   map[string]ClassValue
}

// Class wraps a whitespace-joined class string.
func Class(s string) ClassValue {
	return ClassValue{kind: classValueLiteral, literal: s}
}

// Classes wraps an ordered sequence of class strings, concatenated on
// resolution.
func Classes(items ...string) ClassValue {
	copied := make([]string, len(items))
	copy(copied, items)
	return ClassValue{kind: classValueSequence, seq: copied}
}

// SlotMap wraps a per-slot payload. Entries must themselves be literal or
// sequence payloads; nesting slot maps is a configuration error.
func SlotMap(m map[string]ClassValue) ClassValue {
	copied := make(map[string]ClassValue, len(m))
	for slot, payload := range m {
		copied[slot] = payload
	}
	return ClassValue{kind: classValueSlotMap, slots: copied}
}

// IsZero reports whether the payload is absent.
func (cv ClassValue) IsZero() bool {
	return cv.kind == classValueZero
}

func (cv ClassValue) isSlotMap() bool {
	return cv.kind == classValueSlotMap
}

func (cv ClassValue) hasNestedSlotMap() bool {
	if cv.kind != classValueSlotMap {
		return false
	}
	for _, payload := range cv.slots {
		if payload.kind == classValueSlotMap {
			return true
		}
	}
	return false
}

func (cv ClassValue) slotNames() []string {
	if cv.kind != classValueSlotMap {
		return nil
	}
	names := make([]string, 0, len(cv.slots))
	for slot := range cv.slots {
		names = append(names, slot)
	}
	return names
}

// resolve returns the class fragment this payload contributes for the given
// slot. The empty fragment means "contributes nothing".
func (cv ClassValue) resolve(slot string) string {
	switch cv.kind {
	case classValueLiteral:
		return cv.literal
	case classValueSequence:
		return strings.Join(cv.seq, " ")
	case classValueSlotMap:
		payload, ok := cv.slots[slot]
		if !ok {
			return ""
		}
		return payload.resolve(slot)
	default:
		return ""
	}
}
