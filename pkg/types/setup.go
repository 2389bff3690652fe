package types

// SetupKind is the classified trade thesis for a bar.
type SetupKind string

const (
	SetupNone          SetupKind = ""
	SetupReversalLong  SetupKind = "ReversalLong"
	SetupReversalShort SetupKind = "ReversalShort"
	SetupContLong      SetupKind = "ContLong"
	SetupContShort     SetupKind = "ContShort"
)

// Side is the trade direction implied by a setup.
type Side string

const (
	SideNone  Side = ""
	SideLong  Side = "long"
	SideShort Side = "short"
)

// SideOf maps a setup kind to its trade direction.
func SideOf(kind SetupKind) Side {
	switch kind {
	case SetupReversalLong, SetupContLong:
		return SideLong
	case SetupReversalShort, SetupContShort:
		return SideShort
	default:
		return SideNone
	}
}
