package pagingview

// Direction is the order pages ascend along the horizontal axis.
type Direction int

const (
	// DirectionLeftToRight lays the next page out to the right of the
	// current one.
	DirectionLeftToRight Direction = iota
	// DirectionRightToLeft mirrors the layout for right-to-left content.
	DirectionRightToLeft
)

func (d Direction) String() string {
	if d == DirectionRightToLeft {
		return "right-to-left"
	}
	return "left-to-right"
}

// Reversed returns the opposite direction.
func (d Direction) Reversed() Direction {
	if d == DirectionLeftToRight {
		return DirectionRightToLeft
	}
	return DirectionLeftToRight
}

// PageType names the role a slot plays relative to the visible page.
type PageType int

const (
	PageTypeCurrent PageType = iota
	PageTypeNext
	PageTypePrevious
)

func (t PageType) String() string {
	switch t {
	case PageTypeNext:
		return "next"
	case PageTypePrevious:
		return "previous"
	default:
		return "current"
	}
}

// leftPageType reports which role sits on the physical left of the current
// page under d.
func leftPageType(d Direction) PageType {
	if d == DirectionRightToLeft {
		return PageTypeNext
	}
	return PageTypePrevious
}

// rightPageType mirrors leftPageType.
func rightPageType(d Direction) PageType {
	if d == DirectionRightToLeft {
		return PageTypePrevious
	}
	return PageTypeNext
}
