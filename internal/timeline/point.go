package timeline

// Point is one of the seven ordered lifecycle markers of an event, from
// catalog listing (T0) to catalog removal (T999).
type Point string

const (
	// T0 событие размещено в каталоге;
	T0 Point = "t0"
	// Ti10 открыт прием заявок;
	Ti10 Point = "ti10"
	// Ti20 прием заявок завершен;
	Ti20 Point = "ti20"
	// Ti30 начато оформление договоров;
	Ti30 Point = "ti30"
	// Ti40 мероприятие началось;
	Ti40 Point = "ti40"
	// Ti50 мероприятие завершилось;
	Ti50 Point = "ti50"
	// T999 событие снято с каталога.
	T999 Point = "t999"
)

// sequence fixes the total order of points. Order comparisons go through
// Index, never through positions inferred at call sites.
var sequence = [...]Point{T0, Ti10, Ti20, Ti30, Ti40, Ti50, T999}

// Index returns the position of p in the lifecycle order, or -1 for an
// unknown value.
func (p Point) Index() int {
	for i, s := range sequence {
		if s == p {
			return i
		}
	}
	return -1
}

// Valid reports whether p is one of the seven known points.
func (p Point) Valid() bool {
	return p.Index() >= 0
}

// Before reports whether p strictly precedes other in the lifecycle order.
func (p Point) Before(other Point) bool {
	return p.Index() < other.Index()
}

// AtOrAfter reports whether p is other or a later point.
func (p Point) AtOrAfter(other Point) bool {
	return p.Index() >= other.Index()
}
