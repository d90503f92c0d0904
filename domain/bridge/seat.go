package bridge

// Seat is a compass position at the table, in calling rotation order.
type Seat uint8

const (
	North Seat = iota
	East
	South
	West
)

// Seats lists the seats in rotation order starting from North.
var Seats = [4]Seat{North, East, South, West}

var seatNames = [4]string{"North", "East", "South", "West"}

func (s Seat) String() string {
	if s > West {
		return "?"
	}
	return seatNames[s]
}

// Next returns the seat that calls after s.
func (s Seat) Next() Seat {
	return (s + 1) % 4
}

// Partner returns the seat opposite s.
func (s Seat) Partner() Seat {
	return (s + 2) % 4
}

// Position is a seat's place in the auction relative to the dealer:
// 0 for the dealer, 3 for fourth hand.
type Position uint8

// PositionOf returns the position of seat when dealer opens the auction.
func PositionOf(seat, dealer Seat) Position {
	return Position((4 + int(seat) - int(dealer)) % 4)
}

// Vulnerability states which partnerships are vulnerable on a board.
type Vulnerability uint8

const (
	VulnerableNone Vulnerability = iota
	VulnerableNorthSouth
	VulnerableEastWest
	VulnerableBoth
)

var vulnerabilityNames = [4]string{"None", "N/S", "E/W", "Both"}

func (v Vulnerability) String() string {
	if v > VulnerableBoth {
		return "?"
	}
	return vulnerabilityNames[v]
}

// Vulnerable reports whether the partnership of seat is vulnerable.
func (v Vulnerability) Vulnerable(seat Seat) bool {
	if seat == North || seat == South {
		return v&VulnerableNorthSouth != 0
	}
	return v&VulnerableEastWest != 0
}

// Board is a 1-based board number.
type Board int

// Dealer returns the seat that calls first on the board.
func (b Board) Dealer() Seat {
	return Seat(b.index() % 4)
}

// Vulnerability follows the standard 16-board cycle.
func (b Board) Vulnerability() Vulnerability {
	n := b.index()
	return Vulnerability((n + n/4) % 4)
}

func (b Board) index() int {
	n := int(b) - 1
	if n < 0 {
		return 0
	}
	return n
}
