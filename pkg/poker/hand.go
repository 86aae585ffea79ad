package poker

import "fmt"

// HandType is a poker hand classification, i.e., flush
type HandType int

// Constants for HandType, ordered weakest to strongest
const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the string representation of a hand type
func (h HandType) String() string {
	switch h {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		panic(fmt.Sprintf("unknown hand type: %d", int(h)))
	}
}

// MarshalJSON marshals the hand type as its display name
func (h HandType) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", h.String())), nil
}

// HandTypeFromString returns the HandType for a display name
func HandTypeFromString(s string) (HandType, bool) {
	for h := HighCard; h <= StraightFlush; h++ {
		if h.String() == s {
			return h, true
		}
	}

	return 0, false
}

// UnmarshalJSON unmarshals a display name into a hand type
func (h *HandType) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid hand type: %s", string(b))
	}

	ht, ok := HandTypeFromString(string(b[1 : len(b)-1]))
	if !ok {
		return fmt.Errorf("unknown hand type: %s", string(b))
	}

	*h = ht
	return nil
}
