package folio

import "fmt"

type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.0f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.0f%%", p)
	if res == "+0%" {
		return "-"
	}
	return res
}
