package cheby2

// Capacity fixes the largest prototype order a filter instance can hold.
// Section storage for that order is reserved when the filter is created.
type Capacity interface {
	MaxOrder() int
}

// Order1 through Order16 are the predefined capacities.
type (
	Order1  struct{}
	Order2  struct{}
	Order3  struct{}
	Order4  struct{}
	Order5  struct{}
	Order6  struct{}
	Order7  struct{}
	Order8  struct{}
	Order9  struct{}
	Order10 struct{}
	Order11 struct{}
	Order12 struct{}
	Order13 struct{}
	Order14 struct{}
	Order15 struct{}
	Order16 struct{}
)

func (Order1) MaxOrder() int  { return 1 }
func (Order2) MaxOrder() int  { return 2 }
func (Order3) MaxOrder() int  { return 3 }
func (Order4) MaxOrder() int  { return 4 }
func (Order5) MaxOrder() int  { return 5 }
func (Order6) MaxOrder() int  { return 6 }
func (Order7) MaxOrder() int  { return 7 }
func (Order8) MaxOrder() int  { return 8 }
func (Order9) MaxOrder() int  { return 9 }
func (Order10) MaxOrder() int { return 10 }
func (Order11) MaxOrder() int { return 11 }
func (Order12) MaxOrder() int { return 12 }
func (Order13) MaxOrder() int { return 13 }
func (Order14) MaxOrder() int { return 14 }
func (Order15) MaxOrder() int { return 15 }
func (Order16) MaxOrder() int { return 16 }

func maxOrder[C Capacity]() int {
	var c C
	return c.MaxOrder()
}
