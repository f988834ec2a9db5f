package pug

// Order is the snake draft cursor. The first team picks once, then turns come
// in pairs: 0, 1, 1, 0, 0, 1, 1, 0, ...
type Order struct {
	turn    int
	started bool
	repeat  bool
}

// NewOrder returns a cursor positioned before the first pick
func NewOrder() *Order {
	return &Order{}
}

// Next returns the index of the team whose turn it is and advances the cursor
func (o *Order) Next() int {
	if !o.started {
		o.started = true
		return o.turn % NumTeams
	}

	if o.repeat {
		o.repeat = false
		return o.turn % NumTeams
	}

	o.turn++
	o.repeat = true
	return o.turn % NumTeams
}
