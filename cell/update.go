package cell

// Number is the set of types Increment and Decrement work on.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Update replaces the stored value with fn(current) using a
// read-modify-CompareAndSet loop and returns the value it stored.
//
// fn may be called several times when other writers race with the update,
// so it must not have side effects. With spin set to false the first lost
// race returns ErrUpdateContention and leaves the cell untouched.
func (c *Cell[T]) Update(fn func(*T) *T, spin bool) (*T, error) {
	for {
		current := c.Get()
		next := fn(current)
		if c.CompareAndSet(current, next) {
			return next, nil
		}
		if !spin {
			return nil, ErrUpdateContention
		}
	}
}

// Increment adds delta to the number held by c and returns the result.
func Increment[N Number](c *Cell[N], delta N, spin bool) (N, error) {
	v, err := c.Update(func(current *N) *N {
		n := *current + delta
		return &n
	}, spin)
	if err != nil {
		return 0, err
	}
	return *v, nil
}

// Decrement subtracts delta from the number held by c and returns the result.
func Decrement[N Number](c *Cell[N], delta N, spin bool) (N, error) {
	v, err := c.Update(func(current *N) *N {
		n := *current - delta
		return &n
	}, spin)
	if err != nil {
		return 0, err
	}
	return *v, nil
}
