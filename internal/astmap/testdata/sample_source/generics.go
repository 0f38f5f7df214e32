package sample

// Container holds a single value of any type.
type Container[T any] struct {
	Value T
}

func (c Container[T]) Get() T {
	return c.Value
}

func (c *Container[T]) Set(v T) {
	c.Value = v
}

// Pair holds a key and a value.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

func (p Pair[K, V]) GetKey() K {
	return p.Key
}

func (p *Pair[K, V]) SetKey(k K) {
	p.Key = k
}
