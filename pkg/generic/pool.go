package generic

import "sync"

// Pool is a typed sync.Pool. Values are reset before they go back.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(T)
}

func NewPool[T any](generate func() T, reset func(T)) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return generate()
			},
		},
		reset: reset,
	}
}

func (p *Pool[T]) Get() T {
	return p.pool.Get().(T)
}

func (p *Pool[T]) Put(value T) {
	if p.reset != nil {
		p.reset(value)
	}
	p.pool.Put(value)
}

// With lends a value to fn and returns it afterwards.
func (p *Pool[T]) With(fn func(T) error) error {
	v := p.Get()
	defer p.Put(v)
	return fn(v)
}
