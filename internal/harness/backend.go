package harness

import (
	"context"
	"fmt"

	"github.com/roach88/pongbench/internal/sim"
)

type simBackend struct {
	k *sim.Kernel
}

// NewSimBackend exposes a simulation kernel as a Backend.
func NewSimBackend(k *sim.Kernel) Backend {
	return &simBackend{k: k}
}

func (b *simBackend) Lookup(name string) (Line, error) {
	w, err := b.k.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSignal, name)
	}
	return w, nil
}

func (b *simBackend) StartClock(name string, period, high int64) (Clock, error) {
	c, err := b.k.StartClock(name, sim.Time(period), sim.Time(high))
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (b *simBackend) RisingEdge(ctx context.Context, s Signal) error {
	w, err := b.wire(s)
	if err != nil {
		return err
	}
	return b.k.RisingEdge(ctx, w)
}

func (b *simBackend) FallingEdge(ctx context.Context, s Signal) error {
	w, err := b.wire(s)
	if err != nil {
		return err
	}
	return b.k.FallingEdge(ctx, w)
}

// wire resolves a handle to the kernel wire behind it.
func (b *simBackend) wire(s Signal) (*sim.Wire, error) {
	switch v := s.(type) {
	case *sim.Wire:
		return v, nil
	case *sim.Clock:
		return v.Wire(), nil
	}
	w, err := b.k.Lookup(s.Name())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSignal, s.Name())
	}
	return w, nil
}
