// Package stack implements the fixed depth CHIP-8 call stack.
package stack

import "errors"

// Depth is the number of return addresses the stack can hold.
const Depth = 16

var (
	// ErrStackOverflow is returned when pushing onto a full stack.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned when popping from an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
)

// Pointer is the stack pointer, which lives in the register file.
type Pointer interface {
	SP() byte
	IncrementSP()
	DecrementSP()
}

// Stack stores return addresses. The pointer indexing it is passed to every
// operation so that it stays part of the register file.
type Stack struct {
	slots [Depth]uint16
}

// New returns an empty stack.
func New() *Stack {
	return &Stack{}
}

// Reset zeroes all slots.
func (s *Stack) Reset() {
	s.slots = [Depth]uint16{}
}

// Push stores value at the slot sp points to and increments sp.
func (s *Stack) Push(sp Pointer, value uint16) error {
	index := sp.SP()
	if int(index) >= Depth {
		return ErrStackOverflow
	}
	s.slots[index] = value
	sp.IncrementSP()
	return nil
}

// Pop decrements sp and returns the value at the slot it then points to.
func (s *Stack) Pop(sp Pointer) (uint16, error) {
	if sp.SP() == 0 {
		return 0, ErrStackUnderflow
	}
	sp.DecrementSP()
	return s.slots[sp.SP()], nil
}
