package x12

import (
	"fmt"
)

// ControlNumbers tracks the interchange, functional group, and
// transaction set control numbers for one interchange emission. Numbers
// advance monotonically and are owned exclusively by the interchange
// emitter; header and trailer values are taken from the same counter so
// ISA13/IEA02, GS06/GE02, and ST02/SE02 always agree.
type ControlNumbers struct {
	Interchange int
	Group       int
	Transaction int
}

// NewControlNumbers returns control numbers starting at the given seeds.
// Seeds below 1 start at 1.
func NewControlNumbers(isa, gs, st int) *ControlNumbers {
	if isa < 1 {
		isa = 1
	}
	if gs < 1 {
		gs = 1
	}
	if st < 1 {
		st = 1
	}
	return &ControlNumbers{
		Interchange: isa,
		Group:       gs,
		Transaction: st,
	}
}

// ISA13 returns the current interchange control number in its fixed
// 9-digit form.
func (c *ControlNumbers) ISA13() string {
	return fmt.Sprintf("%09d", c.Interchange)
}

// GS06 returns the current group control number.
func (c *ControlNumbers) GS06() string {
	return fmt.Sprintf("%d", c.Group)
}

// ST02 returns the current transaction set control number, zero padded to
// at least four digits.
func (c *ControlNumbers) ST02() string {
	return fmt.Sprintf("%04d", c.Transaction)
}

// NextTransaction returns the current ST02 and advances the transaction
// counter.
func (c *ControlNumbers) NextTransaction() string {
	st := c.ST02()
	c.Transaction++
	return st
}

// AdvanceInterchange advances the interchange and group counters after an
// interchange has been fully emitted.
func (c *ControlNumbers) AdvanceInterchange() {
	c.Interchange++
	c.Group++
}
