package context

import (
	"surfacer/internal/regalloc"
	"surfacer/internal/vmtape"
)

// GetTape composes GetSSATape and register allocation, returning a
// ready-to-evaluate VM tape bound to registerLimit registers directly.
func (c *Context) GetTape(root Node, registerLimit uint8) (*vmtape.Tape, error) {
	ssaTape, err := c.GetSSATape(root)
	if err != nil {
		return nil, err
	}
	return regalloc.Allocate(ssaTape, registerLimit)
}
