package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

// Container accumulates the middleware chain for one API area and hands it
// over in registration order.
type Container struct {
	mws huma.Middlewares
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Add(mw func(huma.Context, func(huma.Context))) {
	c.mws = append(c.mws, mw)
}

// GetAllAndClear returns everything added so far and resets the container
// for the next area.
func (c *Container) GetAllAndClear() huma.Middlewares {
	mws := c.mws
	c.mws = nil
	return mws
}
