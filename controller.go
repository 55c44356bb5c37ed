package flow

// Controller is handed to a running unit to signal its completion.
// It is bound to one activation of one stage: once the flow moves on,
// every signal method becomes a no-op.
type Controller struct {
	flow  *Flow
	epoch uint64
	index int

	// guarded by flow.mu
	done bool
}

// Reports whether signals of this Controller are still honored.
func (c *Controller) Alive() bool {
	c.flow.mu.Lock()
	defer c.flow.mu.Unlock()

	return c.aliveLocked()
}

func (c *Controller) aliveLocked() bool {
	return !c.done && c.epoch == c.flow.epoch
}

// Position of the unit inside its stage activation.
func (c *Controller) Index() int {
	return c.index
}

// Marks the unit as complete with err and value.
// The next stage starts once every unit of the stage is done,
// receiving the aggregated error and the values in launch order.
func (c *Controller) Done(err error, value any) {
	c.flow.done(c, err, value)
}

// Starts the next stage with err and values,
// discarding results of the siblings that are not done yet.
func (c *Controller) Continue(err error, values ...any) {
	c.flow.preempt(c, err, values)
}

// Discards every pending stage except the last one
// and starts it with err and values.
func (c *Controller) Break(err error, values ...any) {
	c.flow.breakTo(c, err, values)
}

// Starts the first unit of the next stage once per element of values,
// each with err and the element.
// nil or empty values start it once with a nil element.
func (c *Controller) Spread(err error, values any) {
	c.flow.spread(c, err, values)
}
