// This package is intended to help user control the flow of callback based work.

// To install flow:
// 	go get -u github.com/andriiyaremenko/flow

// How to use:
//
// A Flow is a queue of stages. Every stage runs one or more units,
// and the next stage starts only when the units say so through their *flow.Controller:
//   - Done(err, value) joins: the next stage starts when every unit of the stage is done,
//     with the aggregated error and the values in launch order;
//   - Continue(err, values...) starts the next stage right away;
//   - Break(err, values...) skips to the last stage;
//   - Spread(err, values) starts the first unit of the next stage once per element of values.
//
// Signals of a stage that was already left are ignored.
//
// Sequence:
// import (
// 	"github.com/andriiyaremenko/flow"
// )
// func main() {
// 	flow.New(func(c *flow.Controller, err error, args ...any) {
// 		c.Continue(nil, 1)
// 	}).
// 		Then(func(c *flow.Controller, err error, args ...any) {
// 			c.Continue(nil, args[0].(int)+1)
// 		}).
// 		Finally(func(c *flow.Controller, err error, args ...any) {
// 			// args[0] == 2
// 		})
// }
//
// Join:
// import (
// 	"github.com/andriiyaremenko/flow"
// )
// func main() {
// 	fetch := func(url string) flow.Unit {
// 		return flow.Go(func(c *flow.Controller, err error, args ...any) {
// 			body, err := get(url)
// 			c.Done(err, body)
// 		})
// 	}
//
// 	last, outcome := flow.Await()
//
// 	flow.New(fetch("https://a.example"), fetch("https://b.example")).
// 		Finally(last)
//
// 	result := <-outcome
// 	// handle error
// 	if err := result.Err; err != nil {
// 		// ...
// 	}
//
// 	// or every underlying error separately:
// 	var aggregated *flow.ErrAggregated
// 	if errors.As(result.Err, &aggregated) {
// 		for _, err := range aggregated.Inner() {
// 			// ...
// 		}
// 	}
//
// 	// result.Values[0] is the body of a.example, result.Values[1] of b.example
// }
//
// Collections:
// import (
// 	"github.com/andriiyaremenko/flow"
// )
// func main() {
// 	ship := func(c *flow.Controller, value, key any, err error, args ...any) {
// 		c.Continue(err, args...)
// 	}
// 	notify := func(c *flow.Controller, value, key any, err error, args ...any) {
// 		c.Done(nil, key)
// 	}
//
// 	flow.New().
// 		Sequential(flow.Values("a", "b", "c"), ship).
// 		Parallel(flow.FromMap(map[string]int{"eu": 1, "us": 2}), notify).
// 		Finally(func(c *flow.Controller, err error, args ...any) {
// 			// args == []any{"eu", "us"}
// 		})
// }
package flow
