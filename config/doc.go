// Package config builds flows from human-readable YAML plans.
//
// A plan lists steps by the names units were registered under:
//
//	name: checkout
//	steps:
//	  - then: [validate, price]
//	  - sequential:
//	      items: [a, b, c]
//	      units: [ship]
//	  - parallel:
//	      items: {eu: 1, us: 2}
//	      unit: notify
//	finally: report
//
// items can be a sequence (keys are positions) or a mapping (keys are
// iterated in document order). Build returns the flow without running it.
package config
