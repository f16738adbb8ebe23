/*
Package formatter draws binary trees on output devices with fixed-width
fonts, e.g. a terminal.

Trees are drawn top-down, one node per line, with children indented below
their parent and the left child listed first:

	1
	├── 2
	│   ├── 4
	│   └── 5
	└── 3
	    ├── 6
	    └── ·

An empty slot is shown as '·' if its sibling slot is occupied. Node labels are
produced by fmt's %v verb. Labels too wide for the configured line width are
truncated; widths are measured in “en”s following UAX#11, so East Asian wide
characters count twice.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.

*/
package formatter

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
