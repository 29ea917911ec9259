// Package render takes the decoder's calendars and writes them to an
// external, caller-chosen format. Per §6, output rendering is a named
// collaborator the engine addresses through an interface, not a fixed
// technology; HTML rendering is explicitly out of scope.
package render

import "go.xesthora.dev/xesthora/internal/model"

// Writer renders a set of decoded calendars (class calendars followed by
// teacher calendars, in the decoder's order) to some destination.
type Writer interface {
	Write(dir string, calendars []*model.OutputCalendar) error
}
