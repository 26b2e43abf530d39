package builder

import (
	"fmt"

	"chartspec/internal/vega"
)

// AddSignal returns the signal named sig.Name, appending sig when absent.
func AddSignal(spec *vega.Spec, sig vega.Signal) *vega.Signal {
	if existing := spec.Signal(sig.Name); existing != nil {
		return existing
	}

	spec.Signals = append(spec.Signals, sig)

	return &spec.Signals[len(spec.Signals)-1]
}

// AddSignalEvents appends events to the named signal, creating it with a null
// value when absent. Events already present are skipped.
func AddSignalEvents(spec *vega.Spec, name string, events ...vega.OnEvent) {
	sig := AddSignal(spec, vega.Signal{Name: name})

	for _, e := range events {
		if !hasEvent(sig.On, e) {
			sig.On = append(sig.On, e)
		}
	}
}

func hasEvent(on []vega.OnEvent, e vega.OnEvent) bool {
	for _, o := range on {
		if o == e {
			return true
		}
	}

	return false
}

// HoverEvents sets signal to update on mouseover of markName and clears it on
// mouseout.
func HoverEvents(markName, update string) []vega.OnEvent {
	return []vega.OnEvent{
		{Events: fmt.Sprintf("@%s:mouseover", markName), Update: update},
		{Events: fmt.Sprintf("@%s:mouseout", markName), Update: "null"},
	}
}

// AddHighlightedItemEvents highlights the hovered datum of markName. Voronoi
// marks hover a cell whose datum wraps the data row.
func AddHighlightedItemEvents(spec *vega.Spec, markName string, voronoi bool) {
	AddSignalEvents(spec, vega.HighlightedItemSignal, HoverEvents(markName, datumPath(voronoi, vega.MarkIDField))...)
}

// AddHighlightedSeriesEvents highlights the series of the hovered datum of markName.
func AddHighlightedSeriesEvents(spec *vega.Spec, markName string, voronoi bool) {
	AddSignalEvents(spec, vega.HighlightedSeriesSignal, HoverEvents(markName, datumPath(voronoi, vega.SeriesIDField))...)
}

// AddSelectedEvents selects the clicked datum and its series. Clicking the
// background clears the selection.
func AddSelectedEvents(spec *vega.Spec, markName string, voronoi bool) {
	click := fmt.Sprintf("@%s:click", markName)

	AddSignalEvents(spec, vega.SelectedItemSignal,
		vega.OnEvent{Events: click, Update: datumPath(voronoi, vega.MarkIDField)},
		vega.OnEvent{Events: "view:click[!event.item]", Update: "null"},
	)
	AddSignalEvents(spec, vega.SelectedSeriesSignal,
		vega.OnEvent{Events: click, Update: datumPath(voronoi, vega.SeriesIDField)},
		vega.OnEvent{Events: "view:click[!event.item]", Update: "null"},
	)
}

func datumPath(voronoi bool, field string) string {
	if voronoi {
		return "datum.datum." + field
	}

	return "datum." + field
}
