// Package focus orchestrates open-and-focus: registry mutation, the
// scroll-to-view request, and the addressable location update used for
// deep-linking.
package focus

import (
	"go.opentelemetry.io/otel/attribute"

	"termcv/internal/logger"
	"termcv/internal/panel"
	"termcv/internal/scroll"
	"termcv/internal/trace"
)

// Location is the addressable-location collaborator. Replace overwrites
// the stored fragment without accumulating history.
type Location interface {
	Replace(id string) error
}

// Result reports what OpenFocusScroll did. Revalidate, when non-nil, is
// the pending snap-correction token; the caller schedules it after
// scroll.SettleDelay.
type Result struct {
	Opened     bool
	Scrolled   bool
	Revalidate *scroll.Revalidation
}

// Controller is the single entry point combining registry, scroll
// coordinator, and location. It is owned by the application root and
// passed by reference; there is no ambient global registry.
type Controller struct {
	Registry *panel.Registry
	Scroll   *scroll.Coordinator
	Location Location
	Tracer   *trace.Tracer
}

// OpenFocusScroll maximizes panel id exclusively, scrolls it into view
// when the panel requests it (or force is set), and records id as the
// current fragment. Unknown ids are tolerated no-ops since they come
// from user-editable links and fragments. A location failure is logged
// and does not undo the state and scroll effects already applied.
func (c *Controller) OpenFocusScroll(id string, force bool) Result {
	defer c.Tracer.Span("focus.open", attribute.String("panel.id", id))()

	p, ok := c.Registry.Lookup(id)
	if !ok {
		logger.Debug("focus: unknown panel id", "id", id)
		return Result{}
	}

	c.Registry.SetMaximizedExclusive(id)

	res := Result{Opened: true}
	if force || p.AdjustScroll() {
		res.Revalidate = c.Scroll.ScrollToPanel(id, force)
		res.Scrolled = res.Revalidate != nil
	}

	if c.Location != nil {
		if err := c.Location.Replace(id); err != nil {
			logger.Warn("focus: location update failed", "id", id, "err", err)
		}
	}
	return res
}
