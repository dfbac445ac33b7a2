package ui

// Span is a vertical run of content lines.
type Span struct {
	Top    int
	Height int
}

// IntersectionRatio returns the fraction of target inside the viewport
// [viewTop, viewTop+viewHeight-bottomMargin).
func IntersectionRatio(target Span, viewTop, viewHeight, bottomMargin int) float64 {
	if target.Height <= 0 {
		return 0
	}
	viewBottom := viewTop + viewHeight - bottomMargin
	top := max(target.Top, viewTop)
	bottom := min(target.Top+target.Height, viewBottom)
	if bottom <= top {
		return 0
	}
	return float64(bottom-top) / float64(target.Height)
}

// Observer reports sections the first time they become visible enough,
// like an intersection observer whose callback only acts on entry.
type Observer struct {
	threshold    float64
	bottomMargin int
	order        []string
	fired        map[string]bool
}

// NewObserver creates an observer with the given visibility threshold and
// bottom margin in lines.
func NewObserver(threshold float64, bottomMargin int) *Observer {
	return &Observer{
		threshold:    threshold,
		bottomMargin: bottomMargin,
		fired:        make(map[string]bool),
	}
}

// Observe registers a section id. Registering twice is a no-op.
func (o *Observer) Observe(id string) {
	if _, ok := o.fired[id]; ok {
		return
	}
	o.fired[id] = false
	o.order = append(o.order, id)
}

// Reset lets id fire again.
func (o *Observer) Reset(id string) {
	if _, ok := o.fired[id]; ok {
		o.fired[id] = false
	}
}

// Check returns the observed ids that entered the viewport for the first
// time, in registration order. Ids missing from spans are skipped.
func (o *Observer) Check(spans map[string]Span, viewTop, viewHeight int) []string {
	var entered []string
	for _, id := range o.order {
		if o.fired[id] {
			continue
		}
		span, ok := spans[id]
		if !ok {
			continue
		}
		ratio := IntersectionRatio(span, viewTop, viewHeight, o.bottomMargin)
		if ratio > 0 && ratio >= o.threshold {
			o.fired[id] = true
			entered = append(entered, id)
		}
	}
	return entered
}
