package view

// ChartSeries is one labeled line or bar series.
type ChartSeries struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

// ChartPayload is the data handed to the browser chart runtime for one chart
// slot.
type ChartPayload struct {
	Kind   string        `json:"kind"` // "line", "bar", "doughnut"
	Labels []string      `json:"labels"`
	Series []ChartSeries `json:"series"`
}

// ChartSet maps chart slots to payloads. Each slot holds at most one payload;
// attaching to an occupied slot replaces the previous payload so a re-render
// never stacks charts on the same canvas.
type ChartSet struct {
	slots map[string]ChartPayload
	order []string
}

// NewChartSet returns an empty chart set.
func NewChartSet() *ChartSet {
	return &ChartSet{slots: make(map[string]ChartPayload)}
}

// Attach binds a payload to a slot, replacing any previous payload there.
func (c *ChartSet) Attach(slot string, payload ChartPayload) {
	if _, exists := c.slots[slot]; !exists {
		c.order = append(c.order, slot)
	}
	c.slots[slot] = payload
}

// Get returns the payload for a slot.
func (c *ChartSet) Get(slot string) (ChartPayload, bool) {
	p, ok := c.slots[slot]
	return p, ok
}

// Slots returns the occupied slot names in attach order.
func (c *ChartSet) Slots() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Payloads returns the slot-to-payload map for JSON embedding in a fragment.
func (c *ChartSet) Payloads() map[string]ChartPayload {
	out := make(map[string]ChartPayload, len(c.slots))
	for k, v := range c.slots {
		out[k] = v
	}
	return out
}
