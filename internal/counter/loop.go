package counter

// Site identifies which part of the loop consumed a value
type Site string

const (
	SiteInit Site = "init"
	SiteCond Site = "cond"
	SiteBody Site = "body"
	SitePost Site = "post"
)

// Call is one invocation of the counter
type Call struct {
	Site  Site `json:"site" yaml:"site" msgpack:"site"`
	Value int  `json:"value" yaml:"value" msgpack:"value"`
}

// Trace records everything a loop run consumed and printed
type Trace struct {
	Start   int    `json:"start" yaml:"start" msgpack:"start"`
	Final   int    `json:"final" yaml:"final" msgpack:"final"`
	Calls   []Call `json:"calls" yaml:"calls" msgpack:"calls"`
	Printed []int  `json:"printed" yaml:"printed" msgpack:"printed"`
}

// Iterations returns the number of times the loop body ran
func (t *Trace) Iterations() int {
	return len(t.Printed)
}

// Run drives a loop whose init, condition and post clauses each call c.Next
// once. The body calls it a fourth time and prints that value. The loop
// continues while the condition's value is positive.
//
// emit, if non-nil, receives every call as it happens.
func Run(c *Counter, emit func(Call)) *Trace {
	trace := &Trace{Start: c.Value()}

	next := func(site Site) int {
		call := Call{Site: site, Value: c.Next()}
		trace.Calls = append(trace.Calls, call)
		if emit != nil {
			emit(call)
		}
		return call.Value
	}

	for next(SiteInit); next(SiteCond) > 0; next(SitePost) {
		trace.Printed = append(trace.Printed, next(SiteBody))
	}

	trace.Final = c.Value()
	return trace
}
