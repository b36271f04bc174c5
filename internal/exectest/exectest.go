// Package exectest provides a scripted command runner for tests.
package exectest

import (
	"context"
	"strings"
	"sync"
)

// Call is one recorded invocation.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// String renders the call as a command line.
func (c Call) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Response is the scripted outcome for a command line.
type Response struct {
	Out []byte
	Err error
}

// Runner records calls and answers them from Responses, keyed by the command
// line (e.g. "bun --version"). Unscripted commands succeed with no output.
type Runner struct {
	mu        sync.Mutex
	Responses map[string]Response
	Calls     []Call
}

// New returns an empty Runner.
func New() *Runner {
	return &Runner{Responses: map[string]Response{}}
}

// On scripts the response for a command line and returns r for chaining.
func (r *Runner) On(cmdline string, out string, err error) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Responses[cmdline] = Response{Out: []byte(out), Err: err}
	return r
}

// Run records the call and returns the scripted error.
func (r *Runner) Run(_ context.Context, dir, name string, args ...string) error {
	_, err := r.record(dir, name, args)
	return err
}

// Output records the call and returns the scripted output and error.
func (r *Runner) Output(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	return r.record(dir, name, args)
}

// Commands returns the command lines run so far, in order.
func (r *Runner) Commands() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.String()
	}
	return out
}

func (r *Runner) record(dir, name string, args []string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := Call{Dir: dir, Name: name, Args: append([]string(nil), args...)}
	r.Calls = append(r.Calls, c)
	resp := r.Responses[c.String()]
	return resp.Out, resp.Err
}
