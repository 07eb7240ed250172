package run

import "context"

// Call records one command execution request made against a Fake.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// Response scripts the outcome of one Fake call.
type Response struct {
	ExitCode int
	Output   string
	Err      error
}

// Fake is a scripted Runner for tests. Responses are consumed in order;
// calls beyond the scripted list succeed with empty output.
type Fake struct {
	Calls     []Call
	Responses []Response
}

// Run records the call and returns the next scripted response.
func (f *Fake) Run(_ context.Context, dir string, name string, args ...string) (Result, error) {
	f.Calls = append(f.Calls, Call{Dir: dir, Name: name, Args: args})

	if len(f.Responses) > 0 {
		resp := f.Responses[0]
		f.Responses = f.Responses[1:]
		return Result{ExitCode: resp.ExitCode, Output: []byte(resp.Output)}, resp.Err
	}

	return Result{}, nil
}

// CommandLines returns the recorded calls rendered as command lines, in
// execution order.
func (f *Fake) CommandLines() []string {
	lines := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		lines = append(lines, CommandLine(c.Name, c.Args...))
	}
	return lines
}
