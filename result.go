package zskema

// Result is the outcome of evaluating a schema: either a value (no issues) or a
// non-empty list of issues.
type Result struct {
	Value  any
	Issues Issues
}

// OK returns a successful Result carrying v.
func OK(v any) Result { return Result{Value: v} }

// Fail returns a failed Result. It panics when called without issues, since a
// failure must always explain itself.
func Fail(issues ...Issue) Result {
	if len(issues) == 0 {
		panic("zskema: Fail requires at least one issue")
	}
	return Result{Issues: AppendIssues(nil, issues...)}
}

// OK reports whether the evaluation succeeded.
func (r Result) OK() bool { return len(r.Issues) == 0 }

// Err returns the issues as an error, or nil on success.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return r.Issues
}
