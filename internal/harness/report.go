package harness

// CaseResult is the outcome of one case.
type CaseResult struct {
	Op        string `json:"op" yaml:"op"`
	Input     string `json:"input" yaml:"input"`
	Want      string `json:"want,omitempty" yaml:"want,omitempty"`
	Got       string `json:"got,omitempty" yaml:"got,omitempty"`
	WantError string `json:"want_error,omitempty" yaml:"want_error,omitempty"`
	GotError  string `json:"got_error,omitempty" yaml:"got_error,omitempty"`
	Pass      bool   `json:"pass" yaml:"pass"`

	// Detail carries the error message of an unexpected failure.
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Report is the outcome of one case file.
type Report struct {
	Name    string       `json:"name" yaml:"name"`
	RunID   string       `json:"run_id" yaml:"run_id"`
	Passed  int          `json:"passed" yaml:"passed"`
	Failed  int          `json:"failed" yaml:"failed"`
	Results []CaseResult `json:"results" yaml:"results"`
}

// Pass reports whether every case passed.
func (r *Report) Pass() bool {
	return r.Failed == 0
}

func (r *Report) add(res CaseResult) {
	if res.Pass {
		r.Passed++
	} else {
		r.Failed++
	}
	r.Results = append(r.Results, res)
}
