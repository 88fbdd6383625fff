package provisioning

// StepResult records one controller call made for a row.
type StepResult struct {
	Step string
	Err  error
}

// Outcome is the per-row result of the import sequence. Err is set when
// the row aborted before its sequence completed (site creation rejected,
// default zone missing); individual rejected mutations land in Steps.
type Outcome struct {
	SiteName string
	SiteID   string
	Steps    []StepResult
	Err      error
}

// Failed reports whether anything in the row's sequence went wrong.
func (o *Outcome) Failed() bool {
	if o.Err != nil {
		return true
	}
	for _, s := range o.Steps {
		if s.Err != nil {
			return true
		}
	}
	return false
}

// Summary aggregates row outcomes for end-of-run reporting.
type Summary struct {
	Rows    int
	Created int
	Failed  int
}

// Summarize folds outcomes into a Summary.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Rows: len(outcomes)}
	for i := range outcomes {
		if outcomes[i].SiteID != "" {
			s.Created++
		}
		if outcomes[i].Failed() {
			s.Failed++
		}
	}
	return s
}
