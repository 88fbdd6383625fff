package provisioning

import (
	"context"

	"github.com/steelops/scmctl/internal/sitefile"
)

// RunImport processes every row through the provisioner and reports an
// end-of-run summary. Per-row failures never stop the loop; only a
// run-fatal error (transport, rejected read) does, and the outcomes
// gathered so far are still returned alongside it.
func RunImport(ctx context.Context, p *Provisioner, rows []sitefile.Row, obs Observer) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(rows))
	for _, row := range rows {
		o, err := p.ProvisionSite(ctx, row)
		outcomes = append(outcomes, o)
		if err != nil {
			return outcomes, err
		}
	}

	s := Summarize(outcomes)
	obs.Printf("")
	obs.Printf("Processed %d row(s): %d site(s) created, %d with failures.",
		s.Rows, s.Created, s.Failed)
	return outcomes, nil
}
