package provisioning

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steelops/scmctl/internal/platform/scm"
)

// scriptedConfirmer answers Confirm calls from a fixed script.
type scriptedConfirmer struct {
	answers   []bool
	questions []string
}

func (c *scriptedConfirmer) Username(_ context.Context) (string, error) {
	return "", errors.New("unexpected username prompt")
}

func (c *scriptedConfirmer) Password(_ context.Context, _ string) (string, error) {
	return "", errors.New("unexpected password prompt")
}

func (c *scriptedConfirmer) Confirm(_ context.Context, question string) (bool, error) {
	c.questions = append(c.questions, question)
	if len(c.answers) == 0 {
		return false, errors.New("confirmation script exhausted")
	}
	answer := c.answers[0]
	c.answers = c.answers[1:]
	return answer, nil
}

func acmeSites() []scm.Site {
	return []scm.Site{
		{ID: "s-syd", Org: "org-1", Name: "DC-Sydney"},
		{ID: "s-tok", Org: "org-1", Name: "DC-Tokyo"},
		{ID: "s-par", Org: "org-1", Name: "DC-Paris"},
	}
}

func deletingAPI(deleted *[]string, err error) *scm.MockClient {
	return &scm.MockClient{
		DeleteSiteFunc: func(_ context.Context, siteID string) error {
			*deleted = append(*deleted, siteID)
			return err
		},
	}
}

func TestDeleter_SparesProtectedSite(t *testing.T) {
	var deleted []string
	confirmer := &scriptedConfirmer{answers: []bool{true, true}}
	d := NewDeleter(deletingAPI(&deleted, nil), confirmer, testObserver(), "")

	require.NoError(t, d.Run(context.Background(), acmeSites()))
	assert.Equal(t, []string{"s-tok", "s-par"}, deleted)
	require.Len(t, confirmer.questions, 2)
	assert.Contains(t, confirmer.questions[1], "CAN NOT BE UNDONE")
}

func TestDeleter_DeclineFirstPrompt(t *testing.T) {
	var deleted []string
	confirmer := &scriptedConfirmer{answers: []bool{false}}
	d := NewDeleter(deletingAPI(&deleted, nil), confirmer, testObserver(), "")

	err := d.Run(context.Background(), acmeSites())
	require.ErrorIs(t, err, ErrAborted)
	assert.Empty(t, deleted)
	assert.Len(t, confirmer.questions, 1, "second prompt must not be reached")
}

func TestDeleter_DeclineSecondPrompt(t *testing.T) {
	var deleted []string
	confirmer := &scriptedConfirmer{answers: []bool{true, false}}
	d := NewDeleter(deletingAPI(&deleted, nil), confirmer, testObserver(), "")

	err := d.Run(context.Background(), acmeSites())
	require.ErrorIs(t, err, ErrAborted)
	assert.Empty(t, deleted)
}

func TestDeleter_OnlyProtectedSiteLeft(t *testing.T) {
	var deleted []string
	confirmer := &scriptedConfirmer{}
	d := NewDeleter(deletingAPI(&deleted, nil), confirmer, testObserver(), "")

	sites := []scm.Site{{ID: "s-syd", Name: "DC-Sydney"}}
	require.NoError(t, d.Run(context.Background(), sites))
	assert.Empty(t, deleted)
	assert.Empty(t, confirmer.questions, "no confirmation when nothing to delete")
}

func TestDeleter_CustomProtectedName(t *testing.T) {
	var deleted []string
	confirmer := &scriptedConfirmer{answers: []bool{true, true}}
	d := NewDeleter(deletingAPI(&deleted, nil), confirmer, testObserver(), "DC-Tokyo")

	require.NoError(t, d.Run(context.Background(), acmeSites()))
	assert.Equal(t, []string{"s-syd", "s-par"}, deleted)
}

func TestDeleter_RejectedDeleteContinues(t *testing.T) {
	var deleted []string
	api := deletingAPI(&deleted, &scm.APIError{Status: 409, Message: "site in use"})
	confirmer := &scriptedConfirmer{answers: []bool{true, true}}
	d := NewDeleter(api, confirmer, testObserver(), "")

	require.NoError(t, d.Run(context.Background(), acmeSites()))
	assert.Len(t, deleted, 2, "every non-protected site is still attempted")
}

func TestDeleter_AlreadyGoneSiteIsSkipped(t *testing.T) {
	var attempted []string
	api := &scm.MockClient{
		DeleteSiteFunc: func(_ context.Context, siteID string) error {
			attempted = append(attempted, siteID)
			if siteID == "s-tok" {
				return &scm.APIError{Status: 404, Message: "no such site"}
			}
			return nil
		},
	}
	confirmer := &scriptedConfirmer{answers: []bool{true, true}}
	d := NewDeleter(api, confirmer, testObserver(), "")

	require.NoError(t, d.Run(context.Background(), acmeSites()))
	assert.Equal(t, []string{"s-tok", "s-par"}, attempted, "a vanished site must not stop the loop")
}

func TestDeleter_TransportFailureAborts(t *testing.T) {
	var deleted []string
	api := deletingAPI(&deleted, &scm.TransportError{Op: "DELETE", URL: "u", Err: errors.New("timeout")})
	confirmer := &scriptedConfirmer{answers: []bool{true, true}}
	d := NewDeleter(api, confirmer, testObserver(), "")

	err := d.Run(context.Background(), acmeSites())
	require.Error(t, err)
	assert.Len(t, deleted, 1)
}

func TestDeleter_ConfirmErrorPropagates(t *testing.T) {
	var deleted []string
	confirmer := &scriptedConfirmer{} // empty script errors on first ask
	d := NewDeleter(deletingAPI(&deleted, nil), confirmer, testObserver(), "")

	err := d.Run(context.Background(), acmeSites())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAborted)
	assert.Empty(t, deleted)
}
