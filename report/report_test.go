package report_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frengels/ely/report"
	"github.com/frengels/ely/token"
)

func TestReportAccumulatesAndTagsSession(t *testing.T) {
	session := uuid.New()
	r := report.New(session)

	r.Errorf(token.Span{Start: 1, End: 2}, "bad thing: %d", 42)
	r.Warnf(token.Span{}, "suspicious")

	require.Equal(t, 2, r.Len())
	assert.Equal(t, report.Error, r.Diags[0].Level)
	assert.Equal(t, "bad thing: 42", r.Diags[0].Message)
	assert.Equal(t, session, r.Diags[0].Session)
	assert.Equal(t, report.Warning, r.Diags[1].Level)
}

func TestHasErrorsOnlyCountsErrorLevel(t *testing.T) {
	r := report.New(uuid.New())
	r.Warnf(token.Span{}, "just a warning")
	r.Remarkf(token.Span{}, "fyi")
	assert.False(t, r.HasErrors())

	r.Errorf(token.Span{}, "now it's bad")
	assert.True(t, r.HasErrors())
}

func TestAsErrorNilWhenNoErrors(t *testing.T) {
	r := report.New(uuid.New())
	r.Warnf(token.Span{}, "warning only")
	assert.Nil(t, r.AsError())
}

func TestAsErrorJoinsMessages(t *testing.T) {
	r := report.New(uuid.New())
	r.Errorf(token.Span{}, "first")
	r.Errorf(token.Span{}, "second")
	err := r.AsError()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first")
	assert.Contains(t, err.Error(), "and 1 more")
}
