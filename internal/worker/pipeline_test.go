package worker

import (
	"context"
	"errors"
	"testing"

	"lending/internal/jobs"
	"lending/pkg/serrors"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	err    error
	called []string
}

func (s *stubRunner) Run(_ context.Context, number string) error {
	s.called = append(s.called, number)

	return s.err
}

func pipelineJob(number string) *river.Job[jobs.ProcessApplicationArgs] {
	return &river.Job[jobs.ProcessApplicationArgs]{
		JobRow: &rivertype.JobRow{ID: 1},
		Args:   jobs.ProcessApplicationArgs{Number: number},
	}
}

func TestWorkRunsPipeline(t *testing.T) {
	runner := &stubRunner{}
	w := NewPipelineWorker(runner)

	err := w.Work(context.Background(), pipelineJob("LN-2026-000001"))
	require.NoError(t, err)
	assert.Equal(t, []string{"LN-2026-000001"}, runner.called)
}

func TestWorkCancelsOutOfOrderJobs(t *testing.T) {
	runner := &stubRunner{err: serrors.KindOnly(serrors.ErrPrecondition)}
	w := NewPipelineWorker(runner)

	err := w.Work(context.Background(), pipelineJob("LN-2026-000002"))
	require.Error(t, err)

	// river.JobCancel marks the job canceled rather than retryable.
	var cancelErr *river.JobCancelError
	assert.ErrorAs(t, err, &cancelErr)
}

func TestWorkPropagatesFaults(t *testing.T) {
	runner := &stubRunner{err: errors.New("connection reset")}
	w := NewPipelineWorker(runner)

	err := w.Work(context.Background(), pipelineJob("LN-2026-000003"))
	require.Error(t, err)

	var cancelErr *river.JobCancelError
	assert.False(t, errors.As(err, &cancelErr))
}
