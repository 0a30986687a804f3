package serrors_test

import (
	"errors"
	"fmt"
	"lending/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWith_MatchesKind(t *testing.T) {
	err := serrors.With(serrors.ErrPrecondition, "application %s not in stage %s", "LN-1", "underwriting")

	require.ErrorIs(t, err, serrors.ErrPrecondition)
	require.NotErrorIs(t, err, serrors.ErrConflict)
	require.Equal(t, "application LN-1 not in stage underwriting", err.Error())
}

func TestWrap_MatchesKindAndCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := serrors.Wrap(serrors.ErrUnavailable, cause, "bureau lookup failed")

	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.ErrorIs(t, err, cause)
	require.Equal(t, "bureau lookup failed: connection refused", err.Error())
}

func TestWrap_SurvivesFmtWrapping(t *testing.T) {
	err := fmt.Errorf("could not advance stage: %w",
		serrors.With(serrors.ErrConflict, "stage regression"))

	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestKindOnly(t *testing.T) {
	err := serrors.KindOnly(serrors.ErrTimeout)

	require.ErrorIs(t, err, serrors.ErrTimeout)
	require.Equal(t, "TIMEOUT", err.Error())
}

func TestAs_ExtractsSemanticError(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", serrors.With(serrors.ErrNotFound, "application not found"))

	var sErr *serrors.Error
	require.ErrorAs(t, wrapped, &sErr)
	require.Equal(t, serrors.ErrNotFound, sErr.Kind())
	require.Equal(t, "application not found", sErr.Message())
}

func TestNilError(t *testing.T) {
	var err *serrors.Error
	require.Equal(t, "<nil>", err.Error())
	require.False(t, err.Is(serrors.ErrInternal))
}
