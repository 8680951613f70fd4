package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"puntoenvio-gateway/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type causeError struct {
	Field string
}

func (e *causeError) Error() string { return "cause: " + e.Field }

func TestMarkIsVisibleToStdlibIs(t *testing.T) {
	base := errors.New("no rows")
	err := errs.Mark(base, errs.ErrOrderNotFound)

	assert.True(t, errors.Is(err, errs.ErrOrderNotFound))
	assert.True(t, errors.Is(err, base))
	assert.False(t, errors.Is(err, errs.ErrValidation))
}

func TestMarkPreservesCauseForAs(t *testing.T) {
	cause := &causeError{Field: "url"}
	err := errs.Mark(cause, errs.ErrValidation)

	var target *causeError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "url", target.Field)
	assert.True(t, errors.Is(err, errs.ErrValidation))
}

func TestMarkKeepsCauseMessage(t *testing.T) {
	err := errs.Mark(errors.New("underlying failure"), errs.ErrDatabaseOperationFailed)

	assert.Equal(t, "underlying failure", err.Error())
}

func TestMarkSurvivesFurtherWrapping(t *testing.T) {
	err := errs.Mark(errors.New("no rows"), errs.ErrOrderNotFound)
	wrapped := fmt.Errorf("lookup: %w", err)

	assert.True(t, errors.Is(wrapped, errs.ErrOrderNotFound))
}

func TestMarkNilCauseReturnsSentinel(t *testing.T) {
	assert.Equal(t, errs.ErrValidation, errs.Mark(nil, errs.ErrValidation))
}

func TestWrapNilIsNil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "context"))
}
