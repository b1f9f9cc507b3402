package future

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_IsMatchesByKindNotMessage(t *testing.T) {
	e1 := newError(KindBrokenPromise, "context A")
	e2 := newError(KindBrokenPromise, "context B")
	require.ErrorIs(t, e1, e2)
	require.ErrorIs(t, e1, ErrBrokenPromise)
}

func TestError_IsDoesNotMatchDifferentKind(t *testing.T) {
	e1 := newError(KindBrokenPromise, "")
	e2 := newError(KindNoState, "")
	require.False(t, errors.Is(e1, e2))
}

func TestError_StringIncludesMessage(t *testing.T) {
	e := newError(KindBadFunctionCall, "empty callable")
	require.Contains(t, e.Error(), "bad-function-call")
	require.Contains(t, e.Error(), "empty callable")
}

func TestPanicError_UnwrapsErrorValue(t *testing.T) {
	inner := errors.New("inner")
	pe := &PanicError{Value: inner}
	require.ErrorIs(t, pe, inner)
}

func TestPanicError_UnwrapsNilForNonError(t *testing.T) {
	pe := &PanicError{Value: "not an error"}
	require.Nil(t, pe.Unwrap())
}
