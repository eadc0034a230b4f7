package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBindArgsResolvesDeclaredOrder(t *testing.T) {
	req := NewRequestWithVars(
		httptest.NewRequest(http.MethodGet, "/things/42", nil),
		map[string]string{"instance_id": "42"},
	)

	h := Handler{Params: []string{ParamRequest, "instance_id"}}
	args, err := bindArgs(h, req)
	require.NoError(t, err)
	require.Len(t, args, 2)
	require.Same(t, req, args[0].Request())
	require.Equal(t, "42", args[1].String())
}

func TestBindArgsNoParams(t *testing.T) {
	req := NewRequest(httptest.NewRequest(http.MethodGet, "/things", nil))

	args, err := bindArgs(Handler{}, req)
	require.NoError(t, err)
	require.Empty(t, args)
}

func TestBindArgsUnsatisfiedNameFailsBeforeHandlerRuns(t *testing.T) {
	req := NewRequestWithVars(
		httptest.NewRequest(http.MethodGet, "/things/42", nil),
		map[string]string{"instance_id": "42"},
	)

	h := Handler{Params: []string{"instance_id", "no_such_param"}}
	_, err := bindArgs(h, req)
	require.Error(t, err)

	restErr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, restErr.Status)
	require.Contains(t, restErr.Message, "no_such_param")
}

func TestBindArgsAssemblesAvailableSetFreshPerRequest(t *testing.T) {
	h := Handler{Params: []string{"instance_id"}}

	first := NewRequestWithVars(
		httptest.NewRequest(http.MethodGet, "/things/1", nil),
		map[string]string{"instance_id": "1"},
	)
	second := NewRequestWithVars(
		httptest.NewRequest(http.MethodGet, "/things/2", nil),
		map[string]string{"instance_id": "2"},
	)

	args, err := bindArgs(h, first)
	require.NoError(t, err)
	require.Equal(t, "1", args[0].String())

	args, err = bindArgs(h, second)
	require.NoError(t, err)
	require.Equal(t, "2", args[0].String())
}
