package rest

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldsMarshalPreservesDeclarationOrder(t *testing.T) {
	fields := Fields{
		{Name: "zebra", Value: 1},
		{Name: "apple", Value: "x"},
		{Name: "mango", Value: nil},
	}

	out, err := json.Marshal(fields)
	require.NoError(t, err)
	require.Equal(t, `{"zebra":1,"apple":"x","mango":null}`, string(out))
}

func TestEncodeUsesFourSpaceIndent(t *testing.T) {
	out, err := Encode(map[string]string{"title": "t"})
	require.NoError(t, err)
	require.Equal(t, "{\n    \"title\": \"t\"\n}", string(out))
}

func TestEncodeFieldsRoundTrip(t *testing.T) {
	fields := Fields{
		{Name: "title", Value: "groceries"},
		{Name: "priority", Value: 3},
	}

	out, err := Encode(fields)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(out), "    \"title\""))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Equal(t, "groceries", decoded["title"])
	require.EqualValues(t, 3, decoded["priority"])
}
