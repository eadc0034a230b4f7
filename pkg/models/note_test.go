package models

import (
	"encoding/json"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNoteIDStringParseRoundTrip(t *testing.T) {
	id := NewNoteID()
	parsed, err := ParseNoteID(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestParseNoteIDRejectsGarbage(t *testing.T) {
	_, err := ParseNoteID("not-a-uuid")
	require.Error(t, err)
}

func TestNoteIDIsZero(t *testing.T) {
	var zero NoteID
	require.True(t, zero.IsZero())
	require.False(t, NewNoteID().IsZero())
}

func TestNoteIDJSONIsPlainUUIDString(t *testing.T) {
	u := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	id := NewNoteIDFromUUID(u)

	data, err := json.Marshal(id)
	require.NoError(t, err)
	require.Equal(t, `"11111111-2222-3333-4444-555555555555"`, string(data))

	var decoded NoteID
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, id, decoded)
}

func TestNoteIDCBORRoundTrip(t *testing.T) {
	id := NewNoteID()

	data, err := cbor.Marshal(id)
	require.NoError(t, err)

	var decoded NoteID
	require.NoError(t, cbor.Unmarshal(data, &decoded))
	require.Equal(t, id, decoded)
}

func TestNoteIDCBORRejectsWrongTable(t *testing.T) {
	data, err := cbor.Marshal(cbor.Tag{
		Number:  8,
		Content: []any{"users", uuid.New().String()},
	})
	require.NoError(t, err)

	var decoded NoteID
	require.Error(t, decoded.UnmarshalCBOR(data))
}

func TestNoteIDSQLValueAndScan(t *testing.T) {
	id := NewNoteID()

	value, err := id.Value()
	require.NoError(t, err)
	require.Equal(t, id.String(), value)

	var scanned NoteID
	require.NoError(t, scanned.Scan(id.String()))
	require.Equal(t, id, scanned)

	require.NoError(t, scanned.Scan([]byte(id.String())))
	require.Equal(t, id, scanned)

	require.NoError(t, scanned.Scan(nil))
	require.True(t, scanned.IsZero())
}

func TestNoteIDValueOfZeroIsNull(t *testing.T) {
	var zero NoteID
	value, err := zero.Value()
	require.NoError(t, err)
	require.Nil(t, value)
}

func TestNoteIDRecordID(t *testing.T) {
	id := NewNoteID()
	rid := id.RecordID()
	require.Equal(t, "notes", rid.Table)
	require.Equal(t, id.String(), rid.ID)
}

func TestNoteProperty(t *testing.T) {
	note := &Note{
		ID:          NewNoteID(),
		Title:       "t",
		Description: "d",
		CreatedAt:   "2024-01-01",
		CreatedBy:   "u",
		Priority:    3,
	}

	value, ok := note.Property("id")
	require.True(t, ok)
	require.Equal(t, note.ID.String(), value)

	value, ok = note.Property("priority")
	require.True(t, ok)
	require.Equal(t, 3, value)

	_, ok = note.Property("nope")
	require.False(t, ok)
}
