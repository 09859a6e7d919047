package payload

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_AcceptsNumberAndString(t *testing.T) {
	var in struct {
		A *ID `json:"a"`
		B *ID `json:"b"`
		C *ID `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 7, "b": "12", "c": null}`), &in))

	require.NotNil(t, in.A)
	require.NotNil(t, in.B)
	assert.Equal(t, int64(7), *in.A.Int64())
	assert.Equal(t, int64(12), *in.B.Int64())
	assert.Nil(t, in.C.Int64())
}

func TestID_RejectsGarbage(t *testing.T) {
	var in struct {
		A ID `json:"a"`
	}
	assert.Error(t, json.Unmarshal([]byte(`{"a": "abc"}`), &in))
	assert.Error(t, json.Unmarshal([]byte(`{"a": true}`), &in))
}

func TestParseTime_Layouts(t *testing.T) {
	cases := map[string]time.Time{
		"2024-03-01":                time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		"2024-03-01T10:30":          time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
		"2024-03-01T10:30:15":       time.Date(2024, 3, 1, 10, 30, 15, 0, time.UTC),
		"2024-03-01T10:30:15.5":     time.Date(2024, 3, 1, 10, 30, 15, 500000000, time.UTC),
		"2024-03-01T10:30:15Z":      time.Date(2024, 3, 1, 10, 30, 15, 0, time.UTC),
		"2024-03-01T10:30:15-03:00": time.Date(2024, 3, 1, 13, 30, 15, 0, time.UTC),
	}
	for in, want := range cases {
		got, err := ParseTime(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "%s: got %s", in, got)
	}

	_, err := ParseTime("01/03/2024")
	assert.Error(t, err)
}

func TestOptionalTime(t *testing.T) {
	got, err := OptionalTime(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	empty := ""
	got, err = OptionalTime(&empty)
	require.NoError(t, err)
	assert.Nil(t, got)

	s := "2020-05-05"
	got, err = OptionalTime(&s)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2020, got.Year())
}

func TestLookup_PresenceAndNull(t *testing.T) {
	raw, err := Fields([]byte(`{"dob": null, "name": "x"}`))
	require.NoError(t, err)

	assert.True(t, Lookup(raw, "dob").IsNull())
	assert.True(t, Lookup(raw, "name").Present)
	assert.False(t, Lookup(raw, "name").IsNull())
	assert.False(t, Lookup(raw, "treatments").Present)
}

func TestParseID(t *testing.T) {
	n, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	for _, bad := range []string{"", "abc", "0", "-3", "1.5"} {
		_, err := ParseID(bad)
		assert.Error(t, err, bad)
	}
}
