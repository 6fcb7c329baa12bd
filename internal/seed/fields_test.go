package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRow(fields ...string) row {
	return row{file: "Tickets_test.csv", line: 2, fields: fields}
}

func TestRowInt(t *testing.T) {
	r := testRow("42", "nope")

	v, err := r.Int(0)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = r.Int(1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Tickets_test.csv line 2 column 1")
}

func TestRowOptionalInt(t *testing.T) {
	r := testRow("7", "", "abc")

	v := r.OptionalInt(0)
	require.NotNil(t, v)
	assert.Equal(t, 7, *v)

	// Empty-string placeholders and unparseable values are absent, not
	// errors.
	assert.Nil(t, r.OptionalInt(1))
	assert.Nil(t, r.OptionalInt(2))
}

func TestRowTimeLayouts(t *testing.T) {
	r := testRow("2024-01-01", "2024-01-05 08:15:00", "2024-01-05T08:15:00", "bogus")

	d, err := r.Time(0)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = r.Time(1)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 5, 8, 15, 0, 0, time.UTC), d)

	d, err = r.Time(2)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 5, 8, 15, 0, 0, time.UTC), d)

	_, err = r.Time(3)
	require.Error(t, err)
}

func TestRowOptionalTime(t *testing.T) {
	r := testRow("", "2024-01-05 08:15:00", "not-a-date")

	v, err := r.OptionalTime(0)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = r.OptionalTime(1)
	require.NoError(t, err)
	require.NotNil(t, v)

	// Non-empty garbage is still a fatal parse error.
	_, err = r.OptionalTime(2)
	require.Error(t, err)
}

func TestRowFlag(t *testing.T) {
	r := testRow("1", "0", "", "true")

	assert.True(t, r.Flag(0))
	assert.False(t, r.Flag(1))
	assert.False(t, r.Flag(2))
	// Only the literal "1" token is true.
	assert.False(t, r.Flag(3))
}

func TestRowOptionalString(t *testing.T) {
	r := testRow("", "Board")

	assert.Nil(t, r.OptionalString(0))
	v := r.OptionalString(1)
	require.NotNil(t, v)
	assert.Equal(t, "Board", *v)
}
