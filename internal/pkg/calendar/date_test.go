package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	d, err := Parse("2024-01-02")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", d.String())

	for _, bad := range []string{"", "2024-1-2", "02/01/2024", "2024-13-01", "2024-02-30T00:00:00Z"} {
		_, err := Parse(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, bad)
	}
}

func TestToday_UsesLocation(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	// 20:00 UTC on Jan 1 is already Jan 2 in UTC+7.
	now := time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-01", Today(now, time.UTC).String())
	assert.Equal(t, "2024-01-02", Today(now, jakarta).String())
	assert.Equal(t, "2024-01-01", Today(now, nil).String())
}

func TestArithmetic(t *testing.T) {
	d := MustParse("2024-03-01")
	assert.Equal(t, "2024-02-29", d.AddDays(-1).String())
	assert.Equal(t, "2023-12-01", d.AddMonths(-3).String())
	assert.True(t, d.AddDays(-1).Before(d))
	assert.True(t, d.After(d.AddDays(-1)))
	assert.True(t, d.Equal(New(2024, time.March, 1)))
	assert.Equal(t, 0, d.Compare(MustParse("2024-03-01")))

	var zero Date
	assert.True(t, zero.AddDays(5).IsZero())
	assert.Equal(t, "", zero.String())
}

func TestJSON(t *testing.T) {
	type payload struct {
		Day  Date `json:"day"`
		Next Date `json:"next"`
	}

	out, err := json.Marshal(payload{Day: MustParse("2024-01-02")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":"2024-01-02","next":null}`, string(out))

	var in payload
	require.NoError(t, json.Unmarshal([]byte(`{"day":"2024-05-06","next":""}`), &in))
	assert.Equal(t, "2024-05-06", in.Day.String())
	assert.True(t, in.Next.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"day":"06-05-2024"}`), &in))
	assert.Error(t, json.Unmarshal([]byte(`{"day":20240506}`), &in))
}

func TestPgtypeRoundTrip(t *testing.T) {
	var d Date
	require.NoError(t, d.ScanDate(pgtype.Date{Time: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Valid: true}))
	assert.Equal(t, "2024-01-02", d.String())

	v, err := d.DateValue()
	require.NoError(t, err)
	assert.True(t, v.Valid)
	assert.Equal(t, d.Time(), v.Time)

	require.NoError(t, d.ScanDate(pgtype.Date{}))
	assert.True(t, d.IsZero())

	v, err = d.DateValue()
	require.NoError(t, err)
	assert.False(t, v.Valid)

	assert.Error(t, d.ScanDate(pgtype.Date{Valid: true, InfinityModifier: pgtype.Infinity}))
}
