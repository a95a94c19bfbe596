package amount

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Amount {
	t.Helper()
	a, err := Parse(s)
	require.NoError(t, err, "parse %q", s)
	return a
}

func TestConstants(t *testing.T) {
	assert.EqualValues(t, 0, Zero)
	assert.EqualValues(t, 10_000, One)
	assert.EqualValues(t, int64(9223372036854775807), Max)
	assert.EqualValues(t, int64(-9223372036854775808), Min)
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, s := range []string{
		"",
		" ",
		".",
		" .",
		". ",
		" . ",
		"a",
		".a",
		"a.a",
		"0. 0",
		"0 .0",
		" 0.0",
		"0.0 ",
		" 0.0 ",
		"+ 1.0",
		"- 1.0",
		"--1",
		"+-1",
		"1.2e3",
		"1,2",
	} {
		_, err := Parse(s)
		assert.ErrorIs(t, err, ErrParse, "input %q", s)
	}
}

func TestParseRejectsExcessPrecision(t *testing.T) {
	for _, s := range []string{"1.00001", "-1.00001", "0.12345", "2.50003"} {
		_, err := Parse(s)
		assert.ErrorIs(t, err, ErrParse, "input %q", s)
	}
	// Trailing zeros past the scale carry no information and are accepted.
	assert.Equal(t, One, mustParse(t, "1.00000"))
	assert.Equal(t, Amount(40_000), mustParse(t, "4.000000000000000"))
}

func TestParseAccepts(t *testing.T) {
	cases := []struct {
		in   string
		want Amount
	}{
		{"0", Zero},
		{".0", Zero},
		{"0.", Zero},
		{"0.0", Zero},
		{"1.0", One},
		{"+1.0", One},
		{"-1.0", -One},
		{".5", Amount(5_000)},
		{"-.5", Amount(-5_000)},
		{"5.", Amount(50_000)},
		{"0.0001", Amount(1)},
		{"922337203685477.5807", Max},
		{"+922337203685477.5807", Max},
		{"-922337203685477.5808", Min},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, mustParse(t, tc.in), "input %q", tc.in)
	}

	// One scaled unit past either end of the range must not parse.
	_, err := Parse("922337203685477.5808")
	assert.ErrorIs(t, err, ErrParse)
	_, err = Parse("-922337203685477.5809")
	assert.ErrorIs(t, err, ErrParse)
}

func TestString(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0.0", "0"},
		{"1.1", "1.1"},
		{"1.01", "1.01"},
		{"1.001", "1.001"},
		{"1.0001", "1.0001"},
		{"1.00000", "1"},
		{"-1.0001", "-1.0001"},
		{"-0.5", "-0.5"},
		{"-0.0001", "-0.0001"},
		{"200.124", "200.124"},
		{"922337203685477.5807", "922337203685477.5807"},
		{"-922337203685477.5808", "-922337203685477.5808"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, mustParse(t, tc.in).String(), "input %q", tc.in)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "0.1", "1", "-1", "56.1234", "134.2468", "-0.8", "196.124"} {
		got := mustParse(t, s).String()
		assert.Equal(t, s, got)
	}
}

func TestCheckedAdd(t *testing.T) {
	sum, ok := CheckedAdd(mustParse(t, "56.1234"), mustParse(t, "78.1234"))
	require.True(t, ok)
	assert.Equal(t, mustParse(t, "134.2468"), sum)

	sum, ok = CheckedAdd(Max, Zero)
	require.True(t, ok)
	assert.Equal(t, Max, sum)

	_, ok = CheckedAdd(Max, Amount(1))
	assert.False(t, ok)
	_, ok = CheckedAdd(Min, Amount(-1))
	assert.False(t, ok)
	_, ok = CheckedAdd(Max, Max)
	assert.False(t, ok)
}

func TestCheckedSub(t *testing.T) {
	diff, ok := CheckedSub(mustParse(t, "78.1234"), mustParse(t, "56.1234"))
	require.True(t, ok)
	assert.Equal(t, mustParse(t, "22"), diff)

	diff, ok = CheckedSub(Zero, One)
	require.True(t, ok)
	assert.Equal(t, -One, diff)

	diff, ok = CheckedSub(Min, Zero)
	require.True(t, ok)
	assert.Equal(t, Min, diff)

	_, ok = CheckedSub(Min, Amount(1))
	assert.False(t, ok)
	_, ok = CheckedSub(Max, Min)
	assert.False(t, ok)
	_, ok = CheckedSub(Max, Amount(-1))
	assert.False(t, ok)
}

func TestOrdering(t *testing.T) {
	assert.True(t, mustParse(t, "-1") < mustParse(t, "1"))
	assert.True(t, mustParse(t, "1.5565") < mustParse(t, "1.5566"))
	assert.True(t, mustParse(t, "2.5") == mustParse(t, "2.5"))
	assert.False(t, mustParse(t, "2.5001") == mustParse(t, "2.5003"))
	assert.False(t, mustParse(t, "0.1") > mustParse(t, "1.1"))
}
