package currency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/shipping-refund-calculator/internal/currency"
)

func TestClean(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"$1,234.50", "1234.50"},
		{"  10 USD ", "10"},
		{"-5.00", "-5.00"},
		{"abc", ""},
		{"", ""},
		{"$ -0.99", "-0.99"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, currency.Clean(c.in), "Clean(%q)", c.in)
	}
}

func TestParseStrict(t *testing.T) {
	t.Parallel()

	t.Run("currency text parses exactly", func(t *testing.T) {
		d, err := currency.Parse("$1,234.50")
		require.NoError(t, err)
		assert.Equal(t, "1234.50", d.StringFixed(2))
	})

	t.Run("empty and absent parse as zero", func(t *testing.T) {
		for _, in := range []string{"", "   "} {
			d, err := currency.Parse(in)
			require.NoError(t, err)
			assert.True(t, d.IsZero(), "Parse(%q)", in)
		}
	})

	t.Run("letters-only is a FormatError for strict callers", func(t *testing.T) {
		_, err := currency.Parse("abc")
		require.Error(t, err)

		var formatErr *currency.FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "abc", formatErr.Input)
		assert.Empty(t, formatErr.Cleaned)

		// The lenient entry points still treat the same text as absent.
		_, ok := currency.TryParse("abc")
		assert.False(t, ok)
		assert.True(t, currency.ParseOrZero("abc").IsZero())
	})

	t.Run("malformed numeric is a FormatError", func(t *testing.T) {
		_, err := currency.Parse("1.2.3")
		require.Error(t, err)

		var formatErr *currency.FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "1.2.3", formatErr.Input)
		assert.Equal(t, "1.2.3", formatErr.Cleaned)
	})
}

func TestTryParse(t *testing.T) {
	t.Parallel()

	d, ok := currency.TryParse("$10")
	assert.True(t, ok)
	assert.Equal(t, "10.00", d.StringFixed(2))

	_, ok = currency.TryParse("")
	assert.False(t, ok)

	_, ok = currency.TryParse("1.2.3")
	assert.False(t, ok)

	assert.True(t, currency.ParseOrZero("1.2.3").IsZero())
	assert.True(t, currency.ParseOrZero("").IsZero())
}

func TestParseStat(t *testing.T) {
	t.Parallel()

	d, ok := currency.ParseStat("$1,234.50")
	assert.True(t, ok)
	assert.Equal(t, "1234.50", d.StringFixed(2))

	d, ok = currency.ParseStat("-3.5")
	assert.True(t, ok)
	assert.Equal(t, "-3.50", d.StringFixed(2))

	// Present but malformed values are excluded, not zeroed.
	for _, in := range []string{"", "abc", "12abc", "1.2.3", "--4"} {
		_, ok := currency.ParseStat(in)
		assert.False(t, ok, "ParseStat(%q)", in)
	}
}
