package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsernameBounds(t *testing.T) {
	assert.ErrorIs(t, Username("ab"), ErrUsernameLength)
	assert.NoError(t, Username("abc"))
	assert.NoError(t, Username(strings.Repeat("a", 50)))
	assert.ErrorIs(t, Username(strings.Repeat("a", 51)), ErrUsernameLength)
}

func TestEmailGrammar(t *testing.T) {
	valid := []string{"alice@example.com", "a.b+c@sub.example.org"}
	for _, email := range valid {
		assert.NoError(t, Email(email), email)
	}
	invalid := []string{"", "plainaddress", "@example.com", "alice@", "Alice <alice@example.com>", "two@@example.com"}
	for _, email := range invalid {
		assert.ErrorIs(t, Email(email), ErrEmailFormat, email)
	}
}

func TestPasswordRules(t *testing.T) {
	assert.ErrorIs(t, Password("12345"), ErrPasswordLength)
	assert.NoError(t, Password("123456"))
	assert.NoError(t, PasswordConfirmation("secret1", "secret1"))
	assert.ErrorIs(t, PasswordConfirmation("secret1", "secret2"), ErrPasswordMatch)
}

func TestDeadlineRoundTrip(t *testing.T) {
	d, err := Deadline("2024-03-15")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "2024-03-15", d.Format("2006-01-02"))

	// optional: no deadline at all
	d, err = Deadline("")
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestDeadlineRejectsNonRoundTripDates(t *testing.T) {
	bad := []string{
		"2024-02-30", // would normalize to March
		"2024-13-01",
		"15-03-2024",
		"2024-3-15", // must be zero padded
		"2024-03-15T00:00:00Z",
		"tomorrow",
	}
	for _, input := range bad {
		d, err := Deadline(input)
		assert.ErrorIs(t, err, ErrDeadlineFormat, input)
		assert.Nil(t, d, input)
	}
}

func TestTrim(t *testing.T) {
	assert.Equal(t, "alice", Trim("  alice\n"))
}
