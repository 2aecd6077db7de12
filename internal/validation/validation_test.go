package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fireclub-api/internal/models"
)

func TestSanitizeNicknameStripsHarmfulCharacters(t *testing.T) {
	cases := map[string]string{
		"  fire fan  ":          "fire fan",
		`<script>bob</script>`:  "scriptbob/script",
		`o'neil`:                "oneil",
		`say "hi" & bye`:        "say hi  bye",
		"plain":                 "plain",
		"éé":                    "éé",
		"<b>ada</b>":            "bada/b",
	}

	for input, want := range cases {
		got, err := SanitizeNickname(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got)
		for _, c := range `<>"'&` {
			assert.NotContains(t, got, string(c))
		}
	}
}

func TestSanitizeNicknameRejectsShortResults(t *testing.T) {
	// Length is counted in runes, so a single multi-byte character left
	// after stripping is still too short.
	for _, input := range []string{"", "a", "  a  ", `<'>`, `"&"`, `x<>`, "<é>", "ü"} {
		_, err := SanitizeNickname(input)
		require.Error(t, err, "input %q", input)

		var verr *models.ValidationError
		assert.ErrorAs(t, err, &verr)
	}
}

func TestValidateStateAcceptsAllFixedStates(t *testing.T) {
	require.Len(t, NigerianStates, 36)
	for _, state := range NigerianStates {
		assert.NoError(t, ValidateState(state))
	}
}

func TestValidateStateRejectsUnknownValues(t *testing.T) {
	for _, state := range []string{"", "lagos", "LAGOS", "Abuja", "Texas", " Kano"} {
		err := ValidateState(state)
		require.Error(t, err, "state %q", state)
		assert.Equal(t, "Invalid Nigerian state", err.Error())
	}
}

func TestStateMatchingIsCaseSensitive(t *testing.T) {
	assert.NoError(t, ValidateState("Kano"))
	assert.Error(t, ValidateState(strings.ToUpper("Kano")))
}
