package validation

import (
	"strings"
	"unicode/utf8"

	"fireclub-api/internal/models"
)

// NigerianStates is the fixed set of 36 states accepted for signups.
// Matching is exact and case-sensitive.
var NigerianStates = []string{
	"Abia", "Adamawa", "Akwa Ibom", "Anambra", "Bauchi", "Bayelsa", "Benue",
	"Borno", "Cross River", "Delta", "Ebonyi", "Edo", "Ekiti", "Enugu",
	"FCT - Abuja", "Gombe", "Imo", "Jigawa", "Kaduna", "Kano", "Katsina",
	"Kebbi", "Kogi", "Kwara", "Lagos", "Nasarawa", "Niger", "Ogun", "Ondo",
	"Osun", "Oyo", "Plateau", "Rivers", "Sokoto", "Taraba", "Yobe", "Zamfara",
}

var stateSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(NigerianStates))
	for _, s := range NigerianStates {
		set[s] = struct{}{}
	}
	return set
}()

const strippedChars = `<>"'&`

// SanitizeNickname trims whitespace and strips potentially harmful characters
// from a nickname. The sanitized value must still be at least 2 characters.
func SanitizeNickname(nickname string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(strippedChars, r) {
			return -1
		}
		return r
	}, strings.TrimSpace(nickname))

	if utf8.RuneCountInString(cleaned) < 2 {
		return "", &models.ValidationError{Msg: "Nickname must be at least 2 characters long"}
	}
	return cleaned, nil
}

// ValidateState checks membership in the fixed state list.
func ValidateState(state string) error {
	if _, ok := stateSet[state]; !ok {
		return &models.ValidationError{Msg: "Invalid Nigerian state"}
	}
	return nil
}
