package idna

import (
	"fmt"

	"github.com/region23/weburl/internal/codepoint"
)

// validateBidi implements the RFC 5893 Bidi rule (spec §4.D.1): a domain
// name is "Bidi" if any label contains a strong RTL code point (R or AL) or
// the domain as a whole is a "RTL" name by virtue of its first label; every
// label must then separately satisfy rules 1-6.
func (p Profile) validateBidi(labels []string) error {
	domainIsRTL := false
	for _, label := range labels {
		if labelHasRTL(label) {
			domainIsRTL = true
			break
		}
	}
	if !domainIsRTL {
		return nil
	}
	for _, label := range labels {
		if err := validateBidiLabel(label); err != nil {
			return fail(label, CauseValidationBidi, err)
		}
	}
	return nil
}

func labelHasRTL(label string) bool {
	for _, r := range label {
		if c := codepoint.LookupValidation(r).Bidi; c == codepoint.BidiR_AL {
			return true
		}
	}
	return false
}

// validateBidiLabel applies RFC 5893 rules 1-6 to a single label, treating
// it as RTL if its first character is R/AL and LTR if its first character
// is L (rule 1 also forbids any other first-character class).
func validateBidiLabel(label string) error {
	runes := []rune(label)
	if len(runes) == 0 {
		return fmt.Errorf("empty label")
	}
	first := codepoint.LookupValidation(runes[0]).Bidi

	switch first {
	case codepoint.BidiR_AL:
		return validateRTLLabel(runes)
	case codepoint.BidiL:
		return validateLTRLabel(runes)
	default:
		return fmt.Errorf("rule 1: label must start with L, R, or AL")
	}
}

// validateRTLLabel applies rules 2, 3, 4, 6 (the RTL branch).
func validateRTLLabel(runes []rune) error {
	last := codepoint.LookupValidation(runes[len(runes)-1]).Bidi
	if last != codepoint.BidiR_AL && last != codepoint.BidiAN && last != codepoint.BidiEN {
		if !trailingAllNSM(runes, last) {
			return fmt.Errorf("rule 3: RTL label must end in R, AL, AN, or EN")
		}
	}

	sawEN, sawAN := false, false
	for _, r := range runes {
		c := codepoint.LookupValidation(r).Bidi
		switch c {
		case codepoint.BidiL:
			return fmt.Errorf("rule 2: RTL label contains an L code point")
		case codepoint.BidiEN:
			sawEN = true
		case codepoint.BidiAN:
			sawAN = true
		case codepoint.BidiR_AL, codepoint.BidiNSM, codepoint.BidiOther:
			// permitted
		default:
			return fmt.Errorf("rule 2: RTL label contains disallowed Bidi class")
		}
	}
	if sawEN && sawAN {
		return fmt.Errorf("rule 4: RTL label mixes EN and AN")
	}
	return nil
}

// validateLTRLabel applies rules 5 and 6 (the LTR branch).
func validateLTRLabel(runes []rune) error {
	last := codepoint.LookupValidation(runes[len(runes)-1]).Bidi
	if last != codepoint.BidiL && last != codepoint.BidiEN {
		if !trailingAllNSM(runes, last) {
			return fmt.Errorf("rule 6: LTR label must end in L or EN")
		}
	}
	for _, r := range runes {
		c := codepoint.LookupValidation(r).Bidi
		switch c {
		case codepoint.BidiR_AL, codepoint.BidiAN:
			return fmt.Errorf("rule 5: LTR label contains R, AL, or AN")
		}
	}
	return nil
}

// trailingAllNSM reports whether the run of NSM characters at the end of
// the label, if any, is preceded by a character matching the required
// trailing class — rules 3 and 6 both allow the mandated final class to be
// followed by a trailing run of NSM.
func trailingAllNSM(runes []rune, lastClass codepoint.BidiClass) bool {
	if lastClass != codepoint.BidiNSM {
		return false
	}
	i := len(runes) - 1
	for i >= 0 && codepoint.LookupValidation(runes[i]).Bidi == codepoint.BidiNSM {
		i--
	}
	if i < 0 {
		return false
	}
	c := codepoint.LookupValidation(runes[i]).Bidi
	return c == codepoint.BidiR_AL || c == codepoint.BidiAN || c == codepoint.BidiEN || c == codepoint.BidiL
}
