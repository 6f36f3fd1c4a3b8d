package idna

import (
	"fmt"

	"github.com/region23/weburl/internal/codepoint"
)

// validateLabel implements spec §4.D.1's per-label validation rule: hyphen
// placement, leading-combining-mark rejection, empty-label rejection, dot
// rejection within a label, and (when CheckJoiners is set) the RFC 5892
// Appendix A ContextJ rule for ZWNJ/ZWJ. The Bidi rule is checked separately
// across the whole domain in bidi.go, since it needs to know whether any
// label is RTL.
func (p Profile) validateLabel(label string) error {
	if label == "" {
		return fail(label, CauseValidationHyphen, fmt.Errorf("empty label"))
	}
	runes := []rune(label)

	if p.CheckHyphens {
		if len(runes) >= 4 && runes[2] == '-' && runes[3] == '-' {
			return fail(label, CauseValidationHyphen, fmt.Errorf("label has hyphens in positions 3 and 4"))
		}
		if runes[0] == '-' || runes[len(runes)-1] == '-' {
			return fail(label, CauseValidationHyphen, fmt.Errorf("label begins or ends with a hyphen"))
		}
	}

	entry := codepoint.LookupValidation(runes[0])
	if entry.IsMark {
		return fail(label, CauseLeadingCombining, fmt.Errorf("label begins with a combining mark"))
	}

	for _, r := range runes {
		if r == '.' {
			return fail(label, CauseMappingDisallowed, fmt.Errorf("label contains a full stop"))
		}
		v := codepoint.LookupValidation(r)
		if v.Bidi == codepoint.BidiDisallowed {
			return fail(label, CauseMappingDisallowed, fmt.Errorf("disallowed code point %U in label", r))
		}
	}

	if p.CheckJoiners {
		if err := validateJoiners(label, runes); err != nil {
			return fail(label, CauseValidationJoiner, err)
		}
	}

	return nil
}

// validateJoiners implements RFC 5892 Appendix A: a ZWNJ or ZWJ is
// permitted when it follows a Virama; a ZWNJ is also permitted inside the
// joining context {L,D} T* ZWNJ T* {R,D}.
func validateJoiners(label string, runes []rune) error {
	for i, r := range runes {
		if r != 0x200C && r != 0x200D {
			continue
		}
		if i == 0 {
			return fmt.Errorf("label begins with a joiner at %U", r)
		}
		prev := codepoint.LookupValidation(runes[i-1])
		if prev.IsVirama {
			continue
		}
		if r == 0x200D {
			// ZWJ (joiner) requires a preceding virama; no joining-context
			// exception applies (RFC 5892 Appendix A.2).
			return fmt.Errorf("ZWJ at position %d not preceded by a virama", i)
		}
		// ZWNJ (non-joiner): look backward for the nearest L/D joining-type
		// code point, skipping T (transparent), then forward for the
		// nearest R/D, skipping T.
		if !hasJoiningContext(runes, i) {
			return fmt.Errorf("ZWNJ at position %d lacks required joining context", i)
		}
	}
	return nil
}

func hasJoiningContext(runes []rune, i int) bool {
	okBefore := false
	for j := i - 1; j >= 0; j-- {
		jt := codepoint.LookupValidation(runes[j]).Join
		if jt == codepoint.JoinT {
			continue
		}
		okBefore = jt == codepoint.JoinL || jt == codepoint.JoinD
		break
	}
	if !okBefore {
		return false
	}
	for j := i + 1; j < len(runes); j++ {
		jt := codepoint.LookupValidation(runes[j]).Join
		if jt == codepoint.JoinT {
			continue
		}
		return jt == codepoint.JoinR || jt == codepoint.JoinD
	}
	return false
}
