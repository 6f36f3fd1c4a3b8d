package weburl

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/region23/weburl/internal/idna"
)

// Kind is the closed failure-kind enumeration (spec.md §7).
type Kind string

const (
	KindMissingScheme          Kind = "missing-scheme"
	KindInvalidScheme          Kind = "invalid-scheme"
	KindSchemeChangeForbidden  Kind = "scheme-change-forbidden"
	KindHostMissing            Kind = "host-missing"
	KindHostInvalid            Kind = "host-invalid"
	KindPortInvalid            Kind = "port-invalid"
	KindPortOutOfRange         Kind = "port-out-of-range"
	KindCredentialsForbidden   Kind = "credentials-forbidden"
	KindIPv4Invalid            Kind = "ipv4-invalid"
	KindIPv4PartOutOfRange     Kind = "ipv4-part-out-of-range"
	KindIPv6Invalid            Kind = "ipv6-invalid"
	KindIDNAError              Kind = "idna-error"
	KindPathComponentSeparator Kind = "path-component-contains-separator"
	KindPathComponentNull      Kind = "path-component-contains-null"
	KindNotAFileURL            Kind = "not-a-file-url"
	KindWindowsPathNotQualified Kind = "windows-path-not-qualified"
	KindEncodedSeparator       Kind = "encoded-separator"
	KindEncodedNull            Kind = "encoded-null"
)

// SubCause is the idna-error sub-cause set (spec.md §7), re-exported from
// internal/idna so callers never need to import an internal package.
type SubCause = idna.SubCause

const (
	SubCauseMappingDisallowed SubCause = idna.CauseMappingDisallowed
	SubCauseValidationBidi    SubCause = idna.CauseValidationBidi
	SubCauseValidationJoiner  SubCause = idna.CauseValidationJoiner
	SubCauseValidationHyphen  SubCause = idna.CauseValidationHyphen
	SubCauseLeadingCombining  SubCause = idna.CauseLeadingCombining
	SubCausePunycodeDecode    SubCause = idna.CausePunycodeDecode
	SubCausePunycodeEncode    SubCause = idna.CausePunycodeEncode
)

// ParseError is returned by Parse and every setter on failure. It wraps the
// closed Kind enumeration with a stack trace (github.com/pkg/errors) so a
// failure can be traced back to the exact parser/setter call site.
type ParseError struct {
	Kind    Kind
	Detail  string
	SubCause SubCause
	cause   error
}

func (e *ParseError) Error() string {
	if e.SubCause != "" {
		return fmt.Sprintf("weburl: %s (%s): %s", e.Kind, e.SubCause, e.Detail)
	}
	if e.Detail != "" {
		return fmt.Sprintf("weburl: %s: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("weburl: %s", e.Kind)
}

func (e *ParseError) Unwrap() error { return e.cause }

func newError(kind Kind, detail string) error {
	return errors.WithStack(&ParseError{Kind: kind, Detail: detail})
}

func newErrorWrap(kind Kind, detail string, cause error) error {
	return errors.WithStack(&ParseError{Kind: kind, Detail: detail, cause: cause})
}

func newIDNAError(cause error) error {
	pe := &ParseError{Kind: KindIDNAError, cause: cause}
	var ie *idna.Error
	if errors.As(cause, &ie) {
		pe.SubCause = ie.Cause
		pe.Detail = ie.Error()
	} else if cause != nil {
		pe.Detail = cause.Error()
	}
	return errors.WithStack(pe)
}

// IsKind reports whether err is a *ParseError (at any wrap depth) with the
// given Kind.
func IsKind(err error, kind Kind) bool {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind == kind
	}
	return false
}
