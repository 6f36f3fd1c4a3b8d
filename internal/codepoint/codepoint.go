// Package codepoint implements the compact scalar-value database used by
// the IDNA pipeline (spec §3.3/§4.A): a direct-indexed ASCII table, a
// two-stage lookup for the Basic Multilingual Plane split into 16
// sub-planes of 0x1000 scalars each, and one table per supplementary plane.
//
// The structure mirrors golang.org/x/text/internal/export/idna's trie in
// spirit (map a scalar to a packed status+mapping-kind word in O(log n)),
// but is laid out the way spec §3.3 describes rather than as a linked trie,
// and is seeded with a deliberately partial dataset — see seed.go and
// DESIGN.md for what is and is not covered.
package codepoint

// MappingStatus is the 3-bit status field of a mapping entry.
type MappingStatus uint8

const (
	StatusValid MappingStatus = iota
	StatusDeviation
	StatusDisallowedSTD3Valid
	StatusMapped
	StatusDisallowedSTD3Mapped
	StatusIgnored
	StatusDisallowed
)

// MappingKind is the 2-bit mapping-kind field of a mapping entry.
type MappingKind uint8

const (
	KindNone MappingKind = iota
	KindSingle
	KindRebased
	KindTable
)

// MappingEntry is the decoded form of a 32-bit mapping database word (spec
// §3.3): top 3 bits status, next 2 bits kind, remaining bits a
// kind-dependent payload.
type MappingEntry struct {
	Status MappingStatus
	Kind   MappingKind

	// Single holds the replacement scalar when Kind == KindSingle.
	Single rune
	// Origin/RangeStart apply when Kind == KindRebased: a scalar r in
	// [RangeStart, RangeStart+span) maps to Origin + (r - RangeStart).
	Origin     rune
	RangeStart rune
	// TableOffset/TableLength index Replacements when Kind == KindTable.
	TableOffset uint16
	TableLength uint8
}

// Map applies the entry's mapping to r (only meaningful when Kind != KindNone).
func (e MappingEntry) Map(r rune) []rune {
	switch e.Kind {
	case KindSingle:
		return []rune{e.Single}
	case KindRebased:
		return []rune{e.Origin + (r - e.RangeStart)}
	case KindTable:
		off := int(e.TableOffset)
		return append([]rune(nil), Replacements[off:off+int(e.TableLength)]...)
	default:
		return []rune{r}
	}
}

// BidiClass is the 3-bit Bidi class field of a validation entry.
type BidiClass uint8

const (
	BidiL BidiClass = iota
	BidiR_AL
	BidiAN
	BidiEN
	BidiOther // ES/CS/ET/ON/BN
	BidiNSM
	BidiDisallowed
)

// JoinType is the 3-bit joining-type field of a validation entry.
type JoinType uint8

const (
	JoinOther JoinType = iota
	JoinT
	JoinD
	JoinL
	JoinR
)

// ValidationEntry is the decoded form of an 8-bit validation database byte
// (spec §3.3): 3 bits Bidi class, 3 bits joining type, 1 bit isVirama,
// 1 bit isMark.
type ValidationEntry struct {
	Bidi     BidiClass
	Join     JoinType
	IsVirama bool
	IsMark   bool
}

// Replacements holds the shared multi-scalar replacement runes indexed by
// (TableOffset, TableLength) for KindTable mapping entries.
var Replacements []rune

// mappingSubPlane is one BMP sub-plane (0x1000 scalars, base = planeIndex*0x1000)
// or one supplementary plane (0x10000 scalars, base = (planeNumber)*0x10000).
// codePoints and raw are parallel, sorted ascending by absolute scalar value
// minus base (spec §4.A "Structural requirements").
type mappingSubPlane struct {
	base       rune
	codePoints []uint16
	raw        []uint32
}

type validationSubPlane struct {
	base       rune
	codePoints []uint16
	raw        []uint8
}

func decodeMappingWord(w uint32, rangeStart rune) MappingEntry {
	status := MappingStatus((w >> 29) & 0x7)
	kind := MappingKind((w >> 27) & 0x3)
	e := MappingEntry{Status: status, Kind: kind, RangeStart: rangeStart}
	payload := w & 0x07FFFFFF
	switch kind {
	case KindSingle:
		e.Single = rune(payload & 0x1FFFFF)
	case KindRebased:
		e.Origin = rune(payload & 0x1FFFFF)
	case KindTable:
		e.TableOffset = uint16(payload & 0xFFFF)
		e.TableLength = uint8((payload >> 16) & 0xFF)
	}
	return e
}

func decodeValidationByte(b uint8) ValidationEntry {
	return ValidationEntry{
		Bidi:     BidiClass((b >> 5) & 0x7),
		Join:     JoinType((b >> 2) & 0x7),
		IsVirama: b&0x2 != 0,
		IsMark:   b&0x1 != 0,
	}
}

// LookupMapping returns the mapping entry that applies to scalar r.
func LookupMapping(r rune) MappingEntry {
	switch {
	case r < 0 || r > 0x10FFFF:
		return MappingEntry{Status: StatusDisallowed}
	case r < 0x80:
		return decodeMappingWord(asciiMapping[r], r)
	case r <= 0xFFFF:
		return lookupMappingPlane(bmpMapping[r>>12], r)
	default:
		p := int(r>>16) - 1
		if p < 0 || p >= len(nonBMPMapping) {
			return MappingEntry{Status: StatusValid}
		}
		return lookupMappingPlane(nonBMPMapping[p], r)
	}
}

// LookupValidation returns the validation entry that applies to scalar r.
func LookupValidation(r rune) ValidationEntry {
	switch {
	case r < 0 || r > 0x10FFFF:
		return ValidationEntry{Bidi: BidiDisallowed}
	case r < 0x80:
		return decodeValidationByte(asciiValidation[r])
	case r <= 0xFFFF:
		return lookupValidationPlane(bmpValidation[r>>12], r)
	default:
		p := int(r>>16) - 1
		if p < 0 || p >= len(nonBMPValidation) {
			return ValidationEntry{Bidi: BidiL}
		}
		return lookupValidationPlane(nonBMPValidation[p], r)
	}
}

func lookupMappingPlane(plane mappingSubPlane, r rune) MappingEntry {
	if len(plane.codePoints) == 0 {
		return MappingEntry{Status: StatusValid, Kind: KindNone, RangeStart: plane.base}
	}
	target := uint16(r - plane.base)
	idx := searchU16(plane.codePoints, target)
	rangeStart := plane.base + rune(plane.codePoints[idx])
	return decodeMappingWord(plane.raw[idx], rangeStart)
}

func lookupValidationPlane(plane validationSubPlane, r rune) ValidationEntry {
	if len(plane.codePoints) == 0 {
		return ValidationEntry{Bidi: BidiL}
	}
	target := uint16(r - plane.base)
	idx := searchU16(plane.codePoints, target)
	return decodeValidationByte(plane.raw[idx])
}

// searchU16 returns the index of the greatest element of a that is <=
// target, assuming a is sorted ascending and non-empty.
func searchU16(a []uint16, target uint16) int {
	lo, hi := 0, len(a)-1
	best := 0
	for lo <= hi {
		mid := (lo + hi) / 2
		if a[mid] <= target {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return best
}
