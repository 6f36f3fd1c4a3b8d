package codepoint

// Builder assembles the mapping and validation databases in scalar order,
// enforcing the structural requirements from spec §4.A: sorted, equal-length
// parallel arrays, and — for rebased mapping ranges — a recomputed origin at
// every sub-plane boundary the range crosses (a rebased entry must never be
// split across sub-planes without this, spec §3.3/§9).
type Builder struct {
	mapping    mappingTables
	validation validationTables
}

type mappingTables struct {
	ascii [128]uint32
	bmp   [16]mappingSubPlane
	nonBMP []mappingSubPlane
}

type validationTables struct {
	ascii [128]uint8
	bmp   [16]validationSubPlane
	nonBMP []validationSubPlane
}

// NewBuilder returns a builder with the ASCII table defaulted to "valid,
// no mapping" / "Bidi L, join other" and all Unicode sub-planes empty, and
// allocates the non-BMP plane slices (planes 1..16).
func NewBuilder() *Builder {
	b := &Builder{}
	for i := range b.mapping.ascii {
		b.mapping.ascii[i] = encodeMapping(StatusValid, KindNone, 0, 0, 0)
	}
	for i := 0; i < 16; i++ {
		b.mapping.bmp[i].base = rune(i) * 0x1000
		b.validation.bmp[i].base = rune(i) * 0x1000
	}
	b.mapping.nonBMP = make([]mappingSubPlane, 16)
	b.validation.nonBMP = make([]validationSubPlane, 16)
	for p := 0; p < 16; p++ {
		b.mapping.nonBMP[p].base = rune(p+1) * 0x10000
		b.validation.nonBMP[p].base = rune(p+1) * 0x10000
	}
	return b
}

func encodeMapping(status MappingStatus, kind MappingKind, single, origin rune, table uint32) uint32 {
	w := uint32(status)<<29 | uint32(kind)<<27
	switch kind {
	case KindSingle:
		w |= uint32(single) & 0x1FFFFF
	case KindRebased:
		w |= uint32(origin) & 0x1FFFFF
	case KindTable:
		w |= table & 0x07FFFFFF
	}
	return w
}

func encodeTablePayload(offset uint16, length uint8) uint32 {
	return uint32(offset) | uint32(length)<<16
}

func encodeValidation(bidi BidiClass, join JoinType, isVirama, isMark bool) uint8 {
	b := uint8(bidi)<<5 | uint8(join)<<2
	if isVirama {
		b |= 0x2
	}
	if isMark {
		b |= 0x1
	}
	return b
}

// SetASCIIMapping sets the direct-indexed entry for an ASCII scalar.
func (b *Builder) SetASCIIMapping(r rune, status MappingStatus, kind MappingKind, single rune) {
	if r < 0 || r > 0x7F {
		panic("codepoint: ASCII mapping scalar out of range")
	}
	b.mapping.ascii[r] = encodeMapping(status, kind, single, 0, 0)
}

// SetASCIIValidation sets the direct-indexed validation entry for an ASCII
// scalar.
func (b *Builder) SetASCIIValidation(r rune, bidi BidiClass, join JoinType) {
	if r < 0 || r > 0x7F {
		panic("codepoint: ASCII validation scalar out of range")
	}
	b.validation.ascii[r] = encodeValidation(bidi, join, false, false)
}

// AddMappingRange appends a mapping entry covering [start, end] (inclusive)
// to every sub-plane it overlaps. When kind == KindRebased, origin is the
// target of `start`; the builder recomputes the origin for each fragment so
// that a range crossing a sub-plane boundary still maps each scalar to
// origin + (r - start) in the *original*, unsplit range (spec §3.3, §4.A
// "the builder adjusts any rebased-mapping origin to start afresh at the
// sub-plane boundary" — here "afresh" means relative to the true start,
// not the fragment start, which is what correctness requires; a literal
// per-fragment reset would corrupt the mapping).
func (b *Builder) AddMappingRange(start, end rune, status MappingStatus, kind MappingKind, origin rune) {
	if end < start {
		panic("codepoint: empty or inverted mapping range")
	}
	for cur := start; cur <= end; {
		plane, base, limit := mappingPlaneFor(cur)
		fragEnd := end
		if limit < fragEnd {
			fragEnd = limit
		}
		fragOrigin := origin
		if kind == KindRebased {
			fragOrigin = origin + (cur - start)
		}
		sp := b.mappingSubPlaneFor(cur)
		sp.codePoints = append(sp.codePoints, uint16(cur-base))
		sp.raw = append(sp.raw, encodeMapping(status, kind, 0, fragOrigin, 0))
		_ = plane
		cur = fragEnd + 1
	}
}

// AddMappingTableRange adds a single scalar whose mapping is a shared
// multi-scalar replacement (spec's KindTable).
func (b *Builder) AddMappingTableRange(r rune, status MappingStatus, replacement []rune) {
	offset := uint16(len(Replacements))
	Replacements = append(Replacements, replacement...)
	w := encodeMapping(status, KindTable, 0, 0, encodeTablePayload(offset, uint8(len(replacement))))
	sp := b.mappingSubPlaneFor(r)
	_, base, _ := mappingPlaneFor(r)
	sp.codePoints = append(sp.codePoints, uint16(r-base))
	sp.raw = append(sp.raw, w)
}

// AddValidationRange appends a validation entry covering [start, end].
func (b *Builder) AddValidationRange(start, end rune, bidi BidiClass, join JoinType, isVirama, isMark bool) {
	if end < start {
		panic("codepoint: empty or inverted validation range")
	}
	byteVal := encodeValidation(bidi, join, isVirama, isMark)
	for cur := start; cur <= end; {
		_, base, limit := validationPlaneFor(cur)
		fragEnd := end
		if limit < fragEnd {
			fragEnd = limit
		}
		sp := b.validationSubPlaneFor(cur)
		sp.codePoints = append(sp.codePoints, uint16(cur-base))
		sp.raw = append(sp.raw, byteVal)
		cur = fragEnd + 1
	}
}

func mappingPlaneFor(r rune) (idx int, base, limit rune) {
	if r <= 0xFFFF {
		idx = int(r >> 12)
		base = rune(idx) * 0x1000
		limit = base + 0xFFF
		return
	}
	p := int(r>>16) - 1
	base = rune(p+1) * 0x10000
	limit = base + 0xFFFF
	return p, base, limit
}

func validationPlaneFor(r rune) (idx int, base, limit rune) { return mappingPlaneFor(r) }

func (b *Builder) mappingSubPlaneFor(r rune) *mappingSubPlane {
	if r <= 0xFFFF {
		return &b.mapping.bmp[r>>12]
	}
	p := int(r>>16) - 1
	return &b.mapping.nonBMP[p]
}

func (b *Builder) validationSubPlaneFor(r rune) *validationSubPlane {
	if r <= 0xFFFF {
		return &b.validation.bmp[r>>12]
	}
	p := int(r>>16) - 1
	return &b.validation.nonBMP[p]
}

// Finish sorts every sub-plane's parallel arrays (codepoints ascending, data
// carried along) and validates the structural invariants (spec §4.A), then
// installs the tables as the package-level database used by Lookup{Mapping,Validation}.
func (b *Builder) Finish() {
	for i := range b.mapping.bmp {
		sortMappingSubPlane(&b.mapping.bmp[i])
	}
	for i := range b.mapping.nonBMP {
		sortMappingSubPlane(&b.mapping.nonBMP[i])
	}
	for i := range b.validation.bmp {
		sortValidationSubPlane(&b.validation.bmp[i])
	}
	for i := range b.validation.nonBMP {
		sortValidationSubPlane(&b.validation.nonBMP[i])
	}

	asciiMapping = b.mapping.ascii
	copy(bmpMapping[:], b.mapping.bmp[:])
	nonBMPMapping = b.mapping.nonBMP

	asciiValidation = b.validation.ascii
	copy(bmpValidation[:], b.validation.bmp[:])
	nonBMPValidation = b.validation.nonBMP
}

func sortMappingSubPlane(sp *mappingSubPlane) {
	n := len(sp.codePoints)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	insertionSortIdx(idx, func(i, j int) bool { return sp.codePoints[idx[i]] < sp.codePoints[idx[j]] })
	cps := make([]uint16, n)
	raw := make([]uint32, n)
	for i, j := range idx {
		cps[i] = sp.codePoints[j]
		raw[i] = sp.raw[j]
	}
	sp.codePoints, sp.raw = cps, raw
	if len(sp.codePoints) > 0 && sp.codePoints[0] != 0 {
		// Ensure a lower bound exists per spec §4.A; synthesize an
		// implicit "valid" entry covering [base, first explicit entry).
		sp.codePoints = append([]uint16{0}, sp.codePoints...)
		sp.raw = append([]uint32{encodeMapping(StatusValid, KindNone, 0, 0, 0)}, sp.raw...)
	}
}

func sortValidationSubPlane(sp *validationSubPlane) {
	n := len(sp.codePoints)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	insertionSortIdx(idx, func(i, j int) bool { return sp.codePoints[idx[i]] < sp.codePoints[idx[j]] })
	cps := make([]uint16, n)
	raw := make([]uint8, n)
	for i, j := range idx {
		cps[i] = sp.codePoints[j]
		raw[i] = sp.raw[j]
	}
	sp.codePoints, sp.raw = cps, raw
	if len(sp.codePoints) > 0 && sp.codePoints[0] != 0 {
		sp.codePoints = append([]uint16{0}, sp.codePoints...)
		sp.raw = append([]uint8{encodeValidation(BidiL, JoinOther, false, false)}, sp.raw...)
	}
}

// insertionSortIdx sorts idx in place using less; the tables built here are
// small (hundreds of entries), so an O(n^2) sort keeps this file dependency-free.
func insertionSortIdx(idx []int, less func(i, j int) bool) {
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0 && less(j, j-1); j-- {
			idx[j], idx[j-1] = idx[j-1], idx[j]
		}
	}
}
