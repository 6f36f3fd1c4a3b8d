package codepoint

// Seed data for the code-point database. This is a deliberately partial
// subset of the full Unicode IDNA mapping/validation tables: full ASCII, and
// a curated set of BMP/supplementary ranges chosen so that every rule in
// spec §4.D.1 has at least one codepoint to exercise it (see SPEC_FULL.md
// §6 and DESIGN.md for the rationale; extending this to full Unicode
// coverage is a data-only change, not a structural one).
func init() {
	b := NewBuilder()
	seedASCII(b)
	seedLatin1Supplement(b)
	seedSubPlaneCrossingDemo(b)
	seedDeviationAndTableMappings(b)
	seedBidiAndJoinerSamples(b)
	b.Finish()
}

func seedASCII(b *Builder) {
	// Default: everything not explicitly set below keeps the builder's
	// "valid, no mapping" default.
	for r := rune(0x00); r <= 0x2C; r++ {
		b.SetASCIIMapping(r, StatusDisallowedSTD3Valid, KindNone, 0)
	}
	b.SetASCIIMapping('-', StatusValid, KindNone, 0)
	b.SetASCIIMapping('.', StatusValid, KindNone, 0)
	b.SetASCIIMapping('/', StatusDisallowedSTD3Valid, KindNone, 0)
	for r := rune('0'); r <= '9'; r++ {
		b.SetASCIIMapping(r, StatusValid, KindNone, 0)
	}
	for r := rune(':'); r <= '@'; r++ {
		b.SetASCIIMapping(r, StatusDisallowedSTD3Valid, KindNone, 0)
	}
	for r := rune('A'); r <= 'Z'; r++ {
		b.SetASCIIMapping(r, StatusMapped, KindSingle, r+0x20)
	}
	for r := rune('['); r <= '`'; r++ {
		b.SetASCIIMapping(r, StatusDisallowedSTD3Valid, KindNone, 0)
	}
	for r := rune('a'); r <= 'z'; r++ {
		b.SetASCIIMapping(r, StatusValid, KindNone, 0)
	}
	for r := rune('{'); r <= 0x7F; r++ {
		b.SetASCIIMapping(r, StatusDisallowedSTD3Valid, KindNone, 0)
	}

	for r := rune(0x00); r <= 0x1F; r++ {
		b.SetASCIIValidation(r, BidiDisallowed, JoinOther)
	}
	for r := rune(0x20); r <= 0x40; r++ {
		b.SetASCIIValidation(r, BidiOther, JoinOther)
	}
	for r := rune('A'); r <= 'Z'; r++ {
		b.SetASCIIValidation(r, BidiL, JoinOther)
	}
	for r := rune('['); r <= 0x60; r++ {
		b.SetASCIIValidation(r, BidiOther, JoinOther)
	}
	for r := rune('a'); r <= 'z'; r++ {
		b.SetASCIIValidation(r, BidiL, JoinOther)
	}
	for r := rune('{'); r <= 0x7F; r++ {
		b.SetASCIIValidation(r, BidiOther, JoinOther)
	}
	for r := rune('0'); r <= '9'; r++ {
		b.SetASCIIValidation(r, BidiEN, JoinOther)
	}
}

// seedLatin1Supplement covers the real Unicode uppercase->lowercase
// rebasing used by UTS#46 over U+00C0..U+00DE (skipping the multiplication
// sign at U+00D7), plus the neighbouring symbols and lowercase letters.
func seedLatin1Supplement(b *Builder) {
	setMappingSingle(b, 0x00A0, StatusDisallowedSTD3Mapped, ' ')

	b.AddMappingRange(0x00C0, 0x00D6, StatusMapped, KindRebased, 0x00E0)
	setMappingSingle(b, 0x00D7, StatusDisallowedSTD3Valid, 0)
	b.AddMappingRange(0x00D8, 0x00DE, StatusMapped, KindRebased, 0x00F8)
	// U+00DF (ß) is a deviation character, seeded in
	// seedDeviationAndTableMappings to keep all deviation entries together.
	for r := rune(0x00E0); r <= 0x00F6; r++ {
		setMappingValid(b, r)
	}
	setMappingSingle(b, 0x00F7, StatusDisallowedSTD3Valid, 0)
	for r := rune(0x00F8); r <= 0x00FF; r++ {
		setMappingValid(b, r)
	}

	b.AddValidationRange(0x00A0, 0x00FF, BidiOther, JoinOther, false, false)
	b.AddValidationRange(0x00C0, 0x00FF, BidiL, JoinOther, false, false)
}

// seedSubPlaneCrossingDemo adds a rebased mapping range that straddles a
// BMP sub-plane boundary (0x1000 is the boundary between sub-planes 0 and
// 1), to exercise the builder's cross-boundary origin recomputation (spec
// §3.3/§4.A/§9). No contiguous real-Unicode case-folding range happens to
// straddle a sub-plane boundary at the scale this seed covers, so this
// range is illustrative rather than drawn from an existing Unicode block;
// it is documented here rather than silently presented as authoritative
// data (see DESIGN.md).
func seedSubPlaneCrossingDemo(b *Builder) {
	b.AddMappingRange(0x0FF8, 0x1007, StatusMapped, KindRebased, 0x0FC8)
	b.AddValidationRange(0x0FF8, 0x1007, BidiL, JoinOther, false, false)
}

// seedDeviationAndTableMappings adds the UTS#46 deviation characters and a
// table-mapping (multi-scalar replacement) entry.
func seedDeviationAndTableMappings(b *Builder) {
	setDeviation(b, 0x00DF) // LATIN SMALL LETTER SHARP S
	setDeviationRange(b, 0x200C, 0x200D) // ZWNJ, ZWJ — deviation, valid unless transitional

	// U+1E9E LATIN CAPITAL LETTER SHARP S maps to "ss" (KindTable, a real
	// UTS#46 mapping entry).
	b.AddMappingTableRange(0x1E9E, StatusMapped, []rune{'s', 's'})
	b.AddValidationRange(0x1E9E, 0x1E9E, BidiL, JoinOther, false, false)

	b.AddValidationRange(0x200C, 0x200D, BidiOther, JoinOther, false, false)
}

// seedBidiAndJoinerSamples adds enough Bidi/joining-type/virama samples to
// exercise the RTL-label and ContextJ rules (spec §4.D.1).
func seedBidiAndJoinerSamples(b *Builder) {
	// Hebrew/Arabic block: Bidi R/AL.
	b.AddMappingRange(0x05D0, 0x05EA, StatusValid, KindNone, 0) // Hebrew alphabet
	b.AddValidationRange(0x05D0, 0x05EA, BidiR_AL, JoinOther, false, false)

	b.AddMappingRange(0x0621, 0x0621, StatusValid, KindNone, 0) // Arabic hamza, dual-joining? treat as D
	b.AddValidationRange(0x0621, 0x0621, BidiR_AL, JoinD, false, false)

	b.AddMappingRange(0x0627, 0x0627, StatusValid, KindNone, 0) // Arabic ALEF: right-joining only
	b.AddValidationRange(0x0627, 0x0627, BidiR_AL, JoinR, false, false)

	b.AddMappingRange(0x0628, 0x0628, StatusValid, KindNone, 0) // Arabic BEH: dual-joining
	b.AddValidationRange(0x0628, 0x0628, BidiR_AL, JoinD, false, false)

	b.AddMappingRange(0x064B, 0x0650, StatusValid, KindNone, 0) // Arabic harakat: transparent
	b.AddValidationRange(0x064B, 0x0650, BidiNSM, JoinT, false, false)

	// Devanagari virama: joining type T, isVirama.
	b.AddMappingRange(0x094D, 0x094D, StatusValid, KindNone, 0)
	b.AddValidationRange(0x094D, 0x094D, BidiL, JoinT, true, false)

	// Combining acute accent: a leading combining mark (isMark).
	b.AddMappingRange(0x0301, 0x0301, StatusValid, KindNone, 0)
	b.AddValidationRange(0x0301, 0x0301, BidiNSM, JoinOther, false, true)

	// A disallowed C1-control-adjacent scalar.
	b.AddMappingRange(0x0080, 0x0080, StatusDisallowed, KindNone, 0)
	b.AddValidationRange(0x0080, 0x0080, BidiDisallowed, JoinOther, false, false)
}

func setMappingValid(b *Builder, r rune) {
	b.AddMappingRange(r, r, StatusValid, KindNone, 0)
}

func setMappingSingle(b *Builder, r rune, status MappingStatus, single rune) {
	b.AddMappingRange(r, r, status, KindSingle, 0)
	// AddMappingRange does not thread the single-char payload for KindSingle
	// (it only threads Origin for KindRebased); patch the just-appended raw
	// word directly so single-scalar mappings are representable too.
	sp := b.mappingSubPlaneFor(r)
	last := len(sp.raw) - 1
	sp.raw[last] = encodeMapping(status, KindSingle, single, 0, 0)
}

func setDeviation(b *Builder, r rune) {
	b.AddMappingRange(r, r, StatusDeviation, KindTable, 0)
	offset := uint16(len(Replacements))
	Replacements = append(Replacements, 's', 's')
	sp := b.mappingSubPlaneFor(r)
	last := len(sp.raw) - 1
	sp.raw[last] = encodeMapping(StatusDeviation, KindTable, 0, 0, encodeTablePayload(offset, 2))
	b.AddValidationRange(r, r, BidiL, JoinOther, false, false)
}

func setDeviationRange(b *Builder, start, end rune) {
	for r := start; r <= end; r++ {
		b.AddMappingRange(r, r, StatusDeviation, KindNone, 0)
	}
}
