// Package punycode implements RFC 3492 exactly: base 36, adaptive bias,
// delimiter '-' (spec §4.D.2). It is written directly from the RFC rather
// than ported from any example in the retrieval pack — the idna.go
// grounding example (golang.org/x/text/internal/export/idna) calls
// sibling encode/decode helpers that were not themselves retrieved.
package punycode

import (
	"errors"
	"strings"
)

const (
	base        = 36
	tmin        = 1
	tmax        = 26
	skew        = 38
	damp        = 700
	initialBias = 72
	initialN    = 0x80
	delimiter   = '-'
)

var (
	// ErrOverflow is returned when encoding would require delta arithmetic
	// that overflows 32 bits (spec §4.D.2, "inputs longer than ~3854 scalars").
	ErrOverflow = errors.New("punycode: overflow")
	// ErrInvalidInput is returned by Decode for malformed input (spec
	// §4.D.2): non-ASCII in the basic section, non-alphanumeric ASCII in the
	// extended section, integer parse failure, delta overflow, or scalar
	// value > 0x10FFFF.
	ErrInvalidInput = errors.New("punycode: invalid input")
)

func adapt(delta, numPoints uint32, firstTime bool) uint32 {
	if firstTime {
		delta /= damp
	} else {
		delta /= 2
	}
	delta += delta / numPoints
	k := uint32(0)
	for delta > ((base-tmin)*tmax)/2 {
		delta /= base - tmin
		k += base
	}
	return k + (base-tmin+1)*delta/(delta+skew)
}

func digitValue(d byte) (uint32, bool) {
	switch {
	case 'a' <= d && d <= 'z':
		return uint32(d - 'a'), true
	case 'A' <= d && d <= 'Z':
		return uint32(d - 'A'), true
	case '0' <= d && d <= '9':
		return uint32(d-'0') + 26, true
	}
	return 0, false
}

func digitChar(v uint32) byte {
	if v < 26 {
		return byte('a' + v)
	}
	return byte('0' + v - 26)
}

// Encode encodes a single Unicode label (runes, no separators) per RFC
// 3492 and returns the extended-section string (without the "xn--" prefix
// or the ACE delimiter that would separate it from an empty basic section).
func Encode(input []rune) (string, error) {
	var out strings.Builder
	var basic []rune
	for _, r := range input {
		if r < 0x80 {
			basic = append(basic, r)
		}
	}
	for _, r := range basic {
		out.WriteRune(r)
	}
	b := len(basic)
	if b > 0 {
		out.WriteByte(delimiter)
	}

	n := uint32(initialN)
	delta := uint32(0)
	bias := uint32(initialBias)
	h := b

	for h < len(input) {
		m := uint32(0x10FFFF + 1)
		for _, r := range input {
			if uint32(r) >= n && uint32(r) < m {
				m = uint32(r)
			}
		}
		if m-n > (0xFFFFFFFF-delta)/uint32(h+1) {
			return "", ErrOverflow
		}
		delta += (m - n) * uint32(h+1)
		n = m

		for _, r := range input {
			c := uint32(r)
			if c < n {
				delta++
				if delta == 0 {
					return "", ErrOverflow
				}
			}
			if c == n {
				q := delta
				for k := uint32(base); ; k += base {
					var t uint32
					switch {
					case k <= bias:
						t = tmin
					case k >= bias+tmax:
						t = tmax
					default:
						t = k - bias
					}
					if q < t {
						break
					}
					out.WriteByte(digitChar(t + (q-t)%(base-t)))
					q = (q - t) / (base - t)
				}
				out.WriteByte(digitChar(q))
				bias = adapt(delta, uint32(h+1), h == b)
				delta = 0
				h++
			}
		}
		delta++
		n++
	}
	return out.String(), nil
}

// Decode decodes the extended-section string (as produced by Encode, i.e.
// without the "xn--" ACE prefix) back into the original runes.
func Decode(input string) ([]rune, error) {
	n := uint32(initialN)
	i := uint32(0)
	bias := uint32(initialBias)

	var output []rune

	lastDelim := strings.LastIndexByte(input, delimiter)
	if lastDelim >= 0 {
		for _, r := range input[:lastDelim] {
			if r >= 0x80 {
				return nil, ErrInvalidInput
			}
			output = append(output, r)
		}
		input = input[lastDelim+1:]
	}

	pos := 0
	for pos < len(input) {
		oldi := i
		w := uint32(1)
		for k := uint32(base); ; k += base {
			if pos >= len(input) {
				return nil, ErrInvalidInput
			}
			digit, ok := digitValue(input[pos])
			if !ok {
				return nil, ErrInvalidInput
			}
			pos++
			if digit > (0xFFFFFFFF-i)/w {
				return nil, ErrInvalidInput
			}
			i += digit * w
			var t uint32
			switch {
			case k <= bias:
				t = tmin
			case k >= bias+tmax:
				t = tmax
			default:
				t = k - bias
			}
			if digit < t {
				break
			}
			if w > 0xFFFFFFFF/(base-t) {
				return nil, ErrInvalidInput
			}
			w *= base - t
		}
		outLen := uint32(len(output)) + 1
		bias = adapt(i-oldi, outLen, oldi == 0)
		if i/outLen > 0x10FFFF-n {
			return nil, ErrInvalidInput
		}
		n += i / outLen
		i %= outLen
		if n > 0x10FFFF {
			return nil, ErrInvalidInput
		}
		// Insert rune n at position i.
		output = append(output, 0)
		copy(output[i+1:], output[i:])
		output[i] = rune(n)
		i++
	}
	return output, nil
}
