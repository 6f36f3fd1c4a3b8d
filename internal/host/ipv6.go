package host

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// parseIPv6 parses the interior of a bracketed IPv6 literal per RFC 4291's
// compressed form with an optional embedded-IPv4 tail (spec §4.C.1 step 1).
func parseIPv6(s string) ([8]uint16, error) {
	var addr [8]uint16
	if s == "" {
		return addr, errors.New("ipv6: empty address")
	}

	pieceIndex := 0
	compressIndex := -1
	i := 0

	if i+1 < len(s) && s[i] == ':' {
		if s[i+1] != ':' {
			return addr, errors.New("ipv6: address begins with a single colon")
		}
		i += 2
		pieceIndex = 0
		compressIndex = 0
	}

	for i < len(s) {
		if pieceIndex == 8 {
			return addr, errors.New("ipv6: too many pieces")
		}
		if s[i] == ':' {
			if compressIndex != -1 {
				return addr, errors.New("ipv6: multiple '::'")
			}
			i++
			compressIndex = pieceIndex
			continue
		}

		start := i
		for i < len(s) && isHexDigit(s[i]) && i-start < 4 {
			i++
		}
		if i == start {
			return addr, fmt.Errorf("ipv6: expected hex digit at %d", i)
		}
		if i < len(s) && s[i] == '.' {
			// Embedded IPv4 tail.
			if pieceIndex > 6 {
				return addr, errors.New("ipv6: embedded IPv4 leaves no room")
			}
			v4, err := parseEmbeddedIPv4(s[start:])
			if err != nil {
				return addr, err
			}
			addr[pieceIndex] = uint16(v4 >> 16)
			addr[pieceIndex+1] = uint16(v4)
			pieceIndex += 2
			i = len(s)
			break
		}
		v, err := strconv.ParseUint(s[start:i], 16, 16)
		if err != nil {
			return addr, fmt.Errorf("ipv6: invalid piece %q", s[start:i])
		}
		addr[pieceIndex] = uint16(v)
		pieceIndex++

		if i < len(s) {
			if s[i] != ':' {
				return addr, fmt.Errorf("ipv6: expected ':' at %d", i)
			}
			if i+1 == len(s) {
				return addr, errors.New("ipv6: trailing ':'")
			}
			i++
		}
	}

	if compressIndex != -1 {
		swaps := pieceIndex - compressIndex
		for j := 0; j < swaps; j++ {
			addr[7-j] = addr[pieceIndex-1-j]
		}
		for j := compressIndex; j < 8-swaps; j++ {
			addr[j] = 0
		}
	} else if pieceIndex != 8 {
		return addr, fmt.Errorf("ipv6: expected 8 pieces, got %d", pieceIndex)
	}

	return addr, nil
}

func parseEmbeddedIPv4(s string) (uint32, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return 0, fmt.Errorf("ipv6: embedded ipv4 %q must have 4 parts", s)
	}
	var result uint32
	for _, p := range parts {
		if p == "" || len(p) > 3 {
			return 0, fmt.Errorf("ipv6: embedded ipv4 part %q invalid", p)
		}
		for _, c := range p {
			if c < '0' || c > '9' {
				return 0, fmt.Errorf("ipv6: embedded ipv4 part %q not decimal", p)
			}
		}
		v, err := strconv.ParseUint(p, 10, 16)
		if err != nil || v > 255 {
			return 0, fmt.Errorf("ipv6: embedded ipv4 part %q out of range", p)
		}
		result = result<<8 | uint32(v)
	}
	return result, nil
}
