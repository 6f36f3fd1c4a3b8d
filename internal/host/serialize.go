package host

import (
	"fmt"
	"strings"
)

// String serializes h per the WHATWG host-serializer algorithm.
func (h Host) String() string {
	switch h.Kind {
	case KindNone, KindEmpty:
		return ""
	case KindDomain:
		return h.Domain
	case KindOpaque:
		return h.Opaque
	case KindIPv4:
		return serializeIPv4(h.IPv4)
	case KindIPv6:
		return "[" + serializeIPv6(h.IPv6) + "]"
	default:
		return ""
	}
}

func serializeIPv4(v uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d", byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// serializeIPv6 applies the WHATWG compression rule: find the longest run
// of consecutive zero groups (length > 1) and replace it with "::".
func serializeIPv6(groups [8]uint16) string {
	bestStart, bestLen := -1, 0
	curStart, curLen := -1, 0
	for i, g := range groups {
		if g == 0 {
			if curStart == -1 {
				curStart = i
			}
			curLen++
		} else {
			if curLen > bestLen {
				bestStart, bestLen = curStart, curLen
			}
			curStart, curLen = -1, 0
		}
	}
	if curLen > bestLen {
		bestStart, bestLen = curStart, curLen
	}
	if bestLen < 2 {
		bestStart = -1
	}

	var parts []string
	i := 0
	for i < 8 {
		if i == bestStart {
			parts = append(parts, "")
			if i == 0 {
				parts = append(parts, "")
			}
			i += bestLen
			if i == 8 {
				parts = append(parts, "")
			}
			continue
		}
		parts = append(parts, fmt.Sprintf("%x", groups[i]))
		i++
	}
	return strings.Join(parts, ":")
}
