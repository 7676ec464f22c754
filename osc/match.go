package osc

import "strings"

// Match reports whether the concrete OSC address matches the given address
// pattern. The match is case sensitive!
//
// The pattern grammar is the restricted OSC glob syntax: addresses and
// patterns are compared segment by segment on '/', a '*' segment matches any
// one address segment, a '[...]' class (optionally negated with a leading
// '!') tests the first character of the address segment either against a
// single 'A-B' range or by membership in the class text, and a '{a,b}' group
// matches if any comma-separated alternative equals the segment. Differing
// segment counts never match.
//
// Match allocates nothing and has no side effects.
func Match(address, pattern string) bool {
	if address == pattern {
		return true
	}

	a, p := address, pattern
	for {
		seg, aRest, aMore := strings.Cut(a, "/")
		pat, pRest, pMore := strings.Cut(p, "/")

		if !matchSegment(seg, pat) {
			return false
		}
		if aMore != pMore {
			// Segment counts differ.
			return false
		}
		if !aMore {
			return true
		}
		a, p = aRest, pRest
	}
}

func matchSegment(seg, pat string) bool {
	if seg == pat || pat == "*" {
		return true
	}
	if len(pat) == 0 {
		return false
	}

	switch pat[0] {
	case '[':
		return matchClass(seg, pat)
	case '{':
		return matchGroup(seg, pat)
	}
	return false
}

// matchClass tests the first character of seg against a '[...]' class.
// Only the first character is examined; the rest of the segment is not
// further discriminated.
func matchClass(seg, pat string) bool {
	class := strings.TrimPrefix(pat, "[")
	class = strings.TrimSuffix(class, "]")

	negate := false
	if strings.HasPrefix(class, "!") {
		negate = true
		class = class[1:]
	}

	if len(seg) == 0 {
		return negate
	}
	c := seg[0]

	var in bool
	if len(class) == 3 && class[1] == '-' {
		in = class[0] <= c && c <= class[2]
	} else {
		in = strings.IndexByte(class, c) >= 0
	}
	return in != negate
}

// matchGroup tests seg against the comma-separated alternatives of a '{...}'
// group.
func matchGroup(seg, pat string) bool {
	group := strings.TrimPrefix(pat, "{")
	group = strings.TrimSuffix(group, "}")

	for {
		alt, rest, more := strings.Cut(group, ",")
		if seg == alt {
			return true
		}
		if !more {
			return false
		}
		group = rest
	}
}
