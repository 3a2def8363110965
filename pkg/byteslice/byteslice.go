// Package byteslice implements the handful of parsing-combinator primitives
// every higher decoder in this module is built from: separate, trim and
// numeric decode over byte slices. There is no generic parser-combinator
// library behind this — spec.md explicitly rules that out (§1 Non-goals) —
// just these seven functions, composed by hand at each call site, the way
// the teacher's own wire-format decoders (internal/protocols/rtmp/amf0,
// .../chunk) compose bytes.IndexByte and manual slicing rather than
// reaching for a parser library.
package byteslice

import (
	"unicode/utf8"

	"github.com/mediasignal/rtpsdp/pkg/wireerr"
)

// Separate finds the first occurrence of sep in s and returns the slices
// before and after it. It returns ok=false if sep does not occur, or if
// len(s) <= len(sep) (mirrors spec.md §4.1: "Returns nothing if |S| <=
// |E|"). The search is linear, left-to-right, so Separate is left-biased:
// it always reports the first match.
func Separate(s, sep []byte) (left, right []byte, ok bool) {
	if len(s) <= len(sep) || len(sep) == 0 {
		return nil, nil, false
	}

	for i := 0; i+len(sep) <= len(s); i++ {
		if string(s[i:i+len(sep)]) == string(sep) {
			return s[:i], s[i+len(sep):], true
		}
	}
	return nil, nil, false
}

// Trim returns s with leading and trailing bytes that are members of
// cutset removed. It is empty if every byte of s is in cutset, or if s is
// empty. Trim is idempotent: Trim(Trim(s, cutset), cutset) == Trim(s, cutset).
func Trim(s, cutset []byte) []byte {
	isCut := func(b byte) bool {
		for _, c := range cutset {
			if b == c {
				return true
			}
		}
		return false
	}

	start := 0
	for start < len(s) && isCut(s[start]) {
		start++
	}

	end := len(s)
	for end > start && isCut(s[end-1]) {
		end--
	}

	return s[start:end]
}

// SeparateTrimmed composes Separate and Trim: it splits on sep, then trims
// both halves with cutset.
func SeparateTrimmed(s, sep, cutset []byte) (left, right []byte, ok bool) {
	l, r, ok := Separate(s, sep)
	if !ok {
		return nil, nil, false
	}
	return Trim(l, cutset), Trim(r, cutset), true
}

// WhileSeparateTrimmed is like SeparateTrimmed, but tolerates an
// unterminated final token: if sep does not occur, it returns (trim(s,
// cutset), nil) instead of failing.
func WhileSeparateTrimmed(s, sep, cutset []byte) (left, right []byte) {
	l, r, ok := SeparateTrimmed(s, sep, cutset)
	if !ok {
		return Trim(s, cutset), nil
	}
	return l, r
}

// Utf8Valid reports whether s is well-formed UTF-8.
func Utf8Valid(s []byte) bool {
	return utf8.Valid(s)
}

// Utf8ToStr promotes s to a string, failing with wireerr.Utf8 if s is not
// valid UTF-8.
func Utf8ToStr(s []byte) (string, error) {
	if !utf8.Valid(s) {
		return "", wireerr.Utf8Err(s)
	}
	return string(s), nil
}

// signedOrUnsigned is the constraint satisfied by every integer type this
// module decodes into.
type signedOrUnsigned interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Utf8ToNumber base-10 decodes s into T, with overflow checking and an
// optional leading '-' (rejected for unsigned T). Any non-digit byte,
// other than a single leading sign, fails with wireerr.InvalidData.
func Utf8ToNumber[T signedOrUnsigned](s []byte) (T, error) {
	var zero T

	if len(s) == 0 {
		return zero, wireerr.InvalidBytes(s, "empty numeric token")
	}

	neg := false
	digits := s
	if s[0] == '-' || s[0] == '+' {
		neg = s[0] == '-'
		digits = s[1:]
	}
	if len(digits) == 0 {
		return zero, wireerr.InvalidBytes(s, "numeric token has no digits")
	}

	var unsigned uint64
	for _, b := range digits {
		if b < '0' || b > '9' {
			return zero, wireerr.InvalidBytes(s, "non-digit byte %q in numeric token", b)
		}
		digit := uint64(b - '0')

		if unsigned > (^uint64(0)-digit)/10 {
			return zero, wireerr.InvalidBytes(s, "numeric token overflows uint64")
		}
		unsigned = unsigned*10 + digit
	}

	if neg {
		if !isSigned[T]() {
			return zero, wireerr.InvalidBytes(s, "negative value not allowed for unsigned type")
		}
		signedVal := -int64(unsigned)
		if unsigned > 1<<63 {
			return zero, wireerr.InvalidBytes(s, "numeric token overflows target type")
		}
		result := T(signedVal)
		if int64(result) != signedVal {
			return zero, wireerr.InvalidBytes(s, "numeric token overflows target type")
		}
		return result, nil
	}

	result := T(unsigned)
	if uint64(result) != unsigned {
		return zero, wireerr.InvalidBytes(s, "numeric token overflows target type")
	}
	return result, nil
}

func isSigned[T signedOrUnsigned]() bool {
	var zero T
	return zero-1 < zero
}
