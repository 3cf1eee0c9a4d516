package text

// DecodeRune decodes the first UTF-8 codepoint in b and returns the
// codepoint along with the number of bytes consumed.
//
// A size of zero reports a malformed or truncated sequence. The decoder
// rejects continuation bytes in the lead position, the overlong lead
// bytes 0xC0 and 0xC1, lead bytes 0xF5 and above, and any continuation
// byte outside [0x80, 0xBF]. Callers are expected to stop processing
// the remainder of the string at the first failure.
func DecodeRune(b []byte) (cp rune, size int) {
	if len(b) == 0 {
		return 0, 0
	}
	c := b[0]
	switch {
	case c < 0x80:
		return rune(c), 1
	case c < 0xC2:
		// 0x80..0xBF are continuation bytes, 0xC0/0xC1 are overlong.
		return 0, 0
	case c < 0xE0:
		if len(b) < 2 || !isContinuation(b[1]) {
			return 0, 0
		}
		return rune(c&0x1F)<<6 | rune(b[1]&0x3F), 2
	case c < 0xF0:
		if len(b) < 3 || !isContinuation(b[1]) || !isContinuation(b[2]) {
			return 0, 0
		}
		return rune(c&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F), 3
	case c < 0xF5:
		if len(b) < 4 || !isContinuation(b[1]) || !isContinuation(b[2]) || !isContinuation(b[3]) {
			return 0, 0
		}
		return rune(c&0x07)<<18 | rune(b[1]&0x3F)<<12 |
			rune(b[2]&0x3F)<<6 | rune(b[3]&0x3F), 4
	default:
		// 0xF5 and above can only encode values past U+10FFFF.
		return 0, 0
	}
}

// isContinuation reports whether b is a UTF-8 continuation byte.
func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}
