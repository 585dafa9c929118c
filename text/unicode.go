package text

// EncodeCodePoint encodes a Unicode code point as UTF-8 bytes. Unlike
// utf8.AppendRune it does not substitute U+FFFD: escape sequences map to
// bytes independently, so surrogate code points encode to their three-byte
// pattern as-is. Code points above 0x10FFFF yield "".
func EncodeCodePoint(cp uint32) string {
	switch {
	case cp < 0x80:
		return string([]byte{byte(cp)})
	case cp < 0x800:
		return string([]byte{
			0xC0 | byte(cp>>6),
			0x80 | byte(cp&0x3F),
		})
	case cp < 0x10000:
		return string([]byte{
			0xE0 | byte(cp>>12),
			0x80 | byte((cp>>6)&0x3F),
			0x80 | byte(cp&0x3F),
		})
	case cp <= 0x10FFFF:
		return string([]byte{
			0xF0 | byte(cp>>18),
			0x80 | byte((cp>>12)&0x3F),
			0x80 | byte((cp>>6)&0x3F),
			0x80 | byte(cp&0x3F),
		})
	default:
		return ""
	}
}
