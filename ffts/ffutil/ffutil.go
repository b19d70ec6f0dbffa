package ffutil

// IsWhitespace tests if a byte is either a space or a tab
func IsWhitespace(b byte) bool {
	return b == ' ' || b == '\t'
}

// IsNumber tests if a byte is in [0-9]
func IsNumber(b byte) bool {
	return '0' <= b && b <= '9'
}

// IsOctalNumber tests if a byte is in [0-7]
func IsOctalNumber(b byte) bool {
	return '0' <= b && b <= '7'
}

// IsHexNumber tests if a byte is in [0-9A-Fa-f]
func IsHexNumber(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

// IsLowerLetter tests if a byte is in [a-z]
func IsLowerLetter(b byte) bool {
	return 'a' <= b && b <= 'z'
}

// IsUpperLetter tests if a byte is in [A-Z]
func IsUpperLetter(b byte) bool {
	return 'A' <= b && b <= 'Z'
}

// IsPrintable tests if a byte is printable ASCII
func IsPrintable(b byte) bool {
	return ' ' <= b && b <= '~'
}
