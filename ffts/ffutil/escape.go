package ffutil

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Unescape decodes backslash escapes so patterns can hold arbitrary bytes:
// \\ \" \r \n \t \v \b \a, an escaped space, \xNN and up to three octal digits
func Unescape(s string) ([]byte, error) {
	input := []byte(s)
	inputSize := len(input)

	var result []byte
	j := 0
	for j < inputSize {
		if input[j] != '\\' {
			result = append(result, input[j])
			j++
			continue
		}

		j++
		if j >= inputSize {
			return nil, errors.Errorf("trailing backslash in %q", s)
		}

		switch input[j] {
		case '\\':
			result = append(result, '\\')
			j++
		case '"':
			result = append(result, '"')
			j++
		case 'r':
			result = append(result, '\r')
			j++
		case 'n':
			result = append(result, '\n')
			j++
		case 't':
			result = append(result, '\t')
			j++
		case 'v':
			result = append(result, '\v')
			j++
		case 'b':
			result = append(result, '\b')
			j++
		case 'a':
			result = append(result, '\a')
			j++
		case ' ':
			result = append(result, ' ')
			j++
		case 'x':
			j++
			if j+2 > inputSize {
				return nil, errors.Errorf("unfinished hexadecimal escape: %s", string(input[j:]))
			}

			// hexadecimal escape, e.g. "\xeb"
			hexInput := string(input[j : j+2])

			val, err := strconv.ParseUint(hexInput, 16, 8)
			if err != nil {
				return nil, errors.Wrapf(err, "in hex escape %s", hexInput)
			}
			result = append(result, byte(val))
			j += 2
		default:
			if !IsOctalNumber(input[j]) {
				return nil, errors.Errorf("unrecognized escape sequence starting with 0x%x, aka '\\%c'", input[j], input[j])
			}

			numOctal := 1
			k := j + 1
			for k < inputSize && numOctal < 3 && IsOctalNumber(input[k]) {
				numOctal++
				k++
			}

			// octal escape e.g. \0, \11, \222 but no longer
			octInput := string(input[j:k])
			val, err := strconv.ParseUint(octInput, 8, 8)
			if err != nil {
				return nil, errors.Wrapf(err, "in oct escape %s", octInput)
			}
			result = append(result, byte(val))
			j = k
		}
	}

	return result, nil
}

// Escape renders bytes for humans, the reverse of Unescape
func Escape(input []byte) string {
	var s []byte
	for _, b := range input {
		switch {
		case b == '\\':
			s = append(s, '\\', '\\')
		case b == '"':
			s = append(s, '\\', '"')
		case b == '\n':
			s = append(s, '\\', 'n')
		case b == '\t':
			s = append(s, '\\', 't')
		case b == '\r':
			s = append(s, '\\', 'r')
		case IsPrintable(b):
			s = append(s, b)
		default:
			s = append(s, fmt.Sprintf("\\x%02x", b)...)
		}
	}
	return string(s)
}
