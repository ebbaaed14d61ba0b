package tokenizer

import "strings"

// normalize keeps the ASCII letters and digits of word, lowercased, in order.
// Every other byte, including any byte of a multi-byte UTF-8 sequence, is
// discarded.
func normalize(word string) string {
	var builder strings.Builder
	for i := 0; i < len(word); i++ {
		b := word[i]
		switch {
		case b >= 'a' && b <= 'z', b >= '0' && b <= '9':
			builder.WriteByte(b)
		case b >= 'A' && b <= 'Z':
			builder.WriteByte(b + ('a' - 'A'))
		}
	}
	return builder.String()
}
