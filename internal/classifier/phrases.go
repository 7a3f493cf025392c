package classifier

import "strings"

// extractKeyPhrases pulls up to 5 candidate windows of 10–30 characters from
// the raw comment. Segmentation is naive on purpose: split on punctuation,
// trim, and cut overlong segments at the last word boundary inside the
// window. This is intentionally not full NLP.
func extractKeyPhrases(comment string) []string {
	var phrases []string
	for _, seg := range strings.FieldsFunc(comment, isPhraseDelimiter) {
		seg = strings.TrimSpace(seg)
		if len(seg) < minPhraseLen {
			continue
		}
		if len(seg) > maxPhraseLen {
			seg = cutAtWordBoundary(seg, maxPhraseLen)
		}
		phrases = append(phrases, seg)
		if len(phrases) == maxKeyPhrases {
			break
		}
	}
	return phrases
}

func isPhraseDelimiter(r rune) bool {
	switch r {
	case '.', ',', '!', '?', ';', ':', '\n':
		return true
	}
	return false
}

// cutAtWordBoundary shortens s to at most limit bytes, preferring the last
// space before the limit so words are not split mid-way.
func cutAtWordBoundary(s string, limit int) string {
	for limit > 0 && s[limit]&0xC0 == 0x80 {
		limit-- // don't split a rune
	}
	cut := s[:limit]
	if idx := strings.LastIndexByte(cut, ' '); idx >= minPhraseLen {
		cut = cut[:idx]
	}
	return strings.TrimSpace(cut)
}
