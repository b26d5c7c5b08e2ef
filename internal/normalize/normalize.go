// Package normalize provides utilities for normalizing user-supplied data.
package normalize

import "strings"

// iso639_2to1 maps ISO 639-2 (3-letter) codes to ISO 639-1 (2-letter) codes
// for the languages the translation backend supports.
//
//nolint:gochecknoglobals // Static lookup table for language normalization
var iso639_2to1 = map[string]string{
	"eng": "en", "spa": "es", "fra": "fr", "deu": "de", "ita": "it",
	"por": "pt", "nld": "nl", "rus": "ru", "jpn": "ja", "zho": "zh",
	"kor": "ko", "pol": "pl", "swe": "sv", "nor": "no", "dan": "da",
	"fin": "fi", "tur": "tr", "ell": "el", "ces": "cs", "hun": "hu",
	"ron": "ro", "ukr": "uk", "slk": "sk", "bul": "bg", "lit": "lt",
	"lav": "lv", "est": "et", "slv": "sl", "ind": "id", "ara": "ar",
	// Alternative ISO 639-2/B codes (bibliographic)
	"ger": "de", "fre": "fr", "dut": "nl", "chi": "zh", "cze": "cs",
	"gre": "el", "rum": "ro", "slo": "sk",
}

// languageNameToCode maps common language names to ISO 639-1 codes.
//
//nolint:gochecknoglobals // Static lookup table for language normalization
var languageNameToCode = map[string]string{
	"english": "en", "spanish": "es", "french": "fr", "german": "de",
	"italian": "it", "portuguese": "pt", "dutch": "nl", "russian": "ru",
	"japanese": "ja", "chinese": "zh", "korean": "ko", "polish": "pl",
	"swedish": "sv", "norwegian": "no", "danish": "da", "finnish": "fi",
	"turkish": "tr", "greek": "el", "czech": "cs", "hungarian": "hu",
	"romanian": "ro", "ukrainian": "uk", "slovak": "sk", "bulgarian": "bg",
	"lithuanian": "lt", "latvian": "lv", "estonian": "et", "slovenian": "sl",
	"indonesian": "id", "arabic": "ar",
}

// Language converts user input to an ISO 639-1 language code where one
// is known. Accepts full names ("Spanish"), 3-letter codes ("spa") and
// 2-letter codes, case insensitively. Region subtags are preserved for
// 2-letter input ("pt-BR" stays as-is).
func Language(input string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	lower := strings.ToLower(trimmed)

	if code, ok := languageNameToCode[lower]; ok {
		return code, true
	}
	if code, ok := iso639_2to1[lower]; ok {
		return code, true
	}

	// Already a 2-letter code, possibly with a region subtag.
	base := lower
	if idx := strings.IndexAny(lower, "-_"); idx > 0 {
		base = lower[:idx]
	}
	if len(base) == 2 && isAlpha(base) {
		return strings.ReplaceAll(trimmed, "_", "-"), true
	}

	return "", false
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
