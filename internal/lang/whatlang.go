package lang

import (
	"github.com/abadojack/whatlanggo"
)

// WhatlangDetector classifies text with the whatlanggo trigram model.
// It is stateless and safe for concurrent use.
type WhatlangDetector struct{}

func (WhatlangDetector) Detect(text string) Tag {
	if text == "" {
		return TagUnknown
	}
	info := whatlanggo.Detect(text)
	switch info.Lang {
	case whatlanggo.Eng:
		return TagEnglish
	case whatlanggo.Spa:
		return TagSpanish
	case whatlanggo.Fra:
		return TagFrench
	case whatlanggo.Deu:
		return TagGerman
	case whatlanggo.Ita:
		return TagItalian
	case whatlanggo.Por:
		return TagPortuguese
	case whatlanggo.Nld:
		return TagDutch
	case whatlanggo.Rus:
		return TagRussian
	case whatlanggo.Cmn:
		return TagMandarin
	case whatlanggo.Jpn:
		return TagJapanese
	case whatlanggo.Kor:
		return TagKorean
	case whatlanggo.Arb:
		return TagArabic
	case whatlanggo.Hin:
		return TagHindi
	case whatlanggo.Tur:
		return TagTurkish
	case whatlanggo.Swe:
		return TagSwedish
	case whatlanggo.Vie:
		return TagVietnamese
	}
	return TagUnknown
}
