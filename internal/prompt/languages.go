package prompt

import (
	"fmt"

	"study-buddy/backend/internal/model"
)

var languages = []model.Language{
	{Code: "en", Name: "English", NativeName: "English"},
	{Code: "af", Name: "Afrikaans", NativeName: "Afrikaans"},
	{Code: "zu", Name: "isiZulu", NativeName: "isiZulu"},
	{Code: "xh", Name: "isiXhosa", NativeName: "isiXhosa"},
	{Code: "nso", Name: "Sepedi", NativeName: "Sepedi (Northern Sotho)"},
	{Code: "tn", Name: "Setswana", NativeName: "Setswana"},
	{Code: "st", Name: "Sesotho", NativeName: "Sesotho (Southern Sotho)"},
	{Code: "ts", Name: "Xitsonga", NativeName: "Xitsonga"},
	{Code: "ss", Name: "siSwati", NativeName: "siSwati"},
	{Code: "ve", Name: "Tshivenda", NativeName: "Tshivenda"},
	{Code: "nr", Name: "isiNdebele", NativeName: "isiNdebele"},
	{Code: "sasl", Name: "SA Sign Language", NativeName: "South African Sign Language", IsSignLanguage: true},
}

const signLanguageInstruction = `IMPORTANT: The user prefers South African Sign Language (SASL).
When explaining concepts:
1. Describe visual representations and gestures where applicable
2. Use simple, clear sentence structures that translate well to sign language
3. When relevant, mention that certain concepts have specific signs in SASL
4. Focus on visual analogies and spatial descriptions
5. Provide step-by-step visual instructions when explaining processes`

// Languages returns the selectable response languages.
func Languages() []model.Language {
	out := make([]model.Language, len(languages))
	copy(out, languages)
	return out
}

// FindLanguage looks a language up by code.
func FindLanguage(code string) (model.Language, bool) {
	for _, l := range languages {
		if l.Code == code {
			return l, true
		}
	}
	return model.Language{}, false
}

// LanguageInstruction returns the text appended to an instruction template so
// the model answers in the chosen language. Unknown codes yield "".
func LanguageInstruction(code string) string {
	lang, ok := FindLanguage(code)
	if !ok {
		return ""
	}
	if lang.IsSignLanguage {
		return signLanguageInstruction
	}
	return fmt.Sprintf(`IMPORTANT: Please respond in %[1]s (%[2]s).
If you cannot fully respond in %[1]s, provide the response in both %[1]s and English,
with the %[1]s translation first.`, lang.NativeName, lang.Name)
}
