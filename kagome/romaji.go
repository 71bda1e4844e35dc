package kagome

import "strings"

// hiragana maps each hiragana to its Hepburn romanization.
var hiragana = map[rune]string{
	'あ': "a", 'い': "i", 'う': "u", 'え': "e", 'お': "o",
	'か': "ka", 'き': "ki", 'く': "ku", 'け': "ke", 'こ': "ko",
	'さ': "sa", 'し': "shi", 'す': "su", 'せ': "se", 'そ': "so",
	'た': "ta", 'ち': "chi", 'つ': "tsu", 'て': "te", 'と': "to",
	'な': "na", 'に': "ni", 'ぬ': "nu", 'ね': "ne", 'の': "no",
	'は': "ha", 'ひ': "hi", 'ふ': "fu", 'へ': "he", 'ほ': "ho",
	'ま': "ma", 'み': "mi", 'む': "mu", 'め': "me", 'も': "mo",
	'や': "ya", 'ゆ': "yu", 'よ': "yo",
	'ら': "ra", 'り': "ri", 'る': "ru", 'れ': "re", 'ろ': "ro",
	'わ': "wa", 'ゐ': "i", 'ゑ': "e", 'を': "o", 'ん': "n",
	'が': "ga", 'ぎ': "gi", 'ぐ': "gu", 'げ': "ge", 'ご': "go",
	'ざ': "za", 'じ': "ji", 'ず': "zu", 'ぜ': "ze", 'ぞ': "zo",
	'だ': "da", 'ぢ': "ji", 'づ': "zu", 'で': "de", 'ど': "do",
	'ば': "ba", 'び': "bi", 'ぶ': "bu", 'べ': "be", 'ぼ': "bo",
	'ぱ': "pa", 'ぴ': "pi", 'ぷ': "pu", 'ぺ': "pe", 'ぽ': "po",
	'ゔ': "vu",
	'ぁ': "a", 'ぃ': "i", 'ぅ': "u", 'ぇ': "e", 'ぉ': "o",
	'ゃ': "ya", 'ゅ': "yu", 'ょ': "yo", 'ゎ': "wa",
}

// smallY holds the vowel of each small ya, yu and yo.
var smallY = map[rune]byte{'ゃ': 'a', 'ゅ': 'u', 'ょ': 'o'}

// smallVowel holds the vowel of each small vowel kana.
var smallVowel = map[rune]byte{'ぁ': 'a', 'ぃ': 'i', 'ぅ': 'u', 'ぇ': 'e', 'ぉ': 'o'}

// KanaToRomaji converts hiragana and katakana in s to Hepburn romaji.
// Other runes are copied unchanged.
func KanaToRomaji(s string) string {
	runes := []rune(toHiragana(s))
	var b strings.Builder
	var last byte
	geminate := false

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case 'っ':
			geminate = true
			continue
		case 'ー':
			if isVowel(last) {
				b.WriteByte(last)
			}
			continue
		}

		syl, ok := hiragana[r]
		if !ok {
			geminate = false
			b.WriteRune(r)
			last = 0
			continue
		}
		if i+1 < len(runes) {
			if combined, ok := combine(syl, runes[i+1]); ok {
				syl = combined
				i++
			}
		}
		if geminate {
			syl = double(syl)
			geminate = false
		}
		b.WriteString(syl)
		last = syl[len(syl)-1]
	}
	return b.String()
}

// combine merges syl with a following small kana into one syllable.
func combine(syl string, next rune) (string, bool) {
	if v, ok := smallY[next]; ok {
		if len(syl) < 2 || syl[len(syl)-1] != 'i' {
			return "", false
		}
		base := syl[:len(syl)-1]
		switch syl {
		case "shi", "chi", "ji":
			return base + string(v), true
		}
		return base + "y" + string(v), true
	}
	if v, ok := smallVowel[next]; ok {
		switch syl {
		case "u":
			return "w" + string(v), true
		case "a", "i", "e", "o":
			return "", false
		}
		return syl[:len(syl)-1] + string(v), true
	}
	return "", false
}

// double applies the small tsu to syl by repeating its first consonant.
func double(syl string) string {
	if strings.HasPrefix(syl, "ch") {
		return "t" + syl
	}
	if isVowel(syl[0]) || syl == "n" {
		return syl
	}
	return syl[:1] + syl
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'i', 'u', 'e', 'o':
		return true
	}
	return false
}

// toHiragana maps katakana to the corresponding hiragana. Other runes,
// including the prolonged sound mark, are unchanged.
func toHiragana(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'ァ' && r <= 'ヶ' {
			return r - 0x60
		}
		return r
	}, s)
}
