package dialect

// keihanKey addresses one cell of the 東京式→京阪式 accent correspondence
// (NHK日本語アクセント辞典 付録146p). Morae counts a lengthened one-mora
// noun (2nd glyph ー) as 1.
type keihanKey struct {
	pos    string
	morae  int
	accent string
}

var keihanTable = map[keihanKey]string{
	// 名詞
	{"名詞", 1, "0"}:          "1",
	{"名詞", 1, AccentAllLow}: "0",
	{"名詞", 2, "0"}:          AccentAllHigh,
	{"名詞", 2, "2"}:          "1",
	// 動詞
	{"動詞", 2, "0"}: AccentAllHigh,
	{"動詞", 2, "1"}: "2",
	{"動詞", 3, "0"}: AccentAllHigh,
	{"動詞", 3, "2"}: "3",
	// 形容詞
	{"形容詞", 2, "1"}: "2",
	{"形容詞", 3, "0"}: "1",
	{"形容詞", 3, "2"}: "1",
}

// ApplyKeihan remaps each token's accent code into the Keihan (京阪式)
// system. Keys not in the table pass through unchanged.
func ApplyKeihan(tokens []Token) []Token {
	for i := range tokens {
		runes := []rune(tokens[i].Kana)
		morae := len(runes)
		if tokens[i].POS == "名詞" && morae >= 2 && runes[1] == 'ー' {
			morae = 1
		}
		if next, ok := keihanTable[keihanKey{tokens[i].POS, morae, tokens[i].Accent}]; ok {
			tokens[i].Accent = next
		}
	}
	return tokens
}
