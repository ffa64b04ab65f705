package kana

// table lists every practice group in chart order: basic columns, voiced
// columns, then the yōon combinations.
var table = []Group{
	{
		Name: "vowels",
		Entries: []Entry{
			{"あ", "a", 3},
			{"い", "i", 2},
			{"う", "u", 2},
			{"え", "e", 2},
			{"お", "o", 3},
		},
	},
	{
		Name: "k-column",
		Entries: []Entry{
			{"か", "ka", 3},
			{"き", "ki", 4},
			{"く", "ku", 1},
			{"け", "ke", 3},
			{"こ", "ko", 2},
		},
	},
	{
		Name: "s-column",
		Entries: []Entry{
			{"さ", "sa", 3},
			{"し", "shi", 1},
			{"す", "su", 2},
			{"せ", "se", 3},
			{"そ", "so", 1},
		},
	},
	{
		Name: "t-column",
		Entries: []Entry{
			{"た", "ta", 4},
			{"ち", "chi", 2},
			{"つ", "tsu", 1},
			{"て", "te", 1},
			{"と", "to", 2},
		},
	},
	{
		Name: "n-column",
		Entries: []Entry{
			{"な", "na", 4},
			{"に", "ni", 3},
			{"ぬ", "nu", 2},
			{"ね", "ne", 2},
			{"の", "no", 1},
		},
	},
	{
		Name: "h-column",
		Entries: []Entry{
			{"は", "ha", 3},
			{"ひ", "hi", 1},
			{"ふ", "fu", 4},
			{"へ", "he", 1},
			{"ほ", "ho", 4},
		},
	},
	{
		Name: "m-column",
		Entries: []Entry{
			{"ま", "ma", 3},
			{"み", "mi", 2},
			{"む", "mu", 3},
			{"め", "me", 2},
			{"も", "mo", 3},
		},
	},
	{
		Name: "y-column",
		Entries: []Entry{
			{"や", "ya", 2},
			{"ゆ", "yu", 2},
			{"よ", "yo", 2},
		},
	},
	{
		Name: "r-column",
		Entries: []Entry{
			{"ら", "ra", 2},
			{"り", "ri", 2},
			{"る", "ru", 1},
			{"れ", "re", 2},
			{"ろ", "ro", 1},
		},
	},
	{
		Name: "w-column",
		Entries: []Entry{
			{"わ", "wa", 2},
			{"を", "wo", 3},
			{"ん", "n", 1},
		},
	},
	{
		Name: "g-column",
		Entries: []Entry{
			{"が", "ga", 3},
			{"ぎ", "gi", 4},
			{"ぐ", "gu", 1},
			{"げ", "ge", 3},
			{"ご", "go", 2},
		},
	},
	{
		Name: "z-column",
		Entries: []Entry{
			{"ざ", "za", 3},
			{"じ", "ji", 1},
			{"ず", "zu", 2},
			{"ぜ", "ze", 3},
			{"ぞ", "zo", 1},
		},
	},
	{
		Name: "d-column",
		Entries: []Entry{
			{"だ", "da", 4},
			{"ぢ", "ji", 2},
			{"づ", "zu", 1},
			{"で", "de", 1},
			{"ど", "do", 2},
		},
	},
	{
		Name: "b-column",
		Entries: []Entry{
			{"ば", "ba", 3},
			{"び", "bi", 1},
			{"ぶ", "bu", 4},
			{"べ", "be", 1},
			{"ぼ", "bo", 4},
		},
	},
	{
		Name: "p-column",
		Entries: []Entry{
			{"ぱ", "pa", 3},
			{"ぴ", "pi", 1},
			{"ぷ", "pu", 4},
			{"ぺ", "pe", 1},
			{"ぽ", "po", 4},
		},
	},
	{
		Name: "k-combinations",
		Entries: []Entry{
			{"きゃ", "kya", 4},
			{"きゅ", "kyu", 4},
			{"きょ", "kyo", 4},
		},
	},
	{
		Name: "s-combinations",
		Entries: []Entry{
			{"しゃ", "sha", 1},
			{"しゅ", "shu", 1},
			{"しょ", "sho", 1},
		},
	},
	{
		Name: "t-combinations",
		Entries: []Entry{
			{"ちゃ", "cha", 2},
			{"ちゅ", "chu", 2},
			{"ちょ", "cho", 2},
		},
	},
	{
		Name: "n-combinations",
		Entries: []Entry{
			{"にゃ", "nya", 3},
			{"にゅ", "nyu", 3},
			{"にょ", "nyo", 3},
		},
	},
	{
		Name: "h-combinations",
		Entries: []Entry{
			{"ひゃ", "hya", 1},
			{"ひゅ", "hyu", 1},
			{"ひょ", "hyo", 1},
		},
	},
	{
		Name: "m-combinations",
		Entries: []Entry{
			{"みゃ", "mya", 2},
			{"みゅ", "myu", 2},
			{"みょ", "myo", 2},
		},
	},
	{
		Name: "r-combinations",
		Entries: []Entry{
			{"りゃ", "rya", 2},
			{"りゅ", "ryu", 2},
			{"りょ", "ryo", 2},
		},
	},
	{
		Name: "g-combinations",
		Entries: []Entry{
			{"ぎゃ", "gya", 4},
			{"ぎゅ", "gyu", 4},
			{"ぎょ", "gyo", 4},
		},
	},
	{
		Name: "z-combinations",
		Entries: []Entry{
			{"じゃ", "ja", 1},
			{"じゅ", "ju", 1},
			{"じょ", "jo", 1},
		},
	},
	{
		Name: "b-combinations",
		Entries: []Entry{
			{"びゃ", "bya", 1},
			{"びゅ", "byu", 1},
			{"びょ", "byo", 1},
		},
	},
	{
		Name: "p-combinations",
		Entries: []Entry{
			{"ぴゃ", "pya", 1},
			{"ぴゅ", "pyu", 1},
			{"ぴょ", "pyo", 1},
		},
	},
}
