package registry

import "sync"

// Default returns the embedded registry snapshot. It covers the
// languages, scripts and regions most applications encounter, the full
// grandfathered tag list, and the UN M49 containment spine, so the
// package works without shipping the IANA files. Applications that
// need the complete registry should build one with ReadSubtagRegistry
// and ReadM49 instead.
var Default = sync.OnceValue(func() *Registry {
	b := NewBuilder()
	addDefaultLanguages(b)
	addDefaultExtlangs(b)
	addDefaultScripts(b)
	addDefaultRegions(b)
	addDefaultVariants(b)
	addDefaultTags(b)
	b.AddAffinity(AffinityGroup{
		Name:      "arabic",
		Preferred: "EG",
		Regions:   []string{"EG", "SA", "AE", "MA", "DZ", "TN", "IQ", "JO", "KW", "LB", "LY", "OM", "QA", "SY", "YE", "BH"},
	})
	return b.MustBuild()
})

func addDefaultLanguages(b *Builder) {
	for _, l := range []Language{
		{Subtag: "und", Descriptions: []string{"Undetermined"}},
		{Subtag: "mul", Descriptions: []string{"Multiple languages"}},
		{Subtag: "mis", Descriptions: []string{"Uncoded languages"}},
		{Subtag: "zxx", Descriptions: []string{"No linguistic content"}},

		{Subtag: "af", Descriptions: []string{"Afrikaans"}, SuppressScript: "Latn", DefaultRegion: "ZA"},
		{Subtag: "am", Descriptions: []string{"Amharic"}, SuppressScript: "Ethi"},
		{Subtag: "ar", Descriptions: []string{"Arabic"}, SuppressScript: "Arab", Affinity: "arabic"},
		{Subtag: "az", Descriptions: []string{"Azerbaijani"}},
		{Subtag: "be", Descriptions: []string{"Belarusian"}, SuppressScript: "Cyrl", DefaultRegion: "BY"},
		{Subtag: "bg", Descriptions: []string{"Bulgarian"}, SuppressScript: "Cyrl", DefaultRegion: "BG"},
		{Subtag: "bn", Descriptions: []string{"Bengali", "Bangla"}, SuppressScript: "Beng"},
		{Subtag: "ca", Descriptions: []string{"Catalan", "Valencian"}, SuppressScript: "Latn", DefaultRegion: "ES"},
		{Subtag: "cs", Descriptions: []string{"Czech"}, SuppressScript: "Latn", DefaultRegion: "CZ"},
		{Subtag: "da", Descriptions: []string{"Danish"}, SuppressScript: "Latn", DefaultRegion: "DK"},
		{Subtag: "de", Descriptions: []string{"German"}, SuppressScript: "Latn", DefaultRegion: "DE"},
		{Subtag: "el", Descriptions: []string{"Modern Greek (1453-)"}, SuppressScript: "Grek", DefaultRegion: "GR"},
		{Subtag: "en", Descriptions: []string{"English"}, SuppressScript: "Latn", DefaultRegion: "US"},
		{Subtag: "es", Descriptions: []string{"Spanish", "Castilian"}, SuppressScript: "Latn", DefaultRegion: "ES"},
		{Subtag: "et", Descriptions: []string{"Estonian"}, SuppressScript: "Latn"},
		{Subtag: "fa", Descriptions: []string{"Persian"}, SuppressScript: "Arab", DefaultRegion: "IR"},
		{Subtag: "fi", Descriptions: []string{"Finnish"}, SuppressScript: "Latn", DefaultRegion: "FI"},
		{Subtag: "fil", Descriptions: []string{"Filipino", "Pilipino"}, SuppressScript: "Latn", DefaultRegion: "PH"},
		{Subtag: "fr", Descriptions: []string{"French"}, SuppressScript: "Latn", DefaultRegion: "FR"},
		{Subtag: "he", Descriptions: []string{"Hebrew"}, SuppressScript: "Hebr", DefaultRegion: "IL"},
		{Subtag: "hi", Descriptions: []string{"Hindi"}, SuppressScript: "Deva", DefaultRegion: "IN"},
		{Subtag: "hr", Descriptions: []string{"Croatian"}, SuppressScript: "Latn", DefaultRegion: "HR"},
		{Subtag: "hu", Descriptions: []string{"Hungarian"}, SuppressScript: "Latn", DefaultRegion: "HU"},
		{Subtag: "hy", Descriptions: []string{"Armenian"}, SuppressScript: "Armn"},
		{Subtag: "id", Descriptions: []string{"Indonesian"}, SuppressScript: "Latn", DefaultRegion: "ID"},
		{Subtag: "is", Descriptions: []string{"Icelandic"}, SuppressScript: "Latn", DefaultRegion: "IS"},
		{Subtag: "it", Descriptions: []string{"Italian"}, SuppressScript: "Latn", DefaultRegion: "IT"},
		{Subtag: "ja", Descriptions: []string{"Japanese"}, SuppressScript: "Jpan", DefaultRegion: "JP"},
		{Subtag: "jbo", Descriptions: []string{"Lojban"}, SuppressScript: "Latn"},
		{Subtag: "ka", Descriptions: []string{"Georgian"}, SuppressScript: "Geor"},
		{Subtag: "kk", Descriptions: []string{"Kazakh"}, SuppressScript: "Cyrl", DefaultRegion: "KZ"},
		{Subtag: "ko", Descriptions: []string{"Korean"}, SuppressScript: "Kore", DefaultRegion: "KR"},
		{Subtag: "lb", Descriptions: []string{"Luxembourgish", "Letzeburgesch"}, SuppressScript: "Latn"},
		{Subtag: "lt", Descriptions: []string{"Lithuanian"}, SuppressScript: "Latn", DefaultRegion: "LT"},
		{Subtag: "lv", Descriptions: []string{"Latvian"}, SuppressScript: "Latn", DefaultRegion: "LV"},
		{Subtag: "mk", Descriptions: []string{"Macedonian"}, SuppressScript: "Cyrl", DefaultRegion: "MK"},
		{Subtag: "ms", Descriptions: []string{"Malay (macrolanguage)"}, SuppressScript: "Latn", DefaultRegion: "MY"},
		{Subtag: "nb", Descriptions: []string{"Norwegian Bokmål"}, Macrolanguage: "no", SuppressScript: "Latn", DefaultRegion: "NO"},
		{Subtag: "nl", Descriptions: []string{"Dutch", "Flemish"}, SuppressScript: "Latn", DefaultRegion: "NL"},
		{Subtag: "nn", Descriptions: []string{"Norwegian Nynorsk"}, Macrolanguage: "no", SuppressScript: "Latn", DefaultRegion: "NO"},
		{Subtag: "no", Descriptions: []string{"Norwegian"}, SuppressScript: "Latn", DefaultRegion: "NO"},
		{Subtag: "nv", Descriptions: []string{"Navajo", "Navaho"}},
		{Subtag: "pl", Descriptions: []string{"Polish"}, SuppressScript: "Latn", DefaultRegion: "PL"},
		{Subtag: "pt", Descriptions: []string{"Portuguese"}, SuppressScript: "Latn", DefaultRegion: "PT"},
		{Subtag: "ro", Descriptions: []string{"Romanian", "Moldavian", "Moldovan"}, SuppressScript: "Latn", DefaultRegion: "RO"},
		{Subtag: "ru", Descriptions: []string{"Russian"}, SuppressScript: "Cyrl", DefaultRegion: "RU"},
		{Subtag: "sk", Descriptions: []string{"Slovak"}, SuppressScript: "Latn", DefaultRegion: "SK"},
		{Subtag: "sl", Descriptions: []string{"Slovenian"}, SuppressScript: "Latn", DefaultRegion: "SI"},
		{Subtag: "sq", Descriptions: []string{"Albanian"}, SuppressScript: "Latn", DefaultRegion: "AL"},
		{Subtag: "sr", Descriptions: []string{"Serbian"}, DefaultRegion: "RS"},
		{Subtag: "sv", Descriptions: []string{"Swedish"}, SuppressScript: "Latn", DefaultRegion: "SE"},
		{Subtag: "sw", Descriptions: []string{"Swahili (macrolanguage)"}, SuppressScript: "Latn"},
		{Subtag: "th", Descriptions: []string{"Thai"}, SuppressScript: "Thai", DefaultRegion: "TH"},
		{Subtag: "tlh", Descriptions: []string{"Klingon", "tlhIngan Hol"}},
		{Subtag: "tr", Descriptions: []string{"Turkish"}, SuppressScript: "Latn", DefaultRegion: "TR"},
		{Subtag: "uk", Descriptions: []string{"Ukrainian"}, SuppressScript: "Cyrl", DefaultRegion: "UA"},
		{Subtag: "ur", Descriptions: []string{"Urdu"}, SuppressScript: "Arab", DefaultRegion: "PK"},
		{Subtag: "uz", Descriptions: []string{"Uzbek"}, DefaultRegion: "UZ"},
		{Subtag: "vi", Descriptions: []string{"Vietnamese"}, SuppressScript: "Latn", DefaultRegion: "VN"},
		{Subtag: "yi", Descriptions: []string{"Yiddish"}, SuppressScript: "Hebr"},
		{Subtag: "zh", Descriptions: []string{"Chinese"}, DefaultRegion: "CN"},
		{Subtag: "zu", Descriptions: []string{"Zulu"}, SuppressScript: "Latn", DefaultRegion: "ZA"},

		// Dominant members of the Chinese and sign-language
		// macrolanguages, mostly targets of preferred-value mappings.
		{Subtag: "cmn", Descriptions: []string{"Mandarin Chinese"}, Macrolanguage: "zh"},
		{Subtag: "gan", Descriptions: []string{"Gan Chinese"}, Macrolanguage: "zh"},
		{Subtag: "hak", Descriptions: []string{"Hakka Chinese"}, Macrolanguage: "zh"},
		{Subtag: "hsn", Descriptions: []string{"Xiang Chinese"}, Macrolanguage: "zh"},
		{Subtag: "nan", Descriptions: []string{"Min Nan Chinese"}, Macrolanguage: "zh"},
		{Subtag: "wuu", Descriptions: []string{"Wu Chinese"}, Macrolanguage: "zh"},
		{Subtag: "yue", Descriptions: []string{"Yue Chinese", "Cantonese"}, Macrolanguage: "zh"},
		{Subtag: "gsw", Descriptions: []string{"Swiss German", "Alemannic"}, SuppressScript: "Latn"},
		{Subtag: "sgn", Descriptions: []string{"Sign languages"}},
		{Subtag: "ase", Descriptions: []string{"American Sign Language"}, Macrolanguage: "sgn"},
		{Subtag: "sfb", Descriptions: []string{"Langue des signes de Belgique Francophone"}, Macrolanguage: "sgn"},
		{Subtag: "sgg", Descriptions: []string{"Swiss-German Sign Language"}, Macrolanguage: "sgn"},
		{Subtag: "vgt", Descriptions: []string{"Vlaamse Gebarentaal", "Flemish Sign Language"}, Macrolanguage: "sgn"},

		// Targets of grandfathered preferred-value mappings.
		{Subtag: "ami", Descriptions: []string{"Amis"}},
		{Subtag: "bnn", Descriptions: []string{"Bunun"}},
		{Subtag: "pwn", Descriptions: []string{"Paiwan"}},
		{Subtag: "tao", Descriptions: []string{"Yami"}},
		{Subtag: "tay", Descriptions: []string{"Atayal"}},
		{Subtag: "tsu", Descriptions: []string{"Tsou"}},

		// Deprecated codes and their replacements.
		{Subtag: "iw", Descriptions: []string{"Hebrew"}, Deprecated: true, Preferred: "he"},
		{Subtag: "in", Descriptions: []string{"Indonesian"}, Deprecated: true, Preferred: "id"},
		{Subtag: "ji", Descriptions: []string{"Yiddish"}, Deprecated: true, Preferred: "yi"},
		{Subtag: "mo", Descriptions: []string{"Moldavian", "Moldovan"}, Deprecated: true, Preferred: "ro"},
		{Subtag: "tl", Descriptions: []string{"Tagalog"}, SuppressScript: "Latn"},
	} {
		b.AddLanguage(l)
	}
	// Private use range reserved by ISO 639.
	for _, s := range mustExpand("qaa", "qtz") {
		b.AddLanguage(Language{Subtag: s, Descriptions: []string{"Private use"}, PrivateUse: true})
	}
}

func addDefaultExtlangs(b *Builder) {
	for _, e := range []Language{
		{Subtag: "cmn", Descriptions: []string{"Mandarin Chinese"}, Macrolanguage: "zh", Preferred: "cmn", Prefixes: []string{"zh"}},
		{Subtag: "gan", Descriptions: []string{"Gan Chinese"}, Macrolanguage: "zh", Preferred: "gan", Prefixes: []string{"zh"}},
		{Subtag: "hak", Descriptions: []string{"Hakka Chinese"}, Macrolanguage: "zh", Preferred: "hak", Prefixes: []string{"zh"}},
		{Subtag: "hsn", Descriptions: []string{"Xiang Chinese"}, Macrolanguage: "zh", Preferred: "hsn", Prefixes: []string{"zh"}},
		{Subtag: "nan", Descriptions: []string{"Min Nan Chinese"}, Macrolanguage: "zh", Preferred: "nan", Prefixes: []string{"zh"}},
		{Subtag: "wuu", Descriptions: []string{"Wu Chinese"}, Macrolanguage: "zh", Preferred: "wuu", Prefixes: []string{"zh"}},
		{Subtag: "yue", Descriptions: []string{"Yue Chinese", "Cantonese"}, Macrolanguage: "zh", Preferred: "yue", Prefixes: []string{"zh"}},
		{Subtag: "ase", Descriptions: []string{"American Sign Language"}, Macrolanguage: "sgn", Preferred: "ase", Prefixes: []string{"sgn"}},
		{Subtag: "sfb", Descriptions: []string{"Langue des signes de Belgique Francophone"}, Macrolanguage: "sgn", Preferred: "sfb", Prefixes: []string{"sgn"}},
		{Subtag: "vgt", Descriptions: []string{"Vlaamse Gebarentaal"}, Macrolanguage: "sgn", Preferred: "vgt", Prefixes: []string{"sgn"}},
	} {
		b.AddExtlang(e)
	}
}

func addDefaultScripts(b *Builder) {
	for _, s := range []Script{
		{Subtag: "Arab", Descriptions: []string{"Arabic"}},
		{Subtag: "Armn", Descriptions: []string{"Armenian"}},
		{Subtag: "Beng", Descriptions: []string{"Bengali", "Bangla"}},
		{Subtag: "Brai", Descriptions: []string{"Braille"}},
		{Subtag: "Cyrl", Descriptions: []string{"Cyrillic"}},
		{Subtag: "Deva", Descriptions: []string{"Devanagari", "Nagari"}},
		{Subtag: "Ethi", Descriptions: []string{"Ethiopic", "Geʻez"}},
		{Subtag: "Geor", Descriptions: []string{"Georgian"}},
		{Subtag: "Grek", Descriptions: []string{"Greek"}},
		{Subtag: "Hani", Descriptions: []string{"Han", "Hanzi", "Kanji", "Hanja"}},
		{Subtag: "Hans", Descriptions: []string{"Han (Simplified variant)"}},
		{Subtag: "Hant", Descriptions: []string{"Han (Traditional variant)"}},
		{Subtag: "Hebr", Descriptions: []string{"Hebrew"}},
		{Subtag: "Jpan", Descriptions: []string{"Japanese"}},
		{Subtag: "Kore", Descriptions: []string{"Korean"}},
		{Subtag: "Latn", Descriptions: []string{"Latin"}},
		{Subtag: "Thai", Descriptions: []string{"Thai"}},
		{Subtag: "Zinh", Descriptions: []string{"Code for inherited script"}},
		{Subtag: "Zsym", Descriptions: []string{"Symbols"}},
		{Subtag: "Zxxx", Descriptions: []string{"Code for unwritten documents"}},
		{Subtag: "Zyyy", Descriptions: []string{"Code for undetermined script"}},
		{Subtag: "Zzzz", Descriptions: []string{"Code for uncoded script"}},
		{Subtag: "Qaai", Descriptions: []string{"Inherited"}, Deprecated: true, Preferred: "Zinh"},
	} {
		b.AddScript(s)
	}
	for _, s := range mustExpand("qaaa", "qabx") {
		b.AddScript(Script{Subtag: titlecase(s), Descriptions: []string{"Private use"}, PrivateUse: true})
	}
}

func addDefaultRegions(b *Builder) {
	// The UN M49 spine: world > continental regions > sub-regions.
	for _, r := range []Region{
		{Subtag: "001", Descriptions: []string{"World"}, Macro: true},
		{Subtag: "002", Descriptions: []string{"Africa"}, M49Parent: "001", Macro: true},
		{Subtag: "011", Descriptions: []string{"Western Africa"}, M49Parent: "002", Macro: true},
		{Subtag: "014", Descriptions: []string{"Eastern Africa"}, M49Parent: "002", Macro: true},
		{Subtag: "015", Descriptions: []string{"Northern Africa"}, M49Parent: "002", Macro: true},
		{Subtag: "018", Descriptions: []string{"Southern Africa"}, M49Parent: "002", Macro: true},
		{Subtag: "019", Descriptions: []string{"Americas"}, M49Parent: "001", Macro: true},
		{Subtag: "021", Descriptions: []string{"Northern America"}, M49Parent: "019", Macro: true},
		{Subtag: "419", Descriptions: []string{"Latin America and the Caribbean"}, M49Parent: "019", Macro: true},
		{Subtag: "005", Descriptions: []string{"South America"}, M49Parent: "419", Macro: true},
		{Subtag: "013", Descriptions: []string{"Central America"}, M49Parent: "419", Macro: true},
		{Subtag: "029", Descriptions: []string{"Caribbean"}, M49Parent: "419", Macro: true},
		{Subtag: "142", Descriptions: []string{"Asia"}, M49Parent: "001", Macro: true},
		{Subtag: "030", Descriptions: []string{"Eastern Asia"}, M49Parent: "142", Macro: true},
		{Subtag: "034", Descriptions: []string{"Southern Asia"}, M49Parent: "142", Macro: true},
		{Subtag: "035", Descriptions: []string{"South-eastern Asia"}, M49Parent: "142", Macro: true},
		{Subtag: "143", Descriptions: []string{"Central Asia"}, M49Parent: "142", Macro: true},
		{Subtag: "145", Descriptions: []string{"Western Asia"}, M49Parent: "142", Macro: true},
		{Subtag: "150", Descriptions: []string{"Europe"}, M49Parent: "001", Macro: true},
		{Subtag: "039", Descriptions: []string{"Southern Europe"}, M49Parent: "150", Macro: true},
		{Subtag: "151", Descriptions: []string{"Eastern Europe"}, M49Parent: "150", Macro: true},
		{Subtag: "154", Descriptions: []string{"Northern Europe"}, M49Parent: "150", Macro: true},
		{Subtag: "155", Descriptions: []string{"Western Europe"}, M49Parent: "150", Macro: true},
		{Subtag: "009", Descriptions: []string{"Oceania"}, M49Parent: "001", Macro: true},
		{Subtag: "053", Descriptions: []string{"Australia and New Zealand"}, M49Parent: "009", Macro: true},
	} {
		b.AddRegion(r)
	}
	countries := []struct{ code, parent, name string }{
		{"AE", "145", "United Arab Emirates"}, {"AL", "039", "Albania"},
		{"AR", "005", "Argentina"}, {"AT", "155", "Austria"},
		{"AU", "053", "Australia"}, {"BD", "034", "Bangladesh"},
		{"BE", "155", "Belgium"}, {"BG", "151", "Bulgaria"},
		{"BH", "145", "Bahrain"}, {"BO", "005", "Bolivia (Plurinational State of)"},
		{"BR", "005", "Brazil"}, {"BY", "151", "Belarus"},
		{"CA", "021", "Canada"}, {"CH", "155", "Switzerland"},
		{"CL", "005", "Chile"}, {"CN", "030", "China"},
		{"CO", "005", "Colombia"}, {"CR", "013", "Costa Rica"},
		{"CU", "029", "Cuba"}, {"CZ", "151", "Czechia"},
		{"DK", "154", "Denmark"}, {"DO", "029", "Dominican Republic"},
		{"DZ", "015", "Algeria"}, {"EC", "005", "Ecuador"},
		{"EG", "015", "Egypt"}, {"ES", "039", "Spain"},
		{"FI", "154", "Finland"}, {"FR", "155", "France"},
		{"GB", "154", "United Kingdom"}, {"GR", "039", "Greece"},
		{"GT", "013", "Guatemala"}, {"HK", "030", "China, Hong Kong Special Administrative Region"},
		{"HR", "039", "Croatia"}, {"HU", "151", "Hungary"},
		{"ID", "035", "Indonesia"}, {"IE", "154", "Ireland"},
		{"IL", "145", "Israel"}, {"IN", "034", "India"},
		{"IQ", "145", "Iraq"}, {"IR", "034", "Iran (Islamic Republic of)"},
		{"IS", "154", "Iceland"}, {"IT", "039", "Italy"},
		{"JO", "145", "Jordan"}, {"JP", "030", "Japan"},
		{"KE", "014", "Kenya"}, {"KR", "030", "Republic of Korea"},
		{"KW", "145", "Kuwait"}, {"KZ", "143", "Kazakhstan"},
		{"LB", "145", "Lebanon"}, {"LT", "154", "Lithuania"},
		{"LV", "154", "Latvia"}, {"LY", "015", "Libya"},
		{"MA", "015", "Morocco"}, {"MK", "039", "North Macedonia"},
		{"MM", "035", "Myanmar"}, {"MO", "030", "China, Macao Special Administrative Region"},
		{"MX", "013", "Mexico"}, {"MY", "035", "Malaysia"},
		{"NG", "011", "Nigeria"}, {"NL", "155", "Netherlands"},
		{"NO", "154", "Norway"}, {"NZ", "053", "New Zealand"},
		{"OM", "145", "Oman"}, {"PA", "013", "Panama"},
		{"PE", "005", "Peru"}, {"PH", "035", "Philippines"},
		{"PK", "034", "Pakistan"}, {"PL", "151", "Poland"},
		{"PR", "029", "Puerto Rico"}, {"PT", "039", "Portugal"},
		{"PY", "005", "Paraguay"}, {"QA", "145", "Qatar"},
		{"RO", "151", "Romania"}, {"RS", "039", "Serbia"},
		{"RU", "151", "Russian Federation"}, {"SA", "145", "Saudi Arabia"},
		{"SE", "154", "Sweden"}, {"SG", "035", "Singapore"},
		{"SI", "039", "Slovenia"}, {"SK", "151", "Slovakia"},
		{"SY", "145", "Syrian Arab Republic"}, {"TH", "035", "Thailand"},
		{"TL", "035", "Timor-Leste"}, {"TN", "015", "Tunisia"},
		{"TR", "145", "Türkiye"}, {"TW", "030", "Taiwan, Province of China"},
		{"UA", "151", "Ukraine"}, {"US", "021", "United States of America"},
		{"UY", "005", "Uruguay"}, {"UZ", "143", "Uzbekistan"},
		{"VE", "005", "Venezuela (Bolivarian Republic of)"}, {"VN", "035", "Viet Nam"},
		{"YE", "145", "Yemen"}, {"ZA", "018", "South Africa"},
	}
	for _, c := range countries {
		b.AddRegion(Region{Subtag: c.code, Descriptions: []string{c.name}, M49Parent: c.parent})
	}
	for _, r := range []Region{
		{Subtag: "BU", Descriptions: []string{"Burma"}, Deprecated: true, Preferred: "MM"},
		{Subtag: "DD", Descriptions: []string{"German Democratic Republic"}, Deprecated: true, Preferred: "DE"},
		{Subtag: "TP", Descriptions: []string{"East Timor"}, Deprecated: true, Preferred: "TL"},
		{Subtag: "YU", Descriptions: []string{"Yugoslavia"}, Deprecated: true, Preferred: "RS"},
		{Subtag: "ZR", Descriptions: []string{"Zaire"}, Deprecated: true, Preferred: "CD"},
		{Subtag: "CD", Descriptions: []string{"Democratic Republic of the Congo"}, M49Parent: "002"},
		{Subtag: "DE", Descriptions: []string{"Germany"}, M49Parent: "155"},
	} {
		b.AddRegion(r)
	}
	// Private use ranges reserved by ISO 3166.
	b.AddRegion(Region{Subtag: "AA", Descriptions: []string{"Private use"}, PrivateUse: true})
	b.AddRegion(Region{Subtag: "ZZ", Descriptions: []string{"Private use"}, PrivateUse: true})
	for _, s := range mustExpand("qm", "qz") {
		b.AddRegion(Region{Subtag: s, Descriptions: []string{"Private use"}, PrivateUse: true})
	}
	for _, s := range mustExpand("xa", "xz") {
		b.AddRegion(Region{Subtag: s, Descriptions: []string{"Private use"}, PrivateUse: true})
	}
}

func addDefaultVariants(b *Builder) {
	for _, v := range []Variant{
		{Subtag: "1901", Descriptions: []string{"Traditional German orthography"}, Prefixes: []string{"de"}},
		{Subtag: "1994", Descriptions: []string{"Standardized Resian orthography"}, Prefixes: []string{"sl-rozaj", "sl-rozaj-biske", "sl-rozaj-njiva", "sl-rozaj-osojs", "sl-rozaj-solba"}},
		{Subtag: "1996", Descriptions: []string{"German orthography of 1996"}, Prefixes: []string{"de"}},
		{Subtag: "alalc97", Descriptions: []string{"ALA-LC Romanization, 1997 edition"}},
		{Subtag: "biske", Descriptions: []string{"The San Giorgio dialect of Resian", "The Bila dialect of Resian"}, Prefixes: []string{"sl-rozaj"}},
		{Subtag: "fonipa", Descriptions: []string{"International Phonetic Alphabet"}},
		{Subtag: "fonupa", Descriptions: []string{"Uralic Phonetic Alphabet"}},
		{Subtag: "fonxsamp", Descriptions: []string{"Transcribed in X-SAMPA"}},
		{Subtag: "hepburn", Descriptions: []string{"Hepburn romanization"}, Prefixes: []string{"ja-Latn"}},
		{Subtag: "heploc", Descriptions: []string{"Hepburn romanization, Library of Congress method"}, Deprecated: true, Preferred: "alalc97", Prefixes: []string{"ja-Latn-hepburn"}},
		{Subtag: "lipaw", Descriptions: []string{"The Lipovaz dialect of Resian"}, Prefixes: []string{"sl-rozaj"}},
		{Subtag: "luna1918", Descriptions: []string{"Post-1917 Russian orthography"}, Prefixes: []string{"ru"}},
		{Subtag: "nedis", Descriptions: []string{"Natisone dialect", "Nadiza dialect"}, Prefixes: []string{"sl"}},
		{Subtag: "njiva", Descriptions: []string{"The Gniva dialect of Resian", "The Njiva dialect of Resian"}, Prefixes: []string{"sl-rozaj"}},
		{Subtag: "osojs", Descriptions: []string{"The Oseacco dialect of Resian", "The Osojane dialect of Resian"}, Prefixes: []string{"sl-rozaj"}},
		{Subtag: "oxendict", Descriptions: []string{"Oxford English Dictionary spelling"}, Prefixes: []string{"en"}},
		{Subtag: "petr1708", Descriptions: []string{"Petrine orthography"}, Prefixes: []string{"ru"}},
		{Subtag: "pinyin", Descriptions: []string{"Pinyin romanization"}, Prefixes: []string{"zh-Latn", "bo-Latn"}},
		{Subtag: "rozaj", Descriptions: []string{"Resian", "Resianic", "Rezijan"}, Prefixes: []string{"sl"}},
		{Subtag: "scotland", Descriptions: []string{"Scottish Standard English"}, Prefixes: []string{"en"}},
		{Subtag: "scouse", Descriptions: []string{"Scouse"}, Prefixes: []string{"en"}},
		{Subtag: "solba", Descriptions: []string{"The Stolvizza dialect of Resian", "The Solbica dialect of Resian"}, Prefixes: []string{"sl-rozaj"}},
		{Subtag: "tarask", Descriptions: []string{"Belarusian in Taraskievica orthography"}, Prefixes: []string{"be"}},
		{Subtag: "valencia", Descriptions: []string{"Valencian"}, Prefixes: []string{"ca"}},
		{Subtag: "wadegile", Descriptions: []string{"Wade-Giles romanization"}, Prefixes: []string{"zh-Latn"}},
	} {
		b.AddVariant(v)
	}
}

func addDefaultTags(b *Builder) {
	for _, t := range []Tag{
		{Tag: "art-lojban", Descriptions: []string{"Lojban"}, Deprecated: true, Preferred: "jbo"},
		{Tag: "cel-gaulish", Descriptions: []string{"Gaulish"}, Deprecated: true},
		{Tag: "en-GB-oed", Descriptions: []string{"English, Oxford English Dictionary spelling"}, Deprecated: true, Preferred: "en-GB-oxendict"},
		{Tag: "i-ami", Descriptions: []string{"Amis"}, Deprecated: true, Preferred: "ami"},
		{Tag: "i-bnn", Descriptions: []string{"Bunun"}, Deprecated: true, Preferred: "bnn"},
		{Tag: "i-default", Descriptions: []string{"Default Language"}},
		{Tag: "i-enochian", Descriptions: []string{"Enochian"}, Deprecated: true},
		{Tag: "i-hak", Descriptions: []string{"Hakka"}, Deprecated: true, Preferred: "hak"},
		{Tag: "i-klingon", Descriptions: []string{"Klingon"}, Deprecated: true, Preferred: "tlh"},
		{Tag: "i-lux", Descriptions: []string{"Luxembourgish"}, Deprecated: true, Preferred: "lb"},
		{Tag: "i-mingo", Descriptions: []string{"Mingo"}},
		{Tag: "i-navajo", Descriptions: []string{"Navajo"}, Deprecated: true, Preferred: "nv"},
		{Tag: "i-pwn", Descriptions: []string{"Paiwan"}, Deprecated: true, Preferred: "pwn"},
		{Tag: "i-tao", Descriptions: []string{"Tao"}, Deprecated: true, Preferred: "tao"},
		{Tag: "i-tay", Descriptions: []string{"Tayal"}, Deprecated: true, Preferred: "tay"},
		{Tag: "i-tsu", Descriptions: []string{"Tsou"}, Deprecated: true, Preferred: "tsu"},
		{Tag: "no-bok", Descriptions: []string{"Norwegian Bokmal"}, Deprecated: true, Preferred: "nb"},
		{Tag: "no-nyn", Descriptions: []string{"Norwegian Nynorsk"}, Deprecated: true, Preferred: "nn"},
		{Tag: "sgn-BE-FR", Descriptions: []string{"Belgian-French Sign Language"}, Deprecated: true, Preferred: "sfb"},
		{Tag: "sgn-BE-NL", Descriptions: []string{"Belgian-Flemish Sign Language"}, Deprecated: true, Preferred: "vgt"},
		{Tag: "sgn-CH-DE", Descriptions: []string{"Swiss German Sign Language"}, Deprecated: true, Preferred: "sgg"},
		{Tag: "zh-guoyu", Descriptions: []string{"Mandarin or Standard Chinese"}, Deprecated: true, Preferred: "cmn"},
		{Tag: "zh-hakka", Descriptions: []string{"Hakka"}, Deprecated: true, Preferred: "hak"},
		{Tag: "zh-min", Descriptions: []string{"Min, Fuzhou, Hokkien, Amoy, or Taiwanese"}, Deprecated: true},
		{Tag: "zh-min-nan", Descriptions: []string{"Minnan, Hokkien, Amoy, Taiwanese"}, Deprecated: true, Preferred: "nan"},
		{Tag: "zh-xiang", Descriptions: []string{"Xiang or Hunanese"}, Deprecated: true, Preferred: "hsn"},
	} {
		b.AddGrandfathered(t)
	}
	for _, t := range []Tag{
		{Tag: "de-1901", Descriptions: []string{"German, traditional orthography"}},
		{Tag: "de-1996", Descriptions: []string{"German, orthography of 1996"}},
		{Tag: "zh-Hans", Descriptions: []string{"simplified Chinese"}},
		{Tag: "zh-Hant", Descriptions: []string{"traditional Chinese"}},
		{Tag: "zh-cmn", Descriptions: []string{"Mandarin Chinese"}, Deprecated: true, Preferred: "cmn"},
		{Tag: "zh-cmn-Hans", Descriptions: []string{"Mandarin Chinese (Simplified)"}, Deprecated: true, Preferred: "cmn-Hans"},
		{Tag: "zh-cmn-Hant", Descriptions: []string{"Mandarin Chinese (Traditional)"}, Deprecated: true, Preferred: "cmn-Hant"},
		{Tag: "zh-gan", Descriptions: []string{"Kan or Gan"}, Deprecated: true, Preferred: "gan"},
		{Tag: "zh-wuu", Descriptions: []string{"Shanghaiese or Wu"}, Deprecated: true, Preferred: "wuu"},
		{Tag: "zh-yue", Descriptions: []string{"Cantonese"}, Deprecated: true, Preferred: "yue"},
	} {
		b.AddRedundant(t)
	}
}

func mustExpand(start, end string) []string {
	s, err := expandRange(start, end)
	if err != nil {
		panic(err)
	}
	return s
}
