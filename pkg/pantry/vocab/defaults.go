package vocab

// DefaultAdditions is the built-in English and German vocabulary.
var DefaultAdditions = Additions{
	Sizes: []string{
		"large", "medium", "small", "extra large", "extra small",
		"big", "little", "tiny", "huge", "jumbo",
		"groß", "große", "großer", "großes", "klein", "kleine", "kleiner", "kleines",
		"mittel", "mittlere", "mittlerer", "mittleres", "riesig", "winzig",
	},
	Preparations: []string{
		// English
		"chopped", "diced", "minced", "sliced", "grated", "shredded", "crushed",
		"peeled", "seeded", "cored", "stemmed", "trimmed", "cleaned", "washed",
		"fresh", "dried", "frozen", "thawed", "cooked", "raw", "roasted", "toasted",
		"melted", "softened", "room temperature", "cold", "warm", "hot",
		"finely chopped", "roughly chopped", "thinly sliced", "thickly sliced",
		"cut into", "divided", "separated", "halved", "quartered", "beaten",

		// German
		"gehackt", "gewürfelt", "geschnitten", "gerieben", "zerkleinert", "zerdrückt",
		"geschält", "entkernt", "geputzt", "gewaschen", "gesäubert",
		"frisch", "getrocknet", "tiefgekühlt", "aufgetaut", "gekocht", "roh", "geröstet",
		"geschmolzen", "weich", "zimmertemperatur", "kalt", "heiß",
		"fein gehackt", "grob gehackt", "dünn geschnitten", "dick geschnitten",
		"in stücke", "geteilt", "halbiert", "geviertelt", "verquirlt",
	},
	Connectors:      []string{"into", "in", "to", "and", "&", "und"},
	RangeConnectors: []string{"-", "–", "—", "to", "bis"},
	Approximations:  []string{"about", "approximately", "circa", "ca.", "ca", "~", "etwa", "ungefähr"},
	Fractions: map[string]float64{
		"½": 1.0 / 2, "1/2": 1.0 / 2,
		"⅓": 1.0 / 3, "1/3": 1.0 / 3,
		"⅔": 2.0 / 3, "2/3": 2.0 / 3,
		"¼": 1.0 / 4, "1/4": 1.0 / 4,
		"¾": 3.0 / 4, "3/4": 3.0 / 4,
		"⅛": 1.0 / 8, "1/8": 1.0 / 8,
		"⅜": 3.0 / 8, "3/8": 3.0 / 8,
		"⅝": 5.0 / 8, "5/8": 5.0 / 8,
		"⅞": 7.0 / 8, "7/8": 7.0 / 8,
		"⅕": 1.0 / 5, "1/5": 1.0 / 5,
		"⅖": 2.0 / 5, "2/5": 2.0 / 5,
		"⅗": 3.0 / 5, "3/5": 3.0 / 5,
		"⅘": 4.0 / 5, "4/5": 4.0 / 5,
		"⅙": 1.0 / 6, "1/6": 1.0 / 6,
		"⅚": 5.0 / 6, "5/6": 5.0 / 6,
	},
}

var defaultVocabulary = New(DefaultAdditions)

// Default returns the process-wide built-in vocabulary.
func Default() *Vocabulary {
	return defaultVocabulary
}
