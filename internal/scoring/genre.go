package scoring

import "strings"

// genreOrder fixes tie-breaking when multiple genres score equally:
// the earlier entry wins.
var genreOrder = []string{
	"rock", "metal", "punk", "pop", "rap",
	"sertanejo", "funk", "eletronica", "indie", "k-pop",
}

var genreKeywords = map[string][]string{
	"rock": {
		"rock", "alternative", "grunge", "hard rock", "classic rock",
		"ac/dc", "foo fighters", "guns n' roses", "iron maiden",
		"pearl jam", "nirvana", "queen", "led zeppelin", "u2",
		"my chemical romance", "green day", "radiohead", "coldplay",
		"muse", "arctic monkeys", "oasis", "the killers",
	},
	"metal": {
		"metal", "heavy metal", "death metal", "thrash", "metalcore",
		"black sabbath", "metallica", "slayer", "megadeth", "pantera",
		"avenged sevenfold", "bring me the horizon", "slipknot",
		"black label society", "yngwie malmsteen",
	},
	"punk": {
		"punk", "hardcore", "pop punk", "emo",
		"ramones", "sex pistols", "the offspring", "blink",
	},
	"pop": {
		"pop", "dance pop", "synth pop",
		"taylor swift", "dua lipa", "harry styles", "sabrina carpenter",
		"chappell roan", "lorde", "addison rae", "doja cat",
		"the weeknd", "bad bunny", "lewis capaldi",
	},
	"rap": {
		"rap", "hip hop", "trap",
		"tyler", "kendrick", "drake", "kanye",
		"matuê", "wiu", "teto",
	},
	"sertanejo": {
		"sertanejo", "modão", "universitário",
		"gusttavo lima", "marília mendonça", "jorge e mateus",
		"henrique e juliano", "zé neto", "simone mendes",
		"joão gomes", "ana castela",
	},
	"funk": {
		"funk", "baile funk", "funk carioca",
		"ludmilla", "anitta funk",
	},
	"eletronica": {
		"eletronica", "techno", "house", "trance", "edm",
		"alok", "vintage culture", "skrillex", "kygo",
		"charlotte de witte", "richie hawtin",
	},
	"indie": {
		"indie", "alternativo",
		"mac demarco", "tv girl", "interpol", "turnstile",
		"the xx", "wolf alice", "lykke li", "beirut",
	},
	"k-pop": {
		"k-pop", "kpop",
		"bts", "stray kids", "enhypen", "blackpink", "katseye",
	},
}

// ClassifyGenre infers a genre from event title and artist name by
// keyword hits. The genre with the most hits wins; no hits means pop.
func ClassifyGenre(title, artistName string) string {
	text := strings.ToLower(title + " " + artistName)

	best := ""
	bestHits := 0
	for _, genre := range genreOrder {
		hits := 0
		for _, kw := range genreKeywords[genre] {
			if strings.Contains(text, kw) {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = genre, hits
		}
	}
	if best == "" {
		return "pop"
	}
	return best
}
