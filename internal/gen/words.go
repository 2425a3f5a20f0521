package gen

// Short, meaningful adjectives used by the adjective_noun style.
var adjectives = []string{
	"cool", "epic", "zen", "max", "neo", "arc", "vex", "lux", "nex",
	"ace", "pro", "top", "big", "new", "old", "red", "blue", "dark", "lite",
	"fast", "slow", "high", "low", "hot", "ice", "fire", "wind", "star", "moon",
	"sun", "sky", "sea", "land", "rock", "tree", "bird", "fish", "wolf", "lion",
	"bear", "eagle", "hawk", "fox", "cat", "dog", "bee", "ant", "fly", "bug",
}

// Short, meaningful nouns. Order matters: the word_mash style draws from
// the two disjoint partitions nouns[:20] and nouns[20:40].
var nouns = []string{
	"dev", "pro", "ace", "max", "neo", "arc", "vex", "lux", "nex", "zen",
	"code", "hack", "tech", "data", "byte", "bit", "web", "app", "game", "art",
	"music", "photo", "video", "blog", "site", "page", "link", "file", "text", "word",
	"name", "user", "team", "crew", "band", "club", "zone", "base", "home", "work",
	"play", "fun", "joy", "win", "goal", "dream", "hope", "love", "life", "time",
	"space", "world", "earth", "city", "town", "road", "path", "way", "door", "key",
	"book", "line", "point", "spot", "mark", "sign", "flag", "star", "moon",
}

// Very short words used by the minimal style.
var shortWords = []string{
	"dev", "pro", "ace", "max", "neo", "zen", "arc", "nex", "vex", "lux",
	"code", "hack", "tech", "web", "app", "art", "fun", "joy", "win", "top",
}

// leetSubs maps letters to their digit look-alikes for the leetspeak style.
var leetSubs = map[rune]rune{
	'o': '0',
	'i': '1',
	'l': '1',
	'e': '3',
	'a': '4',
	's': '5',
	't': '7',
	'b': '8',
	'g': '9',
}

var digits = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"}

// separators join word pairs; the empty string means plain concatenation.
var separators = []string{"", "_", "-"}

const (
	vowels     = "aeiou"
	consonants = "bcdfghjklmnpqrstvwxyz"
)
