package engine

// englishWords is a small table of common English words and
// programming terms, used as one signal in the language decider (spec
// §4.6). It is not exhaustive; the phonotactic scorer carries most of the
// weight for words not in this table.
var englishWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "her": true,
	"was": true, "one": true, "our": true, "out": true, "day": true,
	"get": true, "has": true, "him": true, "his": true, "how": true,
	"man": true, "new": true, "now": true, "old": true, "see": true,
	"two": true, "way": true, "who": true, "boy": true, "did": true,
	"its": true, "let": true, "put": true, "say": true, "she": true,
	"too": true, "use": true,
	"this": true, "that": true, "with": true, "have": true, "from": true,
	"they": true, "will": true, "would": true, "there": true, "their": true,
	"what": true, "about": true, "which": true, "when": true, "make": true,
	"like": true, "time": true, "just": true, "know": true, "take": true,
	"people": true, "into": true, "year": true, "your": true, "good": true,
	"some": true, "could": true, "them": true, "than": true, "then": true,
	"look": true, "only": true, "come": true, "over": true, "think": true,
	"also": true, "back": true, "after": true, "work": true, "first": true,
	"well": true, "even": true, "want": true, "because": true, "these": true,
	"give": true, "most": true,
	"function": true, "struct": true, "import": true, "package": true,
	"return": true, "interface": true, "channel": true, "goroutine": true,
	"error": true, "nil": true, "string": true, "int": true, "bool": true,
	"slice": true, "map": true, "const": true, "var": true, "type": true,
	"switch": true, "select": true, "defer": true,
}

// isEnglishDictionaryWord looks up a lower-cased word in the static table.
func isEnglishDictionaryWord(word string) bool {
	return englishWords[word]
}
