package recommend

// stopwords contains common English words excluded from topic and keyword
// extraction.
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "is": {}, "are": {},
	"was": {}, "were": {}, "do": {}, "does": {}, "did": {},
	"have": {}, "has": {}, "had": {}, "be": {}, "been": {},
	"being": {}, "will": {}, "would": {}, "could": {}, "should": {},
	"may": {}, "might": {}, "can": {}, "shall": {}, "not": {},
	"no": {}, "and": {}, "or": {}, "but": {}, "if": {},
	"then": {}, "than": {}, "so": {}, "as": {}, "at": {},
	"by": {}, "for": {}, "from": {}, "in": {}, "into": {},
	"of": {}, "on": {}, "to": {}, "with": {}, "about": {},
	"up": {}, "out": {}, "it": {}, "its": {}, "this": {},
	"that": {}, "these": {}, "those": {}, "what": {}, "which": {},
	"who": {}, "whom": {}, "how": {}, "when": {}, "where": {},
	"why": {}, "you": {}, "your": {}, "yours": {}, "me": {},
	"i": {}, "my": {}, "mine": {}, "we": {}, "our": {},
	"ours": {}, "they": {}, "their": {}, "theirs": {}, "he": {},
	"she": {}, "her": {}, "him": {}, "his": {}, "us": {},
	"them": {}, "there": {}, "here": {}, "all": {}, "each": {},
	"every": {}, "both": {}, "few": {}, "more": {}, "most": {},
	"other": {}, "some": {}, "such": {}, "only": {}, "own": {},
	"same": {}, "too": {}, "very": {}, "just": {}, "also": {},
	"now": {}, "get": {}, "like": {}, "one": {}, "two": {},
	"new": {}, "make": {}, "well": {}, "way": {}, "even": {},
	"because": {}, "any": {}, "over": {}, "after": {}, "before": {},
	"through": {}, "during": {}, "between": {}, "while": {}, "again": {},
}

// jargonWords are podcast-domain filler terms that appear in nearly every
// show description and carry no topical signal.
var jargonWords = map[string]struct{}{
	"podcast": {}, "podcasts": {}, "episode": {}, "episodes": {},
	"show": {}, "shows": {}, "host": {}, "hosts": {}, "hosted": {},
	"listen": {}, "listening": {}, "listeners": {}, "audio": {},
	"weekly": {}, "daily": {}, "series": {}, "interview": {},
	"interviews": {}, "conversation": {}, "conversations": {},
	"guest": {}, "guests": {}, "talk": {}, "talks": {}, "talking": {},
	"discussion": {}, "discussions": {}, "discuss": {}, "topics": {},
	"join": {}, "welcome": {}, "subscribe": {}, "tune": {},
}
