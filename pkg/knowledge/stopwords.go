package knowledge

// Mixed Indonesian/English stoplist used by keyword extraction and the
// density component of the confidence score.
var stopwords = map[string]struct{}{
	// Indonesian
	"yang": {}, "untuk": {}, "dengan": {}, "akan": {}, "pada": {},
	"dari": {}, "dalam": {}, "adalah": {}, "atau": {}, "dan": {},
	"ini": {}, "itu": {}, "juga": {}, "bisa": {}, "dapat": {},
	"harus": {}, "sudah": {}, "belum": {}, "tidak": {}, "oleh": {},
	"kepada": {}, "sebagai": {}, "secara": {}, "telah": {}, "karena": {},
	"setiap": {}, "tersebut": {}, "serta": {}, "agar": {}, "maka": {},
	// English
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {},
	"not": {}, "you": {}, "all": {}, "can": {}, "will": {},
	"with": {}, "this": {}, "that": {}, "from": {}, "they": {},
	"have": {}, "been": {}, "were": {}, "their": {}, "would": {},
	"there": {}, "which": {}, "when": {}, "what": {}, "your": {},
	"should": {}, "must": {}, "each": {}, "other": {}, "than": {},
	"then": {}, "them": {}, "these": {}, "those": {}, "such": {},
	"into": {}, "also": {}, "may": {}, "any": {}, "more": {},
}

func isStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}
