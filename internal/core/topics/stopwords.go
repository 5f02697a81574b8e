package topics

// stopWords is the fixed exclusion list applied after folding
// Common English function words plus export boilerplate that otherwise
// dominates every LinkedIn archive, and contractions with the apostrophe
// already stripped by tokenization
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		// articles, conjunctions, prepositions
		"the", "and", "for", "are", "but", "not", "you", "all", "can", "had",
		"her", "was", "one", "our", "out", "day", "get", "has", "him", "his",
		"how", "man", "new", "now", "old", "see", "two", "way", "who", "its",
		"did", "yes", "with", "have", "this", "will", "your", "from", "they",
		"know", "want", "been", "good", "much", "some", "time", "very", "when",
		"come", "here", "just", "like", "long", "make", "many", "more", "most",
		"only", "over", "such", "take", "than", "them", "well", "were", "what",
		"into", "also", "that", "then", "there", "their", "these", "those",
		"would", "could", "should", "about", "after", "before", "being",
		"because", "between", "both", "each", "other", "same", "which", "while",
		"where", "why", "does", "doing", "down", "during", "few", "further",
		"having", "off", "once", "own", "she", "too", "under", "until", "again",
		"against", "any", "above", "below", "ours", "yours", "his", "hers",
		"itself", "myself", "yourself", "himself", "herself", "themselves",
		// contractions with apostrophes stripped
		"dont", "isnt", "wasnt", "arent", "werent", "wont", "cant", "couldnt",
		"shouldnt", "wouldnt", "didnt", "doesnt", "havent", "hasnt", "hadnt",
		"its", "ive", "youre", "theyre", "weve", "youve", "theyve", "thats",
		"heres", "theres", "whats", "lets", "youll", "well", "theyll",
		// platform and url boilerplate
		"linkedin", "https", "http", "www", "com", "org", "net", "html",
		"amp", "via", "rsquo", "ldquo", "rdquo", "nbsp", "quot",
	} {
		stopWords[w] = struct{}{}
	}
}
