// Package rubric holds the fixed configuration for the self-introduction
// rubric: keyword phrase lists, filler terms, salutation tiers, structure
// phrase sets, criterion descriptions, score maxima and band thresholds.
// Scorers read these tables; nothing in here is computed per request.
package rubric

// Concept is one rubric content category detected by phrase containment.
type Concept struct {
	Key     string
	Label   string
	Points  int
	Phrases []string
}

// MustHaveConcepts are worth 4 points each, 20 total.
var MustHaveConcepts = []Concept{
	{
		Key:    "name",
		Label:  "Name",
		Points: 4,
		Phrases: []string{
			"my name is",
			"myself",
			"i am ",
		},
	},
	{
		Key:    "age",
		Label:  "Age",
		Points: 4,
		Phrases: []string{
			"years old",
		},
	},
	{
		Key:    "school_class",
		Label:  "School/Class",
		Points: 4,
		Phrases: []string{
			"class ",
			"standard",
			"grade ",
			"school",
		},
	},
	{
		Key:    "family",
		Label:  "Family",
		Points: 4,
		Phrases: []string{
			"family",
			"mother",
			"father",
			"parents",
			"brother",
			"sister",
		},
	},
	{
		Key:    "hobbies",
		Label:  "Hobbies/Interests",
		Points: 4,
		Phrases: []string{
			"my hobby is",
			"my hobbies are",
			"i like to",
			"i love to",
			"i enjoy",
			"in my free time",
		},
	},
}

// GoodToHaveConcepts are worth 2 points each, 10 total.
var GoodToHaveConcepts = []Concept{
	{
		Key:    "about_family",
		Label:  "About family (details)",
		Points: 2,
		Phrases: []string{
			"my family is",
			"we are a family of",
			"there are",
			"members in my family",
		},
	},
	{
		Key:    "location",
		Label:  "Location/Origin",
		Points: 2,
		Phrases: []string{
			"i am from",
			"i'm from",
			"i live in",
			"my hometown",
		},
	},
	{
		Key:    "ambition",
		Label:  "Ambition/Goal/Dream",
		Points: 2,
		Phrases: []string{
			"i want to become",
			"i want to be",
			"my dream is",
			"my goal is",
			"my ambition is",
		},
	},
	{
		Key:    "fun_fact",
		Label:  "Fun fact / Unique thing",
		Points: 2,
		Phrases: []string{
			"fun fact",
			"something unique about me",
			"one thing about me",
			"an interesting thing about me",
		},
	},
	{
		Key:    "strengths",
		Label:  "Strengths/Achievements",
		Points: 2,
		Phrases: []string{
			"i am good at",
			"i'm good at",
			"my strength is",
			"my strengths are",
			"i have won",
			"i won",
			"i achieved",
			"i have achieved",
		},
	},
}

// SalutationTier is one level of greeting quality. Tiers are checked in
// order against the first sentence only; the first match wins, which is
// what keeps "hello everyone" from landing in the weaker simple tier.
type SalutationTier struct {
	Score   int
	Phrases []string
}

var SalutationTiers = []SalutationTier{
	{
		Score: 5,
		Phrases: []string{
			"excited to introduce myself",
			"thrilled to introduce myself",
			"thrilled to be here",
			"excited to be here",
			"i am excited to introduce",
			"i'm excited to introduce",
		},
	},
	{
		Score: 4,
		Phrases: []string{
			"good morning",
			"good afternoon",
			"good evening",
			"hello everyone",
			"hello everybody",
		},
	},
	{
		Score: 2,
		Phrases: []string{
			"hello",
			"hi",
			"hey",
		},
	},
}

// Phrase sets for per-sentence structure tagging. Tag priority is
// SALUTATION > CLOSING > BASIC > ADDITIONAL > OTHER.

var TagSalutationPhrases = []string{
	"good morning",
	"good afternoon",
	"good evening",
	"hello",
	"hi",
	"hey",
	"excited to introduce myself",
	"thrilled to introduce myself",
	"excited to be here",
	"thrilled to be here",
}

var ClosingPhrases = []string{
	"thank you",
	"thanks for listening",
	"that's all",
}

// BasicPhraseGroups mark sentences that carry the basic identity facts:
// name, age, school/class, location.
var BasicPhraseGroups = [][]string{
	conceptPhrases(MustHaveConcepts, "name"),
	conceptPhrases(MustHaveConcepts, "age"),
	conceptPhrases(MustHaveConcepts, "school_class"),
	conceptPhrases(GoodToHaveConcepts, "location"),
}

// AdditionalPhraseGroups mark sentences with supporting detail: family,
// hobbies, ambition, fun fact, strengths.
var AdditionalPhraseGroups = [][]string{
	conceptPhrases(MustHaveConcepts, "family"),
	conceptPhrases(MustHaveConcepts, "hobbies"),
	conceptPhrases(GoodToHaveConcepts, "ambition"),
	conceptPhrases(GoodToHaveConcepts, "fun_fact"),
	conceptPhrases(GoodToHaveConcepts, "strengths"),
}

func conceptPhrases(concepts []Concept, key string) []string {
	for _, c := range concepts {
		if c.Key == key {
			return c.Phrases
		}
	}
	return nil
}

// FillerTerms are the disfluency markers counted by the clarity scorer.
// Single tokens are matched exactly against tokens; multi-word phrases
// are matched by substring.
var FillerTerms = []string{
	"um",
	"uh",
	"like",
	"you know",
	"so",
	"actually",
	"basically",
	"right",
	"i mean",
	"well",
	"kinda",
	"sort of",
	"okay",
	"hmm",
	"ah",
}

// Criterion is one high-level rubric dimension with its "ideal"
// description, the semantic-similarity target for that dimension.
type Criterion struct {
	Name        string
	Description string
}

var Criteria = []Criterion{
	{
		Name: "content",
		Description: "A well-structured self introduction with a clear salutation, name, age, " +
			"class or school, family background, hobbies or interests, and a closing thank you.",
	},
	{
		Name: "language",
		Description: "Clear, grammatically correct English with appropriate sentence structure and " +
			"a reasonably varied vocabulary for a school student.",
	},
	{
		Name: "clarity",
		Description: "Fluent and easy to understand speech with minimal filler words, concise sentences, " +
			"and ideas expressed in a straightforward way.",
	},
	{
		Name: "engagement",
		Description: "A positive, enthusiastic, and friendly tone that feels genuine and engaging, " +
			"making the listener interested in the speaker.",
	},
}

// Sub-score maxima. They sum to 100.
const (
	MaxSalutation = 5
	MaxKeywords   = 30
	MaxFlow       = 5
	MaxSpeechRate = 10
	MaxGrammar    = 10
	MaxVocabulary = 10
	MaxClarity    = 15
	MaxEngagement = 15

	TotalMax = 100
)

// Grammar heuristic scaling: estimated errors per 100 words are capped,
// then folded into a [0,1] quality fraction.
const (
	ErrorsPer100Cap   = 100.0
	GrammarErrorScale = 20.0
)
