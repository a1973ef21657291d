// Package profile derives learner-attribute profiles from school reports and
// infers which attributes an activity exercises. The keyword tables in this
// file are the only place such vocabulary is defined; the analyzer, the
// current-activity evaluator and the parent-action generator all read them.
package profile

import (
	"strings"

	"github.com/alexanderramin/sprout/internal/domain"
)

// StrengthKeywords mark report evidence that describes a secure attribute.
var StrengthKeywords = []string{
	"excellent",
	"strong",
	"consistently",
	"confident",
	"independently",
	"exceptional",
	"outstanding",
	"excels",
	"proficient",
	"always",
	"very good",
	"enthusiastic",
}

// DevelopingKeywords mark evidence that describes an attribute still forming.
// Any hit here overrides a strength keyword.
var DevelopingKeywords = []string{
	"developing",
	"sometimes",
	"struggles",
	"struggling",
	"needs",
	"beginning",
	"emerging",
	"with support",
	"inconsistent",
	"working towards",
	"occasionally",
	"not yet",
	"not confident",
	"reluctant",
	"hesitant",
	"learning to",
}

// ActivityCategory is one row of the activity-name keyword table.
type ActivityCategory struct {
	Name       string
	Keywords   []string
	Attributes []string
}

// Activity category names.
const (
	CategoryPhysical    = "physical"
	CategoryArts        = "arts"
	CategoryLanguage    = "language"
	CategorySTEM        = "stem"
	CategorySocial      = "social"
	CategoryMindfulness = "mindfulness"
)

// ActivityCategories maps activity-name fragments to the attributes the
// activity exercises. Order matters: inferred attributes keep first-seen order.
var ActivityCategories = []ActivityCategory{
	{
		Name: CategoryPhysical,
		Keywords: []string{
			"swim", "football", "soccer", "basketball", "tennis", "badminton",
			"gymnastic", "martial", "karate", "judo", "taekwondo", "athletic",
			"running", "cycling", "climbing", "sport", "cricket", "rugby",
			"hockey", "skating", "netball", "volleyball", "fencing", "golf",
		},
		Attributes: []string{domain.AttrRiskTaker, domain.AttrBalanced, domain.AttrPrincipled},
	},
	{
		Name: CategoryArts,
		Keywords: []string{
			"arts", "art class", "paint", "drawing", "music", "piano", "guitar",
			"violin", "drum", "drama", "theatre", "theater", "dance", "ballet",
			"singing", "choir", "craft", "pottery", "sculpt",
		},
		Attributes: []string{domain.AttrCommunicator, domain.AttrOpenMinded, domain.AttrReflective, domain.AttrRiskTaker},
	},
	{
		Name: CategoryLanguage,
		Keywords: []string{
			"language", "french", "spanish", "mandarin", "chinese", "japanese",
			"german", "english", "reading", "writing", "debate", "phonics",
			"book club", "public speaking", "storytelling",
		},
		Attributes: []string{domain.AttrCommunicator, domain.AttrOpenMinded, domain.AttrKnowledgeable},
	},
	{
		Name: CategorySTEM,
		Keywords: []string{
			"science", "math", "coding", "robot", "programming", "chess",
			"lego", "engineering", "stem", "computer", "abacus", "astronomy",
		},
		Attributes: []string{domain.AttrInquirer, domain.AttrKnowledgeable, domain.AttrThinker},
	},
	{
		Name: CategorySocial,
		Keywords: []string{
			"scout", "brownie", "volunteer", "community", "charity", "service",
			"youth group", "girl guide",
		},
		Attributes: []string{domain.AttrCaring, domain.AttrPrincipled, domain.AttrCommunicator, domain.AttrOpenMinded},
	},
	{
		Name: CategoryMindfulness,
		Keywords: []string{
			"yoga", "meditation", "mindful", "nature", "garden", "tai chi",
		},
		Attributes: []string{domain.AttrReflective, domain.AttrBalanced, domain.AttrCaring},
	},
}

// FallbackAttributes apply when an activity name matches no category.
var FallbackAttributes = []string{domain.AttrBalanced, domain.AttrKnowledgeable}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
