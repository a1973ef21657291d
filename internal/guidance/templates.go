package guidance

import "github.com/alexanderramin/sprout/internal/domain"

// ImprovementTemplates holds the home actions for weak attributes. There is
// no template for knowledgeable or principled; those are skipped.
var ImprovementTemplates = map[string]ParentAction{
	domain.AttrRiskTaker: {
		TargetArea: domain.AttrRiskTaker,
		Priority:   domain.PriorityHigh,
		Title:      "Build confidence to try new things",
		Activities: []HomeActivity{
			{
				Name:        "New thing Saturday",
				Description: "Pick something neither of you has tried before: a recipe, a park, a game.",
				Frequency:   "Weekly",
				Duration:    "30-60 minutes",
				Tips:        []string{"Model being a beginner yourself", "Celebrate the attempt, not the result"},
			},
			{
				Name:        "Brave moment jar",
				Description: "Write down each time your child tried something hard and read them back together.",
				Frequency:   "Daily",
				Duration:    "5 minutes",
				Tips:        []string{"Include small wins", "Let your child decide what counts as brave"},
			},
		},
		ExpectedOutcome:  "More willingness to attempt unfamiliar tasks and recover from mistakes.",
		TimeToSeeResults: "4-6 weeks",
	},
	domain.AttrCommunicator: {
		TargetArea: domain.AttrCommunicator,
		Priority:   domain.PriorityHigh,
		Title:      "Practise speaking and listening",
		Activities: []HomeActivity{
			{
				Name:        "Dinner table question",
				Description: "Ask one open question at dinner and let your child answer in full sentences.",
				Frequency:   "Daily",
				Duration:    "10 minutes",
				Tips:        []string{"Avoid yes/no questions", "Give them time before prompting"},
			},
			{
				Name:        "Show and tell",
				Description: "Your child presents a favourite toy or drawing to the family.",
				Frequency:   "Weekly",
				Duration:    "15 minutes",
				Tips:        []string{"Ask one follow-up question each", "Record it so they can watch themselves"},
			},
		},
		ExpectedOutcome:  "Clearer expression of ideas and more confidence speaking to groups.",
		TimeToSeeResults: "4-8 weeks",
	},
	domain.AttrThinker: {
		TargetArea: domain.AttrThinker,
		Priority:   domain.PriorityHigh,
		Title:      "Grow problem-solving habits",
		Activities: []HomeActivity{
			{
				Name:        "Puzzle time",
				Description: "Work through logic puzzles, tangrams or board games that need planning.",
				Frequency:   "3 times a week",
				Duration:    "20 minutes",
				Tips:        []string{"Ask how they worked it out", "Resist giving the answer"},
			},
		},
		ExpectedOutcome:  "Better reasoning through multi-step problems.",
		TimeToSeeResults: "6-8 weeks",
	},
	domain.AttrInquirer: {
		TargetArea: domain.AttrInquirer,
		Priority:   domain.PriorityMedium,
		Title:      "Encourage curiosity",
		Activities: []HomeActivity{
			{
				Name:        "Wonder wall",
				Description: "Keep a list of your child's questions and research one together each week.",
				Frequency:   "Weekly",
				Duration:    "20 minutes",
				Tips:        []string{"Use the library as well as the internet", "Answer questions with questions"},
			},
		},
		ExpectedOutcome:  "More questions asked and more independent investigation.",
		TimeToSeeResults: "4-6 weeks",
	},
	domain.AttrOpenMinded: {
		TargetArea: domain.AttrOpenMinded,
		Priority:   domain.PriorityMedium,
		Title:      "Explore other cultures and viewpoints",
		Activities: []HomeActivity{
			{
				Name:        "World food night",
				Description: "Cook a dish from another country and look at where it comes from on a map.",
				Frequency:   "Fortnightly",
				Duration:    "60 minutes",
				Tips:        []string{"Let your child choose the country", "Learn a greeting in that language"},
			},
			{
				Name:        "Two sides story",
				Description: "Retell a familiar story from another character's point of view.",
				Frequency:   "Weekly",
				Duration:    "15 minutes",
				Tips:        []string{"Start with the villain's side"},
			},
		},
		ExpectedOutcome:  "Greater acceptance of different ideas and people.",
		TimeToSeeResults: "6-10 weeks",
	},
	domain.AttrCaring: {
		TargetArea: domain.AttrCaring,
		Priority:   domain.PriorityMedium,
		Title:      "Practise kindness at home",
		Activities: []HomeActivity{
			{
				Name:        "Kindness mission",
				Description: "Plan one small act of kindness for a neighbour, friend or family member.",
				Frequency:   "Weekly",
				Duration:    "15 minutes",
				Tips:        []string{"Talk about how the other person felt", "Keep it small and concrete"},
			},
		},
		ExpectedOutcome:  "More empathy and attention to how others feel.",
		TimeToSeeResults: "4-6 weeks",
	},
	domain.AttrBalanced: {
		TargetArea: domain.AttrBalanced,
		Priority:   domain.PriorityMedium,
		Title:      "Build a balanced routine",
		Activities: []HomeActivity{
			{
				Name:        "Family movement break",
				Description: "Get outside or move together after screen time or homework.",
				Frequency:   "Daily",
				Duration:    "20 minutes",
				Tips:        []string{"Make it the same time each day", "Let your child pick the activity"},
			},
		},
		ExpectedOutcome:  "Healthier balance between study, play and rest.",
		TimeToSeeResults: "3-4 weeks",
	},
	domain.AttrReflective: {
		TargetArea: domain.AttrReflective,
		Priority:   domain.PriorityMedium,
		Title:      "Make time to look back",
		Activities: []HomeActivity{
			{
				Name:        "Best and hardest",
				Description: "At bedtime, share the best and hardest part of the day.",
				Frequency:   "Daily",
				Duration:    "5 minutes",
				Tips:        []string{"Go first to show how", "Ask what they would do differently"},
			},
		},
		ExpectedOutcome:  "Better awareness of own learning and feelings.",
		TimeToSeeResults: "4-6 weeks",
	},
}

var earlyLiteracyAction = ParentAction{
	TargetArea: "early-literacy",
	Priority:   domain.PriorityMedium,
	Title:      "Build early reading foundations",
	Activities: []HomeActivity{
		{
			Name:        "Shared picture book",
			Description: "Read a picture book together, pointing at words and talking about the pictures.",
			Frequency:   "Daily",
			Duration:    "15 minutes",
			Tips:        []string{"Let your child turn the pages", "Re-read favourites; repetition helps"},
		},
		{
			Name:        "Sound hunt",
			Description: "Find things around the house that start with the same sound.",
			Frequency:   "3 times a week",
			Duration:    "10 minutes",
			Tips:        []string{"Focus on sounds, not letter names"},
		},
	},
	ExpectedOutcome:  "Stronger phonics awareness and love of books.",
	TimeToSeeResults: "8-12 weeks",
}

var readingWritingAction = ParentAction{
	TargetArea: "reading-writing",
	Priority:   domain.PriorityMedium,
	Title:      "Strengthen reading and writing",
	Activities: []HomeActivity{
		{
			Name:        "Family reading time",
			Description: "Everyone reads their own book in the same room.",
			Frequency:   "Daily",
			Duration:    "20 minutes",
			Tips:        []string{"Let your child choose what to read", "Talk about the books afterwards"},
		},
		{
			Name:        "Weekend journal",
			Description: "Your child writes a few sentences about their weekend and draws a picture.",
			Frequency:   "Weekly",
			Duration:    "15 minutes",
			Tips:        []string{"Do not correct spelling in the first draft"},
		},
	},
	ExpectedOutcome:  "More fluent reading and more confident writing.",
	TimeToSeeResults: "8-12 weeks",
}
