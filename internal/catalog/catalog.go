package catalog

import d "github.com/alexanderramin/sprout/internal/domain"

var warm = []d.ClimateZone{d.ClimateTropical, d.ClimateSubtropical, d.ClimateTemperate}

// entries is the catalog in insertion order. Insertion order is the final
// tie-breaker everywhere candidates are ranked, so append new entries at the end.
var entries = []ActivityCandidate{
	{
		ID: "swimming", Name: "Swimming Lessons", Category: CategoryAquatics,
		TargetAttributes: []string{d.AttrRiskTaker, d.AttrBalanced},
		Priority:         d.PriorityHigh, Type: d.ActivityBoth,
		CostMinUSD: 60, CostMaxUSD: 120, MinAge: 4, MaxAge: 18,
		Description: "Structured water-confidence and stroke lessons in small groups.",
		Benefits:    []string{"Water safety", "Full-body fitness", "Confidence in a new environment"},
	},
	{
		ID: "gymnastics", Name: "Gymnastics", Category: CategoryGymnastics,
		TargetAttributes: []string{d.AttrRiskTaker, d.AttrBalanced, d.AttrReflective},
		Priority:         d.PriorityHigh, Type: d.ActivityIndoor,
		CostMinUSD: 80, CostMaxUSD: 150, MinAge: 3, MaxAge: 16,
		Description: "Tumbling, balance and apparatus work that builds body awareness.",
		Benefits:    []string{"Coordination", "Courage to attempt new skills", "Self-assessment"},
	},
	{
		ID: "junior-football", Name: "Junior Football", Category: CategorySports,
		TargetAttributes: []string{d.AttrCommunicator, d.AttrCaring, d.AttrBalanced, d.AttrPrincipled},
		Priority:         d.PriorityMedium, Type: d.ActivityOutdoor,
		CostMinUSD: 50, CostMaxUSD: 100, MinAge: 4, MaxAge: 18,
		Description: "Small-sided team football focused on fair play and teamwork.",
		Benefits:    []string{"Teamwork", "Fair play", "Cardio fitness"},
	},
	{
		ID: "martial-arts", Name: "Martial Arts (Taekwondo)", Category: CategoryMartialArts,
		TargetAttributes: []string{d.AttrPrincipled, d.AttrRiskTaker, d.AttrReflective, d.AttrBalanced},
		Priority:         d.PriorityHigh, Type: d.ActivityIndoor,
		CostMinUSD: 70, CostMaxUSD: 130, MinAge: 4, MaxAge: 18,
		Description: "Belt-graded practice emphasising discipline, respect and self-control.",
		Benefits:    []string{"Self-discipline", "Respect for others", "Goal setting"},
	},
	{
		ID: "rock-climbing", Name: "Indoor Rock Climbing", Category: CategorySports,
		TargetAttributes: []string{d.AttrRiskTaker, d.AttrThinker, d.AttrBalanced},
		Priority:         d.PriorityMedium, Type: d.ActivityIndoor,
		CostMinUSD: 90, CostMaxUSD: 160, MinAge: 6, MaxAge: 18,
		Description: "Supervised bouldering and top-rope climbing for beginners.",
		Benefits:    []string{"Problem solving on the wall", "Managing fear", "Grip and core strength"},
	},
	{
		ID: "surf-school", Name: "Surf School", Category: CategoryAquatics,
		TargetAttributes: []string{d.AttrRiskTaker, d.AttrBalanced},
		Priority:         d.PriorityLow, Type: d.ActivityOutdoor,
		CostMinUSD: 120, CostMaxUSD: 220, MinAge: 7, MaxAge: 18,
		Climates: warm, RequiresCoastal: true,
		Description: "Beginner surfing with certified instructors on gentle breaks.",
		Benefits:    []string{"Ocean awareness", "Balance", "Resilience"},
	},
	{
		ID: "junior-sailing", Name: "Junior Sailing", Category: CategoryAdventure,
		TargetAttributes: []string{d.AttrRiskTaker, d.AttrThinker, d.AttrPrincipled},
		Priority:         d.PriorityLow, Type: d.ActivityOutdoor,
		CostMinUSD: 150, CostMaxUSD: 300, MinAge: 8, MaxAge: 18,
		RequiresCoastal: true,
		Description:     "Dinghy sailing courses covering rigging, wind reading and safety.",
		Benefits:        []string{"Decision making", "Responsibility for equipment", "Outdoor confidence"},
	},
	{
		ID: "ice-skating", Name: "Ice Skating", Category: CategorySports,
		TargetAttributes: []string{d.AttrRiskTaker, d.AttrBalanced},
		Priority:         d.PriorityLow, Type: d.ActivityIndoor,
		CostMinUSD: 80, CostMaxUSD: 140, MinAge: 4, MaxAge: 18,
		Climates:    []d.ClimateZone{d.ClimateCold, d.ClimateTemperate},
		Description: "Learn-to-skate programme on an indoor rink.",
		Benefits:    []string{"Balance", "Persistence after falls", "Leg strength"},
	},
	{
		ID: "nature-explorers", Name: "Nature Explorers Club", Category: CategoryAdventure,
		TargetAttributes: []string{d.AttrInquirer, d.AttrCaring, d.AttrReflective},
		Priority:         d.PriorityMedium, Type: d.ActivityOutdoor,
		CostMinUSD: 30, CostMaxUSD: 60, MinAge: 3, MaxAge: 12,
		Description: "Guided outdoor sessions observing plants, insects and weather.",
		Benefits:    []string{"Curiosity about the natural world", "Care for the environment", "Observation skills"},
	},
	{
		ID: "scouts", Name: "Scouts and Cubs", Category: CategorySocial,
		TargetAttributes: []string{d.AttrCaring, d.AttrPrincipled, d.AttrRiskTaker, d.AttrCommunicator},
		Priority:         d.PriorityMedium, Type: d.ActivityBoth,
		CostMinUSD: 20, CostMaxUSD: 50, MinAge: 6, MaxAge: 17,
		Description: "Weekly troop meetings with camps, badges and community projects.",
		Benefits:    []string{"Leadership", "Service to others", "Practical outdoor skills"},
	},
	{
		ID: "drama", Name: "Drama and Theatre", Category: CategoryDrama,
		TargetAttributes: []string{d.AttrCommunicator, d.AttrRiskTaker, d.AttrOpenMinded},
		Priority:         d.PriorityHigh, Type: d.ActivityIndoor,
		CostMinUSD: 70, CostMaxUSD: 120, MinAge: 4, MaxAge: 18,
		Description: "Improvisation games, role play and small productions.",
		Benefits:    []string{"Expressive speaking", "Empathy through roles", "Stage confidence"},
	},
	{
		ID: "public-speaking", Name: "Public Speaking and Debate", Category: CategoryLanguage,
		TargetAttributes: []string{d.AttrCommunicator, d.AttrThinker, d.AttrPrincipled},
		Priority:         d.PriorityHigh, Type: d.ActivityIndoor,
		CostMinUSD: 90, CostMaxUSD: 160, MinAge: 8, MaxAge: 18,
		Description: "Structured speaking practice and friendly debates.",
		Benefits:    []string{"Clear argument", "Listening to opposing views", "Poise"},
	},
	{
		ID: "piano", Name: "Piano Lessons", Category: CategoryMusic,
		TargetAttributes: []string{d.AttrReflective, d.AttrBalanced, d.AttrKnowledgeable},
		Priority:         d.PriorityMedium, Type: d.ActivityIndoor,
		CostMinUSD: 100, CostMaxUSD: 200, MinAge: 4, MaxAge: 18,
		Description: "One-to-one piano tuition with graded pieces.",
		Benefits:    []string{"Focus", "Patience", "Reading music"},
	},
	{
		ID: "childrens-choir", Name: "Children's Choir", Category: CategoryMusic,
		TargetAttributes: []string{d.AttrCommunicator, d.AttrCaring, d.AttrOpenMinded},
		Priority:         d.PriorityLow, Type: d.ActivityIndoor,
		CostMinUSD: 30, CostMaxUSD: 70, MinAge: 5, MaxAge: 16,
		Description: "Group singing of songs from many cultures.",
		Benefits:    []string{"Belonging", "Listening to others", "Voice confidence"},
	},
	{
		ID: "art-studio", Name: "Art Studio Classes", Category: CategoryVisualArts,
		TargetAttributes: []string{d.AttrReflective, d.AttrOpenMinded, d.AttrRiskTaker},
		Priority:         d.PriorityMedium, Type: d.ActivityIndoor,
		CostMinUSD: 60, CostMaxUSD: 120, MinAge: 3, MaxAge: 18,
		Description: "Mixed-media art exploring painting, collage and clay.",
		Benefits:    []string{"Creative risk taking", "Self-expression", "Fine motor skills"},
	},
	{
		ID: "creative-dance", Name: "Creative Dance", Category: CategoryDance,
		TargetAttributes: []string{d.AttrCommunicator, d.AttrBalanced, d.AttrRiskTaker},
		Priority:         d.PriorityMedium, Type: d.ActivityIndoor,
		CostMinUSD: 60, CostMaxUSD: 110, MinAge: 3, MaxAge: 14,
		Description: "Movement and rhythm classes that encourage expression through dance.",
		Benefits:    []string{"Non-verbal expression", "Rhythm", "Coordination"},
	},
	{
		ID: "language-club", Name: "Second Language Club", Category: CategoryLanguage,
		TargetAttributes: []string{d.AttrOpenMinded, d.AttrCommunicator, d.AttrKnowledgeable},
		Priority:         d.PriorityHigh, Type: d.ActivityIndoor,
		CostMinUSD: 80, CostMaxUSD: 150, MinAge: 3, MaxAge: 18,
		Description: "Playful immersion in a second language through songs, stories and games.",
		Benefits:    []string{"Cultural awareness", "Vocabulary", "Confidence speaking"},
	},
	{
		ID: "coding", Name: "Coding for Kids", Category: CategorySTEM,
		TargetAttributes: []string{d.AttrThinker, d.AttrInquirer, d.AttrKnowledgeable},
		Priority:         d.PriorityHigh, Type: d.ActivityIndoor,
		CostMinUSD: 100, CostMaxUSD: 180, MinAge: 6, MaxAge: 18,
		Description: "Block-based then text-based programming projects.",
		Benefits:    []string{"Logical thinking", "Debugging persistence", "Digital creativity"},
	},
	{
		ID: "robotics", Name: "Robotics Club", Category: CategorySTEM,
		TargetAttributes: []string{d.AttrThinker, d.AttrInquirer, d.AttrRiskTaker, d.AttrCommunicator},
		Priority:         d.PriorityMedium, Type: d.ActivityIndoor,
		CostMinUSD: 120, CostMaxUSD: 220, MinAge: 8, MaxAge: 18,
		Description: "Team builds and programs robots for challenges.",
		Benefits:    []string{"Engineering design", "Team communication", "Learning from failure"},
	},
	{
		ID: "science-lab", Name: "Junior Science Lab", Category: CategorySTEM,
		TargetAttributes: []string{d.AttrInquirer, d.AttrKnowledgeable, d.AttrThinker},
		Priority:         d.PriorityMedium, Type: d.ActivityIndoor,
		CostMinUSD: 70, CostMaxUSD: 130, MinAge: 5, MaxAge: 14,
		Description: "Hands-on experiments that follow the question-predict-test cycle.",
		Benefits:    []string{"Asking questions", "Scientific vocabulary", "Careful observation"},
	},
	{
		ID: "chess", Name: "Chess Club", Category: CategorySTEM,
		TargetAttributes: []string{d.AttrThinker, d.AttrReflective, d.AttrPrincipled},
		Priority:         d.PriorityMedium, Type: d.ActivityIndoor,
		CostMinUSD: 40, CostMaxUSD: 80, MinAge: 5, MaxAge: 18,
		Description: "Coached play and puzzles for all levels.",
		Benefits:    []string{"Planning ahead", "Reviewing mistakes", "Good sportsmanship"},
	},
	{
		ID: "lego-engineering", Name: "LEGO Engineering", Category: CategorySTEM,
		TargetAttributes: []string{d.AttrInquirer, d.AttrThinker, d.AttrCommunicator},
		Priority:         d.PriorityLow, Type: d.ActivityIndoor,
		CostMinUSD: 60, CostMaxUSD: 110, MinAge: 4, MaxAge: 12,
		Description: "Guided building challenges with simple machines.",
		Benefits:    []string{"Spatial reasoning", "Explaining designs", "Iteration"},
	},
	{
		ID: "community-volunteering", Name: "Community Volunteering", Category: CategorySocial,
		TargetAttributes: []string{d.AttrCaring, d.AttrPrincipled, d.AttrOpenMinded},
		Priority:         d.PriorityMedium, Type: d.ActivityBoth,
		CostMinUSD: 0, CostMaxUSD: 20, MinAge: 8, MaxAge: 18,
		Description: "Family-friendly volunteering at food banks, shelters and clean-ups.",
		Benefits:    []string{"Empathy", "Civic responsibility", "Meeting diverse people"},
	},
	{
		ID: "kids-yoga", Name: "Kids Yoga and Mindfulness", Category: CategoryMindfulness,
		TargetAttributes: []string{d.AttrReflective, d.AttrBalanced, d.AttrCaring},
		Priority:         d.PriorityMedium, Type: d.ActivityIndoor,
		CostMinUSD: 40, CostMaxUSD: 90, MinAge: 3, MaxAge: 16,
		Description: "Breathing, stretching and calm-down routines for children.",
		Benefits:    []string{"Self-regulation", "Flexibility", "Kindness practice"},
	},
	{
		ID: "gardening-club", Name: "Gardening Club", Category: CategoryMindfulness,
		TargetAttributes: []string{d.AttrCaring, d.AttrInquirer, d.AttrReflective, d.AttrBalanced},
		Priority:         d.PriorityLow, Type: d.ActivityOutdoor,
		CostMinUSD: 20, CostMaxUSD: 50, MinAge: 4, MaxAge: 14,
		Description: "Planting, tending and harvesting a shared garden plot.",
		Benefits:    []string{"Responsibility", "Patience", "Understanding growth cycles"},
	},
	{
		ID: "tennis", Name: "Tennis Coaching", Category: CategorySports,
		TargetAttributes: []string{d.AttrBalanced, d.AttrPrincipled, d.AttrReflective},
		Priority:         d.PriorityLow, Type: d.ActivityOutdoor,
		CostMinUSD: 90, CostMaxUSD: 160, MinAge: 5, MaxAge: 18,
		Climates:    []d.ClimateZone{d.ClimateTropical, d.ClimateSubtropical, d.ClimateTemperate, d.ClimateArid},
		Description: "Group coaching on court skills and match play.",
		Benefits:    []string{"Hand-eye coordination", "Honest line calls", "Handling pressure"},
	},
	{
		ID: "storytelling", Name: "Storytelling and Puppetry", Category: CategoryLanguage,
		TargetAttributes: []string{d.AttrCommunicator, d.AttrRiskTaker, d.AttrOpenMinded},
		Priority:         d.PriorityMedium, Type: d.ActivityIndoor,
		CostMinUSD: 40, CostMaxUSD: 80, MinAge: 3, MaxAge: 8,
		Description: "Children invent and perform stories with puppets.",
		Benefits:    []string{"Narrative language", "Speaking to a group", "Imagination"},
	},
	{
		ID: "parent-child-music", Name: "Parent and Child Music", Category: CategoryMusic,
		TargetAttributes: []string{d.AttrCommunicator, d.AttrBalanced},
		Priority:         d.PriorityLow, Type: d.ActivityIndoor,
		CostMinUSD: 40, CostMaxUSD: 80, MinAge: 2, MaxAge: 5,
		Description: "Songs, rhythm and instruments for young children with a carer.",
		Benefits:    []string{"Early language", "Listening", "Bonding"},
	},
	{
		ID: "family-reading", Name: "Family Reading Time", Category: CategoryLiteracy,
		TargetAttributes: []string{d.AttrKnowledgeable, d.AttrCommunicator, d.AttrReflective},
		Priority:         d.PriorityMedium, Type: d.ActivityIndoor,
		CostMinUSD: 0, CostMaxUSD: 15, MinAge: 3, MaxAge: 12, HomeBased: true,
		Description: "A daily shared-reading routine at home with library books.",
		Benefits:    []string{"Vocabulary", "Love of reading", "Talking about ideas"},
	},
	{
		ID: "kitchen-science", Name: "Kitchen Science Experiments", Category: CategorySTEM,
		TargetAttributes: []string{d.AttrInquirer, d.AttrThinker, d.AttrRiskTaker},
		Priority:         d.PriorityLow, Type: d.ActivityIndoor,
		CostMinUSD: 10, CostMaxUSD: 30, MinAge: 4, MaxAge: 12, HomeBased: true,
		Description: "Simple weekly experiments with household materials.",
		Benefits:    []string{"Curiosity", "Predicting outcomes", "Safe experimentation"},
	},
	{
		ID: "family-nature-walks", Name: "Family Nature Walks", Category: CategoryAdventure,
		TargetAttributes: []string{d.AttrBalanced, d.AttrInquirer, d.AttrReflective},
		Priority:         d.PriorityLow, Type: d.ActivityOutdoor,
		CostMinUSD: 0, CostMaxUSD: 10, MinAge: 3, MaxAge: 18, HomeBased: true,
		Description: "Weekend walks in local parks with a simple spotting checklist.",
		Benefits:    []string{"Physical activity", "Noticing details", "Family time"},
	},
}

// All returns the catalog in insertion order. The returned slice is a copy;
// the entries' inner slices are shared and must be treated as read-only.
func All() []ActivityCandidate {
	out := make([]ActivityCandidate, len(entries))
	copy(out, entries)
	return out
}

// ByID looks up a catalog entry.
func ByID(id string) (ActivityCandidate, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return ActivityCandidate{}, false
}
