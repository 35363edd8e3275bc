package survey

// StatusPage is the gating page.
var StatusPage = Page{
	ID:     PageStatus,
	Prompt: "What best describes your current professional status?",
	Kind:   KindChoice,
	Options: []Option{
		{Label: StatusUniversity, Emoji: "🎓", Description: "You are currently a student or pursuing academic research."},
		{Label: StatusIndustry, Emoji: "💼", Description: "You are currently working in industry."},
	},
}

// IndustryPage follows the status page for industry professionals.
var IndustryPage = Page{
	ID:     PageIndustry,
	Prompt: "Choose your Industry!",
	Kind:   KindChoice,
	Options: []Option{
		{Label: "Aerospace and Defense", Emoji: "✈️"},
		{Label: "Agriculture and Farming", Emoji: "🌾"},
		{Label: "Arts and Design", Emoji: "🎨"},
		{Label: "Automotive", Emoji: "🚗"},
		{Label: "Consulting", Emoji: "💼"},
		{Label: "Education", Emoji: "📚"},
		{Label: "Energy and Utilities", Emoji: "⚡"},
		{Label: "Entertainment and Media", Emoji: "🎭"},
		{Label: "Environmental Services", Emoji: "🌍"},
		{Label: "Fashion and Apparel", Emoji: "👗"},
		{Label: "Finance and Banking", Emoji: "🏦"},
		{Label: "Government and Public Administration", Emoji: "🏛️"},
		{Label: "Healthcare and Medical", Emoji: "🩺"},
		{Label: "Hospitality and Tourism", Emoji: "👨‍🍳"},
		{Label: "Legal Services", Emoji: "⚖️"},
		{Label: "Manufacturing and Production", Emoji: "🏭"},
		{Label: "Marketing and Advertising", Emoji: "📢"},
		{Label: "Nonprofit and Social Services", Emoji: "❤️"},
		{Label: "Transportation and Logistics", Emoji: "🚚"},
		{Label: "Pharmaceuticals and Biotechnology", Emoji: "💊"},
		{Label: "Real Estate and Construction", Emoji: "🏗️"},
		{Label: "Retail and Consumer Goods", Emoji: "🛍️"},
		{Label: "Sports and Recreation", Emoji: "⚽"},
		{Label: "Technology and IT", Emoji: "💻"},
		{Label: "Telecommunications", Emoji: "📡"},
		{Label: OtherLabel, Emoji: "❓"},
	},
}

// DegreePage follows the status page for university affiliates.
var DegreePage = Page{
	ID:     PageDegree,
	Prompt: "What is your Degree Path or Research Focus?",
	Kind:   KindChoice,
	Options: []Option{
		{Label: "Aerospace Engineering", Emoji: "✈️"},
		{Label: "Agricultural Sciences", Emoji: "🌾"},
		{Label: "Fine Arts & Design", Emoji: "🎨"},
		{Label: "Automotive Engineering", Emoji: "🚗"},
		{Label: "Business & Management", Emoji: "💼"},
		{Label: "Education & Teaching", Emoji: "📚"},
		{Label: "Energy Science & Engineering", Emoji: "⚡"},
		{Label: "Media & Communication Studies", Emoji: "🎭"},
		{Label: "Environmental Science & Sustainability", Emoji: "🌍"},
		{Label: "Fashion & Textile Studies", Emoji: "👗"},
		{Label: "Finance & Economics", Emoji: "🏦"},
		{Label: "Political Science & Public Administration", Emoji: "🏛️"},
		{Label: "Health Sciences & Medicine", Emoji: "🩺"},
		{Label: "Hospitality & Tourism Management", Emoji: "👨‍🍳"},
		{Label: "Law & Legal Studies", Emoji: "⚖️"},
		{Label: "Industrial & Manufacturing Engineering", Emoji: "🏭"},
		{Label: "Marketing & Consumer Behavior", Emoji: "📢"},
		{Label: "Social Work & Nonprofit Studies", Emoji: "❤️"},
		{Label: "Logistics & Supply Chain Management", Emoji: "🚚"},
		{Label: "Pharmaceutical Sciences & Biotechnology", Emoji: "💊"},
		{Label: "Urban Planning & Real Estate Development", Emoji: "🏗️"},
		{Label: "Retail & Consumer Studies", Emoji: "🛍️"},
		{Label: "Sports Management & Kinesiology", Emoji: "⚽"},
		{Label: "General Studies", Emoji: "🎓"},
		{Label: "Computer Science & Information Technology", Emoji: "💻"},
		{Label: "Telecommunications & Networking", Emoji: "📡"},
		{Label: OtherLabel, Emoji: "❓"},
	},
}

// UniversityPage asks for the alma mater.
var UniversityPage = Page{
	ID:     PageUniversity,
	Prompt: "Choose your Alma Mater!",
	Kind:   KindChoice,
	Options: []Option{
		{Label: "Brown University", Emoji: "🟤"},
		{Label: "Columbia University", Emoji: "🔵"},
		{Label: "Cornell University", Emoji: "🐻"},
		{Label: "Dartmouth College", Emoji: "🌲"},
		{Label: "Harvard University", Emoji: "🟥"},
		{Label: "Princeton University", Emoji: "🐯"},
		{Label: "University of Pennsylvania", Emoji: "🔴"},
		{Label: "Yale University", Emoji: "🐶"},
	},
}

// LocationPage asks where the user lives.
var LocationPage = Page{
	ID:     PageLocation,
	Prompt: "Where are you located?",
	Kind:   KindChoice,
	Options: []Option{
		{Label: "Atlanta, GA", Emoji: "🍑"},
		{Label: "Austin, TX", Emoji: "🤠"},
		{Label: "Baltimore, MD", Emoji: "🏈"},
		{Label: "Boston, MA", Emoji: "🏀"},
		{Label: "Charlotte, NC", Emoji: "🏁"},
		{Label: "Chicago, IL", Emoji: "🌬️"},
		{Label: "Columbus, OH", Emoji: "🌰"},
		{Label: "Dallas, TX", Emoji: "🌵"},
		{Label: "Denver, CO", Emoji: "🏔️"},
		{Label: "Detroit, MI", Emoji: "🚗"},
		{Label: "Hanover, NH", Emoji: "🎓"},
		{Label: "Houston, TX", Emoji: "🚀"},
		{Label: "Ithaca, NY", Emoji: "🌳"},
		{Label: "Las Vegas, NV", Emoji: "🎰"},
		{Label: "Los Angeles, CA", Emoji: "🌴"},
		{Label: "Miami, FL", Emoji: "🌊"},
		{Label: "Minneapolis, MN", Emoji: "❄️"},
		{Label: "Nashville, TN", Emoji: "🎸"},
		{Label: "New Haven, CT", Emoji: "🦉"},
		{Label: "New York City, NY", Emoji: "🗽"},
		{Label: "Orlando, FL", Emoji: "🎢"},
		{Label: "Philadelphia, PA", Emoji: "🦅"},
		{Label: "Phoenix, AZ", Emoji: "🌵"},
		{Label: "Pittsburgh, PA", Emoji: "🏒"},
		{Label: "Portland, OR", Emoji: "🌲"},
		{Label: "Princeton, NJ", Emoji: "🐯"},
		{Label: "Providence, RI", Emoji: "⚓"},
		{Label: "Raleigh, NC", Emoji: "🏡"},
		{Label: "San Diego, CA", Emoji: "🌞"},
		{Label: "San Francisco, CA", Emoji: "🌉"},
		{Label: "San Jose, CA", Emoji: "🤖"},
		{Label: "Seattle, WA", Emoji: "☔"},
		{Label: "Tampa, FL", Emoji: "🐊"},
		{Label: "Washington, D.C.", Emoji: "🏛️"},
		{Label: "Accra, Ghana", Emoji: "🇬🇭"},
		{Label: "Addis Ababa, Ethiopia", Emoji: "🇪🇹"},
		{Label: "Amsterdam, Netherlands", Emoji: "🇳🇱"},
		{Label: "Beijing, China", Emoji: "🇨🇳"},
		{Label: "Cairo, Egypt", Emoji: "🇪🇬"},
		{Label: "Casablanca, Morocco", Emoji: "🇲🇦"},
		{Label: "Cape Town, South Africa", Emoji: "🇿🇦"},
		{Label: "Johannesburg, South Africa", Emoji: "🇿🇦"},
		{Label: "Dakar, Senegal", Emoji: "🇸🇳"},
		{Label: "Dubai, UAE", Emoji: "🇦🇪"},
		{Label: "Hong Kong", Emoji: "🇭🇰"},
		{Label: "Kingston, Jamaica", Emoji: "🇯🇲"},
		{Label: "Lagos, Nigeria", Emoji: "🇳🇬"},
		{Label: "London, UK", Emoji: "🇬🇧"},
		{Label: "Paris, France", Emoji: "🇫🇷"},
		{Label: "Seoul, South Korea", Emoji: "🇰🇷"},
		{Label: "Tokyo, Japan", Emoji: "🇯🇵"},
		{Label: OtherLabel, Emoji: "❓"},
	},
}

// HobbiesPage is the only multi-select page.
var HobbiesPage = Page{
	ID:          PageHobbies,
	Prompt:      "What are your hobbies and interests?",
	Kind:        KindChoice,
	MultiSelect: true,
	NudgeAt:     3,
	Options: []Option{
		{Label: "Creative Writing", Emoji: "📝", Description: "Share your poetry, short stories, and writing projects!"},
		{Label: "Photography & Videography", Emoji: "📸", Description: "Discuss cameras, editing, and share your best shots!"},
		{Label: "Fitness & Wellness", Emoji: "🏋️‍♂️", Description: "Talk workouts, nutrition, and self-care routines!"},
		{Label: "Self-Improvement", Emoji: "📖", Description: "Books, productivity hacks, and leveling up your mindset!"},
		{Label: "Skincare & Beauty", Emoji: "💄", Description: "Share your favorite products, routines, and beauty tips!"},
		{Label: "Fashion & Style", Emoji: "👗", Description: "Talk all things fashion, from streetwear to high-end looks!"},
		{Label: "Tech & Gadgets", Emoji: "💻", Description: "Discuss the latest tech trends, gadgets, and innovations!"},
		{Label: "DIY & Crafting", Emoji: "🎨", Description: "Share your DIY projects, crafts, and handmade creations!"},
		{Label: "Music Lovers", Emoji: "🎶", Description: "Talk about your favorite artists, albums, and concerts!"},
		{Label: "Film & TV Buffs", Emoji: "🎬", Description: "Discuss your favorite movies, TV shows, and theories!"},
		{Label: "Anime & Manga", Emoji: "📖", Description: "Chat about your favorite anime, manga, and recommendations!"},
		{Label: "Gaming", Emoji: "🎮", Description: "Talk about your favorite video games, consoles, and strategies!"},
		{Label: "Sports & Athletics", Emoji: "🏀", Description: "From basketball to F1, discuss all things sports!"},
		{Label: "Outdoor Adventures", Emoji: "⛰️", Description: "Hiking, camping, and outdoor fun!"},
		{Label: "Foodies & Cooking", Emoji: "🍽️", Description: "Share recipes, food hacks, and favorite meals!"},
		{Label: "Travel Enthusiasts", Emoji: "✈️", Description: "Discuss dream destinations, travel tips, and adventures!"},
		{Label: "Mental Health & Wellness", Emoji: "🧘", Description: "A space to talk mindfulness, self-care, and well-being!"},
		{Label: "Finance & Investing", Emoji: "💰", Description: "Talk about budgeting, stocks, and financial goals!"},
		{Label: "Parenting & Family", Emoji: "🍼", Description: "Discuss all things parenthood and family life!"},
		{Label: "Spirituality & Mindfulness", Emoji: "☯️", Description: "A space to discuss meditation, manifestation, and more!"},
		{Label: "Car Enthusiasts", Emoji: "🚗", Description: "Talk about car mods, dream cars, and road trips!"},
		{Label: "Comedy & Memes", Emoji: "😂", Description: "Share jokes, funny memes, and hilarious content!"},
		{Label: "Pets & Animals", Emoji: "🐶", Description: "Share pictures, tips, and stories about your pets!"},
		{Label: "Baddies in Luxury", Emoji: "💎", Description: "A space for luxury lifestyle discussions!"},
		{Label: "Astrology & Tarot", Emoji: "🔮", Description: "Discuss zodiac signs, tarot readings, and cosmic vibes!"},
		{Label: "Board Games & Tabletop RPGs", Emoji: "🎲", Description: "From Monopoly to DnD, talk all things tabletop!"},
		{Label: "Languages & Learning", Emoji: "🌍", Description: "Discuss learning new languages and study tips!"},
		{Label: "Entrepreneurship & Startups", Emoji: "🚀", Description: "Talk about business ideas, startups, and side hustles!"},
		{Label: OtherLabel, Emoji: "❓", Description: "Have an interest that's not listed? Share it here!"},
	},
}

// BirthDatePage collects a structured date of birth.
var BirthDatePage = Page{
	ID:     PageBirthDate,
	Prompt: "When is your birthday?",
	Kind:   KindDate,
}

// ConsentPage is always last. Finishing requires the box to be checked.
var ConsentPage = Page{
	ID:     PageConsent,
	Prompt: "I confirm that the information I provided is accurate.",
	Kind:   KindConsent,
}

// conditionalPages maps a gating answer to the page inserted after the status page.
var conditionalPages = map[string]Page{
	StatusUniversity: DegreePage,
	StatusIndustry:   IndustryPage,
}

// trailingPages follow the conditional page in every resolution.
var trailingPages = []Page{
	UniversityPage,
	LocationPage,
	HobbiesPage,
	BirthDatePage,
	ConsentPage,
}

// Resolve builds the ordered page list for a gating answer.
// Unknown or empty answers produce no conditional page.
func Resolve(gating string) []Page {
	pages := make([]Page, 0, len(trailingPages)+2)
	pages = append(pages, StatusPage)
	if p, ok := conditionalPages[gating]; ok {
		pages = append(pages, p)
	}
	return append(pages, trailingPages...)
}

// Lookup returns the catalog page with the given id.
func Lookup(id PageID) (Page, bool) {
	switch id {
	case PageStatus:
		return StatusPage, true
	case PageIndustry:
		return IndustryPage, true
	case PageDegree:
		return DegreePage, true
	}
	for _, p := range trailingPages {
		if p.ID == id {
			return p, true
		}
	}
	return Page{}, false
}
