package landing

// Item is a titled card with an icon glyph.
type Item struct {
	Icon        string
	Title       string
	Description string
}

type Tier struct {
	Name        string
	Price       string // whole dollars per month
	Description string
	Features    []string
}

type Instruction struct {
	Icon string
	Text string
}

// Platform groups the save-to-home-screen steps for one device family.
type Platform struct {
	Key   string
	Name  string
	Icon  string
	Steps []Instruction
}

// Content is the static copy of the marketing page.
type Content struct {
	Title          string
	Tagline        string
	Benefits       []Item
	HowItWorks     []Item
	WebAppBenefits []Item
	Platforms      []Platform
	AppHost        string
	PricingTiers   []Tier
	PricingNote    string
	Features       []Item
	Footer         string
}

func DefaultContent() Content {
	return Content{
		Title:   "Tag N Park",
		Tagline: "Streamline parking management for your apartment complex or HOA with our simple, affordable solution.",
		Benefits: []Item{
			{Icon: "🏢", Title: "For Properties", Description: "Perfect for apartments and HOAs of any size"},
			{Icon: "🚗", Title: "For Residents", Description: "Easy registration and visitor parking management"},
			{Icon: "⏱", Title: "Quick Setup", Description: "Start managing parking in minutes"},
		},
		HowItWorks: []Item{
			{Icon: "📋", Title: "1. Register Your Property", Description: "Sign up and configure your parking zones and rules in minutes"},
			{Icon: "📱", Title: "2. Residents Download App", Description: "Residents easily register their vehicles and manage visitor parking"},
			{Icon: "🔍", Title: "3. Start Monitoring", Description: "Instantly identify unauthorized vehicles and manage violations"},
		},
		WebAppBenefits: []Item{
			{Icon: "🌐", Title: "No App Store Required", Description: "Access instantly through your web browser - no downloads or updates needed"},
			{Icon: "📶", Title: "Works Offline", Description: "Continue managing parking even with poor internet connection"},
			{Icon: "⚡", Title: "Light & Fast", Description: "Uses minimal phone storage and battery compared to traditional apps"},
		},
		Platforms: []Platform{
			{
				Key:  "ios",
				Name: "iPhone / iPad",
				Icon: "🍎",
				Steps: []Instruction{
					{Icon: "⤴", Text: "Tap the Share button in Safari"},
					{Icon: "➕", Text: "Select 'Add to Home Screen'"},
				},
			},
			{
				Key:  "android",
				Name: "Android",
				Icon: "🤖",
				Steps: []Instruction{
					{Icon: "⋮", Text: "Tap the menu (⋮) in Chrome"},
					{Icon: "⬇", Text: "Select 'Add to Home Screen'"},
				},
			},
		},
		AppHost: "app.tagnpark.com",
		PricingTiers: []Tier{
			{
				Name:        "Small Property",
				Price:       "49",
				Description: "Perfect for properties under 50 units",
				Features: []string{
					"Up to 50 parking spaces",
					"Unlimited resident registrations",
					"Basic violation tracking",
					"Email support",
				},
			},
			{
				Name:        "Medium Property",
				Price:       "99",
				Description: "Ideal for properties with 50-200 units",
				Features: []string{
					"Up to 200 parking spaces",
					"Unlimited resident registrations",
					"Advanced violation management",
					"Priority email support",
					"Visitor parking management",
				},
			},
			{
				Name:        "Large Property",
				Price:       "199",
				Description: "For large communities and complexes",
				Features: []string{
					"Unlimited parking spaces",
					"Unlimited resident registrations",
					"Full violation management suite",
					"24/7 priority support",
					"Custom rules and zones",
					"Analytics dashboard",
				},
			},
		},
		PricingNote: "Need a custom plan? Contact us for enterprise pricing.",
		Features: []Item{
			{Icon: "⚙", Title: "Minimal Setup", Description: "Get your parking management system up and running in minutes, not days"},
			{Icon: "$", Title: "Cost Effective", Description: "Affordable monthly pricing that scales with your property size"},
			{Icon: "🛡", Title: "Secure & Simple", Description: "Easy-to-use system for both management and residents"},
		},
		Footer: "© 2024 Tag N Park. All rights reserved.",
	}
}
