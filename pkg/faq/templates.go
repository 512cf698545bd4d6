package faq

// questionTemplate generates a canned FAQ when enough of its keywords show
// up in the content.
type questionTemplate struct {
	category string
	question string
	keywords []string
}

var questionTemplates = []questionTemplate{
	{
		category: "installation",
		question: "How do I install this?",
		keywords: []string{"install", "installation", "setup", "composer", "npm"},
	},
	{
		category: "configuration",
		question: "How do I configure this?",
		keywords: []string{"config", "configuration", "settings", "environment"},
	},
	{
		category: "troubleshooting",
		question: "What are common issues and solutions?",
		keywords: []string{"error", "problem", "issue", "troubleshoot", "fix"},
	},
	{
		category: "best_practices",
		question: "What are the best practices?",
		keywords: []string{"best practice", "recommend", "should", "avoid"},
	},
	{
		category: "performance",
		question: "How can I improve performance?",
		keywords: []string{"performance", "optimization", "speed", "cache"},
	},
	{
		category: "security",
		question: "How do I secure this implementation?",
		keywords: []string{"security", "secure", "protection", "vulnerability"},
	},
}
