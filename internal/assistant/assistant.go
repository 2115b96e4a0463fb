// Package assistant is the canned project generator and chat responder the
// product ships in demo mode. Output is picked with an injected rand source
// so callers can seed it.
package assistant

import (
	"math/rand"
	"strings"
	"unicode"
)

type archetype struct {
	name        string
	description string
}

var archetypes = []archetype{
	{
		name:        "E-commerce Platform",
		description: "Comprehensive e-commerce solution with user authentication, product catalog, shopping cart, payment processing, order management, and admin dashboard. Features include product search, filtering, reviews, wishlist functionality, and mobile-responsive design.",
	},
	{
		name:        "Social Media Analytics Dashboard",
		description: "Advanced analytics platform for social media management with real-time data visualization, engagement metrics, audience insights, content scheduling, performance tracking, and automated reporting capabilities.",
	},
	{
		name:        "Learning Management System",
		description: "Educational platform with course creation tools, student progress tracking, interactive assignments, video streaming, discussion forums, grade management, and certification generation.",
	},
	{
		name:        "Healthcare Management System",
		description: "Digital health solution with patient records management, appointment scheduling, telemedicine integration, prescription tracking, billing system, and HIPAA-compliant data security.",
	},
	{
		name:        "Project Collaboration Tool",
		description: "Team productivity platform with task management, file sharing, real-time collaboration, video conferencing integration, time tracking, project templates, and progress reporting.",
	},
}

const mobileSuffix = " Optimized for mobile devices with native iOS and Android applications, offline functionality, push notifications, and seamless cross-platform synchronization."

const aiSuffix = " Enhanced with artificial intelligence features including predictive analytics, natural language processing, automated insights, smart recommendations, and machine learning algorithms."

var replies = []string{
	"I can help you create tasks, manage projects, and organize your workflow. What would you like to do?",
	"Great question! For better task management, try organizing tasks by priority and setting realistic deadlines.",
	"I'd suggest breaking down large projects into smaller, manageable tasks. This makes tracking progress easier.",
	"You can use the search functionality to quickly find specific tasks or projects. Try the search bar at the top!",
	"Consider using the Analytics section to track your productivity trends and identify areas for improvement.",
	"Pro tip: Use keyboard shortcuts like Ctrl+N to quickly create new tasks!",
	"The Calendar view helps you visualize your deadlines and plan your schedule effectively.",
	"For better organization, try creating projects first, then add related tasks to keep everything structured.",
}

type Generator struct {
	r *rand.Rand
}

func New(seed int64) *Generator {
	return &Generator{r: rand.New(rand.NewSource(seed))}
}

type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GenerateProject picks an archetype and customizes it from prompt keywords:
// "mobile"/"app" and "ai"/"machine learning" swap in themed variants, and a
// long enough prompt donates its first substantial word as a name prefix.
func (g *Generator) GenerateProject(prompt string) Project {
	base := archetypes[g.r.Intn(len(archetypes))]
	lower := strings.ToLower(prompt)

	p := Project{Name: base.name, Description: base.description}
	switch {
	case strings.Contains(lower, "mobile") || strings.Contains(lower, "app"):
		p.Name = "Mobile " + base.name
		p.Description = base.description + mobileSuffix
	case strings.Contains(lower, "ai") || strings.Contains(lower, "machine learning"):
		p.Name = "AI-Powered " + base.name
		p.Description = base.description + aiSuffix
	}

	if len(prompt) > 20 {
		if kw := firstKeyword(lower); kw != "" {
			p.Name = capitalize(kw) + " " + p.Name
		}
	}
	return p
}

// Reply answers a chat message with one of the canned productivity tips.
func (g *Generator) Reply(message string) string {
	_ = message
	return replies[g.r.Intn(len(replies))]
}

// firstKeyword returns the first run of four or more word characters.
func firstKeyword(s string) string {
	start := -1
	for i, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			if i-start >= 4 {
				return s[start:i]
			}
			start = -1
		}
	}
	if start >= 0 && len(s)-start >= 4 {
		return s[start:]
	}
	return ""
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
