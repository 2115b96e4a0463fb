// Package demo holds the fixtures the product ships for demo mode.
package demo

import (
	"time"

	"github.com/Abhinav6284/Planora/internal/model"
)

func date(y int, m time.Month, d int) *model.Date {
	dt := model.NewDate(y, m, d)
	return &dt
}

func created(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func User() model.User {
	return model.User{Name: "Demo User", Email: "demo@planora.com"}
}

func Tasks() []model.Task {
	return []model.Task{
		{ID: 1, Title: "Update user interface", Description: "Modernize the dashboard UI with new components", Status: model.StatusInProgress, Priority: model.PriorityHigh, DueDate: date(2025, time.September, 20), CreatedAt: created(2025, time.September, 15)},
		{ID: 2, Title: "Review code changes", Description: "Review pull requests from team members", Status: model.StatusTodo, Priority: model.PriorityMedium, DueDate: date(2025, time.September, 21), CreatedAt: created(2025, time.September, 16)},
		{ID: 3, Title: "Deploy to production", Description: "Deploy latest version to production servers", Status: model.StatusCompleted, Priority: model.PriorityHigh, DueDate: date(2025, time.September, 19), CreatedAt: created(2025, time.September, 14)},
		{ID: 4, Title: "Update documentation", Description: "Update API documentation with new endpoints", Status: model.StatusTodo, Priority: model.PriorityLow, DueDate: date(2025, time.September, 22), CreatedAt: created(2025, time.September, 17)},
		{ID: 5, Title: "Client meeting preparation", Description: "Prepare presentation for client demo", Status: model.StatusInProgress, Priority: model.PriorityHigh, DueDate: date(2025, time.September, 20), CreatedAt: created(2025, time.September, 18)},
		{ID: 6, Title: "Database optimization", Description: "Optimize database queries for better performance", Status: model.StatusTodo, Priority: model.PriorityMedium, DueDate: date(2025, time.September, 23), CreatedAt: created(2025, time.September, 18)},
		{ID: 7, Title: "Security audit", Description: "Conduct security audit of the application", Status: model.StatusTodo, Priority: model.PriorityHigh, DueDate: date(2025, time.September, 25), CreatedAt: created(2025, time.September, 19)},
		{ID: 8, Title: "User feedback analysis", Description: "Analyze user feedback and create improvement plan", Status: model.StatusCompleted, Priority: model.PriorityMedium, DueDate: date(2025, time.September, 18), CreatedAt: created(2025, time.September, 13)},
	}
}

func Projects() []model.Project {
	return []model.Project{
		{ID: 1, Name: "Planora Dashboard", Description: "Professional project management dashboard with modern UI/UX", TaskCount: 8, CreatedAt: created(2025, time.September, 10)},
		{ID: 2, Name: "Mobile App Development", Description: "React Native mobile application for iOS and Android", TaskCount: 12, CreatedAt: created(2025, time.September, 5)},
		{ID: 3, Name: "API Integration", Description: "RESTful API integration with third-party services", TaskCount: 4, CreatedAt: created(2025, time.September, 12)},
		{ID: 4, Name: "Database Migration", Description: "Migration from MySQL to PostgreSQL for better performance", TaskCount: 6, CreatedAt: created(2025, time.September, 8)},
		{ID: 5, Name: "Security Audit", Description: "Comprehensive security audit and penetration testing", TaskCount: 3, CreatedAt: created(2025, time.September, 15)},
	}
}

func Notes() []model.Note {
	return []model.Note{
		{
			ID:        1,
			Title:     "Project Meeting Notes",
			Content:   "Discussed project timeline and deliverables. Key points:\n\n• Launch date: October 15th\n• Team size: 5 developers\n• Budget approved: $50,000\n• Weekly status meetings on Mondays at 10 AM\n• Use Agile methodology with 2-week sprints\n• Primary stakeholders: John (PM), Sarah (Designer), Mike (CTO)\n\nAction Items:\n- Set up project repository\n- Create initial wireframes\n- Schedule kick-off meeting",
			CreatedAt: created(2025, time.September, 18),
		},
		{
			ID:        2,
			Title:     "Technical Architecture",
			Content:   "System architecture decisions:\n\n**Frontend:**\n- React 18 with TypeScript\n- Tailwind CSS for styling\n- React Router for navigation\n- Zustand for state management\n\n**Backend:**\n- Node.js with Express framework\n- PostgreSQL database\n- JWT authentication\n- REST API architecture\n\n**DevOps:**\n- Docker containerization\n- AWS deployment (EC2 + RDS)\n- GitHub Actions for CI/CD\n- Nginx reverse proxy",
			CreatedAt: created(2025, time.September, 17),
		},
		{
			ID:        3,
			Title:     "Client Requirements",
			Content:   "Client specific requirements gathered from initial consultation:\n\n**Core Features:**\n✓ Mobile responsive design\n✓ Dark/light theme toggle\n✓ Multi-language support (EN, ES, FR)\n✓ Advanced analytics dashboard\n✓ Real-time notifications\n✓ Export functionality (PDF, Excel)\n\n**Performance:**\n- Page load time < 3 seconds\n- Support for 10,000+ concurrent users\n- 99.9% uptime requirement\n- Automated backups",
			CreatedAt: created(2025, time.September, 16),
		},
		{
			ID:        4,
			Title:     "Code Review Guidelines",
			Content:   "Development standards and review process:\n\n**Review Requirements:**\n• All PRs require 2 approvals minimum\n• Unit tests required for new features\n• Code coverage must be > 80%\n• ESLint and Prettier enforcement\n• Documentation updates mandatory\n\n**Code Quality:**\n- Meaningful variable names\n- Function complexity < 10\n- DRY principles\n- SOLID principles\n- Proper error handling",
			CreatedAt: created(2025, time.September, 15),
		},
		{
			ID:        5,
			Title:     "Marketing Strategy",
			Content:   "Product launch marketing strategy:\n\n**Phase 1: Pre-Launch (4 weeks)**\n- Build landing page with email signup\n- Create teaser content for social media\n- Reach out to industry influencers\n- Develop press kit and media assets\n\n**Phase 2: Launch Week**\n- Product Hunt launch\n- Social media campaign rollout\n- Email announcement to subscribers\n- Press release distribution\n- Partner announcements",
			CreatedAt: created(2025, time.September, 14),
		},
	}
}
