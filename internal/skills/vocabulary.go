// Package skills holds the static skill vocabulary and the detector that scans text for it.
package skills

// vocabulary is the fixed list of recognized domain terms. Order matters:
// detection reports hits in this order.
var vocabulary = []string{
	// languages
	"python", "java", "javascript", "c++", "c#", "ruby", "php", "swift", "kotlin",
	"html", "css", "sql", "nosql", "mongodb", "mysql", "postgresql", "oracle",
	// frameworks
	"react", "angular", "vue", "node", "express", "django", "flask", "spring",
	// platforms and delivery
	"docker", "kubernetes", "aws", "azure", "gcp", "devops", "ci/cd", "jenkins",
	"git", "github", "gitlab", "bitbucket", "agile", "scrum", "kanban",
	"machine learning", "artificial intelligence", "data science", "big data",
	"rest api", "graphql", "microservices", "testing", "junit", "selenium",
	"linux", "unix", "windows", "macos", "android", "ios", "mobile",
	"frontend", "backend", "fullstack", "web development", "mobile development",
	"database", "networking", "security", "cloud", "distributed systems",
	"algorithms", "data structures", "object-oriented", "functional programming",
	"software architecture", "design patterns", "mvc", "mvvm", "rest", "soap",
	"json", "xml", "yaml", "markdown", "documentation", "jira", "confluence",
	// soft skills
	"communication", "teamwork", "problem-solving", "analytical", "critical thinking",
	"leadership", "project management", "time management", "debugging",
	"performance optimization", "scalability", "reliability", "maintainability",
	"code review", "pair programming", "mentoring", "continuous learning",
	// domain specific
	"snmp", "dcim", "networking configuration", "embedded systems", "iot",
}

// Vocabulary returns a copy of the recognized skill terms in detection order.
func Vocabulary() []string {
	out := make([]string, len(vocabulary))
	copy(out, vocabulary)
	return out
}
