// Package content holds the copy and catalog data rendered by the site.
package content

import "image/color"

const (
	CompanyName  = "Ping's Lab"
	ContactEmail = "thepingslab@gmail.com"
	// Internship applications are collected by an external form.
	ApplicationFormURL = "https://forms.gle/sroCVhTueLJgpU3N6"
)

type NavLink struct {
	Name string
	Path string
}

// NavLinks are the routes shown in the top navigation, in order.
var NavLinks = []NavLink{
	{"Home", "/"},
	{"About", "/about"},
	{"Services", "/services"},
	{"Products", "/products"},
	{"Careers", "/careers"},
	{"Contact", "/contact"},
}

type SocialLink struct {
	Icon  string
	Href  string
	Label string
}

var SocialLinks = []SocialLink{
	{"lucide--github", "https://github.com/Pings-Lab", "GitHub"},
	{"lucide--linkedin", "https://www.linkedin.com/company/pings-lab", "LinkedIn"},
	{"lucide--youtube", "https://youtube.com/@pingslab", "YouTube"},
	{"lucide--mail", "mailto:" + ContactEmail, "Email"},
}

type FooterGroup struct {
	Title string
	Links []NavLink
}

var FooterGroups = []FooterGroup{
	{"Company", []NavLink{{"About", "/about"}, {"Careers", "/careers"}, {"Contact", "/contact"}}},
	{"Services", []NavLink{{"Web Development", "/services"}, {"App Development", "/services"}, {"Portfolio Design", "/services"}}},
	{"Products", []NavLink{{"Our Products", "/products"}}},
}

type Highlight struct {
	Icon        string
	Title       string
	Description string
}

// Features are the home page "why us" cards.
var Features = []Highlight{
	{"lucide--code-2", "Clean Code", "We write maintainable, scalable code that stands the test of time."},
	{"lucide--git-branch", "Open Source", "Contributing to and leveraging the power of open source ecosystem."},
	{"lucide--zap", "Rapid Prototyping", "From idea to MVP in record time without compromising quality."},
	{"lucide--lightbulb", "Innovation First", "Embracing cutting-edge technologies to solve real problems."},
}

type Stat struct {
	Value string
	Label string
}

var Stats = []Stat{
	{"50+", "Projects Delivered"},
	{"98%", "Client Satisfaction"},
	{"24/7", "Support Available"},
	{"5+", "Years Experience"},
}

// Values are shown on the about page.
var Values = []Highlight{
	{"lucide--target", "Mission-Driven", "Every line of code we write serves a purpose. We're focused on creating impactful solutions that make a real difference."},
	{"lucide--rocket", "Innovation Hub", "We're constantly experimenting with new technologies and methodologies to stay ahead of the curve."},
	{"lucide--shield-check", "Quality First", "Clean code, thorough testing, and robust architecture are non-negotiables in everything we build."},
}

type Service struct {
	Icon        string
	Title       string
	Description string
	Features    []string
	Gradient    string
}

var Services = []Service{
	{
		Icon:        "lucide--bot-message-square",
		Title:       "AI Agents and Chatbots",
		Description: "Stand out with product and service oriented chatbots. Ai agents and automation setup for business workflow.",
		Features:    []string{"Custom database training", "Web and App integration", "Brand-aligned chatbots", "Automation setup", "Long term support"},
		Gradient:    "from-pink-500 to-rose-500",
	},
	{
		Icon:        "lucide--globe",
		Title:       "Web Development",
		Description: "From landing pages to complex web applications, we build fast, secure, and scalable solutions using modern technologies.",
		Features:    []string{"UI/UX Expertise", "Full-stack development", "API integrations", "Performance optimization", "Cloud deployment"},
		Gradient:    "from-cyan-500 to-blue-500",
	},
	{
		Icon:        "lucide--smartphone",
		Title:       "App Development",
		Description: "Cross-platform mobile applications that deliver native-like experiences. Built with React Native and Flutter.",
		Features:    []string{"iOS & Android apps", "Cross-platform development", "Native performance", "App Store optimization", "Long-term support"},
		Gradient:    "from-violet-500 to-purple-500",
	},
}

type ProcessStep struct {
	Step        string
	Title       string
	Description string
}

var Process = []ProcessStep{
	{"01", "Discovery", "Understanding your vision and requirements"},
	{"02", "Design", "Creating wireframes and prototypes"},
	{"03", "Development", "Building with clean, maintainable code"},
	{"04", "Delivery", "Testing, deployment, and ongoing support"},
}

type Internship struct {
	Icon        string
	Title       string
	Description string
	Skills      []string
	Type        string
	Duration    string
}

var Internships = []Internship{
	{"lucide--code", "Web Fullstack Intern", "Work with React, TypeScript, and modern frontend technologies to build beautiful user interfaces.", []string{"MERN", "MEAN", "Tailwind CSS", "Django", "php", "springboot"}, "Remote", "3-6 months"},
	{"lucide--database", "Programming and DSA", "Build scalable APIs and server-side applications using Node.js, Python, or Go.", []string{"C++", "Python", "Java"}, "Remote", "3-6 months"},
	{"lucide--palette", "UI/UX Design Intern", "Create intuitive and visually stunning designs for web and mobile applications.", []string{"Figma", "Prototyping", "User Research"}, "Remote", "3-6 months"},
	{"lucide--smartphone", "Mobile App Development Intern", "Develop cross-platform mobile applications using React Native or Flutter.", []string{"React Native", "Flutter", "Mobile UI"}, "Remote", "3-6 months"},
}

var InternshipBenefits = []string{
	"Mentorship from experienced developers",
	"Flexible working hours",
	"Real-world project experience",
	"Certificate of completion",
	"Letter of recommendation",
	"Potential for full-time offer",
}

type ContactInfo struct {
	Icon  string
	Title string
	Value string
	Href  string
}

var ContactDetails = []ContactInfo{
	{"lucide--mail", "Email", ContactEmail, "mailto:" + ContactEmail},
	{"lucide--map-pin", "Location", "Remote-First Team", ""},
	{"lucide--clock", "Response Time", "Within 24 hours", ""},
}

// Product is an in-development SaaS product visitors can ask to hear about.
type Product struct {
	Slug        string
	Name        string
	Description string
	Gradient    string
	From, To    color.RGBA
}

var Products = []Product{
	{
		Slug:        "pings-lms",
		Name:        "Ping's LMS",
		Description: "Learning management system for educational institutions. Simplify course management, student tracking, and online learning experience.",
		Gradient:    "from-cyan-500 to-blue-500",
		From:        color.RGBA{0x06, 0xb6, 0xd4, 0xff},
		To:          color.RGBA{0x3b, 0x82, 0xf6, 0xff},
	},
	{
		Slug:        "stunning-resume",
		Name:        "Stunning Resume",
		Description: "Create a stunning resume in minutes. Customize your skills, experience, and achievements to highlight your professional profile.",
		Gradient:    "from-violet-500 to-purple-500",
		From:        color.RGBA{0x8b, 0x5c, 0xf6, 0xff},
		To:          color.RGBA{0xa8, 0x55, 0xf7, 0xff},
	},
	{
		Slug:        "portfolio-fox",
		Name:        "Portfolio Fox",
		Description: "Personal portfolio website for freelancers and entrepreneurs. Showcase your work, skills, and contact details for potential clients and collaborators.",
		Gradient:    "from-pink-500 to-rose-500",
		From:        color.RGBA{0xec, 0x48, 0x99, 0xff},
		To:          color.RGBA{0xf4, 0x3f, 0x5e, 0xff},
	},
	{
		Slug:        "web-helm",
		Name:        "Web Helm",
		Description: "Dashboard for web developers. Manage database connections, CI/CD pipelines, and monitoring tools for efficient project management.",
		Gradient:    "from-amber-500 to-orange-500",
		From:        color.RGBA{0xf5, 0x9e, 0x0b, 0xff},
		To:          color.RGBA{0xf9, 0x73, 0x16, 0xff},
	},
}

// ProductBySlug finds a product by its URL slug.
func ProductBySlug(slug string) (Product, bool) {
	for _, p := range Products {
		if p.Slug == slug {
			return p, true
		}
	}
	return Product{}, false
}

// ProductByName finds a product by its display name.
func ProductByName(name string) (Product, bool) {
	for _, p := range Products {
		if p.Name == name {
			return p, true
		}
	}
	return Product{}, false
}
