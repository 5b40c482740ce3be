package sections

import "autobot_site_go/services/reveal"

// Section ids double as navigation anchors.
const (
	HeroID        = "home"
	ServicesID    = "services"
	AboutID       = "about"
	CaseStudiesID = "case-studies"
	FAQID         = "faq"
	ContactID     = "contact"
)

// revealOptions are shared by every landing section.
var revealOptions = reveal.Options{Threshold: 0.1}

type Stat struct {
	Value string
	Label string
}

type Service struct {
	Icon        string
	Title       string
	Description string
}

type CaseStudy struct {
	Client   string
	Industry string
	Metric   string
	Summary  string
}

type Question struct {
	Question string
	Answer   string
}

type NavItem struct {
	Label string
	Href  string
}

var HeroStats = []Stat{
	{Value: "95%", Label: "Lead Generation ROI"},
	{Value: "3x", Label: "Workflow Efficiency"},
	{Value: "24/7", Label: "AI Agent Availability"},
}

var Services = []Service{
	{Icon: "bot", Title: "Custom AI Agents", Description: "Personalized AI agents designed for your business needs, automating customer interactions and internal processes."},
	{Icon: "target", Title: "Automated Lead Generation", Description: "Intelligent systems that identify, engage, and nurture high-quality leads without manual intervention."},
	{Icon: "plug", Title: "CEM Integration", Description: "Seamless integration with your existing Customer Experience Management systems for unified automation."},
	{Icon: "chart", Title: "Process Optimization", Description: "Data-driven analysis and AI-powered recommendations to streamline your business operations."},
	{Icon: "rocket", Title: "Rapid Deployment", Description: "Quick implementation of AI solutions with minimal disruption to your existing workflows."},
}

var AboutPoints = []string{
	"Automation engineers and data scientists with enterprise delivery experience",
	"Vendor-neutral: we integrate with the CRM and CEM stack you already run",
	"Every engagement starts with measurable goals and ends with a handover",
}

var CaseStudies = []CaseStudy{
	{Client: "Northwind Logistics", Industry: "Logistics", Metric: "62% faster quote turnaround", Summary: "An AI intake agent qualifies inbound freight requests and drafts quotes for review."},
	{Client: "Brightline Dental Group", Industry: "Healthcare", Metric: "3x booked consultations", Summary: "Automated follow-up sequences re-engage lapsed patients across twelve clinics."},
	{Client: "Helix SaaS", Industry: "Software", Metric: "40 hours saved per week", Summary: "Support triage routes and answers tier-one tickets straight from the CEM."},
}

var FAQs = []Question{
	{Question: "How long does a typical deployment take?", Answer: "Most agents go live within four to six weeks of the strategy call, including integration and testing."},
	{Question: "Do we need to replace our existing tools?", Answer: "No. We connect to your current CRM, helpdesk and CEM platforms through their APIs."},
	{Question: "How is our data handled?", Answer: "Data stays in your accounts wherever possible and every integration follows least-privilege access."},
	{Question: "What does the strategy call cost?", Answer: "Nothing. The consultation and the automation roadmap are free and carry no obligation."},
}

var ContactHighlights = []string{
	"Comprehensive business assessment",
	"Custom AI automation roadmap",
	"ROI projections and implementation timeline",
	"No-obligation consultation",
}

var NavItems = []NavItem{
	{Label: "Services", Href: "#" + ServicesID},
	{Label: "About", Href: "#" + AboutID},
	{Label: "Case Studies", Href: "#" + CaseStudiesID},
	{Label: "FAQ", Href: "#" + FAQID},
}

var FooterLinks = []NavItem{
	{Label: "Services", Href: "#" + ServicesID},
	{Label: "About Us", Href: "#" + AboutID},
	{Label: "Case Studies", Href: "#" + CaseStudiesID},
	{Label: "FAQ", Href: "#" + FAQID},
	{Label: "Contact", Href: "#" + ContactID},
}

var LegalLinks = []NavItem{
	{Label: "Privacy Policy", Href: "#privacy"},
	{Label: "Terms of Service", Href: "#terms"},
	{Label: "Cookies", Href: "#cookies"},
}

// Landing builds a fresh, unmounted landing page. Every call returns new
// sections so concurrent renders never share observers.
func Landing() *Page {
	return &Page{Sections: []*Section{
		{
			ID:         HeroID,
			Title:      "Transform Your Business with AI-Powered Automation",
			Subtitle:   "Automate leads, integrate your CEM, and deploy custom AI agents to accelerate growth and eliminate repetitive tasks.",
			Options:    revealOptions,
			Transition: FadeUp,
		},
		{
			ID:         ServicesID,
			Title:      "AI-Powered Solutions for Modern Business",
			Subtitle:   "Our suite of cutting-edge AI tools automates your workflows, enhances customer experiences, and drives growth.",
			Options:    revealOptions,
			Transition: FadeUp,
		},
		{
			ID:         AboutID,
			Title:      "Built by Automation Specialists",
			Subtitle:   "We design, build and run AI systems that remove repetitive work from sales, support and operations teams.",
			Options:    revealOptions,
			Transition: FadeUp,
		},
		{
			ID:         CaseStudiesID,
			Title:      "Results Our Clients Can Measure",
			Subtitle:   "A few of the teams already running on AutoBot AI automation.",
			Options:    revealOptions,
			Transition: FadeUp,
		},
		{
			ID:         FAQID,
			Title:      "Frequently Asked Questions",
			Options:    revealOptions,
			Transition: FadeIn,
		},
		{
			ID:         ContactID,
			Title:      "Ready to Transform Your Business?",
			Subtitle:   "Schedule a strategy call with our AI automation experts and discover how our tailored solutions can drive efficiency and growth.",
			Options:    revealOptions,
			Transition: FadeUp,
		},
	}}
}

// Contact details shown in the footer and the contact section
var ContactInfo = struct {
	Address  []string
	Phone    string
	PhoneURI string
	Email    string
	Hours    string
}{
	Address:  []string{"123 Innovation Way", "Tech District, NY 10001"},
	Phone:    "+1 (234) 567-890",
	PhoneURI: "tel:+1234567890",
	Email:    "info@autobotai.com",
	Hours:    "Monday to Friday, 9am to 6pm EST",
}

// Tagline is the one-line company description
const Tagline = "Transforming businesses through intelligent automation and AI-powered solutions."
