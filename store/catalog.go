package store

import "github.com/mbolis/form-weaver/model"

// Built-in template catalog: read-only starting points, independent of the
// form lifecycle.
var templateCatalog = []model.Template{
	{
		Name:        "Contact Form",
		Description: "Simple contact form for websites.",
		Icon:        "Mail",
		Category:    "Business",
		Config: model.Draft{
			Title:       "Contact Us",
			Description: "We would love to hear from you.",
			Steps: []model.DraftStep{
				{Title: "Your Details", Description: "Let us know who you are.", Fields: []model.DraftField{
					tplField("text", "Name", true),
					tplField("text", "Email", true),
					tplField("textarea", "Message", true),
				}},
			},
		},
	},
	{
		Name:        "Job Application",
		Description: "Standard job application form.",
		Icon:        "Briefcase",
		Category:    "HR",
		Config: model.Draft{
			Title:       "Job Application",
			Description: "Apply for our open positions.",
			Steps: []model.DraftStep{
				{Title: "Personal Info", Description: "Basic information.", Fields: []model.DraftField{
					tplField("text", "Full Name", true),
					tplField("text", "Email", true),
					tplField("text", "Phone", true),
				}},
				{Title: "Experience", Description: "Tell us about your work history.", Fields: []model.DraftField{
					tplField("textarea", "Resume / Cover Letter", true),
					tplField("text", "LinkedIn Profile", false),
				}},
			},
		},
	},
	{
		Name:        "Event Registration",
		Description: "Register attendees for an event.",
		Icon:        "Calendar",
		Category:    "Events",
		Config: model.Draft{
			Title:       "Event Registration",
			Description: "Join us for our upcoming event.",
			Steps: []model.DraftStep{
				{Title: "Attendee Info", Description: "Who is coming?", Fields: []model.DraftField{
					tplField("text", "Name", true),
					tplField("text", "Email", true),
					tplField("select", "Ticket Type", true,
						tplOption("General Admission", "general"), tplOption("VIP", "vip")),
				}},
			},
		},
	},
	{
		Name:        "Client Intake",
		Description: "Collect onboarding details for a new client.",
		Icon:        "ClipboardList",
		Category:    "Business",
		Config: model.Draft{
			Title:       "Client Intake",
			Description: "Help us onboard you faster.",
			Steps: []model.DraftStep{
				{Title: "Company Details", Description: "Tell us about your business.", Fields: []model.DraftField{
					tplField("text", "Company Name", true),
					tplField("text", "Website", false),
					tplField("select", "Company Size", true,
						tplOption("1-10", "1-10"), tplOption("11-50", "11-50"), tplOption("51-200", "51-200"), tplOption("201+", "201+")),
				}},
				{Title: "Project Goals", Description: "Define your goals and timeline.", Fields: []model.DraftField{
					tplField("textarea", "Primary Goals", true),
					tplField("date", "Target Launch Date", false),
				}},
			},
		},
	},
	{
		Name:        "Product Feedback",
		Description: "Capture feature requests and usability feedback.",
		Icon:        "MessageSquare",
		Category:    "Product",
		Config: model.Draft{
			Title:       "Product Feedback",
			Description: "We value your thoughts on our product.",
			Steps: []model.DraftStep{
				{Title: "Experience", Description: "How was your experience?", Fields: []model.DraftField{
					tplField("select", "Overall Satisfaction", true,
						tplOption("Excellent", "excellent"), tplOption("Good", "good"), tplOption("Fair", "fair"), tplOption("Poor", "poor")),
					tplField("textarea", "What did you like most?", false),
				}},
				{Title: "Improvements", Description: "What can we do better?", Fields: []model.DraftField{
					tplField("textarea", "Feature Requests", false),
					tplField("checkbox", "May we contact you for follow-up?", false),
				}},
			},
		},
	},
	{
		Name:        "Event Volunteer",
		Description: "Organize volunteer availability and skills.",
		Icon:        "Users",
		Category:    "Events",
		Config: model.Draft{
			Title:       "Volunteer Sign-Up",
			Description: "Join the event team.",
			Steps: []model.DraftStep{
				{Title: "Volunteer Details", Description: "Introduce yourself.", Fields: []model.DraftField{
					tplField("text", "Full Name", true),
					tplField("text", "Email", true),
					tplField("select", "Preferred Role", true,
						tplOption("Registration", "registration"), tplOption("Logistics", "logistics"), tplOption("Guest Support", "support")),
				}},
				{Title: "Availability", Description: "Let us know when you're free.", Fields: []model.DraftField{
					tplField("checkbox", "Weekday Morning", false),
					tplField("checkbox", "Weekday Evening", false),
					tplField("checkbox", "Weekend", false),
				}},
			},
		},
	},
	{
		Name:        "Customer NPS",
		Description: "Measure loyalty and collect improvement ideas.",
		Icon:        "Star",
		Category:    "Customer Success",
		Config: model.Draft{
			Title:       "Customer NPS Survey",
			Description: "Help us improve your experience.",
			Steps: []model.DraftStep{
				{Title: "NPS", Description: "Rate your experience.", Fields: []model.DraftField{
					tplField("number", "How likely are you to recommend us? (0-10)", true),
					tplField("textarea", "What influenced your score?", false),
				}},
				{Title: "Follow-up", Description: "Tell us more.", Fields: []model.DraftField{
					tplField("select", "Primary Use Case", false,
						tplOption("Internal Operations", "ops"), tplOption("Customer Success", "cs"), tplOption("Marketing", "marketing")),
					tplField("textarea", "Anything else we should know?", false),
				}},
			},
		},
	},
	{
		Name:        "Blood Donation Intake",
		Description: "Screen blood donors and schedule appointments.",
		Icon:        "HeartPulse",
		Category:    "Healthcare",
		Config: model.Draft{
			Title:       "Blood Donation Intake",
			Description: "Confirm eligibility and schedule a donation.",
			Steps: []model.DraftStep{
				{Title: "Eligibility", Description: "Quick eligibility checks.", Fields: []model.DraftField{
					tplField("number", "Age", true),
					tplField("number", "Weight (kg)", true),
					tplField("select", "Donated in last 8 weeks?", true,
						tplOption("Yes", "yes"), tplOption("No", "no")),
				}},
				{Title: "Health History", Description: "Health background.", Fields: []model.DraftField{
					tplField("textarea", "Current medications", false),
					tplField("select", "Any recent vaccinations?", false,
						tplOption("No", "no"), tplOption("Within 2 weeks", "2w"), tplOption("More than 2 weeks ago", "more_2w")),
				}},
				{Title: "Schedule", Description: "Choose a slot.", Fields: []model.DraftField{
					tplField("date", "Preferred date", true),
					tplField("select", "Preferred time", true,
						tplOption("Morning", "morning"), tplOption("Afternoon", "afternoon"), tplOption("Evening", "evening")),
				}},
			},
		},
	},
	{
		Name:        "Medical Intake",
		Description: "Collect patient details and symptoms.",
		Icon:        "Stethoscope",
		Category:    "Healthcare",
		Config: model.Draft{
			Title:       "Patient Intake",
			Description: "Provide medical history and appointment details.",
			Steps: []model.DraftStep{
				{Title: "Patient Details", Description: "Basic information.", Fields: []model.DraftField{
					tplField("text", "Full Name", true),
					tplField("date", "Date of Birth", true),
					tplField("text", "Phone", true),
					tplField("text", "Email", false),
				}},
				{Title: "Health History", Description: "Current symptoms.", Fields: []model.DraftField{
					tplField("textarea", "Reason for visit", true),
					tplField("textarea", "Current medications", false),
					tplField("select", "Allergies?", false,
						tplOption("No", "no"), tplOption("Yes", "yes")),
				}},
				{Title: "Appointment", Description: "Scheduling preferences.", Fields: []model.DraftField{
					tplField("date", "Preferred date", true),
					tplField("select", "Preferred time", true,
						tplOption("Morning", "morning"), tplOption("Afternoon", "afternoon"), tplOption("Evening", "evening")),
				}},
			},
		},
	},
	{
		Name:        "Course Registration",
		Description: "Enroll learners and capture goals.",
		Icon:        "BookOpen",
		Category:    "Education",
		Config: model.Draft{
			Title:       "Course Registration",
			Description: "Register for a training program.",
			Steps: []model.DraftStep{
				{Title: "Student Info", Description: "Tell us about you.", Fields: []model.DraftField{
					tplField("text", "Full Name", true),
					tplField("text", "Email", true),
					tplField("text", "Phone", false),
				}},
				{Title: "Program Details", Description: "Pick a track.", Fields: []model.DraftField{
					tplField("select", "Track", true,
						tplOption("Beginner", "beginner"), tplOption("Intermediate", "intermediate"), tplOption("Advanced", "advanced")),
					tplField("select", "Schedule", false,
						tplOption("Weekdays", "weekdays"), tplOption("Weekends", "weekends"), tplOption("Evenings", "evenings")),
				}},
			},
		},
	},
	{
		Name:        "Support Ticket",
		Description: "Capture product issues and support requests.",
		Icon:        "LifeBuoy",
		Category:    "Support",
		Config: model.Draft{
			Title:       "Support Ticket",
			Description: "Describe the issue so we can help quickly.",
			Steps: []model.DraftStep{
				{Title: "Contact", Description: "How can we reach you?", Fields: []model.DraftField{
					tplField("text", "Name", true),
					tplField("text", "Email", true),
					tplField("text", "Company", false),
				}},
				{Title: "Issue Details", Description: "Problem details.", Fields: []model.DraftField{
					tplField("text", "Product/Module", true),
					tplField("select", "Severity", true,
						tplOption("Critical", "critical"), tplOption("High", "high"), tplOption("Medium", "medium"), tplOption("Low", "low")),
					tplField("textarea", "Steps to reproduce", true),
				}},
			},
		},
	},
}

func tplField(fieldType, label string, required bool, options ...model.Option) model.DraftField {
	return model.DraftField{
		Type:     fieldType,
		Label:    label,
		Required: required,
		Options:  options,
	}
}

func tplOption(label, value string) model.Option {
	return model.Option{Label: label, Value: value}
}
