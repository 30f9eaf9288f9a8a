package ai

import (
	"strings"

	"github.com/mbolis/form-weaver/model"
)

// The blueprint library is a rule-based classifier: an ordered list of
// (keyword predicate, draft builder) pairs evaluated first-match-wins. It
// serves whenever the external generator is unreachable, errors, returns
// garbage or fails the quality gate.

type blueprintRule struct {
	match func(prompt string) bool
	build func(labelStyle string) model.Draft
}

var blueprintRules = []blueprintRule{
	{
		match: func(p string) bool {
			return strings.Contains(p, "blood") && (strings.Contains(p, "donation") || strings.Contains(p, "donor"))
		},
		build: bloodDonationBlueprint,
	},
	{match: anyOf("job", "application", "resume", "candidate"), build: jobApplicationBlueprint},
	{match: anyOf("event", "registration", "conference", "webinar"), build: eventRegistrationBlueprint},
	{match: anyOf("feedback", "survey", "satisfaction", "nps"), build: customerFeedbackBlueprint},
	{match: anyOf("medical", "clinic", "patient", "intake"), build: patientIntakeBlueprint},
	{match: anyOf("bug", "issue", "support", "ticket"), build: supportTicketBlueprint},
	{match: anyOf("course", "training", "student"), build: courseRegistrationBlueprint},
	{match: anyOf("rental", "lease", "apartment", "tenant"), build: rentalApplicationBlueprint},
}

// Blueprint selects a fixed hand-authored draft for the prompt. With a
// "detailed" complexity hint and no keyword match, a generic three-step
// draft is produced; otherwise the second return is false and the caller
// must synthesize a minimal draft itself.
func Blueprint(prompt, complexity, tone string) (model.Draft, bool) {
	p := strings.ToLower(prompt)
	style := labelStyle(tone)

	for _, rule := range blueprintRules {
		if rule.match(p) {
			return rule.build(style), true
		}
	}

	if complexity == "detailed" {
		return detailedGenericDraft(prompt, style), true
	}
	return model.Draft{}, false
}

func anyOf(words ...string) func(string) bool {
	return func(p string) bool {
		for _, w := range words {
			if strings.Contains(p, w) {
				return true
			}
		}
		return false
	}
}

func labelStyle(tone string) string {
	switch tone {
	case "friendly":
		return "Please share"
	case "formal":
		return "Kindly provide"
	default:
		return "Provide"
	}
}

func bloodDonationBlueprint(style string) model.Draft {
	return model.Draft{
		Title:       "Blood Donation Intake",
		Description: "Screen donors and collect eligibility details before scheduling.",
		Steps: []model.DraftStep{
			{Title: "Eligibility", Description: "Confirm eligibility basics.", Fields: []model.DraftField{
				field("number", "Age", "e.g. 24", true),
				field("number", "Weight (kg)", "e.g. 65", true),
				field("select", "Have you donated blood in the last 8 weeks?", "", true,
					option("Yes", "yes"), option("No", "no")),
				field("select", "Are you feeling healthy today?", "", true,
					option("Yes", "yes"), option("No", "no")),
			}},
			{Title: "Health History", Description: "Help us ensure a safe donation.", Fields: []model.DraftField{
				field("checkbox", "Do you have any current medications?", "", false),
				field("textarea", "List any chronic conditions or allergies", "", false),
				field("select", "Have you had a recent vaccination?", "", false,
					option("No", "no"), option("Within 2 weeks", "2w"), option("More than 2 weeks ago", "more_2w")),
			}},
			{Title: "Donation Details", Description: "Plan your donation.", Fields: []model.DraftField{
				field("select", "Blood type (if known)", "", false,
					option("A+", "a_pos"), option("A-", "a_neg"), option("B+", "b_pos"), option("B-", "b_neg"),
					option("AB+", "ab_pos"), option("AB-", "ab_neg"), option("O+", "o_pos"), option("O-", "o_neg")),
				field("date", "Preferred donation date", "", true),
				field("select", "Preferred time slot", "", true,
					option("Morning", "morning"), option("Afternoon", "afternoon"), option("Evening", "evening")),
			}},
			{Title: "Contact & Consent", Description: "We will confirm your appointment.", Fields: []model.DraftField{
				field("text", style+" your full name", "", true),
				field("text", style+" your email", "", true),
				field("text", "Phone number", "", true),
				field("checkbox", "I confirm the above information is accurate.", "", true),
			}},
		},
	}
}

func jobApplicationBlueprint(style string) model.Draft {
	return model.Draft{
		Title:       "Job Application",
		Description: "Collect candidate details, experience, and availability.",
		Steps: []model.DraftStep{
			{Title: "Personal Details", Description: "Basic contact information.", Fields: []model.DraftField{
				field("text", "Full name", "", true),
				field("text", "Email", "", true),
				field("text", "Phone number", "", true),
				field("text", "Current location", "", false),
			}},
			{Title: "Experience", Description: "Professional background.", Fields: []model.DraftField{
				field("textarea", "Summary of relevant experience", "", true),
				field("text", "Primary role/title", "", true),
				field("text", "LinkedIn or portfolio URL", "", false),
			}},
			{Title: "Availability", Description: "Logistics and expectations.", Fields: []model.DraftField{
				field("select", "Notice period", "", true,
					option("Immediate", "immediate"), option("2 weeks", "2w"), option("1 month", "1m"), option("Other", "other")),
				field("select", "Preferred work model", "", false,
					option("On-site", "onsite"), option("Hybrid", "hybrid"), option("Remote", "remote")),
				field("text", "Salary expectations", "", false),
			}},
		},
	}
}

func eventRegistrationBlueprint(style string) model.Draft {
	return model.Draft{
		Title:       "Event Registration",
		Description: "Register attendees and capture preferences.",
		Steps: []model.DraftStep{
			{Title: "Attendee Info", Description: "Who is attending?", Fields: []model.DraftField{
				field("text", "Full name", "", true),
				field("text", "Email", "", true),
				field("text", "Organization", "", false),
			}},
			{Title: "Ticket & Preferences", Description: "Choose your ticket and preferences.", Fields: []model.DraftField{
				field("select", "Ticket type", "", true,
					option("General Admission", "general"), option("VIP", "vip"), option("Student", "student")),
				field("select", "Session interest", "", false,
					option("Keynote", "keynote"), option("Workshop", "workshop"), option("Networking", "networking")),
				field("checkbox", "I want to receive event updates", "", false),
			}},
			{Title: "Logistics", Description: "Help us plan your experience.", Fields: []model.DraftField{
				field("select", "Dietary preference", "", false,
					option("None", "none"), option("Vegetarian", "veg"), option("Vegan", "vegan"), option("Halal", "halal")),
				field("textarea", "Accessibility needs", "", false),
				field("text", "Emergency contact", "", false),
			}},
		},
	}
}

func customerFeedbackBlueprint(style string) model.Draft {
	return model.Draft{
		Title:       "Customer Feedback",
		Description: "Gather structured feedback and improvement ideas.",
		Steps: []model.DraftStep{
			{Title: "Experience", Description: "Tell us how it went.", Fields: []model.DraftField{
				field("select", "Overall satisfaction", "", true,
					option("Excellent", "excellent"), option("Good", "good"), option("Okay", "ok"), option("Poor", "poor")),
				field("number", "Likelihood to recommend (0-10)", "0-10", true),
				field("textarea", "What worked well?", "", false),
			}},
			{Title: "Improvements", Description: "Help us improve.", Fields: []model.DraftField{
				field("textarea", "What should we improve?", "", false),
				field("select", "Most important improvement area", "", false,
					option("Quality", "quality"), option("Speed", "speed"), option("Support", "support"), option("Pricing", "pricing")),
				field("checkbox", "May we contact you for follow-up?", "", false),
			}},
		},
	}
}

func patientIntakeBlueprint(style string) model.Draft {
	return model.Draft{
		Title:       "Patient Intake",
		Description: "Collect patient history and appointment details.",
		Steps: []model.DraftStep{
			{Title: "Patient Details", Description: "Basic information.", Fields: []model.DraftField{
				field("text", "Full name", "", true),
				field("date", "Date of birth", "", true),
				field("text", "Phone number", "", true),
				field("text", "Email", "", false),
			}},
			{Title: "Health History", Description: "Background and symptoms.", Fields: []model.DraftField{
				field("textarea", "Primary reason for visit", "", true),
				field("textarea", "Current medications", "", false),
				field("select", "Do you have allergies?", "", false,
					option("No", "no"), option("Yes", "yes")),
			}},
			{Title: "Appointment", Description: "Schedule and preferences.", Fields: []model.DraftField{
				field("date", "Preferred appointment date", "", true),
				field("select", "Preferred time", "", true,
					option("Morning", "morning"), option("Afternoon", "afternoon"), option("Evening", "evening")),
				field("text", "Insurance provider", "", false),
			}},
		},
	}
}

func supportTicketBlueprint(style string) model.Draft {
	return model.Draft{
		Title:       "Support Ticket",
		Description: "Capture issue details for faster resolution.",
		Steps: []model.DraftStep{
			{Title: "Reporter", Description: "Contact details.", Fields: []model.DraftField{
				field("text", "Name", "", true),
				field("text", "Email", "", true),
				field("text", "Company", "", false),
			}},
			{Title: "Issue Details", Description: "Describe the problem.", Fields: []model.DraftField{
				field("text", "Product or module", "", true),
				field("select", "Severity", "", true,
					option("Critical", "critical"), option("High", "high"), option("Medium", "medium"), option("Low", "low")),
				field("textarea", "Steps to reproduce", "", true),
				field("textarea", "Expected vs actual behavior", "", false),
			}},
		},
	}
}

func courseRegistrationBlueprint(style string) model.Draft {
	return model.Draft{
		Title:       "Course Registration",
		Description: "Enroll students and capture learning goals.",
		Steps: []model.DraftStep{
			{Title: "Student Info", Description: "Who is registering?", Fields: []model.DraftField{
				field("text", "Full name", "", true),
				field("text", "Email", "", true),
				field("text", "Phone", "", false),
			}},
			{Title: "Course Details", Description: "Pick the course and format.", Fields: []model.DraftField{
				field("select", "Course track", "", true,
					option("Beginner", "beginner"), option("Intermediate", "intermediate"), option("Advanced", "advanced")),
				field("select", "Preferred schedule", "", false,
					option("Weekdays", "weekdays"), option("Weekends", "weekends"), option("Evenings", "evenings")),
				field("textarea", "Learning goals", "", false),
			}},
		},
	}
}

func rentalApplicationBlueprint(style string) model.Draft {
	return model.Draft{
		Title:       "Rental Application",
		Description: "Collect applicant details and rental history.",
		Steps: []model.DraftStep{
			{Title: "Applicant Details", Description: "Basic information.", Fields: []model.DraftField{
				field("text", "Full name", "", true),
				field("text", "Email", "", true),
				field("text", "Phone number", "", true),
				field("text", "Current address", "", false),
			}},
			{Title: "Employment", Description: "Income and employment.", Fields: []model.DraftField{
				field("text", "Employer name", "", true),
				field("text", "Job title", "", false),
				field("number", "Monthly income", "", true),
			}},
			{Title: "Rental History", Description: "Past rental details.", Fields: []model.DraftField{
				field("text", "Previous landlord name", "", false),
				field("text", "Landlord contact", "", false),
				field("textarea", "Reason for moving", "", false),
			}},
		},
	}
}

func detailedGenericDraft(prompt, style string) model.Draft {
	title := prompt
	if strings.TrimSpace(title) == "" {
		title = "Generated Form"
	}
	return model.Draft{
		Title:       title,
		Description: "Generated from prompt: " + prompt,
		Steps: []model.DraftStep{
			{Title: "Basics", Description: "Start with essentials.", Fields: []model.DraftField{
				field("text", style+" your full name", "", true),
				field("text", style+" your email", "", true),
				field("text", "Phone number", "", false),
			}},
			{Title: "Details", Description: "Add key details.", Fields: []model.DraftField{
				field("textarea", style+" more context", "", false),
				field("select", style+" priority level", "", false,
					option("High", "high"), option("Normal", "normal"), option("Low", "low")),
				field("text", "Preferred contact method", "", false),
			}},
			{Title: "Additional Info", Description: "Optional details to help us personalize.", Fields: []model.DraftField{
				field("textarea", style+" any extra notes", "", false),
				field("checkbox", "I agree to be contacted with updates.", "", false),
			}},
		},
	}
}

func field(fieldType, label, placeholder string, required bool, options ...model.Option) model.DraftField {
	return model.DraftField{
		Type:        fieldType,
		Label:       label,
		Placeholder: placeholder,
		Required:    required,
		Options:     options,
	}
}

func option(label, value string) model.Option {
	return model.Option{Label: label, Value: value}
}
