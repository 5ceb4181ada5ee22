package types

// The nine fixed category labels briefs are grouped under.
const (
	CategoryTechnology       = "Technology"
	CategoryPlatformPresence = "Platform Presence"
	CategoryContentStructure = "Content Structure"
	CategoryContentTypes     = "Content Types"
	CategoryReviews          = "Reviews and Testimonials"
	CategoryPROutreach       = "PR Outreach and LLM Seeding"
	CategorySocialEngagement = "Social Engagement and Community Strategy"
	CategoryMultimodal       = "Multimodal and Visual Optimization"
	CategoryDataAuthority    = "Data Authority and Proprietary Statistics"
)

// AllCategories returns the nine fixed category labels in their canonical order.
func AllCategories() []string {
	return []string{
		CategoryTechnology,
		CategoryPlatformPresence,
		CategoryContentStructure,
		CategoryContentTypes,
		CategoryReviews,
		CategoryPROutreach,
		CategorySocialEngagement,
		CategoryMultimodal,
		CategoryDataAuthority,
	}
}

// IsValidCategory reports whether name is one of the nine fixed labels.
func IsValidCategory(name string) bool {
	for _, c := range AllCategories() {
		if c == name {
			return true
		}
	}
	return false
}
