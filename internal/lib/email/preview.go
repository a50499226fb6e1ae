package email

// PreviewData holds sample values for every template, keyed by template
// name. It backs the local email preview route.
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"UserFirstName": "Aliya",
		"Username":      "aliya",
	},
	TemplateApplication: {
		"UserFirstName": "Aliya",
		"JobTitle":      "Backend Engineer",
		"CompanyName":   "Anderson, Arias and Morrow",
	},
}
