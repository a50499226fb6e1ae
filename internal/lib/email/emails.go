package email

func (c *Client) SendWelcomeEmail(to, username, firstName string) error {
	return c.SendEmail(to, "Welcome to Jobly!", TemplateWelcome, map[string]string{
		"UserFirstName": firstName,
		"Username":      username,
	})
}

func (c *Client) SendApplicationEmail(to, firstName, jobTitle, companyName string) error {
	return c.SendEmail(to, "Application received: "+jobTitle, TemplateApplication, map[string]string{
		"UserFirstName": firstName,
		"JobTitle":      jobTitle,
		"CompanyName":   companyName,
	})
}
