package domain

import "fmt"

// Message is a contact form submission. No field is validated; empty values
// are relayed as-is.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Subject is the email subject line for this submission.
func (m Message) Subject() string {
	return fmt.Sprintf("Portfolio Contact Form - Message from %s (%s)", m.Name, m.Email)
}
