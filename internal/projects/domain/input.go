package domain

import "strings"

// CreateInput is the create payload. ImageBase64 and PdfBase64 carry inline
// uploads and replace imageUrls / pdfUrl before insert. Any client _id is ignored.
type CreateInput struct {
	ID               *string   `json:"_id,omitempty"`
	Title            string    `json:"title" binding:"required"`
	ShortDescription string    `json:"shortDescription" binding:"required"`
	LongDescription  string    `json:"longDescription,omitempty"`
	LiveLink         string    `json:"liveLink,omitempty"`
	GithubLink       string    `json:"githubLink,omitempty"`
	ImageURLs        []string  `json:"imageUrls,omitempty"`
	PdfURL           string    `json:"pdfUrl,omitempty"`
	ImageBase64      *[]string `json:"imageBase64,omitempty"`
	PdfBase64        string    `json:"pdfBase64,omitempty"`
}

func (in CreateInput) Validate() error {
	if blank(in.Title) {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if blank(in.ShortDescription) {
		return &ValidationError{Field: "shortDescription", Message: "is required"}
	}
	return nil
}

// Project builds the document to insert, with upload fields promoted.
func (in CreateInput) Project() Project {
	p := Project{
		Title:            in.Title,
		ShortDescription: in.ShortDescription,
		LongDescription:  in.LongDescription,
		LiveLink:         in.LiveLink,
		GithubLink:       in.GithubLink,
		ImageURLs:        in.ImageURLs,
		PdfURL:           in.PdfURL,
	}
	if in.ImageBase64 != nil {
		p.ImageURLs = *in.ImageBase64
	}
	if in.PdfBase64 != "" {
		p.PdfURL = in.PdfBase64
	}
	if p.ImageURLs == nil {
		p.ImageURLs = []string{}
	}
	return p
}

// UpdateInput is the partial update payload keyed by _id.
type UpdateInput struct {
	ID               string    `json:"_id"`
	Title            *string   `json:"title,omitempty"`
	ShortDescription *string   `json:"shortDescription,omitempty"`
	LongDescription  *string   `json:"longDescription,omitempty"`
	LiveLink         *string   `json:"liveLink,omitempty"`
	GithubLink       *string   `json:"githubLink,omitempty"`
	ImageURLs        *[]string `json:"imageUrls,omitempty"`
	PdfURL           *string   `json:"pdfUrl,omitempty"`
	ImageBase64      *[]string `json:"imageBase64,omitempty"`
	PdfBase64        *string   `json:"pdfBase64,omitempty"`
}

func (in UpdateInput) Validate() error {
	if in.ID == "" {
		return &ValidationError{Field: "_id", Message: "is required"}
	}
	// Omitted fields stay as stored, but the required ones cannot be blanked.
	if in.Title != nil && blank(*in.Title) {
		return &ValidationError{Field: "title", Message: "must not be empty"}
	}
	if in.ShortDescription != nil && blank(*in.ShortDescription) {
		return &ValidationError{Field: "shortDescription", Message: "must not be empty"}
	}
	return nil
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// Fields returns only the supplied fields, with upload fields promoted.
func (in UpdateInput) Fields() Fields {
	f := Fields{
		Title:            in.Title,
		ShortDescription: in.ShortDescription,
		LongDescription:  in.LongDescription,
		LiveLink:         in.LiveLink,
		GithubLink:       in.GithubLink,
		ImageURLs:        in.ImageURLs,
		PdfURL:           in.PdfURL,
	}
	if in.ImageBase64 != nil {
		f.ImageURLs = in.ImageBase64
	}
	if in.PdfBase64 != nil && *in.PdfBase64 != "" {
		f.PdfURL = in.PdfBase64
	}
	return f
}

// DeleteInput is the delete payload.
type DeleteInput struct {
	ID string `json:"id"`
}
