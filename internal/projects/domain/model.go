package domain

// Project is a portfolio entry as exposed over the API.
// It is intentionally storage-agnostic and used across repository, HTTP and client layers.
//
// Description and ImageURL are legacy fields kept so older documents survive a
// read-write cycle; Normalize folds them into the current shape.
type Project struct {
	ID               string   `json:"_id"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"shortDescription"`
	LongDescription  string   `json:"longDescription,omitempty"`
	LiveLink         string   `json:"liveLink,omitempty"`
	GithubLink       string   `json:"githubLink,omitempty"`
	ImageURLs        []string `json:"imageUrls"`
	PdfURL           string   `json:"pdfUrl,omitempty"`

	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Fields is a partial set of project fields. A nil pointer leaves the stored
// value untouched.
type Fields struct {
	Title            *string
	ShortDescription *string
	LongDescription  *string
	LiveLink         *string
	GithubLink       *string
	ImageURLs        *[]string
	PdfURL           *string
}

func (f Fields) Empty() bool {
	return f.Title == nil && f.ShortDescription == nil && f.LongDescription == nil &&
		f.LiveLink == nil && f.GithubLink == nil && f.ImageURLs == nil && f.PdfURL == nil
}
