package dashboard

import (
	"fmt"

	"github.com/gavinjunior/portfolio-backend/internal/projects/domain"
)

// Form field names accepted by SetField.
const (
	FieldTitle            = "title"
	FieldShortDescription = "shortDescription"
	FieldLongDescription  = "longDescription"
	FieldLiveLink         = "liveLink"
	FieldGithubLink       = "githubLink"
	FieldPdfURL           = "pdfUrl"
)

// Form is the project being composed or edited. ID is empty for a new project.
type Form struct {
	ID               string
	Title            string
	ShortDescription string
	LongDescription  string
	LiveLink         string
	GithubLink       string
	PdfURL           string

	// ImageURLs is the ordered image list that will be saved.
	ImageURLs []string
	// ImagesChanged is set once files are attached, so the list is sent as an upload.
	ImagesChanged bool
	// PdfData holds an attached PDF as a data URL.
	PdfData string
}

// FormFromProject pre-populates a form, folding legacy fields in.
func FormFromProject(p domain.Project) Form {
	n := domain.Normalize(p)
	return Form{
		ID:               n.ID,
		Title:            n.Title,
		ShortDescription: n.ShortDescription,
		LongDescription:  n.LongDescription,
		LiveLink:         n.LiveLink,
		GithubLink:       n.GithubLink,
		PdfURL:           n.PdfURL,
		ImageURLs:        append([]string{}, n.ImageURLs...),
	}
}

func (f Form) IsNew() bool {
	return f.ID == ""
}

func (f *Form) set(field, value string) error {
	switch field {
	case FieldTitle:
		f.Title = value
	case FieldShortDescription:
		f.ShortDescription = value
	case FieldLongDescription:
		f.LongDescription = value
	case FieldLiveLink:
		f.LiveLink = value
	case FieldGithubLink:
		f.GithubLink = value
	case FieldPdfURL:
		f.PdfURL = value
	default:
		return fmt.Errorf("unknown form field %q", field)
	}
	return nil
}

func (f Form) createInput() domain.CreateInput {
	in := domain.CreateInput{
		Title:            f.Title,
		ShortDescription: f.ShortDescription,
		LongDescription:  f.LongDescription,
		LiveLink:         f.LiveLink,
		GithubLink:       f.GithubLink,
		ImageURLs:        f.ImageURLs,
		PdfURL:           f.PdfURL,
		PdfBase64:        f.PdfData,
	}
	if f.ImagesChanged {
		images := append([]string{}, f.ImageURLs...)
		in.ImageBase64 = &images
		in.ImageURLs = nil
	}
	return in
}

func (f Form) updateInput() domain.UpdateInput {
	in := domain.UpdateInput{
		ID:               f.ID,
		Title:            &f.Title,
		ShortDescription: &f.ShortDescription,
		LongDescription:  &f.LongDescription,
		LiveLink:         &f.LiveLink,
		GithubLink:       &f.GithubLink,
		PdfURL:           &f.PdfURL,
	}
	images := append([]string{}, f.ImageURLs...)
	if f.ImagesChanged {
		in.ImageBase64 = &images
	} else {
		in.ImageURLs = &images
	}
	if f.PdfData != "" {
		pdf := f.PdfData
		in.PdfBase64 = &pdf
	}
	return in
}
