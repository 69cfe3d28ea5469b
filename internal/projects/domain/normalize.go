package domain

// Normalize reconciles legacy documents with the current shape:
// shortDescription falls back to description, imageUrls falls back to the
// single imageUrl, and imageUrl always mirrors imageUrls[0] when one exists.
// Nothing is dropped, so the legacy fields are still present in the result.
func Normalize(p Project) Project {
	if p.ShortDescription == "" {
		p.ShortDescription = p.Description
	}

	switch {
	case len(p.ImageURLs) > 0:
		p.ImageURLs = append([]string(nil), p.ImageURLs...)
	case p.ImageURL != "":
		p.ImageURLs = []string{p.ImageURL}
	default:
		p.ImageURLs = []string{}
	}

	if len(p.ImageURLs) > 0 {
		p.ImageURL = p.ImageURLs[0]
	}
	return p
}

func NormalizeAll(items []Project) []Project {
	out := make([]Project, 0, len(items))
	for _, p := range items {
		out = append(out, Normalize(p))
	}
	return out
}

// SummaryImage is the card image: the first entry of the normalized image list.
func (p Project) SummaryImage() string {
	n := Normalize(p)
	if len(n.ImageURLs) == 0 {
		return ""
	}
	return n.ImageURLs[0]
}
