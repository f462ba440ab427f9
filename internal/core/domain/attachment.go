package domain

import (
	"net/url"
	"strings"
)

// AttachmentKind classifies a stored resume URL for presentation: PDFs open
// through a document-viewing redirect, images render inline, everything else
// opens directly. Presentation policy only; never touches application state.
type AttachmentKind int

const (
	AttachmentOther AttachmentKind = iota
	AttachmentPDF
	AttachmentImage
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}

const docsViewerBase = "https://docs.google.com/viewer"

// ClassifyAttachment inspects the file extension of a stored attachment URL.
func ClassifyAttachment(raw string) AttachmentKind {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if cut := strings.IndexByte(lower, '?'); cut >= 0 {
		lower = lower[:cut]
	}
	if strings.HasSuffix(lower, ".pdf") {
		return AttachmentPDF
	}
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return AttachmentImage
		}
	}
	return AttachmentOther
}

// AttachmentViewURL returns the URL to open an attachment for viewing.
// Cloud-hosted PDFs get fl_attachment=false so the browser renders instead
// of downloading; other PDFs route through the document viewer.
func AttachmentViewURL(raw string) string {
	viewURL := strings.TrimSpace(raw)
	if viewURL == "" {
		return ""
	}
	if ClassifyAttachment(viewURL) != AttachmentPDF {
		return viewURL
	}
	base := stripQuery(viewURL)
	if strings.Contains(base, "cloudinary.com") {
		return base + "?fl_attachment=false"
	}
	return docsViewerBase + "?url=" + url.QueryEscape(base) + "&embedded=true"
}

// AttachmentDownloadURL returns the URL to force-download an attachment.
func AttachmentDownloadURL(raw string) string {
	downloadURL := strings.TrimSpace(raw)
	if downloadURL == "" {
		return ""
	}
	if strings.Contains(downloadURL, "cloudinary.com") {
		return stripQuery(downloadURL) + "?fl_attachment=true"
	}
	return downloadURL
}

func stripQuery(u string) string {
	if cut := strings.IndexByte(u, '?'); cut >= 0 {
		return u[:cut]
	}
	return u
}
