package domain

import (
	"strings"
	"testing"
)

func TestClassifyAttachment(t *testing.T) {
	cases := []struct {
		url  string
		want AttachmentKind
	}{
		{"https://files.example.com/cv.pdf", AttachmentPDF},
		{"https://files.example.com/cv.PDF?x=1", AttachmentPDF},
		{"https://files.example.com/photo.jpg", AttachmentImage},
		{"https://files.example.com/photo.jpeg", AttachmentImage},
		{"https://files.example.com/scan.png", AttachmentImage},
		{"https://files.example.com/cv.docx", AttachmentOther},
		{"", AttachmentOther},
	}
	for _, tc := range cases {
		if got := ClassifyAttachment(tc.url); got != tc.want {
			t.Errorf("ClassifyAttachment(%q) = %v, want %v", tc.url, got, tc.want)
		}
	}
}

func TestAttachmentViewURL(t *testing.T) {
	cloudinary := "https://res.cloudinary.com/demo/raw/upload/cv.pdf?sig=abc"
	if got := AttachmentViewURL(cloudinary); got != "https://res.cloudinary.com/demo/raw/upload/cv.pdf?fl_attachment=false" {
		t.Errorf("cloudinary pdf view url = %q", got)
	}

	plain := "https://files.example.com/cv.pdf"
	got := AttachmentViewURL(plain)
	if !strings.HasPrefix(got, "https://docs.google.com/viewer?url=") {
		t.Errorf("plain pdf should route through the viewer, got %q", got)
	}
	if !strings.Contains(got, "embedded=true") {
		t.Errorf("viewer url missing embedded flag: %q", got)
	}

	image := "https://files.example.com/photo.png"
	if got := AttachmentViewURL(image); got != image {
		t.Errorf("non-pdf should open directly, got %q", got)
	}
	if AttachmentViewURL("") != "" {
		t.Error("empty url should stay empty")
	}
}

func TestAttachmentDownloadURL(t *testing.T) {
	cloudinary := "https://res.cloudinary.com/demo/raw/upload/cv.pdf?sig=abc"
	if got := AttachmentDownloadURL(cloudinary); got != "https://res.cloudinary.com/demo/raw/upload/cv.pdf?fl_attachment=true" {
		t.Errorf("cloudinary download url = %q", got)
	}
	plain := "https://files.example.com/cv.pdf"
	if got := AttachmentDownloadURL(plain); got != plain {
		t.Errorf("plain download url = %q", got)
	}
}
