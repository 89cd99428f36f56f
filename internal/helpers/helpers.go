package helpers

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"eventdeck/internal/apperrors"
)

const (
	EventsFolder = "events"
)

var (
	nonAlnumRun  = regexp.MustCompile(`[^a-z0-9]+`)
	timePattern  = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Layouts tried in order when normalizing a date string.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// Slugify lowercases the title, collapses every run of characters outside
// [a-z0-9] into a single hyphen, and strips leading/trailing hyphens.
// The result is empty only when the title contains no alphanumerics.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = nonAlnumRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// NormalizeDate parses a date-like string and returns the UTC calendar date
// in YYYY-MM-DD form, discarding time-of-day and timezone.
func NormalizeDate(value string) (string, error) {
	v := strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, v)
		if err == nil {
			return t.UTC().Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidDate, value)
}

// NormalizeTime accepts 24-hour H:mm or HH:mm and returns the hour
// zero-padded to two digits. Minutes must already be two digits.
func NormalizeTime(value string) (string, error) {
	m := timePattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidTime, value)
	}
	hour, minute := m[1], m[2]
	if len(hour) == 1 {
		hour = "0" + hour
	}
	return hour + ":" + minute, nil
}

// IsValidEmail reports whether the value looks like local@domain.tld,
// where no part contains whitespace or a second '@'.
func IsValidEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// ImageUploader pushes an image to external media storage and returns its
// public secure URL. Services depend on the interface so tests can swap in
// a fake instead of hitting Cloudinary.
type ImageUploader interface {
	UploadImage(ctx context.Context, file io.Reader, folder string) (string, error)
}

type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cld *cloudinary.Cloudinary) *CloudinaryUploader {
	return &CloudinaryUploader{cld: cld}
}

func (cu *CloudinaryUploader) UploadImage(ctx context.Context, file io.Reader, folder string) (string, error) {
	result, err := cu.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: folder,
		Tags:   []string{"eventdeck"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %v", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload succeeded but no secure URL was returned")
	}
	return result.SecureURL, nil
}
