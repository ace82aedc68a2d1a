package simplify

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/StephanyArroyo/AlfabetizacionAsist/internal/adapter"
	"github.com/StephanyArroyo/AlfabetizacionAsist/internal/prompt"
)

const defaultImageType = "image/jpeg"

// Checked in order against the whole field, data URI prefix included.
var sniffedImageTypes = []string{"image/png", "image/webp", "image/gif"}

// ParseImage splits the imagen field into media type and base64 payload.
//
// The payload is everything after the first comma, or the whole value when
// there is no comma. The media type is the first of png, webp, gif whose
// name appears anywhere in the raw value, else jpeg. Clients rely on this
// exact behaviour; a stricter parser would need an explicit content-type
// field in the request.
func ParseImage(raw string) adapter.Image {
	data := raw
	if _, after, found := strings.Cut(raw, ","); found {
		data = after
	}

	mediaType := defaultImageType
	for _, t := range sniffedImageTypes {
		if strings.Contains(raw, t) {
			mediaType = t
			break
		}
	}

	return adapter.Image{MediaType: mediaType, Data: data}
}

// detectImageType decodes the payload and returns its real content type,
// or nil when the payload is not valid base64.
func detectImageType(data string) *mimetype.MIME {
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil
	}
	return mimetype.Detect(decoded)
}

// ImageSections is the model answer split at its two labels.
type ImageSections struct {
	Extracted  string
	Simplified string
}

// SplitImageResponse separates the extracted and simplified texts of an
// image answer. ok is false when either label is missing, in which case the
// whole answer is returned as Simplified.
func SplitImageResponse(answer string) (s ImageSections, ok bool) {
	ei := strings.Index(answer, prompt.ExtractedHeader)
	si := strings.Index(answer, prompt.SimplifiedHeader)
	if ei < 0 || si < 0 || si < ei {
		return ImageSections{Simplified: strings.TrimSpace(answer)}, false
	}
	return ImageSections{
		Extracted:  strings.TrimSpace(answer[ei+len(prompt.ExtractedHeader) : si]),
		Simplified: strings.TrimSpace(answer[si+len(prompt.SimplifiedHeader):]),
	}, true
}
