package meeting

import (
	"bytes"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var allowedExtensions = map[string]string{
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".mp4":  "video/mp4",
	".webm": "audio/webm",
	".m4a":  "audio/mp4",
	".ogg":  "audio/ogg",
}

// sniffLen matches the header size mimetype inspects by default
const sniffLen = 3072

// AllowedExtensions lists accepted upload extensions in sorted order
func AllowedExtensions() []string {
	exts := make([]string, 0, len(allowedExtensions))
	for ext := range allowedExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// fileExtension returns the lowercase extension of an uploaded filename
func fileExtension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

func isAllowedExtension(ext string) bool {
	_, ok := allowedExtensions[ext]
	return ok
}

// sniffMIMEType peeks at the head of the stream and returns the media type along with a
// reader that replays the consumed bytes.
func sniffMIMEType(r io.Reader, ext string) (string, io.Reader, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", nil, err
	}
	head = head[:n]
	replay := io.MultiReader(bytes.NewReader(head), r)

	detected := mimetype.Detect(head)
	for m := detected; m != nil; m = m.Parent() {
		mt := m.String()
		if strings.HasPrefix(mt, "audio/") || strings.HasPrefix(mt, "video/") {
			return mt, replay, nil
		}
	}
	return allowedExtensions[ext], replay, nil
}
