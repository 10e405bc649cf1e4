package ansimage

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// httpClient bounds one-shot URL fetches; there is no retry, a failed
// fetch fails the invocation.
var httpClient = &http.Client{Timeout: 30 * time.Second}

// IsURL reports whether the source argument names a remote resource.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// LoadGrid resolves a local path or http(s) URL into a PixelGrid.
// Fetch and open failures surface as ErrSourceUnavailable, malformed
// image bytes as ErrDecode.
func LoadGrid(pathOrURL string) (*PixelGrid, error) {
	var r io.ReadCloser
	if IsURL(pathOrURL) {
		resp, err := httpClient.Get(pathOrURL)
		if err != nil {
			return nil, fmt.Errorf("%w: fetch %s: %v", ErrSourceUnavailable, pathOrURL, err)
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			resp.Body.Close()
			return nil, fmt.Errorf("%w: fetch %s: unexpected status %s", ErrSourceUnavailable, pathOrURL, resp.Status)
		}
		r = resp.Body
	} else {
		f, err := os.Open(pathOrURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
		}
		r = f
	}
	defer r.Close()

	return DecodeGrid(r)
}

// DecodeGrid decodes image bytes into a PixelGrid. Format support is
// whatever decoders are registered: PNG, JPEG, and GIF from the
// standard library plus BMP, TIFF, and WebP.
func DecodeGrid(r io.Reader) (*PixelGrid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return GridFromImage(img), nil
}
