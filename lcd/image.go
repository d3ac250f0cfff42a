package lcd

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"net/http"
	"os"
	"strings"
)

// DownloadError indicates that the camera endpoint could not supply an
// image: a transport failure, a non-success status, or bytes that do
// not decode as an image.
type DownloadError struct {
	URL    string
	Status string
	Err    error
}

func (e *DownloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.URL, e.Status)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// Save the image, using the suffix to select the type of image.
func SaveImage(name string, img image.Image) error {
	of, err := os.Create(name)
	if err != nil {
		return err
	}
	defer of.Close()
	if strings.HasSuffix(name, "png") {
		return png.Encode(of, img)
	} else if strings.HasSuffix(name, "jpg") {
		return jpeg.Encode(of, img, nil)
	} else if strings.HasSuffix(name, "gif") {
		return gif.Encode(of, img, nil)
	} else {
		return fmt.Errorf("%s: unknown image format", name)
	}
}

// Get the image from the source URL.
func GetSource(src string) (image.Image, error) {
	res, err := http.Get(src)
	if err != nil {
		return nil, &DownloadError{URL: src, Err: err}
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, &DownloadError{URL: src, Status: res.Status}
	}
	img, _, err := image.Decode(res.Body)
	if err != nil {
		return nil, &DownloadError{URL: src, Err: err}
	}
	return img, nil
}

// Read an image from a file.
func ReadImage(name string) (image.Image, error) {
	inf, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer inf.Close()
	in, _, err := image.Decode(inf)
	return in, err
}
