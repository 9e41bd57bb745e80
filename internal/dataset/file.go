package dataset

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/i474232898/weather-insights/internal/weather"
)

// FileSource loads records from a JSON file on disk.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Name() string {
	return "file:" + s.Path
}

func (s *FileSource) Load(ctx context.Context) ([]weather.WeatherRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open weather data: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// NewSource picks an HTTPSource for http(s) locations and a FileSource otherwise.
func NewSource(location string, client *http.Client) weather.Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(client, location)
	}
	return NewFileSource(location)
}
