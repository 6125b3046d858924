package utils

import (
	"reflect"
	"testing"
)

func TestExtractImageURLs(t *testing.T) {
	tests := []struct {
		name       string
		reply      string
		maxResults int
		want       []string
	}{
		{
			name:       "Bare URLs in running text",
			reply:      "See https://x.com/a.jpg and https://x.com/b.PNG",
			maxResults: 0,
			want:       []string{"https://x.com/a.jpg", "https://x.com/b.PNG"},
		},
		{
			name:       "Labeled URL on its own line",
			reply:      "URL: https://img.example.com/house.webp\nURL: http://img.example.com/pool.gif",
			maxResults: 0,
			want:       []string{"https://img.example.com/house.webp", "http://img.example.com/pool.gif"},
		},
		{
			name:       "Query string after extension",
			reply:      "https://cdn.example.com/photo.jpeg?w=300&h=200",
			maxResults: 0,
			want:       []string{"https://cdn.example.com/photo.jpeg?w=300&h=200"},
		},
		{
			name:       "Extension must end the path component",
			reply:      "https://x.com/page.html mentions photos",
			maxResults: 0,
			want:       []string{},
		},
		{
			name:       "Extension mid-path is not an image URL",
			reply:      "see https://x.com/a.jpg.html for photos",
			maxResults: 0,
			want:       []string{},
		},
		{
			name:       "Duplicates dropped keeping first-seen order",
			reply:      "https://x.com/a.jpg then https://x.com/b.png then https://x.com/a.jpg and again https://x.com/a.jpg",
			maxResults: 0,
			want:       []string{"https://x.com/a.jpg", "https://x.com/b.png"},
		},
		{
			name:       "Truncated to maxResults",
			reply:      "https://x.com/a.jpg https://x.com/b.jpg https://x.com/c.jpg",
			maxResults: 2,
			want:       []string{"https://x.com/a.jpg", "https://x.com/b.jpg"},
		},
		{
			name:       "Non-http scheme ignored",
			reply:      "ftp://x.com/a.jpg and file:///tmp/b.png",
			maxResults: 0,
			want:       []string{},
		},
		{
			name:       "No URLs is a normal result",
			reply:      "I could not find any images for this property.",
			maxResults: 0,
			want:       []string{},
		},
		{
			name:       "URL inside quotes and angle brackets",
			reply:      `<img src="https://x.com/a.jpg"> and "https://x.com/b.webp"`,
			maxResults: 0,
			want:       []string{"https://x.com/a.jpg", "https://x.com/b.webp"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractImageURLs(tt.reply, tt.maxResults)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractImageURLs() = %v, want %v", got, tt.want)
			}
		})
	}
}
