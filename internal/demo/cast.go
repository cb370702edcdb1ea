package demo

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// castHeader is the first line of an asciicast v2 file.
type castHeader struct {
	Version   int    `json:"version"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Timestamp int64  `json:"timestamp,omitempty"`
	Title     string `json:"title,omitempty"`
}

// clearScreen homes the cursor and clears the screen before each frame.
const clearScreen = "\x1b[H\x1b[2J"

// GenerateASCIICast writes frames as an asciicast v2 recording. Each frame
// is shown after its delay; annotations go in as marker events.
func GenerateASCIICast(w io.Writer, frames []Frame, width, height int, title string) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(castHeader{
		Version:   2,
		Width:     width,
		Height:    height,
		Timestamp: time.Now().Unix(),
		Title:     title,
	}); err != nil {
		return fmt.Errorf("write cast header: %w", err)
	}

	var elapsed time.Duration
	for i, f := range frames {
		elapsed += f.Delay
		at := elapsed.Seconds()

		content := clearScreen + strings.ReplaceAll(f.Content, "\n", "\r\n")
		if err := enc.Encode([]any{at, "o", content}); err != nil {
			return fmt.Errorf("write frame %d: %w", i, err)
		}
		if f.Annotation != "" {
			if err := enc.Encode([]any{at, "m", f.Annotation}); err != nil {
				return fmt.Errorf("write marker %d: %w", i, err)
			}
		}
	}
	return nil
}
