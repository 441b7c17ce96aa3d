package clients

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/km-arc/diaita/app/dto"
)

const maxEventLine = 1 << 20

// readEvents scans a text/event-stream body and calls fn with the text of
// each data payload. Blank payloads and the [DONE] sentinel are skipped.
// Payloads are either one GeminiResponse or a JSON array of them.
func readEvents(r io.Reader, fn func(text string)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxEventLine)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		payload, found := strings.CutPrefix(line, "data:")
		if !found {
			continue
		}
		payload = strings.TrimSpace(payload)
		if payload == "" || payload == "[DONE]" {
			continue
		}

		chunks, err := decodeChunks([]byte(payload))
		if err != nil {
			return err
		}
		for _, chunk := range chunks {
			if text := chunk.Text(); text != "" {
				fn(text)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read event stream: %w", err)
	}
	return nil
}

func decodeChunks(payload []byte) ([]dto.GeminiResponse, error) {
	if bytes.HasPrefix(payload, []byte("[")) {
		var chunks []dto.GeminiResponse
		if err := json.Unmarshal(payload, &chunks); err != nil {
			return nil, fmt.Errorf("decode event chunk: %w", err)
		}
		return chunks, nil
	}
	var chunk dto.GeminiResponse
	if err := json.Unmarshal(payload, &chunk); err != nil {
		return nil, fmt.Errorf("decode event chunk: %w", err)
	}
	return []dto.GeminiResponse{chunk}, nil
}
