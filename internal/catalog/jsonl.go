package catalog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// maxJSONLLineCapacity is the maximum buffer size for reading JSONL lines (1MB per line).
const maxJSONLLineCapacity = 1024 * 1024

// ReadRecords reads records from a JSONL file, one JSON object per
// line. Empty lines are skipped. A missing file is an error; an empty
// file yields an empty slice.
func ReadRecords(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening records file: %w", err)
	}
	defer f.Close()

	var recs []Record
	scanner := bufio.NewScanner(f)

	// Increase buffer size for long lines
	buf := make([]byte, maxJSONLLineCapacity)
	scanner.Buffer(buf, maxJSONLLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNum, err)
		}
		recs = append(recs, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading records file: %w", err)
	}

	return recs, nil
}
