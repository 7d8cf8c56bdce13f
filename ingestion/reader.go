package ingestion

import (
	"bufio"
	"io"
	"strings"

	"github.com/poiesic/answerit/core"
)

// ReadRecords parses corpus records from a line-oriented source.
//
// Each non-blank line is one record. A line of the form "id<TAB>text" sets
// an explicit id; a line without a tab is text only, and the pipeline
// derives a content-based id. Lines starting with '#' are comments.
func ReadRecords(r io.Reader) ([]*core.Record, error) {
	var records []*core.Record

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		record := &core.Record{}
		if id, text, found := strings.Cut(line, "\t"); found {
			record.Id = strings.TrimSpace(id)
			record.Text = strings.TrimSpace(text)
		} else {
			record.Text = line
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
