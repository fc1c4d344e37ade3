package index

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// IndexMeta mirrors meta.json in an index directory.
type IndexMeta struct {
	Name     string `json:"name"`
	Version  int    `json:"version"`
	DocCount int    `json:"doc_count"`
}

// PostingsFile mirrors postings.json: term to sorted document IDs.
type PostingsFile struct {
	Terms map[string][]uint32 `json:"terms"`
}

// Load loads an index from the given directory path
func Load(indexPath string, logger *slog.Logger) (*Index, error) {
	metaPath := filepath.Join(indexPath, "meta.json")

	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read index meta: %w", err)
	}

	var meta IndexMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse index meta: %w", err)
	}

	postingsPath := filepath.Join(indexPath, "postings.json")
	data, err = os.ReadFile(postingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read postings: %w", err)
	}

	var postings PostingsFile
	if err := json.Unmarshal(data, &postings); err != nil {
		return nil, fmt.Errorf("failed to parse postings: %w", err)
	}

	idx := New(meta.Name, meta.DocCount)
	for term, docIDs := range postings.Terms {
		idx.AddPostings(term, docIDs...)
	}

	logger.Info("index loaded",
		"name", meta.Name,
		"path", indexPath,
		"doc_count", meta.DocCount,
		"terms", idx.TermCount(),
	)

	return idx, nil
}
