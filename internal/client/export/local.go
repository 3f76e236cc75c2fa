package export

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/ipms/internal/client/client"
	"github.com/dmitrijs2005/ipms/internal/filex"
)

// LocalSink writes into a download directory, created on first use. An
// existing file of the same name is kept and the new one gets a numbered
// suffix.
type LocalSink struct {
	Dir string
}

func (s LocalSink) Save(ctx context.Context, blob client.Blob) (string, error) {
	dir, err := filex.EnsureDir(s.Dir)
	if err != nil {
		return "", err
	}

	path := filex.UniquePath(dir, blob.Filename)
	if err := os.WriteFile(path, blob.Data, 0o640); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
