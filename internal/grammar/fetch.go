package grammar

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	getter "github.com/hashicorp/go-getter"
)

// Fetch downloads a grammar document from src into dir and returns the
// local path. src is any go-getter address: a local path, an http(s) URL,
// or a forced getter such as "git::https://host/repo.git//grammars/x.json".
func Fetch(ctx context.Context, src, dir string, log *slog.Logger) (string, error) {
	pwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	dst := filepath.Join(dir, "grammar.json")
	log.Info("fetching grammar", "src", src, "dst", dst)
	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeFile,
	}
	if err := client.Get(); err != nil {
		return "", fmt.Errorf("fetch grammar %s: %w", src, err)
	}
	log.Debug("grammar fetched", "dst", dst)
	return dst, nil
}

// LoadRemote fetches src into dir and decodes it.
func LoadRemote(ctx context.Context, src, dir string, log *slog.Logger) (*Document, error) {
	path, err := Fetch(ctx, src, dir, log)
	if err != nil {
		return nil, err
	}
	return Load(path)
}
