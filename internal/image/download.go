package imagepkg

import (
	"bytes"
	"context"
	"image"
	"log/slog"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"github.com/youruser/opdeck/internal/util"
)

// maxParallelDownloads bounds DownloadAll.
const maxParallelDownloads = 4

// DownloadImage fetches and decodes an image. Sources without an http(s)
// scheme are read from the local filesystem.
func DownloadImage(ctx context.Context, src string) (image.Image, error) {
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		return imaging.Open(src)
	}
	body, err := util.GetBytes(ctx, src)
	if err != nil {
		return nil, err
	}
	return imaging.Decode(bytes.NewReader(body))
}

// DownloadAll fetches srcs in parallel, best-effort: the result has one slot
// per source and failed or empty sources are left nil. The only error is
// cancellation of ctx.
func DownloadAll(ctx context.Context, srcs []string) ([]image.Image, error) {
	out := make([]image.Image, len(srcs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelDownloads)
	for i, src := range srcs {
		if src == "" {
			continue
		}
		g.Go(func() error {
			img, err := DownloadImage(gctx, src)
			if err != nil {
				slog.Warn("card image download failed", "src", src, "error", err)
				return nil
			}
			out[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
