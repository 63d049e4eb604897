// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package research

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// PageFetcher retrieves readable text from a URL.
type PageFetcher interface {
	PageText(ctx context.Context, rawURL string) (string, error)
}

// Pages fetches readable text for each URL with the same isolation rules as
// keyword research: one entry per requested URL, failures carry the
// Unavailable sentinel, the batch never aborts on a single bad page.
func (r *Researcher) Pages(ctx context.Context, fetcher PageFetcher, urls []string) (map[string]string, error) {
	texts := make([]string, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, u := range urls {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			text, err := fetcher.PageText(gctx, u)
			if err != nil {
				slog.Warn("page fetch failed", "url", u, "error", err)
				texts[i] = Unavailable
				return nil
			}
			texts[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("page research: %w", err)
	}

	out := make(map[string]string, len(urls))
	for i, u := range urls {
		out[u] = texts[i]
	}
	return out, nil
}
