package upload

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Rejection is a file that could not be encoded.
type Rejection struct {
	Path string
	Err  error
}

// EncodeAll encodes paths concurrently and joins the results in input order.
// A failing file is reported in rejected and does not affect the others.
func EncodeAll(ctx context.Context, enc Encoder, paths []string) (accepted []string, rejected []Rejection) {
	results := make([]string, len(paths))
	errs := make([]error, len(paths))

	var g errgroup.Group
	g.SetLimit(4)
	for i, p := range paths {
		g.Go(func() error {
			results[i], errs[i] = enc.Encode(ctx, p)
			return nil
		})
	}
	_ = g.Wait()

	for i, p := range paths {
		if errs[i] != nil {
			rejected = append(rejected, Rejection{Path: p, Err: errs[i]})
			continue
		}
		accepted = append(accepted, results[i])
	}
	return accepted, rejected
}
