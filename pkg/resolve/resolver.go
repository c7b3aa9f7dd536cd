package resolve

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/glorpus-work/relic/pkg/checksum"
	"github.com/glorpus-work/relic/pkg/errors"
	"github.com/glorpus-work/relic/pkg/logger"
)

// Resolver ties the local finder chain, the checksum verifier and the
// downloader together. All fields are fixed at construction; the resolver
// is safe for concurrent use.
type Resolver struct {
	Finder LocalFinder
	DL     Downloader
	Hooks  Hooks
}

func (r *Resolver) emit(e Event) {
	if r.Hooks.OnEvent != nil {
		r.Hooks.OnEvent(e)
	}
}

// ResolveAll resolves every request, reusing verified local artifacts and
// downloading the rest. Lookups and checksum computation are blocking I/O,
// so requests run on a bounded pool of worker goroutines. Results are
// returned in request order.
func (r *Resolver) ResolveAll(ctx context.Context, reqs []Request, opts Options) ([]Result, error) {
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = max(2, runtime.NumCPU()/2)
	}

	results := make([]Result, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			res, err := r.Resolve(ctx, req, opts)
			if err != nil {
				return err
			}
			results[i] = *res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Resolve resolves a single request. A local candidate is accepted only
// after verification; a corrupt or unverifiable candidate is discarded and
// resolution falls back to the download path. No retries happen here: a
// failed lookup is simply a miss, and a failed download is the caller's
// problem.
func (r *Resolver) Resolve(ctx context.Context, req Request, opts Options) (*Result, error) {
	if r.Finder == nil {
		return nil, fmt.Errorf("local finder is not configured")
	}
	if err := req.Identity.Validate(); err != nil {
		return nil, err
	}
	algo := req.Algorithm
	if algo == "" {
		algo = checksum.SHA1
	}
	id := req.Identity.String()

	r.emit(Event{Phase: "searching", ID: id})
	candidate, err := r.Finder.Find(req.Identity)
	if err != nil {
		return nil, err
	}
	if candidate != nil {
		r.emit(Event{Phase: "verifying", ID: id, Msg: candidate.Path})
		ok, err := r.verifyLocal(candidate.Path, req, algo)
		if err != nil {
			return nil, err
		}
		if ok {
			logger.Debugf("Using local artifact %s for %s", candidate.Path, id)
			r.emit(Event{Phase: "done", ID: id, Msg: candidate.Path})
			return &Result{Identity: req.Identity, Path: candidate.Path, Source: SourceLocal}, nil
		}
		// Verification failure is invisible to the user beyond the extra
		// download it causes.
		logger.Debugf("Discarding unverified local candidate %s for %s", candidate.Path, id)
	}

	return r.download(ctx, req, opts, algo)
}

// verifyLocal checks a candidate against the published checksum, or its
// sibling digest file when the request carries none.
func (r *Resolver) verifyLocal(path string, req Request, algo checksum.Algorithm) (bool, error) {
	if req.Checksum != "" {
		return checksum.Verify(path, req.Checksum, algo)
	}
	return checksum.VerifyAgainstDigestFile(path, algo)
}

func (r *Resolver) download(ctx context.Context, req Request, opts Options, algo checksum.Algorithm) (*Result, error) {
	id := req.Identity.String()
	if r.DL == nil {
		return nil, errors.Wrapf(errors.ErrDownloadFailed, "%s not available locally and no downloader configured", id)
	}
	if opts.CacheDir == "" || !filepath.IsAbs(opts.CacheDir) {
		return nil, errors.Wrapf(errors.ErrInvalidPath, "download dir must be absolute: %s", opts.CacheDir)
	}

	r.emit(Event{Phase: "downloading", ID: id})
	path, err := r.DL.Fetch(ctx, req.Identity, opts.CacheDir)
	if err != nil {
		r.emit(Event{Phase: "error", ID: id, Msg: err.Error()})
		return nil, err
	}
	if req.Checksum != "" {
		ok, err := checksum.Verify(path, req.Checksum, algo)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.Wrapf(errors.ErrChecksumMismatch, "downloaded artifact %s", id)
		}
	}
	r.emit(Event{Phase: "done", ID: id, Msg: path})
	return &Result{Identity: req.Identity, Path: path, Source: SourceDownload}, nil
}
