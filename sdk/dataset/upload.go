// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package dataset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scc-digitalhub/zenodo-cli-sdk/sdk/config"
	"github.com/scc-digitalhub/zenodo-cli-sdk/sdk/services/deposition"
	"github.com/scc-digitalhub/zenodo-cli-sdk/sdk/utils"
)

type UploadOptions struct {
	// OnlyChanged skips files whose md5 matches the deposition's copy.
	OnlyChanged bool
	// Force uploads everything regardless of checksums.
	Force bool
	// ScratchDir is where remote sources are materialized; defaults to
	// ".zen" next to the working directory.
	ScratchDir string
	// S3 fetches s3:// sources; required only when such sources exist.
	S3 *config.S3Client
}

func DefaultUploadOptions() UploadOptions {
	return UploadOptions{OnlyChanged: true}
}

// SetDeposition resolves the registry's deposition through the service.
// A bound id is verified with Retrieve; an unbound registry gets a fresh
// deposition when createIfMissing, otherwise ErrNoDeposition.
func (r *Registry) SetDeposition(ctx context.Context, svc *deposition.DepositionService, createIfMissing bool) (*deposition.Deposition, error) {
	if r.deposition != 0 {
		d, err := svc.Retrieve(ctx, r.deposition)
		if err != nil {
			return nil, fmt.Errorf("deposition %d unresolvable: %w", r.deposition, err)
		}
		return d, nil
	}
	if !createIfMissing {
		return nil, ErrNoDeposition
	}
	d, err := svc.Create(ctx, nil)
	if err != nil {
		return nil, err
	}
	r.deposition = d.ID
	return d, nil
}

// Upload pushes the registry's files into the bound deposition. Per file:
// refresh local stat, materialize remote sources into the scratch dir,
// compute the md5 when missing, skip when unchanged, PUT to the bucket
// otherwise. The batch is fail-fast: it stops at the first failing file and
// returns its error; files already pushed stay pushed, and the manifest
// checkpoint (when the registry has one) is written before returning, so a
// re-run resumes where it stopped.
func (r *Registry) Upload(ctx context.Context, svc *deposition.DepositionService, opts UploadOptions) error {
	if err := r.pendingGuard(); err != nil {
		return err
	}
	if r.deposition == 0 {
		return ErrNoDeposition
	}
	if len(r.files) > utils.MaxDepositionFiles {
		return fmt.Errorf("deposition file limit exceeded (%d > %d)", len(r.files), utils.MaxDepositionFiles)
	}

	d, err := svc.Retrieve(ctx, r.deposition)
	if err != nil {
		return err
	}
	bucket := d.Links["bucket"]
	if bucket == "" {
		return errors.New("deposition carries no bucket link")
	}

	remote := make(map[string]string, len(d.Files))
	for _, f := range d.Files {
		remote[f.Filename] = f.Checksum
	}

	for _, f := range r.files {
		if err := r.uploadOne(ctx, svc, bucket, f, remote, opts); err != nil {
			r.checkpoint()
			return fmt.Errorf("upload of %v failed: %w", f.Filename, err)
		}
	}
	r.checkpoint()
	return nil
}

// uploadOne handles a single entry. Scratch copies of remote sources are
// removed by defer, on success and on every failure path.
func (r *Registry) uploadOne(
	ctx context.Context,
	svc *deposition.DepositionService,
	bucket string,
	f *LocalFile,
	remote map[string]string,
	opts UploadOptions,
) error {
	localPath := f.URL

	if f.IsRemote() {
		parsed, err := utils.ParsePath(f.URL)
		if err != nil {
			return err
		}

		scratch := opts.ScratchDir
		if scratch == "" {
			scratch = utils.ScratchDirName
		}
		if err := os.MkdirAll(scratch, 0o755); err != nil {
			return fmt.Errorf("failed to create scratch dir: %w", err)
		}

		localPath = filepath.Join(scratch, utils.UUIDv4NoDash()+"_"+f.Filename)
		defer func(p string) { _ = os.Remove(p) }(localPath)

		switch parsed.Scheme {
		case "http", "https":
			if err := utils.DownloadHTTPFile(ctx, f.URL, localPath); err != nil {
				return err
			}
		case "s3":
			if opts.S3 == nil {
				return fmt.Errorf("s3 source %v but no S3 client configured", f.URL)
			}
			key := strings.TrimPrefix(parsed.Path, "/")
			if err := opts.S3.DownloadFile(ctx, parsed.Host, key, localPath); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported source scheme '%v'", parsed.Scheme)
		}

		if info, err := os.Stat(localPath); err == nil {
			f.Filesize = info.Size()
		}
		// checksum always recomputed on the fresh copy
		f.Checksum = ""
	} else {
		if err := f.refreshStat(); err != nil {
			return err
		}
	}

	if err := f.ensureChecksum(localPath); err != nil {
		return err
	}

	if !opts.Force && opts.OnlyChanged && remote[f.Filename] == f.Checksum {
		return nil
	}

	_, err := svc.PutBucketFile(ctx, bucket, localPath, f.Filename)
	return err
}

// checkpoint persists the manifest when the registry has one; best-effort,
// the upload error (if any) takes precedence.
func (r *Registry) checkpoint() {
	if r.manifest == "" {
		return
	}
	if err := r.Save(r.manifest); err != nil {
		fmt.Fprintf(os.Stderr, "[WARN] manifest checkpoint failed: %v\n", err)
	}
}
