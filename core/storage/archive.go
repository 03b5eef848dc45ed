package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"game-catalog/core/fetch"

	"github.com/minio/minio-go/v7"
)

// Archive stores raw source documents in a bucket.
type Archive struct {
	client Client
	bucket string
	// formats maps a source name to its document extension. Unlisted sources use html.
	formats map[string]string
}

// NewArchive creates an archive over bucket. formats maps source names to extensions.
func NewArchive(client Client, bucket string, formats map[string]string) *Archive {
	return &Archive{client: client, bucket: bucket, formats: formats}
}

// Bucket returns the archive bucket name.
func (a *Archive) Bucket() string {
	return a.bucket
}

// Exists reports whether the archive bucket exists.
func (a *Archive) Exists(ctx context.Context) (bool, error) {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket %s: %w", a.bucket, err)
	}
	return exists, nil
}

// Ensure creates the bucket when it does not exist yet.
func (a *Archive) Ensure(ctx context.Context) error {
	exists, err := a.Exists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", a.bucket, err)
	}
	return nil
}

// Key returns the object name for a document covering ids.
func (a *Archive) Key(source string, ids []int64) string {
	ext := a.formats[source]
	if ext == "" {
		ext = "html"
	}
	name := "none"
	switch len(ids) {
	case 0:
	case 1:
		name = strconv.FormatInt(ids[0], 10)
	default:
		name = fmt.Sprintf("%d-%d", ids[0], ids[len(ids)-1])
	}
	return fmt.Sprintf("raw/%s/%s.%s", source, name, ext)
}

// Archive uploads raw under the key for source and ids.
func (a *Archive) Archive(ctx context.Context, source string, ids []int64, raw []byte) error {
	key := a.Key(source, ids)
	contentType := "text/html; charset=utf-8"
	if a.formats[source] == "xml" {
		contentType = "application/xml"
	}
	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(raw), int64(len(raw)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to archive %s: %w", key, err)
	}
	return nil
}

// Read returns a previously archived document.
func (a *Archive) Read(ctx context.Context, source string, ids []int64) ([]byte, error) {
	key := a.Key(source, ids)
	obj, err := a.client.GetObject(ctx, a.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", key, err)
	}
	defer obj.Close()

	raw, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return raw, nil
}

// Count returns the number of documents archived for source.
func (a *Archive) Count(ctx context.Context, source string) (int, error) {
	n := 0
	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{
		Prefix:    "raw/" + source + "/",
		Recursive: true,
	}) {
		if obj.Err != nil {
			return n, fmt.Errorf("failed to list %s documents: %w", source, obj.Err)
		}
		n++
	}
	return n, nil
}

// Replay returns a fetcher that serves archived documents instead of calling the source.
func (a *Archive) Replay(source string, batch bool) *Replay {
	return &Replay{archive: a, source: source, batch: batch}
}

// Replay serves archived documents through the fetch interface.
type Replay struct {
	archive *Archive
	source  string
	batch   bool
}

// Batch reports whether the replayed source was batch-capable.
func (r *Replay) Batch() bool {
	return r.batch
}

// Fetch reads the archived document for ids. Missing documents are NotFound.
func (r *Replay) Fetch(ctx context.Context, ids ...int64) fetch.Outcome {
	key := r.archive.Key(r.source, ids)
	raw, err := r.archive.Read(ctx, r.source, ids)
	if err != nil {
		var resp minio.ErrorResponse
		if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
			return fetch.Outcome{Kind: fetch.NotFound, URL: key, Status: http.StatusNotFound, Detail: key + " is not archived"}
		}
		return fetch.Outcome{Kind: fetch.TransportFault, URL: key, Detail: err.Error()}
	}
	return fetch.Outcome{Kind: fetch.Success, URL: key, Status: http.StatusOK, Body: raw}
}
