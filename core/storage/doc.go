// Package storage provides object storage for raw source documents.
//
// It wraps the MinIO Go client behind a small Client interface, which works against
// both AWS S3 and self-hosted MinIO and is mocked in core/storage/mocks.
//
// # Archive
//
// Archive stores every document a source returned, keyed by source and identifier
// range, so parser changes can be replayed against real markup:
//
//	raw/bgg/224517.xml
//	raw/bgg/100-102.xml
//	raw/csi/5521.html
//
// Archiving is best-effort from the pipeline's point of view; a failed upload is
// logged and never fails a resolve.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	archive := storage.NewArchive(client, cfg.Storage.Bucket)
//	err = archive.Archive(ctx, "bgg", []int64{224517}, body)
package storage
