// Package store persists fetched files.
//
// Two implementations are provided:
//   - FileStore writes to local paths, creating or truncating each file.
//     Parent directories must already exist.
//   - BlobStore writes objects to a gocloud.dev/blob bucket (file://, mem://,
//     s3://, gs://). The destination path becomes the object key.
package store
