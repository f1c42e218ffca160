// Package recipefile is the codec between recipe files on disk and the
// in-memory document model.
//
// Files are YAML or JSON with the same schema; the format is detected from
// the file extension. The round trip is lossless up to id assignment: decode
// then encode preserves every field, exact rational values included, and ids
// that were missing in the source are assigned once and persisted.
package recipefile
