// Package convert rewrites the static dependency analyzer's raw output into
// canonical, label-only graph artifacts.
//
// The analyzer emits graphs whose nodes are opaque numeric IDs, with the
// ID→path table smuggled in as comment lines:
//
//	// 7:/project/src/main.py
//	// 9:/project/src/logger.py
//	7 -> 9;
//
// Conversion has three steps, all pure text or record transforms:
//
//   - [ResolveLabels] builds the ID→label map from the comment table
//     (label = basename of the path, last occurrence wins).
//   - [RewriteGraph] rewrites numeric edges to quoted-label edges and strips
//     the comment table, yielding the canonical artifact:
//
//     "main.py" -> "logger.py";
//
//   - [RewriteCells] basenames the variables array of the structured side
//     file, passing the positional cells records through unchanged.
//
// Unresolved IDs fall back to the raw ID as label, never an error. A missing
// or malformed side file is logged and skipped; the graph artifact still
// gets written. Conversions are idempotent and safe to re-run.
package convert
