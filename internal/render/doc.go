// Package render turns ClickUp API responses into markdown.
//
// Every renderer is a pure function of its input documents. Absent or null
// fields fall back to fixed placeholders, so a renderer never fails; the
// worst case for a malformed response is a document full of "N/A".
//
// Renderers do not bound their output. The caller applies Bound exactly
// once to the final text.
package render
