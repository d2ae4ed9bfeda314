// Package gomap fills Go structs from parsed DCL documents.
//
// Exported fields are matched against keys by their `dcl:"name"` tag, or by
// the field name when there is none; a tag of "-" skips the field.  Struct
// and pointer to struct fields map to the section of the same name.  Keys
// that are absent leave their fields untouched, and keys without a field
// are ignored.
//
// Integer values may fill float fields.  Lists fill slices of strings or
// integers.  A field whose pointer type implements [Unmarshaler] decodes
// itself.
package gomap
