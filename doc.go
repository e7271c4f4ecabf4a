// Package inventory keeps inventory records in a flat, append-only text file.
//
// Each record holds an item description, the quantity on hand, the wholesale
// cost and the retail cost of the item. Records are written one after the
// other, four lines each, and are never modified or removed once written. A
// record is identified by its 1-based position in the file.
//
// The core functionalities include:
//   - Record: the data model and its invariants (single line description,
//     non-negative quantity and costs).
//   - Codec: encoding and decoding records to and from the four lines format.
//   - Store: the file handle, opened once for reading and appending, with
//     positional lookup by rescanning the file.
//   - Prompt: a generic parse-and-validate-with-retry console question.
//
// This package serves as the foundational logic for the `inv` command-line
// tool.
package inventory
