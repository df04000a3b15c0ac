// Package types defines the data model shared by every mrdfkit package:
// scalar kinds, decoded values, field definitions, profiles and typed errors.
//
// Design goals:
//   - Field tables are plain data; nothing here touches a byte buffer.
//   - Profiles are immutable once built and hand out copies.
//   - Typed errors with stable categories (out of bounds/parse/length mismatch/...).
//
// This package has no dependencies beyond the standard library.
package types
