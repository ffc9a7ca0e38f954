// Package sanitizer provides input normalization for listing and identity
// data.
//
// All normalization functions are idempotent - applying them multiple times
// produces the same result. Functions handle invalid input gracefully,
// returning empty strings rather than errors.
//
// Normalization includes:
//   - Strings: Collapse whitespace, trim leading/trailing spaces
//   - Emails: Trim and lowercase, so lookups and the uniqueness index agree
//   - Numbers: Clamp to valid ranges
package sanitizer
