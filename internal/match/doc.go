// Package match ranks known names by similarity to a misspelled one.
//
// Key functions:
//   - Normalize: folds an identifier for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Rank: orders candidate names by similarity
//   - Suggest: returns the close candidates worth showing to a user
package match
