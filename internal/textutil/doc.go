// Package textutil provides the text helpers used for title comparison.
//
// NormalizeTitle reduces a human-entered or provider-returned title to a
// canonical comparison key so exact-match detection is robust to case,
// punctuation, and whitespace variance. The reduction is intentionally
// simple and deterministic: no locale-aware folding, no stop-word removal,
// no transliteration.
package textutil
