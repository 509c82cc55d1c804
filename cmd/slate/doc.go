// Command slate resolves batches of free-text titles against TMDB and
// reports how confidently each one matched.
package main
