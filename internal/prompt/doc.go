// Package prompt implements domain.Prompter on a terminal.
//
// Secrets are read without echo when the input is a TTY (golang.org/x/term);
// otherwise each answer is one line of input, which keeps the prompter
// scriptable from pipes and tests. An empty answer selects the default.
package prompt
