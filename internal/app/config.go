package app

import (
	"io"

	"github.com/spf13/afero"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home  string    // record directory, e.g. $HOME/.nodekey
	Store string    // "file" or "sqlite"
	Fs    afero.Fs  // optional; defaults to the host filesystem
	In    io.Reader // optional; prompt input, defaults to os.Stdin
	Out   io.Writer // optional; prompt output, defaults to os.Stderr
}
