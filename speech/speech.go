// Package speech turns descriptions into spoken audio with an external
// text-to-speech program. Rendered clips are cached on disk by text hash.
package speech

import (
	"context"
	"fmt"
	"hash/fnv"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/juju/errors"
)

// Synthesizer renders text into a wav file at path.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, path string) error
}

// Command runs Name Args... -w path text, the espeak-ng calling convention.
type Command struct {
	Name string
	Args []string
}

func (c Command) Synthesize(ctx context.Context, text, path string) error {
	args := append(append([]string(nil), c.Args...), "-w", path, text)
	out, err := exec.CommandContext(ctx, c.Name, args...).CombinedOutput()
	if err != nil {
		return errors.Annotatef(err, "%s: %s", c.Name, out)
	}
	return nil
}

// CacheName is the file name of the clip for text: an 8 digit hash plus ".wav".
func CacheName(text string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(text))
	return fmt.Sprintf("%08d.wav", h.Sum32()%100000000)
}

// Cache keeps synthesized clips in Dir.
type Cache struct {
	Dir   string
	Synth Synthesizer
}

// Path returns the clip for text, synthesizing it when it is not cached yet.
func (c *Cache) Path(ctx context.Context, text string) (string, error) {
	path := filepath.Join(c.Dir, CacheName(text))
	if st, err := os.Stat(path); err == nil && st.Size() > 0 {
		return path, nil
	}
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return "", errors.Annotate(err, "speech cache")
	}
	tmp := path + ".tmp"
	if err := c.Synth.Synthesize(ctx, text, tmp); err != nil {
		_ = os.Remove(tmp)
		return "", errors.Annotate(err, "synthesize")
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", errors.Trace(err)
	}
	return path, nil
}
