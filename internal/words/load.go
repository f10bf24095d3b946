package words

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/rudreshark/hangman-game-with-gui/assets"
)

// FileName is the list file for a tier and base category, e.g. "hard_fruits.txt".
func FileName(t Tier, c Category) string {
	return t.Key() + "_" + c.Key() + ".txt"
}

// LoadEmbedded reads the lists compiled into the binary.
func LoadEmbedded() (Lists, error) {
	return LoadFS(assets.Words)
}

// LoadDir reads list files from dir. Missing files load as empty lists and
// are covered by the bank's fallback chain.
func LoadDir(dir string) (Lists, error) {
	st, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("words dir: %w", err)
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("words dir: %s is not a directory", dir)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS reads every <tier>_<category>.txt present in fsys.
func LoadFS(fsys fs.FS) (Lists, error) {
	lists := Lists{}
	for _, t := range Tiers {
		for _, c := range baseCategories {
			name := FileName(t, c)
			lines, err := assets.ReadLines(fsys, name)
			if err != nil && !assets.IsNotExist(err) {
				return nil, fmt.Errorf("read %s: %w", name, err)
			}
			lists.Set(t, c, lines)
		}
	}
	return lists, nil
}
