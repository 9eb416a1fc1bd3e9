package marketcl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Store manages the game data directory: one game-<name>.json file per game
// and a config.json naming the current game.
//
// The store assumes exclusive ownership of the directory, as the game is
// single-player and single-process. Saves go through a temporary file and an
// atomic rename so a crash mid-write never corrupts a game file.
type Store struct {
	dir string
}

const configFile = "config.json"

var gameNameRe = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// DefaultDir returns the default data directory, ~/.marketcl.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".marketcl"), nil
}

// OpenStore opens (creating if needed) the data directory at dir.
func OpenStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create data directory %q: %v: %w", dir, err, ErrPersistence)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory path.
func (s *Store) Dir() string { return s.dir }

func (s *Store) gamePath(name string) string {
	return filepath.Join(s.dir, "game-"+name+".json")
}

// normalizeName lowercases a game name and validates it.
func normalizeName(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !gameNameRe.MatchString(name) {
		return "", fmt.Errorf("invalid game name %q: use lowercase letters, digits, - or _", name)
	}
	return name, nil
}

type config struct {
	Current string `json:"current"`
}

// CurrentGame returns the name of the current game, or "" when no game has
// been created yet.
func (s *Store) CurrentGame() (string, error) {
	content, err := os.ReadFile(filepath.Join(s.dir, configFile))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("could not read config: %v: %w", err, ErrPersistence)
	}
	var cfg config
	if err := json.Unmarshal(content, &cfg); err != nil {
		return "", fmt.Errorf("could not parse config: %v: %w", err, ErrPersistence)
	}
	return cfg.Current, nil
}

// SetCurrent makes name the current game. The game must exist.
func (s *Store) SetCurrent(name string) error {
	name, err := normalizeName(name)
	if err != nil {
		return err
	}
	if _, err := os.Stat(s.gamePath(name)); err != nil {
		return fmt.Errorf("no game file for %q: %w", name, err)
	}
	content, err := json.Marshal(config{Current: name})
	if err != nil {
		return err
	}
	return s.writeAtomic(filepath.Join(s.dir, configFile), content)
}

// ListGames returns the names of all games in the store, sorted.
func (s *Store) ListGames() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("could not read data directory %q: %v: %w", s.dir, err, ErrPersistence)
	}
	var names []string
	for _, e := range entries {
		n := e.Name()
		if e.IsDir() || !strings.HasPrefix(n, "game-") || !strings.HasSuffix(n, ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(strings.TrimPrefix(n, "game-"), ".json"))
	}
	slices.Sort(names)
	return names, nil
}

// CreateGame creates a new game file, persists it, and makes it the current
// game. It fails if a game with that name already exists.
func (s *Store) CreateGame(name string, initialCash, tradeFee Money, taxRate decimal.Decimal) (*Game, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(s.gamePath(name)); err == nil {
		return nil, fmt.Errorf("game %q already exists", name)
	}

	game := NewGame(name, NewAccount(initialCash, tradeFee, taxRate))
	game.SetSaver(s)
	if err := s.SaveGame(game); err != nil {
		return nil, err
	}
	if err := s.SetCurrent(name); err != nil {
		return nil, err
	}
	return game, nil
}

// LoadGame loads the named game and wires this store as its saver.
func (s *Store) LoadGame(name string) (*Game, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(s.gamePath(name))
	if err != nil {
		return nil, fmt.Errorf("could not open game %q: %v: %w", name, err, ErrPersistence)
	}
	defer f.Close()

	game, err := DecodeGame(f, name)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrPersistence)
	}
	game.SetSaver(s)
	return game, nil
}

// LoadCurrent loads the current game.
func (s *Store) LoadCurrent() (*Game, error) {
	name, err := s.CurrentGame()
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("no current game; create one first")
	}
	return s.LoadGame(name)
}

// SaveGame persists the full game state, atomically replacing any previous
// file. It implements Saver.
func (s *Store) SaveGame(g *Game) error {
	var buf strings.Builder
	if err := EncodeGame(&buf, g); err != nil {
		return fmt.Errorf("%v: %w", err, ErrPersistence)
	}
	return s.writeAtomic(s.gamePath(g.Name()), []byte(buf.String()))
}

// DeleteGame removes the named game file. Deleting the current game clears
// the current selection.
func (s *Store) DeleteGame(name string) error {
	name, err := normalizeName(name)
	if err != nil {
		return err
	}
	if err := os.Remove(s.gamePath(name)); err != nil {
		return fmt.Errorf("could not delete game %q: %v: %w", name, err, ErrPersistence)
	}
	current, err := s.CurrentGame()
	if err != nil {
		return err
	}
	if current == name {
		content, err := json.Marshal(config{})
		if err != nil {
			return err
		}
		return s.writeAtomic(filepath.Join(s.dir, configFile), content)
	}
	return nil
}

// writeAtomic writes content to path via a temp file in the same directory
// and an atomic rename, so readers never observe a partial file.
func (s *Store) writeAtomic(path string, content []byte) error {
	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temp file: %v: %w", err, ErrPersistence)
	}
	tmpName := tmp.Name()
	_, werr := tmp.Write(content)
	serr := tmp.Sync()
	cerr := tmp.Close()
	if err := errors.Join(werr, serr, cerr); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("could not write %q: %v: %w", path, err, ErrPersistence)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("could not replace %q: %v: %w", path, err, ErrPersistence)
	}
	return nil
}
