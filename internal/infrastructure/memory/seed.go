package memory

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"mergington/internal/domain/entities"
)

//go:embed seed.toml
var defaultSeed []byte

// SeedActivity is one named entry of a seed file.
type SeedActivity struct {
	Name            string   `toml:"name"`
	Description     string   `toml:"description"`
	Schedule        string   `toml:"schedule"`
	MaxParticipants int      `toml:"max_participants"`
	Participants    []string `toml:"participants"`
}

// Seed is the initial roster, in file order.
type Seed struct {
	Activities []SeedActivity `toml:"activities"`
}

// DefaultSeed returns the embedded Mergington activities.
func DefaultSeed() (Seed, error) {
	return ParseSeed(bytes.NewReader(defaultSeed))
}

// LoadSeedFile reads a seed from path.
func LoadSeedFile(path string) (Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return Seed{}, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()
	return ParseSeed(f)
}

// ParseSeed decodes and validates a TOML seed. Unknown keys are rejected.
func ParseSeed(r io.Reader) (Seed, error) {
	var seed Seed
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&seed); err != nil {
		return Seed{}, fmt.Errorf("decode seed: %w", err)
	}
	if err := seed.validate(); err != nil {
		return Seed{}, err
	}
	return seed, nil
}

func (s Seed) validate() error {
	names := make(map[string]struct{}, len(s.Activities))
	for i, a := range s.Activities {
		if strings.TrimSpace(a.Name) == "" {
			return fmt.Errorf("seed: activity #%d has no name", i+1)
		}
		if _, dup := names[a.Name]; dup {
			return fmt.Errorf("seed: duplicate activity %q", a.Name)
		}
		names[a.Name] = struct{}{}

		if a.MaxParticipants < 0 {
			return fmt.Errorf("seed: activity %q has negative max_participants", a.Name)
		}
		emails := make(map[string]struct{}, len(a.Participants))
		for _, email := range a.Participants {
			if _, dup := emails[email]; dup {
				return fmt.Errorf("seed: activity %q lists %q twice", a.Name, email)
			}
			emails[email] = struct{}{}
		}
	}
	return nil
}

// Names returns the activity names in file order.
func (s Seed) Names() []string {
	out := make([]string, len(s.Activities))
	for i, a := range s.Activities {
		out[i] = a.Name
	}
	return out
}

func (s Seed) build() map[string]*entities.Activity {
	out := make(map[string]*entities.Activity, len(s.Activities))
	for _, a := range s.Activities {
		activity := entities.Activity{
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    a.Participants,
		}.Clone()
		out[a.Name] = &activity
	}
	return out
}
