package network

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/wagerlab/predictgate/internal/domain"
)

// Profile is one affiliate network's parameter and event vocabulary.
// Alias lists are ordered: the first alias present with a non-empty value
// wins. Event synonym sets are matched case-insensitively after trimming.
type Profile struct {
	Name            string              `yaml:"-"`
	PlayerIDAliases []string            `yaml:"player_id_aliases"`
	EventAliases    []string            `yaml:"event_aliases"`
	AmountAliases   []string            `yaml:"amount_aliases"`
	Events          map[string][]string `yaml:"events"`

	// eventIndex maps lowercased synonym -> canonical kind, built on load
	eventIndex map[string]domain.EventKind
}

// registryFile is the on-disk shape of configs/networks.yaml.
type registryFile struct {
	Default  *Profile            `yaml:"default"`
	Networks map[string]*Profile `yaml:"networks"`
}

// Registry holds the default vocabulary profile plus per-network overrides,
// reloadable at runtime so new affiliate integrations don't need a redeploy.
type Registry interface {
	// Resolve returns the profile for a network name, falling back to the
	// default profile for "" or unknown names.
	Resolve(name string) *Profile

	// Default returns the fallback profile.
	Default() *Profile

	// Reload re-reads the profile configuration.
	Reload() error
}

type registry struct {
	mu sync.RWMutex

	path     string
	fallback *Profile
	networks map[string]*Profile
}

// NewRegistry loads vocabulary profiles from a YAML file.
func NewRegistry(path string) (Registry, error) {
	r := &registry{path: path}

	if err := r.Reload(); err != nil {
		return nil, err
	}

	return r, nil
}

// NewBuiltinRegistry returns a registry that only carries the built-in
// default vocabulary. Used by tests and as a dev-mode fallback.
func NewBuiltinRegistry() Registry {
	return &registry{
		fallback: DefaultProfile(),
		networks: map[string]*Profile{},
	}
}

// DefaultProfile returns the stock vocabulary observed across the common
// affiliate networks.
func DefaultProfile() *Profile {
	p := &Profile{
		Name:            "default",
		PlayerIDAliases: []string{"sub1", "subid1", "user_id", "player_id", "subid", "visitor_id"},
		EventAliases:    []string{"goal", "event_type", "event", "status"},
		AmountAliases:   []string{"amount", "payout", "revenue"},
		Events: map[string][]string{
			string(domain.EventRegistration): {"registration", "reg"},
			string(domain.EventDeposit):      {"deposit", "first_deposit", "first-deposit", "recurring_deposit", "dep", "ftd"},
		},
	}
	if err := p.buildIndex(); err != nil {
		// Built-in vocabulary only maps to known kinds
		panic(err)
	}
	return p
}

// Reload re-reads the profile file. On error the previous profiles stay live.
// A registry built without a file keeps serving the built-in vocabulary.
func (r *registry) Reload() error {
	if r.path == "" {
		return nil
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return fmt.Errorf("failed to read networks config: %w", err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse networks config: %w", err)
	}

	fallback := file.Default
	if fallback == nil {
		fallback = DefaultProfile()
	} else {
		fallback.Name = "default"
		if err := fallback.buildIndex(); err != nil {
			return err
		}
	}

	networks := make(map[string]*Profile, len(file.Networks))
	for name, p := range file.Networks {
		if p == nil {
			continue
		}
		p.Name = name
		p.inheritFrom(fallback)
		if err := p.buildIndex(); err != nil {
			return err
		}
		networks[strings.ToLower(name)] = p
	}

	r.mu.Lock()
	r.fallback = fallback
	r.networks = networks
	r.mu.Unlock()

	return nil
}

func (r *registry) Resolve(name string) *Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.networks[strings.ToLower(name)]; ok {
		return p
	}
	return r.fallback
}

func (r *registry) Default() *Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fallback
}

// inheritFrom fills unset fields of a network override from the default
// profile, so overrides only need to state what differs.
func (p *Profile) inheritFrom(def *Profile) {
	if len(p.PlayerIDAliases) == 0 {
		p.PlayerIDAliases = def.PlayerIDAliases
	}
	if len(p.EventAliases) == 0 {
		p.EventAliases = def.EventAliases
	}
	if len(p.AmountAliases) == 0 {
		p.AmountAliases = def.AmountAliases
	}
	if len(p.Events) == 0 {
		p.Events = def.Events
	}
}

func (p *Profile) buildIndex() error {
	idx := make(map[string]domain.EventKind)
	for kind, synonyms := range p.Events {
		canonical := domain.EventKind(kind)
		if canonical != domain.EventRegistration && canonical != domain.EventDeposit {
			return fmt.Errorf("profile %s: unknown canonical event kind %q", p.Name, kind)
		}
		for _, syn := range synonyms {
			idx[strings.ToLower(strings.TrimSpace(syn))] = canonical
		}
	}
	p.eventIndex = idx
	return nil
}
