package vault

import (
	"errors"
	"fmt"
)

// ErrEmptyLoadout indicates a loadout had no modules.
var ErrEmptyLoadout = errors.New("loadout must contain at least one module")

// ErrLoadoutTooLarge indicates a loadout exceeded the configured module cap.
var ErrLoadoutTooLarge = errors.New("loadout exceeds the module cap")

// ErrDifficultyOutOfRange indicates a module difficulty outside [0,1].
var ErrDifficultyOutOfRange = errors.New("module difficulty must be between 0 and 1")

// ErrInvalidWeight indicates a non-positive module weight.
var ErrInvalidWeight = errors.New("module weight must be positive")

// ErrUnknownKind indicates a challenge kind missing from the catalog.
var ErrUnknownKind = errors.New("unknown challenge kind")

// ErrEmptyCatalog indicates a catalog with no entries.
var ErrEmptyCatalog = errors.New("catalog must contain at least one kind")

// ErrInvalidRules indicates rules with a non-positive cap or ceiling.
var ErrInvalidRules = errors.New("rules must have a positive module cap and score ceiling")

// ChallengeModule is one challenge protecting a vault. Difficulty is the
// per-instance dial in [0,1]; Weight is fixed per kind by the catalog.
type ChallengeModule struct {
	ID          string
	Kind        ModuleKind
	Difficulty  float64
	Weight      float64
	Name        string
	Description string
}

// Loadout is the ordered module set protecting a vault. EffectiveScore is
// always the scorer output for Modules; loadouts are replaced wholesale
// rather than edited in place, so the two can never drift.
type Loadout struct {
	Modules        []ChallengeModule
	EffectiveScore float64
}

// Rules bundles the scoring configuration: the module cap, the score
// ceiling that a max-size all-max-difficulty loadout of the heaviest kind
// maps to, and the per-kind catalog.
type Rules struct {
	MaxModules   int
	ScoreCeiling float64
	Catalog      Catalog
}

// DefaultRules returns the stock scoring rules.
func DefaultRules() Rules {
	return Rules{
		MaxModules:   6,
		ScoreCeiling: 100,
		Catalog:      DefaultCatalog(),
	}
}

// Validate checks the rules are usable.
func (r Rules) Validate() error {
	if r.MaxModules <= 0 || r.ScoreCeiling <= 0 {
		return ErrInvalidRules
	}
	return r.Catalog.Validate()
}

// NewModule builds a module of the given kind from the catalog.
func (r Rules) NewModule(id string, kind ModuleKind, difficulty float64) (ChallengeModule, error) {
	if difficulty < 0 || difficulty > 1 {
		return ChallengeModule{}, fmt.Errorf("%w: %v", ErrDifficultyOutOfRange, difficulty)
	}
	info, err := r.Catalog.Info(kind)
	if err != nil {
		return ChallengeModule{}, err
	}
	return ChallengeModule{
		ID:          id,
		Kind:        kind,
		Difficulty:  difficulty,
		Weight:      info.Weight,
		Name:        info.Name,
		Description: info.Description,
	}, nil
}

// Score aggregates the modules into a single security score on the
// [0, ScoreCeiling] scale. The score is the weighted difficulty sum
// normalized against a full loadout of the heaviest catalog kind at
// maximum difficulty, so it is strictly increasing in any single
// module's difficulty.
func (r Rules) Score(modules []ChallengeModule) (float64, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	if len(modules) == 0 {
		return 0, ErrEmptyLoadout
	}
	if len(modules) > r.MaxModules {
		return 0, fmt.Errorf("%w: %d modules, cap %d", ErrLoadoutTooLarge, len(modules), r.MaxModules)
	}

	sum := 0.0
	for _, module := range modules {
		if module.Difficulty < 0 || module.Difficulty > 1 {
			return 0, fmt.Errorf("%w: module %s", ErrDifficultyOutOfRange, module.ID)
		}
		if module.Weight <= 0 {
			return 0, fmt.Errorf("%w: module %s", ErrInvalidWeight, module.ID)
		}
		sum += module.Difficulty * module.Weight
	}

	ceilingSum := float64(r.MaxModules) * r.Catalog.MaxWeight()
	return r.ScoreCeiling * sum / ceilingSum, nil
}

// NewLoadout validates the modules and returns a loadout with its cached
// effective score.
func (r Rules) NewLoadout(modules []ChallengeModule) (Loadout, error) {
	score, err := r.Score(modules)
	if err != nil {
		return Loadout{}, err
	}
	copied := append([]ChallengeModule{}, modules...)
	return Loadout{Modules: copied, EffectiveScore: score}, nil
}
