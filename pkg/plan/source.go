package plan

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Source defines how plan limit overrides are loaded.
// Implementations must return complete records per tier.
type Source interface {
	Load(ctx context.Context) (map[Key]Limits, error)
}

// inMemSource is a Source backed by a static map.
type inMemSource struct {
	mu    sync.RWMutex
	plans map[Key]Limits
}

// NewInMemSource returns a Source over a deep copy of the given plans.
func NewInMemSource(plans map[Key]Limits) Source {
	plansCopy := make(map[Key]Limits, len(plans))
	for key, limits := range plans {
		plansCopy[key] = limits.Clone()
	}
	return &inMemSource{plans: plansCopy}
}

// NewBuiltinSource returns a Source over the built-in tier defaults.
func NewBuiltinSource() Source {
	return NewInMemSource(builtinLimits)
}

func (s *inMemSource) Load(ctx context.Context) (map[Key]Limits, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	plansCopy := make(map[Key]Limits, len(s.plans))
	for key, limits := range s.plans {
		plansCopy[key] = limits.Clone()
	}
	return plansCopy, nil
}

// fileSource loads plan limit overrides from a YAML file.
type fileSource struct {
	path string
}

// NewFileSource returns a Source reading tier overrides from a YAML file:
//
//	plans:
//	  standard:
//	    quotas:
//	      props: 100
//	      props_per_show: 100
//	    features: [export, advanced_features]
//
// Quota value -1 means unlimited. Tiers absent from the file keep their
// built-in defaults; unknown tier names are a configuration error.
func NewFileSource(path string) Source {
	return &fileSource{path: path}
}

type fileDoc struct {
	Plans map[string]filePlan `yaml:"plans"`
}

type filePlan struct {
	Quotas   map[string]int64 `yaml:"quotas"`
	Features []string         `yaml:"features"`
}

func (s *fileSource) Load(ctx context.Context) (map[Key]Limits, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadPlans, err)
	}

	var doc fileDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Join(ErrFailedToLoadPlans, err)
	}

	plans := make(map[Key]Limits, len(builtinLimits))
	for key, limits := range builtinLimits {
		plans[key] = limits.Clone()
	}

	for name, override := range doc.Plans {
		key := Key(name)
		if _, ok := builtinLimits[key]; !ok {
			return nil, errors.Join(ErrInvalidPlanConfiguration,
				fmt.Errorf("unknown plan %q in %s", name, s.path))
		}

		limits := plans[key]
		for resName, value := range override.Quotas {
			res := Resource(resName)
			if _, known := fallbackQuotas[res]; !known {
				return nil, errors.Join(ErrInvalidPlanConfiguration,
					fmt.Errorf("unknown resource %q for plan %q", resName, name))
			}
			if value < Unlimited {
				return nil, errors.Join(ErrInvalidPlanConfiguration,
					fmt.Errorf("negative limit %d for %s.%s", value, name, resName))
			}
			limits.Quotas[res] = value
		}

		if override.Features != nil {
			features := make([]Feature, 0, len(override.Features))
			for _, f := range override.Features {
				features = append(features, Feature(f))
			}
			limits.Features = features
		}

		plans[key] = limits
	}

	return plans, nil
}
