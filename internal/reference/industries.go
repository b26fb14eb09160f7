package reference

import (
	"errors"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Industry is one entry of the closed industry classification set. Code 0 is
// the "Select Domain" sentinel and never identifies a real industry.
type Industry struct {
	Code  int32  `mapstructure:"code" json:"code"`
	Label string `mapstructure:"label" json:"label"`
}

// DefaultIndustries returns the classification set baked into the portal,
// matching the backend's IndustryType enum.
func DefaultIndustries() []Industry {
	return []Industry{
		{Code: 1, Label: "Technology"},
		{Code: 2, Label: "Finance"},
		{Code: 3, Label: "Healthcare"},
		{Code: 4, Label: "Construction"},
		{Code: 5, Label: "Retail"},
		{Code: 6, Label: "Manufacturing"},
		{Code: 7, Label: "Logistics"},
	}
}

// Industries holds the current classification set; reloaded when the backing
// file changes.
type Industries struct {
	current atomic.Value // holds []Industry
}

// NewIndustries loads industries.yml when present and falls back to defaults.
func NewIndustries(log *zap.Logger) (*Industries, error) {
	v := viper.New()

	v.SetConfigName("industries")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/company-portal")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		v.SetDefault("industries", DefaultIndustries())
	}

	set, err := unmarshalIndustries(v)
	if err != nil {
		return nil, err
	}

	holder := &Industries{}
	holder.current.Store(set)

	v.WatchConfig()
	v.OnConfigChange(func(in fsnotify.Event) {
		reloaded, err := unmarshalIndustries(v)
		if err != nil {
			if log != nil {
				log.Warn("industries reload failed", zap.String("file", in.Name), zap.Error(err))
			}
			return
		}
		holder.current.Store(reloaded)
		if log != nil {
			log.Info("industries reloaded", zap.String("file", in.Name), zap.Int("count", len(reloaded)))
		}
	})

	return holder, nil
}

// All returns the classification set sorted by code.
func (i *Industries) All() []Industry {
	set := i.current.Load().([]Industry)
	out := make([]Industry, len(set))
	copy(out, set)
	sort.Slice(out, func(a, b int) bool { return out[a].Code < out[b].Code })
	return out
}

// Valid reports whether code identifies a real industry.
func (i *Industries) Valid(code int32) bool {
	if code == 0 {
		return false
	}
	for _, ind := range i.current.Load().([]Industry) {
		if ind.Code == code {
			return true
		}
	}
	return false
}

func unmarshalIndustries(v *viper.Viper) ([]Industry, error) {
	var set []Industry
	if err := v.UnmarshalKey("industries", &set); err != nil {
		return nil, err
	}
	if len(set) == 0 {
		set = DefaultIndustries()
	}
	for _, ind := range set {
		if ind.Code == 0 || strings.TrimSpace(ind.Label) == "" {
			return nil, errors.New("industries: entries need a nonzero code and a label")
		}
	}
	return set, nil
}

// Module wires the industry reference data.
var Module = fx.Module("reference",
	fx.Provide(NewIndustries),
)
