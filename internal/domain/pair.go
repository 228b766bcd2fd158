package domain

import "strings"

const pairKeySeparator = "_"

// PairKey is the persisted form of a favorite pair: "BASE_TARGET".
type PairKey string

type Pair struct {
	Base   string
	Target string
}

func (p Pair) Key() PairKey { return PairKey(p.Base + pairKeySeparator + p.Target) }

func (p Pair) Label() string { return p.Base + "/" + p.Target }

func ParsePairKey(raw string) (Pair, error) {
	base, target, ok := strings.Cut(raw, pairKeySeparator)
	if !ok || base == "" || target == "" {
		return Pair{}, ErrInvalidPairKey
	}
	return Pair{Base: base, Target: target}, nil
}

// Favorite is one rendered favorite entry.
type Favorite struct {
	Key    PairKey `json:"pair"`
	Label  string  `json:"label"`
	Base   string  `json:"base"`
	Target string  `json:"target"`
}

func NewFavorite(p Pair) Favorite {
	return Favorite{Key: p.Key(), Label: p.Label(), Base: p.Base, Target: p.Target}
}
