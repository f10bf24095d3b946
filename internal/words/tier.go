package words

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownTier     = errors.New("unknown tier")
	ErrUnknownCategory = errors.New("unknown category")
)

// Tier is a difficulty level; the zero value is Easy.
type Tier int

const (
	Easy Tier = iota
	Medium
	Hard
	Extreme
)

// Tiers lists every tier in ascending difficulty.
var Tiers = []Tier{Easy, Medium, Hard, Extreme}

func (t Tier) String() string {
	switch t {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	case Extreme:
		return "Extreme"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// Key is the lowercase identifier used in file names, the database and JSON.
func (t Tier) Key() string { return strings.ToLower(t.String()) }

func (t Tier) IsValid() bool { return t >= Easy && t <= Extreme }

// ParseTier accepts a tier name in any case, surrounding whitespace ignored.
func ParseTier(s string) (Tier, error) {
	k := strings.ToLower(strings.TrimSpace(s))
	for _, t := range Tiers {
		if t.Key() == k {
			return t, nil
		}
	}
	return Easy, fmt.Errorf("%w: %q", ErrUnknownTier, s)
}

func (t Tier) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTier, int(t))
	}
	return []byte(t.Key()), nil
}

func (t *Tier) UnmarshalText(b []byte) error {
	v, err := ParseTier(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Category is a word category. Mixed is derived from the other two.
type Category int

const (
	Mixed Category = iota
	Fruits
	Vegetables
)

// Categories lists every selectable category, Mixed first as the default.
var Categories = []Category{Mixed, Fruits, Vegetables}

// baseCategories are the ones backed by stored lists.
var baseCategories = []Category{Fruits, Vegetables}

func (c Category) String() string {
	switch c {
	case Mixed:
		return "Mixed"
	case Fruits:
		return "Fruits"
	case Vegetables:
		return "Vegetables"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

func (c Category) Key() string { return strings.ToLower(c.String()) }

func (c Category) IsValid() bool { return c >= Mixed && c <= Vegetables }

// ParseCategory accepts a category name in any case.
func ParseCategory(s string) (Category, error) {
	k := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories {
		if c.Key() == k {
			return c, nil
		}
	}
	return Mixed, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return []byte(c.Key()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	v, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
