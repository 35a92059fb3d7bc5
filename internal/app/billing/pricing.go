package billing

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:embed pricing.yaml
var defaultPricing []byte

// CreditPack maps a payment-provider price to the credits it buys
type CreditPack struct {
	PriceID string `yaml:"price_id" json:"price_id"`
	Name    string `yaml:"name" json:"name"`
	Credits int    `yaml:"credits" json:"credits"`
}

// Pricing is the set of purchasable credit packs
type Pricing struct {
	TrialCredits int          `yaml:"trial_credits" json:"trial_credits"`
	Packs        []CreditPack `yaml:"packs" json:"packs"`
}

// LoadPricing reads a pricing YAML file, or the embedded defaults when path is empty
func LoadPricing(path string) (*Pricing, error) {
	data := defaultPricing
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read pricing file: %w", err)
		}
		data = b
	}
	return ParsePricing(data)
}

// ParsePricing decodes and validates pricing YAML
func ParsePricing(data []byte) (*Pricing, error) {
	var p Pricing
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse pricing: %w", err)
	}
	for _, pack := range p.Packs {
		if pack.PriceID == "" {
			return nil, fmt.Errorf("pricing pack %q has no price_id", pack.Name)
		}
		if pack.Credits <= 0 {
			return nil, fmt.Errorf("pricing pack %q must grant positive credits", pack.PriceID)
		}
	}
	ids := lo.Map(p.Packs, func(pack CreditPack, _ int) string { return pack.PriceID })
	if dupes := lo.FindDuplicates(ids); len(dupes) > 0 {
		return nil, fmt.Errorf("duplicate price ids: %v", dupes)
	}
	if p.TrialCredits < 0 {
		return nil, fmt.Errorf("trial_credits cannot be negative")
	}
	return &p, nil
}

// CreditsFor returns the credits granted by a price id
func (p *Pricing) CreditsFor(priceID string) (int, bool) {
	pack, ok := lo.Find(p.Packs, func(pack CreditPack) bool { return pack.PriceID == priceID })
	if !ok {
		return 0, false
	}
	return pack.Credits, true
}
