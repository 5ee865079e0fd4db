package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CategoryRule sobrescreve piso e teto de uma categoria.
// Valores absolutos têm precedência sobre as proporções da tarifa base.
type CategoryRule struct {
	Floor        *float64 `yaml:"floor"`
	Ceiling      *float64 `yaml:"ceiling"`
	FloorRatio   *float64 `yaml:"floor_ratio"`
	CeilingRatio *float64 `yaml:"ceiling_ratio"`
}

// PricingRules reúne as regras por categoria e as proporções padrão
type PricingRules struct {
	Categories map[string]CategoryRule `yaml:"categories"`

	defaultFloorRatio   float64
	defaultCeilingRatio float64
}

// LoadPricingRules lê o arquivo YAML de regras. Caminho vazio retorna apenas os padrões.
func LoadPricingRules(path string, pricing Pricing) (*PricingRules, error) {
	rules := &PricingRules{
		Categories:          map[string]CategoryRule{},
		defaultFloorRatio:   pricing.FloorRatio,
		defaultCeilingRatio: pricing.CeilingRatio,
	}

	if path == "" {
		return rules, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler regras de preço %s: %w", path, err)
	}

	if err := yaml.Unmarshal(content, rules); err != nil {
		return nil, fmt.Errorf("erro ao decodificar regras de preço %s: %w", path, err)
	}

	if rules.Categories == nil {
		rules.Categories = map[string]CategoryRule{}
	}

	return rules, nil
}

// Bounds retorna piso e teto da categoria para a tarifa base informada
func (r *PricingRules) Bounds(category string, baseRate float64) (float64, float64) {
	floor := baseRate * r.defaultFloorRatio
	ceiling := baseRate * r.defaultCeilingRatio

	rule, ok := r.Categories[category]
	if !ok {
		return floor, ceiling
	}

	if rule.FloorRatio != nil {
		floor = baseRate * *rule.FloorRatio
	}
	if rule.Floor != nil {
		floor = *rule.Floor
	}

	if rule.CeilingRatio != nil {
		ceiling = baseRate * *rule.CeilingRatio
	}
	if rule.Ceiling != nil {
		ceiling = *rule.Ceiling
	}

	return floor, ceiling
}
