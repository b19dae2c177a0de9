package presets

import (
	"fmt"
	"mendel/api/models/dtos"
	"mendel/api/services/genetics"
	"os"
	"strings"

	yaml "gopkg.in/yaml.v2"
)

type presetFile struct {
	Presets []dtos.PresetDto `yaml:"presets"`
}

// Load reads cross presets from a YAML file. Every preset gene is validated
// so a broken file is reported at startup rather than on first use.
func Load(path string) ([]dtos.PresetDto, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var file presetFile
	if err := yaml.NewDecoder(f).Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding presets %s: %w", path, err)
	}

	for _, p := range file.Presets {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("presets %s: preset without a name", path)
		}
		if err := genetics.ValidateGenes(p.Genes); err != nil {
			return nil, fmt.Errorf("presets %s: preset %q: %w", path, p.Name, err)
		}
	}

	return file.Presets, nil
}

// LoadOrDefault falls back to the built-in presets when no path is configured.
func LoadOrDefault(path string) ([]dtos.PresetDto, error) {
	if path == "" {
		return Defaults(), nil
	}
	return Load(path)
}

func Find(presets []dtos.PresetDto, name string) (dtos.PresetDto, bool) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return dtos.PresetDto{}, false
}

func Defaults() []dtos.PresetDto {
	height := genetics.GeneDefinition{
		Name:       "Height",
		DomSymbol:  "T",
		RecSymbol:  "t",
		DomPheno:   "Tall",
		RecPheno:   "Short",
		P1Genotype: "Tt",
		P2Genotype: "Tt",
	}
	shape := genetics.GeneDefinition{
		Name:       "Seed shape",
		DomSymbol:  "R",
		RecSymbol:  "r",
		DomPheno:   "Round",
		RecPheno:   "Wrinkled",
		P1Genotype: "Rr",
		P2Genotype: "Rr",
	}
	colour := genetics.GeneDefinition{
		Name:       "Seed colour",
		DomSymbol:  "Y",
		RecSymbol:  "y",
		DomPheno:   "Yellow",
		RecPheno:   "Green",
		P1Genotype: "Yy",
		P2Genotype: "Yy",
	}
	flower := genetics.GeneDefinition{
		Name:       "Flower colour",
		DomSymbol:  "P",
		RecSymbol:  "p",
		DomPheno:   "Purple",
		RecPheno:   "White",
		P1Genotype: "Pp",
		P2Genotype: "Pp",
	}

	testCross := height
	testCross.P2Genotype = "tt"

	trueBreeding := height
	trueBreeding.P1Genotype, trueBreeding.P2Genotype = "TT", "tt"

	return []dtos.PresetDto{
		{
			Name:        "monohybrid",
			Description: "Tt x Tt: the classic 3:1 phenotype ratio",
			Genes:       []genetics.GeneDefinition{height},
		},
		{
			Name:        "test-cross",
			Description: "Tt x tt: a heterozygote crossed with a homozygous recessive",
			Genes:       []genetics.GeneDefinition{testCross},
		},
		{
			Name:        "true-breeding",
			Description: "TT x tt: every offspring is heterozygous",
			Genes:       []genetics.GeneDefinition{trueBreeding},
		},
		{
			Name:        "dihybrid",
			Description: "RrYy x RrYy: Mendel's pea seeds and the 9:3:3:1 ratio",
			Genes:       []genetics.GeneDefinition{shape, colour},
		},
		{
			Name:        "trihybrid",
			Description: "RrYyPp x RrYyPp: 64 offspring combinations",
			Genes:       []genetics.GeneDefinition{shape, colour, flower},
		},
	}
}
