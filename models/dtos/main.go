package dtos

import (
	"mendel/api/models/constants"
	"mendel/api/services/genetics"
	"time"

	"github.com/google/uuid"
)

// ---- Crosses
type CrossRequestDto struct {
	Genes []genetics.GeneDefinition `json:"genes"`
}

type BatchCrossRequestDto struct {
	Crosses []CrossRequestDto `json:"crosses"`
}

type CrossResponseDto struct {
	Id      uuid.UUID `json:"id"`
	Status  int       `json:"status"`
	Message string    `json:"message"`

	Genes     []genetics.GeneDefinition `json:"genes"`
	P1Gametes []string                  `json:"p1Gametes"`
	P2Gametes []string                  `json:"p2Gametes"`

	ViewMode      constants.ViewMode `json:"viewMode"`
	Grid          [][]string         `json:"grid"`          // nil in phenotype view
	PhenotypeGrid [][]string         `json:"phenotypeGrid"` // nil in genotype view
	LargeGrid     bool               `json:"largeGrid"`

	Outcomes       genetics.Outcomes        `json:"outcomes"`
	TotalOffspring int                      `json:"totalOffspring"`
	PhenotypeStats []genetics.PhenotypeStat `json:"phenotypeStats"`
	PhenotypeRatio string                   `json:"phenotypeRatio"`
	GenotypeStats  []genetics.GenotypeStat  `json:"genotypeStats"`
	GenotypeRatio  string                   `json:"genotypeRatio"`

	ParentZygosity []GeneZygosityDto    `json:"parentZygosity"`
	Steps          []WalkthroughStepDto `json:"steps"`
}

type BatchCrossResponseDto struct {
	Status  int                `json:"status"`
	Message string             `json:"message"`
	Count   int                `json:"count"`
	Results []CrossResponseDto `json:"results"`
}

type GeneZygosityDto struct {
	Gene    string `json:"gene"`
	Parent1 string `json:"parent1"`
	Parent2 string `json:"parent2"`
}

type WalkthroughStepDto struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Details     []string `json:"details"`
}

type PresetsResponseDto struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Count   int         `json:"count"`
	Results []PresetDto `json:"results"`
}

type PresetDto struct {
	Name        string                    `json:"name" yaml:"name"`
	Description string                    `json:"description" yaml:"description"`
	Genes       []genetics.GeneDefinition `json:"genes" yaml:"genes"`
}

// ---- Errors
type GeneralErrorResponseDto struct {
	Code      int            `json:"code"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Errors    []GeneralError `json:"errors"`
}

type GeneralError struct {
	Message string `json:"message"`
}
