package services

import (
	"context"
	"errors"
	"fmt"
	"mendel/api/models"
	"mendel/api/models/constants"
	viewMode "mendel/api/models/constants/view-mode"
	"mendel/api/models/constants/zygosity"
	"mendel/api/models/dtos"
	"mendel/api/services/genetics"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var ErrTooManyGenes = errors.New("too many genes")

type (
	CrossService struct {
		maxGenes              int
		largeGridThreshold    int
		batchConcurrencyLevel int
	}

	CrossOptions struct {
		ViewMode        constants.ViewMode
		DistinctGametes bool
	}
)

func NewCrossService(cfg *models.Config) *CrossService {
	return &CrossService{
		maxGenes:              cfg.Api.MaxGenes,
		largeGridThreshold:    cfg.Api.LargeGridThreshold,
		batchConcurrencyLevel: cfg.Api.BatchConcurrencyLevel,
	}
}

// Calculate runs one cross from the caller's gene list: gametes for both
// parents, the Punnett grid, and every statistic derived from it. An empty
// gene list is not an error and yields an empty cross.
func (cs *CrossService) Calculate(genes []genetics.GeneDefinition, opts CrossOptions) (*dtos.CrossResponseDto, error) {
	if cs.maxGenes > 0 && len(genes) > cs.maxGenes {
		return nil, fmt.Errorf("%w: %d requested, at most %d supported", ErrTooManyGenes, len(genes), cs.maxGenes)
	}
	if err := genetics.ValidateGenes(genes); err != nil {
		return nil, err
	}
	if genes == nil {
		genes = []genetics.GeneDefinition{}
	}

	generate := genetics.GenerateGametes
	if opts.DistinctGametes {
		generate = genetics.GenerateDistinctGametes
	}

	p1Gametes := generate(genetics.ParentGenotypes(genes, genetics.ParentOne))
	p2Gametes := generate(genetics.ParentGenotypes(genes, genetics.ParentTwo))

	result, err := genetics.CalculatePunnett(p1Gametes, p2Gametes)
	if err != nil {
		return nil, err
	}

	phenotypeStats := genetics.AnalyzePhenotypes(result.Outcomes, genes)
	genotypeStats := genetics.AnalyzeGenotypes(result.Outcomes)

	mode := opts.ViewMode
	if mode == viewMode.Undefined {
		mode = viewMode.Both
	}

	response := &dtos.CrossResponseDto{
		Id:      uuid.New(),
		Status:  http.StatusOK,
		Message: "Success",

		Genes:     genes,
		P1Gametes: p1Gametes,
		P2Gametes: p2Gametes,

		ViewMode:  mode,
		LargeGrid: cs.largeGridThreshold > 0 && result.TotalOffspring > cs.largeGridThreshold,

		Outcomes:       result.Outcomes,
		TotalOffspring: result.TotalOffspring,
		PhenotypeStats: phenotypeStats,
		PhenotypeRatio: genetics.PhenotypeRatio(phenotypeStats),
		GenotypeStats:  genotypeStats,
		GenotypeRatio:  genetics.GenotypeRatio(genotypeStats),

		ParentZygosity: parentZygosity(genes),
		Steps:          Walkthrough(genes, p1Gametes, p2Gametes, result, phenotypeStats),
	}

	if viewMode.ShowsGenotypes(mode) {
		response.Grid = result.Grid
	}
	if viewMode.ShowsPhenotypes(mode) {
		response.PhenotypeGrid = genetics.PhenotypeGrid(result.Grid, genes)
	}

	return response, nil
}

// CalculateBatch evaluates several crosses concurrently. Results keep the
// order of the requests; the first failing cross aborts the batch.
func (cs *CrossService) CalculateBatch(ctx context.Context, requests []dtos.CrossRequestDto, opts CrossOptions) ([]dtos.CrossResponseDto, error) {
	results := make([]dtos.CrossResponseDto, len(requests))

	limit := cs.batchConcurrencyLevel
	if limit < 1 {
		limit = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, request := range requests {
		i, request := i, request
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			response, err := cs.Calculate(request.Genes, opts)
			if err != nil {
				return fmt.Errorf("cross %d: %w", i+1, err)
			}

			results[i] = *response
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func parentZygosity(genes []genetics.GeneDefinition) []dtos.GeneZygosityDto {
	summary := make([]dtos.GeneZygosityDto, 0, len(genes))
	for _, gene := range genes {
		summary = append(summary, dtos.GeneZygosityDto{
			Gene:    gene.Name,
			Parent1: zygosity.ZygosityToString(genetics.Classify(gene.P1Genotype, gene)),
			Parent2: zygosity.ZygosityToString(genetics.Classify(gene.P2Genotype, gene)),
		})
	}
	return summary
}
