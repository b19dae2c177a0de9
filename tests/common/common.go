package common

import (
	"context"
	"fmt"
	"mendel/api/models"
	"os"
	"path"
	"runtime"
	"sync"

	yaml "gopkg.in/yaml.v2"
)

const (
	CrossesPath          string = "%s/crosses%s"
	CrossesBatchPath     string = "%s/crosses/batch"
	PresetsPath          string = "%s/crosses/presets"
	PresetCalculatePath  string = "%s/crosses/presets/%s%s"
	GeneTemplatePath     string = "%s/genes/template%s"
	LearnExplainPath     string = "%s/learn/explain"
	LearnSuggestionsPath string = "%s/learn/suggestions"
	QuizTopicsPath       string = "%s/quiz/topics"
	QuizGeneratePath     string = "%s/quiz/generate%s"
	QuizScorePath        string = "%s/quiz/score"
)

func InitConfig() *models.Config {
	var cfg models.Config

	// get this file's path
	_, filename, _, _ := runtime.Caller(0)
	folderpath := path.Dir(filename)

	// retrieve common's test.config
	f, err := os.Open(fmt.Sprintf("%s/test.config.yml", folderpath))
	if err != nil {
		processError(err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&cfg)
	if err != nil {
		processError(err)
	}

	return &cfg
}

func processError(err error) {
	fmt.Println(err)
	os.Exit(2)
}

// ScriptedGenerator replays a fixed response for every prompt and records
// what it was asked.
type ScriptedGenerator struct {
	Response string
	Error    error

	mu      sync.Mutex
	prompts []string
}

func (g *ScriptedGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)
	return g.Response, g.Error
}

func (g *ScriptedGenerator) Prompts() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.prompts...)
}
