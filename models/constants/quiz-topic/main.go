package quizTopic

import (
	"mendel/api/models/constants"
	"strings"
)

const (
	Unknown constants.QuizTopic = "Unknown"

	GeneralGenetics      constants.QuizTopic = "General Genetics"
	MendelianInheritance constants.QuizTopic = "Mendelian Inheritance"
	PunnettSquares       constants.QuizTopic = "Punnett Squares"
	DnaAndRna            constants.QuizTopic = "DNA & RNA"
	MeiosisAndMitosis    constants.QuizTopic = "Meiosis & Mitosis"

	Default = GeneralGenetics
)

var All = []constants.QuizTopic{
	GeneralGenetics,
	MendelianInheritance,
	PunnettSquares,
	DnaAndRna,
	MeiosisAndMitosis,
}

func CastToQuizTopic(text string) constants.QuizTopic {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "general genetics":
		return GeneralGenetics
	case "mendelian inheritance":
		return MendelianInheritance
	case "punnett squares":
		return PunnettSquares
	case "dna & rna", "dna and rna":
		return DnaAndRna
	case "meiosis & mitosis", "meiosis and mitosis":
		return MeiosisAndMitosis
	default:
		return Unknown
	}
}

func IsKnownQuizTopic(text string) bool {
	// attempt to cast to a quiz topic and
	// return if unknown
	return CastToQuizTopic(text) != Unknown
}
