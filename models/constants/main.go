package constants

/*
	Defines a set of base level
	constants and enums to be used
	throughout Mendel and it's
	associated services.
*/
type ViewMode string
type QuizTopic string

type Zygosity int
