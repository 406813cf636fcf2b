package domain

// Step is one unit of a decoded trace: a two-symbol input and the output the
// completed transducer must emit for it.
type Step struct {
	Index  int    `json:"index"`
	Input  string `json:"input"`
	Output string `json:"output"`
}
