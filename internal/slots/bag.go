package slots

// Bag is the merged time+volume+language view served by the extraction
// endpoint. Empty fields are omitted on the wire.
type Bag struct {
	Seconds  *int   `json:"seconds,omitempty"`
	To       string `json:"to,omitempty"`
	Endpoint string `json:"endpoint,omitempty"`
	Level    *int   `json:"level,omitempty"`
	Delta    *int   `json:"delta,omitempty"`
	Language string `json:"language,omitempty"`
}

// Extract runs the stateless extractors and merges their results.
func Extract(text string) Bag {
	ts := Time(text)
	vs := Volume(text)
	return Bag{
		Seconds:  ts.Seconds,
		To:       ts.To,
		Endpoint: ts.Endpoint,
		Level:    vs.Level,
		Delta:    vs.Delta,
		Language: Language(text),
	}
}

// Empty reports whether no extractor found anything.
func (b Bag) Empty() bool {
	return b.Seconds == nil && b.To == "" && b.Endpoint == "" &&
		b.Level == nil && b.Delta == nil && b.Language == ""
}
