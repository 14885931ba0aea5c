package fbdomain

// EntityInsight é uma linha diária de métricas retornada pela Graph API.
// Os campos numéricos chegam como strings e são convertidos no integrador.
type EntityInsight struct {
	DateStart    string   `json:"date_start"`
	DateStop     string   `json:"date_stop"`
	Impressions  string   `json:"impressions"`
	Clicks       string   `json:"clicks"`
	Spend        string   `json:"spend"`
	Reach        string   `json:"reach"`
	Actions      []Action `json:"actions"`
	ActionValues []Action `json:"action_values"`
}

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

type Campaign struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}
