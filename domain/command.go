package domain

// Intent is the classified purpose of a user command.
type Intent string

const (
	IntentSearch    Intent = "search"
	IntentAddToCart Intent = "add_to_cart"
	IntentSummarize Intent = "summarize"
	IntentExtract   Intent = "extract"
	IntentShowOrder Intent = "show_orders"
	IntentNavigate  Intent = "navigate"
	IntentCompare   Intent = "compare"
	IntentRecommend Intent = "recommend"
	IntentUnknown   Intent = "unknown"
)

// CommandParams is the tagged union of per-intent parameter shapes. A
// ParsedCommand carries exactly one concrete variant.
type CommandParams interface {
	isCommandParams()
}

// ParsedCommand is the parser output: one intent plus its params.
// Params is nil for intents that carry no data (add_to_cart, summarize).
type ParsedCommand struct {
	Intent Intent
	Params CommandParams
}

type SearchParams struct {
	Query         string `json:"query"`
	OriginalQuery string `json:"original_query"`
}

type OrdersParams struct {
	Count int `json:"count"`
}

type NavigateParams struct {
	Target string `json:"target"`
}

type CompareParams struct {
	Product1 string   `json:"product1,omitempty"`
	Product2 string   `json:"product2,omitempty"`
	UseCart  bool     `json:"use_cart"`
	Criteria []string `json:"criteria"`
}

type RecommendParams struct {
	Budget      float64  `json:"budget"`
	Requirement string   `json:"requirement"`
	Priorities  []string `json:"priorities"`
}

type UnknownParams struct {
	OriginalCommand string `json:"original_command"`
}

func (SearchParams) isCommandParams()    {}
func (OrdersParams) isCommandParams()    {}
func (NavigateParams) isCommandParams()  {}
func (CompareParams) isCommandParams()   {}
func (RecommendParams) isCommandParams() {}
func (UnknownParams) isCommandParams()   {}
