package rpc

// Tool names.
const (
	ToolRefinanceCar          = "shouldIRefinanceCar"
	ToolRefinanceMortgage     = "shouldIRefinanceMortgage"
	ToolRefinancePersonalLoan = "shouldIRefinancePersonalLoan"
	ToolBalanceTransfer       = "shouldIBalanceTransfer"
)

// Tool describes a callable tool for tools/list.
type Tool struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	InputSchema Schema `json:"inputSchema"`
}

// Schema is the JSON Schema fragment describing a tool's arguments.
type Schema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required"`
}

// Property describes one argument.
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Tools lists every tool the server exposes, in a stable order.
func Tools() []Tool {
	return []Tool{
		{
			Name:        ToolRefinanceCar,
			Description: "Calculate whether to refinance an auto/car loan",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"loanBalance":     {Type: "number", Description: "Current loan balance in dollars"},
					"currentRate":     {Type: "number", Description: "Current interest rate as percentage (e.g., 8.5)"},
					"monthsRemaining": {Type: "number", Description: "Months remaining on current loan"},
					"newRate":         {Type: "number", Description: "New interest rate as percentage"},
					"newTermMonths":   {Type: "number", Description: "New loan term in months"},
					"refinanceFees":   {Type: "number", Description: "Refinance fees in dollars"},
				},
				Required: []string{"loanBalance", "currentRate", "monthsRemaining", "newRate", "newTermMonths", "refinanceFees"},
			},
		},
		{
			Name:        ToolRefinanceMortgage,
			Description: "Calculate whether to refinance a mortgage/home loan",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"loanBalance":     {Type: "number", Description: "Current loan balance in dollars"},
					"homeValue":       {Type: "number", Description: "Current home value in dollars"},
					"currentRate":     {Type: "number", Description: "Current interest rate as percentage"},
					"monthsRemaining": {Type: "number", Description: "Months remaining on current loan"},
					"newRate":         {Type: "number", Description: "New interest rate as percentage"},
					"newTermMonths":   {Type: "number", Description: "New loan term in months"},
					"closingCosts":    {Type: "number", Description: "Estimated closing costs in dollars"},
				},
				Required: []string{"loanBalance", "homeValue", "currentRate", "monthsRemaining", "newRate", "newTermMonths", "closingCosts"},
			},
		},
		{
			Name:        ToolRefinancePersonalLoan,
			Description: "Calculate whether to refinance a personal loan",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"loanBalance":     {Type: "number", Description: "Current loan balance in dollars"},
					"currentRate":     {Type: "number", Description: "Current interest rate as percentage"},
					"monthsRemaining": {Type: "number", Description: "Months remaining on current loan"},
					"newRate":         {Type: "number", Description: "New interest rate as percentage"},
					"newTermMonths":   {Type: "number", Description: "New loan term in months"},
					"refinanceFees":   {Type: "number", Description: "Refinance/origination fees in dollars"},
				},
				Required: []string{"loanBalance", "currentRate", "monthsRemaining", "newRate", "newTermMonths", "refinanceFees"},
			},
		},
		{
			Name:        ToolBalanceTransfer,
			Description: "Calculate whether to do a credit card balance transfer",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"balance":            {Type: "number", Description: "Current credit card balance in dollars"},
					"currentAPR":         {Type: "number", Description: "Current APR as percentage"},
					"transferAPR":        {Type: "number", Description: "Promotional transfer APR as percentage (often 0)"},
					"transferFeePercent": {Type: "number", Description: "Balance transfer fee as percentage (e.g., 3)"},
					"promoMonths":        {Type: "number", Description: "Promotional period in months"},
					"monthlyPayment":     {Type: "number", Description: "Monthly payment amount in dollars"},
				},
				Required: []string{"balance", "currentAPR", "transferAPR", "transferFeePercent", "promoMonths", "monthlyPayment"},
			},
		},
	}
}
