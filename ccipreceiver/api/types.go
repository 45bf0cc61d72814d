package api

import "time"

// QueryResponse represents the standard query response format
type QueryResponse struct {
	Data      interface{} `json:"data"`
	QueriedAt time.Time   `json:"queried_at"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// AccountResponse is a token account as served by /api/v1/accounts/{address}
type AccountResponse struct {
	Address      string `json:"address"`
	Mint         string `json:"mint"`
	Authority    string `json:"authority"`
	TokenProgram string `json:"token_program"`
	Amount       string `json:"amount"`
	Frozen       bool   `json:"frozen"`
}
