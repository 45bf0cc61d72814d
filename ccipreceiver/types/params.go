package types

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Limits bounds the size of inbound messages.
type Limits struct {
	MaxDataSize   int `json:"max_data_size"`
	MaxSenderSize int `json:"max_sender_size"`
	MaxTokens     int `json:"max_tokens"`
}

// Params are the static program parameters of a receiver instance.
type Params struct {
	ProgramID    solana.PublicKey `json:"program_id"`
	TokenProgram solana.PublicKey `json:"token_program"`
	Limits       Limits           `json:"limits"`
}

func DefaultParams() Params {
	return Params{
		ProgramID:    DefaultProgramID,
		TokenProgram: solana.TokenProgramID,
		Limits: Limits{
			MaxDataSize:   DefaultMaxDataSize,
			MaxSenderSize: DefaultMaxSenderSize,
			MaxTokens:     DefaultMaxTokens,
		},
	}
}

func (p Params) Validate() error {
	if p.ProgramID.IsZero() {
		return fmt.Errorf("program id cannot be empty")
	}
	if p.TokenProgram.IsZero() {
		return fmt.Errorf("token program cannot be empty")
	}
	if p.Limits.MaxDataSize < 0 || p.Limits.MaxSenderSize < 0 || p.Limits.MaxTokens < 0 {
		return fmt.Errorf("limits must not be negative")
	}
	if p.Limits.MaxTokens > MaxTokensCeiling {
		return fmt.Errorf("max tokens %d exceeds ceiling %d", p.Limits.MaxTokens, MaxTokensCeiling)
	}
	return nil
}
