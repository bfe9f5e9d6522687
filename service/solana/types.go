package solana

import (
	"time"
)

// InstructionKind tags the two shapes an instruction can take in a parsed
// transaction: either the node recognized the program and decoded the
// instruction into a {type, info} pair, or all we have is the program id.
type InstructionKind int

const (
	InstructionOpaque InstructionKind = iota
	InstructionParsed
)

// Instruction is one instruction of a transaction message. Kind selects
// which arm is populated: Type/Info for InstructionParsed, ProgramID alone
// for InstructionOpaque. Program is the node's short program label and may
// be empty either way.
type Instruction struct {
	Kind      InstructionKind `json:"-"`
	Program   string          `json:"program,omitempty"`
	ProgramID string          `json:"programId,omitempty"`
	Type      string          `json:"type,omitempty"`
	Info      map[string]any  `json:"info,omitempty"`
}

// RawBytes is the recovered wire-format serialization of a transaction.
// Base64 and Hex are both derived from Data, never fetched independently,
// so they always decode to the same byte sequence.
type RawBytes struct {
	Data   []byte `json:"-"`
	Base64 string `json:"base64"`
	Hex    string `json:"hex"`
}

// ResolvedTransaction is our domain model of a fetched transaction,
// independent of the RPC response format. Raw is nil when best-effort
// raw-byte recovery failed; everything else is still usable.
type ResolvedTransaction struct {
	Signature    string        `json:"signature"`
	Slot         uint64        `json:"slot"`
	BlockTime    *time.Time    `json:"blockTime,omitempty"`
	Fee          uint64        `json:"fee"`
	Err          *string       `json:"err,omitempty"`
	Version      string        `json:"version,omitempty"`
	Signatures   []string      `json:"signatures"`
	Instructions []Instruction `json:"instructions"`
	LogMessages  []string      `json:"logMessages,omitempty"`
	Raw          *RawBytes     `json:"raw,omitempty"`
}

// Succeeded reports whether the transaction executed without error.
func (t *ResolvedTransaction) Succeeded() bool {
	return t.Err == nil
}

// FeePayer returns the first signer, which pays the transaction fee.
func (t *ResolvedTransaction) FeePayer() string {
	if len(t.Signatures) == 0 {
		return ""
	}
	return t.Signatures[0]
}
