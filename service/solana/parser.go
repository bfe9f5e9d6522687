package solana

import (
	"encoding/json"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Wire mirrors of the jsonParsed transaction shape. The node emits an
// instruction's "parsed" field either as a {type, info} object or, for
// programs like the memo program, as a bare string; the parsed transaction
// is re-marshalled through these so both forms land in the same tagged
// Instruction union.
type parsedTransactionWire struct {
	Signatures []string          `json:"signatures"`
	Message    parsedMessageWire `json:"message"`
}

type parsedMessageWire struct {
	Instructions []parsedInstructionWire `json:"instructions"`
}

type parsedInstructionWire struct {
	Program   string          `json:"program"`
	ProgramID string          `json:"programId"`
	Parsed    json.RawMessage `json:"parsed"`
}

type instructionInfoWire struct {
	Type string         `json:"type"`
	Info map[string]any `json:"info"`
}

// resolvedFromParsed converts a jsonParsed RPC result to our domain model.
// Raw bytes are attached later by the fetcher; the wire version tag is
// already carried here and is merely confirmed by the raw response.
func resolvedFromParsed(sig solana.Signature, result *rpc.GetParsedTransactionResult) (*ResolvedTransaction, error) {
	txn := &ResolvedTransaction{
		Signature: sig.String(),
		Slot:      result.Slot,
		Version:   formatVersion(result.Version),
	}

	if result.BlockTime != nil {
		t := result.BlockTime.Time()
		txn.BlockTime = &t
	}

	if result.Meta != nil {
		txn.Fee = result.Meta.Fee
		txn.LogMessages = result.Meta.LogMessages
		if result.Meta.Err != nil {
			errMsg := fmt.Sprintf("%v", result.Meta.Err)
			txn.Err = &errMsg
		}
	}

	blob, err := json.Marshal(result.Transaction)
	if err != nil {
		return nil, fmt.Errorf("re-encode parsed transaction: %w", err)
	}
	var wire parsedTransactionWire
	if err := json.Unmarshal(blob, &wire); err != nil {
		return nil, fmt.Errorf("decode parsed transaction: %w", err)
	}

	txn.Signatures = wire.Signatures
	txn.Instructions = make([]Instruction, 0, len(wire.Message.Instructions))
	for _, w := range wire.Message.Instructions {
		txn.Instructions = append(txn.Instructions, classifyInstruction(w))
	}

	return txn, nil
}

// classifyInstruction decides whether an instruction carries a decoded
// {type, info} pair or only an opaque program reference.
func classifyInstruction(w parsedInstructionWire) Instruction {
	instr := Instruction{
		Kind:      InstructionOpaque,
		Program:   w.Program,
		ProgramID: w.ProgramID,
	}
	if len(w.Parsed) == 0 || string(w.Parsed) == "null" {
		return instr
	}

	var info instructionInfoWire
	if err := json.Unmarshal(w.Parsed, &info); err == nil && info.Type != "" {
		instr.Kind = InstructionParsed
		instr.Type = info.Type
		instr.Info = info.Info
		return instr
	}

	// Memo-style payload: "parsed" is the bare instruction text.
	var text string
	if err := json.Unmarshal(w.Parsed, &text); err == nil && text != "" {
		instr.Kind = InstructionParsed
		instr.Type = w.Program
		instr.Info = map[string]any{"text": text}
	}
	return instr
}
