package bril

import (
	"bytes"
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// The interchange encoding of an instruction depends on its variant, so
// the Instruction union carries custom marshalers and Function decodes
// its body through a shape-sniffing dispatch: an object with a "label"
// key is a Label, "op": "const" is a Const, any other object with a
// "dest" is a ValueOp, and the rest are EffectOps.

// MarshalJSON implements json.Marshaler. The functions list is always
// present in the encoding, even when empty; imports are omitted when
// empty.
func (p Program) MarshalJSON() ([]byte, error) {
	type program Program // shed methods to avoid recursion
	q := program(p)
	q.Functions = nonNil(q.Functions)
	return json.Marshal(q)
}

// MarshalJSON implements json.Marshaler.
func (c Const) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Op    string  `json:"op"`
		Dest  string  `json:"dest"`
		Type  string  `json:"type"`
		Value Literal `json:"value"`
	}{"const", c.Dest, c.Type, c.Value})
}

// MarshalJSON implements json.Marshaler.
func (v ValueOp) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Op   string   `json:"op"`
		Dest string   `json:"dest"`
		Type string   `json:"type"`
		Args []string `json:"args"`
	}{v.Op, v.Dest, v.Type, nonNil(v.Args)})
}

// MarshalJSON implements json.Marshaler.
func (e EffectOp) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Op   string   `json:"op"`
		Args []string `json:"args"`
	}{e.Op, nonNil(e.Args)})
}

// MarshalJSON implements json.Marshaler.
func (l Label) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Label string `json:"label"`
	}{l.Name})
}

// MarshalJSON implements json.Marshaler. Integer literals encode as JSON
// numbers, boolean literals as JSON booleans.
func (l Literal) MarshalJSON() ([]byte, error) {
	if l.Kind == LiteralBool {
		return json.Marshal(l.Bool)
	}
	return json.Marshal(l.Int)
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null is rejected:
// decoding it into a bool is a no-op, which would silently turn a null
// constant into false.
func (l *Literal) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return errors.New("constant value is null, expected an integer or a boolean")
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*l = BoolLiteral(b)
		return nil
	}
	var i int64
	if err := json.Unmarshal(data, &i); err == nil {
		*l = IntLiteral(i)
		return nil
	}
	return errors.Newf("constant value %s is neither an integer nor a boolean", string(data))
}

// MarshalJSON implements json.Marshaler. A function always carries a
// (possibly empty) instruction list.
func (f Function) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name   string        `json:"name"`
		Args   []Arg         `json:"args,omitempty"`
		Type   string        `json:"type,omitempty"`
		Instrs []Instruction `json:"instrs"`
	}{f.Name, f.Args, f.Type, nonNil(f.Instrs)})
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Function) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name   string            `json:"name"`
		Args   []Arg             `json:"args"`
		Type   string            `json:"type"`
		Instrs []json.RawMessage `json:"instrs"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	f.Name = raw.Name
	f.Args = raw.Args
	f.Type = raw.Type
	f.Instrs = make([]Instruction, 0, len(raw.Instrs))
	for _, msg := range raw.Instrs {
		instr, err := decodeInstruction(msg)
		if err != nil {
			return errors.Wrapf(err, "function %s", raw.Name)
		}
		f.Instrs = append(f.Instrs, instr)
	}
	return nil
}

func decodeInstruction(data []byte) (Instruction, error) {
	var raw struct {
		Label *string         `json:"label"`
		Op    string          `json:"op"`
		Dest  *string         `json:"dest"`
		Type  string          `json:"type"`
		Args  []string        `json:"args"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	switch {
	case raw.Label != nil:
		return Label{Name: *raw.Label}, nil

	case raw.Op == "const":
		var value Literal
		if raw.Value == nil {
			return nil, errors.New("const instruction has no value")
		}
		if err := json.Unmarshal(raw.Value, &value); err != nil {
			return nil, err
		}
		var dest string
		if raw.Dest != nil {
			dest = *raw.Dest
		}
		return Const{Dest: dest, Type: raw.Type, Value: value}, nil

	case raw.Dest != nil:
		return ValueOp{Dest: *raw.Dest, Type: raw.Type, Op: raw.Op, Args: nonNil(raw.Args)}, nil

	case raw.Op != "":
		return EffectOp{Op: raw.Op, Args: nonNil(raw.Args)}, nil

	default:
		return nil, errors.Newf("instruction %s is neither an operation nor a label", string(data))
	}
}

// nonNil normalizes a nil slice to an empty one so it encodes as [].
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
