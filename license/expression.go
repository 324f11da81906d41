package license

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// The two special license values. NoAssertion states that no licensing
// conclusion is being made; None states that no license was found.
const (
	NoAssertion = "NOASSERTION"
	None        = "NONE"
)

// Node is one node of a parsed license expression tree. The concrete
// types are Atom, With, And and Or; consumers dispatch with a type
// switch.
type Node interface {
	// String renders the node in canonical form: the or-later marker
	// as a "+" suffix, parentheses only where precedence requires.
	String() string

	isNode()
}

// SimpleNode is a Node permitted in fields restricted to simple license
// expressions: a single license (Atom) or a license with an exception
// (With). Compound nodes do not satisfy it, so a simple-typed field can
// never hold an AND/OR expression.
type SimpleNode interface {
	Node

	isSimple()
}

// Atom is a single license identifier or license reference, such as
// "MIT", "LicenseRef-Beerware-4.2" or "DocumentRef-x:LicenseRef-y".
type Atom struct {
	// License is the identifier with any or-later marker removed.
	License string

	// OrLater reports whether the identifier carried a "+" suffix or
	// an "-or-later" suffix.
	OrLater bool
}

func (a *Atom) isNode()   {}
func (a *Atom) isSimple() {}

func (a *Atom) String() string {
	if a.OrLater {
		return a.License + "+"
	}
	return a.License
}

// With pairs a license atom with an exception, as in
// "GPL-2.0 WITH Classpath-exception-2.0".
type With struct {
	// License is the licensed atom the exception applies to.
	License Atom

	// Exception is the exception identifier.
	Exception string
}

func (w *With) isNode()   {}
func (w *With) isSimple() {}

func (w *With) String() string {
	return w.License.String() + " WITH " + w.Exception
}

// And is the conjunction of two or more expressions.
type And struct {
	Operands []Node
}

func (a *And) isNode() {}

func (a *And) String() string {
	parts := make([]string, 0, len(a.Operands))
	for _, op := range a.Operands {
		// OR binds looser than AND, so an Or operand needs parentheses
		// to survive a reparse.
		if _, isOr := op.(*Or); isOr {
			parts = append(parts, "("+op.String()+")")
			continue
		}
		parts = append(parts, op.String())
	}
	return strings.Join(parts, " AND ")
}

// Or is the disjunction of two or more expressions.
type Or struct {
	Operands []Node
}

func (o *Or) isNode() {}

func (o *Or) String() string {
	parts := make([]string, 0, len(o.Operands))
	for _, op := range o.Operands {
		parts = append(parts, op.String())
	}
	return strings.Join(parts, " OR ")
}

// walk visits every atom in the tree in source order.
func walk(n Node, fn func(*Atom)) {
	switch node := n.(type) {
	case *Atom:
		fn(node)
	case *With:
		fn(&node.License)
	case *And:
		for _, op := range node.Operands {
			walk(op, fn)
		}
	case *Or:
		for _, op := range node.Operands {
			walk(op, fn)
		}
	}
}

// walkWith visits every WITH clause in the tree in source order.
func walkWith(n Node, fn func(*With)) {
	switch node := n.(type) {
	case *With:
		fn(node)
	case *And:
		for _, op := range node.Operands {
			walkWith(op, fn)
		}
	case *Or:
		for _, op := range node.Operands {
			walkWith(op, fn)
		}
	}
}

// Expression is a parsed SPDX license expression.
//
// The source text is retained verbatim: String returns exactly the text
// that was parsed, so a document that spelled a license
// "GPL-2.0-or-later" serializes back with the same spelling.
type Expression struct {
	text string
	root Node
}

// Root returns the root node of the expression tree.
func (e *Expression) Root() Node {
	return e.root
}

// String returns the expression source text.
func (e *Expression) String() string {
	return e.text
}

// Licenses returns every license identifier mentioned in the expression,
// in source order, without duplicates and without or-later markers.
func (e *Expression) Licenses() []string {
	var ids []string
	seen := make(map[string]struct{})
	walk(e.root, func(a *Atom) {
		if _, ok := seen[a.License]; ok {
			return
		}
		seen[a.License] = struct{}{}
		ids = append(ids, a.License)
	})
	return ids
}

// Exceptions returns every exception identifier mentioned in a WITH
// clause, in source order, without duplicates.
func (e *Expression) Exceptions() []string {
	var ids []string
	seen := make(map[string]struct{})
	walkWith(e.root, func(w *With) {
		if _, ok := seen[w.Exception]; ok {
			return
		}
		seen[w.Exception] = struct{}{}
		ids = append(ids, w.Exception)
	})
	return ids
}

// MarshalJSON writes the expression as its source string. The value
// receiver keeps slice elements marshalable without taking addresses.
func (e Expression) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.text)
}

// UnmarshalJSON parses the expression from a JSON string.
func (e *Expression) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	parsed, err := Parse(text)
	if err != nil {
		return err
	}
	*e = *parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (e Expression) MarshalYAML() (any, error) {
	return e.text, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Expression) UnmarshalYAML(value *yaml.Node) error {
	var text string
	if err := value.Decode(&text); err != nil {
		return err
	}
	parsed, err := Parse(text)
	if err != nil {
		return err
	}
	*e = *parsed
	return nil
}

// SimpleExpression is a parsed simple license expression: a single
// license with an optional exception, as required for fields like the
// per-file license information list.
type SimpleExpression struct {
	text string
	root SimpleNode
}

// Root returns the root node, an *Atom or a *With.
func (e *SimpleExpression) Root() SimpleNode {
	return e.root
}

// String returns the expression source text.
func (e *SimpleExpression) String() string {
	return e.text
}

// MarshalJSON writes the expression as its source string. The value
// receiver keeps slice elements marshalable without taking addresses.
func (e SimpleExpression) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.text)
}

// UnmarshalJSON parses the expression from a JSON string, rejecting
// compound expressions.
func (e *SimpleExpression) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	parsed, err := ParseSimple(text)
	if err != nil {
		return err
	}
	*e = *parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (e SimpleExpression) MarshalYAML() (any, error) {
	return e.text, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *SimpleExpression) UnmarshalYAML(value *yaml.Node) error {
	var text string
	if err := value.Decode(&text); err != nil {
		return err
	}
	parsed, err := ParseSimple(text)
	if err != nil {
		return err
	}
	*e = *parsed
	return nil
}
