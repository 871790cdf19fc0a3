// File: walk.go
// Title: AST Traversal and Dumping
// Description: Depth-first traversal over the closed node set and conversion
//              of a tree into plain maps for JSON or YAML encoding.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial Walk and Dump

package ast

import "fmt"

// WalkFunc is called for every node visited by Walk. Returning false skips
// the children of that node.
type WalkFunc func(node Node) bool

// Walk visits node and its descendants depth-first in source order
func Walk(node Node, fn WalkFunc) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Statements {
			Walk(s, fn)
		}
	case *LetStatement:
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		if n.Value != nil {
			Walk(n.Value, fn)
		}
	case *ReturnStatement:
		if n.ReturnValue != nil {
			Walk(n.ReturnValue, fn)
		}
	case *ExpressionStatement:
		if n.Expression != nil {
			Walk(n.Expression, fn)
		}
	case *Identifier, *IntegerLiteral:
		// leaves
	}
}

// Inspect collects every node below root, root included, in visit order
func Inspect(root Node) []Node {
	var nodes []Node
	Walk(root, func(n Node) bool {
		nodes = append(nodes, n)
		return true
	})
	return nodes
}

// Dump converts a node into nested maps with a "type" key per node.
// A nil node dumps as nil.
func Dump(node Node) map[string]any {
	switch n := node.(type) {
	case nil:
		return nil
	case *Program:
		stmts := make([]map[string]any, 0, len(n.Statements))
		for _, s := range n.Statements {
			stmts = append(stmts, Dump(s))
		}
		return map[string]any{"type": "Program", "statements": stmts}
	case *LetStatement:
		m := map[string]any{"type": "LetStatement", "value": dumpExpr(n.Value)}
		if n.Name != nil {
			m["name"] = n.Name.Value
		}
		return m
	case *ReturnStatement:
		return map[string]any{"type": "ReturnStatement", "value": dumpExpr(n.ReturnValue)}
	case *ExpressionStatement:
		return map[string]any{"type": "ExpressionStatement", "expression": dumpExpr(n.Expression)}
	case *Identifier:
		return map[string]any{"type": "Identifier", "name": n.Value}
	case *IntegerLiteral:
		return map[string]any{"type": "IntegerLiteral", "value": n.Value}
	default:
		return map[string]any{"type": fmt.Sprintf("%T", node), "text": node.String()}
	}
}

func dumpExpr(e Expression) map[string]any {
	if e == nil {
		return nil
	}
	return Dump(e)
}
