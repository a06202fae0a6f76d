package parser

import "encoding/json"

// dumpExpr renders one AST node (and its children) into a JSON-friendly
// map, tagging each with a short node name ("Integer", "Let", "Call",
// ...) so the dump is self describing without needing a parallel schema.
func dumpExpr(expr Expression) interface{} {
	if expr == nil {
		return nil
	}
	switch n := expr.(type) {
	case *IntegerLiteral:
		return map[string]interface{}{"node": "Integer", "literal": n.Literal}
	case *DecimalLiteral:
		return map[string]interface{}{"node": "Decimal", "literal": n.Literal}
	case *StringLiteral:
		return map[string]interface{}{"node": "String", "value": n.Value}
	case *BooleanLiteral:
		return map[string]interface{}{"node": "Boolean", "value": n.Value}
	case *NilLiteral:
		return map[string]interface{}{"node": "Nil"}
	case *Identifier:
		return map[string]interface{}{"node": "Identifier", "name": n.Name}
	case *LetExpression:
		return map[string]interface{}{"node": "Let", "name": n.Name, "mutable": n.Mutable, "value": dumpExpr(n.Value)}
	case *AssignmentExpression:
		return map[string]interface{}{"node": "Assignment", "name": n.Name, "value": dumpExpr(n.Value)}
	case *PrefixExpression:
		return map[string]interface{}{"node": "Prefix", "operator": n.Operator, "operand": dumpExpr(n.Operand)}
	case *InfixExpression:
		return map[string]interface{}{"node": "Infix", "operator": n.Operator, "left": dumpExpr(n.Left), "right": dumpExpr(n.Right)}
	case *CallExpression:
		return map[string]interface{}{"node": "Call", "callee": dumpExpr(n.Callee), "args": dumpExprs(n.Args)}
	case *IndexExpression:
		return map[string]interface{}{"node": "Index", "target": dumpExpr(n.Target), "index": dumpExpr(n.Index)}
	case *ListLiteral:
		return map[string]interface{}{"node": "List", "elements": dumpExprs(n.Elements)}
	case *SetLiteral:
		return map[string]interface{}{"node": "Set", "elements": dumpExprs(n.Elements)}
	case *DictionaryLiteral:
		pairs := make([]interface{}, len(n.Pairs))
		for i, p := range n.Pairs {
			pairs[i] = map[string]interface{}{"key": dumpExpr(p.Key), "value": dumpExpr(p.Value)}
		}
		return map[string]interface{}{"node": "Dictionary", "pairs": pairs}
	case *FunctionLiteral:
		return map[string]interface{}{"node": "Function", "params": n.Params, "body": dumpBlock(n.Body)}
	case *IfExpression:
		return map[string]interface{}{
			"node": "If", "condition": dumpExpr(n.Condition),
			"consequence": dumpBlock(n.Consequence), "alternative": dumpBlock(n.Alternative),
		}
	case *CompositionExpression:
		return map[string]interface{}{"node": "Composition", "functions": dumpExprs(n.Functions)}
	case *ThreadExpression:
		return map[string]interface{}{"node": "Thread", "initial": dumpExpr(n.Initial), "functions": dumpExprs(n.Functions)}
	default:
		return map[string]interface{}{"node": "Unknown"}
	}
}

func dumpExprs(exprs []Expression) []interface{} {
	out := make([]interface{}, len(exprs))
	for i, e := range exprs {
		out[i] = dumpExpr(e)
	}
	return out
}

func dumpBlock(block *BlockStatement) interface{} {
	if block == nil {
		return nil
	}
	stmts := make([]interface{}, len(block.Statements))
	for i, s := range block.Statements {
		stmts[i] = dumpStmt(s)
	}
	return map[string]interface{}{"node": "Block", "statements": stmts}
}

func dumpStmt(stmt Statement) interface{} {
	switch s := stmt.(type) {
	case *CommentStatement:
		return map[string]interface{}{"node": "Comment", "text": s.Text}
	case *ExpressionStatement:
		return map[string]interface{}{"node": "ExpressionStatement", "expr": dumpExpr(s.Expr)}
	default:
		return map[string]interface{}{"node": "Unknown"}
	}
}

// DumpASTJSON renders program as indented JSON, the out-of-core "AST
// JSON pretty-printing" collaborator named in spec.md §1 — a thin
// encoding layer over the finished tree (SPEC_FULL.md §4), exercising
// no evaluator state.
func DumpASTJSON(program *Program) (string, error) {
	stmts := make([]interface{}, len(program.Statements))
	for i, s := range program.Statements {
		stmts[i] = dumpStmt(s)
	}
	out, err := json.MarshalIndent(map[string]interface{}{"statements": stmts}, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
