// File: expressions.go
// Title: Expression Grammar and Precedence Climbing
// Description: Assignments, unary operands, calls and binary expressions.
//              Binary expressions are grouped by comparing the precedence of
//              the operator pending on the left with the lookahead operator;
//              equal precedence groups to the left.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package parser

import (
	"github.com/msto63/halang/foundation/halang/ast"
	"github.com/msto63/halang/foundation/halang/token"
)

// noOperator is the pending operator of an outermost binary expression.
// Its precedence is 0, so it never groups.
var noOperator = token.Token{Kind: token.Illegal}

// expression ::= ID '=' expression | ID call [ OP ... ] | binaryExpr
func (s *Session) parseExpression() (ast.Node, error) {
	if !s.at(token.Identifier) {
		return s.parseBinaryExpr()
	}

	id := s.identifier()
	switch s.current.Kind {
	case token.Assign:
		s.advance()
		if err := s.enter(); err != nil {
			return nil, err
		}
		value, err := s.parseExpression()
		s.leave()
		if err != nil {
			return nil, err
		}
		return ast.Alloc(s.arena, id.Position(), &ast.Assignment{Target: id, Value: value}), nil
	case token.LeftParen:
		call, err := s.parseCalls(id)
		if err != nil {
			return nil, err
		}
		return s.resolve(nil, noOperator, call)
	default:
		// the identifier is the first operand of a binary expression
		return s.resolve(nil, noOperator, id)
	}
}

// parseBinaryExpr parses unaryExpr (OP unaryExpr)*
func (s *Session) parseBinaryExpr() (ast.Node, error) {
	return s.climb(nil, noOperator)
}

// climb parses the operand that follows pending and groups it with left
func (s *Session) climb(left ast.Node, pending token.Token) (ast.Node, error) {
	operand, err := s.parseUnaryExpr()
	if err != nil {
		return nil, err
	}
	return s.resolve(left, pending, operand)
}

// resolve decides where operand belongs: to a tighter operator on its right,
// to pending on its left, or to both in turn.
func (s *Session) resolve(left ast.Node, pending token.Token, operand ast.Node) (ast.Node, error) {
	for {
		next := s.current
		lp := token.Precedence(pending.Operator())
		rp := token.Precedence(next.Operator())

		switch {
		case lp < rp:
			// the right operator binds tighter and takes operand as its left side
			s.advance()
			if err := s.enter(); err != nil {
				return nil, err
			}
			right, err := s.climb(operand, next)
			s.leave()
			if err != nil {
				return nil, err
			}
			operand = right

		case lp == rp && lp == 0:
			return operand, nil

		case lp == rp:
			left = s.binary(pending, left, operand)
			pending = next
			s.advance()
			var err error
			if operand, err = s.parseUnaryExpr(); err != nil {
				return nil, err
			}

		default:
			return s.binary(pending, left, operand), nil
		}
	}
}

func (s *Session) binary(op token.Token, left, right ast.Node) ast.Node {
	return ast.Alloc(s.arena, op.Pos, &ast.BinaryExpr{Op: op.Operator(), Left: left, Right: right})
}

// unaryExpr ::= ('+'|'-'|'!') unaryExpr | NUMBER | ID [call] | '(' expr ')' [call]
func (s *Session) parseUnaryExpr() (ast.Node, error) {
	if err := s.enter(); err != nil {
		return nil, err
	}
	defer s.leave()

	tok := s.current
	switch tok.Kind {
	case token.Add, token.Sub, token.Not:
		s.advance()
		operand, err := s.parseUnaryExpr()
		if err != nil {
			return nil, err
		}
		return ast.Alloc(s.arena, tok.Pos, &ast.UnaryExpr{Op: tok.Operator(), Operand: operand}), nil

	case token.Number:
		s.advance()
		return ast.Alloc(s.arena, tok.Pos, &ast.Number{Value: tok.Number, IsInt: tok.IsInt}), nil

	case token.Identifier:
		id := s.identifier()
		if s.at(token.LeftParen) {
			return s.parseCalls(id)
		}
		return id, nil

	case token.LeftParen:
		s.advance()
		inner, err := s.parseExpression()
		if err != nil {
			return nil, err
		}
		s.expect(token.RightParen)
		if s.at(token.LeftParen) {
			return s.parseCalls(inner)
		}
		return inner, nil

	default:
		return nil, s.unexpected("expected expression, found %s", tok.Describe())
	}
}

// parseCalls parses one or more argument lists applied to callee, so that
// f(a)(b) calls the result of f(a)
func (s *Session) parseCalls(callee ast.Node) (ast.Node, error) {
	for s.at(token.LeftParen) {
		args := ast.Alloc(s.arena, s.current.Pos, &ast.FuncCallParams{})
		s.advance()

		if !s.at(token.RightParen) {
			for {
				if err := s.enter(); err != nil {
					return nil, err
				}
				arg, err := s.parseExpression()
				s.leave()
				if err != nil {
					return nil, err
				}
				args.Args = append(args.Args, arg)
				if !s.at(token.Comma) {
					break
				}
				s.advance()
			}
		}
		s.expect(token.RightParen)

		callee = ast.Alloc(s.arena, callee.Position(), &ast.FuncCall{Callee: callee, Args: args})
	}
	return callee, nil
}
