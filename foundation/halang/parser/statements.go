// File: statements.go
// Title: Statement Grammar
// Description: Blocks, declarations, control flow and function definitions.
//              Every parse function returns either a node or the diagnostic
//              that prevented it; (nil, nil) is an empty statement.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package parser

import (
	mdwerror "github.com/msto63/halang/foundation/core/error"
	"github.com/msto63/halang/foundation/halang/ast"
	"github.com/msto63/halang/foundation/halang/token"
)

// parseStatements appends statements to block while the lookahead can start
// one. Failed statements are dropped; a failure that consumed nothing skips
// the offending token so the loop always makes progress.
func (s *Session) parseStatements(block *ast.Block) {
	for StartsStatement(s.current.Kind) {
		mark := s.consumed
		stmt, err := s.parseStatement()
		if err != nil {
			if s.consumed == mark {
				s.unexpected("unexpected %s", s.current.Describe())
				s.advance()
			}
			continue
		}
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
	}
}

func (s *Session) parseStatement() (ast.Node, error) {
	if err := s.enter(); err != nil {
		return nil, err
	}
	defer s.leave()

	switch s.current.Kind {
	case token.Semicolon:
		s.advance()
		return nil, nil
	case token.Var:
		return s.parseVarStmt()
	case token.While:
		return s.parseWhileStmt()
	case token.Break:
		node := ast.Alloc(s.arena, s.current.Pos, &ast.BreakStmt{})
		s.advance()
		return node, nil
	case token.If:
		return s.parseIfStmt()
	case token.Func:
		return s.parseFuncDef()
	case token.Return:
		s.advance()
		s.warn("return statements are not supported; the statement produces no node")
		return nil, nil
	case token.LeftBrace:
		return s.parseBracedBlock()
	default:
		return s.parseExpression()
	}
}

// parseBracedBlock parses '{' block '}'
func (s *Session) parseBracedBlock() (*ast.Block, error) {
	if err := s.enter(); err != nil {
		return nil, err
	}
	defer s.leave()

	block := ast.Alloc(s.arena, s.current.Pos, &ast.Block{})
	s.expect(token.LeftBrace)
	s.parseStatements(block)
	s.expect(token.RightBrace)
	return block, nil
}

// varStmt ::= 'var' ID '=' statement (',' ID '=' statement)*
func (s *Session) parseVarStmt() (ast.Node, error) {
	stmt := ast.Alloc(s.arena, s.current.Pos, &ast.VarStmt{})
	s.advance()

	for {
		if !s.at(token.Identifier) {
			return nil, s.report(mdwerror.CodeMissingIdentifier,
				"expected variable name, found %s", s.current.Describe())
		}
		target := s.identifier()
		s.expect(token.Assign)

		valuePos := s.current
		value, err := s.parseStatement()
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, s.reportAt(valuePos, mdwerror.CodeUnexpectedToken,
				"expected expression, found %s", valuePos.Describe())
		}

		assign := ast.Alloc(s.arena, target.Position(), &ast.Assignment{Target: target, Value: value})
		stmt.Assignments = append(stmt.Assignments, assign)

		if !s.at(token.Comma) {
			return stmt, nil
		}
		s.advance()
	}
}

// ifStmt ::= 'if' '(' expr ')' '{' block '}' [ 'else' ( ifStmt | '{' block '}' ) ]
func (s *Session) parseIfStmt() (ast.Node, error) {
	stmt := ast.Alloc(s.arena, s.current.Pos, &ast.IfStmt{})
	s.advance()

	cond, then, err := s.parseConditional()
	if err != nil {
		return nil, err
	}
	stmt.Condition, stmt.Then = cond, then

	if !s.at(token.Else) {
		return stmt, nil
	}
	s.advance()

	if s.at(token.If) {
		if err := s.enter(); err != nil {
			return nil, err
		}
		elseIf, err := s.parseIfStmt()
		s.leave()
		if err != nil {
			return nil, err
		}
		stmt.Else = elseIf
		return stmt, nil
	}

	block, err := s.parseBracedBlock()
	if err != nil {
		return nil, err
	}
	stmt.Else = block
	return stmt, nil
}

// whileStmt ::= 'while' '(' expr ')' '{' block '}'
func (s *Session) parseWhileStmt() (ast.Node, error) {
	stmt := ast.Alloc(s.arena, s.current.Pos, &ast.WhileStmt{})
	s.advance()

	cond, body, err := s.parseConditional()
	if err != nil {
		return nil, err
	}
	stmt.Condition, stmt.Body = cond, body
	return stmt, nil
}

// parseConditional parses the '(' expr ')' '{' block '}' tail shared by if
// and while
func (s *Session) parseConditional() (ast.Node, *ast.Block, error) {
	s.expect(token.LeftParen)
	cond, err := s.parseBinaryExpr()
	if err != nil {
		return nil, nil, err
	}
	s.expectClosing(token.RightParen, token.LeftBrace)

	body, err := s.parseBracedBlock()
	if err != nil {
		return nil, nil, err
	}
	return cond, body, nil
}

// funcDef ::= 'func' ID '(' ID (',' ID)* ')' '{' block '}'
func (s *Session) parseFuncDef() (ast.Node, error) {
	def := ast.Alloc(s.arena, s.current.Pos, &ast.FuncDef{})
	s.advance()

	if !s.at(token.Identifier) {
		return nil, s.report(mdwerror.CodeMissingIdentifier,
			"expected function name, found %s", s.current.Describe())
	}
	def.Name = s.current.Literal
	s.advance()

	params, err := s.parseFuncDefParams()
	if err != nil {
		return nil, err
	}
	def.Params = params

	body, err := s.parseBracedBlock()
	if err != nil {
		return nil, err
	}
	def.Body = body
	return def, nil
}

func (s *Session) parseFuncDefParams() (*ast.FuncDefParams, error) {
	params := ast.Alloc(s.arena, s.current.Pos, &ast.FuncDefParams{})
	s.expect(token.LeftParen)

	for {
		if !s.at(token.Identifier) {
			return nil, s.report(mdwerror.CodeMissingIdentifier,
				"expected parameter name, found %s", s.current.Describe())
		}
		params.Names = append(params.Names, s.current.Literal)
		s.advance()

		switch s.current.Kind {
		case token.Comma:
			s.advance()
			if s.at(token.RightParen) {
				return nil, s.report(mdwerror.CodeMalformedParameterList,
					"expected parameter name after ',', found %s", s.current.Describe())
			}
		case token.RightParen:
			s.advance()
			return params, nil
		default:
			return nil, s.report(mdwerror.CodeMalformedParameterList,
				"expected ',' or ')' in parameter list, found %s", s.current.Describe())
		}
	}
}

// identifier consumes the identifier lookahead and returns its node
func (s *Session) identifier() *ast.Identifier {
	node := ast.Alloc(s.arena, s.current.Pos, &ast.Identifier{Name: s.current.Literal})
	s.advance()
	return node
}
