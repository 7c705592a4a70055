package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/scratchtools/go-ws/ir"
	"github.com/scratchtools/go-ws/token"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}

	node, path := findNodeAt(doc.node, doc.positions, doc.offset(params.Position))
	if node == nil {
		return nil, nil
	}
	hoverText := buildHoverText(node, path)
	if hoverText == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

// findNodeAt returns the node starting closest before off together with
// its path from root.
func findNodeAt(root *ir.Node, positions map[*ir.Node]*token.Pos, off int) (*ir.Node, *ir.Path) {
	var (
		best     *ir.Node
		bestPath *ir.Path
		bestOff  = -1
	)
	path := ir.NewPath()
	var visit func(*ir.Node)
	visit = func(node *ir.Node) {
		if pos := positions[node]; pos != nil && pos.I <= off && pos.I > bestOff {
			best, bestPath, bestOff = node, path.Clone(), pos.I
		}
		for i, child := range node.Values {
			if node.Type == ir.MappingType {
				path.Append(ir.SignOf(node.Fields[i]))
			} else {
				path.Append(ir.IntSign(int64(i)))
			}
			visit(child)
			path.Pop()
		}
	}
	visit(root)
	return best, bestPath
}

func buildHoverText(node *ir.Node, path *ir.Path) string {
	if node == nil {
		return ""
	}

	var parts []string
	if path != nil && !path.IsEmpty() {
		parts = append(parts, fmt.Sprintf("**Path:** `%s`", path))
	}
	parts = append(parts, fmt.Sprintf("**Type:** %s", getTypeInfo(node)))
	if valueInfo := getValueInfo(node); valueInfo != "" {
		parts = append(parts, fmt.Sprintf("**Value:** %s", valueInfo))
	}
	return strings.Join(parts, "\n\n")
}

func getTypeInfo(node *ir.Node) string {
	switch node.Type {
	case ir.NumberType:
		if node.Int64 != nil {
			return "integer"
		}
		return "float"
	case ir.AliasType:
		return "alias"
	default:
		return strings.ToLower(node.Type.String())
	}
}

func getValueInfo(node *ir.Node) string {
	switch node.Type {
	case ir.NullType:
		return "`?null`"
	case ir.BoolType:
		if node.Bool {
			return "`?true`"
		}
		return "`?false`"
	case ir.NumberType:
		if node.Int64 != nil {
			return fmt.Sprintf("`%d`", *node.Int64)
		}
		if node.Float64 != nil {
			return fmt.Sprintf("`%g`", *node.Float64)
		}
	case ir.StringType:
		if node.String == "" {
			return "`?empty`"
		}
		val := node.String
		if len([]rune(val)) > 50 {
			val = string([]rune(val)[:50]) + "..."
		}
		return fmt.Sprintf("`%s`", val)
	case ir.SequenceType:
		return fmt.Sprintf("sequence with %d elements", len(node.Values))
	case ir.MappingType:
		return fmt.Sprintf("mapping with %d keys", len(node.Values))
	case ir.AliasType:
		return fmt.Sprintf("`(%s)`", node.Source)
	}
	return ""
}
