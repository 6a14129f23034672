// Package query compiles the JSON-shaped logical query tree (spec.md
// §4.10) into an executable Expr tree of leaf searchers.
package query

import (
	"sort"

	"github.com/kdessy/fuzzdex/pkg/types"
)

// Expr is a compiled logical-query node: a Leaf, an And, or an Or.
type Expr interface {
	isExpr()
}

// Leaf is a single key/pattern test: run the searcher for KeyID against
// Pattern.
type Leaf struct {
	KeyID   string
	Pattern string
}

func (Leaf) isExpr() {}

// And requires every child to match.
type And struct {
	Children []Expr
}

func (And) isExpr() {}

// Or requires the first matching child to win; later children are not
// evaluated, mirroring the extended query language's OR-group semantics
// (spec.md §4.9).
type Or struct {
	Children []Expr
}

func (Or) isExpr() {}

// Compile turns a JSON-shaped node into an Expr tree (spec.md §4.10).
//
//   - {$and: [...]}, {$or: [...]} compile to And/Or over their recursively
//     compiled children.
//   - {$path: [...], $val: "..."} compiles to a Leaf keyed by the dotted
//     path.
//   - A single-key object {k: v} (v a string) compiles to a Leaf.
//   - A multi-key object with none of the above is rewritten into an
//     explicit {$and: [{k1:v1}, {k2:v2}, ...]} first (ConvertToExplicit),
//     then compiled as such.
func Compile(node map[string]any) (Expr, error) {
	if raw, ok := node["$and"]; ok {
		return compileLogical(raw, func(c []Expr) Expr { return And{Children: c} })
	}
	if raw, ok := node["$or"]; ok {
		return compileLogical(raw, func(c []Expr) Expr { return Or{Children: c} })
	}
	if _, hasPath := node["$path"]; hasPath {
		return compilePathValue(node)
	}

	switch len(node) {
	case 0:
		return nil, types.NewInvalidLogicalQueryForKey("")
	case 1:
		for k, v := range node {
			return compileLeaf(k, v)
		}
	}

	return Compile(ConvertToExplicit(node))
}

// ConvertToExplicit rewrites the implicit-AND shorthand (a plain object
// with two or more sibling keys) into its explicit {$and: [...]} form.
// Nodes that already use $and/$or/$path, or that have fewer than two keys,
// are returned unchanged — so ConvertToExplicit is idempotent:
// ConvertToExplicit(ConvertToExplicit(n)) == ConvertToExplicit(n).
func ConvertToExplicit(node map[string]any) map[string]any {
	if _, ok := node["$and"]; ok {
		return node
	}
	if _, ok := node["$or"]; ok {
		return node
	}
	if _, ok := node["$path"]; ok {
		return node
	}
	if len(node) < 2 {
		return node
	}

	keys := sortedKeys(node)
	children := make([]any, 0, len(keys))
	for _, k := range keys {
		children = append(children, map[string]any{k: node[k]})
	}
	return map[string]any{"$and": children}
}

func compileLeaf(k string, v any) (Expr, error) {
	s, ok := v.(string)
	if !ok {
		return nil, types.NewInvalidLogicalQueryForKey(k)
	}
	return Leaf{KeyID: k, Pattern: s}, nil
}

func compilePathValue(node map[string]any) (Expr, error) {
	pathRaw, ok := node["$path"]
	if !ok {
		return nil, types.NewInvalidLogicalQueryForKey("$path")
	}
	path, ok := toStringSlice(pathRaw)
	if !ok || len(path) == 0 {
		return nil, types.NewInvalidLogicalQueryForKey("$path")
	}
	keyID := types.JoinPath(path)

	valRaw, ok := node["$val"]
	if !ok {
		return nil, types.NewInvalidLogicalQueryForKey(keyID)
	}
	val, ok := valRaw.(string)
	if !ok {
		return nil, types.NewInvalidLogicalQueryForKey(keyID)
	}

	return Leaf{KeyID: keyID, Pattern: val}, nil
}

func compileLogical(raw any, build func([]Expr) Expr) (Expr, error) {
	arr, ok := raw.([]any)
	if !ok {
		return nil, types.NewInvalidLogicalQueryForKey("$and/$or")
	}

	children := make([]Expr, 0, len(arr))
	for _, item := range arr {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, types.NewInvalidLogicalQueryForKey("$and/$or")
		}
		child, err := Compile(m)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return build(children), nil
}

func toStringSlice(raw any) ([]string, bool) {
	arr, ok := raw.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func sortedKeys(node map[string]any) []string {
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LeafEval resolves a compiled Leaf against an index: it runs the
// searcher for KeyID's extracted text against Pattern.
type LeafEval func(leaf Leaf) (isMatch bool, score float64)

// Eval walks a compiled Expr tree, resolving each Leaf via eval. And
// requires every child to match, with a mean score across them; Or takes
// the first matching child, short-circuiting the rest.
func Eval(expr Expr, eval LeafEval) (isMatch bool, score float64) {
	switch e := expr.(type) {
	case Leaf:
		return eval(e)
	case And:
		if len(e.Children) == 0 {
			return true, 1.0
		}
		var total float64
		for _, c := range e.Children {
			ok, s := Eval(c, eval)
			if !ok {
				return false, 1.0
			}
			total += s
		}
		return true, total / float64(len(e.Children))
	case Or:
		for _, c := range e.Children {
			ok, s := Eval(c, eval)
			if ok {
				return true, s
			}
		}
		return false, 1.0
	default:
		return false, 1.0
	}
}
